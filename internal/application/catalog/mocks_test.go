package catalog

import (
	"context"
	"strings"

	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, filter catalog.ProductListFilter) ([]catalog.Product, int64, error) {
	args := m.Called(ctx, filter)
	return asProducts(args.Get(0)), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Featured(ctx context.Context, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, limit)
	return asProducts(args.Get(0)), args.Error(1)
}

func (m *MockProductRepository) Newest(ctx context.Context, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, limit)
	return asProducts(args.Get(0)), args.Error(1)
}

func (m *MockProductRepository) Discounted(ctx context.Context, minPercent float64, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, minPercent, limit)
	return asProducts(args.Get(0)), args.Error(1)
}

func (m *MockProductRepository) PriceRange(ctx context.Context) (catalog.PriceRange, error) {
	args := m.Called(ctx)
	return args.Get(0).(catalog.PriceRange), args.Error(1)
}

func (m *MockProductRepository) Suggest(ctx context.Context, query string, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, query, limit)
	return asProducts(args.Get(0)), args.Error(1)
}

func (m *MockProductRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]catalog.Product, int64, error) {
	args := m.Called(ctx, categoryID, filter)
	return asProducts(args.Get(0)), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) ListByCatalog(ctx context.Context, catalogID uuid.UUID, filter shared.Filter) ([]catalog.Product, int64, error) {
	args := m.Called(ctx, catalogID, filter)
	return asProducts(args.Get(0)), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) TopByBrand(ctx context.Context, brandID uuid.UUID, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, brandID, limit)
	return asProducts(args.Get(0)), args.Error(1)
}

func (m *MockProductRepository) CountByBrand(ctx context.Context) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx)
	return asCounts(args.Get(0)), args.Error(1)
}

func (m *MockProductRepository) CountByCatalog(ctx context.Context) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx)
	return asCounts(args.Get(0)), args.Error(1)
}

func (m *MockProductRepository) CountByCategory(ctx context.Context) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx)
	return asCounts(args.Get(0)), args.Error(1)
}

func (m *MockProductRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context, filter catalog.CategoryListFilter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	return asCategories(args.Get(0)), args.Error(1)
}

func (m *MockCategoryRepository) FindAllActive(ctx context.Context, brandID *uuid.UUID) ([]catalog.Category, error) {
	args := m.Called(ctx, brandID)
	return asCategories(args.Get(0)), args.Error(1)
}

func (m *MockCategoryRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]catalog.Category, error) {
	args := m.Called(ctx, parentID)
	return asCategories(args.Get(0)), args.Error(1)
}

// MockCatalogRepository is a mock implementation of CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Catalog, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Catalog), args.Error(1)
}

func (m *MockCatalogRepository) List(ctx context.Context, filter catalog.CatalogListFilter) ([]catalog.Catalog, int64, error) {
	args := m.Called(ctx, filter)
	return asCatalogs(args.Get(0)), args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogRepository) ListActive(ctx context.Context) ([]catalog.Catalog, error) {
	args := m.Called(ctx)
	return asCatalogs(args.Get(0)), args.Error(1)
}

func (m *MockCatalogRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.Catalog, error) {
	args := m.Called(ctx, categoryID)
	return asCatalogs(args.Get(0)), args.Error(1)
}

func (m *MockCatalogRepository) ListByBrand(ctx context.Context, brandID uuid.UUID, filter shared.Filter) ([]catalog.Catalog, int64, error) {
	args := m.Called(ctx, brandID, filter)
	return asCatalogs(args.Get(0)), args.Get(1).(int64), args.Error(2)
}

// MockBrandRepository is a mock implementation of BrandRepository
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Brand), args.Error(1)
}

func (m *MockBrandRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Brand, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Brand), args.Error(1)
}

func (m *MockBrandRepository) ListActive(ctx context.Context) ([]catalog.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Brand), args.Error(1)
}

// MockVideoRepository is a mock implementation of VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Featured(ctx context.Context, limit int) ([]catalog.Video, error) {
	args := m.Called(ctx, limit)
	return asVideos(args.Get(0)), args.Error(1)
}

func (m *MockVideoRepository) Latest(ctx context.Context, limit int) ([]catalog.Video, error) {
	args := m.Called(ctx, limit)
	return asVideos(args.Get(0)), args.Error(1)
}

func (m *MockVideoRepository) Popular(ctx context.Context, limit int) ([]catalog.Video, error) {
	args := m.Called(ctx, limit)
	return asVideos(args.Get(0)), args.Error(1)
}

func (m *MockVideoRepository) ByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.Video, error) {
	args := m.Called(ctx, productID)
	return asVideos(args.Get(0)), args.Error(1)
}

// MockContentRepository is a mock implementation of ContentRepository
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) ActiveBanners(ctx context.Context) ([]catalog.Banner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Banner), args.Error(1)
}

func (m *MockContentRepository) ActivePromotions(ctx context.Context) ([]catalog.Promotion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Promotion), args.Error(1)
}

func (m *MockContentRepository) Tips(ctx context.Context, limit int) ([]catalog.Tip, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Tip), args.Error(1)
}

func asProducts(v any) []catalog.Product {
	if v == nil {
		return nil
	}
	return v.([]catalog.Product)
}

func asCategories(v any) []catalog.Category {
	if v == nil {
		return nil
	}
	return v.([]catalog.Category)
}

func asCatalogs(v any) []catalog.Catalog {
	if v == nil {
		return nil
	}
	return v.([]catalog.Catalog)
}

func asVideos(v any) []catalog.Video {
	if v == nil {
		return nil
	}
	return v.([]catalog.Video)
}

func asCounts(v any) map[uuid.UUID]int64 {
	if v == nil {
		return nil
	}
	return v.(map[uuid.UUID]int64)
}

// prefixMedia resolves references under a fixed base url
type prefixMedia struct{ base string }

func (p prefixMedia) URL(_ context.Context, ref string) string {
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	return p.base + ref
}

var (
	_ catalog.ProductRepository  = (*MockProductRepository)(nil)
	_ catalog.CategoryRepository = (*MockCategoryRepository)(nil)
	_ catalog.CatalogRepository  = (*MockCatalogRepository)(nil)
	_ catalog.BrandRepository    = (*MockBrandRepository)(nil)
	_ catalog.VideoRepository    = (*MockVideoRepository)(nil)
	_ catalog.ContentRepository  = (*MockContentRepository)(nil)
	_ MediaResolver              = prefixMedia{}
)
