package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BrandService serves brand listings and brand pages
type BrandService struct {
	brandRepo    catalog.BrandRepository
	catalogRepo  catalog.CatalogRepository
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
	media        MediaResolver
}

// NewBrandService creates a new BrandService
func NewBrandService(
	brandRepo catalog.BrandRepository,
	catalogRepo catalog.CatalogRepository,
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
) *BrandService {
	return &BrandService{
		brandRepo:    brandRepo,
		catalogRepo:  catalogRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// SetMediaResolver sets how image references become URLs
func (s *BrandService) SetMediaResolver(media MediaResolver) {
	s.media = media
}

// List returns every active brand with its product count, ordered by name
func (s *BrandService) List(ctx context.Context) ([]BrandResponse, error) {
	brands, counts, err := s.brandsWithCounts(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, brands, counts), nil
}

// Popular returns the brands with the most active products
func (s *BrandService) Popular(ctx context.Context, limit int) ([]BrandResponse, error) {
	limit = clampLimit(limit, defaultPopularLimit, maxFeaturedLimit)
	brands, counts, err := s.brandsWithCounts(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(brands, func(i, j int) bool {
		return counts[brands[i].ID] > counts[brands[j].ID]
	})
	if len(brands) > limit {
		brands = brands[:limit]
	}
	return s.toResponses(ctx, brands, counts), nil
}

// Flat returns id, name and slug of every active brand
func (s *BrandService) Flat(ctx context.Context) ([]BrandBrief, error) {
	brands, err := s.brandRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load brands: %w", err)
	}
	out := make([]BrandBrief, 0, len(brands))
	for _, b := range brands {
		out = append(out, BrandBrief{ID: b.ID, Name: b.Name, Slug: b.Slug})
	}
	return out, nil
}

// GetBySlug returns a brand page with optional top products and categories
func (s *BrandService) GetBySlug(ctx context.Context, slug string, opts BrandDetailOptions) (*BrandDetail, error) {
	brand, err := s.brandRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	counts, err := s.productRepo.CountByBrand(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	m := newMapper(ctx, s.media)
	detail := &BrandDetail{BrandResponse: m.brand(brand, counts[brand.ID])}

	if opts.IncludeProducts {
		limit := clampLimit(opts.ProductLimit, defaultCatalogProductsPerPage, maxDiscountLimit)
		products, err := s.productRepo.TopByBrand(ctx, brand.ID, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to load brand products: %w", err)
		}
		detail.Products = m.cards(products)
	}
	if opts.IncludeCategories {
		brandID := brand.ID
		categories, err := s.categoryRepo.FindAllActive(ctx, &brandID)
		if err != nil {
			return nil, fmt.Errorf("failed to load brand categories: %w", err)
		}
		detail.Categories = m.categories(categories, nil)
	}
	return detail, nil
}

// Catalogs returns every active catalog of a brand
func (s *BrandService) Catalogs(ctx context.Context, slug string) ([]CatalogResponse, error) {
	res, err := s.WithCatalogs(ctx, slug, PageQuery{Page: 1, PerPage: 100})
	if err != nil {
		return nil, err
	}
	return res.Catalogs, nil
}

// WithCatalogs returns a brand together with one page of its catalogs
func (s *BrandService) WithCatalogs(ctx context.Context, slug string, q PageQuery) (*BrandWithCatalogs, error) {
	brand, err := s.brandRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	page, perPage := pageDefaults(q.Page, q.PerPage, defaultCategoryPerPage)
	catalogs, total, err := s.catalogRepo.ListByBrand(ctx, brand.ID, shared.Filter{Page: page, PageSize: perPage})
	if err != nil {
		return nil, fmt.Errorf("failed to load brand catalogs: %w", err)
	}
	catalogCounts, err := s.productRepo.CountByCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	brandCounts, err := s.productRepo.CountByBrand(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	m := newMapper(ctx, s.media)
	return &BrandWithCatalogs{
		Brand:      m.brand(brand, brandCounts[brand.ID]),
		Catalogs:   m.catalogs(catalogs, catalogCounts),
		Pagination: NewPagination(total, page, perPage),
	}, nil
}

func (s *BrandService) brandsWithCounts(ctx context.Context) ([]catalog.Brand, map[uuid.UUID]int64, error) {
	brands, err := s.brandRepo.ListActive(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load brands: %w", err)
	}
	counts, err := s.productRepo.CountByBrand(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count products: %w", err)
	}
	return brands, counts, nil
}

func (s *BrandService) toResponses(ctx context.Context, brands []catalog.Brand, counts map[uuid.UUID]int64) []BrandResponse {
	m := newMapper(ctx, s.media)
	out := make([]BrandResponse, 0, len(brands))
	for i := range brands {
		out = append(out, m.brand(&brands[i], counts[brands[i].ID]))
	}
	return out
}
