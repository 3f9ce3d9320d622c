package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const defaultCatalogProductsPerPage = 8

// CatalogService serves catalog listings and catalog pages
type CatalogService struct {
	catalogRepo  catalog.CatalogRepository
	categoryRepo catalog.CategoryRepository
	brandRepo    catalog.BrandRepository
	productRepo  catalog.ProductRepository
	media        MediaResolver
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	catalogRepo catalog.CatalogRepository,
	categoryRepo catalog.CategoryRepository,
	brandRepo catalog.BrandRepository,
	productRepo catalog.ProductRepository,
) *CatalogService {
	return &CatalogService{
		catalogRepo:  catalogRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		productRepo:  productRepo,
	}
}

// SetMediaResolver sets how image references become URLs
func (s *CatalogService) SetMediaResolver(media MediaResolver) {
	s.media = media
}

// List returns a filtered, sorted page of catalogs with their product counts
func (s *CatalogService) List(ctx context.Context, q CatalogListQuery) (shared.Paginated[CatalogResponse], error) {
	page, perPage := pageDefaults(q.Page, q.PerPage, defaultCategoryPerPage)
	filter := catalog.CatalogListFilter{
		Filter: shared.Filter{
			Page:     page,
			PageSize: perPage,
			OrderBy:  q.Sort,
			Search:   strings.TrimSpace(q.Search),
		},
		IsActive: q.IsActive,
	}
	if filter.IsActive == nil {
		active := true
		filter.IsActive = &active
	}
	var err error
	if filter.CategoryID, err = parseOptionalID(q.CategoryID, "category_id"); err != nil {
		return shared.Paginated[CatalogResponse]{}, err
	}
	if filter.BrandID, err = parseOptionalID(q.BrandID, "brand_id"); err != nil {
		return shared.Paginated[CatalogResponse]{}, err
	}

	catalogs, total, err := s.catalogRepo.List(ctx, filter)
	if err != nil {
		return shared.Paginated[CatalogResponse]{}, fmt.Errorf("failed to list catalogs: %w", err)
	}
	counts, err := s.productRepo.CountByCatalog(ctx)
	if err != nil {
		return shared.Paginated[CatalogResponse]{}, fmt.Errorf("failed to count products: %w", err)
	}
	return shared.NewPaginated(newMapper(ctx, s.media).catalogs(catalogs, counts), total, page, perPage), nil
}

// Popular returns the active catalogs with the most products
func (s *CatalogService) Popular(ctx context.Context, limit int) ([]CatalogResponse, error) {
	limit = clampLimit(limit, defaultPopularLimit, maxFeaturedLimit)
	catalogs, err := s.catalogRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}
	counts, err := s.productRepo.CountByCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	sort.SliceStable(catalogs, func(i, j int) bool {
		return counts[catalogs[i].ID] > counts[catalogs[j].ID]
	})
	if len(catalogs) > limit {
		catalogs = catalogs[:limit]
	}
	return newMapper(ctx, s.media).catalogs(catalogs, counts), nil
}

// Flat returns id, name and slug of every active catalog
func (s *CatalogService) Flat(ctx context.Context) ([]CatalogBrief, error) {
	catalogs, err := s.catalogRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}
	out := make([]CatalogBrief, 0, len(catalogs))
	for _, c := range catalogs {
		out = append(out, CatalogBrief{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	return out, nil
}

// ByCategory returns the active catalogs of the category with the given slug
func (s *CatalogService) ByCategory(ctx context.Context, categorySlug string) ([]CatalogResponse, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	catalogs, err := s.catalogRepo.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category catalogs: %w", err)
	}
	counts, err := s.productRepo.CountByCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	return newMapper(ctx, s.media).catalogs(catalogs, counts), nil
}

// ByBrand pages through the active catalogs of a brand
func (s *CatalogService) ByBrand(ctx context.Context, brandID uuid.UUID, q PageQuery) (shared.Paginated[CatalogResponse], error) {
	if _, err := s.brandRepo.FindByID(ctx, brandID); err != nil {
		return shared.Paginated[CatalogResponse]{}, err
	}
	page, perPage := pageDefaults(q.Page, q.PerPage, defaultCategoryPerPage)
	catalogs, total, err := s.catalogRepo.ListByBrand(ctx, brandID, shared.Filter{Page: page, PageSize: perPage})
	if err != nil {
		return shared.Paginated[CatalogResponse]{}, fmt.Errorf("failed to load brand catalogs: %w", err)
	}
	counts, err := s.productRepo.CountByCatalog(ctx)
	if err != nil {
		return shared.Paginated[CatalogResponse]{}, fmt.Errorf("failed to count products: %w", err)
	}
	return shared.NewPaginated(newMapper(ctx, s.media).catalogs(catalogs, counts), total, page, perPage), nil
}

// GetBySlug returns a catalog page, optionally with its most popular products
func (s *CatalogService) GetBySlug(ctx context.Context, slug string, opts DetailOptions) (*CatalogDetail, error) {
	c, err := s.catalogRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	counts, err := s.productRepo.CountByCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	m := newMapper(ctx, s.media)
	detail := &CatalogDetail{
		CatalogResponse: m.catalog(c, counts[c.ID]),
		Images:          make([]ImageResponse, 0, len(c.Images)),
	}
	for _, img := range c.Images {
		detail.Images = append(detail.Images, ImageResponse{
			URL:       m.url(img.URL),
			AltText:   img.AltText,
			IsMain:    img.IsMain,
			SortOrder: img.SortOrder,
		})
	}

	if opts.IncludeProducts {
		limit := clampLimit(opts.ProductLimit, defaultCatalogProductsPerPage, maxDiscountLimit)
		products, _, err := s.productRepo.ListByCatalog(ctx, c.ID, shared.Filter{Page: 1, PageSize: limit})
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog products: %w", err)
		}
		detail.Products = m.cards(products)
	}
	return detail, nil
}

// Products pages through a catalog's products by popularity
func (s *CatalogService) Products(ctx context.Context, slug string, q PageQuery) (*CatalogProductsResponse, error) {
	c, err := s.catalogRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	page, perPage := pageDefaults(q.Page, q.PerPage, defaultCatalogProductsPerPage)
	products, total, err := s.productRepo.ListByCatalog(ctx, c.ID, shared.Filter{Page: page, PageSize: perPage})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog products: %w", err)
	}
	return &CatalogProductsResponse{
		Products:   newMapper(ctx, s.media).cards(products),
		Pagination: NewPagination(total, page, perPage),
	}, nil
}
