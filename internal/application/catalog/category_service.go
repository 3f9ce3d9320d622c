package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPopularLimit         = 6
	defaultCategoryPerPage      = 20
	defaultEmbeddedProductLimit = 4
)

// CategoryService handles category-related read operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
	cache        *responseCache
	media        MediaResolver
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
	cache shared.Cache,
	ttl time.Duration,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		cache:        newResponseCache(cache, ttl, logger),
	}
}

// SetMediaResolver sets how image references become URLs
func (s *CategoryService) SetMediaResolver(media MediaResolver) {
	s.media = media
}

// List returns the children of a parent (roots when absent) ordered by name
func (s *CategoryService) List(ctx context.Context, q CategoryListQuery) ([]CategoryResponse, error) {
	filter := catalog.CategoryListFilter{IsActive: q.IsActive}
	if filter.IsActive == nil {
		active := true
		filter.IsActive = &active
	}
	var err error
	if filter.ParentID, err = parseOptionalID(q.ParentID, "parent_id"); err != nil {
		return nil, err
	}
	if filter.BrandID, err = parseOptionalID(q.BrandID, "brand_id"); err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	var counts map[uuid.UUID]int64
	if q.IncludeCounts {
		if counts, err = s.productRepo.CountByCategory(ctx); err != nil {
			return nil, fmt.Errorf("failed to count products: %w", err)
		}
	}
	return newMapper(ctx, s.media).categories(categories, counts), nil
}

// Tree returns every active category nested by parent, optionally for one brand
func (s *CategoryService) Tree(ctx context.Context, brandID string) ([]CategoryTreeNode, error) {
	brand, err := parseOptionalID(brandID, "brand_id")
	if err != nil {
		return nil, err
	}
	key := KeyCategoriesTree + "all"
	if brand != nil {
		key = KeyCategoriesTree + brand.String()
	}

	return cached(ctx, s.cache, key, func() ([]CategoryTreeNode, error) {
		flat, err := s.categoryRepo.FindAllActive(ctx, brand)
		if err != nil {
			return nil, fmt.Errorf("failed to load categories: %w", err)
		}
		counts, err := s.productRepo.CountByCategory(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count products: %w", err)
		}
		return newMapper(ctx, s.media).tree(catalog.BuildCategoryTree(flat), counts), nil
	})
}

// Popular returns the active categories with the most products
func (s *CategoryService) Popular(ctx context.Context, limit int) ([]CategoryResponse, error) {
	limit = clampLimit(limit, defaultPopularLimit, maxFeaturedLimit)
	categories, err := s.categoryRepo.FindAllActive(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	counts, err := s.productRepo.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return counts[categories[i].ID] > counts[categories[j].ID]
	})
	if len(categories) > limit {
		categories = categories[:limit]
	}
	return newMapper(ctx, s.media).categories(categories, counts), nil
}

// Flat returns id, name and slug of every active category
func (s *CategoryService) Flat(ctx context.Context) ([]CategoryBrief, error) {
	categories, err := s.categoryRepo.FindAllActive(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	out := make([]CategoryBrief, 0, len(categories))
	for i := range categories {
		out = append(out, *categoryBrief(&categories[i]))
	}
	return out, nil
}

// Products pages through the products of a category given by id or slug
func (s *CategoryService) Products(ctx context.Context, ref string, q CategoryProductsQuery) (shared.Paginated[ProductCard], error) {
	category, err := s.resolve(ctx, ref)
	if err != nil {
		return shared.Paginated[ProductCard]{}, err
	}
	page, perPage := pageDefaults(q.Page, q.PerPage, defaultCategoryPerPage)

	products, total, err := s.productRepo.ListByCategory(ctx, category.ID, shared.Filter{
		Page:     page,
		PageSize: perPage,
		OrderBy:  q.SortBy,
		OrderDir: q.SortOrder,
	})
	if err != nil {
		return shared.Paginated[ProductCard]{}, fmt.Errorf("failed to list category products: %w", err)
	}
	return shared.NewPaginated(newMapper(ctx, s.media).cards(products), total, page, perPage), nil
}

// GetBySlug returns a category page with optional children and top products
func (s *CategoryService) GetBySlug(ctx context.Context, slug string, opts CategoryDetailOptions) (*CategoryDetail, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	m := newMapper(ctx, s.media)
	detail := &CategoryDetail{
		CategoryResponse: m.category(category),
		Brand:            m.brandBrief(category.Brand),
	}

	if opts.IncludeChildren {
		children, err := s.categoryRepo.FindChildren(ctx, category.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load subcategories: %w", err)
		}
		detail.Children = m.categories(children, nil)
	}

	if opts.IncludeProducts {
		limit := clampLimit(opts.ProductLimit, defaultEmbeddedProductLimit, maxDiscountLimit)
		products, _, err := s.productRepo.ListByCategory(ctx, category.ID, shared.Filter{
			Page:     1,
			PageSize: limit,
			OrderBy:  "popularity_score",
			OrderDir: "desc",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load category products: %w", err)
		}
		detail.Products = m.cards(products)
	}
	return detail, nil
}

// resolve looks a category up by id, falling back to slug
func (s *CategoryService) resolve(ctx context.Context, ref string) (*catalog.Category, error) {
	if id, err := uuid.Parse(ref); err == nil {
		category, err := s.categoryRepo.FindByID(ctx, id)
		if err == nil || !errors.Is(err, shared.ErrNotFound) {
			return category, err
		}
	}
	return s.categoryRepo.FindBySlug(ctx, ref)
}

// parseOptionalID parses an optional uuid query value
func parseOptionalID(raw, field string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, shared.NewValidationError("Invalid "+field)
	}
	return &id, nil
}
