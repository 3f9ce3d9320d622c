package catalog

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	defaultProductsPerPage = 12
	defaultFeaturedLimit   = 8
	maxFeaturedLimit       = 20
	defaultDiscountLimit   = 12
	maxDiscountLimit       = 50
	defaultMinDiscount     = 5.0
)

var (
	defaultPriceMin = decimal.Zero
	defaultPriceMax = decimal.NewFromInt(100000)
)

// DiscountedQuery is the query string of GET /products/discounted
type DiscountedQuery struct {
	MinDiscountPercent *float64 `form:"min_discount_percent" binding:"omitempty,gte=0,lte=100"`
	Limit              int      `form:"limit" binding:"omitempty,min=1"`
}

// ProductService serves the storefront product listings
type ProductService struct {
	products catalog.ProductRepository
	cache    *responseCache
	media    MediaResolver
	logger   *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository, cache shared.Cache, ttl time.Duration, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		products: products,
		cache:    newResponseCache(cache, ttl, logger),
		logger:   logger,
	}
}

// SetMediaResolver sets how image references become URLs
func (s *ProductService) SetMediaResolver(media MediaResolver) {
	s.media = media
}

// List returns a filtered, sorted page of active products
func (s *ProductService) List(ctx context.Context, q ProductListQuery) (shared.Paginated[ProductCard], error) {
	q.Page, q.PerPage = pageDefaults(q.Page, q.PerPage, defaultProductsPerPage)
	q.Search = strings.TrimSpace(q.Search)
	sortBy, err := catalog.ParseProductSort(q.Sort)
	if err != nil {
		return shared.Paginated[ProductCard]{}, err
	}
	q.Sort = string(sortBy)

	filter := catalog.ProductListFilter{
		Filter: shared.Filter{
			Page:     q.Page,
			PageSize: q.PerPage,
			Search:   q.Search,
		},
		CategorySlug: q.CategorySlug,
		BrandSlug:    q.BrandSlug,
		CatalogSlug:  q.CatalogSlug,
		MinPrice:     toDecimal(q.MinPrice),
		MaxPrice:     toDecimal(q.MaxPrice),
		InStock:      q.InStock,
		IsNew:        q.IsNew,
		Type:         q.Type,
		Sort:         sortBy,
	}

	return cached(ctx, s.cache, KeyProductsListPrefix+hashKey(q), func() (shared.Paginated[ProductCard], error) {
		items, total, err := s.products.List(ctx, filter)
		if err != nil {
			return shared.Paginated[ProductCard]{}, fmt.Errorf("failed to list products: %w", err)
		}
		m := newMapper(ctx, s.media)
		return shared.NewPaginated(m.cards(items), total, q.Page, q.PerPage), nil
	})
}

// Featured returns promoted products first, then the best ranked ones
func (s *ProductService) Featured(ctx context.Context, limit int) ([]ProductCard, error) {
	limit = clampLimit(limit, defaultFeaturedLimit, maxFeaturedLimit)
	return cached(ctx, s.cache, KeyProductsFeatured+strconv.Itoa(limit), func() ([]ProductCard, error) {
		items, err := s.products.Featured(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to load featured products: %w", err)
		}
		return newMapper(ctx, s.media).cards(items), nil
	})
}

// Newest returns the latest additions to the assortment
func (s *ProductService) Newest(ctx context.Context, limit int) ([]NewProductItem, error) {
	limit = clampLimit(limit, defaultFeaturedLimit, maxFeaturedLimit)
	items, err := s.products.Newest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load new products: %w", err)
	}

	m := newMapper(ctx, s.media)
	out := make([]NewProductItem, 0, len(items))
	for i := range items {
		p := &items[i]
		item := NewProductItem{
			ID:            p.ID,
			UUID:          p.UUID,
			Name:          p.Name,
			Slug:          p.Slug,
			Image:         m.url(p.MainImage()),
			Price:         p.Price,
			DiscountPrice: p.DiscountPrice,
		}
		if p.Brand != nil {
			item.BrandName = p.Brand.Name
		}
		out = append(out, item)
	}
	return out, nil
}

// Discounted returns the best deals among products discounted by at least the given percent
func (s *ProductService) Discounted(ctx context.Context, q DiscountedQuery) ([]DiscountedProduct, error) {
	minPercent := defaultMinDiscount
	if q.MinDiscountPercent != nil {
		minPercent = *q.MinDiscountPercent
	}
	limit := clampLimit(q.Limit, defaultDiscountLimit, maxDiscountLimit)
	key := KeyProductsDiscounted + hashKey(DiscountedQuery{MinDiscountPercent: &minPercent, Limit: limit})

	return cached(ctx, s.cache, key, func() ([]DiscountedProduct, error) {
		items, err := s.products.Discounted(ctx, minPercent, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to load discounted products: %w", err)
		}

		m := newMapper(ctx, s.media)
		out := make([]DiscountedProduct, 0, len(items))
		for i := range items {
			p := &items[i]
			if !p.HasDiscount() || p.DiscountPercent() < minPercent {
				continue
			}
			out = append(out, DiscountedProduct{
				ProductCard: m.card(p),
				Savings:     p.Savings(),
				DealScore:   p.DealScore(),
			})
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].DealScore > out[j].DealScore })
		return out, nil
	})
}

// PriceRange returns the price bounds for the price filter
func (s *ProductService) PriceRange(ctx context.Context) (PriceRangeResponse, error) {
	return cached(ctx, s.cache, KeyProductsPriceRange, func() (PriceRangeResponse, error) {
		r, err := s.products.PriceRange(ctx)
		if err != nil {
			return PriceRangeResponse{}, fmt.Errorf("failed to load price range: %w", err)
		}
		if r.Count == 0 {
			return PriceRangeResponse{Min: defaultPriceMin, Max: defaultPriceMax}, nil
		}
		return PriceRangeResponse{Min: r.Min, Max: r.Max}, nil
	})
}

// GetBySlug returns the product page of an active product
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*ProductDetail, error) {
	p, err := s.products.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return newMapper(ctx, s.media).detail(p), nil
}

func toDecimal(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}
