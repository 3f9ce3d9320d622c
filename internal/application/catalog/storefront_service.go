package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/doorshop/backend/internal/domain/shared"
	"go.uber.org/zap"
)

const (
	homeCategoryLimit      = 10
	defaultTipsLimit       = 6
	defaultSuggestionLimit = 5
	minSuggestionQuery     = 2
	defaultVideoLimit      = 6
	maxVideoLimit          = 20
)

// StorefrontService serves the home page, tips, search suggestions and videos
type StorefrontService struct {
	contentRepo  catalog.ContentRepository
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
	videoRepo    catalog.VideoRepository
	cache        *responseCache
	media        MediaResolver
	now          func() time.Time
}

// NewStorefrontService creates a new StorefrontService
func NewStorefrontService(
	contentRepo catalog.ContentRepository,
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
	videoRepo catalog.VideoRepository,
	cache shared.Cache,
	ttl time.Duration,
	logger *zap.Logger,
) *StorefrontService {
	return &StorefrontService{
		contentRepo:  contentRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		videoRepo:    videoRepo,
		cache:        newResponseCache(cache, ttl, logger),
		now:          time.Now,
	}
}

// SetMediaResolver sets how image references become URLs
func (s *StorefrontService) SetMediaResolver(media MediaResolver) {
	s.media = media
}

// Home returns the banners, the running promotions and the top level categories
func (s *StorefrontService) Home(ctx context.Context) (*HomeResponse, error) {
	return cached(ctx, s.cache, KeyHome, func() (*HomeResponse, error) {
		banners, err := s.contentRepo.ActiveBanners(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load banners: %w", err)
		}
		promotions, err := s.contentRepo.ActivePromotions(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load promotions: %w", err)
		}
		active := true
		roots, err := s.categoryRepo.List(ctx, catalog.CategoryListFilter{IsActive: &active})
		if err != nil {
			return nil, fmt.Errorf("failed to load categories: %w", err)
		}
		if len(roots) > homeCategoryLimit {
			roots = roots[:homeCategoryLimit]
		}

		m := newMapper(ctx, s.media)
		home := &HomeResponse{
			Banners:    make([]BannerResponse, 0, len(banners)),
			Promotions: make([]PromotionResponse, 0, len(promotions)),
			Categories: m.categories(roots, nil),
		}
		for _, b := range banners {
			home.Banners = append(home.Banners, BannerResponse{
				ID:        b.ID,
				Title:     b.Title,
				Image:     m.url(b.Image),
				URL:       b.URL,
				SortOrder: b.SortOrder,
			})
		}
		now := s.now()
		for i := range promotions {
			p := &promotions[i]
			if !p.RunningAt(now) {
				continue
			}
			home.Promotions = append(home.Promotions, PromotionResponse{
				ID:          p.ID,
				Title:       p.Title,
				Description: p.Description,
				Image:       m.url(p.Image),
				URL:         p.URL,
				StartsAt:    p.StartsAt,
				EndsAt:      p.EndsAt,
			})
		}
		return home, nil
	})
}

// Tips returns buying advice cards
func (s *StorefrontService) Tips(ctx context.Context, limit int) ([]TipResponse, error) {
	limit = clampLimit(limit, defaultTipsLimit, maxVideoLimit)
	tips, err := s.contentRepo.Tips(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load tips: %w", err)
	}
	m := newMapper(ctx, s.media)
	out := make([]TipResponse, 0, len(tips))
	for _, t := range tips {
		out = append(out, TipResponse{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Image:       m.url(t.Image),
			Content:     t.Content,
		})
	}
	return out, nil
}

// Suggestions returns products whose name matches the query.
// Queries shorter than two characters yield no suggestions.
func (s *StorefrontService) Suggestions(ctx context.Context, query string, limit int) ([]SuggestionItem, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSuggestionQuery {
		return []SuggestionItem{}, nil
	}
	limit = clampLimit(limit, defaultSuggestionLimit, maxVideoLimit)

	products, err := s.productRepo.Suggest(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load suggestions: %w", err)
	}
	m := newMapper(ctx, s.media)
	out := make([]SuggestionItem, 0, len(products))
	for i := range products {
		p := &products[i]
		item := SuggestionItem{ID: p.ID, Name: p.Name, Slug: p.Slug, Image: m.url(p.MainImage())}
		if c := p.PrimaryCategory(); c != nil {
			item.Category = c.Name
		}
		out = append(out, item)
	}
	return out, nil
}

// FeaturedVideos returns videos flagged as featured
func (s *StorefrontService) FeaturedVideos(ctx context.Context, limit int) ([]VideoResponse, error) {
	return s.videos(ctx, limit, s.videoRepo.Featured)
}

// LatestVideos returns the most recently added videos
func (s *StorefrontService) LatestVideos(ctx context.Context, limit int) ([]VideoResponse, error) {
	return s.videos(ctx, limit, s.videoRepo.Latest)
}

// PopularVideos returns videos of the most popular products
func (s *StorefrontService) PopularVideos(ctx context.Context, limit int) ([]VideoResponse, error) {
	return s.videos(ctx, limit, s.videoRepo.Popular)
}

// ProductVideos returns the videos of the product with the given slug
func (s *StorefrontService) ProductVideos(ctx context.Context, slug string) ([]VideoResponse, error) {
	p, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	videos, err := s.videoRepo.ByProduct(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product videos: %w", err)
	}
	return newMapper(ctx, s.media).videos(videos), nil
}

func (s *StorefrontService) videos(ctx context.Context, limit int, load func(context.Context, int) ([]catalog.Video, error)) ([]VideoResponse, error) {
	videos, err := load(ctx, clampLimit(limit, defaultVideoLimit, maxVideoLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to load videos: %w", err)
	}
	return newMapper(ctx, s.media).videos(videos), nil
}
