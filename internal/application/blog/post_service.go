package blog

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/doorshop/backend/internal/domain/analytics"
	"github.com/doorshop/backend/internal/domain/blog"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultFeaturedLimit = 6
	defaultRecentLimit   = 12
	defaultPinnedLimit   = 5
	defaultPopularLimit  = 10
	defaultTagsLimit     = 8
	maxListLimit         = 50
	defaultPerPage       = 12
	minSearchQuery       = 2
)

// PostService serves published posts and records views and likes
type PostService struct {
	posts  blog.PostRepository
	tags   blog.TagRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewPostService creates a new PostService
func NewPostService(posts blog.PostRepository, tags blog.TagRepository, logger *zap.Logger) *PostService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostService{posts: posts, tags: tags, logger: logger, now: time.Now}
}

// Featured returns featured posts
func (s *PostService) Featured(ctx context.Context, limit int) ([]PostCard, error) {
	return s.list(ctx, clampLimit(limit, defaultFeaturedLimit), s.posts.Featured)
}

// Recent returns the latest posts
func (s *PostService) Recent(ctx context.Context, limit int) ([]PostCard, error) {
	return s.list(ctx, clampLimit(limit, defaultRecentLimit), s.posts.Recent)
}

// Pinned returns pinned posts
func (s *PostService) Pinned(ctx context.Context, limit int) ([]PostCard, error) {
	return s.list(ctx, clampLimit(limit, defaultPinnedLimit), s.posts.Pinned)
}

// Popular returns the most viewed posts
func (s *PostService) Popular(ctx context.Context, limit int) ([]PostCard, error) {
	return s.list(ctx, clampLimit(limit, defaultPopularLimit), s.posts.Popular)
}

func (s *PostService) list(ctx context.Context, limit int, load func(context.Context, int) ([]blog.Post, error)) ([]PostCard, error) {
	posts, err := load(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}
	return ToPostCards(posts), nil
}

// Search pages through published posts matching the query
func (s *PostService) Search(ctx context.Context, q SearchQuery) (shared.Paginated[PostCard], error) {
	q.Q = strings.TrimSpace(q.Q)
	if q.Q != "" && utf8.RuneCountInString(q.Q) < minSearchQuery {
		return shared.Paginated[PostCard]{}, shared.NewValidationError(
			fmt.Sprintf("Search query must be at least %d characters", minSearchQuery))
	}
	page, perPage := pageDefaults(q.Page, q.PerPage)

	search := blog.PostSearch{
		Filter: shared.Filter{
			Page:     page,
			PageSize: perPage,
			OrderBy:  q.OrderBy,
			OrderDir: q.OrderDir,
		},
		Query:      q.Q,
		TagSlug:    q.TagSlug,
		IsFeatured: q.IsFeatured,
	}
	if q.AuthorID != "" {
		id, err := uuid.Parse(q.AuthorID)
		if err != nil {
			return shared.Paginated[PostCard]{}, shared.NewValidationError("Invalid author_id")
		}
		search.AuthorID = &id
	}

	posts, total, err := s.posts.Search(ctx, search)
	if err != nil {
		return shared.Paginated[PostCard]{}, fmt.Errorf("failed to search posts: %w", err)
	}
	return shared.NewPaginated(ToPostCards(posts), total, page, perPage), nil
}

// PopularTags returns the tags with the most posts
func (s *PostService) PopularTags(ctx context.Context, limit int) ([]TagResponse, error) {
	tags, err := s.tags.Popular(ctx, clampLimit(limit, defaultTagsLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}
	out := make([]TagResponse, 0, len(tags))
	for i := range tags {
		out = append(out, toTag(&tags[i]))
	}
	return out, nil
}

// TagBySlug returns a tag with one page of its published posts
func (s *PostService) TagBySlug(ctx context.Context, slug string, page, perPage int) (*TagDetail, error) {
	tag, err := s.tags.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	posts, err := s.Search(ctx, SearchQuery{
		TagSlug: tag.Slug,
		OrderBy: "published_at",
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return nil, err
	}
	return &TagDetail{Tag: toTag(tag), Posts: posts}, nil
}

// GetBySlug returns a published post
func (s *PostService) GetBySlug(ctx context.Context, slug string) (*PostDetail, error) {
	post, err := s.posts.FindPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return ToPostDetail(post), nil
}

// RecordView counts a view at most once per client IP per UTC day
func (s *PostService) RecordView(ctx context.Context, postID uuid.UUID, clientIP string) (*ViewResult, error) {
	if err := s.ensureVisible(ctx, postID); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	counted, views, err := s.posts.RecordView(ctx, &blog.PostView{
		ID:       uuid.New(),
		PostID:   postID,
		IPHash:   analytics.Hash(clientIP),
		ViewedOn: analytics.DayKey(now),
		ViewedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record post view: %w", err)
	}
	if counted {
		s.logger.Debug("post view counted", zap.String("post_id", postID.String()), zap.Int("views", views))
	}
	return &ViewResult{Counted: counted, ViewsCount: views}, nil
}

// Like records a like at most once per client IP
func (s *PostService) Like(ctx context.Context, postID uuid.UUID, clientIP string) (*LikeResult, error) {
	if err := s.ensureVisible(ctx, postID); err != nil {
		return nil, err
	}
	liked, likes, err := s.posts.RecordLike(ctx, &blog.PostLike{
		ID:        uuid.New(),
		PostID:    postID,
		IPHash:    analytics.Hash(clientIP),
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record post like: %w", err)
	}
	return &LikeResult{Liked: liked, LikesCount: likes}, nil
}

func (s *PostService) ensureVisible(ctx context.Context, postID uuid.UUID) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if !post.IsVisible() {
		return shared.ErrNotFound
	}
	return nil
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, maxListLimit)
}

func pageDefaults(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	return page, min(perPage, 100)
}
