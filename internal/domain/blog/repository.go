package blog

import (
	"context"

	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PostSearch narrows a post search
type PostSearch struct {
	shared.Filter
	Query      string
	TagSlug    string
	AuthorID   *uuid.UUID
	IsFeatured *bool
}

// PostRepository reads published posts and records engagement
type PostRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)
	// FindPublishedBySlug returns shared.ErrNotFound for drafts and archived posts
	FindPublishedBySlug(ctx context.Context, slug string) (*Post, error)
	Featured(ctx context.Context, limit int) ([]Post, error)
	Recent(ctx context.Context, limit int) ([]Post, error)
	Pinned(ctx context.Context, limit int) ([]Post, error)
	Popular(ctx context.Context, limit int) ([]Post, error)
	Search(ctx context.Context, search PostSearch) ([]Post, int64, error)

	// RecordView inserts a view row and bumps views_count unless the (post, ip, day) row exists
	RecordView(ctx context.Context, view *PostView) (bool, int, error)
	// RecordLike inserts a like row and bumps likes_count unless the (post, ip) row exists
	RecordLike(ctx context.Context, like *PostLike) (bool, int, error)
}

// TagRepository reads post tags
type TagRepository interface {
	FindBySlug(ctx context.Context, slug string) (*Tag, error)
	Popular(ctx context.Context, limit int) ([]Tag, error)
}
