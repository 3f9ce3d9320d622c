package persistence

import (
	"context"

	"github.com/doorshop/backend/internal/domain/blog"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPostRepository implements PostRepository using GORM
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

func (r *GormPostRepository) published(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&blog.Post{}).
		Where("posts.is_published = ? AND posts.status = ?", true, blog.PostStatusPublished)
}

func withPostRelations(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Author").
		Preload("Tags", "is_active = ?", true).
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") })
}

// FindByID finds a post by its ID regardless of status
func (r *GormPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	var post blog.Post
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

// FindPublishedBySlug finds a published post by its slug
func (r *GormPostRepository) FindPublishedBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	var post blog.Post
	if err := withPostRelations(r.published(ctx)).Where("posts.slug = ?", slug).First(&post).Error; err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

func (r *GormPostRepository) listPublished(ctx context.Context, limit int, scope func(*gorm.DB) *gorm.DB) ([]blog.Post, error) {
	var posts []blog.Post
	if err := withPostRelations(scope(r.published(ctx))).Limit(limit).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Featured finds featured posts, newest first
func (r *GormPostRepository) Featured(ctx context.Context, limit int) ([]blog.Post, error) {
	return r.listPublished(ctx, limit, func(db *gorm.DB) *gorm.DB {
		return db.Where("posts.is_featured = ?", true).Order("posts.published_at DESC")
	})
}

// Recent finds the most recently published posts
func (r *GormPostRepository) Recent(ctx context.Context, limit int) ([]blog.Post, error) {
	return r.listPublished(ctx, limit, func(db *gorm.DB) *gorm.DB {
		return db.Order("posts.published_at DESC").Order("posts.created_at DESC")
	})
}

// Pinned finds pinned posts, newest first
func (r *GormPostRepository) Pinned(ctx context.Context, limit int) ([]blog.Post, error) {
	return r.listPublished(ctx, limit, func(db *gorm.DB) *gorm.DB {
		return db.Where("posts.is_pinned = ?", true).Order("posts.published_at DESC")
	})
}

// Popular finds the most viewed posts
func (r *GormPostRepository) Popular(ctx context.Context, limit int) ([]blog.Post, error) {
	return r.listPublished(ctx, limit, func(db *gorm.DB) *gorm.DB {
		return db.Order("posts.views_count DESC").Order("posts.published_at DESC")
	})
}

// Search finds one page of published posts matching the search
func (r *GormPostRepository) Search(ctx context.Context, search blog.PostSearch) ([]blog.Post, int64, error) {
	query := r.published(ctx)
	if search.Query != "" {
		cond, args := containsAny(r.db, search.Query, "posts.title", "posts.excerpt", "posts.content")
		query = query.Where(cond, args...)
	}
	if search.TagSlug != "" {
		tagged := r.db.WithContext(ctx).Table("post_tag_links").
			Select("post_tag_links.post_id").
			Joins("JOIN post_tags ON post_tags.id = post_tag_links.tag_id").
			Where("post_tags.slug = ?", search.TagSlug)
		query = query.Where("posts.id IN (?)", tagged)
	}
	if search.AuthorID != nil {
		query = query.Where("posts.author_id = ?", *search.AuthorID)
	}
	if search.IsFeatured != nil {
		query = query.Where("posts.is_featured = ?", *search.IsFeatured)
	}
	base := query.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	field := ValidateSortField(search.OrderBy, PostSortFields, "created_at")
	dir := ValidateSortOrder(search.OrderDir)

	var posts []blog.Post
	sorted := withPostRelations(base).Order("posts." + field + " " + dir).Order("posts.id ASC")
	if err := paginate(sorted, search.Filter).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// RecordView stores the view row and bumps views_count when the row is new
func (r *GormPostRepository) RecordView(ctx context.Context, view *blog.PostView) (bool, int, error) {
	var counted bool
	var views int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post blog.Post
		if err := tx.Select("id").First(&post, "id = ?", view.PostID).Error; err != nil {
			return translateError(err)
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(view)
		if res.Error != nil {
			return res.Error
		}
		counted = res.RowsAffected > 0
		if counted {
			if err := tx.Model(&blog.Post{}).Where("id = ?", view.PostID).
				UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error; err != nil {
				return err
			}
		}
		return tx.Model(&blog.Post{}).Where("id = ?", view.PostID).Select("views_count").Scan(&views).Error
	})
	if err != nil {
		return false, 0, err
	}
	return counted, views, nil
}

// RecordLike stores the like row and bumps likes_count when the row is new
func (r *GormPostRepository) RecordLike(ctx context.Context, like *blog.PostLike) (bool, int, error) {
	var liked bool
	var likes int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post blog.Post
		if err := tx.Select("id").First(&post, "id = ?", like.PostID).Error; err != nil {
			return translateError(err)
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
		if res.Error != nil {
			return res.Error
		}
		liked = res.RowsAffected > 0
		if liked {
			if err := tx.Model(&blog.Post{}).Where("id = ?", like.PostID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error; err != nil {
				return err
			}
		}
		return tx.Model(&blog.Post{}).Where("id = ?", like.PostID).Select("likes_count").Scan(&likes).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, likes, nil
}

// Ensure GormPostRepository implements PostRepository
var _ blog.PostRepository = (*GormPostRepository)(nil)

// GormTagRepository implements TagRepository using GORM
type GormTagRepository struct {
	db *gorm.DB
}

// NewGormTagRepository creates a new GormTagRepository
func NewGormTagRepository(db *gorm.DB) *GormTagRepository {
	return &GormTagRepository{db: db}
}

// FindBySlug finds an active tag by its slug
func (r *GormTagRepository) FindBySlug(ctx context.Context, slug string) (*blog.Tag, error) {
	var tag blog.Tag
	if err := r.db.WithContext(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&tag).Error; err != nil {
		return nil, translateError(err)
	}
	return &tag, nil
}

// Popular finds the active tags with the most posts
func (r *GormTagRepository) Popular(ctx context.Context, limit int) ([]blog.Tag, error) {
	var tags []blog.Tag
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("posts_count DESC, name ASC").
		Limit(limit).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Ensure GormTagRepository implements TagRepository
var _ blog.TagRepository = (*GormTagRepository)(nil)
