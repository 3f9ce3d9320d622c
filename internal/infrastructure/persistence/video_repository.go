package persistence

import (
	"context"

	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVideoRepository implements VideoRepository using GORM
type GormVideoRepository struct {
	db *gorm.DB
}

// NewGormVideoRepository creates a new GormVideoRepository
func NewGormVideoRepository(db *gorm.DB) *GormVideoRepository {
	return &GormVideoRepository{db: db}
}

func (r *GormVideoRepository) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&catalog.Video{}).
		Preload("Product").
		Where("videos.is_active = ?", true)
}

// Featured finds featured videos, newest first
func (r *GormVideoRepository) Featured(ctx context.Context, limit int) ([]catalog.Video, error) {
	var videos []catalog.Video
	if err := r.active(ctx).
		Where("videos.is_featured = ?", true).
		Order("videos.created_at DESC").
		Limit(limit).
		Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// Latest finds the newest videos
func (r *GormVideoRepository) Latest(ctx context.Context, limit int) ([]catalog.Video, error) {
	var videos []catalog.Video
	if err := r.active(ctx).Order("videos.created_at DESC").Limit(limit).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// Popular finds videos ordered by their product's popularity, then rating
func (r *GormVideoRepository) Popular(ctx context.Context, limit int) ([]catalog.Video, error) {
	var videos []catalog.Video
	if err := r.active(ctx).
		Joins("LEFT JOIN products p ON p.id = videos.product_id").
		Order("COALESCE(p.popularity_score, 0) DESC").
		Order("COALESCE(p.rating, 0) DESC").
		Order("videos.created_at DESC").
		Limit(limit).
		Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// ByProduct finds the active videos of a product
func (r *GormVideoRepository) ByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.Video, error) {
	var videos []catalog.Video
	if err := r.active(ctx).
		Where("videos.product_id = ?", productID).
		Order("videos.created_at DESC").
		Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// Ensure GormVideoRepository implements VideoRepository
var _ catalog.VideoRepository = (*GormVideoRepository)(nil)
