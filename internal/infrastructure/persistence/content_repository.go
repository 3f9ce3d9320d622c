package persistence

import (
	"context"
	"time"

	"github.com/doorshop/backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormContentRepository implements ContentRepository using GORM
type GormContentRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormContentRepository creates a new GormContentRepository
func NewGormContentRepository(db *gorm.DB) *GormContentRepository {
	return &GormContentRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// ActiveBanners finds active banners in display order
func (r *GormContentRepository) ActiveBanners(ctx context.Context) ([]catalog.Banner, error) {
	var banners []catalog.Banner
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// ActivePromotions finds active promotions whose date window contains now
func (r *GormContentRepository) ActivePromotions(ctx context.Context) ([]catalog.Promotion, error) {
	now := r.now()
	var promotions []catalog.Promotion
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("(starts_at IS NULL OR starts_at <= ?)", now).
		Where("(ends_at IS NULL OR ends_at >= ?)", now).
		Order("created_at DESC").
		Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

// Tips finds the newest tips
func (r *GormContentRepository) Tips(ctx context.Context, limit int) ([]catalog.Tip, error) {
	var tips []catalog.Tip
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

// Ensure GormContentRepository implements ContentRepository
var _ catalog.ContentRepository = (*GormContentRepository)(nil)
