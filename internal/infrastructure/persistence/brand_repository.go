package persistence

import (
	"context"

	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBrandRepository implements BrandRepository using GORM
type GormBrandRepository struct {
	db *gorm.DB
}

// NewGormBrandRepository creates a new GormBrandRepository
func NewGormBrandRepository(db *gorm.DB) *GormBrandRepository {
	return &GormBrandRepository{db: db}
}

// FindByID finds an active brand by its ID
func (r *GormBrandRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Brand, error) {
	var brand catalog.Brand
	if err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&brand).Error; err != nil {
		return nil, translateError(err)
	}
	return &brand, nil
}

// FindBySlug finds an active brand by its slug
func (r *GormBrandRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Brand, error) {
	var brand catalog.Brand
	if err := r.db.WithContext(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&brand).Error; err != nil {
		return nil, translateError(err)
	}
	return &brand, nil
}

// ListActive finds all active brands ordered by name
func (r *GormBrandRepository) ListActive(ctx context.Context) ([]catalog.Brand, error) {
	var brands []catalog.Brand
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name ASC").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// Ensure GormBrandRepository implements BrandRepository
var _ catalog.BrandRepository = (*GormBrandRepository)(nil)
