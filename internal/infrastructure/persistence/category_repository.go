package persistence

import (
	"context"

	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds an active category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).
		Preload("Brand").
		Where("id = ? AND is_active = ?", id, true).
		First(&category).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

// FindBySlug finds an active category by its slug
func (r *GormCategoryRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).
		Preload("Brand").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&category).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

// List finds categories under a parent, or root categories when ParentID is nil
func (r *GormCategoryRepository) List(ctx context.Context, filter catalog.CategoryListFilter) ([]catalog.Category, error) {
	query := r.db.WithContext(ctx).Model(&catalog.Category{})
	if filter.ParentID != nil {
		query = query.Where("parent_id = ?", *filter.ParentID)
	} else {
		query = query.Where("parent_id IS NULL")
	}
	if filter.BrandID != nil {
		query = query.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var categories []catalog.Category
	if err := query.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindAllActive finds every active category, optionally of one brand
func (r *GormCategoryRepository) FindAllActive(ctx context.Context, brandID *uuid.UUID) ([]catalog.Category, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if brandID != nil {
		query = query.Where("brand_id = ?", *brandID)
	}

	var categories []catalog.Category
	if err := query.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindChildren finds the active direct children of a category
func (r *GormCategoryRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := r.db.WithContext(ctx).
		Where("parent_id = ? AND is_active = ?", parentID, true).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Ensure GormCategoryRepository implements CategoryRepository
var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)
