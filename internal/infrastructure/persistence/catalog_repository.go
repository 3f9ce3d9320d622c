package persistence

import (
	"context"

	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GormCatalogRepository
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func withCatalogRelations(query *gorm.DB) *gorm.DB {
	return query.Preload("Brand").Preload("Category").Preload("Images", orderedImages)
}

// FindBySlug finds an active catalog by its slug
func (r *GormCatalogRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Catalog, error) {
	var c catalog.Catalog
	if err := withCatalogRelations(r.db.WithContext(ctx)).
		Where("catalogs.slug = ? AND catalogs.is_active = ?", slug, true).
		First(&c).Error; err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

// List finds one page of catalogs
func (r *GormCatalogRepository) List(ctx context.Context, filter catalog.CatalogListFilter) ([]catalog.Catalog, int64, error) {
	query := r.db.WithContext(ctx).Model(&catalog.Catalog{})
	if filter.CategoryID != nil {
		query = query.Where("catalogs.category_id = ?", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		query = query.Where("catalogs.brand_id = ?", *filter.BrandID)
	}
	if filter.IsActive != nil {
		query = query.Where("catalogs.is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		cond, args := containsAny(r.db, filter.Search, "catalogs.name", "catalogs.description")
		query = query.Where(cond, args...)
	}
	base := query.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := CatalogSorts[filter.OrderBy]
	if !ok {
		order = CatalogSorts["name"]
	}
	sorted := base
	if filter.OrderBy == "popular" || filter.OrderBy == "product_count" {
		counts := r.db.WithContext(ctx).Model(&catalog.Product{}).
			Select("catalog_id, COUNT(*) AS product_count").
			Where("is_active = ?", true).
			Group("catalog_id")
		sorted = base.Select("catalogs.*").Joins("LEFT JOIN (?) pc ON pc.catalog_id = catalogs.id", counts)
	}

	var catalogs []catalog.Catalog
	query = withCatalogRelations(sorted).Order(order).Order("catalogs.id ASC")
	if err := paginate(query, filter.Filter).Find(&catalogs).Error; err != nil {
		return nil, 0, err
	}
	return catalogs, total, nil
}

// ListActive finds all active catalogs ordered by name
func (r *GormCatalogRepository) ListActive(ctx context.Context) ([]catalog.Catalog, error) {
	var catalogs []catalog.Catalog
	if err := withCatalogRelations(r.db.WithContext(ctx)).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&catalogs).Error; err != nil {
		return nil, err
	}
	return catalogs, nil
}

// ListByCategory finds the active catalogs of a category
func (r *GormCatalogRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.Catalog, error) {
	var catalogs []catalog.Catalog
	if err := withCatalogRelations(r.db.WithContext(ctx)).
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Order("name ASC").
		Find(&catalogs).Error; err != nil {
		return nil, err
	}
	return catalogs, nil
}

// ListByBrand finds one page of a brand's active catalogs
func (r *GormCatalogRepository) ListByBrand(ctx context.Context, brandID uuid.UUID, filter shared.Filter) ([]catalog.Catalog, int64, error) {
	base := r.db.WithContext(ctx).Model(&catalog.Catalog{}).
		Where("brand_id = ? AND is_active = ?", brandID, true).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var catalogs []catalog.Catalog
	query := withCatalogRelations(base).Order("name ASC")
	if err := paginate(query, filter).Find(&catalogs).Error; err != nil {
		return nil, 0, err
	}
	return catalogs, total, nil
}

// Ensure GormCatalogRepository implements CatalogRepository
var _ catalog.CatalogRepository = (*GormCatalogRepository)(nil)
