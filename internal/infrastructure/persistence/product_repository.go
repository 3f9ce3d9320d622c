package persistence

import (
	"context"
	"time"

	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const rankingJoin = "LEFT JOIN product_rankings pr ON pr.product_id = products.id"

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&catalog.Product{}).Where("products.is_active = ?", true)
}

func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, created_at ASC")
}

// withCard preloads what a product card renders
func withCard(query *gorm.DB) *gorm.DB {
	return query.Preload("Brand").Preload("Category").Preload("Images", orderedImages)
}

// FindByID finds an active product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := withCard(r.active(ctx)).First(&product, "products.id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

// FindBySlug finds an active product with every relation the detail page shows
func (r *GormProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	var product catalog.Product
	err := withCard(r.active(ctx)).
		Preload("Catalog").
		Preload("Categories", "is_active = ?", true).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("created_at DESC")
		}).
		Where("products.slug = ?", slug).
		First(&product).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

// List finds one page of products matching the filter
func (r *GormProductRepository) List(ctx context.Context, filter catalog.ProductListFilter) ([]catalog.Product, int64, error) {
	base := r.applyListFilter(ctx, r.active(ctx), filter).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []catalog.Product
	query := withCard(applyProductSort(base, filter.Sort))
	if err := paginate(query, filter.Filter).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *GormProductRepository) applyListFilter(ctx context.Context, query *gorm.DB, filter catalog.ProductListFilter) *gorm.DB {
	sub := r.db.WithContext(ctx)

	if filter.Search != "" {
		cond, args := containsAny(r.db, filter.Search, "products.name", "products.description")
		query = query.Where(cond, args...)
	}
	if filter.CategorySlug != "" {
		direct := sub.Table("categories").Select("id").Where("slug = ?", filter.CategorySlug)
		linked := sub.Table("product_categories").
			Select("product_categories.product_id").
			Joins("JOIN categories ON categories.id = product_categories.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
		query = query.Where("(products.category_id IN (?) OR products.id IN (?))", direct, linked)
	}
	if filter.BrandSlug != "" {
		query = query.Where("products.brand_id IN (?)",
			sub.Table("brands").Select("id").Where("slug = ?", filter.BrandSlug))
	}
	if filter.CatalogSlug != "" {
		query = query.Where("products.catalog_id IN (?)",
			sub.Table("catalogs").Select("id").Where("slug = ?", filter.CatalogSlug))
	}
	if filter.MinPrice != nil {
		query = query.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.price <= ?", *filter.MaxPrice)
	}
	if filter.InStock != nil {
		query = query.Where("products.in_stock = ?", *filter.InStock)
	}
	if filter.IsNew != nil {
		query = query.Where("products.is_new = ?", *filter.IsNew)
	}
	if filter.Type != "" {
		query = query.Where("products.type = ?", filter.Type)
	}
	return query
}

func applyProductSort(query *gorm.DB, sort catalog.ProductSort) *gorm.DB {
	switch sort {
	case catalog.SortPriceAsc:
		query = query.Order("products.price ASC")
	case catalog.SortPriceDesc:
		query = query.Order("products.price DESC")
	case catalog.SortNameAsc:
		query = query.Order("products.name ASC")
	case catalog.SortNameDesc:
		query = query.Order("products.name DESC")
	case catalog.SortNewest:
		query = query.Order("products.created_at DESC")
	case catalog.SortPopular:
		query = query.Order("products.popularity_score DESC")
	case catalog.SortRating:
		query = query.Order("products.rating DESC").Order("products.review_count DESC")
	default:
		query = query.Joins(rankingJoin).
			Order("COALESCE(pr.ranking_score, 0) DESC").
			Order("products.popularity_score DESC").
			Order("products.created_at DESC")
	}
	return query.Order("products.id ASC")
}

// Featured lists promoted products first, then by ranking score.
// The whole ordering is one clause: a later Order call would drop an expression-only OrderBy.
func (r *GormProductRepository) Featured(ctx context.Context, limit int) ([]catalog.Product, error) {
	var products []catalog.Product
	order := clause.OrderBy{Expression: clause.Expr{
		SQL: "CASE WHEN pr.is_featured = ? OR pr.priority_until > ? THEN 0 ELSE 1 END ASC, " +
			"COALESCE(pr.ranking_score, 0) DESC, products.popularity_score DESC, products.id ASC",
		Vars:               []any{true, time.Now().UTC()},
		WithoutParentheses: true,
	}}
	err := withCard(r.active(ctx)).
		Joins(rankingJoin).
		Order(order).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Newest lists the most recently created products
func (r *GormProductRepository) Newest(ctx context.Context, limit int) ([]catalog.Product, error) {
	var products []catalog.Product
	err := withCard(r.active(ctx)).
		Order("products.created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Discounted lists up to limit products discounted by at least minPercent, best deals first.
// The deal score expression mirrors catalog.Product.DealScore.
func (r *GormProductRepository) Discounted(ctx context.Context, minPercent float64, limit int) ([]catalog.Product, error) {
	const percent = "ROUND((products.price - products.discount_price) * 100.0 / products.price, 2)"
	order := clause.OrderBy{Expression: clause.Expr{
		SQL:                percent + " * 0.5 + products.rating * 3 + products.popularity_score * 0.2 DESC, products.id ASC",
		WithoutParentheses: true,
	}}
	var products []catalog.Product
	err := withCard(r.active(ctx)).
		Where("products.discount_price IS NOT NULL AND products.discount_price < products.price AND products.price > 0").
		Where(percent+" >= ?", minPercent).
		Order(order).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// PriceRange returns the price bounds of active products
func (r *GormProductRepository) PriceRange(ctx context.Context) (catalog.PriceRange, error) {
	var row struct {
		MinPrice decimal.NullDecimal
		MaxPrice decimal.NullDecimal
		Total    int64
	}
	err := r.active(ctx).
		Select("MIN(products.price) AS min_price, MAX(products.price) AS max_price, COUNT(*) AS total").
		Scan(&row).Error
	if err != nil {
		return catalog.PriceRange{}, err
	}
	return catalog.PriceRange{
		Min:   row.MinPrice.Decimal,
		Max:   row.MaxPrice.Decimal,
		Count: row.Total,
	}, nil
}

// Suggest finds products whose name contains query, most popular first
func (r *GormProductRepository) Suggest(ctx context.Context, query string, limit int) ([]catalog.Product, error) {
	var products []catalog.Product
	cond, args := containsAny(r.db, query, "products.name")
	err := r.active(ctx).
		Preload("Category").
		Preload("Images", orderedImages).
		Where(cond, args...).
		Order("products.popularity_score DESC").
		Order("products.name ASC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ListByCategory finds products whose primary or linked category is categoryID
func (r *GormProductRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]catalog.Product, int64, error) {
	linked := r.db.WithContext(ctx).Table("product_categories").
		Select("product_id").
		Where("category_id = ?", categoryID)
	base := r.active(ctx).
		Where("(products.category_id = ? OR products.id IN (?))", categoryID, linked).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	field := ValidateSortField(filter.OrderBy, CategoryProductSortFields, "name")
	order := "ASC"
	if filter.OrderDir != "" {
		order = ValidateSortOrder(filter.OrderDir)
	}

	var products []catalog.Product
	query := withCard(base).Order("products." + field + " " + order).Order("products.id ASC")
	if err := paginate(query, filter).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ListByCatalog finds the products of a catalog, most popular first
func (r *GormProductRepository) ListByCatalog(ctx context.Context, catalogID uuid.UUID, filter shared.Filter) ([]catalog.Product, int64, error) {
	base := r.active(ctx).Where("products.catalog_id = ?", catalogID).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []catalog.Product
	query := withCard(base).
		Order("products.popularity_score DESC").
		Order("products.created_at DESC")
	if err := paginate(query, filter).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// TopByBrand finds the most popular products of a brand
func (r *GormProductRepository) TopByBrand(ctx context.Context, brandID uuid.UUID, limit int) ([]catalog.Product, error) {
	var products []catalog.Product
	err := withCard(r.active(ctx)).
		Where("products.brand_id = ?", brandID).
		Order("products.popularity_score DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// CountByBrand counts active products per brand
func (r *GormProductRepository) CountByBrand(ctx context.Context) (map[uuid.UUID]int64, error) {
	return r.countBy(ctx, "brand_id")
}

// CountByCatalog counts active products per catalog
func (r *GormProductRepository) CountByCatalog(ctx context.Context) (map[uuid.UUID]int64, error) {
	return r.countBy(ctx, "catalog_id")
}

func (r *GormProductRepository) countBy(ctx context.Context, column string) (map[uuid.UUID]int64, error) {
	var rows []countRow
	err := r.active(ctx).
		Select("products." + column + " AS id, COUNT(*) AS count").
		Where("products." + column + " IS NOT NULL").
		Group("products." + column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return countsByID(rows), nil
}

// CountByCategory counts distinct active products per category over direct and linked categories
func (r *GormProductRepository) CountByCategory(ctx context.Context) (map[uuid.UUID]int64, error) {
	var rows []countRow
	err := r.db.WithContext(ctx).Raw(`
SELECT t.category_id AS id, COUNT(DISTINCT t.product_id) AS count FROM (
	SELECT id AS product_id, category_id FROM products
	WHERE is_active = ? AND category_id IS NOT NULL
	UNION
	SELECT pc.product_id, pc.category_id FROM product_categories pc
	JOIN products p ON p.id = pc.product_id
	WHERE p.is_active = ?
) t GROUP BY t.category_id`, true, true).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return countsByID(rows), nil
}

// ExistsByID reports whether an active product has the id
func (r *GormProductRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.active(ctx).Where("products.id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
