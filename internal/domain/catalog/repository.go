package catalog

import (
	"context"

	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductListFilter narrows a storefront product listing
type ProductListFilter struct {
	shared.Filter
	CategorySlug string
	BrandSlug    string
	CatalogSlug  string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	InStock      *bool
	IsNew        *bool
	Type         string
	Sort         ProductSort
}

// PriceRange is the min and max price over active products
type PriceRange struct {
	Min   decimal.Decimal
	Max   decimal.Decimal
	Count int64
}

// ProductRepository reads products for the storefront.
// Only active products are ever returned.
type ProductRepository interface {
	// FindByID returns a product with its brand and images
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// FindBySlug returns a product with brand, catalog, categories, images and videos
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	// List returns a page of products and the total match count
	List(ctx context.Context, filter ProductListFilter) ([]Product, int64, error)
	// Featured returns products promoted by their ranking record first, then by score
	Featured(ctx context.Context, limit int) ([]Product, error)
	// Newest returns the most recently created products
	Newest(ctx context.Context, limit int) ([]Product, error)
	// Discounted returns up to limit products discounted by at least minPercent, best deals first
	Discounted(ctx context.Context, minPercent float64, limit int) ([]Product, error)
	// PriceRange returns the price bounds of the active assortment
	PriceRange(ctx context.Context) (PriceRange, error)
	// Suggest returns products whose name matches query
	Suggest(ctx context.Context, query string, limit int) ([]Product, error)
	// ListByCategory pages through products linked to a category
	ListByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]Product, int64, error)
	// ListByCatalog pages through the products of a catalog by popularity
	ListByCatalog(ctx context.Context, catalogID uuid.UUID, filter shared.Filter) ([]Product, int64, error)
	// TopByBrand returns the most popular products of a brand
	TopByBrand(ctx context.Context, brandID uuid.UUID, limit int) ([]Product, error)
	// CountByBrand returns active product counts keyed by brand
	CountByBrand(ctx context.Context) (map[uuid.UUID]int64, error)
	// CountByCatalog returns active product counts keyed by catalog
	CountByCatalog(ctx context.Context) (map[uuid.UUID]int64, error)
	// CountByCategory returns active product counts keyed by category, using both direct and linked categories
	CountByCategory(ctx context.Context) (map[uuid.UUID]int64, error)
	// ExistsByID reports whether an active product with the id exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// CategoryListFilter narrows a category listing
type CategoryListFilter struct {
	ParentID *uuid.UUID
	BrandID  *uuid.UUID
	IsActive *bool
}

// CategoryRepository reads categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	// List returns categories ordered by name; a nil ParentID selects roots
	List(ctx context.Context, filter CategoryListFilter) ([]Category, error)
	// FindAllActive returns every active category, optionally limited to one brand
	FindAllActive(ctx context.Context, brandID *uuid.UUID) ([]Category, error)
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]Category, error)
}

// CatalogListFilter narrows a catalog listing
type CatalogListFilter struct {
	shared.Filter
	CategoryID *uuid.UUID
	BrandID    *uuid.UUID
	IsActive   *bool
}

// CatalogRepository reads catalogs
type CatalogRepository interface {
	FindBySlug(ctx context.Context, slug string) (*Catalog, error)
	// List pages through catalogs; product_count ordering is applied with the counts join
	List(ctx context.Context, filter CatalogListFilter) ([]Catalog, int64, error)
	ListActive(ctx context.Context) ([]Catalog, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]Catalog, error)
	ListByBrand(ctx context.Context, brandID uuid.UUID, filter shared.Filter) ([]Catalog, int64, error)
}

// BrandRepository reads brands
type BrandRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Brand, error)
	FindBySlug(ctx context.Context, slug string) (*Brand, error)
	ListActive(ctx context.Context) ([]Brand, error)
}

// VideoRepository reads storefront videos
type VideoRepository interface {
	Featured(ctx context.Context, limit int) ([]Video, error)
	Latest(ctx context.Context, limit int) ([]Video, error)
	// Popular orders by the linked product's popularity then rating
	Popular(ctx context.Context, limit int) ([]Video, error)
	ByProduct(ctx context.Context, productID uuid.UUID) ([]Video, error)
}

// ContentRepository reads home page content
type ContentRepository interface {
	ActiveBanners(ctx context.Context) ([]Banner, error)
	ActivePromotions(ctx context.Context) ([]Promotion, error)
	Tips(ctx context.Context, limit int) ([]Tip, error)
}
