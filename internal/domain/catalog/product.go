package catalog

import (
	"strings"

	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Product represents a sellable item in the catalog
type Product struct {
	shared.BaseEntity
	UUID            string           `gorm:"column:uuid;type:varchar(36);not null;uniqueIndex"`
	Name            string           `gorm:"type:varchar(255);not null"`
	Slug            string           `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description     string           `gorm:"type:text"`
	Price           decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	DiscountPrice   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	BrandID         *uuid.UUID       `gorm:"type:uuid;index"`
	CatalogID       *uuid.UUID       `gorm:"type:uuid;index"`
	CategoryID      *uuid.UUID       `gorm:"type:uuid;index"`
	InStock         bool             `gorm:"not null"`
	IsActive        bool             `gorm:"not null;index"`
	IsNew           bool             `gorm:"not null;default:false"`
	Type            string           `gorm:"type:varchar(100);index"`
	Characteristics shared.JSONMap   `gorm:"type:jsonb"`
	Attributes      shared.JSONMap   `gorm:"type:jsonb"`
	PopularityScore float64          `gorm:"not null;default:0"`
	Rating          float64          `gorm:"not null;default:0"`
	ReviewCount     int              `gorm:"not null;default:0"`
	MetaTitle       string           `gorm:"type:varchar(255)"`
	MetaDescription string           `gorm:"type:varchar(500)"`
	MetaKeywords    string           `gorm:"type:varchar(255)"`

	Brand      *Brand         `gorm:"foreignKey:BrandID"`
	Catalog    *Catalog       `gorm:"foreignKey:CatalogID"`
	Category   *Category      `gorm:"foreignKey:CategoryID"`
	Categories []Category     `gorm:"many2many:product_categories;"`
	Images     []ProductImage `gorm:"foreignKey:ProductID"`
	Videos     []Video        `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// ProductImage is one picture in a product gallery
type ProductImage struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"column:url;type:varchar(500);not null"`
	AltText   string    `gorm:"type:varchar(255)"`
	IsMain    bool      `gorm:"not null;default:false"`
	SortOrder int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductImage) TableName() string {
	return "product_images"
}

// NewProduct creates an active, in-stock product
func NewProduct(name, slug string, price decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 255 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 255 characters")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if slug == "" {
		slug = Slugify(name)
	}
	base := shared.NewBaseEntity()
	return &Product{
		BaseEntity: base,
		UUID:       uuid.NewString(),
		Name:       name,
		Slug:       slug,
		Price:      price,
		InStock:    true,
		IsActive:   true,
	}, nil
}

// SetDiscountPrice sets or clears (nil) the discounted price
func (p *Product) SetDiscountPrice(discount *decimal.Decimal) error {
	if discount != nil && discount.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Discount price cannot be negative")
	}
	p.DiscountPrice = discount
	p.Touch()
	return nil
}

// HasDiscount reports whether the discount price is set and below the regular price
func (p *Product) HasDiscount() bool {
	return p.DiscountPrice != nil && p.DiscountPrice.LessThan(p.Price) && p.Price.IsPositive()
}

// EffectivePrice returns the price the customer pays
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.HasDiscount() {
		return *p.DiscountPrice
	}
	return p.Price
}

// DiscountPercent returns the discount as a percentage of the regular price, rounded to 2 places
func (p *Product) DiscountPercent() float64 {
	if !p.HasDiscount() {
		return 0
	}
	pct := p.Price.Sub(*p.DiscountPrice).Div(p.Price).Mul(hundred).Round(2)
	return pct.InexactFloat64()
}

// Savings returns price minus discount price, or zero
func (p *Product) Savings() decimal.Decimal {
	if !p.HasDiscount() {
		return decimal.Zero
	}
	return p.Price.Sub(*p.DiscountPrice)
}

// DealScore weighs discount, rating and popularity into one sortable number
func (p *Product) DealScore() float64 {
	return p.DiscountPercent()*0.5 + p.Rating*10*0.3 + p.PopularityScore*0.2
}

// MainImage returns the main gallery image, else the first, else ""
func (p *Product) MainImage() string {
	return pickMainImage(len(p.Images), func(i int) (string, bool) {
		return p.Images[i].URL, p.Images[i].IsMain
	})
}

// PrimaryCategory returns the direct category, falling back to the first linked one
func (p *Product) PrimaryCategory() *Category {
	if p.Category != nil {
		return p.Category
	}
	if len(p.Categories) > 0 {
		return &p.Categories[0]
	}
	return nil
}

// ProductSort names an ordering of product listings
type ProductSort string

const (
	SortSmart     ProductSort = "smart"
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
	SortNameAsc   ProductSort = "name_asc"
	SortNameDesc  ProductSort = "name_desc"
	SortNewest    ProductSort = "newest"
	SortPopular   ProductSort = "popular"
	SortRating    ProductSort = "rating"
)

// ParseProductSort returns the sort for s, defaulting to smart
func ParseProductSort(s string) (ProductSort, error) {
	switch ProductSort(s) {
	case "":
		return SortSmart, nil
	case SortSmart, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc, SortNewest, SortPopular, SortRating:
		return ProductSort(s), nil
	}
	return "", shared.NewDomainError("INVALID_SORT", "Unsupported sort: "+s)
}
