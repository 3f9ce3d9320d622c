package catalog

import (
	"strings"

	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Catalog groups the products of one brand line within a category
type Catalog struct {
	shared.BaseEntity
	Name        string         `gorm:"type:varchar(255);not null"`
	Slug        string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string         `gorm:"type:text"`
	Image       string         `gorm:"type:varchar(500)"`
	IsActive    bool           `gorm:"not null"`
	CategoryID  *uuid.UUID     `gorm:"type:uuid;index"`
	BrandID     *uuid.UUID     `gorm:"type:uuid;index"`
	Category    *Category      `gorm:"foreignKey:CategoryID"`
	Brand       *Brand         `gorm:"foreignKey:BrandID"`
	Images      []CatalogImage `gorm:"foreignKey:CatalogID"`
}

// TableName returns the table name for GORM
func (Catalog) TableName() string {
	return "catalogs"
}

// CatalogImage is one picture of a catalog
type CatalogImage struct {
	shared.BaseEntity
	CatalogID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"column:url;type:varchar(500);not null"`
	AltText   string    `gorm:"type:varchar(255)"`
	IsMain    bool      `gorm:"not null;default:false"`
	SortOrder int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (CatalogImage) TableName() string {
	return "catalog_images"
}

// NewCatalog creates an active catalog
func NewCatalog(name, slug string, categoryID, brandID *uuid.UUID) (*Catalog, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Catalog name cannot be empty")
	}
	if slug == "" {
		slug = Slugify(name)
	}
	return &Catalog{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Slug:       slug,
		IsActive:   true,
		CategoryID: categoryID,
		BrandID:    brandID,
	}, nil
}

// MainImage returns the catalog's cover: its own image, then the main gallery image, then the first one
func (c *Catalog) MainImage() string {
	if c.Image != "" {
		return c.Image
	}
	return pickMainImage(len(c.Images), func(i int) (string, bool) {
		return c.Images[i].URL, c.Images[i].IsMain
	})
}

// pickMainImage returns the url flagged as main, else the first url, else ""
func pickMainImage(n int, at func(i int) (string, bool)) string {
	first := ""
	for i := 0; i < n; i++ {
		url, main := at(i)
		if main {
			return url
		}
		if i == 0 {
			first = url
		}
	}
	return first
}
