package catalog

import (
	"strings"

	"github.com/doorshop/backend/internal/domain/shared"
)

// Brand is a manufacturer whose products are sold in the store
type Brand struct {
	shared.BaseEntity
	Name        string `gorm:"type:varchar(255);not null"`
	Slug        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	LogoURL     string `gorm:"type:varchar(500)"`
	Website     string `gorm:"type:varchar(500)"`
	IsActive    bool   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Brand) TableName() string {
	return "brands"
}

// NewBrand creates an active brand, deriving the slug from the name when empty
func NewBrand(name, slug string) (*Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Brand name cannot be empty")
	}
	if slug == "" {
		slug = Slugify(name)
	}
	return &Brand{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Slug:       slug,
		IsActive:   true,
	}, nil
}
