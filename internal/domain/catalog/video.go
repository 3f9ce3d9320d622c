package catalog

import (
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Video is a product video or a standalone clip shown on the storefront
type Video struct {
	shared.BaseEntity
	UUID         string     `gorm:"column:uuid;type:varchar(36);not null;uniqueIndex"`
	Title        string     `gorm:"type:varchar(255);index"`
	Description  string     `gorm:"type:text"`
	URL          string     `gorm:"column:url;type:varchar(500);not null"`
	ThumbnailURL string     `gorm:"type:varchar(500)"`
	Duration     *float64   `gorm:""`
	ProductID    *uuid.UUID `gorm:"type:uuid;index"`
	IsActive     bool       `gorm:"not null"`
	IsFeatured   bool       `gorm:"not null;default:false"`
	Product      *Product   `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (Video) TableName() string {
	return "videos"
}

// NewVideo creates an active video
func NewVideo(title, url string, productID *uuid.UUID) (*Video, error) {
	if url == "" {
		return nil, shared.NewDomainError("INVALID_URL", "Video url cannot be empty")
	}
	return &Video{
		BaseEntity: shared.NewBaseEntity(),
		UUID:       uuid.NewString(),
		Title:      title,
		URL:        url,
		ProductID:  productID,
		IsActive:   true,
	}, nil
}
