package catalog

import (
	"time"

	"github.com/doorshop/backend/internal/domain/shared"
)

// Banner is a home page slide
type Banner struct {
	shared.BaseEntity
	Title     string `gorm:"type:varchar(255);not null"`
	Image     string `gorm:"type:varchar(500);not null"`
	URL       string `gorm:"column:url;type:varchar(500)"`
	IsActive  bool   `gorm:"not null"`
	SortOrder int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Banner) TableName() string {
	return "banners"
}

// Promotion is a time-boxed marketing block on the home page
type Promotion struct {
	shared.BaseEntity
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Image       string     `gorm:"type:varchar(500)"`
	URL         string     `gorm:"column:url;type:varchar(500);not null"`
	IsActive    bool       `gorm:"not null"`
	StartsAt    *time.Time `gorm:""`
	EndsAt      *time.Time `gorm:""`
}

// TableName returns the table name for GORM
func (Promotion) TableName() string {
	return "promotions"
}

// RunningAt reports whether the promotion is active and inside its window at t.
// Open bounds are unbounded.
func (p *Promotion) RunningAt(t time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.StartsAt != nil && t.Before(*p.StartsAt) {
		return false
	}
	if p.EndsAt != nil && t.After(*p.EndsAt) {
		return false
	}
	return true
}

// Tip is a short buying-advice article
type Tip struct {
	shared.BaseEntity
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Image       string `gorm:"type:varchar(500)"`
	Content     string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Tip) TableName() string {
	return "tips"
}
