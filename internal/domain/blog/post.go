package blog

import (
	"sort"
	"time"

	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PostStatus is the editorial state of a post
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

// Post is a news article or blog entry
type Post struct {
	shared.BaseEntity
	Title           string         `gorm:"type:varchar(500);not null;index"`
	Slug            string         `gorm:"type:varchar(550);not null;uniqueIndex"`
	Excerpt         string         `gorm:"type:text"`
	Content         string         `gorm:"type:text;not null"`
	MetaTitle       string         `gorm:"type:varchar(500)"`
	MetaDescription string         `gorm:"type:text"`
	MetaKeywords    string         `gorm:"type:varchar(500)"`
	Status          PostStatus     `gorm:"type:varchar(20);not null;default:'draft'"`
	IsPublished     bool           `gorm:"not null;default:false;index"`
	IsFeatured      bool           `gorm:"not null;default:false;index"`
	IsPinned        bool           `gorm:"not null;default:false;index"`
	AuthorID        *uuid.UUID     `gorm:"type:uuid;index"`
	ViewsCount      int            `gorm:"not null;default:0;index"`
	LikesCount      int            `gorm:"not null;default:0"`
	SharesCount     int            `gorm:"not null;default:0"`
	PublishedAt     *time.Time     `gorm:"index"`
	ExtraData       shared.JSONMap `gorm:"type:jsonb"`

	Author *Author `gorm:"foreignKey:AuthorID"`
	Tags   []Tag   `gorm:"many2many:post_tag_links;"`
	Media  []Media `gorm:"foreignKey:PostID"`
}

// TableName returns the table name for GORM
func (Post) TableName() string {
	return "posts"
}

// IsVisible reports whether the post may be shown publicly
func (p *Post) IsVisible() bool {
	return p.IsPublished && p.Status == PostStatusPublished
}

// Publish marks the post as published, stamping PublishedAt the first time
func (p *Post) Publish(now time.Time) {
	p.Status = PostStatusPublished
	p.IsPublished = true
	if p.PublishedAt == nil {
		p.PublishedAt = &now
	}
	p.Touch()
}

// FeaturedMedia returns the media flagged featured, else the first by sort order
func (p *Post) FeaturedMedia() *Media {
	if len(p.Media) == 0 {
		return nil
	}
	for i := range p.Media {
		if p.Media[i].IsFeatured {
			return &p.Media[i]
		}
	}
	ordered := make([]Media, len(p.Media))
	copy(ordered, p.Media)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].SortOrder < ordered[j].SortOrder })
	return &ordered[0]
}

// Author wrote one or more posts
type Author struct {
	shared.BaseEntity
	Name     string `gorm:"type:varchar(255);not null"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Avatar   string `gorm:"type:varchar(500)"`
	Role     string `gorm:"type:varchar(100)"`
	Bio      string `gorm:"type:text"`
	IsActive bool   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Author) TableName() string {
	return "post_authors"
}

// Tag labels posts
type Tag struct {
	shared.BaseEntity
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Slug        string `gorm:"type:varchar(120);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	Color       string `gorm:"type:varchar(7)"`
	PostsCount  int    `gorm:"not null;default:0"`
	IsActive    bool   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Tag) TableName() string {
	return "post_tags"
}

// MediaType is the kind of post attachment
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Media is an image or video attached to a post
type Media struct {
	shared.BaseEntity
	PostID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Type         MediaType `gorm:"type:varchar(20);not null"`
	URL          string    `gorm:"column:url;type:varchar(500);not null"`
	ThumbnailURL string    `gorm:"type:varchar(500)"`
	AltText      string    `gorm:"type:varchar(255)"`
	Caption      string    `gorm:"type:text"`
	SortOrder    int       `gorm:"not null;default:0"`
	IsFeatured   bool      `gorm:"not null;default:false;index"`
	Width        *int      `gorm:""`
	Height       *int      `gorm:""`
	Duration     *int      `gorm:""`
}

// TableName returns the table name for GORM
func (Media) TableName() string {
	return "post_media"
}

// PostView records that one client IP read a post on one UTC day
type PostView struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PostID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_views_unique,priority:1"`
	IPHash   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_post_views_unique,priority:2"`
	ViewedOn string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_post_views_unique,priority:3"`
	ViewedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PostView) TableName() string {
	return "post_views"
}

// PostLike records that one client IP liked a post
type PostLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_unique,priority:1"`
	IPHash    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_post_likes_unique,priority:2"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PostLike) TableName() string {
	return "post_likes"
}
