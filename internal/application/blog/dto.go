package blog

import (
	"time"

	"github.com/doorshop/backend/internal/domain/blog"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AuthorResponse is the public author card
type AuthorResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Role   string    `json:"role"`
	Bio    string    `json:"bio,omitempty"`
}

// TagResponse is a post tag
type TagResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	PostsCount  int       `json:"posts_count"`
}

// MediaResponse is an image or video attached to a post
type MediaResponse struct {
	ID           uuid.UUID `json:"id"`
	Type         string    `json:"type"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	AltText      string    `json:"alt_text"`
	Caption      string    `json:"caption"`
	SortOrder    int       `json:"sort_order"`
	IsFeatured   bool      `json:"is_featured"`
	Width        *int      `json:"width,omitempty"`
	Height       *int      `json:"height,omitempty"`
	Duration     *int      `json:"duration,omitempty"`
}

// PostCard is a post in listings
type PostCard struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Slug          string          `json:"slug"`
	Excerpt       string          `json:"excerpt"`
	IsFeatured    bool            `json:"is_featured"`
	IsPinned      bool            `json:"is_pinned"`
	ViewsCount    int             `json:"views_count"`
	LikesCount    int             `json:"likes_count"`
	SharesCount   int             `json:"shares_count"`
	PublishedAt   *time.Time      `json:"published_at"`
	CreatedAt     time.Time       `json:"created_at"`
	Author        *AuthorResponse `json:"author,omitempty"`
	Tags          []TagResponse   `json:"tags"`
	FeaturedMedia *MediaResponse  `json:"featured_media"`
}

// PostDetail is the full post page
type PostDetail struct {
	PostCard
	Content         string          `json:"content"`
	MetaTitle       string          `json:"meta_title"`
	MetaDescription string          `json:"meta_description"`
	MetaKeywords    string          `json:"meta_keywords"`
	ExtraData       shared.JSONMap  `json:"extra_data"`
	Media           []MediaResponse `json:"media"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TagDetail is a tag page with its published posts
type TagDetail struct {
	Tag   TagResponse                `json:"tag"`
	Posts shared.Paginated[PostCard] `json:"posts"`
}

// SearchQuery is the query string of GET /posts/search
type SearchQuery struct {
	Q          string `form:"q" binding:"omitempty,max=200"`
	TagSlug    string `form:"tag_slug" binding:"omitempty,max=120"`
	AuthorID   string `form:"author_id" binding:"omitempty,uuid"`
	IsFeatured *bool  `form:"is_featured"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PerPage    int    `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// ViewResult reports whether a view was counted
type ViewResult struct {
	Counted    bool `json:"counted"`
	ViewsCount int  `json:"views_count"`
}

// LikeResult reports whether a like was recorded
type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

func toAuthor(a *blog.Author, withBio bool) *AuthorResponse {
	if a == nil {
		return nil
	}
	out := &AuthorResponse{ID: a.ID, Name: a.Name, Avatar: a.Avatar, Role: a.Role}
	if withBio {
		out.Bio = a.Bio
	}
	return out
}

func toTag(t *blog.Tag) TagResponse {
	return TagResponse{
		ID:          t.ID,
		Name:        t.Name,
		Slug:        t.Slug,
		Description: t.Description,
		Color:       t.Color,
		PostsCount:  t.PostsCount,
	}
}

func toMedia(m *blog.Media) MediaResponse {
	return MediaResponse{
		ID:           m.ID,
		Type:         string(m.Type),
		URL:          m.URL,
		ThumbnailURL: m.ThumbnailURL,
		AltText:      m.AltText,
		Caption:      m.Caption,
		SortOrder:    m.SortOrder,
		IsFeatured:   m.IsFeatured,
		Width:        m.Width,
		Height:       m.Height,
		Duration:     m.Duration,
	}
}

// ToPostCard converts a post to its listing form
func ToPostCard(p *blog.Post) PostCard {
	card := PostCard{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		IsFeatured:  p.IsFeatured,
		IsPinned:    p.IsPinned,
		ViewsCount:  p.ViewsCount,
		LikesCount:  p.LikesCount,
		SharesCount: p.SharesCount,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		Author:      toAuthor(p.Author, false),
		Tags:        make([]TagResponse, 0, len(p.Tags)),
	}
	for i := range p.Tags {
		card.Tags = append(card.Tags, toTag(&p.Tags[i]))
	}
	if m := p.FeaturedMedia(); m != nil {
		media := toMedia(m)
		card.FeaturedMedia = &media
	}
	return card
}

// ToPostCards converts a list of posts
func ToPostCards(posts []blog.Post) []PostCard {
	out := make([]PostCard, 0, len(posts))
	for i := range posts {
		out = append(out, ToPostCard(&posts[i]))
	}
	return out
}

// ToPostDetail converts a post to its page form
func ToPostDetail(p *blog.Post) *PostDetail {
	d := &PostDetail{
		PostCard:        ToPostCard(p),
		Content:         p.Content,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		MetaKeywords:    p.MetaKeywords,
		ExtraData:       p.ExtraData,
		Media:           make([]MediaResponse, 0, len(p.Media)),
		UpdatedAt:       p.UpdatedAt,
	}
	d.Author = toAuthor(p.Author, true)
	for i := range p.Media {
		d.Media = append(d.Media, toMedia(&p.Media[i]))
	}
	return d
}
