package catalog

import (
	"context"
	"time"

	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BrandBrief is a brand reference inside other responses
type BrandBrief struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
	LogoURL string    `json:"logo_url,omitempty"`
}

// CategoryBrief is a category reference inside other responses
type CategoryBrief struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// CatalogBrief is a catalog reference inside other responses
type CatalogBrief struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// ImageResponse is one gallery image
type ImageResponse struct {
	URL       string `json:"url"`
	AltText   string `json:"alt_text"`
	IsMain    bool   `json:"is_main"`
	SortOrder int    `json:"sort_order"`
}

// ProductCard is a product in listings
type ProductCard struct {
	ID              uuid.UUID        `json:"id"`
	UUID            string           `json:"uuid"`
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	Price           decimal.Decimal  `json:"price"`
	DiscountPrice   *decimal.Decimal `json:"discount_price"`
	DiscountPercent float64          `json:"discount_percent"`
	Image           string           `json:"image"`
	InStock         bool             `json:"in_stock"`
	IsNew           bool             `json:"is_new"`
	Type            string           `json:"type,omitempty"`
	Rating          float64          `json:"rating"`
	ReviewCount     int              `json:"review_count"`
	PopularityScore float64          `json:"popularity_score"`
	Brand           *BrandBrief      `json:"brand,omitempty"`
	Category        *CategoryBrief   `json:"category,omitempty"`
}

// ProductDetail is the full product page
type ProductDetail struct {
	ProductCard
	Description     string          `json:"description"`
	Characteristics shared.JSONMap  `json:"characteristics"`
	Attributes      shared.JSONMap  `json:"attributes"`
	Savings         decimal.Decimal `json:"savings"`
	MetaTitle       string          `json:"meta_title"`
	MetaDescription string          `json:"meta_description"`
	MetaKeywords    string          `json:"meta_keywords"`
	Catalog         *CatalogBrief   `json:"catalog,omitempty"`
	Categories      []CategoryBrief `json:"categories"`
	Images          []ImageResponse `json:"images"`
	Videos          []VideoResponse `json:"videos"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewProductItem is a compact entry of the new arrivals block
type NewProductItem struct {
	ID            uuid.UUID        `json:"id"`
	UUID          string           `json:"uuid"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Image         string           `json:"image"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	BrandName     string           `json:"brand_name"`
}

// DiscountedProduct is a product of the deals block
type DiscountedProduct struct {
	ProductCard
	Savings   decimal.Decimal `json:"savings"`
	DealScore float64         `json:"deal_score"`
}

// PriceRangeResponse is the price filter bounds
type PriceRangeResponse struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// ProductListQuery is the query string of GET /products
type ProductListQuery struct {
	CategorySlug string   `form:"category_slug" binding:"omitempty,max=255"`
	BrandSlug    string   `form:"brand_slug" binding:"omitempty,max=255"`
	CatalogSlug  string   `form:"catalog_slug" binding:"omitempty,max=255"`
	MinPrice     *float64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice     *float64 `form:"max_price" binding:"omitempty,gte=0"`
	InStock      *bool    `form:"in_stock"`
	IsNew        *bool    `form:"is_new"`
	Type         string   `form:"type" binding:"omitempty,max=100"`
	Search       string   `form:"search" binding:"omitempty,max=200"`
	Sort         string   `form:"sort" binding:"omitempty,oneof=smart price_asc price_desc name_asc name_desc newest popular rating"`
	Page         int      `form:"page" binding:"omitempty,min=1"`
	PerPage      int      `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// PageQuery is a page of a sub-listing
type PageQuery struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// CategoryProductsQuery pages through the products of a category
type CategoryProductsQuery struct {
	PageQuery
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=name price created_at popularity_score"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// Pagination describes a page of a nested listing
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
}

// NewPagination builds the pagination block
func NewPagination(total int64, page, perPage int) Pagination {
	return Pagination{Page: page, PerPage: perPage, Total: total, Pages: shared.TotalPages(total, perPage)}
}

// CategoryResponse is a category in listings
type CategoryResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	Description     string     `json:"description"`
	ImageURL        string     `json:"image_url"`
	IsActive        bool       `json:"is_active"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	ParentID        *uuid.UUID `json:"parent_id"`
	BrandID         *uuid.UUID `json:"brand_id"`
	ProductCount    *int64     `json:"product_count,omitempty"`
}

// CategoryTreeNode is a category with its nested children
type CategoryTreeNode struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Slug         string             `json:"slug"`
	ImageURL     string             `json:"image_url"`
	ProductCount int64              `json:"product_count"`
	Children     []CategoryTreeNode `json:"children"`
}

// CategoryDetail is a category page
type CategoryDetail struct {
	CategoryResponse
	Brand    *BrandBrief        `json:"brand,omitempty"`
	Children []CategoryResponse `json:"children,omitempty"`
	Products []ProductCard      `json:"products,omitempty"`
}

// CategoryListQuery is the query string of GET /categories
type CategoryListQuery struct {
	ParentID      string `form:"parent_id" binding:"omitempty,uuid"`
	BrandID       string `form:"brand_id" binding:"omitempty,uuid"`
	IsActive      *bool  `form:"is_active"`
	IncludeCounts bool   `form:"include_counts"`
}

// CategoryDetailOptions controls what GET /categories/{slug} embeds
type CategoryDetailOptions struct {
	IncludeChildren bool `form:"include_children"`
	IncludeProducts bool `form:"include_products"`
	ProductLimit    int  `form:"product_limit" binding:"omitempty,min=1,max=50"`
}

// CatalogResponse is a catalog in listings
type CatalogResponse struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Slug         string         `json:"slug"`
	Description  string         `json:"description"`
	Image        string         `json:"image"`
	IsActive     bool           `json:"is_active"`
	Brand        *BrandBrief    `json:"brand,omitempty"`
	Category     *CategoryBrief `json:"category,omitempty"`
	ProductCount int64          `json:"product_count"`
	CreatedAt    time.Time      `json:"created_at"`
}

// CatalogDetail is a catalog page
type CatalogDetail struct {
	CatalogResponse
	Images   []ImageResponse `json:"images"`
	Products []ProductCard   `json:"products,omitempty"`
}

// CatalogProductsResponse is a page of a catalog's products
type CatalogProductsResponse struct {
	Products   []ProductCard `json:"products"`
	Pagination Pagination    `json:"pagination"`
}

// CatalogListQuery is the query string of GET /catalogs
type CatalogListQuery struct {
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	BrandID    string `form:"brand_id" binding:"omitempty,uuid"`
	Search     string `form:"search" binding:"omitempty,max=200"`
	IsActive   *bool  `form:"is_active"`
	Sort       string `form:"sort" binding:"omitempty,oneof=name name_asc name_desc newest popular product_count"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PerPage    int    `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// DetailOptions controls embedded products on catalog pages
type DetailOptions struct {
	IncludeProducts bool `form:"include_products"`
	ProductLimit    int  `form:"product_limit" binding:"omitempty,min=1,max=50"`
}

// BrandResponse is a brand in listings
type BrandResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	LogoURL      string    `json:"logo_url"`
	Website      string    `json:"website"`
	ProductCount int64     `json:"product_count"`
}

// BrandDetail is a brand page
type BrandDetail struct {
	BrandResponse
	Products   []ProductCard      `json:"products,omitempty"`
	Categories []CategoryResponse `json:"categories,omitempty"`
}

// BrandDetailOptions controls what GET /brands/{slug} embeds
type BrandDetailOptions struct {
	IncludeProducts   bool `form:"include_products"`
	IncludeCategories bool `form:"include_categories"`
	ProductLimit      int  `form:"product_limit" binding:"omitempty,min=1,max=50"`
}

// BrandWithCatalogs is a brand with a page of its catalogs
type BrandWithCatalogs struct {
	Brand      BrandResponse     `json:"brand"`
	Catalogs   []CatalogResponse `json:"catalogs"`
	Pagination Pagination        `json:"pagination"`
}

// VideoResponse is a storefront video
type VideoResponse struct {
	ID           uuid.UUID   `json:"id"`
	UUID         string      `json:"uuid"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	URL          string      `json:"url"`
	ThumbnailURL string      `json:"thumbnail_url"`
	Duration     *float64    `json:"duration"`
	IsFeatured   bool        `json:"is_featured"`
	ProductID    *uuid.UUID  `json:"product_id"`
	Product      *ProductRef `json:"product,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// ProductRef links a video to its product page
type ProductRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// BannerResponse is a home page slide
type BannerResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	URL       string    `json:"url"`
	SortOrder int       `json:"sort_order"`
}

// PromotionResponse is a home page promotion
type PromotionResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	URL         string     `json:"url"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
}

// TipResponse is a buying advice card
type TipResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Content     string    `json:"content"`
}

// HomeResponse is the home page payload
type HomeResponse struct {
	Banners    []BannerResponse    `json:"banners"`
	Promotions []PromotionResponse `json:"promotions"`
	Categories []CategoryResponse  `json:"categories"`
}

// SuggestionItem is one search suggestion
type SuggestionItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Image    string    `json:"image"`
	Category string    `json:"category"`
}

// MediaResolver turns stored media references into URLs clients can load
type MediaResolver interface {
	URL(ctx context.Context, ref string) string
}

type passthroughMedia struct{}

func (passthroughMedia) URL(_ context.Context, ref string) string { return ref }

// mapper converts domain objects to responses, resolving media along the way
type mapper struct {
	ctx   context.Context
	media MediaResolver
}

func newMapper(ctx context.Context, media MediaResolver) mapper {
	if media == nil {
		media = passthroughMedia{}
	}
	return mapper{ctx: ctx, media: media}
}

func (m mapper) url(ref string) string {
	if ref == "" {
		return ""
	}
	return m.media.URL(m.ctx, ref)
}

func (m mapper) brandBrief(b *catalog.Brand) *BrandBrief {
	if b == nil {
		return nil
	}
	return &BrandBrief{ID: b.ID, Name: b.Name, Slug: b.Slug, LogoURL: m.url(b.LogoURL)}
}

func categoryBrief(c *catalog.Category) *CategoryBrief {
	if c == nil {
		return nil
	}
	return &CategoryBrief{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func (m mapper) card(p *catalog.Product) ProductCard {
	return ProductCard{
		ID:              p.ID,
		UUID:            p.UUID,
		Name:            p.Name,
		Slug:            p.Slug,
		Price:           p.Price,
		DiscountPrice:   p.DiscountPrice,
		DiscountPercent: p.DiscountPercent(),
		Image:           m.url(p.MainImage()),
		InStock:         p.InStock,
		IsNew:           p.IsNew,
		Type:            p.Type,
		Rating:          p.Rating,
		ReviewCount:     p.ReviewCount,
		PopularityScore: p.PopularityScore,
		Brand:           m.brandBrief(p.Brand),
		Category:        categoryBrief(p.PrimaryCategory()),
	}
}

func (m mapper) cards(products []catalog.Product) []ProductCard {
	out := make([]ProductCard, 0, len(products))
	for i := range products {
		out = append(out, m.card(&products[i]))
	}
	return out
}

func (m mapper) images(imgs []catalog.ProductImage) []ImageResponse {
	out := make([]ImageResponse, 0, len(imgs))
	for _, img := range imgs {
		out = append(out, ImageResponse{URL: m.url(img.URL), AltText: img.AltText, IsMain: img.IsMain, SortOrder: img.SortOrder})
	}
	return out
}

func (m mapper) detail(p *catalog.Product) *ProductDetail {
	d := &ProductDetail{
		ProductCard:     m.card(p),
		Description:     p.Description,
		Characteristics: p.Characteristics,
		Attributes:      p.Attributes,
		Savings:         p.Savings(),
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		MetaKeywords:    p.MetaKeywords,
		Categories:      make([]CategoryBrief, 0, len(p.Categories)),
		Images:          m.images(p.Images),
		Videos:          m.videos(p.Videos),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.Catalog != nil {
		d.Catalog = &CatalogBrief{ID: p.Catalog.ID, Name: p.Catalog.Name, Slug: p.Catalog.Slug}
	}
	for i := range p.Categories {
		d.Categories = append(d.Categories, *categoryBrief(&p.Categories[i]))
	}
	return d
}

func (m mapper) video(v *catalog.Video) VideoResponse {
	out := VideoResponse{
		ID:           v.ID,
		UUID:         v.UUID,
		Title:        v.Title,
		Description:  v.Description,
		URL:          m.url(v.URL),
		ThumbnailURL: m.url(v.ThumbnailURL),
		Duration:     v.Duration,
		IsFeatured:   v.IsFeatured,
		ProductID:    v.ProductID,
		CreatedAt:    v.CreatedAt,
	}
	if v.Product != nil {
		out.Product = &ProductRef{ID: v.Product.ID, Name: v.Product.Name, Slug: v.Product.Slug}
	}
	return out
}

func (m mapper) videos(videos []catalog.Video) []VideoResponse {
	out := make([]VideoResponse, 0, len(videos))
	for i := range videos {
		out = append(out, m.video(&videos[i]))
	}
	return out
}

func (m mapper) category(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:              c.ID,
		Name:            c.Name,
		Slug:            c.Slug,
		Description:     c.Description,
		ImageURL:        m.url(c.ImageURL),
		IsActive:        c.IsActive,
		MetaTitle:       c.MetaTitle,
		MetaDescription: c.MetaDescription,
		ParentID:        c.ParentID,
		BrandID:         c.BrandID,
	}
}

func (m mapper) categories(list []catalog.Category, counts map[uuid.UUID]int64) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(list))
	for i := range list {
		r := m.category(&list[i])
		if counts != nil {
			n := counts[list[i].ID]
			r.ProductCount = &n
		}
		out = append(out, r)
	}
	return out
}

func (m mapper) tree(nodes []catalog.Category, counts map[uuid.UUID]int64) []CategoryTreeNode {
	out := make([]CategoryTreeNode, 0, len(nodes))
	for i := range nodes {
		c := &nodes[i]
		out = append(out, CategoryTreeNode{
			ID:           c.ID,
			Name:         c.Name,
			Slug:         c.Slug,
			ImageURL:     m.url(c.ImageURL),
			ProductCount: counts[c.ID],
			Children:     m.tree(c.Children, counts),
		})
	}
	return out
}

func (m mapper) catalog(c *catalog.Catalog, count int64) CatalogResponse {
	return CatalogResponse{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		Image:        m.url(c.MainImage()),
		IsActive:     c.IsActive,
		Brand:        m.brandBrief(c.Brand),
		Category:     categoryBrief(c.Category),
		ProductCount: count,
		CreatedAt:    c.CreatedAt,
	}
}

func (m mapper) catalogs(list []catalog.Catalog, counts map[uuid.UUID]int64) []CatalogResponse {
	out := make([]CatalogResponse, 0, len(list))
	for i := range list {
		out = append(out, m.catalog(&list[i], counts[list[i].ID]))
	}
	return out
}

func (m mapper) brand(b *catalog.Brand, count int64) BrandResponse {
	return BrandResponse{
		ID:           b.ID,
		Name:         b.Name,
		Slug:         b.Slug,
		Description:  b.Description,
		LogoURL:      m.url(b.LogoURL),
		Website:      b.Website,
		ProductCount: count,
	}
}
