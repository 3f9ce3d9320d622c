package handler

import (
	"context"

	catalogapp "github.com/doorshop/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// StorefrontHandler serves the home page, tips, search suggestions and videos
type StorefrontHandler struct {
	BaseHandler
	storefrontService *catalogapp.StorefrontService
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(storefrontService *catalogapp.StorefrontService) *StorefrontHandler {
	return &StorefrontHandler{storefrontService: storefrontService}
}

// Home godoc
// @ID           getHome
// @Summary      Home page
// @Description  Active banners, running promotions and root categories
// @Tags         storefront
// @Produce      json
// @Success      200 {object} APIResponse[catalogapp.HomeResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /home [get]
func (h *StorefrontHandler) Home(c *gin.Context) {
	home, err := h.storefrontService.Home(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, home)
}

// Tips godoc
// @ID           listTips
// @Summary      Tips
// @Tags         storefront
// @Produce      json
// @Param        limit query int false "Number of tips" default(6)
// @Success      200 {object} APIResponse[[]catalogapp.TipResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /tips [get]
func (h *StorefrontHandler) Tips(c *gin.Context) {
	tips, err := h.storefrontService.Tips(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tips)
}

// Suggestions godoc
// @ID           searchSuggestions
// @Summary      Search suggestions
// @Description  Product suggestions for the search box; queries under 2 characters return an empty list
// @Tags         storefront
// @Produce      json
// @Param        q query string false "Search text"
// @Param        limit query int false "Number of suggestions" default(5)
// @Success      200 {object} APIResponse[[]catalogapp.SuggestionItem]
// @Failure      500 {object} ErrorResponse
// @Router       /search/suggestions [get]
func (h *StorefrontHandler) Suggestions(c *gin.Context) {
	items, err := h.storefrontService.Suggestions(c.Request.Context(), c.Query("q"), queryLimit(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// FeaturedVideos godoc
// @ID           listFeaturedVideos
// @Summary      Featured videos
// @Tags         videos
// @Produce      json
// @Param        limit query int false "Number of videos" default(6) maximum(20)
// @Success      200 {object} APIResponse[[]catalogapp.VideoResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /videos/featured [get]
func (h *StorefrontHandler) FeaturedVideos(c *gin.Context) {
	h.videos(c, h.storefrontService.FeaturedVideos)
}

// LatestVideos godoc
// @ID           listLatestVideos
// @Summary      Latest videos
// @Tags         videos
// @Produce      json
// @Param        limit query int false "Number of videos" default(6) maximum(20)
// @Success      200 {object} APIResponse[[]catalogapp.VideoResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /videos/latest [get]
// @Router       /videos/recent [get]
func (h *StorefrontHandler) LatestVideos(c *gin.Context) {
	h.videos(c, h.storefrontService.LatestVideos)
}

// PopularVideos godoc
// @ID           listPopularVideos
// @Summary      Popular videos
// @Description  Videos ordered by their product's popularity, then rating
// @Tags         videos
// @Produce      json
// @Param        limit query int false "Number of videos" default(6) maximum(20)
// @Success      200 {object} APIResponse[[]catalogapp.VideoResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /videos/popular [get]
func (h *StorefrontHandler) PopularVideos(c *gin.Context) {
	h.videos(c, h.storefrontService.PopularVideos)
}

// ProductVideos godoc
// @ID           listProductVideos
// @Summary      Videos of a product
// @Tags         videos
// @Produce      json
// @Param        slug path string true "Product slug"
// @Success      200 {object} APIResponse[[]catalogapp.VideoResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /videos/by-product/{slug} [get]
func (h *StorefrontHandler) ProductVideos(c *gin.Context) {
	items, err := h.storefrontService.ProductVideos(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

func (h *StorefrontHandler) videos(c *gin.Context, load func(ctx context.Context, limit int) ([]catalogapp.VideoResponse, error)) {
	items, err := load(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}
