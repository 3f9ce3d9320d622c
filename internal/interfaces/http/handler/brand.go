package handler

import (
	catalogapp "github.com/doorshop/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// BrandHandler handles brand-related API endpoints
type BrandHandler struct {
	BaseHandler
	brandService *catalogapp.BrandService
}

// NewBrandHandler creates a new BrandHandler
func NewBrandHandler(brandService *catalogapp.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

// List godoc
// @ID           listBrands
// @Summary      List brands
// @Description  Active brands with their product count
// @Tags         brands
// @Produce      json
// @Success      200 {object} APIResponse[[]catalogapp.BrandResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /brands [get]
// @Router       /manufacturers [get]
func (h *BrandHandler) List(c *gin.Context) {
	items, err := h.brandService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Popular godoc
// @ID           listPopularBrands
// @Summary      Popular brands
// @Tags         brands
// @Produce      json
// @Param        limit query int false "Number of brands" default(6)
// @Success      200 {object} APIResponse[[]catalogapp.BrandResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /brands/popular [get]
// @Router       /manufacturers/popular [get]
func (h *BrandHandler) Popular(c *gin.Context) {
	items, err := h.brandService.Popular(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Flat godoc
// @ID           listBrandsFlat
// @Summary      Flat brand list
// @Tags         brands
// @Produce      json
// @Success      200 {object} APIResponse[[]catalogapp.BrandBrief]
// @Failure      500 {object} ErrorResponse
// @Router       /brands/list [get]
// @Router       /manufacturers/list [get]
func (h *BrandHandler) Flat(c *gin.Context) {
	items, err := h.brandService.Flat(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// GetBySlug godoc
// @ID           getBrandBySlug
// @Summary      Get brand
// @Tags         brands
// @Produce      json
// @Param        slug path string true "Brand slug"
// @Param        include_products query bool false "Embed products"
// @Param        include_categories query bool false "Embed categories"
// @Param        product_limit query int false "Embedded products" default(8) maximum(50)
// @Success      200 {object} APIResponse[catalogapp.BrandDetail]
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /brands/{slug} [get]
// @Router       /manufacturers/{slug} [get]
func (h *BrandHandler) GetBySlug(c *gin.Context) {
	var opts catalogapp.BrandDetailOptions
	if !h.BindQuery(c, &opts) {
		return
	}
	detail, err := h.brandService.GetBySlug(c.Request.Context(), c.Param("slug"), opts)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, detail)
}

// Catalogs godoc
// @ID           listBrandCatalogs
// @Summary      Brand catalogs
// @Tags         brands
// @Produce      json
// @Param        slug path string true "Brand slug"
// @Success      200 {object} APIResponse[[]catalogapp.CatalogResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /brands/{slug}/catalogs [get]
// @Router       /manufacturers/{slug}/catalogs [get]
func (h *BrandHandler) Catalogs(c *gin.Context) {
	items, err := h.brandService.Catalogs(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// WithCatalogs godoc
// @ID           getBrandWithCatalogs
// @Summary      Brand with catalogs
// @Description  A brand and one page of its catalogs
// @Tags         brands
// @Produce      json
// @Param        slug path string true "Brand slug"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Page size" default(12) maximum(100)
// @Success      200 {object} APIResponse[catalogapp.BrandWithCatalogs]
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /brands/{slug}/with-catalogs [get]
// @Router       /manufacturers/{slug}/with-catalogs [get]
func (h *BrandHandler) WithCatalogs(c *gin.Context) {
	var q catalogapp.PageQuery
	if !h.BindQuery(c, &q) {
		return
	}
	res, err := h.brandService.WithCatalogs(c.Request.Context(), c.Param("slug"), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, res)
}
