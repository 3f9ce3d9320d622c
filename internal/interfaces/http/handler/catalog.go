package handler

import (
	catalogapp "github.com/doorshop/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles catalog-related API endpoints
type CatalogHandler struct {
	BaseHandler
	catalogService *catalogapp.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService *catalogapp.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List godoc
// @ID           listCatalogs
// @Summary      List catalogs
// @Description  Paginated catalogs with brand, category and product count
// @Tags         catalogs
// @Produce      json
// @Param        category_id query string false "Category ID" format(uuid)
// @Param        brand_id query string false "Brand ID" format(uuid)
// @Param        search query string false "Search in name"
// @Param        is_active query bool false "Active flag" default(true)
// @Param        sort query string false "Sort order" Enums(name, name_asc, name_desc, newest, popular, product_count)
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Page size" default(12) maximum(100)
// @Success      200 {object} APIResponse[shared.Paginated[catalogapp.CatalogResponse]]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /catalogs [get]
func (h *CatalogHandler) List(c *gin.Context) {
	var q catalogapp.CatalogListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	page, err := h.catalogService.List(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, page)
}

// Popular godoc
// @ID           listPopularCatalogs
// @Summary      Popular catalogs
// @Tags         catalogs
// @Produce      json
// @Param        limit query int false "Number of catalogs" default(6)
// @Success      200 {object} APIResponse[[]catalogapp.CatalogResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /catalogs/popular [get]
func (h *CatalogHandler) Popular(c *gin.Context) {
	items, err := h.catalogService.Popular(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Flat godoc
// @ID           listCatalogsFlat
// @Summary      Flat catalog list
// @Tags         catalogs
// @Produce      json
// @Success      200 {object} APIResponse[[]catalogapp.CatalogBrief]
// @Failure      500 {object} ErrorResponse
// @Router       /catalogs/list [get]
func (h *CatalogHandler) Flat(c *gin.Context) {
	items, err := h.catalogService.Flat(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// ByCategory godoc
// @ID           listCatalogsByCategory
// @Summary      Catalogs of a category
// @Tags         catalogs
// @Produce      json
// @Param        category_slug path string true "Category slug"
// @Success      200 {object} APIResponse[[]catalogapp.CatalogResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /catalogs/by-category/{category_slug} [get]
func (h *CatalogHandler) ByCategory(c *gin.Context) {
	items, err := h.catalogService.ByCategory(c.Request.Context(), c.Param("category_slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// ByBrand godoc
// @ID           listCatalogsByBrand
// @Summary      Catalogs of a brand
// @Tags         catalogs
// @Produce      json
// @Param        brand_id path string true "Brand ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Page size" default(12) maximum(100)
// @Success      200 {object} APIResponse[shared.Paginated[catalogapp.CatalogResponse]]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /catalogs/brand/{brand_id} [get]
func (h *CatalogHandler) ByBrand(c *gin.Context) {
	brandID, ok := h.pathUUID(c, "brand_id")
	if !ok {
		return
	}
	var q catalogapp.PageQuery
	if !h.BindQuery(c, &q) {
		return
	}
	page, err := h.catalogService.ByBrand(c.Request.Context(), brandID, q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, page)
}

// GetBySlug godoc
// @ID           getCatalogBySlug
// @Summary      Get catalog
// @Description  Catalog page with gallery and optional products
// @Tags         catalogs
// @Produce      json
// @Param        slug path string true "Catalog slug"
// @Param        include_products query bool false "Embed products"
// @Param        product_limit query int false "Embedded products" default(8) maximum(50)
// @Success      200 {object} APIResponse[catalogapp.CatalogDetail]
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /catalogs/{slug} [get]
func (h *CatalogHandler) GetBySlug(c *gin.Context) {
	var opts catalogapp.DetailOptions
	if !h.BindQuery(c, &opts) {
		return
	}
	detail, err := h.catalogService.GetBySlug(c.Request.Context(), c.Param("slug"), opts)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, detail)
}

// Products godoc
// @ID           listCatalogProducts
// @Summary      Catalog products
// @Tags         catalogs
// @Produce      json
// @Param        slug path string true "Catalog slug"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Page size" default(8) maximum(100)
// @Success      200 {object} APIResponse[catalogapp.CatalogProductsResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /catalogs/{slug}/products [get]
func (h *CatalogHandler) Products(c *gin.Context) {
	var q catalogapp.PageQuery
	if !h.BindQuery(c, &q) {
		return
	}
	res, err := h.catalogService.Products(c.Request.Context(), c.Param("slug"), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, res)
}
