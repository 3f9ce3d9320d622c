package handler

import (
	catalogapp "github.com/doorshop/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product-related API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List godoc
// @ID           listProducts
// @Summary      List products
// @Description  Paginated list of active products with filters and sorting
// @Tags         products
// @Produce      json
// @Param        category_slug query string false "Category slug (primary or linked)"
// @Param        brand_slug query string false "Brand slug"
// @Param        catalog_slug query string false "Catalog slug"
// @Param        min_price query number false "Minimum price"
// @Param        max_price query number false "Maximum price"
// @Param        in_stock query bool false "Only products in stock"
// @Param        is_new query bool false "Only new products"
// @Param        type query string false "Product type"
// @Param        search query string false "Search in name and description"
// @Param        sort query string false "Sort order" Enums(smart, price_asc, price_desc, name_asc, name_desc, newest, popular, rating) default(smart)
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Page size" default(12) maximum(100)
// @Success      200 {object} APIResponse[shared.Paginated[catalogapp.ProductCard]]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var q catalogapp.ProductListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	page, err := h.productService.List(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, page)
}

// Featured godoc
// @ID           listFeaturedProducts
// @Summary      Featured products
// @Description  Promoted products first, then by ranking score
// @Tags         products
// @Produce      json
// @Param        limit query int false "Number of products" default(8) maximum(20)
// @Success      200 {object} APIResponse[[]catalogapp.ProductCard]
// @Failure      500 {object} ErrorResponse
// @Router       /products/featured [get]
func (h *ProductHandler) Featured(c *gin.Context) {
	items, err := h.productService.Featured(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Newest godoc
// @ID           listNewProducts
// @Summary      New products
// @Description  Newest active products
// @Tags         products
// @Produce      json
// @Param        limit query int false "Number of products" default(8) maximum(20)
// @Success      200 {object} APIResponse[[]catalogapp.NewProductItem]
// @Failure      500 {object} ErrorResponse
// @Router       /products/new [get]
func (h *ProductHandler) Newest(c *gin.Context) {
	items, err := h.productService.Newest(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Discounted godoc
// @ID           listDiscountedProducts
// @Summary      Discounted products
// @Description  Products with a discount of at least min_discount_percent, best deals first
// @Tags         products
// @Produce      json
// @Param        min_discount_percent query number false "Minimum discount percent" default(5)
// @Param        limit query int false "Number of products" default(12) maximum(50)
// @Success      200 {object} APIResponse[[]catalogapp.DiscountedProduct]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /products/discounted [get]
func (h *ProductHandler) Discounted(c *gin.Context) {
	var q catalogapp.DiscountedQuery
	if !h.BindQuery(c, &q) {
		return
	}
	items, err := h.productService.Discounted(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// PriceRange godoc
// @ID           getProductPriceRange
// @Summary      Price range
// @Description  Minimum and maximum price over active products
// @Tags         products
// @Produce      json
// @Success      200 {object} APIResponse[catalogapp.PriceRangeResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /products/price-range [get]
func (h *ProductHandler) PriceRange(c *gin.Context) {
	rng, err := h.productService.PriceRange(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rng)
}

// GetBySlug godoc
// @ID           getProductBySlug
// @Summary      Get product
// @Description  Product page with brand, catalog, categories, images and videos
// @Tags         products
// @Produce      json
// @Param        slug path string true "Product slug"
// @Success      200 {object} APIResponse[catalogapp.ProductDetail]
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /products/{slug} [get]
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	detail, err := h.productService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, detail)
}
