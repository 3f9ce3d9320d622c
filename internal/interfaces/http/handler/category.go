package handler

import (
	catalogapp "github.com/doorshop/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// CategoryHandler handles category-related API endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *catalogapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List godoc
// @ID           listCategories
// @Summary      List categories
// @Description  Children of parent_id, or root categories when absent, ordered by name
// @Tags         categories
// @Produce      json
// @Param        parent_id query string false "Parent category ID" format(uuid)
// @Param        brand_id query string false "Only categories with products of this brand" format(uuid)
// @Param        is_active query bool false "Active flag" default(true)
// @Param        include_counts query bool false "Include product counts"
// @Success      200 {object} APIResponse[[]catalogapp.CategoryResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var q catalogapp.CategoryListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	items, err := h.categoryService.List(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Tree godoc
// @ID           getCategoryTree
// @Summary      Category tree
// @Description  The full recursive category tree
// @Tags         categories
// @Produce      json
// @Param        brand_id query string false "Only categories with products of this brand" format(uuid)
// @Success      200 {object} APIResponse[[]catalogapp.CategoryTreeNode]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories/tree [get]
func (h *CategoryHandler) Tree(c *gin.Context) {
	tree, err := h.categoryService.Tree(c.Request.Context(), c.Query("brand_id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tree)
}

// Popular godoc
// @ID           listPopularCategories
// @Summary      Popular categories
// @Description  Categories with the most active products
// @Tags         categories
// @Produce      json
// @Param        limit query int false "Number of categories" default(6)
// @Success      200 {object} APIResponse[[]catalogapp.CategoryResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /categories/popular [get]
func (h *CategoryHandler) Popular(c *gin.Context) {
	items, err := h.categoryService.Popular(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Flat godoc
// @ID           listCategoriesFlat
// @Summary      Flat category list
// @Tags         categories
// @Produce      json
// @Success      200 {object} APIResponse[[]catalogapp.CategoryBrief]
// @Failure      500 {object} ErrorResponse
// @Router       /categories/list [get]
func (h *CategoryHandler) Flat(c *gin.Context) {
	items, err := h.categoryService.Flat(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Products godoc
// @ID           listCategoryProducts
// @Summary      Category products
// @Description  Paginated products of a category, addressed by id or slug
// @Tags         categories
// @Produce      json
// @Param        ref path string true "Category ID or slug"
// @Param        sort_by query string false "Sort field" Enums(name, price, created_at, popularity_score)
// @Param        sort_order query string false "Sort direction" Enums(asc, desc)
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[shared.Paginated[catalogapp.ProductCard]]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories/{ref}/products [get]
func (h *CategoryHandler) Products(c *gin.Context) {
	var q catalogapp.CategoryProductsQuery
	if !h.BindQuery(c, &q) {
		return
	}
	page, err := h.categoryService.Products(c.Request.Context(), c.Param("ref"), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, page)
}

// GetBySlug godoc
// @ID           getCategoryBySlug
// @Summary      Get category
// @Description  Category page with optional children and top products
// @Tags         categories
// @Produce      json
// @Param        ref path string true "Category slug"
// @Param        include_children query bool false "Embed child categories"
// @Param        include_products query bool false "Embed products"
// @Param        product_limit query int false "Embedded products" default(4) maximum(50)
// @Success      200 {object} APIResponse[catalogapp.CategoryDetail]
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories/{ref} [get]
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	var opts catalogapp.CategoryDetailOptions
	if !h.BindQuery(c, &opts) {
		return
	}
	detail, err := h.categoryService.GetBySlug(c.Request.Context(), c.Param("ref"), opts)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, detail)
}
