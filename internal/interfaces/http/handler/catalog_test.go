package handler

import (
	"net/http"
	"testing"
	"time"

	catalogapp "github.com/doorshop/backend/internal/application/catalog"
	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/doorshop/backend/internal/infrastructure/persistence"
	"github.com/doorshop/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type catalogFixture struct {
	brand    *catalog.Brand
	category *catalog.Category
	catalog  *catalog.Catalog
	product  *catalog.Product
}

func seedCatalog(t *testing.T, db *gorm.DB) catalogFixture {
	t.Helper()
	brand, err := catalog.NewBrand("Acme", "")
	require.NoError(t, err)
	require.NoError(t, db.Create(brand).Error)

	category, err := catalog.NewCategory("Doors", "")
	require.NoError(t, err)
	require.NoError(t, db.Create(category).Error)

	line, err := catalog.NewCatalog("Oak Line", "", &category.ID, &brand.ID)
	require.NoError(t, err)
	require.NoError(t, db.Create(line).Error)

	product := createProduct(t, db, "Oak Door", 300, func(p *catalog.Product) {
		p.BrandID = &brand.ID
		p.CategoryID = &category.ID
		p.CatalogID = &line.ID
	})
	return catalogFixture{brand: brand, category: category, catalog: line, product: product}
}

func setupCatalogRouter(t *testing.T) (*gin.Engine, catalogFixture) {
	t.Helper()
	db := setupTestDB(t)
	fx := seedCatalog(t, db)

	products := persistence.NewGormProductRepository(db)
	categories := persistence.NewGormCategoryRepository(db)
	catalogs := persistence.NewGormCatalogRepository(db)
	brands := persistence.NewGormBrandRepository(db)

	categoryHandler := NewCategoryHandler(catalogapp.NewCategoryService(categories, products, newTestCache(), time.Minute, nil))
	catalogHandler := NewCatalogHandler(catalogapp.NewCatalogService(catalogs, categories, brands, products))
	brandHandler := NewBrandHandler(catalogapp.NewBrandService(brands, catalogs, categories, products))

	r := newTestEngine(func(r *gin.Engine) {
		cg := r.Group("/categories")
		cg.GET("", categoryHandler.List)
		cg.GET("/tree", categoryHandler.Tree)
		cg.GET("/popular", categoryHandler.Popular)
		cg.GET("/list", categoryHandler.Flat)
		cg.GET("/:ref/products", categoryHandler.Products)
		cg.GET("/:ref", categoryHandler.GetBySlug)

		ct := r.Group("/catalogs")
		ct.GET("", catalogHandler.List)
		ct.GET("/popular", catalogHandler.Popular)
		ct.GET("/list", catalogHandler.Flat)
		ct.GET("/by-category/:category_slug", catalogHandler.ByCategory)
		ct.GET("/brand/:brand_id", catalogHandler.ByBrand)
		ct.GET("/:slug", catalogHandler.GetBySlug)
		ct.GET("/:slug/products", catalogHandler.Products)

		for _, prefix := range []string{"/brands", "/manufacturers"} {
			br := r.Group(prefix)
			br.GET("", brandHandler.List)
			br.GET("/popular", brandHandler.Popular)
			br.GET("/list", brandHandler.Flat)
			br.GET("/:slug", brandHandler.GetBySlug)
			br.GET("/:slug/catalogs", brandHandler.Catalogs)
			br.GET("/:slug/with-catalogs", brandHandler.WithCatalogs)
		}
	})
	return r, fx
}

func TestCategoryHandler(t *testing.T) {
	r, fx := setupCatalogRouter(t)

	t.Run("roots", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/categories?include_counts=true", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var items []catalogapp.CategoryResponse
		decodeData(t, w, &items)
		require.Len(t, items, 1)
		assert.Equal(t, "doors", items[0].Slug)
	})

	t.Run("tree and flat list", func(t *testing.T) {
		for _, path := range []string{"/categories/tree", "/categories/list", "/categories/popular"} {
			w := doRequest(r, http.MethodGet, path, "")
			assert.Equal(t, http.StatusOK, w.Code, path)
		}
	})

	t.Run("products by slug and by id", func(t *testing.T) {
		for _, ref := range []string{"doors", fx.category.ID.String()} {
			w := doRequest(r, http.MethodGet, "/categories/"+ref+"/products", "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var page shared.Paginated[catalogapp.ProductCard]
			decodeData(t, w, &page)
			assert.Equal(t, int64(1), page.Total)
			assert.Equal(t, 20, page.PerPage)
		}
	})

	t.Run("invalid sort is rejected", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/categories/doors/products?sort_by=id", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("detail", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/categories/doors?include_products=true", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doRequest(r, http.MethodGet, "/categories/windows", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCatalogHandler(t *testing.T) {
	r, fx := setupCatalogRouter(t)

	t.Run("list", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/catalogs?sort=product_count", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var page shared.Paginated[catalogapp.CatalogResponse]
		decodeData(t, w, &page)
		assert.Equal(t, int64(1), page.Total)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "oak-line", page.Items[0].Slug)
	})

	t.Run("unknown sort", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/catalogs?sort=random", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("by brand", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/catalogs/brand/"+fx.brand.ID.String(), "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doRequest(r, http.MethodGet, "/catalogs/brand/acme", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidInput, decodeError(t, w).Code)
	})

	t.Run("products", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/catalogs/oak-line/products", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var res catalogapp.CatalogProductsResponse
		decodeData(t, w, &res)
		assert.Equal(t, 8, res.Pagination.PerPage)
		assert.Equal(t, int64(1), res.Pagination.Total)
	})

	t.Run("missing catalog", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/catalogs/unknown", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBrandHandler(t *testing.T) {
	r, _ := setupCatalogRouter(t)

	t.Run("list with counts", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/brands", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var items []catalogapp.BrandResponse
		decodeData(t, w, &items)
		require.Len(t, items, 1)
		assert.Equal(t, int64(1), items[0].ProductCount)
	})

	t.Run("with catalogs", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/brands/acme/with-catalogs", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var res catalogapp.BrandWithCatalogs
		decodeData(t, w, &res)
		assert.Equal(t, "acme", res.Brand.Slug)
		assert.Len(t, res.Catalogs, 1)
	})

	t.Run("missing brand", func(t *testing.T) {
		for _, path := range []string{"/brands/nobody", "/brands/nobody/catalogs"} {
			w := doRequest(r, http.MethodGet, path, "")
			assert.Equal(t, http.StatusNotFound, w.Code, path)
		}
	})

	t.Run("manufacturers alias", func(t *testing.T) {
		for _, suffix := range []string{"", "/popular", "/list", "/acme", "/acme/catalogs", "/acme/with-catalogs"} {
			brands := doRequest(r, http.MethodGet, "/brands"+suffix, "")
			manufacturers := doRequest(r, http.MethodGet, "/manufacturers"+suffix, "")
			require.Equal(t, http.StatusOK, manufacturers.Code, suffix)
			assert.JSONEq(t, brands.Body.String(), manufacturers.Body.String(), suffix)
		}
	})
}
