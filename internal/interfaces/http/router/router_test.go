package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/doorshop/backend/internal/infrastructure/auth"
	"github.com/doorshop/backend/internal/infrastructure/cache"
	"github.com/doorshop/backend/internal/infrastructure/config"
	"github.com/doorshop/backend/internal/infrastructure/scheduler"
	"github.com/doorshop/backend/internal/interfaces/http/handler"
	"github.com/doorshop/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Equal(t, "/api/v1", r.BasePath())
	assert.Empty(t, r.registrars)
}

func TestRouterWithBasePath(t *testing.T) {
	r := NewRouter(gin.New(), WithBasePath("/shop/v2"))
	assert.Equal(t, "/shop/v2", r.BasePath())
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithBasePath("/api/v1"))

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.Register(group)
	r.Setup()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/test/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestDomainGroup(t *testing.T) {
	t.Run("creates group with name and prefix", func(t *testing.T) {
		g := NewDomainGroup("catalog", "/catalogs")
		assert.Equal(t, "catalog", g.Name())
		assert.Equal(t, "/catalogs", g.Prefix())
	})

	methods := []struct {
		method   string
		register func(g *DomainGroup, h gin.HandlerFunc)
	}{
		{http.MethodGet, func(g *DomainGroup, h gin.HandlerFunc) { g.GET("/items/:id", h) }},
		{http.MethodPost, func(g *DomainGroup, h gin.HandlerFunc) { g.POST("/items/:id", h) }},
		{http.MethodDelete, func(g *DomainGroup, h gin.HandlerFunc) { g.DELETE("/items/:id", h) }},
	}
	for _, tt := range methods {
		t.Run("registers "+tt.method+" route", func(t *testing.T) {
			engine := gin.New()
			g := NewDomainGroup("test", "/test")
			tt.register(g, func(c *gin.Context) {
				c.String(http.StatusOK, c.Param("id"))
			})
			g.RegisterRoutes(engine.Group("/api/v1"))

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(tt.method, "/api/v1/test/items/123", nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "123", w.Body.String())
		})
	}

	t.Run("applies middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test").Use(func(c *gin.Context) {
			c.Header("X-Test-Middleware", "applied")
			c.Next()
		})
		g.GET("/items", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})
		g.RegisterRoutes(engine.Group("/api/v1"))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/test/items", nil))
		assert.Equal(t, "applied", w.Header().Get("X-Test-Middleware"))
	})

	t.Run("creates subgroups", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("posts", "/posts")
		g.GET("/:slug", func(c *gin.Context) { c.String(http.StatusOK, "post") })
		tags := g.Group("tags", "/tags")
		tags.GET("/popular", func(c *gin.Context) { c.String(http.StatusOK, "tags") })
		g.RegisterRoutes(engine.Group("/api/v1"))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/posts/tags/popular", nil))
		assert.Equal(t, "tags", w.Body.String())

		w = httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/posts/hello", nil))
		assert.Equal(t, "post", w.Body.String())
	})
}

type stubScheduler struct{}

func (stubScheduler) TriggerManualRun(scheduler.JobKind) error { return nil }
func (stubScheduler) GetStatus() scheduler.Status              { return scheduler.Status{Enabled: true} }

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

func newStorefrontEngine(t *testing.T, jwt *auth.JWTService) *gin.Engine {
	t.Helper()
	engine, err := NewEngine(EngineConfig{
		ServiceName: "doorshop-test",
		MaxBodySize: 1 << 20,
		CORS:        middleware.DefaultCORSConfig(),
		Security:    middleware.DefaultSecurityConfig(),
	}, zap.NewNop())
	require.NoError(t, err)

	c := cache.NewInMemoryCache(time.Minute)
	system := handler.NewSystemHandler(stubPinger{}, c, "test")
	r := NewRouter(engine)
	// Service-backed handlers are only mounted here; requests below never reach them.
	RegisterStorefront(r, Handlers{
		Product:    handler.NewProductHandler(nil),
		Category:   handler.NewCategoryHandler(nil),
		Catalog:    handler.NewCatalogHandler(nil),
		Brand:      handler.NewBrandHandler(nil),
		Storefront: handler.NewStorefrontHandler(nil),
		Post:       handler.NewPostHandler(nil),
		Analytics:  handler.NewAnalyticsHandler(nil, nil),
		Ops:        handler.NewOpsHandler(stubScheduler{}, c),
		System:     system,
	}, middleware.AdminAuth(jwt))
	r.Setup()
	RegisterHealth(engine, system)
	return engine
}

func TestRegisterStorefront_RouteTable(t *testing.T) {
	engine := newStorefrontEngine(t, auth.NewJWTService(config.JWTConfig{Secret: "secret", Issuer: "doorshop"}))

	registered := make(map[string]bool)
	for _, ri := range engine.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}

	want := []string{
		"GET /health",
		"GET /api/v1/health",
		"GET /api/v1/system/info",
		"GET /api/v1/products",
		"GET /api/v1/products/featured",
		"GET /api/v1/products/new",
		"GET /api/v1/products/discounted",
		"GET /api/v1/products/price-range",
		"GET /api/v1/products/:slug",
		"GET /api/v1/categories",
		"GET /api/v1/categories/tree",
		"GET /api/v1/categories/popular",
		"GET /api/v1/categories/list",
		"GET /api/v1/categories/:ref",
		"GET /api/v1/categories/:ref/products",
		"GET /api/v1/catalogs",
		"GET /api/v1/catalogs/popular",
		"GET /api/v1/catalogs/list",
		"GET /api/v1/catalogs/by-category/:category_slug",
		"GET /api/v1/catalogs/brand/:brand_id",
		"GET /api/v1/catalogs/:slug",
		"GET /api/v1/catalogs/:slug/products",
		"GET /api/v1/brands",
		"GET /api/v1/brands/popular",
		"GET /api/v1/brands/list",
		"GET /api/v1/brands/:slug",
		"GET /api/v1/brands/:slug/catalogs",
		"GET /api/v1/brands/:slug/with-catalogs",
		"GET /api/v1/manufacturers",
		"GET /api/v1/manufacturers/popular",
		"GET /api/v1/manufacturers/list",
		"GET /api/v1/manufacturers/:slug",
		"GET /api/v1/manufacturers/:slug/catalogs",
		"GET /api/v1/manufacturers/:slug/with-catalogs",
		"GET /api/v1/home",
		"GET /api/v1/tips",
		"GET /api/v1/search/suggestions",
		"GET /api/v1/videos/featured",
		"GET /api/v1/videos/latest",
		"GET /api/v1/videos/recent",
		"GET /api/v1/videos/popular",
		"GET /api/v1/videos/by-product/:slug",
		"GET /api/v1/posts/featured",
		"GET /api/v1/posts/recent",
		"GET /api/v1/posts/pinned",
		"GET /api/v1/posts/popular",
		"GET /api/v1/posts/search",
		"GET /api/v1/posts/tags/popular",
		"GET /api/v1/posts/tags/:slug",
		"GET /api/v1/posts/:slug",
		"POST /api/v1/posts/:id/view",
		"POST /api/v1/posts/:id/like",
		"POST /api/v1/analytics/batch",
		"POST /api/v1/analytics/product-view",
		"POST /api/v1/analytics/product-interaction",
		"GET /api/v1/analytics/products/:id/summary",
		"POST /api/v1/ops/rankings/recalculate",
		"POST /api/v1/ops/rankings/ensure",
		"GET /api/v1/ops/scheduler/status",
		"DELETE /api/v1/ops/cache",
	}
	for _, route := range want {
		assert.True(t, registered[route], "missing route %s", route)
	}
	assert.Len(t, registered, len(want))
}

func TestRegisterStorefront_OpsRequireAdmin(t *testing.T) {
	jwt := auth.NewJWTService(config.JWTConfig{Secret: "secret", Issuer: "doorshop"})
	engine := newStorefrontEngine(t, jwt)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ops/scheduler/status", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	viewer, err := jwt.GenerateToken("viewer", "viewer", time.Minute)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ops/scheduler/status", nil)
	req.Header.Set("Authorization", "Bearer "+viewer)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin, err := jwt.GenerateToken("ops", "admin", time.Minute)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/ops/scheduler/status", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestNewEngine_Middleware(t *testing.T) {
	engine := newStorefrontEngine(t, auth.NewJWTService(config.JWTConfig{Secret: "secret"}))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
