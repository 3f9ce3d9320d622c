package router

import (
	"github.com/doorshop/backend/internal/infrastructure/logger"
	"github.com/doorshop/backend/internal/interfaces/http/handler"
	"github.com/doorshop/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// EngineConfig configures the global middleware chain
type EngineConfig struct {
	ServiceName      string
	TracingEnabled   bool
	ProfilingEnabled bool
	SwaggerEnabled   bool
	MaxBodySize      int64
	TrustedProxies   []string
	CORS             middleware.CORSConfig
	Security         middleware.SecurityConfig
	// RateLimiter is optional; nil disables rate limiting
	RateLimiter *middleware.RateLimiter
	// Meter is optional; nil disables HTTP metrics
	Meter metric.Meter
}

// NewEngine builds a gin engine with the storefront middleware chain
func NewEngine(cfg EngineConfig, log *zap.Logger) (*gin.Engine, error) {
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure(cfg.Security))
	engine.Use(middleware.CORS(cfg.CORS))
	if cfg.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.MaxBodySize))
	}
	if cfg.RateLimiter != nil {
		engine.Use(middleware.RateLimit(cfg.RateLimiter))
	}
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.ServiceName,
		Enabled:     cfg.TracingEnabled,
	}))
	if cfg.TracingEnabled {
		engine.Use(middleware.SpanAttributes())
	}
	engine.Use(middleware.HTTPMetrics(cfg.Meter, log))
	engine.Use(middleware.Profiling(cfg.ProfilingEnabled))

	if cfg.SwaggerEnabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return engine, nil
}

// Handlers groups the HTTP handlers mounted by RegisterStorefront
type Handlers struct {
	Product    *handler.ProductHandler
	Category   *handler.CategoryHandler
	Catalog    *handler.CatalogHandler
	Brand      *handler.BrandHandler
	Storefront *handler.StorefrontHandler
	Post       *handler.PostHandler
	Analytics  *handler.AnalyticsHandler
	Ops        *handler.OpsHandler
	System     *handler.SystemHandler
}

// RegisterStorefront registers the public API groups and the admin-only ops group.
// adminAuth guards /ops; a nil adminAuth leaves the ops group unmounted.
func RegisterStorefront(r *Router, h Handlers, adminAuth gin.HandlerFunc) {
	r.Register(productRoutes(h.Product))
	r.Register(categoryRoutes(h.Category))
	r.Register(catalogRoutes(h.Catalog))
	r.Register(brandRoutes(h.Brand, "brands", "/brands"))
	r.Register(brandRoutes(h.Brand, "manufacturers", "/manufacturers"))
	r.Register(storefrontRoutes(h.Storefront))
	r.Register(postRoutes(h.Post))
	r.Register(analyticsRoutes(h.Analytics))
	r.Register(systemRoutes(h.System))
	if adminAuth != nil && h.Ops != nil {
		r.Register(opsRoutes(h.Ops, adminAuth))
	}
}

// RegisterHealth mounts the health check at the root so load balancers need no API prefix
func RegisterHealth(engine *gin.Engine, h *handler.SystemHandler) {
	engine.GET("/health", h.Health)
}

func productRoutes(h *handler.ProductHandler) *DomainGroup {
	g := NewDomainGroup("products", "/products")
	g.GET("", h.List).
		GET("/featured", h.Featured).
		GET("/new", h.Newest).
		GET("/discounted", h.Discounted).
		GET("/price-range", h.PriceRange).
		GET("/:slug", h.GetBySlug)
	return g
}

func categoryRoutes(h *handler.CategoryHandler) *DomainGroup {
	g := NewDomainGroup("categories", "/categories")
	g.GET("", h.List).
		GET("/tree", h.Tree).
		GET("/popular", h.Popular).
		GET("/list", h.Flat).
		GET("/:ref/products", h.Products).
		GET("/:ref", h.GetBySlug)
	return g
}

func catalogRoutes(h *handler.CatalogHandler) *DomainGroup {
	g := NewDomainGroup("catalogs", "/catalogs")
	g.GET("", h.List).
		GET("/popular", h.Popular).
		GET("/list", h.Flat).
		GET("/by-category/:category_slug", h.ByCategory).
		GET("/brand/:brand_id", h.ByBrand).
		GET("/:slug/products", h.Products).
		GET("/:slug", h.GetBySlug)
	return g
}

// brandRoutes is mounted twice: manufacturers is the legacy name for brands
func brandRoutes(h *handler.BrandHandler, name, prefix string) *DomainGroup {
	g := NewDomainGroup(name, prefix)
	g.GET("", h.List).
		GET("/popular", h.Popular).
		GET("/list", h.Flat).
		GET("/:slug/catalogs", h.Catalogs).
		GET("/:slug/with-catalogs", h.WithCatalogs).
		GET("/:slug", h.GetBySlug)
	return g
}

func storefrontRoutes(h *handler.StorefrontHandler) *DomainGroup {
	g := NewDomainGroup("storefront", "")
	g.GET("/home", h.Home).
		GET("/tips", h.Tips).
		GET("/search/suggestions", h.Suggestions)

	videos := g.Group("videos", "/videos")
	videos.GET("/featured", h.FeaturedVideos).
		GET("/latest", h.LatestVideos).
		GET("/recent", h.LatestVideos).
		GET("/popular", h.PopularVideos).
		GET("/by-product/:slug", h.ProductVideos)
	return g
}

func postRoutes(h *handler.PostHandler) *DomainGroup {
	g := NewDomainGroup("posts", "/posts")
	g.GET("/featured", h.Featured).
		GET("/recent", h.Recent).
		GET("/pinned", h.Pinned).
		GET("/popular", h.Popular).
		GET("/search", h.Search).
		GET("/:slug", h.GetBySlug).
		POST("/:id/view", h.RecordView).
		POST("/:id/like", h.Like)

	tags := g.Group("tags", "/tags")
	tags.GET("/popular", h.PopularTags).
		GET("/:slug", h.TagBySlug)
	return g
}

func analyticsRoutes(h *handler.AnalyticsHandler) *DomainGroup {
	g := NewDomainGroup("analytics", "/analytics")
	g.POST("/batch", h.Batch).
		POST("/product-view", h.ProductView).
		POST("/product-interaction", h.ProductInteraction).
		GET("/products/:id/summary", h.ProductSummary)
	return g
}

func systemRoutes(h *handler.SystemHandler) *DomainGroup {
	g := NewDomainGroup("system", "")
	g.GET("/health", h.Health).
		GET("/system/info", h.GetSystemInfo)
	return g
}

func opsRoutes(h *handler.OpsHandler, adminAuth gin.HandlerFunc) *DomainGroup {
	g := NewDomainGroup("ops", "/ops").Use(adminAuth)
	g.POST("/rankings/recalculate", h.RecalculateRankings).
		POST("/rankings/ensure", h.EnsureRankings).
		GET("/scheduler/status", h.SchedulerStatus).
		DELETE("/cache", h.FlushCache)
	return g
}
