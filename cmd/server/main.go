package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	analyticsapp "github.com/doorshop/backend/internal/application/analytics"
	blogapp "github.com/doorshop/backend/internal/application/blog"
	catalogapp "github.com/doorshop/backend/internal/application/catalog"
	"github.com/doorshop/backend/internal/infrastructure/auth"
	"github.com/doorshop/backend/internal/infrastructure/cache"
	"github.com/doorshop/backend/internal/infrastructure/config"
	"github.com/doorshop/backend/internal/infrastructure/event"
	"github.com/doorshop/backend/internal/infrastructure/logger"
	"github.com/doorshop/backend/internal/infrastructure/persistence"
	"github.com/doorshop/backend/internal/infrastructure/scheduler"
	"github.com/doorshop/backend/internal/infrastructure/storage"
	"github.com/doorshop/backend/internal/infrastructure/telemetry"
	"github.com/doorshop/backend/internal/interfaces/http/handler"
	"github.com/doorshop/backend/internal/interfaces/http/middleware"
	"github.com/doorshop/backend/internal/interfaces/http/router"
	"go.uber.org/zap"

	_ "github.com/doorshop/backend/docs"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Doorshop Storefront API
//	@version		1.0
//	@description	Read-mostly storefront API: catalog browsing, blog, analytics ingestion and product rankings.

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Ops token. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Telemetry
	logsProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
		Level:             cfg.Telemetry.LogsLevel,
	})
	if err != nil {
		log.Fatal("Failed to initialize log export", zap.Error(err))
	}
	log = logsProvider.Bridge(log)
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting storefront API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}
	meter := meterProvider.Meter(cfg.Telemetry.ServiceName)

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:           cfg.Telemetry.Profiling.Enabled,
		ServerAddress:     cfg.Telemetry.Profiling.ServerAddress,
		ApplicationName:   cfg.Telemetry.ServiceName,
		BasicAuthUser:     cfg.Telemetry.Profiling.BasicAuthUser,
		BasicAuthPassword: cfg.Telemetry.Profiling.BasicAuthPassword,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.IsEnabled() && cfg.Telemetry.Profiling.SpanProfiles {
		tracerProvider.EnableSpanProfiles()
	}

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), cfg.Telemetry.DBSlowQueryThresh)
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:    cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL: cfg.Telemetry.DBLogFullSQL,
		DBName:     cfg.Database.DBName,
	}, log); err != nil {
		log.Warn("Database tracing disabled", zap.Error(err))
	}
	poolMetrics, err := telemetry.RegisterDBPoolMetrics(meter, db.PoolStats)
	if err != nil {
		log.Fatal("Failed to register pool metrics", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Cache
	cacheFactory := cache.NewFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(cfg.Analytics.DedupFallbackInMemory),
	)
	responseCache := cacheFactory.CreateCache()
	dedupStore, err := cacheFactory.CreateIdempotencyStore()
	if err != nil {
		log.Fatal("Failed to create view deduplication store", zap.Error(err))
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	catalogRepo := persistence.NewGormCatalogRepository(db.DB)
	brandRepo := persistence.NewGormBrandRepository(db.DB)
	contentRepo := persistence.NewGormContentRepository(db.DB)
	videoRepo := persistence.NewGormVideoRepository(db.DB)
	postRepo := persistence.NewGormPostRepository(db.DB)
	tagRepo := persistence.NewGormTagRepository(db.DB)
	rankingRepo := persistence.NewGormRankingRepository(db.DB)
	summaryRepo := persistence.NewGormSummaryRepository(db.DB)
	eventRepo := persistence.NewGormEventRepository(db.DB)

	// Event bus
	eventBus := event.NewInMemoryEventBus(log)
	cacheInvalidation := event.NewCacheInvalidationHandler(responseCache, log)
	eventBus.Subscribe(cacheInvalidation, cacheInvalidation.EventTypes()...)
	eventBus.Subscribe(event.NewLoggingHandler(log))
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// Application services
	ttl := cfg.Redis.DefaultTTL
	productService := catalogapp.NewProductService(productRepo, responseCache, ttl, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo, responseCache, ttl, log)
	catalogService := catalogapp.NewCatalogService(catalogRepo, categoryRepo, brandRepo, productRepo)
	brandService := catalogapp.NewBrandService(brandRepo, catalogRepo, categoryRepo, productRepo)
	storefrontService := catalogapp.NewStorefrontService(contentRepo, categoryRepo, productRepo, videoRepo, responseCache, ttl, log)
	postService := blogapp.NewPostService(postRepo, tagRepo, log)

	if cfg.Storage.Enabled {
		mediaStore, err := storage.NewS3MediaStore(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize media storage", zap.Error(err))
		}
		productService.SetMediaResolver(mediaStore)
		categoryService.SetMediaResolver(mediaStore)
		catalogService.SetMediaResolver(mediaStore)
		brandService.SetMediaResolver(mediaStore)
		storefrontService.SetMediaResolver(mediaStore)
		log.Info("Media URLs resolved through object storage", zap.String("bucket", mediaStore.Bucket()))
	}

	analyticsMetrics, err := telemetry.NewAnalyticsMetrics(meter)
	if err != nil {
		log.Warn("Analytics metrics disabled", zap.Error(err))
		analyticsMetrics = telemetry.NewNoopAnalyticsMetrics()
	}

	trackingService := analyticsapp.NewTrackingService(
		persistence.NewGormAnalyticsTransactionScope(db.DB),
		dedupStore,
		analyticsapp.TrackingConfig{MaxBatchSize: cfg.Analytics.MaxBatchSize},
		log,
	)
	trackingService.SetEventPublisher(eventBus)
	trackingService.SetMetrics(analyticsMetrics)

	rankingService := analyticsapp.NewRankingService(rankingRepo, summaryRepo, eventRepo, analyticsapp.RankingConfig{
		WindowDays: cfg.Ranking.WindowDays,
		Decay:      cfg.Ranking.Decay,
	}, log)
	rankingService.SetEventPublisher(eventBus)
	rankingService.SetMetrics(analyticsMetrics)

	// Ranking scheduler
	pool := scheduler.DefaultConfig()
	pool.MaxConcurrentJobs = cfg.Ranking.MaxConcurrentJobs
	pool.JobTimeout = cfg.Ranking.JobTimeout
	pool.RetryAttempts = cfg.Ranking.RetryAttempts
	pool.RetryDelay = cfg.Ranking.RetryDelay
	rankingScheduler, err := scheduler.NewRankingCronScheduler(scheduler.RankingSchedulerConfig{
		Enabled:    cfg.Ranking.Enabled,
		RecalcCron: cfg.Ranking.RecalcCron,
		EnsureCron: cfg.Ranking.EnsureCron,
		Pool:       pool,
		Location:   time.UTC,
	}, rankingService, log)
	if err != nil {
		log.Fatal("Invalid ranking schedule", zap.Error(err))
	}
	if err := rankingScheduler.Start(ctx); err != nil {
		log.Fatal("Failed to start ranking scheduler", zap.Error(err))
	}

	// HTTP
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	securityConfig := middleware.DefaultSecurityConfig()
	securityConfig.HSTSEnabled = cfg.App.IsProduction()

	var rateLimiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter = middleware.NewRateLimiter(ctx, cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
	}

	engine, err := router.NewEngine(router.EngineConfig{
		ServiceName:      cfg.Telemetry.ServiceName,
		TracingEnabled:   tracerProvider.IsEnabled(),
		ProfilingEnabled: profiler.IsEnabled(),
		SwaggerEnabled:   cfg.Swagger.Enabled,
		MaxBodySize:      cfg.HTTP.MaxBodySize,
		TrustedProxies:   cfg.HTTP.TrustedProxies,
		CORS:             corsConfig,
		Security:         securityConfig,
		RateLimiter:      rateLimiter,
		Meter:            meter,
	}, log)
	if err != nil {
		log.Fatal("Failed to configure HTTP engine", zap.Error(err))
	}

	analyticsHandler := handler.NewAnalyticsHandler(trackingService, rankingService)
	analyticsHandler.SetSessionHeader(cfg.Analytics.SessionIDHeader)
	systemHandler := handler.NewSystemHandler(db, responseCache, version)

	r := router.NewRouter(engine, router.WithBasePath(cfg.App.BasePath()))
	router.RegisterStorefront(r, router.Handlers{
		Product:    handler.NewProductHandler(productService),
		Category:   handler.NewCategoryHandler(categoryService),
		Catalog:    handler.NewCatalogHandler(catalogService),
		Brand:      handler.NewBrandHandler(brandService),
		Storefront: handler.NewStorefrontHandler(storefrontService),
		Post:       handler.NewPostHandler(postService),
		Analytics:  analyticsHandler,
		Ops:        handler.NewOpsHandler(rankingScheduler, responseCache),
		System:     systemHandler,
	}, middleware.AdminAuth(auth.NewJWTService(cfg.JWT)))
	r.Setup()
	router.RegisterHealth(engine, systemHandler)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr), zap.String("base_path", r.BasePath()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := rankingScheduler.Stop(shutdownCtx); err != nil {
		log.Error("Ranking scheduler did not stop cleanly", zap.Error(err))
	}
	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Error("Event bus did not stop cleanly", zap.Error(err))
	}
	stop()
	if err := cacheFactory.Close(); err != nil {
		log.Error("Error closing cache", zap.Error(err))
	}
	if err := poolMetrics.Unregister(); err != nil {
		log.Error("Error unregistering pool metrics", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Error("Error stopping profiler", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down metrics", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down tracing", zap.Error(err))
	}
	log.Info("Server exited gracefully")
	if err := logsProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down log export", zap.Error(err))
	}
}
