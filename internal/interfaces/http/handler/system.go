package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/doorshop/backend/internal/infrastructure/logger"
	"github.com/doorshop/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	healthStatusOK       = "ok"
	healthStatusDegraded = "degraded"
	healthStatusDown     = "unavailable"

	healthCheckTimeout = 2 * time.Second
)

// Pinger is anything whose reachability the health check reports
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler handles the health and info endpoints
type SystemHandler struct {
	BaseHandler
	db        Pinger
	cache     shared.Cache
	version   string
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger, cache shared.Cache, version string) *SystemHandler {
	return &SystemHandler{
		db:        db,
		cache:     cache,
		version:   version,
		startTime: time.Now(),
	}
}

// HealthResponse represents the health check response
// @name HandlerHealthResponse
type HealthResponse struct {
	Status   string    `json:"status" example:"ok"`
	Time     time.Time `json:"time" example:"2026-01-23T12:00:00Z"`
	Database string    `json:"database" example:"ok"`
	Cache    string    `json:"cache" example:"ok"`
}

// Health godoc
// @ID           getHealth
// @Summary      Health check
// @Description  Pings the database and the cache. Returns 503 when the database is unreachable, a cache outage only degrades the status
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:   healthStatusOK,
		Time:     time.Now().UTC(),
		Database: healthStatusOK,
		Cache:    healthStatusOK,
	}
	status := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		logger.GetGinLogger(c).Warn("health check: database unreachable", zap.Error(err))
		resp.Database = healthStatusDown
		resp.Status = healthStatusDown
		status = http.StatusServiceUnavailable
	}
	if err := h.cache.Ping(ctx); err != nil {
		logger.GetGinLogger(c).Warn("health check: cache unreachable", zap.Error(err))
		resp.Cache = healthStatusDown
		if status == http.StatusOK {
			resp.Status = healthStatusDegraded
		}
	}

	c.JSON(status, resp)
}

// SystemInfoResponse represents the system information response
// @name HandlerSystemInfoResponse
type SystemInfoResponse struct {
	Name      string `json:"name" example:"Doorshop Storefront API"`
	Version   string `json:"version" example:"1.0.0"`
	GoVersion string `json:"go_version" example:"go1.25.5"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
}

// GetSystemInfo godoc
// @ID           getSystemInfo
// @Summary      Get system information
// @Description  Returns basic system information including version and uptime
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[SystemInfoResponse]
// @Router       /system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	info := SystemInfoResponse{
		Name:      "Doorshop Storefront API",
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}
