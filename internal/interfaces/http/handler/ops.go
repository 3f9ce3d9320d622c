package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/doorshop/backend/internal/infrastructure/logger"
	"github.com/doorshop/backend/internal/infrastructure/scheduler"
	"github.com/doorshop/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RankingScheduler is the part of the ranking scheduler the ops endpoints drive
type RankingScheduler interface {
	TriggerManualRun(kind scheduler.JobKind) error
	GetStatus() scheduler.Status
}

// OpsHandler exposes the admin-only maintenance endpoints
type OpsHandler struct {
	BaseHandler
	scheduler RankingScheduler
	cache     shared.Cache
}

// NewOpsHandler creates a new OpsHandler
func NewOpsHandler(scheduler RankingScheduler, cache shared.Cache) *OpsHandler {
	return &OpsHandler{scheduler: scheduler, cache: cache}
}

// RecalculateRankings godoc
// @ID           recalculateRankings
// @Summary      Recalculate rankings
// @Description  Queues a full ranking recalculation on the scheduler pool
// @Tags         ops
// @Produce      json
// @Security     BearerAuth
// @Success      202 {object} APIResponse[JobAcceptedData]
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /ops/rankings/recalculate [post]
func (h *OpsHandler) RecalculateRankings(c *gin.Context) {
	h.trigger(c, scheduler.JobKindRecalculateRankings)
}

// EnsureRankings godoc
// @ID           ensureRankings
// @Summary      Ensure ranking records
// @Description  Queues creation of ranking rows for products without one
// @Tags         ops
// @Produce      json
// @Security     BearerAuth
// @Success      202 {object} APIResponse[JobAcceptedData]
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /ops/rankings/ensure [post]
func (h *OpsHandler) EnsureRankings(c *gin.Context) {
	h.trigger(c, scheduler.JobKindEnsureRankings)
}

func (h *OpsHandler) trigger(c *gin.Context, kind scheduler.JobKind) {
	if err := h.scheduler.TriggerManualRun(kind); err != nil {
		if errors.Is(err, scheduler.ErrSchedulerNotRunning) || errors.Is(err, scheduler.ErrJobQueueFull) {
			h.Error(c, http.StatusServiceUnavailable, dto.ErrCodeUnavailable, err.Error())
			return
		}
		h.HandleError(c, err)
		return
	}
	logger.GetGinLogger(c).Info("ops job queued", zap.String("job", string(kind)))
	h.Accepted(c, JobAcceptedData{Job: string(kind), Message: "job queued"})
}

// SchedulerStatus godoc
// @ID           getSchedulerStatus
// @Summary      Scheduler status
// @Description  Schedules, next runs and the last result of each ranking job
// @Tags         ops
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} APIResponse[scheduler.Status]
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /ops/scheduler/status [get]
func (h *OpsHandler) SchedulerStatus(c *gin.Context) {
	h.Success(c, h.scheduler.GetStatus())
}

// FlushCache godoc
// @ID           flushCache
// @Summary      Flush cache keys
// @Description  Deletes every cache key matching the glob pattern
// @Tags         ops
// @Produce      json
// @Security     BearerAuth
// @Param        pattern query string true "Glob pattern, e.g. products:*"
// @Success      200 {object} APIResponse[CacheFlushData]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /ops/cache [delete]
func (h *OpsHandler) FlushCache(c *gin.Context) {
	pattern := strings.TrimSpace(c.Query("pattern"))
	if pattern == "" {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeValidationRequired, "pattern is required")
		return
	}
	deleted, err := h.cache.DeletePattern(c.Request.Context(), pattern)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	logger.GetGinLogger(c).Info("cache flushed", zap.String("pattern", pattern), zap.Int("deleted", deleted))
	h.Success(c, CacheFlushData{Pattern: pattern, Deleted: deleted})
}
