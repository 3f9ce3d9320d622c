package event

import (
	"context"
	"fmt"

	"github.com/doorshop/backend/internal/domain/analytics"
	"github.com/doorshop/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Cache key patterns owned by the product listings
const (
	ProductsCachePattern = "products:*"
	HomeCacheKey         = "home"
)

// CacheInvalidationHandler drops cached product listings once scores change
type CacheInvalidationHandler struct {
	cache  shared.Cache
	logger *zap.Logger
}

// NewCacheInvalidationHandler creates the handler
func NewCacheInvalidationHandler(cache shared.Cache, logger *zap.Logger) *CacheInvalidationHandler {
	return &CacheInvalidationHandler{cache: cache, logger: logger}
}

// EventTypes implements shared.EventHandler
func (h *CacheInvalidationHandler) EventTypes() []string {
	return []string{
		analytics.EventTypeRankingsRecalculated,
		analytics.EventTypeRankingRecordsEnsured,
	}
}

// Handle implements shared.EventHandler
func (h *CacheInvalidationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	n, err := h.cache.DeletePattern(ctx, ProductsCachePattern)
	if err != nil {
		return fmt.Errorf("flush %s: %w", ProductsCachePattern, err)
	}
	if err := h.cache.Delete(ctx, HomeCacheKey); err != nil {
		return fmt.Errorf("flush %s: %w", HomeCacheKey, err)
	}
	h.logger.Info("product cache flushed",
		zap.String("event_type", event.EventType()),
		zap.Int("keys", n),
	)
	return nil
}

// LoggingHandler writes every event to the log at debug level
type LoggingHandler struct {
	logger *zap.Logger
}

// NewLoggingHandler creates the handler
func NewLoggingHandler(logger *zap.Logger) *LoggingHandler {
	return &LoggingHandler{logger: logger}
}

// EventTypes returns nil, so the handler receives every event
func (h *LoggingHandler) EventTypes() []string { return nil }

// Handle implements shared.EventHandler
func (h *LoggingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.logger.Debug("domain event",
		zap.String("event_type", event.EventType()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("event_id", event.EventID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}
