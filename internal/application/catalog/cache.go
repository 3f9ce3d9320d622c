package catalog

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

// Cache keys and patterns shared with the invalidation handler
const (
	KeyProductsListPrefix = "products:list:"
	KeyProductsFeatured   = "products:featured:"
	KeyProductsDiscounted = "products:discounted:"
	KeyProductsPriceRange = "products:price-range"
	KeyCategoriesTree     = "categories:tree:"
	KeyHome               = "home"
)

// responseCache is a cache-aside helper around shared.Cache.
// Cache failures are logged and treated as misses.
type responseCache struct {
	cache  shared.Cache
	ttl    time.Duration
	logger *zap.Logger
}

func newResponseCache(cache shared.Cache, ttl time.Duration, logger *zap.Logger) *responseCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &responseCache{cache: cache, ttl: ttl, logger: logger}
}

// cached returns the value stored at key, or computes, stores and returns it
func cached[T any](ctx context.Context, c *responseCache, key string, load func() (T, error)) (T, error) {
	var value T
	if c == nil || c.cache == nil {
		return load()
	}

	found, err := c.cache.Get(ctx, key, &value)
	if err != nil {
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	} else if found {
		return value, nil
	}

	value, err = load()
	if err != nil {
		return value, err
	}
	if err := c.cache.Set(ctx, key, value, c.ttl); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}

// hashKey returns a fixed-size key suffix for an arbitrary query
func hashKey(query any) string {
	raw, err := json.Marshal(query)
	if err != nil {
		return "unhashable"
	}
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:16])
}

// clampLimit applies a default to non-positive limits and caps the rest
func clampLimit(limit, def, maxLimit int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, maxLimit)
}

func pageDefaults(page, perPage, defPerPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	return page, clampLimit(perPage, defPerPage, 100)
}
