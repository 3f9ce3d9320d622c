package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const (
	defaultTTL           = time.Hour
	defaultScanBatchSize = 100
)

// RedisCache implements shared.Cache on Redis behind a circuit breaker.
// While the breaker is open reads report a miss and writes are dropped.
type RedisCache struct {
	client     *redis.Client
	breaker    *gobreaker.CircuitBreaker[any]
	defaultTTL time.Duration
	logger     *zap.Logger
}

// RedisCacheOption configures a RedisCache
type RedisCacheOption func(*redisCacheOptions)

type redisCacheOptions struct {
	defaultTTL      time.Duration
	breakerFailures uint32
	breakerTimeout  time.Duration
	logger          *zap.Logger
}

// WithDefaultTTL sets the TTL used when Set receives zero
func WithDefaultTTL(ttl time.Duration) RedisCacheOption {
	return func(o *redisCacheOptions) {
		if ttl > 0 {
			o.defaultTTL = ttl
		}
	}
}

// WithBreaker sets how many consecutive failures open the breaker and how long it stays open
func WithBreaker(failures uint32, openTimeout time.Duration) RedisCacheOption {
	return func(o *redisCacheOptions) {
		if failures > 0 {
			o.breakerFailures = failures
		}
		if openTimeout > 0 {
			o.breakerTimeout = openTimeout
		}
	}
}

// WithCacheLogger sets the logger
func WithCacheLogger(logger *zap.Logger) RedisCacheOption {
	return func(o *redisCacheOptions) {
		o.logger = logger
	}
}

// NewRedisCache wraps client. The caller owns the client.
func NewRedisCache(client *redis.Client, opts ...RedisCacheOption) *RedisCache {
	o := redisCacheOptions{
		defaultTTL:      defaultTTL,
		breakerFailures: 5,
		breakerTimeout:  30 * time.Second,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger.Named("cache")
	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "redis-cache",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     o.breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= o.breakerFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, redis.Nil)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &RedisCache{
		client:     client,
		breaker:    cb,
		defaultTTL: o.defaultTTL,
		logger:     logger,
	}
}

// isRejected reports whether err came from an open or saturated breaker
func isRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// Get implements shared.Cache
func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	res, err := c.breaker.Execute(func() (any, error) {
		return c.client.Get(ctx, key).Bytes()
	})
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case isRejected(err):
		c.logger.Debug("Cache read skipped, breaker open", zap.String("key", key))
		return false, nil
	case err != nil:
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	data, _ := res.([]byte)
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

// Set implements shared.Cache
func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	_, err = c.breaker.Execute(func() (any, error) {
		return nil, c.client.Set(ctx, key, data, ttl).Err()
	})
	if isRejected(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Delete implements shared.Cache
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.client.Del(ctx, keys...).Err()
	})
	if err != nil && !isRejected(err) {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// DeletePattern removes keys matching pattern using SCAN so Redis is never blocked by KEYS
func (c *RedisCache) DeletePattern(ctx context.Context, pattern string) (int, error) {
	res, err := c.breaker.Execute(func() (any, error) {
		deleted := 0
		var cursor uint64
		for {
			keys, next, err := c.client.Scan(ctx, cursor, pattern, defaultScanBatchSize).Result()
			if err != nil {
				return deleted, err
			}
			if len(keys) > 0 {
				n, err := c.client.Del(ctx, keys...).Result()
				if err != nil {
					return deleted, err
				}
				deleted += int(n)
			}
			cursor = next
			if cursor == 0 {
				return deleted, nil
			}
		}
	})
	if isRejected(err) {
		return 0, nil
	}
	deleted, _ := res.(int)
	if err != nil {
		return deleted, fmt.Errorf("cache delete pattern %s: %w", pattern, err)
	}
	c.logger.Debug("Cache keys deleted", zap.String("pattern", pattern), zap.Int("count", deleted))
	return deleted, nil
}

// Ping implements shared.Cache
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// State returns the breaker state, for health reporting
func (c *RedisCache) State() string {
	return c.breaker.State().String()
}

var _ shared.Cache = (*RedisCache)(nil)
