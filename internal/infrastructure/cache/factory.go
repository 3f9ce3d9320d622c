package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/doorshop/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Factory builds the response cache and the dedup store from one Redis connection,
// falling back to in-memory implementations when Redis is unreachable.
type Factory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
	pingTimeout           time.Duration

	client    *redis.Client
	clientErr error
	closers   []func() error
}

// FactoryOption is a functional option for configuring the factory
type FactoryOption func(*Factory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to in-memory stores when Redis is unavailable.
// Default is true.
func WithInMemoryFallback(allow bool) FactoryOption {
	return func(f *Factory) {
		f.allowInMemoryFallback = allow
	}
}

// NewFactory creates a new factory
func NewFactory(cfg config.RedisConfig, opts ...FactoryOption) *Factory {
	f := &Factory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
		pingTimeout:           5 * time.Second,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// redisClient connects once; a failed ping is remembered
func (f *Factory) redisClient() (*redis.Client, error) {
	if f.client != nil || f.clientErr != nil {
		return f.client, f.clientErr
	}
	client := redis.NewClient(&redis.Options{
		Addr:     f.redisConfig.Addr(),
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), f.pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		f.clientErr = fmt.Errorf("failed to connect to Redis: %w", err)
		return nil, f.clientErr
	}

	f.client = client
	f.closers = append(f.closers, client.Close)
	return client, nil
}

// CreateCache returns a breaker-guarded Redis cache, or an in-memory one as fallback.
// The response cache always falls back; losing it only costs latency.
func (f *Factory) CreateCache() shared.Cache {
	client, err := f.redisClient()
	if err == nil {
		f.logger.Info("using Redis response cache", zap.String("addr", f.redisConfig.Addr()))
		return NewRedisCache(client,
			WithDefaultTTL(f.redisConfig.DefaultTTL),
			WithBreaker(f.redisConfig.BreakerFailures, 0),
			WithCacheLogger(f.logger),
		)
	}

	f.logger.Warn("Redis unavailable, using in-memory response cache", zap.Error(err))
	mem := NewInMemoryCache(f.redisConfig.DefaultTTL)
	f.closers = append(f.closers, mem.Close)
	return mem
}

// CreateIdempotencyStore returns the view dedup store
func (f *Factory) CreateIdempotencyStore() (shared.IdempotencyStore, error) {
	client, err := f.redisClient()
	if err == nil {
		f.logger.Info("using Redis dedup store")
		return NewRedisIdempotencyStore(client, defaultDedupPrefix), nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("redis required for view deduplication but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory dedup store. "+
		"Views may be double counted across instances.",
		zap.Error(err),
	)
	store := NewInMemoryIdempotencyStore()
	f.closers = append(f.closers, store.Close)
	return store, nil
}

// Close releases everything the factory created
func (f *Factory) Close() error {
	var firstErr error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if err := f.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	f.closers = nil
	f.client = nil
	f.clientErr = nil
	return firstErr
}
