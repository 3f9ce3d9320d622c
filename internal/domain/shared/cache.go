package shared

import (
	"context"
	"time"
)

// Cache is a JSON response cache keyed by string.
// A zero ttl means the implementation default.
type Cache interface {
	// Get decodes the cached value into dest and reports whether the key was found
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeletePattern removes keys matching a glob pattern and returns how many were removed
	DeletePattern(ctx context.Context, pattern string) (int, error)
	Ping(ctx context.Context) error
}
