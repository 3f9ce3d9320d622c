package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers keys that were already seen.
// The analytics pipeline uses it to count a view once per session and day.
type IdempotencyStore interface {
	// MarkProcessed marks a key as seen with a TTL
	// Returns true if the key was newly marked, false if it was already present
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// IsProcessed checks if a key has already been seen
	IsProcessed(ctx context.Context, key string) (bool, error)

	// Release forgets a key, e.g. when the work it guarded was rolled back
	Release(ctx context.Context, key string) error

	// Close closes the store and releases resources
	Close() error
}
