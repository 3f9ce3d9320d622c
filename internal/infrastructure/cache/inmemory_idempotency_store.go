package cache

import (
	"context"
	"sync"
	"time"

	"github.com/doorshop/backend/internal/domain/shared"
)

const (
	defaultDedupMaxKeys       = 100_000
	defaultDedupSweepInterval = 5 * time.Minute
)

// InMemoryIdempotencyStore is the per-process view dedup set used when Redis is not configured.
// It holds at most maxKeys keys; when full, the key closest to expiry is evicted.
type InMemoryIdempotencyStore struct {
	mu      sync.Mutex
	expiry  map[string]time.Time
	maxKeys int
	sweep   time.Duration
	now     func() time.Time

	stop      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// DedupOption configures an InMemoryIdempotencyStore
type DedupOption func(*InMemoryIdempotencyStore)

// WithMaxKeys caps the number of live keys; n <= 0 keeps the default
func WithMaxKeys(n int) DedupOption {
	return func(s *InMemoryIdempotencyStore) {
		if n > 0 {
			s.maxKeys = n
		}
	}
}

// WithSweepInterval sets how often expired keys are dropped
func WithSweepInterval(d time.Duration) DedupOption {
	return func(s *InMemoryIdempotencyStore) {
		if d > 0 {
			s.sweep = d
		}
	}
}

// NewInMemoryIdempotencyStore creates the store and starts its sweeper
func NewInMemoryIdempotencyStore(opts ...DedupOption) *InMemoryIdempotencyStore {
	s := &InMemoryIdempotencyStore{
		expiry:  make(map[string]time.Time),
		maxKeys: defaultDedupMaxKeys,
		sweep:   defaultDedupSweepInterval,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.wg.Add(1)
	go s.sweepLoop()
	return s
}

// MarkProcessed records key for ttl. It reports false when key is already live.
func (s *InMemoryIdempotencyStore) MarkProcessed(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if until, ok := s.expiry[key]; ok && now.Before(until) {
		return false, nil
	}
	if _, ok := s.expiry[key]; !ok && len(s.expiry) >= s.maxKeys {
		s.dropExpiredLocked(now)
		if len(s.expiry) >= s.maxKeys {
			s.evictSoonestLocked()
		}
	}
	s.expiry[key] = now.Add(ttl)
	return true, nil
}

// IsProcessed reports whether key is live
func (s *InMemoryIdempotencyStore) IsProcessed(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	until, ok := s.expiry[key]
	s.mu.Unlock()
	return ok && s.now().Before(until), nil
}

// Release forgets key so a rolled back view can count again
func (s *InMemoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.expiry, key)
	s.mu.Unlock()
	return nil
}

// Close stops the sweeper. Safe to call more than once.
func (s *InMemoryIdempotencyStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		s.wg.Wait()
	})
	return nil
}

// Size returns the number of stored keys, expired ones included until the next sweep
func (s *InMemoryIdempotencyStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.expiry)
}

func (s *InMemoryIdempotencyStore) sweepLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.sweep)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.dropExpiredLocked(s.now())
			s.mu.Unlock()
		}
	}
}

func (s *InMemoryIdempotencyStore) dropExpiredLocked(now time.Time) {
	for key, until := range s.expiry {
		if !now.Before(until) {
			delete(s.expiry, key)
		}
	}
}

func (s *InMemoryIdempotencyStore) evictSoonestLocked() {
	var (
		victim string
		soon   time.Time
	)
	for key, until := range s.expiry {
		if victim == "" || until.Before(soon) {
			victim, soon = key, until
		}
	}
	delete(s.expiry, victim)
}

var _ shared.IdempotencyStore = (*InMemoryIdempotencyStore)(nil)
