package cache

import (
	"context"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/goccy/go-json"
)

type cacheItem struct {
	data      []byte
	expiresAt time.Time
}

// InMemoryCache implements shared.Cache with a map.
// Values are stored JSON-encoded so callers see the same copy semantics as with Redis.
type InMemoryCache struct {
	mu         sync.RWMutex
	items      map[string]cacheItem
	defaultTTL time.Duration
	now        func() time.Time
	stopChan   chan struct{}
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

// NewInMemoryCache creates a cache and starts its cleanup goroutine
func NewInMemoryCache(ttl time.Duration) *InMemoryCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	c := &InMemoryCache{
		items:      make(map[string]cacheItem),
		defaultTTL: ttl,
		now:        time.Now,
		stopChan:   make(chan struct{}),
	}
	c.wg.Add(1)
	go c.cleanupLoop()
	return c
}

// Get implements shared.Cache
func (c *InMemoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || !c.now().Before(item.expiresAt) {
		return false, nil
	}
	if err := json.Unmarshal(item.data, dest); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

// Set implements shared.Cache
func (c *InMemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	c.mu.Lock()
	c.items[key] = cacheItem{data: data, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// Delete implements shared.Cache
func (c *InMemoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.items, k)
	}
	return nil
}

// DeletePattern implements shared.Cache with glob matching
func (c *InMemoryCache) DeletePattern(_ context.Context, pattern string) (int, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return 0, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	deleted := 0
	for k := range c.items {
		if ok, _ := path.Match(pattern, k); ok {
			delete(c.items, k)
			deleted++
		}
	}
	return deleted, nil
}

// Ping implements shared.Cache
func (c *InMemoryCache) Ping(context.Context) error {
	return nil
}

// Len returns the number of stored items, expired ones included
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (c *InMemoryCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
		c.wg.Wait()
	})
	return nil
}

func (c *InMemoryCache) cleanupLoop() {
	defer c.wg.Done()
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *InMemoryCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for k, item := range c.items {
		if !now.Before(item.expiresAt) {
			delete(c.items, k)
		}
	}
}

var _ shared.Cache = (*InMemoryCache)(nil)
