package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// VolatileCache is the second storage tier. It holds last-known-good copies of
// resolved records so reads survive a primary outage, and short-lived counters.
type VolatileCache interface {
	// Get decodes the value stored under key into dest and reports whether it existed.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Set stores value under key; ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Incr increments a counter that expires window after its first increment.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

const cacheKeyPrefix = "portfolio:"

// Key namespaces a cache key.
func Key(parts ...string) string {
	k := cacheKeyPrefix
	for i, p := range parts {
		if i > 0 {
			k += ":"
		}
		k += p
	}
	return k
}

// MemoryCache is an in-process VolatileCache. Values are kept as JSON so every
// Get hands out an independent copy.
type MemoryCache struct {
	c  *cache.Cache
	mu sync.Mutex
}

func NewMemoryCache(cleanup time.Duration) *MemoryCache {
	if cleanup <= 0 {
		cleanup = 10 * time.Minute
	}
	return &MemoryCache{c: cache.New(cache.NoExpiration, cleanup)}
}

func (m *MemoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.c.Get(key)
	if !ok {
		return false, nil
	}
	b, ok := raw.([]byte)
	if !ok {
		return false, fmt.Errorf("memory cache: unexpected value type %T for %q", raw, key)
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, fmt.Errorf("memory cache: decode %q: %w", key, err)
	}
	return true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("memory cache: encode %q: %w", key, err)
	}
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	m.c.Set(key, b, ttl)
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.c.Delete(k)
	}
	return nil
}

func (m *MemoryCache) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Add only succeeds for the first hit of a window, which fixes the expiry.
	_ = m.c.Add(key, int64(0), window)
	return m.c.IncrementInt64(key, 1)
}
