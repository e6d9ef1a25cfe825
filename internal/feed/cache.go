package feed

import (
	"sync"
	"time"
)

// DefaultCacheTTL is the freshness window for cached feed payloads.
const DefaultCacheTTL = 24 * time.Hour

// Cache memoizes raw fetch payloads for a fixed duration after capture. The
// payload is opaque to the cache.
type Cache interface {
	Get(key string) ([]byte, bool)
	Put(key string, payload []byte)
}

type cacheEntry struct {
	payload   []byte
	fetchedAt time.Time
}

// MemoryCache is a process-wide, URL-keyed TTL cache. Entries are valid
// strictly less than the TTL after capture; an expired entry is treated as
// absent and overwritten on the next fetch. Concurrent writes to the same
// key are last-write-wins, which is fine since payloads for one key are
// equivalent.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type MemoryCacheOption func(*MemoryCache)

func NewMemoryCache(opts ...MemoryCacheOption) *MemoryCache {
	c := &MemoryCache{
		entries: make(map[string]cacheEntry),
		ttl:     DefaultCacheTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithTTL(ttl time.Duration) MemoryCacheOption {
	return func(c *MemoryCache) {
		c.ttl = ttl
	}
}

// WithClock injects the time source, so staleness is testable without
// waiting out the TTL.
func WithClock(now func() time.Time) MemoryCacheOption {
	return func(c *MemoryCache) {
		c.now = now
	}
}

func (c *MemoryCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		return nil, false
	}
	return entry.payload, true
}

func (c *MemoryCache) Put(key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{payload: payload, fetchedAt: c.now()}
}
