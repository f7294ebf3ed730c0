package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultMaxEntries bounds a MemoryCache created with a non-positive size.
const DefaultMaxEntries = 256

type entry struct {
	data      []byte
	expiresAt time.Time
	lastUsed  uint64
}

// MemoryCache is a bounded in-process cache. When full, the least recently
// used entry is evicted. It is safe for concurrent use.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]*entry
	max     int
	clock   uint64
	now     func() time.Time
}

// NewMemoryCache creates a cache holding at most maxEntries items.
func NewMemoryCache(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryCache{
		entries: make(map[string]*entry),
		max:     maxEntries,
		now:     time.Now,
	}
}

// Get returns the stored bytes, which callers must not modify.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false, nil
	}
	c.clock++
	e.lastUsed = c.clock
	return e.data, true, nil
}

// Set stores data under key, evicting the least recently used entry if the
// cache is full.
func (c *MemoryCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clock++
	e := &entry{data: data, lastUsed: c.clock}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.max {
		c.evict()
	}
	c.entries[key] = e
	return nil
}

// evict drops the least recently used entry. Callers hold mu.
func (c *MemoryCache) evict() {
	var oldest string
	var oldestUse uint64
	for k, e := range c.entries {
		if oldest == "" || e.lastUsed < oldestUse {
			oldest, oldestUse = k, e.lastUsed
		}
	}
	delete(c.entries, oldest)
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Close empties the cache.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	return nil
}

var _ Cache = (*MemoryCache)(nil)
