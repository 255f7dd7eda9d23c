package geocoding

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Cache is a process-wide TTL cache of geocoding results. Keys are the
// literal lat/lon request strings: "14.5" and "14.50" are distinct
// entries on purpose.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   clockwork.Clock
	entries map[string]cacheEntry
}

type cacheEntry struct {
	result    Result
	expiresAt time.Time
}

// NewCache creates a cache whose entries expire after ttl.
func NewCache(ttl time.Duration, clock clockwork.Clock) *Cache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Cache{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]cacheEntry),
	}
}

// CacheKey builds the cache key from the literal coordinate strings.
func CacheKey(lat, lon string) string {
	return lat + "_" + lon
}

// Get returns the cached result for key, expiring stale entries lazily.
func (c *Cache) Get(key string) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return Result{}, false
	}
	if c.clock.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return Result{}, false
	}
	return e.result, true
}

// Put stores a result under key with the configured TTL.
func (c *Cache) Put(key string, result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{
		result:    result,
		expiresAt: c.clock.Now().Add(c.ttl),
	}
}

// Len reports the number of live entries. Intended for tests.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
