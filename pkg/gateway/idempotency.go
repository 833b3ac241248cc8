package gateway

import (
	"sync"
	"time"
)

const (
	// idempotencyTTL is how long a cached successful response stays
	// replayable for its idempotency key.
	idempotencyTTL = 300 * time.Second

	// idempotencySweepInterval is how often expired entries are evicted.
	idempotencySweepInterval = 60 * time.Second
)

type idemEntry struct {
	data     []byte
	storedAt time.Time
}

// idempotencyCache caches serialized successful responses keyed by the
// client-supplied idempotency key. Only successful responses are cached
// so a failed call can be retried with the same key.
type idempotencyCache struct {
	mu      sync.Mutex
	entries map[string]idemEntry
	ttl     time.Duration
	now     func() time.Time
}

func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	return &idempotencyCache{
		entries: make(map[string]idemEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached response bytes for a key, if still fresh.
func (c *idempotencyCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.data, true
}

// Put stores the response bytes for a key.
func (c *idempotencyCache) Put(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = idemEntry{data: data, storedAt: c.now()}
}

// Sweep evicts all expired entries and returns how many were removed.
func (c *idempotencyCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	cutoff := c.now().Add(-c.ttl)
	for key, entry := range c.entries {
		if entry.storedAt.Before(cutoff) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len reports the current entry count.
func (c *idempotencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
