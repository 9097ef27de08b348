// Package cache provides the two in-memory caches in front of upstream
// fetches: a response cache with liveness-tiered TTLs and ETag support, and
// a longer-horizon player cache with explicit stale-while-revalidate
// semantics.
package cache

import (
	"crypto/md5"
	"fmt"
	"sync"
	"time"
)

// TTL tiers. Live requests (no date filter — data may be in progress right
// now) expire quickly; everything else is historical or future-scheduled
// and can sit longer.
const (
	TTLLive   = 15 * time.Second
	TTLStatic = 60 * time.Second
)

// Entry is one cached response.
type Entry struct {
	Data     []byte
	ETag     string
	StoredAt time.Time
	Live     bool
}

// Cache is a thread-safe in-memory response cache. Expired entries are
// treated as misses on read and overwritten in place on the next Set —
// there is no eviction sweep, since the key space (sport × resource × id)
// is finite for the process lifetime.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	now     func() time.Time
}

// New creates a response cache using wall-clock time.
func New() *Cache {
	return NewWithClock(time.Now)
}

// NewWithClock creates a cache with an injected clock, so TTL boundaries
// are testable.
func NewWithClock(now func() time.Time) *Cache {
	return &Cache{
		entries: make(map[string]Entry),
		now:     now,
	}
}

// TTL returns the tier duration for a liveness flag.
func TTL(live bool) time.Duration {
	if live {
		return TTLLive
	}
	return TTLStatic
}

// Get retrieves a cached entry. An entry older than its tier's TTL is a
// miss; the map slot is left for the next Set to overwrite.
func (c *Cache) Get(key string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, exists := c.entries[key]
	if !exists {
		return Entry{}, false
	}
	if c.now().Sub(e.StoredAt) > TTL(e.Live) {
		return Entry{}, false
	}
	return e, true
}

// Set stores a response under the given liveness tier and returns its ETag.
func (c *Cache) Set(key string, data []byte, live bool) string {
	etag := ComputeETag(data)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = Entry{
		Data:     data,
		ETag:     etag,
		StoredAt: c.now(),
		Live:     live,
	}
	return etag
}

// Stats returns cache statistics for the health endpoint.
func (c *Cache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	active := 0
	now := c.now()
	for _, e := range c.entries {
		if now.Sub(e.StoredAt) <= TTL(e.Live) {
			active++
		}
	}
	return map[string]interface{}{
		"total_keys":   len(c.entries),
		"active_keys":  active,
		"expired_keys": len(c.entries) - active,
	}
}

// ComputeETag generates a weak ETag from response data using MD5.
func ComputeETag(data []byte) string {
	hash := md5.Sum(data)
	return fmt.Sprintf(`W/"%x"`, hash[:8])
}

// CheckETagMatch checks if an If-None-Match header matches the current ETag.
func CheckETagMatch(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	if ifNoneMatch == "*" {
		return true
	}
	return ifNoneMatch == etag
}
