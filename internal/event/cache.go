package event

import (
	"strings"
	"sync"
	"time"
)

// Cache bounds and expiry defaults, matching the extension's storage
// policy: resident for the background process lifetime, never assumed
// durable across restarts.
const (
	DefaultCacheMaxItems = 20
	DefaultCacheTTL      = time.Hour

	fingerprintMaxLen = 50
)

type cacheEntry struct {
	event      NormalizedEvent
	insertedAt time.Time
}

// ResultCache is a bounded, time-expiring cache from a text fingerprint
// to a previously normalized event. Eviction on overflow removes the
// oldest-inserted entries; reads never refresh an entry's age.
//
// All mutations happen under one mutex and never block on I/O, so
// read-modify-write sequences (get-then-delete-on-expiry,
// put-then-evict) stay atomic with respect to interleaved triggers.
type ResultCache struct {
	mu       sync.Mutex
	maxItems int
	ttl      time.Duration
	now      func() time.Time
	entries  map[string]cacheEntry
}

// NewCache creates a ResultCache. Non-positive maxItems or ttl fall
// back to the defaults.
func NewCache(maxItems int, ttl time.Duration) *ResultCache {
	if maxItems <= 0 {
		maxItems = DefaultCacheMaxItems
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResultCache{
		maxItems: maxItems,
		ttl:      ttl,
		now:      time.Now,
		entries:  make(map[string]cacheEntry),
	}
}

// Fingerprint derives the cache key: lowercased, trimmed, truncated to
// the first 50 characters. Selections sharing a 50-char prefix collide;
// that truncation is inherited behavior, kept deliberately.
func Fingerprint(text string) string {
	key := strings.ToLower(strings.TrimSpace(text))
	if len(key) > fingerprintMaxLen {
		key = key[:fingerprintMaxLen]
	}
	return key
}

// Get returns the cached event for the text, if present and fresh.
// A found-but-expired entry is deleted and reported as a miss.
func (c *ResultCache) Get(text string) (NormalizedEvent, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := Fingerprint(text)
	entry, ok := c.entries[key]
	if !ok {
		return NormalizedEvent{}, false
	}
	if c.now().Sub(entry.insertedAt) >= c.ttl {
		delete(c.entries, key)
		return NormalizedEvent{}, false
	}
	return entry.event, true
}

// Put inserts or overwrites the entry for the text with the current
// timestamp, then evicts oldest-inserted entries past the capacity.
func (c *ResultCache) Put(text string, ev NormalizedEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[Fingerprint(text)] = cacheEntry{event: ev, insertedAt: c.now()}

	for len(c.entries) > c.maxItems {
		oldestKey := ""
		var oldestAt time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertedAt.Before(oldestAt) {
				oldestKey = k
				oldestAt = e.insertedAt
			}
		}
		delete(c.entries, oldestKey)
	}
}

// Remove deletes the entry for one text.
func (c *ResultCache) Remove(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, Fingerprint(text))
}

// Clear resets the whole cache.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Len reports the number of resident entries.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
