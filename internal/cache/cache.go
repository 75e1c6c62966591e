// Package cache provides the in-memory response cache consulted by the
// GitHub gateway before any network call. Entries live for a fixed TTL and
// are superseded on the next successful fetch, never explicitly deleted.
// Unbounded growth is accepted: the key space (search queries and usernames
// touched in one app session) stays small.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is how long a cached payload stays valid.
const DefaultTTL = 5 * time.Minute

// Clock returns the current time. Injected so tests can control expiry
// deterministically.
type Clock func() time.Time

type entry[T any] struct {
	payload   T
	fetchedAt time.Time
}

// Cache is a TTL map from query key to payload. Safe for concurrent use:
// the gateway instance is shared between controllers, so readers and
// writers can race.
type Cache[T any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     Clock
	entries map[string]entry[T]
}

// Option configures a Cache
type Option[T any] func(*Cache[T])

// WithClock overrides the time source
func WithClock[T any](now Clock) Option[T] {
	return func(c *Cache[T]) {
		c.now = now
	}
}

// WithTTL overrides the entry lifetime
func WithTTL[T any](ttl time.Duration) Option[T] {
	return func(c *Cache[T]) {
		c.ttl = ttl
	}
}

// New creates a cache with the default TTL and wall-clock time source.
func New[T any](opts ...Option[T]) *Cache[T] {
	c := &Cache[T]{
		ttl:     DefaultTTL,
		now:     time.Now,
		entries: make(map[string]entry[T]),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the payload for key if a fresh entry exists. An entry is
// valid iff now - fetchedAt < ttl; expired entries are reported as misses
// but left in place until overwritten.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.fetchedAt) >= c.ttl {
		var zero T
		return zero, false
	}
	return e.payload, true
}

// Put stores payload under key with the current time as fetch timestamp,
// replacing any prior entry.
func (c *Cache[T]) Put(key string, payload T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{payload: payload, fetchedAt: c.now()}
}

// Len reports the number of entries, fresh or expired.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
