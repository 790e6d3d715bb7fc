package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"rb-server/db"
)

// envelope is the persisted form of a cached value.
type envelope[T any] struct {
	Value T     `json:"value"`
	TS    int64 `json:"ts"` // unix milliseconds at write time
}

// FreshnessCache gates reads through a TTL over a persistent key-value
// store. Values older than the TTL are treated as absent. The clock is
// injected so freshness decisions are deterministic in tests.
type FreshnessCache[T any] struct {
	store db.KVStore
	ttl   time.Duration
	now   func() time.Time
}

// NewFreshnessCache creates a cache over the given store. A nil now
// function defaults to time.Now.
func NewFreshnessCache[T any](store db.KVStore, ttl time.Duration, now func() time.Time) *FreshnessCache[T] {
	if now == nil {
		now = time.Now
	}
	return &FreshnessCache[T]{
		store: store,
		ttl:   ttl,
		now:   now,
	}
}

// Get returns the cached value for key if present and fresh. A missing key,
// an unparsable envelope, or a stale timestamp all count as a miss; corrupt
// entries are logged, never surfaced.
func (c *FreshnessCache[T]) Get(key string) (T, bool) {
	var zero T

	raw, err := c.store.Get(key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			log.Printf("[FreshnessCache] Failed to read cached data for %q: %v", key, err)
		}
		return zero, false
	}

	var env envelope[T]
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		log.Printf("[FreshnessCache] Failed to parse cached data for %q: %v", key, err)
		return zero, false
	}

	age := c.now().UnixMilli() - env.TS
	if age > c.ttl.Milliseconds() {
		return zero, false
	}
	return env.Value, true
}

// Set stores value under key with the current timestamp. Write failures are
// logged and swallowed; a failed cache write must never fail the caller.
func (c *FreshnessCache[T]) Set(key string, value T) {
	data, err := json.Marshal(envelope[T]{Value: value, TS: c.now().UnixMilli()})
	if err != nil {
		log.Printf("[FreshnessCache] Failed to marshal value for %q: %v", key, err)
		return
	}
	if err := c.store.Set(key, string(data)); err != nil {
		log.Printf("[FreshnessCache] Failed to cache data for %q: %v", key, err)
	}
}

// FetchWithCache returns the cached value when fresh, otherwise invokes
// fetcher, stores its result, and returns it.
func (c *FreshnessCache[T]) FetchWithCache(key string, fetcher func() (T, error)) (T, error) {
	if value, ok := c.Get(key); ok {
		log.Printf("[FreshnessCache] Using cached value for %q", key)
		return value, nil
	}

	value, err := fetcher()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("fetch for %q failed: %w", key, err)
	}

	c.Set(key, value)
	return value, nil
}
