package query

import (
	"context"
	"strings"
	"sync"
)

// Cache is a keyed read cache in the query/mutation/invalidate loop: reads
// are fetched through Fetch and reused until a mutation invalidates their
// key. Invalidation is idempotent; re-invalidating a stale key is harmless.
type Cache struct {
	mu      sync.Mutex
	entries map[string]any
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]any)}
}

// Key builds a stable cache key from an identifier plus selection params,
// e.g. Key("agency-series-assets", seriesID).
func Key(parts ...string) string {
	return strings.Join(parts, "/")
}

// Fetch returns the cached value for key, or runs fn once and caches its
// result. Errors are not cached: the next Fetch retries.
func Fetch[T any](ctx context.Context, c *Cache, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	c.mu.Lock()
	if v, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return v.(T), nil
	}
	c.mu.Unlock()

	v, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.mu.Lock()
	c.entries[key] = v
	c.mu.Unlock()
	return v, nil
}

// Invalidate drops the given keys; missing keys are ignored.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
}

// Has reports whether key currently holds a cached value.
func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}
