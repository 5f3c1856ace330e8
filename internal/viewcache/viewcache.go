// Package viewcache caches rendered GET responses by request path and query.
// Invalidation is explicit and path-based: mutating actions mark every view
// that displays the affected entity stale. There is no TTL and no eviction.
package viewcache

import (
	"strings"
	"sync"
)

type Entry struct {
	Status      int
	ContentType string
	Body        []byte
}

type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]Entry),
	}
}

func (c *Cache) Get(key string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	return entry, ok
}

func (c *Cache) Set(key string, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry
}

// Invalidate drops every cached view whose path starts with one of the
// given prefixes. Query strings are part of the key, so a list path prefix
// covers all of its page/limit/search variants.
func (c *Cache) Invalidate(prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				delete(c.entries, key)
				break
			}
		}
	}
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
