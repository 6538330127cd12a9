// Package resource pairs cached reads with cache-invalidating writes over
// the API client, one method set per backend resource.
package resource

import (
	"strings"
	"sync"
	"time"
)

// DefaultTTL bounds how long a cached read is served before the backend is
// asked again. Nothing is persisted; the cache dies with the process.
const DefaultTTL = 30 * time.Second

type entry struct {
	value     any
	fetchedAt time.Time
}

// cache is an in-memory TTL cache keyed by "<resource>|<params>".
type cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

func newCache(ttl time.Duration) *cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

func (c *cache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *cache) put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, fetchedAt: c.now()}
}

// invalidate drops every entry under a resource prefix, so the next read
// reflects the mutation.
func (c *cache) invalidate(prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		for _, p := range prefixes {
			if strings.HasPrefix(key, p) {
				delete(c.entries, key)
				break
			}
		}
	}
}
