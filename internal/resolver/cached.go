package resolver

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/AaronLay10/SaiScope/internal/definitions"
)

type cacheKey struct {
	role definitions.ParamRole
	id   int64
}

type cacheEntry struct {
	name string
	ok   bool
}

// Cached memoizes hits and misses of another resolver. Concurrent lookups of
// the same id share one call. Errors are never cached.
type Cached struct {
	next  NameResolver
	cache *lru.Cache[cacheKey, cacheEntry]
	group singleflight.Group
}

// NewCached wraps next with an LRU of size entries.
func NewCached(next NameResolver, size int) (*Cached, error) {
	if size <= 0 {
		size = 4096
	}
	cache, err := lru.New[cacheKey, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &Cached{next: next, cache: cache}, nil
}

func (c *Cached) ResolveName(ctx context.Context, role definitions.ParamRole, id int64) (string, bool, error) {
	key := cacheKey{role, id}
	if e, ok := c.cache.Get(key); ok {
		return e.name, e.ok, nil
	}

	v, err, _ := c.group.Do(fmt.Sprintf("%s:%d", role, id), func() (interface{}, error) {
		name, ok, err := c.next.ResolveName(ctx, role, id)
		if err != nil {
			return nil, err
		}
		e := cacheEntry{name, ok}
		c.cache.Add(key, e)
		return e, nil
	})
	if err != nil {
		return "", false, err
	}
	e := v.(cacheEntry)
	return e.name, e.ok, nil
}

// Len returns the number of cached entries.
func (c *Cached) Len() int {
	return c.cache.Len()
}

// Purge drops every cached entry.
func (c *Cached) Purge() {
	c.cache.Purge()
}
