package driver

import (
	"fmt"
	"slices"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"quill/internal/linting"
)

// Cache keeps lint results in memory and, optionally, on disk.
// Safe for concurrent use.
type Cache struct {
	mem  *lru.Cache[Digest, []linting.Lint]
	disk *DiskCache

	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats reports cache effectiveness for a run.
type CacheStats struct {
	Hits   int64
	Misses int64
}

// NewCache builds a cache holding up to entries results in memory in front
// of disk. disk may be nil.
func NewCache(entries int, disk *DiskCache) (*Cache, error) {
	if entries <= 0 {
		entries = 128
	}
	mem, err := lru.New[Digest, []linting.Lint](entries)
	if err != nil {
		return nil, fmt.Errorf("create memory cache: %w", err)
	}
	return &Cache{mem: mem, disk: disk}, nil
}

// Get returns a copy of the lints stored under key.
func (c *Cache) Get(key Digest) ([]linting.Lint, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	if lints, ok := c.mem.Get(key); ok {
		c.hits.Add(1)
		return cloneLints(lints), true, nil
	}
	var payload DiskPayload
	ok, err := c.disk.Get(key, &payload)
	if err != nil || !ok {
		c.misses.Add(1)
		return nil, false, err
	}
	lints := payloadToLints(&payload)
	c.mem.Add(key, lints)
	c.hits.Add(1)
	return cloneLints(lints), true, nil
}

// Put stores lints under key in memory and on disk.
func (c *Cache) Put(key Digest, path string, lints []linting.Lint) error {
	if c == nil {
		return nil
	}
	c.mem.Add(key, cloneLints(lints))
	return c.disk.Put(key, lintsToPayload(path, lints))
}

// Purge drops the memory layer and the disk layer.
func (c *Cache) Purge() error {
	if c == nil {
		return nil
	}
	c.mem.Purge()
	return c.disk.DropAll()
}

func (c *Cache) Stats() CacheStats {
	if c == nil {
		return CacheStats{}
	}
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// cloneLints copies lints together with their suggestion slices, so callers
// never share backing arrays with a cache entry.
func cloneLints(lints []linting.Lint) []linting.Lint {
	if lints == nil {
		return nil
	}
	out := slices.Clone(lints)
	for i := range out {
		out[i].Suggestions = slices.Clone(out[i].Suggestions)
	}
	return out
}
