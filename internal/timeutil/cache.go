package timeutil

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache hands out formatters keyed by pattern string. Entries never expire.
type Cache interface {
	Formatter(pattern string) (*Formatter, error)
	Len() int
	// Location is the time zone every formatter from this cache uses.
	Location() *time.Location
}

// LocalCache is a formatter cache owned by a single goroutine. It is not
// safe for concurrent use; give each worker its own instance.
type LocalCache struct {
	loc        *time.Location
	formatters map[string]*Formatter
}

// NewLocalCache creates an empty cache whose formatters use loc.
func NewLocalCache(loc *time.Location) *LocalCache {
	if loc == nil {
		loc = time.Local
	}
	return &LocalCache{loc: loc}
}

// Formatter returns the cached formatter for pattern, compiling it on first use.
// Invalid patterns are reported and never cached.
func (c *LocalCache) Formatter(pattern string) (*Formatter, error) {
	if f, ok := c.formatters[pattern]; ok {
		return f, nil
	}

	f, err := NewFormatterIn(pattern, c.loc)
	if err != nil {
		return nil, err
	}

	if c.formatters == nil {
		c.formatters = make(map[string]*Formatter)
	}
	c.formatters[pattern] = f
	return f, nil
}

func (c *LocalCache) Len() int {
	return len(c.formatters)
}

func (c *LocalCache) Location() *time.Location {
	return c.loc
}

// SharedCache is a formatter cache safe for concurrent use. Concurrent
// first requests for one pattern all receive the same instance.
type SharedCache struct {
	loc   *time.Location
	items *cache.Cache
}

// NewSharedCache creates an empty shared cache whose formatters use loc.
func NewSharedCache(loc *time.Location) *SharedCache {
	if loc == nil {
		loc = time.Local
	}
	return &SharedCache{
		loc:   loc,
		items: cache.New(cache.NoExpiration, 0),
	}
}

func (c *SharedCache) Formatter(pattern string) (*Formatter, error) {
	if v, ok := c.items.Get(pattern); ok {
		return v.(*Formatter), nil
	}

	f, err := NewFormatterIn(pattern, c.loc)
	if err != nil {
		return nil, err
	}

	if err := c.items.Add(pattern, f, cache.NoExpiration); err != nil {
		// Lost the race; keep the winner so every caller shares one instance.
		if v, ok := c.items.Get(pattern); ok {
			return v.(*Formatter), nil
		}
	}
	return f, nil
}

func (c *SharedCache) Len() int {
	return c.items.ItemCount()
}

func (c *SharedCache) Location() *time.Location {
	return c.loc
}
