package render

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/agiangrant/inspector/state"
	"github.com/agiangrant/inspector/tw"
)

// classKey holds exactly the leaves Classes reads. Text content, link,
// appearance, 3D transforms and inline CSS are not part of it, so editing them
// keeps cached class strings valid.
type classKey struct {
	padding    state.Padding
	margin     state.Margin
	position   state.Position
	size       state.Size
	typography state.Typography
	transforms state.Transforms
	effects    state.Effects
	border     state.Border
	classes    []string
}

func keyOf(s state.StyleState) classKey {
	return classKey{
		padding:    s.Padding,
		margin:     s.Margin,
		position:   s.Position,
		size:       s.Size,
		typography: s.Typography,
		transforms: s.Transforms,
		effects:    s.Effects,
		border:     s.Border,
		classes:    s.TailwindClasses,
	}
}

func (k classKey) equal(o classKey) bool {
	return k.padding == o.padding &&
		k.margin == o.margin &&
		k.position == o.position &&
		k.size == o.size &&
		k.typography == o.typography &&
		k.transforms == o.transforms &&
		k.effects == o.effects &&
		k.border == o.border &&
		slices.Equal(k.classes, o.classes)
}

type cacheEntry struct {
	key   classKey
	gen   uint64
	class []string
}

// Cache memoizes the most recent class list per breakpoint. It is safe for
// concurrent use; a miss simply recomputes, so results are identical with or
// without it. Token scales are not part of the key: an entry is stale once
// tw.ConfigGeneration moves, so SetConfig and ResetConfig invalidate it.
type Cache struct {
	gen *Generator

	mu      sync.Mutex
	entries map[tw.Breakpoint]cacheEntry

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache wraps gen. A nil gen uses default options.
func NewCache(gen *Generator) *Cache {
	if gen == nil {
		gen = defaultGenerator
	}
	return &Cache{gen: gen, entries: make(map[tw.Breakpoint]cacheEntry)}
}

// Generator returns the wrapped generator.
func (c *Cache) Generator() *Generator { return c.gen }

// ClassList returns the memoized class list for s at bp.
func (c *Cache) ClassList(s state.StyleState, bp tw.Breakpoint) []string {
	key := keyOf(s)
	gen := tw.ConfigGeneration()

	c.mu.Lock()
	if e, ok := c.entries[bp]; ok && e.gen == gen && e.key.equal(key) {
		c.mu.Unlock()
		c.hits.Add(1)
		return slices.Clone(e.class)
	}
	c.mu.Unlock()

	c.misses.Add(1)
	out := c.gen.ClassList(s, bp)
	key.classes = slices.Clone(key.classes)

	c.mu.Lock()
	c.entries[bp] = cacheEntry{key: key, gen: gen, class: slices.Clone(out)}
	c.mu.Unlock()
	return out
}

// Classes returns the memoized class string for s at bp.
func (c *Cache) Classes(s state.StyleState, bp tw.Breakpoint) string {
	return tw.Join(c.ClassList(s, bp))
}

// AllClasses aggregates through the cache.
func (c *Cache) AllClasses(base state.StyleState, overrides map[tw.Breakpoint]state.PartialState, resolve Resolver) string {
	return tw.Join(tw.Dedupe(collect(base, overrides, resolve, c.ClassList)))
}

// Stats reports cache hits and misses since creation or the last Reset.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Reset drops every memoized entry and zeroes the counters.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.entries = make(map[tw.Breakpoint]cacheEntry)
	c.mu.Unlock()
	c.hits.Store(0)
	c.misses.Store(0)
}
