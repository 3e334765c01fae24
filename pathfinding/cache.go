package pathfinding

import (
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"sync"
	"time"

	"orthoroute/core"
)

// GraphCache memoizes visibility graphs per obstacle-set fingerprint, so
// that repeated routing calls during interactive dragging don't rebuild an
// O(n²) graph on every mouse move. Entries expire after a TTL and the cache
// holds at most maxSize entries, evicting oldest-first.
//
// The cache is an explicit object owned by whatever issues routing calls,
// never package state, so independent diagrams get independent caches. It
// is safe for concurrent use.
type GraphCache struct {
	mu      sync.Mutex
	entries map[uint64]*cacheEntry
	ttl     time.Duration
	maxSize int

	builds    int
	hits      int
	evictions int

	now func() time.Time // replaceable for tests
}

type cacheEntry struct {
	graph   *Graph
	builtAt time.Time
}

// NewGraphCache creates a cache with the config's TTL and size cap.
func NewGraphCache(cfg RoutingConfig) *GraphCache {
	return &GraphCache{
		entries: make(map[uint64]*cacheEntry),
		ttl:     cfg.CacheTTL,
		maxSize: cfg.CacheMaxSize,
		now:     time.Now,
	}
}

// Graph returns the cached graph for the fingerprint, building and storing
// it via build on a miss or after expiry.
func (c *GraphCache) Graph(fingerprint uint64, build func() *Graph) *Graph {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[fingerprint]; ok && c.now().Sub(e.builtAt) < c.ttl {
		c.hits++
		return e.graph
	}

	g := build()
	c.builds++
	c.entries[fingerprint] = &cacheEntry{graph: g, builtAt: c.now()}
	c.evictOldest()
	return g
}

// evictOldest drops the oldest entries until the size cap holds.
// Caller holds the lock.
func (c *GraphCache) evictOldest() {
	for c.maxSize > 0 && len(c.entries) > c.maxSize {
		var oldestKey uint64
		var oldest time.Time
		first := true
		for k, e := range c.entries {
			if first || e.builtAt.Before(oldest) {
				oldestKey = k
				oldest = e.builtAt
				first = false
			}
		}
		delete(c.entries, oldestKey)
		c.evictions++
	}
}

// Builds returns how many graphs the cache has constructed; tests use it to
// verify reuse and invalidation.
func (c *GraphCache) Builds() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.builds
}

// Stats returns hit, build, and eviction counts plus the current size.
func (c *GraphCache) Stats() (hits, builds, evictions, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.builds, c.evictions, len(c.entries)
}

// String summarizes the cache state.
func (c *GraphCache) String() string {
	hits, builds, evictions, size := c.Stats()
	return fmt.Sprintf("GraphCache[size=%d/%d, hits=%d, builds=%d, evictions=%d]",
		size, c.maxSize, hits, builds, evictions)
}

// Clear removes every entry and resets the counters.
func (c *GraphCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]*cacheEntry)
	c.builds = 0
	c.hits = 0
	c.evictions = 0
}

// Fingerprint derives the cache key from the obstacle set and the supplied
// connection points. Inputs are sorted before hashing so the key does not
// depend on slice order; any geometry change yields a new key, which is how
// shape movement implicitly invalidates cached graphs.
func Fingerprint(obstacles []core.Rect, points []core.Point) uint64 {
	rects := make([]core.Rect, len(obstacles))
	copy(rects, obstacles)
	sort.Slice(rects, func(i, j int) bool {
		a, b := rects[i], rects[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.Width != b.Width {
			return a.Width < b.Width
		}
		return a.Height < b.Height
	})
	pts := make([]core.Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	h := fnv.New64a()
	buf := make([]byte, 8)
	write := func(v float64) {
		bits := math.Float64bits(v)
		for i := 0; i < 8; i++ {
			buf[i] = byte(bits >> (8 * i))
		}
		h.Write(buf)
	}
	for _, r := range rects {
		write(r.X)
		write(r.Y)
		write(r.Width)
		write(r.Height)
	}
	for _, p := range pts {
		write(p.X)
		write(p.Y)
	}
	return h.Sum64()
}
