// Package widthcache memoizes measured label widths.
//
// Shaping a label costs microseconds and an axis redraw measures the
// same small set of labels over and over, so callers key measured
// advance widths on the label text. Entries past the soft limit are
// evicted in batches, oldest first.
package widthcache

import "sync"

// Cache is a thread-safe width memoizer with a soft entry limit.
//
// Cache must not be copied after creation (has mutex).
type Cache struct {
	mu     sync.Mutex
	widths map[string]*entry
	limit  int
	tick   int64 // Monotonic access counter
	hits   uint64
	misses uint64
}

// entry holds a measured width with its access time.
type entry struct {
	px    float64
	atime int64
}

// New creates a cache holding up to limit labels.
// A limit of 0 means unlimited.
func New(limit int) *Cache {
	return &Cache{
		widths: make(map[string]*entry),
		limit:  limit,
	}
}

// Width returns the memoized width of label, calling measure on a miss.
// measure runs under the cache lock, so concurrent callers never
// measure the same label twice.
func (c *Cache) Width(label string, measure func(string) float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.widths[label]; ok {
		c.tick++
		e.atime = c.tick
		c.hits++
		return e.px
	}

	c.misses++
	px := measure(label)

	c.tick++
	c.widths[label] = &entry{px: px, atime: c.tick}

	if c.limit > 0 && len(c.widths) > c.limit {
		c.evictOldest()
	}
	return px
}

// Len returns the number of memoized labels.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.widths)
}

// Clear drops all memoized widths.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.widths = make(map[string]*entry)
	c.tick = 0
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Limit is the soft entry limit, 0 for unlimited.
	Limit int
	// Hits is the number of cache hits.
	Hits uint64
	// Misses is the number of cache misses.
	Misses uint64
}

// Stats returns current cache statistics.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Len:    len(c.widths),
		Limit:  c.limit,
		Hits:   c.hits,
		Misses: c.misses,
	}
}

// evictOldest removes entries until the cache is at 75% of the limit.
// Caller must hold c.mu.
func (c *Cache) evictOldest() {
	targetSize := c.limit * 3 / 4
	if targetSize < 1 {
		targetSize = 1
	}
	toEvict := len(c.widths) - targetSize
	if toEvict <= 0 {
		return
	}

	type aged struct {
		label string
		atime int64
	}
	entries := make([]aged, 0, len(c.widths))
	for label, e := range c.widths {
		entries = append(entries, aged{label: label, atime: e.atime})
	}

	// Selection sort for the eviction batch - good enough for small caches.
	for i := 0; i < toEvict && i < len(entries); i++ {
		minIdx := i
		for j := i + 1; j < len(entries); j++ {
			if entries[j].atime < entries[minIdx].atime {
				minIdx = j
			}
		}
		if minIdx != i {
			entries[i], entries[minIdx] = entries[minIdx], entries[i]
		}
		delete(c.widths, entries[i].label)
	}
}
