package oracle

import (
	"sort"
	"sync"
)

// pairKey is an unordered pair normalized so that a <= b.
type pairKey struct{ a, b string }

func keyOf(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{a: a, b: b}
}

// Pair is one cached distance.
type Pair struct {
	A, B string
	Hops int
}

// Cache is a symmetric memo of hop distances. Entries are write-once:
// the graph is immutable, so a stored distance never changes.
// Cache is safe for concurrent use.
type Cache struct {
	mu sync.RWMutex
	m  map[pairKey]int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{m: make(map[pairKey]int)}
}

// Get returns the cached distance between a and b in either order.
func (c *Cache) Get(a, b string) (int, bool) {
	if a == b {
		return 0, true
	}
	c.mu.RLock()
	d, ok := c.m[keyOf(a, b)]
	c.mu.RUnlock()

	return d, ok
}

// put stores d unless the pair is already known.
func (c *Cache) put(a, b string, d int) {
	if a == b {
		return
	}
	k := keyOf(a, b)
	c.mu.Lock()
	if _, ok := c.m[k]; !ok {
		c.m[k] = d
	}
	c.mu.Unlock()
}

// Len returns the number of stored pairs.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.m)
}

// Pairs returns every stored pair with A < B, sorted by A then B.
func (c *Cache) Pairs() []Pair {
	c.mu.RLock()
	out := make([]Pair, 0, len(c.m))
	for k, d := range c.m {
		out = append(out, Pair{A: k.a, B: k.b, Hops: d})
	}
	c.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}
