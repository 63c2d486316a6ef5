package oracle

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/valvenet/bfs"
	"github.com/katalvlaran/valvenet/core"
)

// Oracle is the memoized shortest-path service used by the planner.
// It is safe for concurrent use.
type Oracle struct {
	graph  *core.Graph
	cache  *Cache
	ctx    context.Context
	logger zerolog.Logger

	hits    atomic.Int64
	misses  atomic.Int64
	bfsRuns atomic.Int64
}

// New returns an oracle over g with a fresh cache unless WithCache is given.
func New(g *core.Graph, opts ...Option) (*Oracle, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := &Oracle{
		graph:  g,
		ctx:    context.Background(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.cache == nil {
		o.cache = NewCache()
	}

	return o, nil
}

// Graph returns the graph the oracle answers for.
func (o *Oracle) Graph() *core.Graph { return o.graph }

// Cache returns the oracle's distance cache.
func (o *Oracle) Cache() *Cache { return o.cache }

// Distance returns the minimum number of edge traversals from a to b.
func (o *Oracle) Distance(a, b string) (int, error) {
	if d, ok := o.cache.Get(a, b); ok {
		if a == b && !o.graph.Has(a) {
			return 0, fmt.Errorf("oracle: %w: %q", core.ErrSiteNotFound, a)
		}
		o.hits.Add(1)
		return d, nil
	}
	o.misses.Add(1)
	if !o.graph.Has(b) {
		return 0, fmt.Errorf("oracle: %w: %q", core.ErrSiteNotFound, b)
	}

	res, err := o.walk(a, bfs.WithStopAt(b))
	if err != nil {
		return 0, err
	}
	hops, ok := res.Hops(b)
	if !ok {
		return 0, &UnreachableError{From: a, To: b}
	}
	o.cache.put(a, b, hops)

	return hops, nil
}

// BuildCache precomputes every pair among sites with one BFS per site.
// Duplicate IDs are ignored. The first unreachable pair aborts the warm-up.
func (o *Oracle) BuildCache(sites []string) error {
	seen := make(map[string]bool, len(sites))
	members := make([]string, 0, len(sites))
	for _, s := range sites {
		if seen[s] {
			continue
		}
		if !o.graph.Has(s) {
			return fmt.Errorf("oracle: %w: %q", core.ErrSiteNotFound, s)
		}
		seen[s] = true
		members = append(members, s)
	}

	for i, from := range members {
		if o.complete(from, members[i+1:]) {
			continue
		}
		res, err := o.walk(from)
		if err != nil {
			return err
		}
		for _, to := range members[i+1:] {
			d, ok := res.Depth[to]
			if !ok {
				return &UnreachableError{From: from, To: to}
			}
			o.cache.put(from, to, d)
		}
	}
	o.logger.Debug().
		Int("sites", len(members)).
		Int("pairs", o.cache.Len()).
		Int64("bfs_runs", o.bfsRuns.Load()).
		Msg("distance cache warmed")

	return nil
}

// Stats returns a snapshot of cache activity.
func (o *Oracle) Stats() Stats {
	return Stats{
		Hits:    o.hits.Load(),
		Misses:  o.misses.Load(),
		BFSRuns: o.bfsRuns.Load(),
		Cached:  o.cache.Len(),
	}
}

// complete reports whether every pair (from, x) for x in rest is cached.
func (o *Oracle) complete(from string, rest []string) bool {
	for _, to := range rest {
		if _, ok := o.cache.Get(from, to); !ok {
			return false
		}
	}

	return true
}

// walk runs one BFS from start, mapping a missing start to core.ErrSiteNotFound.
func (o *Oracle) walk(start string, opts ...bfs.Option) (*bfs.Result, error) {
	o.bfsRuns.Add(1)
	opts = append(opts, bfs.WithContext(o.ctx))
	res, err := bfs.BFS(o.graph, start, opts...)
	if err != nil {
		if !o.graph.Has(start) {
			return nil, fmt.Errorf("oracle: %w: %q", core.ErrSiteNotFound, start)
		}
		return nil, fmt.Errorf("oracle: walk from %q: %w", start, err)
	}

	return res, nil
}

// BuildDistanceCache warms and returns a cache holding every pair among sites.
func BuildDistanceCache(g *core.Graph, sites []string) (*Cache, error) {
	o, err := New(g)
	if err != nil {
		return nil, err
	}
	if err := o.BuildCache(sites); err != nil {
		return nil, err
	}

	return o.cache, nil
}
