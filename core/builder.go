package core

import (
	"fmt"
	"sort"
)

// Builder accumulates site declarations and produces an immutable Graph.
// A Builder is not safe for concurrent use.
type Builder struct {
	undirected bool
	order      []string
	sites      map[string]*Site
	err        error
}

// NewBuilder returns an empty Builder configured by opts.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{sites: make(map[string]*Site)}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddSite declares a site. The first failure is recorded and returned by
// Build; later calls become no-ops, so callers may chain declarations and
// check the error once.
func (b *Builder) AddSite(id string, value int, neighbors ...string) *Builder {
	if b.err != nil {
		return b
	}
	switch {
	case id == "":
		b.err = ErrEmptySiteID
		return b
	case value < 0:
		b.err = fmt.Errorf("%w: %q has value %d", ErrNegativeValue, id, value)
		return b
	}
	if _, dup := b.sites[id]; dup {
		b.err = fmt.Errorf("%w: %q", ErrDuplicateSite, id)
		return b
	}

	s := &Site{ID: id, Value: value, Neighbors: make([]string, 0, len(neighbors))}
	for _, nbr := range neighbors {
		if nbr == "" {
			b.err = fmt.Errorf("%w: %q lists an empty neighbor", ErrEmptySiteID, id)
			return b
		}
		s.Neighbors = appendUnique(s.Neighbors, nbr)
	}
	b.sites[id] = s
	b.order = append(b.order, id)

	return b
}

// Err returns the first error recorded by AddSite, if any.
func (b *Builder) Err() error { return b.err }

// Build validates the declarations and freezes them into a Graph.
//
// Errors:
//   - the first error recorded by AddSite;
//   - ErrUnknownNeighbor if any adjacency list references an undeclared site;
//   - ErrOneWayTunnel if, without WithUndirected, a tunnel is listed from
//     one end only.
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}

	// Validate adjacency before mirroring so the reported site is the declaring one.
	for _, id := range b.order {
		for _, nbr := range b.sites[id].Neighbors {
			if _, ok := b.sites[nbr]; !ok {
				return nil, fmt.Errorf("%w: %q -> %q", ErrUnknownNeighbor, id, nbr)
			}
		}
	}
	for _, id := range b.order {
		for _, nbr := range b.sites[id].Neighbors {
			peer := b.sites[nbr]
			switch {
			case b.undirected:
				peer.Neighbors = appendUnique(peer.Neighbors, id)
			case !contains(peer.Neighbors, id):
				return nil, fmt.Errorf("%w: %q -> %q", ErrOneWayTunnel, id, nbr)
			}
		}
	}

	ids := make([]string, len(b.order))
	copy(ids, b.order)
	sort.Strings(ids)

	g := &Graph{
		ids:   ids,
		index: make(map[string]int, len(ids)),
		sites: make(map[string]Site, len(ids)),
	}
	for i, id := range ids {
		g.index[id] = i
		s := b.sites[id]
		nbrs := make([]string, len(s.Neighbors))
		copy(nbrs, s.Neighbors)
		g.sites[id] = Site{ID: id, Value: s.Value, Neighbors: nbrs}
		if s.Value > 0 {
			g.active = append(g.active, id)
		}
		g.total += s.Value
	}

	return g, nil
}

// appendUnique appends id unless already present; adjacency lists are short.
func appendUnique(list []string, id string) []string {
	if contains(list, id) {
		return list
	}

	return append(list, id)
}

func contains(list []string, id string) bool {
	for _, x := range list {
		if x == id {
			return true
		}
	}

	return false
}
