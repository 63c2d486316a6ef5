package core

import "fmt"

// Graph is an immutable site graph. The zero value is an empty graph;
// use a Builder to populate one.
type Graph struct {
	ids    []string        // sorted site IDs
	index  map[string]int  // ID → position in ids
	sites  map[string]Site // ID → Site
	active []string        // sorted IDs with Value > 0
	total  int             // Σ Value
}

// Len returns the number of sites.
func (g *Graph) Len() int { return len(g.ids) }

// Has reports whether id names a site of g.
func (g *Graph) Has(id string) bool {
	_, ok := g.sites[id]
	return ok
}

// Site returns a copy of the site named id.
func (g *Graph) Site(id string) (Site, error) {
	s, ok := g.sites[id]
	if !ok {
		return Site{}, fmt.Errorf("%w: %q", ErrSiteNotFound, id)
	}
	nbrs := make([]string, len(s.Neighbors))
	copy(nbrs, s.Neighbors)
	s.Neighbors = nbrs

	return s, nil
}

// Value returns the activation value of id, or 0 if id is unknown.
func (g *Graph) Value(id string) int { return g.sites[id].Value }

// Neighbors returns a copy of the adjacency list of id.
func (g *Graph) Neighbors(id string) ([]string, error) {
	s, ok := g.sites[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSiteNotFound, id)
	}
	out := make([]string, len(s.Neighbors))
	copy(out, s.Neighbors)

	return out, nil
}

// EachNeighbor calls fn for every neighbor of id without copying the
// adjacency list. It is the allocation-free path used by traversals.
func (g *Graph) EachNeighbor(id string, fn func(nbr string)) error {
	s, ok := g.sites[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrSiteNotFound, id)
	}
	for _, nbr := range s.Neighbors {
		fn(nbr)
	}

	return nil
}

// Index returns the dense position of id in IDs(), or -1 if id is unknown.
func (g *Graph) Index(id string) int {
	i, ok := g.index[id]
	if !ok {
		return -1
	}

	return i
}

// IDs returns all site IDs in ascending order.
func (g *Graph) IDs() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// ActiveSites returns, in ascending order, the IDs of sites with Value > 0.
func (g *Graph) ActiveSites() []string {
	out := make([]string, len(g.active))
	copy(out, g.active)

	return out
}

// TotalValue returns the sum of all site values.
func (g *Graph) TotalValue() int { return g.total }
