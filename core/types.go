package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptySiteID indicates a site was declared with an empty identifier.
	ErrEmptySiteID = errors.New("core: site ID is empty")

	// ErrNegativeValue indicates a site was declared with a value below zero.
	ErrNegativeValue = errors.New("core: site value is negative")

	// ErrDuplicateSite indicates the same identifier was declared twice.
	ErrDuplicateSite = errors.New("core: duplicate site")

	// ErrUnknownNeighbor indicates an adjacency list references a missing site.
	ErrUnknownNeighbor = errors.New("core: unknown neighbor")

	// ErrOneWayTunnel indicates A lists B as a neighbor but B does not list A
	// in a graph built without WithUndirected.
	ErrOneWayTunnel = errors.New("core: one-way tunnel")

	// ErrSiteNotFound indicates a query referenced a site that does not exist.
	ErrSiteNotFound = errors.New("core: site not found")
)

// Site is a node of the graph: an identifier, its activation value and the
// identifiers of the sites reachable in one step.
type Site struct {
	// ID uniquely identifies the site within its Graph.
	ID string

	// Value is the payoff collected per unit of remaining time once the
	// site is activated. A site with Value > 0 is "active".
	Value int

	// Neighbors lists adjacent site IDs in declaration order, without duplicates.
	Neighbors []string
}

// Active reports whether the site is worth visiting.
func (s Site) Active() bool { return s.Value > 0 }

// BuilderOption configures a Builder before any site is added.
type BuilderOption func(*Builder)

// WithUndirected mirrors every tunnel at Build time. Without it, Build
// requires every tunnel to be listed from both ends.
func WithUndirected() BuilderOption {
	return func(b *Builder) { b.undirected = true }
}
