// Package core defines the immutable site graph consumed by the distance
// oracle and the planner.
//
// A Graph G = (V, E) stores, per site:
//
//   - an identifier (non-empty string),
//   - a non-negative activation value,
//   - an adjacency list of neighbor identifiers.
//
// Graphs are assembled with a Builder and frozen by Build. After Build the
// graph never changes, so it may be shared freely across goroutines without
// locking.
//
// Invariants enforced by Build:
//
//   - every identifier is unique and non-empty (ErrDuplicateSite, ErrEmptySiteID);
//   - every value is ≥ 0 (ErrNegativeValue);
//   - every identifier referenced in an adjacency list exists (ErrUnknownNeighbor);
//   - every tunnel is traversable both ways (ErrOneWayTunnel), either listed
//     from both ends or mirrored by WithUndirected. Distances downstream are
//     keyed by unordered pair and rely on this.
//
// Determinism:
//
//	IDs() and ActiveSites() return identifiers sorted lexicographically.
//	Each site also receives a dense index (Index) in that order, which hot
//	loops use instead of map lookups.
//
// Options (BuilderOption):
//
//	– WithUndirected()
//	    Mirror every declared tunnel so that A→B implies B→A.
//	    Without it, adjacency is kept as declared and one-way tunnels
//	    are rejected.
//
// Complexity:
//
//   - AddSite: O(deg) amortized.
//   - Build:   O(V log V + E).
//   - Queries: O(1) map lookups; slice accessors copy, O(deg) or O(V).
package core
