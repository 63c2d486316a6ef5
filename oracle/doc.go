// Package oracle answers shortest hop-count queries between sites of a
// core.Graph and memoizes every answer in a symmetric Cache.
//
// Distance(a, b) consults the cache first; on a miss it runs one BFS from a
// that stops as soon as b is dequeued, walks the parent pointers back to
// count hops, and stores the result under the unordered pair {a, b}.
//
// BuildCache(sites) warms the cache eagerly: one full BFS per member of the
// subset, recording the cost to every other member. This turns O(n²) pair
// queries into n walks before the search's hot loop starts. Once warmed the
// cache is read-only in practice and may be shared by concurrent searches.
//
// Distances are keyed by unordered pair. This is sound because core.Build
// only produces graphs whose tunnels are traversable both ways (mirrored by
// core.WithUndirected or listed from both ends).
//
// Errors:
//
//   - ErrGraphNil if New receives a nil graph.
//   - core.ErrSiteNotFound (wrapped) for unknown sites.
//   - *UnreachableError (matching ErrUnreachable) if no path exists. The
//     planner treats this as a fatal input fault and aborts the search.
package oracle
