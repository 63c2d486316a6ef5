// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links and visit order.
//
// What
//
//   - Explore sites in non-decreasing hop distance from a start site.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from site → distance (edges) from start
//   - Parent: map from site → its predecessor in the BFS tree
//   - Optional OnVisit hook (returning an error aborts the walk).
//   - Optional early stop once a target site is dequeued (WithStopAt).
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//	The distance oracle runs one walk per pair query (stopping at the target)
//	or one full walk per site when warming its cache. Both are O(V + E).
//
// Determinism
//
//	Neighbors are expanded in adjacency-list order, so the visit sequence
//	and the parent tree are reproducible for a given graph.
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartNotFound    if the start site does not exist.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - context errors when the supplied context is cancelled.
//   - Wrapped user-supplied OnVisit errors.
package bfs
