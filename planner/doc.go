// Package planner chooses which sites to activate, and in what order, so
// that the accumulated value Σ value(site) × (time remaining at activation)
// is as large as possible within a fixed time budget.
//
// What
//
//   - GreedySeed: value/cost ratio heuristic, a fast lower bound.
//   - OptimizeSingle: exact depth-first branch-and-bound for one agent.
//   - OptimizeDual: the same for two agents sharing one set of sites,
//     each with its own clock and position.
//   - Evaluate: replays explicit routes and returns their value.
//
// Time model
//
//	Moving from u to v and activating v costs hops(u, v) + ActivationCost
//	(default 1). A move is feasible iff its cost fits in the time left; the
//	site then yields value(v) × (remaining − cost). Sites with value 0 are
//	never targets but may be traversed. The start site is activatable when
//	its value is positive.
//
// Search
//
//	Costs come from the oracle, warmed once for the active sites plus the
//	start and copied into a dense matrix. Per-branch payoffs live in a
//	Ledger bucketed by remaining time, updated on the way down and undone
//	on the way up. With the upper bound enabled a branch is pruned when
//	even collecting every unvisited site at its direct-travel payoff cannot
//	beat the incumbent. The incumbent is seeded by GreedySeed (and by
//	WithIncumbent), so pruning starts from the first node.
//
// Concurrency
//
//	WithWorkers(n) splits the root moves across an errgroup of n goroutines.
//	Each worker owns its ledger and visited set; the incumbent value is
//	shared so workers prune against each other's finds. OnImprove calls are
//	serialized and strictly increasing.
//
// Complexity
//
//   - Worst case O(n!) for one agent and O((n!)²)-ish for two; the bound and
//     the seed keep typical inputs (≤ 15 active sites) in milliseconds.
//   - Memory: O(n² + budget) per worker.
//
// Errors
//
//   - ErrNilOracle, ErrBudget, ErrStartNotFound for bad inputs.
//   - ErrOptionViolation for an invalid Option or an incumbent whose routes
//     do not replay to its claimed value.
//   - ErrInvalidRoute from Evaluate.
//   - *oracle.UnreachableError when the active sites are not all connected
//     to the start; the search does not begin.
//   - ErrInterrupted (wrapping the context error) together with the best
//     partial Result when the context is cancelled or the time limit hits.
package planner
