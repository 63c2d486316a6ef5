// Package valvenet plans which sites of a tunnel network to activate, and
// in what order, so that value accumulated over a fixed time budget is as
// large as possible.
//
// Each site has a non-negative value. Walking one tunnel costs one time
// unit and activating a site costs ActivationCost more (default 1). Once a
// site is activated it yields its value every remaining unit, so a site
// activated with r units left contributes value × r. Sites worth 0 are only
// passed through.
//
// The module is organized in small packages:
//
//	core/         immutable site graph and its Builder
//	parse/        line-format and YAML readers producing a core.Graph
//	bfs/          breadth-first walker (hop distances, parents, early stop)
//	oracle/       memoized pairwise hop distances with eager warm-up
//	planner/      greedy seed, exact single- and two-agent branch-and-bound
//	metrics/      Prometheus collectors fed by the planner and the oracle
//	config/       YAML file + VALVENET_* environment settings
//	logging/      zerolog setup
//	cmd/valvenet  command-line front end (solve, seed, distances)
//
// Quick example (ten sites, 30 time units):
//
//	g, _ := parse.File("network.txt")
//	o, _ := oracle.New(g)
//	res, _ := planner.OptimizeSingle(ctx, o, "AA", 30)
//	fmt.Println(res.Value, res.Path) // 1651 [DD BB JJ HH EE CC]
//
// Two agents sharing the same sites, 26 units each:
//
//	res, _ := planner.OptimizeDual(ctx, o, "AA", 26, planner.WithWorkers(4))
//	fmt.Println(res.Value, res.Routes) // 1707 [...]
package valvenet
