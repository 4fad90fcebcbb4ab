// Package lvsearch finds start-to-goal routes in weighted graphs with
// stochastic local search.
//
// What is inside?
//
//	core/        - thread-safe weighted Graph with sorted, deterministic views
//	localsearch/ - RandomPath, PathCost, HillClimb, SimulatedAnneal, MultiStart
//	heuristic/   - remaining-cost estimates: lookup tables, Euclidean, hop-scaled, exact
//	bfs/         - breadth-first traversal, hop counts and reachability
//	dijkstra/    - shortest paths, used as an optimality oracle
//	builder/     - graph fixtures, including the Romania road map
//	loader/      - TOML and YAML graph documents
//	cmd/lvsearch - command line driver
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Romania())
//	table, _ := builder.RomaniaHeuristic()
//	h, _ := table.Bind("Bucharest")
//	res, _ := localsearch.SimulatedAnneal(g, "Arad", "Bucharest", h, localsearch.WithSeed(7))
//	fmt.Println(res.Path, res.Cost)
//
// Both searches are incomplete: they can miss the optimum and can report no
// path when the initial random walk dead-ends. Run several restarts through
// localsearch.MultiStart and compare against dijkstra.ShortestPath when an
// exact answer matters.
package lvsearch
