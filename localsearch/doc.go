// Package localsearch finds start→goal routes in a weighted graph with two
// stochastic local searches: steepest-descent hill climbing and simulated
// annealing.
//
// Building blocks:
//
//   - RandomPath: a goal-biased random walk. It seeds both searches and
//     returns nil (no path) when it dead-ends.
//   - PathCost: sum of edge weights; +Inf for an empty path.
//   - HillClimb: repeatedly replaces a path suffix with the cheapest
//     one-hop closure to the goal until nothing improves.
//   - SimulatedAnneal: single-vertex substitution plus heuristic-guided
//     greedy completion, Metropolis acceptance and geometric cooling.
//   - MultiStart: independent restarts in parallel, one random stream each.
//
// Neither search guarantees optimality; both may report no path on graphs
// where a path exists, because the initial walk can dead-end.
//
// Determinism:
//
// All randomness comes from the *rand.Rand configured through WithRand or
// WithSeed. Neighbor lists are visited in ascending ID order, so a fixed seed
// reproduces paths and iteration counts exactly.
//
// Example:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Romania())
//	table, _ := builder.RomaniaHeuristic()
//	h, _ := table.Bind("Bucharest")
//	res, err := localsearch.SimulatedAnneal(g, "Arad", "Bucharest", h,
//	    localsearch.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Cost, res.Iterations)
package localsearch
