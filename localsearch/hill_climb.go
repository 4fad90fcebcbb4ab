package localsearch

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// HillClimb runs steepest-descent hill climbing from a random start→goal walk.
//
// Neighborhood: for every interior position i of the current path and every
// neighbor n of path[i-1] with n != path[i] and a direct edge n→goal, the
// candidate is path[:i] + [n, goal]. Only replacements that close to the goal
// in one hop are considered, so detours longer than one hop are never found.
//
// Each iteration scans the whole neighborhood and keeps the cheapest
// candidate strictly below the current cost (the first one found wins ties).
// No such candidate means a local optimum: the search stops. Otherwise the
// candidate becomes the current path. Cost strictly decreases with every
// accepted move, so the search cannot cycle; MaxIterations bounds it anyway.
//
// If the initial walk dead-ends the result is (no path, 0 iterations).
// Errors are configuration errors only (see RandomPath) plus
// ErrOptionViolation.
func HillClimb(g *core.Graph, start, goal string, opts ...Option) (Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = validateEndpoints(g, start, goal); err != nil {
		return Result{}, err
	}

	cur, err := randomWalk(g, start, goal, o.random())
	if err != nil {
		return Result{}, err
	}
	if cur == nil {
		return noPath(0), nil
	}
	curCost, err := PathCost(g, cur)
	if err != nil {
		return Result{}, err
	}

	it := 0
	for it < o.MaxIterations {
		it++

		best, bestCost, err := bestClosure(g, cur, curCost, goal)
		if err != nil {
			return Result{}, err
		}
		if best == nil {
			o.observe(Step{Iteration: it, Outcome: Converged, Cost: curCost, BestCost: curCost})
			break
		}

		cur, curCost = best, bestCost
		o.observe(Step{Iteration: it, Outcome: Improved, Cost: curCost, BestCost: curCost})
	}

	return Result{Path: cur, Cost: curCost, Iterations: it, Found: true}, nil
}

// bestClosure scans the one-hop-closure neighborhood of cur and returns the
// cheapest candidate strictly below limit, or nil if none exists.
func bestClosure(g *core.Graph, cur Path, limit float64, goal string) (Path, float64, error) {
	var best Path
	bestCost := limit

	for i := 1; i < len(cur)-1; i++ {
		nbs, err := g.NeighborIDs(cur[i-1])
		if err != nil {
			return nil, 0, fmt.Errorf("localsearch: hill climb at %q: %w", cur[i-1], err)
		}
		for _, n := range nbs {
			if n == cur[i] || !g.HasEdge(n, goal) {
				continue
			}
			cand := cur.Prefix(i).With(n, goal)
			c, err := PathCost(g, cand)
			if err != nil {
				return nil, 0, err
			}
			if c < bestCost {
				best, bestCost = cand, c
			}
		}
	}

	return best, bestCost, nil
}
