package localsearch

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
)

// greedyComplete extends prefix until it reaches goal, always stepping to the
// eligible neighbor with the smallest estimate h(n, goal).
//
// Eligible neighbors are those not yet on the path, plus the goal itself.
// Ties go to the first candidate in ascending ID order (NeighborIDs is
// sorted and only a strictly smaller estimate replaces the pick), which keeps
// the completion independent of map iteration order. A tail without eligible
// neighbors returns nil. The prefix is never modified.
func greedyComplete(g *core.Graph, prefix Path, goal string, h heuristic.Func) (Path, error) {
	path := prefix.Clone()
	onPath := make(map[string]bool, len(path))
	for _, v := range path {
		onPath[v] = true
	}

	for tail := path.Last(); tail != goal; tail = path.Last() {
		nbs, err := g.NeighborIDs(tail)
		if err != nil {
			return nil, fmt.Errorf("localsearch: completion at %q: %w", tail, err)
		}

		next, found := "", false
		var nextEst float64
		for _, n := range nbs {
			if onPath[n] && n != goal {
				continue
			}
			est := h(n, goal)
			if !found || est < nextEst {
				next, nextEst, found = n, est, true
			}
		}
		if !found {
			return nil, nil
		}

		path = append(path, next)
		onPath[next] = true
	}

	return path, nil
}
