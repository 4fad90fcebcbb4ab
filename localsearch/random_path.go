package localsearch

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvsearch/core"
)

// RandomPath builds a start→goal path by a goal-biased random walk.
//
// At each vertex the walk steps straight to the goal when it is a neighbor.
// Otherwise it picks uniformly among neighbors not yet on the path. When
// every neighbor is already on the path the goal is, by then, known not to be
// one hop away, so the walk has dead-ended. A vertex without neighbors is a
// dead end too.
//
// A dead end yields (nil, nil): no path is a normal outcome, not an error.
// The walk does not retry; callers wanting retries loop themselves (see
// MultiStart). Errors are reserved for bad input: ErrNilGraph,
// ErrStartNotFound, ErrGoalNotFound, ErrNilRand.
//
// Every step visits a new vertex or ends at the goal, so the walk takes at
// most V steps. Neighbor lists are sorted, so for a fixed rng stream the walk
// is deterministic.
func RandomPath(g *core.Graph, start, goal string, rng *rand.Rand) (Path, error) {
	if err := validateEndpoints(g, start, goal); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	return randomWalk(g, start, goal, rng)
}

func randomWalk(g *core.Graph, start, goal string, rng *rand.Rand) (Path, error) {
	path := Path{start}
	visited := map[string]bool{start: true}

	for cur := start; cur != goal; {
		nbs, err := g.NeighborIDs(cur)
		if err != nil {
			return nil, fmt.Errorf("localsearch: random walk at %q: %w", cur, err)
		}
		if len(nbs) == 0 {
			return nil, nil
		}

		var next string
		if containsID(nbs, goal) {
			next = goal
		} else {
			unvisited := make([]string, 0, len(nbs))
			for _, n := range nbs {
				if !visited[n] {
					unvisited = append(unvisited, n)
				}
			}
			if len(unvisited) == 0 {
				return nil, nil
			}
			next = unvisited[rng.Intn(len(unvisited))]
		}

		path = append(path, next)
		visited[next] = true
		cur = next
	}

	return path, nil
}

// validateEndpoints fails fast on configuration errors so that no search
// discovers them mid-loop.
func validateEndpoints(g *core.Graph, start, goal string) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if !g.HasVertex(goal) {
		return fmt.Errorf("%w: %q", ErrGoalNotFound, goal)
	}
	return nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
