package localsearch

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
)

// PathCost returns the sum of edge weights along p.
//
// An empty (or nil) path costs +Inf, the "unreachable" sentinel. A
// consecutive pair that is not an edge of g is a construction bug and is
// reported as ErrMissingEdge rather than skipped.
//
// Complexity: O(len(p)).
func PathCost(g *core.Graph, p Path) (float64, error) {
	if g == nil {
		return math.Inf(1), ErrNilGraph
	}
	if len(p) == 0 {
		return math.Inf(1), nil
	}

	var sum float64
	for i := 0; i+1 < len(p); i++ {
		w, err := g.Weight(p[i], p[i+1])
		if err != nil {
			return math.Inf(1), fmt.Errorf("%w: %s→%s (position %d): %v", ErrMissingEdge, p[i], p[i+1], i, err)
		}
		sum += w
	}

	return sum, nil
}
