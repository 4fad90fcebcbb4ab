package heuristic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dijkstra"
)

// Point is a planar coordinate.
type Point struct {
	X, Y float64
}

// Euclidean returns a straight-line-distance Func over the given coordinates.
// Either endpoint missing from coords yields +Inf.
func Euclidean(coords map[string]Point) Func {
	cp := make(map[string]Point, len(coords))
	for id, p := range coords {
		cp[id] = p
	}

	return func(node, goal string) float64 {
		a, ok := cp[node]
		if !ok {
			return math.Inf(1)
		}
		b, ok := cp[goal]
		if !ok {
			return math.Inf(1)
		}
		return math.Hypot(a.X-b.X, a.Y-b.Y)
	}
}

// HopScaled builds a table for goal from BFS hop counts multiplied by the
// smallest edge weight of g. It never overestimates; vertices that cannot
// reach goal are left out and therefore estimate +Inf.
func HopScaled(g *core.Graph, goal string) (*Table, error) {
	hops, err := bfs.Hops(g, goal)
	if err != nil {
		return nil, fmt.Errorf("heuristic: hop table for %q: %w", goal, err)
	}
	scale := g.MinWeight()
	if math.IsInf(scale, 1) {
		scale = 0 // edgeless graph: only the goal itself is in hops
	}
	values := make(map[string]float64, len(hops))
	for id, h := range hops {
		values[id] = float64(h) * scale
	}

	return NewTable(goal, values)
}

// Exact builds a table for goal holding true shortest-path distances.
// On directed graphs the distance is measured from goal outward, so it is
// exact only when the graph is symmetric.
func Exact(g *core.Graph, goal string) (*Table, error) {
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(goal))
	if err != nil {
		return nil, fmt.Errorf("heuristic: exact table for %q: %w", goal, err)
	}
	values := make(map[string]float64, len(dist))
	for id, d := range dist {
		if !math.IsInf(d, 1) {
			values[id] = d
		}
	}

	return NewTable(goal, values)
}
