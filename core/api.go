// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries over a Graph.
// Policy:
//   - No mutation, no hidden state.
//   - One read lock per call; results are snapshots.

package core

import "math"

// GraphStats is a snapshot of a graph's size and weight range.
type GraphStats struct {
	Directed    bool    // edge orientation policy
	VertexCount int     // number of vertices
	EdgeCount   int     // logical edges (a mirrored pair counts once)
	Isolated    int     // vertices with no outgoing edge
	MinWeight   float64 // smallest edge weight (+Inf when edgeless)
	MaxWeight   float64 // largest edge weight (0 when edgeless)
}

// Stats produces a read-only snapshot of g.
//
// Isolated counts vertices a walk can never leave: the dead ends that make
// RandomPath fail immediately when used as a start.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		Directed:    g.directed,
		VertexCount: len(g.vertices),
		EdgeCount:   g.edgeCount,
		MinWeight:   math.Inf(1),
	}
	for _, out := range g.adjacency {
		if len(out) == 0 {
			s.Isolated++
		}
		for _, w := range out {
			if w < s.MinWeight {
				s.MinWeight = w
			}
			if w > s.MaxWeight {
				s.MaxWeight = w
			}
		}
	}

	return s
}
