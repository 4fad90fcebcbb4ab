// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and edge queries on Graph.
// Policy:
//   - Weights are validated once at insertion; readers never re-check them.
//   - Undirected edges are stored as a mirrored pair and counted once.
//   - Missing endpoints are created by AddEdge.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge connects from and to with the given weight.
// Missing endpoints are created first. On undirected graphs the reverse
// direction is stored with the same weight.
//
// Errors:
//   - ErrEmptyVertexID:       from or to is "".
//   - ErrLoopNotAllowed:      from == to.
//   - ErrBadWeight:           weight ≤ 0, NaN or ±Inf.
//   - ErrMultiEdgeNotAllowed: the edge already exists.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrBadWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if _, exists := g.adjacency[from][to]; exists {
		return fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
	}

	g.adjacency[from][to] = weight
	if !g.directed {
		g.adjacency[to][from] = weight
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether to is reachable from from in one step.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of the edge from→to.
//
// Errors:
//   - ErrVertexNotFound: from is not in the graph.
//   - ErrEdgeNotFound:   from has no edge to to.
//
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out, ok := g.adjacency[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	w, ok := out[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// Edges returns a snapshot of all edges sorted by (From, To).
// Undirected edges appear once, with From < To.
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	edges := make([]Edge, 0, g.edgeCount)
	for from, out := range g.adjacency {
		for to, w := range out {
			if !g.directed && to < from {
				continue // mirrored half of an undirected edge
			}
			edges = append(edges, Edge{From: from, To: to, Weight: w, Directed: g.directed})
		}
	}
	g.mu.RUnlock()

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return edges
}

// EdgeCount returns the number of logical edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// MinWeight returns the smallest edge weight in g, or +Inf for an edgeless graph.
// Complexity: O(E).
func (g *Graph) MinWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	min := math.Inf(1)
	for _, out := range g.adjacency {
		for _, w := range out {
			if w < min {
				min = w
			}
		}
	}

	return min
}
