package core

import (
	"fmt"
	"sort"
)

// NeighborIDs returns the IDs reachable from id in one step, sorted ascending.
//
// The sorted order is the canonical iteration order for every algorithm in
// lvsearch: random choices index into it and greedy choices break ties by it,
// so equal seeds always produce equal walks.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d·log d), d = out-degree of id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	out, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	ids := make([]string, 0, len(out))
	for to := range out {
		ids = append(ids, to)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids, nil
}

// Degree returns the out-degree of id (the degree on undirected graphs).
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(out), nil
}

// AdjacencyList returns a snapshot id → sorted neighbor IDs for every vertex.
// Complexity: O(V + E·log d).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	res := make(map[string][]string, len(g.adjacency))
	for from, out := range g.adjacency {
		ids := make([]string, 0, len(out))
		for to := range out {
			ids = append(ids, to)
		}
		res[from] = ids
	}
	g.mu.RUnlock()

	for _, ids := range res {
		sort.Strings(ids)
	}

	return res
}
