package core

// Clone returns a deep copy of g: vertices, flags, and every edge.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(WithDirected(g.directed))
	for id := range g.vertices {
		c.vertices[id] = &Vertex{ID: id}
	}
	for from, out := range g.adjacency {
		cp := make(map[string]float64, len(out))
		for to, w := range out {
			cp[to] = w
		}
		c.adjacency[from] = cp
	}
	c.edgeCount = g.edgeCount

	return c
}
