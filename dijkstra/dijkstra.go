// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// lvsearch uses it as the exact oracle next to the local searches: it gives
// the optimal cost a stochastic run can be compared against, and the exact
// remaining-distance table behind heuristic.Exact.
//
// Complexity:
//
//   - Time:  O((V + E) log V), lazy decrease-key on a binary heap.
//   - Space: O(V + E).
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise);
//     prev[v] == "" for the source and unreachable vertices.
//   - err:  ErrEmptySource, ErrNilGraph, ErrVertexNotFound or ErrBadMaxDistance.
//
// Edge weights are positive by core.Graph construction, so no negative-weight
// scan is needed.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the cheapest path from → to and its cost.
// ErrNoPath is returned when to is unreachable.
func ShortestPath(g *core.Graph, from, to string) ([]string, float64, error) {
	if g != nil && !g.HasVertex(to) {
		return nil, math.Inf(1), fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	dist, prev, err := Dijkstra(g, Source(from), WithReturnPath())
	if err != nil {
		return nil, math.Inf(1), err
	}
	if math.IsInf(dist[to], 1) {
		return nil, math.Inf(1), fmt.Errorf("%w: %s→%s", ErrNoPath, from, to)
	}

	path := []string{to}
	for cur := to; cur != from; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[to], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // read-only input
	options Options            // resolved configuration
	dist    map[string]float64 // vertex → best known distance
	prev    map[string]string  // vertex → predecessor on the best path
	visited map[string]bool    // vertex → distance finalized
	pq      nodePQ             // lazy min-heap
}

func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unsettled vertex until the heap empties or the
// frontier passes MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner) relax(u string) error {
	neighbors, err := r.g.NeighborIDs(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	for _, v := range neighbors {
		w, err := r.g.Weight(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		nd := r.dist[u] + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties by id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
