// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order. Edge weights are ignored.
//
// lvsearch uses hop distances to derive heuristics for graphs that ship
// without a hand-made estimate table, and to tell "unreachable goal" apart
// from "unlucky walk" when a local search reports no path.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// errTargetReached stops Reachable early; it never escapes this package.
var errTargetReached = errors.New("bfs: target reached")

type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts    Options
	adj     map[string][]string // sorted neighbor snapshot taken once per run
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// ErrNeighbors, ctx.Err() on cancellation, or any OnVisit error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		adj:     g.AdjacencyList(),
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		neighbors, ok := w.adj[item.id]
		if !ok {
			return fmt.Errorf("%w: %q missing from adjacency snapshot", ErrNeighbors, item.id)
		}
		for _, nbr := range neighbors {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1, item.id)
			}
		}
	}

	return nil
}

// Hops returns the hop distance from source to every reachable vertex.
func Hops(g *core.Graph, source string) (map[string]int, error) {
	res, err := BFS(g, source)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}

// Reachable reports whether to can be reached from from.
// It stops as soon as to is visited.
func Reachable(g *core.Graph, from, to string) (bool, error) {
	found := false
	_, err := BFS(g, from, WithOnVisit(func(id string, _ int) error {
		if id == to {
			found = true
			return errTargetReached
		}
		return nil
	}))
	if err != nil && !found {
		return false, err
	}

	return found, nil
}
