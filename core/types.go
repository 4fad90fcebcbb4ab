// Package core defines the central Graph, Vertex, and Edge types used by every
// search in lvsearch, together with the sentinel errors of graph construction.
//
// A Graph is a weighted adjacency structure over string vertex IDs. Weights are
// positive finite float64 values. Graphs are undirected by default: AddEdge(a,b,w)
// makes b readable from a and a readable from b with the same weight.
//
// A single sync.RWMutex guards the vertex catalog and the adjacency map, so a
// Graph may be built and queried from several goroutines. The search packages
// never mutate a Graph; they only read outgoing edges of the current vertex.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - weight is not a positive finite number.
//	ErrLoopNotAllowed      - self-loop (from == to).
//	ErrMultiEdgeNotAllowed - second edge between the same endpoints.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a zero, negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive and finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph. Nodes carry no attributes beyond
// their unique ID.
type Vertex struct {
	ID string
}

// Edge is a read-only snapshot of one connection between two vertices.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the traversal cost of the edge.
	Weight float64

	// Directed reports whether the edge is one-way.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected, the default).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory weighted graph.
//
// mu guards vertices and adjacency.
type Graph struct {
	mu sync.RWMutex

	directed bool // all edges one-way when true

	vertices map[string]*Vertex // vertex ID → Vertex

	// adjacency[from][to] = weight; undirected edges are mirrored.
	adjacency map[string]map[string]float64

	edgeCount int // logical edges (a mirrored pair counts once)
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges of g are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
