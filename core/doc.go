// Package core provides a thread-safe in-memory weighted Graph with a minimal,
// composable API surface. It is the substrate every search in lvsearch queries.
//
// The Graph G = (V,E) supports:
//
//   - Undirected (default) or directed edges (WithDirected)
//   - Positive finite float64 weights, validated at insertion
//   - Constant-time edge lookups via nested maps:
//     adjacency[from][to] = weight
//   - Deterministic iteration: Vertices(), Edges(), NeighborIDs() return sorted results
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error              // O(1)
//	HasVertex(id string) bool               // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) error // O(1)†
//	HasEdge(from, to string) bool             // O(1)
//	Weight(from, to string) (float64, error)  // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error)  // O(d·log d), sorted
//	AdjacencyList() map[string][]string       // O(V+E)
//	Vertices() []string                       // O(V·log V)
//	Edges() []Edge                            // O(E·log E)
//	Degree(id string) (int, error)            // O(1)
//	VertexCount(), EdgeCount() int            // O(1)
//	MinWeight() float64                       // O(E)
//	Stats() GraphStats                        // O(V+E)
//
//	// Cloning
//	Clone() *Graph                            // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – weight ≤ 0, NaN or ±Inf
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge
//
// † amortized constant time: nested-map insertion.
package core
