// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_edges.go - explicit vertex and edge-list constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// EdgeSpec is one explicit weighted edge.
type EdgeSpec struct {
	From   string
	To     string
	Weight float64
}

// Vertex returns a Constructor that adds a single vertex, usually an
// isolated one (a dead end nothing can leave).
func Vertex(id string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%q): %w", MethodVertex, id, err)
		}
		return nil
	}
}

// Edges returns a Constructor that inserts specs in the given order.
// Weights are taken verbatim; cfg.weightFn is not consulted.
func Edges(specs []EdgeSpec) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i, e := range specs {
			if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
				return fmt.Errorf("%s: #%d %s→%s: %w", MethodEdges, i, e.From, e.To, err)
			}
		}
		return nil
	}
}
