// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) - i for i=1..n-1 in stable increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng) per edge.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Path returns a Constructor that builds a simple path P_n.
// On P_n the only simple route between the endpoints is the path itself,
// which makes it the reference shape for "cost equals the chain sum" checks.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodPath, id, err)
			}
		}

		var (
			w        float64
			uID, vID string
		)
		for i := 1; i < n; i++ {
			uID, vID = cfg.idFn(i-1), cfg.idFn(i)
			w = cfg.weightFn(cfg.rng)
			if err := g.AddEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodPath, uID, vID, w, err)
			}
		}

		return nil
	}
}
