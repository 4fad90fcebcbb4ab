// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 1 leaves (else ErrTooFewVertices).
//   - Hub is CenterVertexID; leaves are cfg.idFn(0..n-1).
//   - Edges Center - leaf_i in ascending i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Star returns a Constructor that builds a star with n leaves around
// CenterVertexID. Every leaf-to-leaf route passes through the hub.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarLeaves {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarLeaves, ErrTooFewVertices)
		}

		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodStar, CenterVertexID, err)
		}
		for i := 0; i < n; i++ {
			leaf := cfg.idFn(i)
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(CenterVertexID, leaf, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodStar, CenterVertexID, leaf, w, err)
			}
		}

		return nil
	}
}
