// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices 0..n-1 via cfg.idFn, edges i - (i+1 mod n) in increasing i.
//
// A cycle gives every vertex exactly two neighbors, so two simple routes
// exist between any pair; hill climbing from either side has something
// to compare.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Cycle returns a Constructor that builds the cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodCycle, id, err)
			}
		}

		for i := 0; i < n; i++ {
			uID, vID := cfg.idFn(i), cfg.idFn((i+1)%n)
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodCycle, uID, vID, w, err)
			}
		}

		return nil
	}
}
