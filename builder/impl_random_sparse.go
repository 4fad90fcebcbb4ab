// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j), i≠j (core forbids self-loops).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Weight policy: cfg.weightFn(cfg.rng) per accepted edge.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (undirected uses j>i).
//   - Same seed ⇒ same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	probMin = 0.0
	probMax = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices first so isolated ones survive p=0.
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodRandomSparse, id, err)
			}
		}

		// 3) Bernoulli trials in fixed order.
		directed := g.Directed()
		for i := 0; i < n; i++ {
			jStart := i + 1
			if directed {
				jStart = 0
			}
			for j := jStart; j < n; j++ {
				if i == j {
					continue
				}
				if !accept(cfg, p) {
					continue
				}
				uID, vID := cfg.idFn(i), cfg.idFn(j)
				w := cfg.weightFn(cfg.rng)
				if err := g.AddEdge(uID, vID, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", MethodRandomSparse, uID, vID, w, err)
				}
			}
		}

		return nil
	}
}

// accept performs one Bernoulli(p) trial. p∈{0,1} never touches the RNG.
func accept(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
