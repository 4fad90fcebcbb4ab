// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// options.go - functional options for the builder package.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index → vertex ID mapping. nil keeps the default.
func WithIDScheme(fn func(int) string) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand sets the RNG used by stochastic constructors and weight functions.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight generator. It receives the (possibly nil)
// RNG and must return positive finite weights; core rejects anything else.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// UniformWeights draws integer-valued weights uniformly from [lo, hi] when an
// RNG is present and returns lo otherwise. lo must be ≥ 1 and ≤ hi.
func UniformWeights(lo, hi int) func(*rand.Rand) float64 {
	return func(r *rand.Rand) float64 {
		if r == nil || hi <= lo {
			return float64(lo)
		}
		return float64(lo + r.Intn(hi-lo+1))
	}
}
