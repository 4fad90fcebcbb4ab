// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// errors.go - sentinel errors for graph construction.
//
// Callers branch with errors.Is; constructors wrap with their method name.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a generic construction failure (nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
