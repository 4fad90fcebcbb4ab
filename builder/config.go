// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = decimalID ("0","1","2",...)
//   • rng      = nil       (pure/deterministic unless seeded)
//   • weightFn = constant defaultConstWeight

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn func(int) string
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Edge weight generator; must return a positive finite value.
	weightFn func(*rand.Rand) float64
}

const defaultConstWeight = 1.0

// newBuilderConfig applies opts over the defaults; last option wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		weightFn: func(*rand.Rand) float64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func decimalID(i int) string {
	return strconv.Itoa(i)
}

// LetterID maps 0→"A", 25→"Z", 26→"AA", ... (spreadsheet-column style).
func LetterID(i int) string {
	var buf []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}
	return string(buf)
}
