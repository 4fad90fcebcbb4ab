// Package builder assembles core.Graph fixtures from composable constructors.
//
// BuildGraph creates the graph, resolves BuilderOption values into one
// configuration and applies each Constructor in order:
//
//   - Path, Cycle, Star: canonical shapes with cfg-driven IDs and weights.
//   - RandomSparse: Erdős–Rényi sampling, reproducible under WithSeed.
//   - Vertex, Edges: explicit fixtures, e.g. an isolated dead-end vertex.
//   - Romania: the 20-city road map; RomaniaHeuristic holds the
//     straight-line distances to Bucharest.
//
// Vertex IDs default to decimal strings; WithIDScheme(LetterID) gives
// "A","B",... Weights default to 1; WithWeightFn(UniformWeights(lo, hi))
// draws them from the configured RNG.
//
// Constructors never panic. Failures wrap a sentinel (ErrTooFewVertices,
// ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed) or the core
// error that stopped them, prefixed with the constructor name.
package builder
