package localsearch

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
)

// SearchFunc runs one search with the given random source.
type SearchFunc func(rng *rand.Rand) (Result, error)

// HillClimbFunc adapts HillClimb to a SearchFunc. The rng passed by the
// runner overrides any WithRand/WithSeed in opts.
func HillClimbFunc(g *core.Graph, start, goal string, opts ...Option) SearchFunc {
	return func(rng *rand.Rand) (Result, error) {
		return HillClimb(g, start, goal, withRand(opts, rng)...)
	}
}

// AnnealFunc adapts SimulatedAnneal to a SearchFunc.
func AnnealFunc(g *core.Graph, start, goal string, h heuristic.Func, opts ...Option) SearchFunc {
	return func(rng *rand.Rand) (Result, error) {
		return SimulatedAnneal(g, start, goal, h, withRand(opts, rng)...)
	}
}

func withRand(opts []Option, rng *rand.Rand) []Option {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	return append(all, WithRand(rng))
}

// MultiStart executes runs independent searches on up to workers goroutines
// and returns the cheapest found result together with every run's result,
// indexed by run.
//
// Run k draws from its own stream derived from (seed, k), so the outcome
// depends only on seed and runs, never on scheduling. Ties between equally
// cheap runs go to the lowest run index. If no run finds a path, the best
// result is the no-path result (Cost +Inf).
//
// The first search error cancels the remaining runs and is returned.
// Cancelling ctx stops runs that have not started yet and returns ctx.Err().
func MultiStart(ctx context.Context, runs, workers int, seed int64, search SearchFunc) (Result, []Result, error) {
	if runs <= 0 || workers <= 0 {
		return noPath(0), nil, ErrBadRuns
	}

	results := make([]Result, runs)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for k := 0; k < runs; k++ {
		k := k
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := search(deriveRNG(seed, uint64(k)))
			if err != nil {
				return err
			}
			results[k] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return noPath(0), nil, err
	}
	if err := ctx.Err(); err != nil {
		return noPath(0), nil, err
	}

	best := noPath(0)
	for _, r := range results {
		if r.Found && (!best.Found || r.Cost < best.Cost) {
			best = r
		}
	}

	return best, results, nil
}
