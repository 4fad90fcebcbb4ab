package localsearch_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/localsearch"
)

func TestMultiStart_HillClimbFindsOptimum(t *testing.T) {
	g, _ := romania(t)
	best, all, err := localsearch.MultiStart(context.Background(), 100, 8, 2024,
		localsearch.HillClimbFunc(g, "Arad", "Bucharest"))
	require.NoError(t, err)
	require.Len(t, all, 100)
	require.True(t, best.Found)
	require.Equal(t, builder.RomaniaOptimum, best.Cost)
	require.Equal(t, localsearch.Path{"Arad", "Sibiu", "Rimnicu Vilcea", "Pitesti", "Bucharest"}, best.Path)
	for _, r := range all {
		if r.Found {
			require.GreaterOrEqual(t, r.Cost, builder.RomaniaOptimum)
		}
	}
}

func TestMultiStart_AnnealNeverBelowOptimum(t *testing.T) {
	g, h := romania(t)
	best, _, err := localsearch.MultiStart(context.Background(), 30, 4, 5,
		localsearch.AnnealFunc(g, "Arad", "Bucharest", h))
	require.NoError(t, err)
	require.True(t, best.Found)
	require.GreaterOrEqual(t, best.Cost, builder.RomaniaOptimum)
}

func TestMultiStart_IndependentOfWorkers(t *testing.T) {
	g, h := romania(t)
	search := localsearch.AnnealFunc(g, "Oradea", "Bucharest", h)

	_, serial, err := localsearch.MultiStart(context.Background(), 16, 1, 77, search)
	require.NoError(t, err)
	_, parallel, err := localsearch.MultiStart(context.Background(), 16, 8, 77, search)
	require.NoError(t, err)
	require.Equal(t, serial, parallel)
}

func TestMultiStart_AllDeadEnds(t *testing.T) {
	g, _ := romania(t, builder.Vertex("Nowhere"))
	best, all, err := localsearch.MultiStart(context.Background(), 5, 2, 1,
		localsearch.HillClimbFunc(g, "Nowhere", "Bucharest"))
	require.NoError(t, err)
	require.Len(t, all, 5)
	require.False(t, best.Found)
}

func TestMultiStart_Errors(t *testing.T) {
	noop := func(*rand.Rand) (localsearch.Result, error) { return localsearch.Result{}, nil }

	_, _, err := localsearch.MultiStart(context.Background(), 0, 1, 1, noop)
	require.ErrorIs(t, err, localsearch.ErrBadRuns)
	_, _, err = localsearch.MultiStart(context.Background(), 1, 0, 1, noop)
	require.ErrorIs(t, err, localsearch.ErrBadRuns)

	boom := errors.New("boom")
	_, _, err = localsearch.MultiStart(context.Background(), 4, 2, 1,
		func(*rand.Rand) (localsearch.Result, error) { return localsearch.Result{}, boom })
	require.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = localsearch.MultiStart(ctx, 4, 2, 1, noop)
	require.ErrorIs(t, err, context.Canceled)
}
