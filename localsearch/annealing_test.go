package localsearch_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/localsearch"
)

func TestSimulatedAnneal_Romania(t *testing.T) {
	g, h := romania(t)
	for seed := int64(1); seed <= 40; seed++ {
		walk, err := localsearch.RandomPath(g, "Arad", "Bucharest", seeded(seed))
		require.NoError(t, err)

		var steps []localsearch.Step
		res, err := localsearch.SimulatedAnneal(g, "Arad", "Bucharest", h,
			localsearch.WithSeed(seed),
			localsearch.WithObserver(func(s localsearch.Step) { steps = append(steps, s) }))
		require.NoError(t, err)
		if walk == nil {
			require.False(t, res.Found)
			require.Empty(t, steps)
			continue
		}

		require.True(t, res.Found)
		requireValidPath(t, g, res.Path, "Arad", "Bucharest", res.Cost)
		require.GreaterOrEqual(t, res.Cost, builder.RomaniaOptimum)
		walkCost, err := localsearch.PathCost(g, walk)
		require.NoError(t, err)
		require.LessOrEqual(t, res.Cost, walkCost)

		// 10·0.8^k > 0.1 holds for k = 0..20.
		require.Equal(t, 21, res.Iterations)
		require.Len(t, steps, 21)
		require.Equal(t, localsearch.DefaultInitialTemperature, steps[0].Temperature)
		for i := 1; i < len(steps); i++ {
			require.Less(t, steps[i].Temperature, steps[i-1].Temperature)
			require.LessOrEqual(t, steps[i].BestCost, steps[i-1].BestCost)
		}
		require.Equal(t, res.Cost, steps[len(steps)-1].BestCost)
	}
}

func TestSimulatedAnneal_ReturnsBestEver(t *testing.T) {
	g := detour(t)
	for seed := int64(1); seed <= 10; seed++ {
		res, err := localsearch.SimulatedAnneal(g, "S", "G", heuristic.Zero,
			localsearch.WithSeed(seed),
			localsearch.WithCoolingRate(0.99),
			localsearch.WithMaxIterations(200))
		require.NoError(t, err)
		require.True(t, res.Found)
		require.Equal(t, 200, res.Iterations)
		require.Equal(t, localsearch.Path{"S", "A", "Y", "G"}, res.Path)
		require.Equal(t, 3.0, res.Cost)
	}
}

func TestSimulatedAnneal_Deterministic(t *testing.T) {
	g, h := romania(t)
	a, err := localsearch.SimulatedAnneal(g, "Oradea", "Bucharest", h, localsearch.WithSeed(11))
	require.NoError(t, err)
	b, err := localsearch.SimulatedAnneal(g, "Oradea", "Bucharest", h, localsearch.WithSeed(11))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestSimulatedAnneal_ShortPathAbandons(t *testing.T) {
	g, h := romania(t)
	var outcomes []localsearch.Outcome
	res, err := localsearch.SimulatedAnneal(g, "Pitesti", "Bucharest", h,
		localsearch.WithObserver(func(s localsearch.Step) { outcomes = append(outcomes, s.Outcome) }))
	require.NoError(t, err)
	require.Equal(t, localsearch.Path{"Pitesti", "Bucharest"}, res.Path)
	require.Equal(t, 101.0, res.Cost)
	require.Equal(t, 21, res.Iterations)
	for _, o := range outcomes {
		require.Equal(t, localsearch.Abandoned, o)
	}
}

func TestSimulatedAnneal_DeadEnd(t *testing.T) {
	g, h := romania(t, builder.Vertex("Nowhere"))
	res, err := localsearch.SimulatedAnneal(g, "Nowhere", "Bucharest", h)
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Zero(t, res.Iterations)
	require.True(t, math.IsInf(res.Cost, 1))
}

func TestSimulatedAnneal_Errors(t *testing.T) {
	g, h := romania(t)

	_, err := localsearch.SimulatedAnneal(g, "Arad", "Bucharest", nil)
	require.ErrorIs(t, err, localsearch.ErrNilHeuristic)
	_, err = localsearch.SimulatedAnneal(nil, "Arad", "Bucharest", h)
	require.ErrorIs(t, err, localsearch.ErrNilGraph)

	for name, opt := range map[string]localsearch.Option{
		"t0":      localsearch.WithInitialTemperature(-1),
		"cooling": localsearch.WithCoolingRate(1),
		"floor":   localsearch.WithTemperatureFloor(0),
		"inf":     localsearch.WithInitialTemperature(math.Inf(1)),
		"above":   localsearch.WithTemperatureFloor(20),
	} {
		_, err = localsearch.SimulatedAnneal(g, "Arad", "Bucharest", h, opt)
		require.ErrorIs(t, err, localsearch.ErrOptionViolation, name)
	}
}

func TestOutcome_String(t *testing.T) {
	require.Equal(t, "improved", localsearch.Improved.String())
	require.Equal(t, "converged", localsearch.Converged.String())
	require.Equal(t, "unknown", localsearch.Outcome(42).String())
}
