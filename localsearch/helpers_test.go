package localsearch_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/localsearch"
)

// romania returns the road map plus its bound straight-line heuristic.
func romania(t *testing.T, extra ...builder.Constructor) (*core.Graph, heuristic.Func) {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, append([]builder.Constructor{builder.Romania()}, extra...)...)
	require.NoError(t, err)
	table, err := builder.RomaniaHeuristic()
	require.NoError(t, err)
	h, err := table.Bind(builder.RomaniaGoal)
	require.NoError(t, err)

	return g, h
}

// detour is S-A then two ways to G: via X (cost 11 total) or via Y (cost 3).
func detour(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Edges([]builder.EdgeSpec{
		{From: "S", To: "A", Weight: 1},
		{From: "A", To: "X", Weight: 5},
		{From: "X", To: "G", Weight: 5},
		{From: "A", To: "Y", Weight: 1},
		{From: "Y", To: "G", Weight: 1},
	}))
	require.NoError(t, err)

	return g
}

// requireValidPath asserts p runs start→goal along real edges and costs cost.
func requireValidPath(t *testing.T, g *core.Graph, p localsearch.Path, start, goal string, cost float64) {
	t.Helper()
	require.NotEmpty(t, p)
	require.Equal(t, start, p.First())
	require.Equal(t, goal, p.Last())
	for i := 0; i+1 < len(p); i++ {
		require.True(t, g.HasEdge(p[i], p[i+1]), "missing edge %s→%s in %v", p[i], p[i+1], p)
	}
	c, err := localsearch.PathCost(g, p)
	require.NoError(t, err)
	require.InDelta(t, cost, c, 1e-9)
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
