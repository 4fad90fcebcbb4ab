package heuristic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/stretchr/testify/require"
)

func TestNewTable_Validation(t *testing.T) {
	_, err := heuristic.NewTable("", map[string]float64{"A": 1})
	require.ErrorIs(t, err, heuristic.ErrEmptyGoal)

	_, err = heuristic.NewTable("G", map[string]float64{"A": -1})
	require.ErrorIs(t, err, heuristic.ErrBadEstimate)

	_, err = heuristic.NewTable("G", map[string]float64{"A": math.NaN()})
	require.ErrorIs(t, err, heuristic.ErrBadEstimate)
}

// TestTable_CopiesInput verifies later writes to the source map do not leak in.
func TestTable_CopiesInput(t *testing.T) {
	src := map[string]float64{"A": 3, "G": 0}
	tbl, err := heuristic.NewTable("G", src)
	require.NoError(t, err)
	src["A"] = 100

	require.Equal(t, 3.0, tbl.Estimate("A"))
	require.True(t, math.IsInf(tbl.Estimate("nowhere"), 1))
	require.Equal(t, []string{"A", "G"}, tbl.Nodes())
	require.Equal(t, 2, tbl.Len())
	require.Equal(t, "G", tbl.Goal())
}

// TestTable_Bind checks the goal binding is enforced both at bind time and
// when the bound Func is queried for a foreign goal.
func TestTable_Bind(t *testing.T) {
	tbl, err := heuristic.NewTable("G", map[string]float64{"A": 3})
	require.NoError(t, err)

	_, err = tbl.Bind("Other")
	require.ErrorIs(t, err, heuristic.ErrGoalMismatch)

	h, err := tbl.Bind("G")
	require.NoError(t, err)
	require.Equal(t, 3.0, h("A", "G"))
	require.True(t, math.IsInf(h("A", "Other"), 1))
}

func TestEuclidean(t *testing.T) {
	h := heuristic.Euclidean(map[string]heuristic.Point{
		"A": {X: 0, Y: 0},
		"B": {X: 3, Y: 4},
	})
	require.Equal(t, 5.0, h("A", "B"))
	require.Equal(t, 0.0, h("B", "B"))
	require.True(t, math.IsInf(h("A", "C"), 1))
	require.True(t, math.IsInf(h("C", "A"), 1))
	require.Equal(t, 0.0, heuristic.Zero("A", "B"))
}

func line(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 4))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("C", "G", 7))
	require.NoError(t, g.AddVertex("Island"))
	return g
}

func TestHopScaled(t *testing.T) {
	tbl, err := heuristic.HopScaled(line(t), "G")
	require.NoError(t, err)
	require.Equal(t, 6.0, tbl.Estimate("A")) // 3 hops × min weight 2
	require.Equal(t, 0.0, tbl.Estimate("G"))
	require.True(t, math.IsInf(tbl.Estimate("Island"), 1))

	_, err = heuristic.HopScaled(line(t), "missing")
	require.Error(t, err)
}

func TestExact(t *testing.T) {
	tbl, err := heuristic.Exact(line(t), "G")
	require.NoError(t, err)
	require.Equal(t, 13.0, tbl.Estimate("A"))
	require.Equal(t, 7.0, tbl.Estimate("C"))
	require.True(t, math.IsInf(tbl.Estimate("Island"), 1))
}
