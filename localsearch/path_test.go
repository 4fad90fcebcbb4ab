package localsearch_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/localsearch"
)

func TestPath_ValueSemantics(t *testing.T) {
	p := localsearch.Path{"A", "B", "C"}

	pre := p.Prefix(2)
	ext := pre.With("X")
	ext[0] = "Z"
	require.Equal(t, localsearch.Path{"A", "B"}, pre)
	require.Equal(t, localsearch.Path{"A", "B", "C"}, p)

	c := p.Clone()
	c[1] = "Q"
	require.Equal(t, "B", p[1])
	require.True(t, p.Equal(localsearch.Path{"A", "B", "C"}))
	require.False(t, p.Equal(c))

	require.Equal(t, "A", p.First())
	require.Equal(t, "C", p.Last())
	require.True(t, p.Contains("C"))
	require.False(t, p.Contains("D"))
	require.Equal(t, "A -> B -> C", p.String())
}

func TestPath_Empty(t *testing.T) {
	var p localsearch.Path
	require.Zero(t, p.Len())
	require.Empty(t, p.First())
	require.Empty(t, p.Last())
	require.Nil(t, p.Clone())
	require.Equal(t, "<no path>", p.String())
}

func TestPathCost(t *testing.T) {
	g, _ := romania(t)

	c, err := localsearch.PathCost(g, localsearch.Path{"Arad", "Sibiu", "Rimnicu Vilcea", "Pitesti", "Bucharest"})
	require.NoError(t, err)
	require.Equal(t, builder.RomaniaOptimum, c)

	c, err = localsearch.PathCost(g, localsearch.Path{"Arad"})
	require.NoError(t, err)
	require.Zero(t, c)

	c, err = localsearch.PathCost(g, nil)
	require.NoError(t, err)
	require.True(t, math.IsInf(c, 1))

	_, err = localsearch.PathCost(g, localsearch.Path{"Arad", "Bucharest"})
	require.ErrorIs(t, err, localsearch.ErrMissingEdge)

	_, err = localsearch.PathCost(nil, localsearch.Path{"Arad"})
	require.ErrorIs(t, err, localsearch.ErrNilGraph)
}
