// Package builder_test verifies topology, counts, weights and error
// semantics of every Constructor.
package builder_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
)

// TestBuilders_Functional runs table-driven functional tests for each shape.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					from, to := strconv.Itoa(i), strconv.Itoa((i+1)%5)
					w, err := g.Weight(from, to)
					require.NoError(t, err)
					require.Equal(t, 1.0, w)
				}
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge("0", "1"))
				require.True(t, g.HasEdge("2", "3"))
				require.False(t, g.HasEdge("0", "3"))
			},
		},
		{
			name:  "Star(3)",
			ctor:  builder.Star(3),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				deg, err := g.Degree(builder.CenterVertexID)
				require.NoError(t, err)
				require.Equal(t, 3, deg)
			},
		},
		{
			name:  "Vertex(Z)",
			ctor:  builder.Vertex("Z"),
			wantV: 1, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				deg, err := g.Degree("Z")
				require.NoError(t, err)
				require.Zero(t, deg)
			},
		},
		{
			name:  "Romania",
			ctor:  builder.Romania(),
			wantV: 20, wantE: 24,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				w, err := g.Weight("Bucharest", "Fagaras")
				require.NoError(t, err)
				require.Equal(t, 211.0, w)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.VertexCount())
			require.Equal(t, tc.wantE, g.EdgeCount())
			tc.sampleCheck(t, g)
		})
	}
}

func TestBuilders_TooFew(t *testing.T) {
	for name, ctor := range map[string]builder.Constructor{
		"Path(1)":         builder.Path(1),
		"Cycle(2)":        builder.Cycle(2),
		"Star(0)":         builder.Star(0),
		"RandomSparse(0)": builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, ctor)
		require.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(3), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomSparse_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0.3))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomSparse_Extremes(t *testing.T) {
	empty, err := builder.BuildGraph(nil, nil, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	require.Equal(t, 6, empty.VertexCount())
	require.Zero(t, empty.EdgeCount())

	full, err := builder.BuildGraph(nil, nil, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	require.Equal(t, 15, full.EdgeCount())

	dfull, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	require.Equal(t, 12, dfull.EdgeCount())
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithSeed(7),
		builder.WithWeightFn(builder.UniformWeights(1, 9)),
	}
	a, err := builder.BuildGraph(nil, opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(7),
		builder.WithWeightFn(builder.UniformWeights(1, 9)),
	}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	require.Equal(t, a.Edges(), b.Edges())

	for _, e := range a.Edges() {
		require.GreaterOrEqual(t, e.Weight, 1.0)
		require.LessOrEqual(t, e.Weight, 9.0)
	}
}

func TestEdges_BadWeight(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Edges([]builder.EdgeSpec{{From: "A", To: "B", Weight: -1}}))
	require.ErrorIs(t, err, core.ErrBadWeight)
}

func TestLetterID(t *testing.T) {
	require.Equal(t, "A", builder.LetterID(0))
	require.Equal(t, "Z", builder.LetterID(25))
	require.Equal(t, "AA", builder.LetterID(26))
	require.Equal(t, "AB", builder.LetterID(27))

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDScheme(builder.LetterID)}, builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestUniformWeights_NoRand(t *testing.T) {
	fn := builder.UniformWeights(3, 8)
	require.Equal(t, 3.0, fn(nil))

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		w := fn(r)
		require.True(t, w >= 3 && w <= 8)
	}
}

func TestRomaniaHeuristic(t *testing.T) {
	table, err := builder.RomaniaHeuristic()
	require.NoError(t, err)
	require.Equal(t, builder.RomaniaGoal, table.Goal())
	require.Equal(t, 20, table.Len())
	require.Equal(t, 366.0, table.Estimate("Arad"))
	require.Zero(t, table.Estimate("Bucharest"))

	g, err := builder.BuildGraph(nil, nil, builder.Romania())
	require.NoError(t, err)
	require.Equal(t, g.Vertices(), table.Nodes())
}

func TestRomaniaRoads_IsCopy(t *testing.T) {
	roads := builder.RomaniaRoads()
	roads[0].Weight = 1
	require.Equal(t, 71.0, builder.RomaniaRoads()[0].Weight)
}
