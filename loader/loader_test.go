package loader_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/loader"
)

func TestLoadFile_TOMLAndYAMLAgree(t *testing.T) {
	fromTOML, err := loader.LoadFile(filepath.Join("testdata", "diamond.toml"))
	require.NoError(t, err)
	fromYAML, err := loader.LoadFile(filepath.Join("testdata", "diamond.yaml"))
	require.NoError(t, err)
	require.Equal(t, fromTOML, fromYAML)

	require.Equal(t, "G", fromTOML.Goal)
	require.Len(t, fromTOML.Edges, 4)
	require.Equal(t, loader.Edge{From: "S", To: "A", Weight: 1}, fromTOML.Edges[0])
	require.Equal(t, map[string]float64{"S": 3, "A": 4, "B": 2, "G": 0}, fromTOML.Estimates)
}

func TestDocument_Graph(t *testing.T) {
	doc, err := loader.LoadFile(filepath.Join("testdata", "diamond.yaml"))
	require.NoError(t, err)

	g, err := doc.Graph()
	require.NoError(t, err)
	require.False(t, g.Directed())
	require.Equal(t, []string{"A", "B", "G", "S"}, g.Vertices())
	w, err := g.Weight("G", "B")
	require.NoError(t, err)
	require.Equal(t, 2.0, w)
}

func TestDocument_Heuristic(t *testing.T) {
	doc, err := loader.LoadFile(filepath.Join("testdata", "diamond.toml"))
	require.NoError(t, err)

	table, err := doc.Heuristic()
	require.NoError(t, err)
	require.Equal(t, "G", table.Goal())
	require.Equal(t, 2.0, table.Estimate("B"))

	h := heuristic.Euclidean(doc.Points())
	require.InDelta(t, 3.0, h("S", "G"), 1e-12)
}

func TestDocument_NoHeuristic(t *testing.T) {
	doc, err := loader.Decode(strings.NewReader("edges:\n  - {from: a, to: b, weight: 1}\n"), loader.YAML)
	require.NoError(t, err)
	table, err := doc.Heuristic()
	require.NoError(t, err)
	require.Nil(t, table)
	require.Nil(t, doc.Points())
}

func TestLoadFile_Romania(t *testing.T) {
	doc, err := loader.LoadFile(filepath.Join("testdata", "romania.yaml"))
	require.NoError(t, err)
	g, err := doc.Graph()
	require.NoError(t, err)
	require.Equal(t, 20, g.VertexCount())
	require.Equal(t, 24, g.EdgeCount())
	table, err := doc.Heuristic()
	require.NoError(t, err)
	require.Equal(t, 193.0, table.Estimate("Rimnicu Vilcea"))
}

func TestDecode_Errors(t *testing.T) {
	_, err := loader.FormatOf("graph.json")
	require.ErrorIs(t, err, loader.ErrUnknownFormat)
	_, err = loader.LoadFile("graph.json")
	require.ErrorIs(t, err, loader.ErrUnknownFormat)

	_, err = loader.Decode(strings.NewReader("goal: x\n"), loader.YAML)
	require.ErrorIs(t, err, loader.ErrNoEdges)

	_, err = loader.Decode(strings.NewReader("edges:\n  - {from: a, to: b, weight: 1}\nheuristic: {a: 1}\n"), loader.YAML)
	require.ErrorIs(t, err, loader.ErrNoGoal)

	_, err = loader.Decode(strings.NewReader("edges:\n  - {from: a, to: b, weight: 1}\ncoords: {a: [1]}\n"), loader.YAML)
	require.ErrorIs(t, err, loader.ErrBadCoords)

	_, err = loader.Decode(strings.NewReader("edges = ["), loader.TOML)
	require.Error(t, err)

	_, err = loader.Decode(strings.NewReader(""), loader.Format("xml"))
	require.ErrorIs(t, err, loader.ErrUnknownFormat)
}

func TestDocument_BadEdge(t *testing.T) {
	doc, err := loader.Decode(strings.NewReader("edges:\n  - {from: a, to: b, weight: -3}\n"), loader.YAML)
	require.NoError(t, err)
	_, err = doc.Graph()
	require.ErrorIs(t, err, core.ErrBadWeight)
}
