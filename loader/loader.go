package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
)

// Format names a document encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates an extension or format name that is neither TOML nor YAML.
	ErrUnknownFormat = errors.New("loader: unknown document format")

	// ErrNoEdges indicates a document without edges.
	ErrNoEdges = errors.New("loader: document has no edges")

	// ErrBadCoords indicates a coordinate entry that is not an [x, y] pair.
	ErrBadCoords = errors.New("loader: coordinates must be [x, y]")

	// ErrNoGoal indicates heuristic values were given without a goal.
	ErrNoGoal = errors.New("loader: heuristic requires a goal")
)

// Edge is one weighted edge of a document.
type Edge struct {
	From   string  `toml:"from" yaml:"from"`
	To     string  `toml:"to" yaml:"to"`
	Weight float64 `toml:"weight" yaml:"weight"`
}

// Document is the decoded form of a graph file.
type Document struct {
	Directed  bool                 `toml:"directed" yaml:"directed"`
	Goal      string               `toml:"goal" yaml:"goal"`
	Edges     []Edge               `toml:"edges" yaml:"edges"`
	Estimates map[string]float64   `toml:"heuristic" yaml:"heuristic"`
	Coords    map[string][]float64 `toml:"coords" yaml:"coords"`
}

// FormatOf maps a file extension to its Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// LoadFile reads and validates the document at path.
func LoadFile(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}
	return doc, nil
}

// Decode reads one document in the given format and validates it.
func Decode(r io.Reader, format Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc Document
	switch format {
	case TOML:
		if _, err = toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
			return nil, fmt.Errorf("could not decode TOML: %w", err)
		}
	case YAML:
		if err = yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("could not decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err = doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) validate() error {
	if len(d.Edges) == 0 {
		return ErrNoEdges
	}
	if len(d.Estimates) > 0 && d.Goal == "" {
		return ErrNoGoal
	}
	for id, xy := range d.Coords {
		if len(xy) != 2 {
			return fmt.Errorf("%w: %q has %d values", ErrBadCoords, id, len(xy))
		}
	}
	return nil
}

// Graph builds a fresh graph from the document's edges in file order.
func (d *Document) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(d.Directed))
	for i, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("loader: edge #%d %s→%s: %w", i, e.From, e.To, err)
		}
	}
	return g, nil
}

// Heuristic returns the document's estimate table bound to its goal, or nil
// when the document carries none.
func (d *Document) Heuristic() (*heuristic.Table, error) {
	if len(d.Estimates) == 0 {
		return nil, nil
	}
	return heuristic.NewTable(d.Goal, d.Estimates)
}

// Points returns the document's coordinates, or nil when it has none.
func (d *Document) Points() map[string]heuristic.Point {
	if len(d.Coords) == 0 {
		return nil
	}
	pts := make(map[string]heuristic.Point, len(d.Coords))
	for id, xy := range d.Coords {
		pts[id] = heuristic.Point{X: xy[0], Y: xy[1]}
	}
	return pts
}
