package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/loader"
)

// problem is a graph plus the heuristic used to complete annealing moves.
type problem struct {
	graph     *core.Graph
	heuristic heuristic.Func
	source    string
}

// loadProblem builds the graph named by opts and picks a heuristic for
// opts.Goal, preferring a hand-made table, then coordinates, then hop counts.
func loadProblem(opts *GlobalOptions, log logrus.FieldLogger) (*problem, error) {
	var (
		g      *core.Graph
		table  *heuristic.Table
		coords map[string]heuristic.Point
		source = "romania"
		err    error
	)

	if opts.GraphPath == "" {
		if g, err = builder.BuildGraph(nil, nil, builder.Romania()); err != nil {
			return nil, err
		}
		if table, err = builder.RomaniaHeuristic(); err != nil {
			return nil, err
		}
	} else {
		source = opts.GraphPath
		var doc *loader.Document
		if doc, err = loader.LoadFile(opts.GraphPath); err != nil {
			return nil, err
		}
		if g, err = doc.Graph(); err != nil {
			return nil, err
		}
		if table, err = doc.Heuristic(); err != nil {
			return nil, err
		}
		coords = doc.Points()
	}

	for _, id := range []string{opts.Start, opts.Goal} {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("vertex %q not in graph %s", id, source)
		}
	}

	p := &problem{graph: g, source: source}
	logger := log.WithFields(logrus.Fields{"graph": source, "goal": opts.Goal})
	reachable, err := bfs.Reachable(g, opts.Start, opts.Goal)
	if err != nil {
		return nil, err
	}
	if !reachable {
		logger.WithField("start", opts.Start).Warn("goal unreachable from start; every run will report no path")
	}
	switch {
	case table != nil && table.Goal() == opts.Goal:
		if p.heuristic, err = table.Bind(opts.Goal); err != nil {
			return nil, err
		}
		logger.WithField("entries", table.Len()).Debug("using heuristic table")
	case len(coords) > 0:
		p.heuristic = heuristic.Euclidean(coords)
		logger.Debug("using euclidean heuristic from coordinates")
	default:
		hops, err := heuristic.HopScaled(g, opts.Goal)
		if err != nil {
			return nil, err
		}
		if p.heuristic, err = hops.Bind(opts.Goal); err != nil {
			return nil, err
		}
		logger.Debug("using hop-count heuristic")
	}

	stats := g.Stats()
	logger.WithFields(logrus.Fields{
		"vertices": stats.VertexCount,
		"edges":    stats.EdgeCount,
		"isolated": stats.Isolated,
	}).Info("graph loaded")

	return p, nil
}
