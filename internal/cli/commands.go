package cli

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/localsearch"
)

func newRandomCommand(opts *GlobalOptions, log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Generate a goal-biased random path",
		Long: `Walk from --start toward --goal, stepping straight to the goal when it is
adjacent and to a random unvisited neighbor otherwise. With --restarts the
cheapest of several walks is reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProblem(opts, log)
			if err != nil {
				return err
			}
			walk := func(rng *rand.Rand) (localsearch.Result, error) {
				path, err := localsearch.RandomPath(p.graph, opts.Start, opts.Goal, rng)
				if err != nil || path == nil {
					return localsearch.Result{Cost: math.Inf(1)}, err
				}
				cost, err := localsearch.PathCost(p.graph, path)
				if err != nil {
					return localsearch.Result{}, err
				}
				return localsearch.Result{Path: path, Cost: cost, Found: true}, nil
			}

			best, all, err := localsearch.MultiStart(cmd.Context(), opts.Restarts, opts.Workers, opts.Seed, walk)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), "random", best, all)
			return nil
		},
	}
}

func newHillCommand(opts *GlobalOptions, log *logrus.Logger) *cobra.Command {
	search := &SearchOptions{}
	cmd := &cobra.Command{
		Use:   "hill",
		Short: "Run steepest-descent hill climbing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProblem(opts, log)
			if err != nil {
				return err
			}
			best, all, err := runHill(cmd.Context(), p, opts, search, log)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), "hill", best, all)
			return nil
		},
	}
	search.AddFlags(cmd.Flags())
	return cmd
}

func newAnnealCommand(opts *GlobalOptions, log *logrus.Logger) *cobra.Command {
	search := &SearchOptions{}
	cmd := &cobra.Command{
		Use:   "anneal",
		Short: "Run simulated annealing with heuristic-guided completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProblem(opts, log)
			if err != nil {
				return err
			}
			best, all, err := runAnneal(cmd.Context(), p, opts, search, log)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), "anneal", best, all)
			return nil
		},
	}
	search.AddFlags(cmd.Flags())
	return cmd
}

func newCompareCommand(opts *GlobalOptions, log *logrus.Logger) *cobra.Command {
	search := &SearchOptions{}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run both searches and report their gap to the shortest path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProblem(opts, log)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			path, optimum, err := dijkstra.ShortestPath(p.graph, opts.Start, opts.Goal)
			if err != nil {
				return fmt.Errorf("shortest path: %w", err)
			}
			fmt.Fprintf(out, "dijkstra: %s\n  cost:       %s\n", localsearch.Path(path), formatCost(optimum))

			hill, hillAll, err := runHill(cmd.Context(), p, opts, search, log)
			if err != nil {
				return err
			}
			printResult(out, "hill", hill, hillAll)

			anneal, annealAll, err := runAnneal(cmd.Context(), p, opts, search, log)
			if err != nil {
				return err
			}
			printResult(out, "anneal", anneal, annealAll)

			fmt.Fprintln(out, "optimality:")
			printGap(out, "hill", hill.Cost, optimum)
			printGap(out, "anneal", anneal.Cost, optimum)
			return nil
		},
	}
	search.AddFlags(cmd.Flags())
	return cmd
}

func runHill(ctx context.Context, p *problem, opts *GlobalOptions, search *SearchOptions, log logrus.FieldLogger) (localsearch.Result, []localsearch.Result, error) {
	fn := localsearch.HillClimbFunc(p.graph, opts.Start, opts.Goal, search.searchOptions(stepLogger(log, "hill"))...)
	best, all, err := localsearch.MultiStart(ctx, opts.Restarts, opts.Workers, opts.Seed, fn)
	if err != nil {
		return best, nil, err
	}
	log.WithFields(logrus.Fields{"search": "hill", "runs": len(all), "cost": best.Cost}).Info("search finished")
	return best, all, nil
}

func runAnneal(ctx context.Context, p *problem, opts *GlobalOptions, search *SearchOptions, log logrus.FieldLogger) (localsearch.Result, []localsearch.Result, error) {
	fn := localsearch.AnnealFunc(p.graph, opts.Start, opts.Goal, p.heuristic, search.searchOptions(stepLogger(log, "anneal"))...)
	best, all, err := localsearch.MultiStart(ctx, opts.Restarts, opts.Workers, opts.Seed, fn)
	if err != nil {
		return best, nil, err
	}
	log.WithFields(logrus.Fields{"search": "anneal", "runs": len(all), "cost": best.Cost}).Info("search finished")
	return best, all, nil
}
