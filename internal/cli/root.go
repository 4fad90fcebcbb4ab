// Package cli implements the lvsearch command line.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the lvsearch command tree. Logs go to the command's
// error stream, results to its output stream.
func NewRootCommand() *cobra.Command {
	opts := &GlobalOptions{}
	log := logrus.New()

	cmd := &cobra.Command{
		Use:   "lvsearch",
		Short: "Heuristic local search for start-to-goal routes in weighted graphs",
		Long: `lvsearch finds routes between two vertices of a weighted graph with
stochastic local search: goal-biased random walks, steepest-descent hill
climbing, and simulated annealing with heuristic-guided completion.

Without --graph the classic Romania road map is searched.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.LogLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			log.SetOutput(cmd.ErrOrStderr())
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			return opts.Validate()
		},
	}
	opts.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newRandomCommand(opts, log),
		newHillCommand(opts, log),
		newAnnealCommand(opts, log),
		newCompareCommand(opts, log),
	)
	return cmd
}
