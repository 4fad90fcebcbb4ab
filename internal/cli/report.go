package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsearch/localsearch"
)

// formatCost renders a cost with thousands separators, "unreachable" for +Inf.
func formatCost(c float64) string {
	if math.IsInf(c, 1) {
		return "unreachable"
	}
	return humanize.Commaf(c)
}

// printResult writes the best result of a batch and how many runs succeeded.
func printResult(out io.Writer, label string, best localsearch.Result, all []localsearch.Result) {
	found := 0
	for _, r := range all {
		if r.Found {
			found++
		}
	}
	fmt.Fprintf(out, "%s: %s\n", label, best.Path)
	fmt.Fprintf(out, "  cost:       %s\n", formatCost(best.Cost))
	fmt.Fprintf(out, "  iterations: %s\n", humanize.Comma(int64(best.Iterations)))
	fmt.Fprintf(out, "  found:      %d/%d runs\n", found, len(all))
}

// printGap writes how far cost lies above the optimum, in percent.
func printGap(out io.Writer, label string, cost, optimum float64) {
	if math.IsInf(cost, 1) || optimum <= 0 {
		fmt.Fprintf(out, "  %-10s gap: n/a\n", label)
		return
	}
	gap := (cost - optimum) / optimum * 100
	fmt.Fprintf(out, "  %-10s gap: %s%%\n", label, humanize.FtoaWithDigits(gap, 2))
}

// stepLogger traces every search iteration at debug level.
func stepLogger(log logrus.FieldLogger, search string) func(localsearch.Step) {
	entry := log.WithField("search", search)
	return func(s localsearch.Step) {
		entry.WithFields(logrus.Fields{
			"iteration":   s.Iteration,
			"temperature": s.Temperature,
			"outcome":     s.Outcome.String(),
			"cost":        s.Cost,
			"best":        s.BestCost,
		}).Debug("step")
	}
}
