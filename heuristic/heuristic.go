// Package heuristic provides remaining-cost estimates that bias local search
// toward a goal vertex.
//
// An estimate only steers choices; it never has to be admissible. The
// searches take a Func, parameterized by the goal, so the same heuristic can
// serve any goal it knows how to estimate for. Goal-bound lookup tables are
// wrapped by Table, whose Bind refuses to serve a goal it was not built for.
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Sentinel errors for heuristic construction.
var (
	// ErrEmptyGoal indicates a table was built without a goal.
	ErrEmptyGoal = errors.New("heuristic: goal is empty")

	// ErrBadEstimate indicates a negative or NaN estimate.
	ErrBadEstimate = errors.New("heuristic: estimate must be non-negative")

	// ErrGoalMismatch indicates a table was bound to a goal other than its own.
	ErrGoalMismatch = errors.New("heuristic: table built for a different goal")
)

// Func estimates the remaining cost from node to goal.
// Unknown nodes should report +Inf so they sort last.
type Func func(node, goal string) float64

// Zero is the uninformed heuristic: every estimate is 0.
func Zero(string, string) float64 { return 0 }

// Table is a lookup table of estimates toward one fixed goal.
// It is immutable after construction and safe for concurrent reads.
type Table struct {
	goal   string
	values map[string]float64
}

// NewTable copies values into a Table bound to goal.
//
// Errors:
//   - ErrEmptyGoal:   goal == "".
//   - ErrBadEstimate: any value < 0 or NaN (+Inf is allowed: "unknown").
func NewTable(goal string, values map[string]float64) (*Table, error) {
	if goal == "" {
		return nil, ErrEmptyGoal
	}
	cp := make(map[string]float64, len(values))
	for node, v := range values {
		if v < 0 || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: %q=%v", ErrBadEstimate, node, v)
		}
		cp[node] = v
	}

	return &Table{goal: goal, values: cp}, nil
}

// Goal returns the goal this table estimates toward.
func (t *Table) Goal() string { return t.goal }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.values) }

// Estimate returns the stored estimate for node, or +Inf when absent.
func (t *Table) Estimate(node string) float64 {
	if v, ok := t.values[node]; ok {
		return v
	}
	return math.Inf(1)
}

// Nodes returns the table's node IDs in ascending order.
func (t *Table) Nodes() []string {
	ids := make([]string, 0, len(t.values))
	for id := range t.values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Bind returns a Func serving estimates toward goal.
// The returned Func reports +Inf if later asked about another goal.
func (t *Table) Bind(goal string) (Func, error) {
	if goal != t.goal {
		return nil, fmt.Errorf("%w: table goal %q, requested %q", ErrGoalMismatch, t.goal, goal)
	}

	return func(node, g string) float64 {
		if g != t.goal {
			return math.Inf(1)
		}
		return t.Estimate(node)
	}, nil
}
