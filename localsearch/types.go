package localsearch

import (
	"errors"
	"math"
)

// Sentinel errors. Configuration errors are returned before any search work
// starts; a search that merely fails to reach the goal is not an error.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("localsearch: graph is nil")

	// ErrStartNotFound indicates the start vertex is empty or absent.
	ErrStartNotFound = errors.New("localsearch: start vertex not found")

	// ErrGoalNotFound indicates the goal vertex is empty or absent.
	ErrGoalNotFound = errors.New("localsearch: goal vertex not found")

	// ErrNilRand indicates a nil random source was supplied.
	ErrNilRand = errors.New("localsearch: random source is nil")

	// ErrNilHeuristic indicates simulated annealing was given no heuristic.
	ErrNilHeuristic = errors.New("localsearch: heuristic is nil")

	// ErrMissingEdge indicates a path uses a pair of vertices that is not an
	// edge. It always points at a path-construction bug.
	ErrMissingEdge = errors.New("localsearch: path uses a missing edge")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("localsearch: invalid option supplied")

	// ErrBadRuns indicates MultiStart was asked for no runs or no workers.
	ErrBadRuns = errors.New("localsearch: runs and workers must be positive")
)

// Result is the outcome of one search run.
//
// A run that never produced a start→goal path has Found == false,
// Path == nil and Cost == +Inf. Iterations counts loop iterations consumed,
// including abandoned ones; it is 0 when the initial walk failed.
type Result struct {
	Path       Path
	Cost       float64
	Iterations int
	Found      bool
}

func noPath(iterations int) Result {
	return Result{Cost: math.Inf(1), Iterations: iterations}
}

// Outcome classifies what one search iteration did.
type Outcome int

const (
	// Improved: a strictly cheaper candidate replaced the current path.
	Improved Outcome = iota
	// Accepted: an equal or costlier candidate replaced the current path.
	Accepted
	// Rejected: a complete candidate was built but not taken.
	Rejected
	// Abandoned: no candidate could be built this iteration.
	Abandoned
	// Converged: hill climbing found no improving neighbor and stopped.
	Converged
)

var outcomeNames = [...]string{"improved", "accepted", "rejected", "abandoned", "converged"}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Step reports one finished iteration to an observer.
// Temperature is the value the iteration ran at (0 for hill climbing).
type Step struct {
	Iteration   int
	Temperature float64
	Outcome     Outcome
	Cost        float64 // cost of the current path after the iteration
	BestCost    float64 // cheapest cost seen so far in the run
}
