package localsearch

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
)

// SimulatedAnneal runs simulated annealing from a random start→goal walk and
// returns the cheapest path observed during the run, which need not be the
// final current path.
//
// Each iteration, while the temperature T is above TemperatureFloor and the
// iteration budget remains:
//
//  1. pick a uniform interior index i in [1, len-2];
//  2. pick a replacement uniformly among neighbors of path[i-1] other than
//     path[i] and path[i+1];
//  3. require the replacement to touch some vertex of path[i+1:];
//  4. complete path[:i] + [replacement] greedily by h toward the goal;
//  5. accept the candidate if Δ = cost(new) - cost(cur) < 0, otherwise with
//     probability exp(-Δ/T);
//  6. cool: T ← T·CoolingRate.
//
// A failure in steps 1-4 abandons the iteration without touching the current
// path; it still counts against the budget and still cools. A current path
// shorter than three vertices has no interior index, so every iteration is
// abandoned. The temperature strictly decreases, so the run always halts.
//
// If the initial walk dead-ends the result is (no path, 0 iterations).
func SimulatedAnneal(g *core.Graph, start, goal string, h heuristic.Func, opts ...Option) (Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = validateEndpoints(g, start, goal); err != nil {
		return Result{}, err
	}
	if h == nil {
		return Result{}, ErrNilHeuristic
	}

	rng := o.random()
	cur, err := randomWalk(g, start, goal, rng)
	if err != nil {
		return Result{}, err
	}
	if cur == nil {
		return noPath(0), nil
	}
	curCost, err := PathCost(g, cur)
	if err != nil {
		return Result{}, err
	}

	a := &annealer{g: g, goal: goal, h: h, rng: rng, cur: cur, curCost: curCost}
	a.best, a.bestCost = cur.Clone(), curCost

	temp := o.InitialTemperature
	it := 0
	for temp > o.TemperatureFloor && it < o.MaxIterations {
		it++

		outcome, err := a.step(temp)
		if err != nil {
			return Result{}, err
		}
		o.observe(Step{Iteration: it, Temperature: temp, Outcome: outcome, Cost: a.curCost, BestCost: a.bestCost})

		temp *= o.CoolingRate
	}

	return Result{Path: a.best, Cost: a.bestCost, Iterations: it, Found: true}, nil
}

// annealer holds the mutable state of one annealing run.
type annealer struct {
	g    *core.Graph
	goal string
	h    heuristic.Func
	rng  *rand.Rand

	cur     Path
	curCost float64

	best     Path
	bestCost float64
}

// step performs steps 1-5 of one iteration at temperature temp.
func (a *annealer) step(temp float64) (Outcome, error) {
	cand, err := a.neighbor()
	if err != nil || cand == nil {
		return Abandoned, err
	}
	candCost, err := PathCost(a.g, cand)
	if err != nil {
		return Abandoned, err
	}

	delta := candCost - a.curCost
	// The acceptance draw only happens for non-improving candidates.
	if !(delta < 0 || a.rng.Float64() < math.Exp(-delta/temp)) {
		return Rejected, nil
	}

	a.cur, a.curCost = cand, candCost
	if a.curCost < a.bestCost {
		a.best, a.bestCost = a.cur.Clone(), a.curCost
	}
	if delta < 0 {
		return Improved, nil
	}
	return Accepted, nil
}

// neighbor builds one perturbed, greedily completed candidate, or returns
// nil when this iteration has to be abandoned.
func (a *annealer) neighbor() (Path, error) {
	cur := a.cur
	if len(cur) < 3 {
		return nil, nil
	}
	i := 1 + a.rng.Intn(len(cur)-2)

	nbs, err := a.g.NeighborIDs(cur[i-1])
	if err != nil {
		return nil, fmt.Errorf("localsearch: anneal at %q: %w", cur[i-1], err)
	}
	alts := make([]string, 0, len(nbs))
	for _, n := range nbs {
		if n != cur[i] && n != cur[i+1] {
			alts = append(alts, n)
		}
	}
	if len(alts) == 0 {
		return nil, nil
	}
	repl := alts[a.rng.Intn(len(alts))]

	ok, err := touchesSuffix(a.g, repl, cur[i+1:])
	if err != nil || !ok {
		return nil, err
	}

	return greedyComplete(a.g, cur.Prefix(i).With(repl), a.goal, a.h)
}

// touchesSuffix reports whether v has a neighbor among suffix.
func touchesSuffix(g *core.Graph, v string, suffix Path) (bool, error) {
	nbs, err := g.NeighborIDs(v)
	if err != nil {
		return false, fmt.Errorf("localsearch: anneal at %q: %w", v, err)
	}
	for _, n := range nbs {
		if suffix.Contains(n) {
			return true, nil
		}
	}
	return false, nil
}
