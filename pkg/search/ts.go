package search

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// TabuMove is one short-term-memory record: the unordered triple of
// activity ids a committed move rotated, and how many more iterations it
// remains forbidden.
type TabuMove struct {
	Triple         [3]int
	RemainingTenure int
}

func (m TabuMove) matches(triple [3]int) bool {
	return sameTripleSet(m.Triple, triple)
}

func sameTripleSet(a, b [3]int) bool {
	for _, x := range a {
		found := false
		for _, y := range b {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// TSParams are the parameters of one tabu search run: tenure, the neighbor
// sample size drawn per iteration, and the total iteration budget. The
// acceptance-test RNG of SA has no counterpart here; all randomness comes
// from the state's own neighbor-drawing RNG, inherited from how it was
// constructed.
type TSParams struct {
	Tenure     int
	Neighbors  int
	Iterations int

	// PlateauEscapeLimit bounds the defensive draw loop of step 2 (forcing
	// progress off a plateau of same-cost candidates). Zero selects a
	// default proportional to Neighbors.
	PlateauEscapeLimit int
}

func (p TSParams) validate() error {
	if p.Tenure < 1 {
		return fmt.Errorf("%w: tabu tenure must be >= 1, got %d", ErrParameterOutOfRange, p.Tenure)
	}
	if p.Neighbors < 1 {
		return fmt.Errorf("%w: neighbor sample size must be >= 1, got %d", ErrParameterOutOfRange, p.Neighbors)
	}
	if p.Iterations < 1 {
		return fmt.Errorf("%w: iteration budget must be >= 1, got %d", ErrParameterOutOfRange, p.Iterations)
	}
	return nil
}

// TabuSearch runs the diversification variant: a best ("optimum") snapshot
// is updated whenever the committed move strictly improves on it, and the
// tabu list's aspiration criterion is checked against that same best cost
// rather than the current cost.
//
// log lists the current (not best) cost observed after every committed
// iteration, matching the source's logging cadence.
func TabuSearch(ctx context.Context, initial State, params TSParams, logger hclog.Logger, cancel CancelFunc) (best State, runLog []int, err error) {
	if err := params.validate(); err != nil {
		return nil, nil, err
	}
	cloner, ok := initial.(Cloner)
	if !ok {
		return nil, nil, fmt.Errorf("search: state %T does not implement Cloner, tabu search requires a best-so-far snapshot", initial)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if cancel == nil {
		cancel = defaultCancel
	}
	logger = logger.Named("ts")

	plateauLimit := params.PlateauEscapeLimit
	if plateauLimit == 0 {
		plateauLimit = 8 * params.Neighbors
	}

	current := initial
	best = cloner.Clone()
	bestCost := best.Cost()

	var tabuList []TabuMove

	for iter := 0; iter < params.Iterations; iter++ {
		if cancel(ctx) {
			logger.Warn("canceled", "iteration", iter)
			return best, runLog, nil
		}

		move, foundAny, merr := bestAdmissibleNeighbor(current, params.Neighbors, tabuList, bestCost, plateauLimit)
		if merr != nil {
			return nil, nil, merr
		}
		if !foundAny {
			logger.Debug("no move, skipping iteration", "iteration", iter)
			continue
		}

		if move.aspirational && isTabu(tabuList, move.triple) {
			tabuList = removeMatching(tabuList, move.triple)
		}

		if err := current.Commit(move.move); err != nil {
			return nil, nil, err
		}

		currentCost := current.Cost()
		if currentCost < bestCost {
			best = cloner.Clone()
			bestCost = currentCost
		}

		runLog = append(runLog, currentCost)
		tabuList = decrementTenure(tabuList)
		tabuList = append(tabuList, TabuMove{Triple: move.triple, RemainingTenure: params.Tenure})

		logger.Debug("iteration complete", "iteration", iter, "cost", currentCost, "best", bestCost, "tabu_size", len(tabuList))
	}

	return best, runLog, nil
}

type candidateMove struct {
	move         Move
	triple       [3]int
	cost         int
	aspirational bool
}

// bestAdmissibleNeighbor implements §4.G step 1 and 2: sample up to
// neighbors admissible candidates (deduplicated by move index) within an
// attempt budget of neighbors + ceil(neighbors/2) raw draws, tracking the
// lowest-cost one (a later draw that ties the current cost never displaces
// an earlier one, and the chosen candidate may cost more than the current
// state); if the chosen candidate ties the current cost, keep drawing fresh
// neighbors (bounded by plateauLimit) until a different-cost one turns up.
// The tabu/aspiration check applies uniformly to every draw, including the first — a tabu,
// non-aspirational candidate can never become best, whichever draw it is.
func bestAdmissibleNeighbor(state State, neighbors int, tabuList []TabuMove, bestCost int, plateauLimit int) (candidateMove, bool, error) {
	currentCost := state.Cost()

	var best candidateMove
	haveBest := false

	attempts := neighbors + (neighbors+1)/2
	checked := map[int]bool{}
	admissibleLeft := neighbors

	for admissibleLeft > 0 && attempts > 0 {
		attempts--
		cost, move, found, err := state.GetNeighbor()
		if err != nil {
			return candidateMove{}, false, err
		}
		if !found {
			break
		}
		if checked[move.Index] {
			continue
		}
		checked[move.Index] = true

		tabu := isTabu(tabuList, move.Triple)
		if tabu {
			if cost >= bestCost {
				admissibleLeft--
				continue
			}
			if !haveBest || cost < best.cost {
				best = candidateMove{move: move, triple: move.Triple, cost: cost, aspirational: true}
				haveBest = true
			}
		} else if !haveBest || (cost < best.cost && cost != currentCost) {
			best = candidateMove{move: move, triple: move.Triple, cost: cost, aspirational: cost < bestCost}
			haveBest = true
		}
		admissibleLeft--
	}

	if !haveBest {
		return candidateMove{}, false, nil
	}

	for i := 0; best.cost == currentCost && i < plateauLimit; i++ {
		cost, move, found, err := state.GetNeighbor()
		if err != nil {
			return candidateMove{}, false, err
		}
		if !found {
			break
		}
		if isTabu(tabuList, move.Triple) && cost >= bestCost {
			continue
		}
		best = candidateMove{move: move, triple: move.Triple, cost: cost, aspirational: cost < bestCost}
	}

	return best, true, nil
}

func isTabu(tabuList []TabuMove, triple [3]int) bool {
	for _, m := range tabuList {
		if m.RemainingTenure > 0 && m.matches(triple) {
			return true
		}
	}
	return false
}

func removeMatching(tabuList []TabuMove, triple [3]int) []TabuMove {
	out := make([]TabuMove, 0, len(tabuList))
	removed := false
	for _, m := range tabuList {
		if !removed && m.matches(triple) {
			removed = true
			continue
		}
		out = append(out, m)
	}
	return out
}

func decrementTenure(tabuList []TabuMove) []TabuMove {
	out := make([]TabuMove, 0, len(tabuList))
	for _, m := range tabuList {
		if m.RemainingTenure-1 > 0 {
			m.RemainingTenure--
			out = append(out, m)
		}
	}
	return out
}
