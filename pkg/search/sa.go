package search

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/hashicorp/go-hclog"
)

// SAParams are the parameters of one simulated annealing run: an initial
// temperature, a geometric decrement factor applied once per outer level, a
// stop threshold, the number of inner iterations run at each level, and the
// seed for the acceptance-test RNG (kept separate from the state's own
// neighbor-drawing RNG, so acceptance draws never perturb neighbor draws or
// vice versa).
type SAParams struct {
	InitialTemperature float64
	Decrement          float64
	Epsilon            float64
	InnerIterations    int
	Seed               uint64
}

func (p SAParams) validate() error {
	if p.InitialTemperature <= 0 {
		return fmt.Errorf("%w: initial temperature must be positive, got %f", ErrParameterOutOfRange, p.InitialTemperature)
	}
	if p.Decrement <= 0 || p.Decrement >= 1 {
		return fmt.Errorf("%w: decrement must lie in (0,1), got %f", ErrParameterOutOfRange, p.Decrement)
	}
	if p.Epsilon <= 0 || p.Epsilon >= p.InitialTemperature {
		return fmt.Errorf("%w: epsilon must satisfy 0 < epsilon < initial temperature, got epsilon=%f T0=%f", ErrParameterOutOfRange, p.Epsilon, p.InitialTemperature)
	}
	if p.InnerIterations < 1 {
		return fmt.Errorf("%w: inner iterations must be >= 1, got %d", ErrParameterOutOfRange, p.InnerIterations)
	}
	return nil
}

// SimulatedAnnealing runs the best-tracking variant: current_state walks
// the neighborhood under the Metropolis criterion while a separate best
// snapshot, cloned from initial before the first level runs, is only ever
// replaced by strict improvement, observed once per outer temperature
// level. initial must also implement Cloner, since best must always be an
// independent copy and never alias current's underlying state.
//
// The acceptance probability is computed in float64 throughout (the Rust
// original uses f32); the wider type only reduces rounding noise near the
// exp(-delta/T) boundary and does not change which branch is taken for any
// delta and temperature representable in both.
//
// log lists the current (not best) cost observed at the end of every outer
// level, in level order, matching the source's logging cadence.
func SimulatedAnnealing(ctx context.Context, initial State, params SAParams, logger hclog.Logger, cancel CancelFunc) (best State, runLog []int, err error) {
	if err := params.validate(); err != nil {
		return nil, nil, err
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if cancel == nil {
		cancel = defaultCancel
	}
	logger = logger.Named("sa")

	cloner, ok := initial.(Cloner)
	if !ok {
		return nil, nil, fmt.Errorf("search: state %T does not implement Cloner, best-so-far tracking requires it", initial)
	}

	current := initial
	best = cloner.Clone()
	bestCost := initial.Cost()

	rng := rand.New(rand.NewSource(int64(params.Seed)))
	t := params.InitialTemperature
	level := 0

	for t > params.Epsilon {
		if cancel(ctx) {
			logger.Warn("canceled", "level", level)
			return best, runLog, nil
		}
		level++

		for n := 0; n < params.InnerIterations; n++ {
			cost, move, found, nerr := current.GetNeighbor()
			if nerr != nil {
				return nil, nil, nerr
			}
			if !found {
				break
			}
			delta := float64(cost - current.Cost())
			accept := delta <= 0
			if !accept {
				r := rng.Float64()
				accept = r < math.Exp(-delta/t)
			}
			if accept {
				if err := current.Commit(move); err != nil {
					return nil, nil, err
				}
			}
		}

		currentCost := current.Cost()
		if currentCost < bestCost {
			best = cloner.Clone()
			bestCost = currentCost
		}

		logger.Debug("level complete", "level", level, "temperature", t, "cost", currentCost, "best", bestCost)
		runLog = append(runLog, currentCost)
		t *= params.Decrement
	}

	return best, runLog, nil
}
