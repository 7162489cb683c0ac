// Package search implements the two metaheuristic search cores — simulated
// annealing and tabu search — against a small state contract (§4.H of the
// design: a generic "state" capability set) rather than against any
// concrete project representation. pkg/prcpsp.ScheduleState is the only
// implementation shipped by this module, but any type satisfying State
// plugs in unmodified.
package search

import "context"

// Move identifies a neighborhood move: the position it was drawn at and
// the three activity ids it rotates. Index is what Commit uses to reapply
// the move; Triple is the key tabu search uses to decide whether a move is
// tabu.
type Move struct {
	Index  int
	Triple [3]int
}

// State is the capability set both search cores are written against:
// drawing a neighbor, committing a previously drawn move, reading the
// current cost, and two rendering projections. A state owns its own RNG so
// that neighbor generation is reproducible from a seed; Commit must fully
// restore the state's invariants before returning.
type State interface {
	// GetNeighbor draws a candidate move using the state's own RNG and
	// returns its cost without committing it. found is false if no
	// admissible move could be drawn within the implementation's attempt
	// budget (the NoMove signal).
	GetNeighbor() (cost int, move Move, found bool, err error)

	// Commit applies a previously drawn move and restores the state's
	// invariants.
	Commit(move Move) error

	// Cost returns the state's current objective value (makespan).
	Cost() int

	// String returns a human-readable projection of the state.
	String() string

	// Artifact returns a serialized rendering of the state (e.g. an SVG
	// Gantt chart).
	Artifact() string
}

// Cloner is implemented by states that can produce an independent
// best-so-far snapshot. Both search cores use it to keep a running best
// without aliasing the state they keep mutating.
type Cloner interface {
	Clone() State
}

// CancelFunc is checked at each outer-loop boundary (one SA temperature
// level, one TS iteration); when it returns true the search stops early
// and returns its best-so-far result and log.
type CancelFunc func(ctx context.Context) bool

func defaultCancel(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
