package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeState models a trivial 1-D hill: cost equals |position|, and each
// GetNeighbor call proposes a step right, then left, alternately (a toggle,
// no RNG). It exists purely to exercise the search cores' control flow
// without depending on pkg/prcpsp.
type fakeState struct {
	pos    int
	toggle bool
}

func (f *fakeState) GetNeighbor() (int, Move, bool, error) {
	delta := 1
	if f.toggle {
		delta = -1
	}
	f.toggle = !f.toggle
	return abs(f.pos + delta), Move{Index: delta}, true, nil
}

func (f *fakeState) Commit(move Move) error {
	f.pos += move.Index
	return nil
}

func (f *fakeState) Cost() int       { return abs(f.pos) }
func (f *fakeState) String() string  { return "" }
func (f *fakeState) Artifact() string { return "" }
func (f *fakeState) Clone() State    { c := *f; return &c }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestSAParamsValidation(t *testing.T) {
	cases := []SAParams{
		{InitialTemperature: 0, Decrement: 0.9, Epsilon: 0.1, InnerIterations: 1},
		{InitialTemperature: 10, Decrement: 1.1, Epsilon: 0.1, InnerIterations: 1},
		{InitialTemperature: 10, Decrement: 0.9, Epsilon: 20, InnerIterations: 1},
		{InitialTemperature: 10, Decrement: 0.9, Epsilon: 0.1, InnerIterations: 0},
	}
	for _, c := range cases {
		_, _, err := SimulatedAnnealing(context.Background(), &fakeState{}, c, nil, nil)
		require.True(t, errors.Is(err, ErrParameterOutOfRange))
	}
}

func TestSADeterministicInSeed(t *testing.T) {
	params := SAParams{InitialTemperature: 100, Decrement: 0.95, Epsilon: 0.01, InnerIterations: 50, Seed: 42}

	best1, _, err := SimulatedAnnealing(context.Background(), &fakeState{pos: 20}, params, nil, nil)
	require.NoError(t, err)

	best2, _, err := SimulatedAnnealing(context.Background(), &fakeState{pos: 20}, params, nil, nil)
	require.NoError(t, err)

	require.Equal(t, best1.Cost(), best2.Cost())
}

func TestSABestIsMonotoneNonIncreasing(t *testing.T) {
	params := SAParams{InitialTemperature: 50, Decrement: 0.9, Epsilon: 0.5, InnerIterations: 20, Seed: 1}
	best, log, err := SimulatedAnnealing(context.Background(), &fakeState{pos: 30}, params, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, log)

	minLogged := log[0]
	for _, cost := range log[1:] {
		if cost < minLogged {
			minLogged = cost
		}
	}
	require.GreaterOrEqual(t, minLogged, best.Cost())
}

func TestSACancelReturnsPartial(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	params := SAParams{InitialTemperature: 100, Decrement: 0.9, Epsilon: 0.01, InnerIterations: 10, Seed: 1}
	best, log, err := SimulatedAnnealing(ctx, &fakeState{pos: 5}, params, nil, func(ctx context.Context) bool {
		return true
	})
	require.NoError(t, err)
	require.Empty(t, log)
	require.NotNil(t, best)
}
