package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTSParamsValidation(t *testing.T) {
	cases := []TSParams{
		{Tenure: 0, Neighbors: 1, Iterations: 1},
		{Tenure: 1, Neighbors: 0, Iterations: 1},
		{Tenure: 1, Neighbors: 1, Iterations: 0},
	}
	for _, c := range cases {
		_, _, err := TabuSearch(context.Background(), &fakeState{}, c, nil, nil)
		require.True(t, errors.Is(err, ErrParameterOutOfRange))
	}
}

func TestTSBestNeverWorseThanInitial(t *testing.T) {
	params := TSParams{Tenure: 5, Neighbors: 3, Iterations: 100}
	initial := &fakeState{pos: 30}
	initialCost := initial.Cost()

	best, _, err := TabuSearch(context.Background(), initial, params, nil, nil)
	require.NoError(t, err)
	require.LessOrEqual(t, best.Cost(), initialCost)
}

func TestTSLogHasAtMostOneEntryPerIteration(t *testing.T) {
	params := TSParams{Tenure: 3, Neighbors: 2, Iterations: 50}
	_, log, err := TabuSearch(context.Background(), &fakeState{pos: 10}, params, nil, nil)
	require.NoError(t, err)
	require.LessOrEqual(t, len(log), params.Iterations)
}

func TestTSCancelReturnsPartial(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	params := TSParams{Tenure: 5, Neighbors: 3, Iterations: 100}
	best, log, err := TabuSearch(ctx, &fakeState{pos: 5}, params, nil, func(ctx context.Context) bool {
		return true
	})
	require.NoError(t, err)
	require.Empty(t, log)
	require.NotNil(t, best)
}

func TestRemoveMatchingRemovesOnlyFirstMatch(t *testing.T) {
	list := []TabuMove{
		{Triple: [3]int{1, 2, 3}, RemainingTenure: 2},
		{Triple: [3]int{1, 2, 3}, RemainingTenure: 4},
	}
	out := removeMatching(list, [3]int{3, 2, 1})
	require.Len(t, out, 1)
	require.Equal(t, 4, out[0].RemainingTenure)
}

func TestIsTabuIgnoresExpiredRecords(t *testing.T) {
	list := []TabuMove{{Triple: [3]int{1, 2, 3}, RemainingTenure: 0}}
	require.False(t, isTabu(list, [3]int{1, 2, 3}))
}

// scriptedState replays a fixed sequence of neighbor draws, letting a test
// pin down exactly which candidate bestAdmissibleNeighbor sees first.
type scriptedState struct {
	cost  int
	costs map[int]int
	queue []Move
	i     int
}

func (s *scriptedState) GetNeighbor() (int, Move, bool, error) {
	if s.i >= len(s.queue) {
		return 0, Move{}, false, nil
	}
	m := s.queue[s.i]
	s.i++
	return s.costs[m.Index], m, true, nil
}

func (s *scriptedState) Commit(move Move) error {
	s.cost = s.costs[move.Index]
	return nil
}

func (s *scriptedState) Cost() int        { return s.cost }
func (s *scriptedState) String() string   { return "" }
func (s *scriptedState) Artifact() string { return "" }
func (s *scriptedState) Clone() State {
	c := *s
	return &c
}

// TestBestAdmissibleNeighborRejectsNonAspirationalTabuFirstDraw reproduces
// the committed-move tabu-respect invariant directly against the first
// candidate drawn: if the only admissible-looking neighbor offered is tabu
// and does not beat the best-so-far cost, bestAdmissibleNeighbor must not
// hand it back as a move to commit, even though it is the first draw.
func TestBestAdmissibleNeighborRejectsNonAspirationalTabuFirstDraw(t *testing.T) {
	state := &scriptedState{
		cost:  10,
		costs: map[int]int{1: 9},
		queue: []Move{{Index: 1, Triple: [3]int{1, 2, 3}}},
	}
	tabuList := []TabuMove{{Triple: [3]int{1, 2, 3}, RemainingTenure: 2}}

	_, found, err := bestAdmissibleNeighbor(state, 1, tabuList, 5, 0)
	require.NoError(t, err)
	require.False(t, found, "a tabu, non-aspirational first draw must never be returned as the move to commit")
}

// TestBestAdmissibleNeighborAcceptsAspirationalTabuFirstDraw checks the
// companion case: the same tabu first draw is admissible under aspiration
// because its cost beats the best-so-far cost.
func TestBestAdmissibleNeighborAcceptsAspirationalTabuFirstDraw(t *testing.T) {
	state := &scriptedState{
		cost:  10,
		costs: map[int]int{1: 3},
		queue: []Move{{Index: 1, Triple: [3]int{1, 2, 3}}},
	}
	tabuList := []TabuMove{{Triple: [3]int{1, 2, 3}, RemainingTenure: 2}}

	candidate, found, err := bestAdmissibleNeighbor(state, 1, tabuList, 5, 0)
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, candidate.aspirational)
	require.Equal(t, [3]int{1, 2, 3}, candidate.triple)
}
