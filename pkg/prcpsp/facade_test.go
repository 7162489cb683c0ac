package prcpsp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rodrigofvc/ts-sa-prcpsp/pkg/search"
)

var (
	_ search.State  = (*ScheduleState)(nil)
	_ search.Cloner = (*ScheduleState)(nil)
)

func TestFacadeCommitAppliesDrawnMove(t *testing.T) {
	p := benchmarkProject(t, 5)
	s, err := NewInitialState(p, 11)
	require.NoError(t, err)

	cost, move, found, err := s.GetNeighbor()
	require.NoError(t, err)
	if !found {
		t.Skip("no admissible neighbor drawn for this seed")
	}

	require.NoError(t, s.Commit(move))
	require.Equal(t, cost, s.Cost())
}

func TestFacadeCloneSatisfiesState(t *testing.T) {
	p := benchmarkProject(t, 5)
	s, err := NewInitialState(p, 11)
	require.NoError(t, err)

	var snapshot search.State = s.Clone()
	require.Equal(t, s.Cost(), snapshot.Cost())
	require.Equal(t, s.String(), snapshot.String())
}
