package prcpsp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRotateThreeAtS3 reproduces S3: rotating the triple at index i=4 of
// S1's planning — positions (3,4,5), activities (4,5,6) — into (6,4,5),
// and checks the rebuilt schedule still satisfies I2 (precedence) and the
// rotated triple is mutually precedence-independent per S3's
// admissibility note.
func TestRotateThreeAtS3(t *testing.T) {
	p := benchmarkProject(t, 5)
	s, err := NewInitialState(p, 11)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 8, 7, 9}, s.Planning())

	require.True(t, s.project.admissible(4, 5, 6))

	require.NoError(t, s.commitIndex(4))
	require.Equal(t, []int{1, 2, 3, 6, 4, 5, 8, 7, 9}, s.Planning())
	require.GreaterOrEqual(t, s.Makespan(), 10)

	for i, id := range s.Planning() {
		a, ok := s.Project().Activity(id)
		require.True(t, ok)
		for _, pred := range a.Predecessors {
			predIdx := indexOf(s.Planning(), pred)
			require.GreaterOrEqual(t, predIdx, 0)
			require.Less(t, predIdx, i)
			predActivity, _ := s.Project().Activity(pred)
			require.LessOrEqual(t, s.Times()[predIdx]+predActivity.Duration, s.Times()[i])
		}
	}
}

func indexOf(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}

func TestAdmissibleRejectsPrecedenceAdjacentTriple(t *testing.T) {
	p := benchmarkProject(t, 5)
	require.False(t, p.admissible(2, 6, 7))
}

func TestDrawNeighborNeverReturnsAdjacentTriple(t *testing.T) {
	p := benchmarkProject(t, 5)
	s, err := NewInitialState(p, 11)
	require.NoError(t, err)

	for seed := 0; seed < 20; seed++ {
		s.rng.Seed(int64(seed))
		n, err := s.DrawNeighbor()
		require.NoError(t, err)
		if !n.Found {
			continue
		}
		require.True(t, s.project.admissible(n.Triple[0], n.Triple[1], n.Triple[2]))
	}
}
