package prcpsp

import "github.com/rodrigofvc/ts-sa-prcpsp/pkg/search"

// GetNeighbor adapts DrawNeighbor to the search.State contract, translating
// the richer Neighbor result into a search.Move.
func (s *ScheduleState) GetNeighbor() (int, search.Move, bool, error) {
	n, err := s.DrawNeighbor()
	if err != nil {
		return 0, search.Move{}, false, err
	}
	if !n.Found {
		return 0, search.Move{}, false, nil
	}
	return n.Cost, search.Move{Index: n.Index, Triple: n.Triple}, true, nil
}

// Commit adapts commitIndex to the search.State contract.
func (s *ScheduleState) Commit(move search.Move) error {
	return s.commitIndex(move.Index)
}

// Cost returns the state's current makespan.
func (s *ScheduleState) Cost() int { return s.Makespan() }

// Clone satisfies search.Cloner, returning an independent best-so-far
// snapshot.
func (s *ScheduleState) Clone() search.State { return s.deepCopy() }
