package prcpsp

// MaxNeighborAttempts bounds how many random interior indices rotate-three
// will draw before giving up and returning a Neighbor with Found false (no
// error is returned in that case).
const MaxNeighborAttempts = 64

// Neighbor is the result of a rotate-three draw: the makespan of the
// candidate schedule, the position it was drawn at, and the three rotated
// activity ids. Found is false when no admissible triple could be drawn
// within the attempt budget, in which case the other fields are zero.
type Neighbor struct {
	Cost   int
	Index  int
	Triple [3]int
	Found  bool
}

// admissible reports whether none of a, b, c is a direct predecessor or
// successor of either of the other two, i.e. the induced subgraph on
// {a,b,c} has no arc.
func (p *Project) admissible(a, b, c int) bool {
	trip := [3]int{a, b, c}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}
			ai, _ := p.Activity(trip[i])
			if containsInt(ai.Successors, trip[j]) || containsInt(ai.Predecessors, trip[j]) {
				return false
			}
		}
	}
	return true
}

// DrawNeighbor draws a uniformly random interior index i in [2, n-3]
// (0-based) from the state's own RNG, and checks whether the three
// activities around it — planning[i-1], planning[i], planning[i+1] — are
// mutually precedence-independent. If so it builds the candidate sequence
// with those three positions left-rotated to (r, p, q), rebuilds a cloned
// project against it, and returns the candidate's makespan, the drawn
// index, and the rotated triple. If no admissible index is drawn within
// MaxNeighborAttempts draws, it returns a Neighbor with Found false.
//
// DrawNeighbor mutates the state's own RNG (one draw per attempt); it
// never mutates the committed planning, times, or project.
func (s *ScheduleState) DrawNeighbor() (Neighbor, error) {
	n := len(s.planning)
	if n < 5 {
		return Neighbor{}, nil
	}
	lo, hi := 2, n-3
	if lo > hi {
		return Neighbor{}, nil
	}
	span := hi - lo + 1

	for attempt := 0; attempt < MaxNeighborAttempts; attempt++ {
		i := lo + s.rng.Intn(span)
		p := s.planning[i-1]
		q := s.planning[i]
		r := s.planning[i+1]
		if !s.project.admissible(p, q, r) {
			continue
		}

		candidatePlanning := append([]int(nil), s.planning...)
		candidatePlanning[i-1] = r
		candidatePlanning[i] = p
		candidatePlanning[i+1] = q

		candidate := &ScheduleState{
			project:  s.project.Clone(),
			planning: candidatePlanning,
			times:    append([]int(nil), s.times...),
			rng:      s.rng,
			seed:     s.seed,
		}
		if err := candidate.rebuild(); err != nil {
			return Neighbor{}, err
		}

		return Neighbor{
			Cost:   candidate.Makespan(),
			Index:  i,
			Triple: [3]int{p, q, r},
			Found:  true,
		}, nil
	}

	return Neighbor{}, nil
}

// commitIndex applies the left-rotation at the given index (as produced by
// a prior DrawNeighbor draw) to the state's own planning sequence and
// rebuilds it, restoring invariants I2-I4.
func (s *ScheduleState) commitIndex(index int) error {
	if index < 1 || index+1 >= len(s.planning) {
		return nil
	}
	p := s.planning[index-1]
	q := s.planning[index]
	r := s.planning[index+1]
	s.planning[index-1] = r
	s.planning[index] = p
	s.planning[index+1] = q
	return s.rebuild()
}
