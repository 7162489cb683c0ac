package prcpsp

import (
	"fmt"
	"math/rand"
)

// ScheduleState owns a Project whose activities have been assigned
// start_times, together with two parallel sequences of equal length: a
// priority list of activity ids (planning) and the start_time assigned to
// each (times). It is the serial schedule generation scheme evaluator: any
// permutation of planning consistent with precedence can be rebuilt into a
// feasible schedule by walking it once.
//
// ScheduleState owns its own random source so that neighbor generation is
// reproducible from a seed; it is never read from ambient entropy.
type ScheduleState struct {
	project  *Project
	planning []int
	times    []int
	rng      *rand.Rand
	seed     uint64
}

// NewInitialState builds a ScheduleState from an unplanned project using
// the classical breadth-first serial schedule generation scheme: a single
// time cursor is carried across the whole traversal, so an activity whose
// earliest feasible start lies before the cursor is still pinned to the
// cursor or later, producing a times sequence that is non-decreasing in
// planning order.
func NewInitialState(project *Project, seed uint64) (*ScheduleState, error) {
	project.ResetStartTimes()

	planning := make([]int, 0, project.Len())
	times := make([]int, 0, project.Len())

	queued := make(map[int]bool, project.Len())
	queue := []int{project.Source().ID}
	queued[project.Source().ID] = true

	t := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if !project.PredecessorsPlanned(id) {
			queue = append(queue, id)
			continue
		}

		start, err := project.EarliestStart(id, t)
		if err != nil {
			return nil, err
		}
		t = start
		for project.ResourceConflict(id, t) {
			t++
		}

		project.SetStartTime(id, t)
		planning = append(planning, id)
		times = append(times, t)

		a, _ := project.Activity(id)
		for _, succ := range a.Successors {
			if !queued[succ] {
				queued[succ] = true
				queue = append(queue, succ)
			}
		}
	}

	if len(planning) != project.Len() {
		return nil, fmt.Errorf("%w: traversal scheduled %d of %d activities, project graph is malformed", ErrSchemaViolation, len(planning), project.Len())
	}

	return &ScheduleState{
		project:  project,
		planning: planning,
		times:    times,
		rng:      rand.New(rand.NewSource(int64(seed))),
		seed:     seed,
	}, nil
}

// NewStateFromPlanned builds a ScheduleState from a project whose
// activities already carry start_times, by sorting them ascending (stable
// on ties) and validating that the source sorts first and the sink last.
func NewStateFromPlanned(project *Project, seed uint64) (*ScheduleState, error) {
	ids := project.sortedIDsByStartTime()
	if ids[0] != project.Source().ID || ids[len(ids)-1] != project.Sink().ID {
		return nil, fmt.Errorf("%w: pre-planned project does not sort with source first and sink last", ErrSchemaViolation)
	}
	times := make([]int, len(ids))
	for i, id := range ids {
		times[i] = project.StartTime(id)
	}
	return &ScheduleState{
		project:  project,
		planning: ids,
		times:    times,
		rng:      rand.New(rand.NewSource(int64(seed))),
		seed:     seed,
	}, nil
}

// rebuild walks the fixed planning sequence in order, resetting the time
// cursor to 0, and re-derives times and each activity's start_time. The
// sequence of predecessor visits is guaranteed to be a topological order by
// I1+I2, so a single left-to-right pass suffices.
func (s *ScheduleState) rebuild() error {
	s.project.ResetStartTimes()
	t := 0
	for i, id := range s.planning {
		start, err := s.project.EarliestStart(id, t)
		if err != nil {
			return err
		}
		t = start
		for s.project.ResourceConflict(id, t) {
			t++
		}
		s.project.SetStartTime(id, t)
		s.times[i] = t
	}
	return nil
}

// Makespan returns the start_time of the last entry in times, i.e. the
// sink's start_time.
func (s *ScheduleState) Makespan() int {
	return s.times[len(s.times)-1]
}

// Planning returns the current priority list. The returned slice aliases
// ScheduleState's storage and must not be mutated.
func (s *ScheduleState) Planning() []int { return s.planning }

// Times returns the start_time assigned to each entry of Planning, in the
// same order. The returned slice aliases ScheduleState's storage and must
// not be mutated.
func (s *ScheduleState) Times() []int { return s.times }

// Project returns the project this state schedules.
func (s *ScheduleState) Project() *Project { return s.project }

// deepCopy returns a deep, independent copy of the state for bookkeeping a
// best-so-far snapshot. The clone's random source is freshly seeded from
// the same seed as the original rather than sharing its advancement: a
// clone is a terminal snapshot read only for its cost, planning, times and
// rendering, never re-entered into the search, so its own draw sequence is
// never observed.
func (s *ScheduleState) deepCopy() *ScheduleState {
	return &ScheduleState{
		project:  s.project.Clone(),
		planning: append([]int(nil), s.planning...),
		times:    append([]int(nil), s.times...),
		rng:      rand.New(rand.NewSource(int64(s.seed))),
		seed:     s.seed,
	}
}
