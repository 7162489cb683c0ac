package prcpsp

import "strconv"

// chain holds one original activity's unit-duration subactivities, in
// chain order (chain[0] is the first subactivity, chain[len-1] the last).
type chain struct {
	originalID int
	subs       []Activity
}

// Expand rewrites a project into its unit-duration preemptive expansion:
// every non-dummy activity of duration d becomes a precedence chain of d
// unit subactivities (duration 1, parent set to the original's id), each
// copying the original's resource usages. Dummies are reproduced as a
// single zero-duration subactivity whose parent is the dummy's own id. New
// identities are assigned densely by a monotonically increasing counter in
// the order: source, then each original's chain in original order, then
// sink. For every arc u->v of the input project, the last subactivity of
// u's chain becomes a predecessor of the first subactivity of v's chain
// (and symmetrically). Resources are shared by reference with the input
// project.
//
// A non-dummy activity with duration 0 would, per the classic unit-split
// construction, vanish entirely and leave nothing to wire predecessors and
// successors to; this implementation instead emits a single zero-duration
// placeholder subactivity for it so chain linking always has a first and
// last element to attach to.
func Expand(p *Project) (*Project, error) {
	originals := p.Activities()
	counter := 1

	chains := make([]chain, len(originals))

	source := originals[0]
	chains[0] = chain{
		originalID: source.ID,
		subs: []Activity{{
			ID:       counter,
			Parent:   source.ID,
			Name:     strconv.Itoa(counter),
			Duration: 0,
		}},
	}
	counter++

	for i := 1; i < len(originals)-1; i++ {
		orig := originals[i]
		units := orig.Duration
		if units == 0 {
			units = 1
		}
		subs := make([]Activity, 0, units)
		for j := 0; j < units; j++ {
			sub := Activity{
				ID:       counter,
				Parent:   orig.ID,
				Name:     strconv.Itoa(counter),
				Duration: 1,
				Usages:   orig.Usages,
			}
			if orig.Duration == 0 {
				sub.Duration = 0
				sub.Usages = nil
			}
			counter++
			if j > 0 {
				prev := &subs[j-1]
				sub.Predecessors = []int{prev.ID}
				prev.Successors = []int{sub.ID}
			}
			subs = append(subs, sub)
		}
		chains[i] = chain{originalID: orig.ID, subs: subs}
	}

	sink := originals[len(originals)-1]
	chains[len(originals)-1] = chain{
		originalID: sink.ID,
		subs: []Activity{{
			ID:       counter,
			Parent:   sink.ID,
			Name:     strconv.Itoa(counter),
			Duration: 0,
		}},
	}

	chainByOriginal := make(map[int]*chain, len(chains))
	for i := range chains {
		chainByOriginal[chains[i].originalID] = &chains[i]
	}

	for i, orig := range originals {
		c := &chains[i]
		first := &c.subs[0]
		last := &c.subs[len(c.subs)-1]
		for _, predID := range orig.Predecessors {
			predChain := chainByOriginal[predID]
			predLast := &predChain.subs[len(predChain.subs)-1]
			first.Predecessors = append(first.Predecessors, predLast.ID)
			predLast.Successors = append(predLast.Successors, first.ID)
		}
		for _, succID := range orig.Successors {
			succChain := chainByOriginal[succID]
			succFirst := &succChain.subs[0]
			last.Successors = append(last.Successors, succFirst.ID)
			succFirst.Predecessors = append(succFirst.Predecessors, last.ID)
		}
	}

	var expanded []Activity
	for i := range chains {
		expanded = append(expanded, chains[i].subs...)
	}

	return NewProject(expanded, p.Resources())
}
