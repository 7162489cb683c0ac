package instance

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"

	"github.com/rodrigofvc/ts-sa-prcpsp/pkg/prcpsp"
)

const (
	minDuration = 1
	maxDuration = 10
	minDemand   = 1
	maxDemand   = 4
)

// Generate builds a canonical, schema-valid random project from Params
// using rng, which the caller should have seeded from Params.Seed. It is a
// benchmark collaborator only: the search cores never depend on how these
// activities, demands or arcs were chosen, only that the result validates
// via prcpsp.NewProject.
//
// Resources are built by partitioning Capacity evenly across Resources
// resources, with the last resource absorbing the remainder of an uneven
// division. Each intermediate activity is attached to one or more
// predecessors drawn only from activities already placed (source, or an
// earlier intermediate activity), so the precedence graph is acyclic by
// construction and every activity is trivially reachable from the source;
// every intermediate activity with no successor drawn is additionally
// wired to the sink so every activity can also reach it.
func Generate(p Params, rng *rand.Rand) (*prcpsp.Project, error) {
	if p.Resources == 0 {
		return nil, fmt.Errorf("%w: instance requests zero resources", prcpsp.ErrSchemaViolation)
	}

	resources := make([]*prcpsp.Resource, p.Resources)
	base := p.Capacity / p.Resources
	remainder := p.Capacity % p.Resources
	for i := uint32(0); i < p.Resources; i++ {
		capacity := int(base)
		if i == p.Resources-1 {
			capacity += int(remainder)
		}
		r, err := prcpsp.NewResource(int(i)+1, "R"+strconv.Itoa(int(i)+1), capacity)
		if err != nil {
			return nil, err
		}
		resources[i] = r
	}

	sourceID := 0
	sinkID := int(p.Activities) + 1

	activities := make([]prcpsp.Activity, 0, p.Activities+2)
	activities = append(activities, prcpsp.Activity{ID: sourceID, Parent: prcpsp.NoParent, Name: "source"})

	for i := uint32(1); i <= p.Activities; i++ {
		id := int(i)
		duration := minDuration + rng.Intn(maxDuration-minDuration+1)

		var usages []prcpsp.Usage
		for _, r := range resources {
			if rng.Intn(2) == 0 {
				continue
			}
			demand := minDemand + rng.Intn(maxDemand-minDemand+1)
			if demand > r.Capacity() {
				demand = r.Capacity()
			}
			if demand == 0 {
				continue
			}
			u, err := prcpsp.NewUsage(r, demand)
			if err != nil {
				return nil, err
			}
			usages = append(usages, u)
		}

		candidates := id
		numPreds := 1 + rng.Intn(2)
		if numPreds > candidates {
			numPreds = candidates
		}
		chosen := make(map[int]bool, numPreds)
		for len(chosen) < numPreds {
			pred := rng.Intn(candidates)
			chosen[pred] = true
		}

		var preds []int
		preds = append(preds, intSetKeys(chosen)...)

		activities = append(activities, prcpsp.Activity{
			ID:           id,
			Parent:       prcpsp.NoParent,
			Name:         strconv.Itoa(id),
			Duration:     duration,
			Predecessors: preds,
			Usages:       usages,
		})
	}

	activities = append(activities, prcpsp.Activity{ID: sinkID, Parent: prcpsp.NoParent})

	if p.Activities == 0 {
		activities[sourceID].Successors = append(activities[sourceID].Successors, sinkID)
		activities[sinkID].Predecessors = append(activities[sinkID].Predecessors, sourceID)
		return prcpsp.NewProject(activities, resources)
	}

	for i := 1; i <= int(p.Activities); i++ {
		for _, pred := range activities[i].Predecessors {
			activities[pred].Successors = append(activities[pred].Successors, activities[i].ID)
		}
	}

	for i := 1; i <= int(p.Activities); i++ {
		if len(activities[i].Successors) == 0 {
			activities[i].Successors = append(activities[i].Successors, sinkID)
			activities[sinkID].Predecessors = append(activities[sinkID].Predecessors, activities[i].ID)
		}
	}

	return prcpsp.NewProject(activities, resources)
}

// intSetKeys returns a set's members in ascending order: map iteration
// order is randomized per process, and the generator must stay
// deterministic in its seed alone.
func intSetKeys(set map[int]bool) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
