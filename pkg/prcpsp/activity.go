package prcpsp

// NoParent is the sentinel parent identity for an original (non-subactivity)
// activity, including both dummies.
const NoParent = -1

// Unplanned is the sentinel start_time of an activity that has not yet been
// assigned a position by the serial schedule generation scheme.
const Unplanned = -1

// Activity is a node of the project network: an identity, optional parent
// (for unit subactivities produced by the preemptive expander), integer
// duration, precedence neighbors by identity, and renewable-resource
// demand. Equality is by identity.
type Activity struct {
	ID           int
	Parent       int
	Name         string
	Duration     int
	Predecessors []int
	Successors   []int
	Usages       []Usage
}

// Demand returns the activity's usage amount for a given resource, or 0 if
// the activity does not consume that resource at all.
func (a *Activity) Demand(r *Resource) int {
	for _, u := range a.Usages {
		if u.Resource.Equal(r) {
			return u.Amount
		}
	}
	return 0
}

// usageFor returns the usage record for a resource and whether it exists.
func (a *Activity) usageFor(r *Resource) (Usage, bool) {
	for _, u := range a.Usages {
		if u.Resource.Equal(r) {
			return u, true
		}
	}
	return Usage{}, false
}

// IsDummy reports whether the activity has zero duration and no resource
// demand, the shape both project sentinels must have.
func (a *Activity) IsDummy() bool {
	return a.Duration == 0 && len(a.Usages) == 0
}
