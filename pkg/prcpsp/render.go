package prcpsp

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the state as two bracketed, comma-separated lines: the
// priority list followed by its assigned start times. This is the
// minimal human-readable projection the search façade requires.
func (s *ScheduleState) String() string {
	var b strings.Builder
	b.WriteString("   [")
	for i, id := range s.planning {
		b.WriteString(strconv.Itoa(id))
		if i != len(s.planning)-1 {
			b.WriteString(", ")
		}
	}
	b.WriteString("]\n    [")
	for i, t := range s.times {
		b.WriteString(strconv.Itoa(t))
		if i != len(s.times)-1 {
			b.WriteString(", ")
		}
	}
	b.WriteString("]")
	return b.String()
}

// Artifact renders the state as a Gantt-chart SVG: a time axis, a single
// vertical axis scaled to the sum of all resource capacities, and one
// rectangle per activity that demands at least one resource (dummies and
// activities without usages are not drawn), positioned by its start time
// and sized by its duration and (for the first resource it demands) its
// demand. Subactivities produced by the
// preemptive expander are labeled with their parent's original id so a
// split activity still reads as belonging to one original task.
func (s *ScheduleState) Artifact() string {
	const unit = 100
	const margin = 500

	totalCapacity := 0
	for _, r := range s.project.Resources() {
		totalCapacity += r.Capacity()
	}

	width := s.Makespan()*unit + margin + 100
	height := totalCapacity*unit + margin + 100

	var b strings.Builder
	fmt.Fprintf(&b, "<svg version='1.1' width='%d' height='%d' xmlns='http://www.w3.org/2000/svg'>\n", width, height)

	axisY := height - margin
	fmt.Fprintf(&b, "  <line x1='%d' x2='%d' y1='%d' y2='%d' stroke='black' stroke-width='5'/>\n", margin, margin+s.Makespan()*unit, axisY, axisY)
	fmt.Fprintf(&b, "  <line x1='%d' x2='%d' y1='%d' y2='%d' stroke='black' stroke-width='5'/>\n", margin, margin, axisY, axisY-totalCapacity*unit)

	for x := 0; x <= s.Makespan(); x++ {
		xi := margin + x*unit
		fmt.Fprintf(&b, "   <text x='%d' y='%d' font-size='40' text-anchor='middle'>%d</text>\n", xi, axisY+40, x)
	}
	for y := 0; y <= totalCapacity; y++ {
		yi := axisY - y*unit
		fmt.Fprintf(&b, "   <text x='%d' y='%d' font-size='40' text-anchor='middle'>%d</text>\n", margin-40, yi+15, y)
	}

	yCursor := make(map[int]int)
	for _, r := range s.project.Resources() {
		yCursor[r.ID()] = axisY
	}

	for i, id := range s.planning {
		if id == s.planning[0] || id == s.planning[len(s.planning)-1] {
			continue
		}
		a, _ := s.project.Activity(id)
		if len(a.Usages) == 0 {
			continue
		}
		t := s.times[i]
		resource := a.Usages[0].Resource
		rectWidth := a.Duration * unit
		rectHeight := a.Demand(resource) * unit
		y := yCursor[resource.ID()] - rectHeight
		yCursor[resource.ID()] = y

		label := id
		if a.Parent != NoParent {
			label = a.Parent
		}

		x := margin + t*unit
		fmt.Fprintf(&b, "  <rect x='%d' y='%d' width='%d' height='%d' fill='rgb(100,149,237)' stroke='black' stroke-width='2'/>\n", x, y, rectWidth, rectHeight)
		fmt.Fprintf(&b, "   <text x='%d' y='%d' font-size='30' text-anchor='middle'>%d</text>\n", x+rectWidth/2, y+rectHeight/2, label)
	}

	b.WriteString("</svg>")
	return b.String()
}
