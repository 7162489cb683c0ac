// Package render turns a search.State's projections into CLI-facing text
// and filesystem-facing SVG. Neither pkg/prcpsp nor pkg/search imports
// this package; it is a pure presentation layer over their exported
// String/Artifact projections.
package render

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Projection is the subset of search.State this package consumes, named
// locally so render has no import on pkg/search.
type Projection interface {
	String() string
	Artifact() string
}

// Text renders a priority list and its assigned start times as two
// vertically aligned, fixed-width columns: one column per activity, padded
// to the widest id or time value in the pair using runewidth so a
// preemptively expanded project's multi-digit ids still line up under
// their single-digit neighbors.
func Text(planning, times []int) string {
	n := len(planning)
	if n == 0 || n != len(times) {
		return ""
	}

	cells := make([]string, n)
	width := 0
	for i := range planning {
		cells[i] = strconv.Itoa(planning[i])
		if w := runewidth.StringWidth(cells[i]); w > width {
			width = w
		}
		if w := runewidth.StringWidth(strconv.Itoa(times[i])); w > width {
			width = w
		}
	}

	var top, bottom strings.Builder
	top.WriteString("[")
	bottom.WriteString("[")
	for i := range planning {
		top.WriteString(runewidth.FillLeft(strconv.Itoa(planning[i]), width))
		bottom.WriteString(runewidth.FillLeft(strconv.Itoa(times[i]), width))
		if i != n-1 {
			top.WriteString(", ")
			bottom.WriteString(", ")
		}
	}
	top.WriteString("]")
	bottom.WriteString("]")

	return top.String() + "\n" + bottom.String()
}

// SVG returns p's own Artifact projection unchanged; it exists so callers
// reach the SVG rendering of a search state through this package rather
// than the domain package directly, keeping the presentation boundary in
// one place.
func SVG(p Projection) string {
	return p.Artifact()
}
