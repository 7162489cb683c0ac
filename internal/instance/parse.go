// Package instance provides the benchmark-collaborator layer around
// pkg/prcpsp: parsing the five-integer instance file format and generating
// random canonical projects from it. Neither concern is part of the
// search core; pkg/prcpsp and pkg/search never import this package.
package instance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Params is the parsed contents of an instance file: the generator's own
// seed, a target cost used by benchmark harnesses to judge solution
// quality (not consumed by the search cores themselves), and the shape of
// the project to generate.
type Params struct {
	Seed       uint64
	TargetCost uint32
	Activities uint32
	Resources  uint32
	Capacity   uint32
}

// Parse reads a newline-separated instance file: five unsigned integers,
// in order, seed, target_cost, n_activities, n_resources,
// total_resource_capacity. Blank lines and carriage returns are ignored.
// Every line that fails to parse is collected into the returned error
// rather than stopping at the first one.
func Parse(data []byte) (Params, error) {
	var lines []string
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimRight(raw, "\r")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	var merr *multierror.Error
	if len(lines) != 5 {
		merr = multierror.Append(merr, fmt.Errorf("instance file has %d non-blank lines, want 5", len(lines)))
		return Params{}, merr.ErrorOrNil()
	}

	values := make([]uint64, 5)
	names := [5]string{"seed", "target_cost", "n_activities", "n_resources", "total_resource_capacity"}
	for i, line := range lines {
		v, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("field %s (line %d): %w", names[i], i+1, err))
			continue
		}
		values[i] = v
	}
	if err := merr.ErrorOrNil(); err != nil {
		return Params{}, err
	}

	return Params{
		Seed:       values[0],
		TargetCost: uint32(values[1]),
		Activities: uint32(values[2]),
		Resources:  uint32(values[3]),
		Capacity:   uint32(values[4]),
	}, nil
}
