package prcpsp

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

// Sentinel error kinds. Use errors.Is against these to classify a failure
// per the taxonomy: SchemaViolation and ParameterOutOfRange are fatal and
// refuse to begin a search; NotPlanned indicates an SSGS traversal bug;
// NoMove is a recoverable, first-class signal handled by the search cores.
var (
	// ErrSchemaViolation marks a malformed project: missing dummy,
	// cyclic precedence, predecessor/successor asymmetry, duplicate id,
	// or a usage exceeding its resource's capacity.
	ErrSchemaViolation = errors.New("prcpsp: schema violation")

	// ErrNotPlanned marks an attempt to read the finish time of an
	// activity whose start_time is still UNPLANNED where a planned
	// predecessor was required.
	ErrNotPlanned = errors.New("prcpsp: predecessor not planned")

	// ErrNoMove marks a neighborhood draw that could not produce an
	// admissible triple within its attempt budget.
	ErrNoMove = errors.New("prcpsp: no admissible move found")

	// ErrParameterOutOfRange marks invalid search parameters (epsilon
	// >= initial temperature, decrement outside (0,1), zero iterations,
	// an empty project, and similar).
	ErrParameterOutOfRange = errors.New("prcpsp: parameter out of range")
)

// newSchemaViolations collects zero or more schema problems into a single
// error. Returns nil if problems is empty.
func newSchemaViolations(problems ...error) error {
	if len(problems) == 0 {
		return nil
	}
	var merr *multierror.Error
	for _, p := range problems {
		merr = multierror.Append(merr, p)
	}
	return wrapSchema(merr)
}

func wrapSchema(err error) error {
	if err == nil {
		return nil
	}
	return &schemaError{cause: err}
}

type schemaError struct {
	cause error
}

func (e *schemaError) Error() string { return ErrSchemaViolation.Error() + ": " + e.cause.Error() }
func (e *schemaError) Unwrap() error { return e.cause }
func (e *schemaError) Is(target error) bool {
	return target == ErrSchemaViolation
}
