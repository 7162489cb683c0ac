package prcpsp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchemaViolationsAggregateAllProblems(t *testing.T) {
	err := newSchemaViolations(errors.New("problem one"), errors.New("problem two"))
	require.ErrorIs(t, err, ErrSchemaViolation)
	require.Contains(t, err.Error(), "problem one")
	require.Contains(t, err.Error(), "problem two")
}

func TestNewSchemaViolationsNilOnNoProblems(t *testing.T) {
	require.NoError(t, newSchemaViolations())
}

func TestUsageRejectsOverCapacity(t *testing.T) {
	r, err := NewResource(1, "R", 3)
	require.NoError(t, err)
	_, err = NewUsage(r, 4)
	require.ErrorIs(t, err, ErrSchemaViolation)
}
