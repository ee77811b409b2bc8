package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDependenciesUnmetError(t *testing.T) {
	err := &DependenciesUnmetError{Unmet: []UnmetDependency{
		{MilestoneID: "m1", Title: "Basics"},
		{MilestoneID: "ghost"},
	}}
	assert.True(t, errors.Is(err, ErrDependenciesUnmet))
	assert.Contains(t, err.Error(), "Basics")
	assert.Contains(t, err.Error(), "ghost", "dangling IDs fall back to the ID")
}

func TestUnknownDependencyError(t *testing.T) {
	err := &UnknownDependencyError{MilestoneID: "m2", IDs: []string{"x", "y"}}
	assert.True(t, errors.Is(err, ErrUnknownDependency))
	assert.Contains(t, err.Error(), "m2")
	assert.Contains(t, err.Error(), "x, y")
}

func TestCycleError(t *testing.T) {
	err := &CycleError{IDs: []string{"a", "b", "a"}}
	assert.True(t, errors.Is(err, ErrCycleDetected))
	assert.Contains(t, err.Error(), "a -> b -> a")
}

func TestPayloadErrorsDoNotMatchEachOther(t *testing.T) {
	assert.False(t, errors.Is(&CycleError{}, ErrUnknownDependency))
	assert.False(t, errors.Is(&UnknownDependencyError{}, ErrCycleDetected))
	assert.False(t, errors.Is(&DependenciesUnmetError{}, ErrCycleDetected))
}
