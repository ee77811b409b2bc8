package types

import (
	"errors"
	"fmt"
	"strings"
)

// Lookup and lifecycle errors.
var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrAlreadyCompleted  = errors.New("milestone already completed")
	ErrVersionConflict   = errors.New("goal version conflict")
	ErrInvalidID         = errors.New("invalid entity ID")
	ErrInvalidData       = errors.New("invalid entity data")
)

// Validation errors for goals, milestones, and dependency edits.
var (
	ErrInvalidTitle         = errors.New("title must not be empty")
	ErrInvalidStatus        = errors.New("invalid status value")
	ErrInvalidMilestoneType = errors.New("invalid milestone type")
	ErrInvalidDuration      = errors.New("estimated duration must be positive weeks or months")
	ErrDuplicateMilestone   = errors.New("duplicate milestone ID")
	ErrSelfDependency       = errors.New("milestone cannot depend on itself")
	ErrUnknownDependency    = errors.New("unknown dependency ID")
	ErrCycleDetected        = errors.New("dependency cycle detected")
	ErrDependenciesUnmet    = errors.New("milestone dependencies unmet")
	ErrLedgerUnavailable    = errors.New("no progress ledger configured")
)

// UnmetDependency identifies one incomplete (or dangling) prerequisite
// blocking a completion. Title is empty when the dependency ID does not
// resolve to a milestone in the goal.
type UnmetDependency struct {
	MilestoneID string `json:"milestone_id"`
	Title       string `json:"title,omitempty"`
}

// DependenciesUnmetError reports a completion attempt blocked by incomplete
// prerequisites. It carries the directly unmet set so callers can render
// "blocked by: X, Y". Matches ErrDependenciesUnmet under errors.Is.
type DependenciesUnmetError struct {
	Unmet []UnmetDependency
}

func (e *DependenciesUnmetError) Error() string {
	names := make([]string, len(e.Unmet))
	for i, u := range e.Unmet {
		if u.Title != "" {
			names[i] = u.Title
		} else {
			names[i] = u.MilestoneID
		}
	}
	return fmt.Sprintf("milestone dependencies unmet: %s", strings.Join(names, ", "))
}

func (e *DependenciesUnmetError) Is(target error) bool {
	return target == ErrDependenciesUnmet
}

// UnknownDependencyError reports a dependency edit (or normalization) that
// referenced milestone IDs not present in the goal. The edit is rejected as
// a whole; nothing is partially applied. Matches ErrUnknownDependency under
// errors.Is.
type UnknownDependencyError struct {
	MilestoneID string
	IDs         []string
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("milestone %s references unknown dependencies: %s",
		e.MilestoneID, strings.Join(e.IDs, ", "))
}

func (e *UnknownDependencyError) Is(target error) bool {
	return target == ErrUnknownDependency
}

// CycleError reports a dependency edit that would make the goal's dependency
// relation cyclic. IDs lists the milestones on the offending cycle. Matches
// ErrCycleDetected under errors.Is.
type CycleError struct {
	IDs []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.IDs, " -> "))
}

func (e *CycleError) Is(target error) bool {
	return target == ErrCycleDetected
}
