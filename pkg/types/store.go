package types

import "errors"

// GoalStore persists Goal aggregates. Load and save are atomic at the
// single-goal granularity; SaveGoal enforces a per-goal optimistic version
// check and returns ErrVersionConflict when the stored version no longer
// matches the aggregate's Version. The engine itself never touches storage;
// it operates on one in-memory Goal at a time.
type GoalStore interface {
	// CreateGoal persists a new goal, assigning its GoalID and initial
	// version. Returns the assigned ID.
	CreateGoal(g *Goal) (string, error)

	// LoadGoal retrieves the full aggregate (goal, milestones, dependency
	// edges). Returns ErrGoalNotFound if no goal exists with that ID.
	LoadGoal(id string) (*Goal, error)

	// SaveGoal rewrites the aggregate, all-or-nothing, bumping the version.
	// Returns ErrGoalNotFound or ErrVersionConflict.
	SaveGoal(g *Goal) error

	// ListGoals returns goal records matching the filter, without their
	// milestone collections hydrated. An empty filter returns every goal.
	ListGoals(filter GoalFilter) ([]*Goal, error)
}

// GoalFilter narrows ListGoals results. Empty fields match everything.
type GoalFilter struct {
	Status   string
	Category string
}

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrAlreadyOpen = errors.New("store is already open")
)

// Ledger is the append-only progress ledger: timestamped study and
// completion events consumed by streak/velocity analytics. Appends are
// best-effort from the tracker's point of view; a failed append never rolls
// back the operation that produced it.
type Ledger interface {
	// Append persists an event, assigning its EventID. Returns the ID.
	Append(e *LedgerEvent) (string, error)

	// Events returns all events for a goal, oldest first.
	Events(goalID string) ([]*LedgerEvent, error)
}
