// Package tracker is the boundary between the pure milestone engine and its
// collaborators: it loads a goal from the store, applies one engine
// operation, saves the result, and emits best-effort progress-ledger events.
// Storage conflicts are retried here; the engine itself stays free of
// recovery policy.
package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/ascent-labs/ascent/pkg/engine"
	"github.com/ascent-labs/ascent/pkg/ledger"
	"github.com/ascent-labs/ascent/pkg/template"
	"github.com/ascent-labs/ascent/pkg/types"
)

// Tracker exposes the engine's operations over an injected GoalStore and an
// optional Ledger. A nil ledger disables event emission and analytics but
// never affects goal mutation.
type Tracker struct {
	store  types.GoalStore
	ledger types.Ledger
	now    func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLedger attaches a progress ledger for event emission and stats.
func WithLedger(l types.Ledger) Option {
	return func(t *Tracker) { t.ledger = l }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New creates a Tracker over the given store.
func New(store types.GoalStore, opts ...Option) *Tracker {
	t := &Tracker{store: store, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// CreateSpec describes a new goal. When Milestones is empty, a canned plan
// is generated from the category template.
type CreateSpec struct {
	Title       string
	Description string
	Category    string
	Duration    types.Duration
	Milestones  []*types.Milestone
}

// CreateGoal normalizes and persists a new goal. Milestones are generated
// from the category template when none are supplied.
func (t *Tracker) CreateGoal(spec CreateSpec) (*types.Goal, error) {
	milestones := spec.Milestones
	if len(milestones) == 0 {
		milestones = template.Generate(spec.Category)
	}

	g := &types.Goal{
		Title:             spec.Title,
		Description:       spec.Description,
		Category:          spec.Category,
		EstimatedDuration: spec.Duration,
		Milestones:        milestones,
	}
	if err := g.Normalize(); err != nil {
		return nil, err
	}
	engine.Recompute(g, t.now())

	if _, err := t.store.CreateGoal(g); err != nil {
		return nil, fmt.Errorf("creating goal: %w", err)
	}
	return g, nil
}

// Goal loads one full goal aggregate.
func (t *Tracker) Goal(goalID string) (*types.Goal, error) {
	return t.store.LoadGoal(goalID)
}

// Goals lists goal records matching the filter.
func (t *Tracker) Goals(filter types.GoalFilter) ([]*types.Goal, error) {
	return t.store.ListGoals(filter)
}

// CompleteMilestone completes one milestone and persists the recomputed
// goal. Engine rejections (not found, already completed, dependencies
// unmet) surface unchanged. A save that loses the optimistic version race is
// retried once against a fresh load; milestone completion commutes with
// completions of other milestones, so the retry re-runs the same gating
// against current state. On success one milestone event is appended to the
// ledger, fire-and-forget: an append failure never rolls back or fails the
// completion.
func (t *Tracker) CompleteMilestone(goalID, milestoneID string) (*types.Goal, error) {
	const retries = 1
	for attempt := 0; ; attempt++ {
		g, err := t.store.LoadGoal(goalID)
		if err != nil {
			return nil, err
		}
		if err := engine.CompleteMilestone(g, milestoneID, t.now()); err != nil {
			return nil, err
		}
		err = t.store.SaveGoal(g)
		if err == nil {
			t.emitCompletion(g, milestoneID)
			return g, nil
		}
		if errors.Is(err, types.ErrVersionConflict) && attempt < retries {
			continue
		}
		return nil, fmt.Errorf("saving goal %s: %w", goalID, err)
	}
}

// SetDependencies replaces a milestone's dependency set and persists the
// goal. The edit is all-or-nothing; validation errors from the engine
// surface unchanged and nothing is written.
func (t *Tracker) SetDependencies(goalID, milestoneID string, deps []string) (*types.Milestone, error) {
	g, err := t.store.LoadGoal(goalID)
	if err != nil {
		return nil, err
	}
	m, err := engine.SetDependencies(g, milestoneID, deps, t.now())
	if err != nil {
		return nil, err
	}
	if err := t.store.SaveGoal(g); err != nil {
		return nil, fmt.Errorf("saving goal %s: %w", goalID, err)
	}
	return m, nil
}

// IsBlocked reports whether a milestone is currently blocked by its
// dependencies.
func (t *Tracker) IsBlocked(goalID, milestoneID string) (bool, error) {
	g, err := t.store.LoadGoal(goalID)
	if err != nil {
		return false, err
	}
	return engine.IsBlocked(g, milestoneID)
}

// RecomputeProgress re-derives and persists the goal's progress and status.
// Safe to call redundantly; with no intervening milestone change the goal is
// unchanged apart from its version.
func (t *Tracker) RecomputeProgress(goalID string) (*types.Goal, error) {
	g, err := t.store.LoadGoal(goalID)
	if err != nil {
		return nil, err
	}
	engine.Recompute(g, t.now())
	if err := t.store.SaveGoal(g); err != nil {
		return nil, fmt.Errorf("saving goal %s: %w", goalID, err)
	}
	return g, nil
}

// LogStudy appends a study session to the progress ledger. Unlike milestone
// events this is a primary operation, so a missing or failing ledger is an
// error. Minutes must be positive.
func (t *Tracker) LogStudy(goalID string, minutes int, note string) (*types.LedgerEvent, error) {
	if t.ledger == nil {
		return nil, types.ErrLedgerUnavailable
	}
	if minutes <= 0 {
		return nil, types.ErrInvalidData
	}
	// Verify the goal exists so the ledger never references a phantom goal.
	if _, err := t.store.LoadGoal(goalID); err != nil {
		return nil, err
	}
	e := &types.LedgerEvent{
		GoalID:      goalID,
		Type:        types.EventStudy,
		Value:       minutes,
		Description: note,
		CreatedAt:   t.now(),
	}
	if _, err := t.ledger.Append(e); err != nil {
		return nil, fmt.Errorf("appending study event: %w", err)
	}
	return e, nil
}

// Stats aggregates the goal's ledger events into streak, velocity, and
// study-time statistics.
func (t *Tracker) Stats(goalID string) (ledger.Stats, error) {
	if t.ledger == nil {
		return ledger.Stats{}, types.ErrLedgerUnavailable
	}
	if _, err := t.store.LoadGoal(goalID); err != nil {
		return ledger.Stats{}, err
	}
	events, err := t.ledger.Events(goalID)
	if err != nil {
		return ledger.Stats{}, fmt.Errorf("fetching ledger events: %w", err)
	}
	return ledger.Summarize(events, t.now()), nil
}

// emitCompletion appends one milestone event to the ledger. Best-effort:
// errors are dropped because core correctness does not depend on the ledger.
func (t *Tracker) emitCompletion(g *types.Goal, milestoneID string) {
	if t.ledger == nil {
		return
	}
	title := milestoneID
	if m, ok := g.Milestone(milestoneID); ok {
		title = m.Title
	}
	_, _ = t.ledger.Append(&types.LedgerEvent{
		GoalID:      g.GoalID,
		Type:        types.EventMilestone,
		Value:       1,
		Description: fmt.Sprintf("completed milestone: %s", title),
		MilestoneID: milestoneID,
		CreatedAt:   t.now(),
	})
}
