package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascent-labs/ascent/pkg/types"
)

// memStore is an in-memory GoalStore. Goals are deep-copied on load and
// save so the store behaves like a real backend rather than sharing
// pointers with the caller.
type memStore struct {
	goals    map[string]*types.Goal
	saveErrs []error // consumed by successive SaveGoal calls
	saves    int
}

func newMemStore() *memStore {
	return &memStore{goals: make(map[string]*types.Goal)}
}

func cloneGoal(g *types.Goal) *types.Goal {
	c := *g
	if g.CompletedAt != nil {
		t := *g.CompletedAt
		c.CompletedAt = &t
	}
	c.Milestones = make([]*types.Milestone, len(g.Milestones))
	for i, m := range g.Milestones {
		mc := *m
		if m.CompletedAt != nil {
			t := *m.CompletedAt
			mc.CompletedAt = &t
		}
		mc.Dependencies = append([]string(nil), m.Dependencies...)
		c.Milestones[i] = &mc
	}
	return &c
}

func (s *memStore) CreateGoal(g *types.Goal) (string, error) {
	if g.GoalID == "" {
		g.GoalID = "goal-1"
	}
	g.Version = 1
	s.goals[g.GoalID] = cloneGoal(g)
	return g.GoalID, nil
}

func (s *memStore) LoadGoal(id string) (*types.Goal, error) {
	g, ok := s.goals[id]
	if !ok {
		return nil, types.ErrGoalNotFound
	}
	return cloneGoal(g), nil
}

func (s *memStore) SaveGoal(g *types.Goal) error {
	s.saves++
	if len(s.saveErrs) > 0 {
		err := s.saveErrs[0]
		s.saveErrs = s.saveErrs[1:]
		if err != nil {
			return err
		}
	}
	stored, ok := s.goals[g.GoalID]
	if !ok {
		return types.ErrGoalNotFound
	}
	if stored.Version != g.Version {
		return types.ErrVersionConflict
	}
	g.Version++
	s.goals[g.GoalID] = cloneGoal(g)
	return nil
}

func (s *memStore) ListGoals(filter types.GoalFilter) ([]*types.Goal, error) {
	var out []*types.Goal
	for _, g := range s.goals {
		if filter.Status != "" && g.Status != filter.Status {
			continue
		}
		if filter.Category != "" && g.Category != filter.Category {
			continue
		}
		out = append(out, cloneGoal(g))
	}
	return out, nil
}

// memLedger records appends and can be made to fail.
type memLedger struct {
	events    []*types.LedgerEvent
	appendErr error
}

func (l *memLedger) Append(e *types.LedgerEvent) (string, error) {
	if l.appendErr != nil {
		return "", l.appendErr
	}
	e.EventID = "evt"
	l.events = append(l.events, e)
	return e.EventID, nil
}

func (l *memLedger) Events(goalID string) ([]*types.LedgerEvent, error) {
	var out []*types.LedgerEvent
	for _, e := range l.events {
		if e.GoalID == goalID {
			out = append(out, e)
		}
	}
	return out, nil
}

func seedGoal(t *testing.T, tr *Tracker) *types.Goal {
	t.Helper()
	g, err := tr.CreateGoal(CreateSpec{
		Title:    "Learn Go",
		Category: "programming",
		Duration: types.Duration{Value: 4, Unit: types.DurationWeeks},
		Milestones: []*types.Milestone{
			{MilestoneID: "a", Title: "Basics", Order: 1},
			{MilestoneID: "b", Title: "Practice", Order: 2, Dependencies: []string{"a"}},
			{MilestoneID: "c", Title: "Project", Order: 3, Dependencies: []string{"b"}},
		},
	})
	require.NoError(t, err)
	return g
}

func TestCreateGoalFromTemplate(t *testing.T) {
	tr := New(newMemStore())
	g, err := tr.CreateGoal(CreateSpec{
		Title:    "Learn French",
		Category: "language",
		Duration: types.Duration{Value: 3, Unit: types.DurationMonths},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, g.GoalID)
	assert.Equal(t, types.StatusPlanning, g.Status)
	assert.Equal(t, 0, g.Progress)
	assert.NotEmpty(t, g.Milestones, "template supplies milestones when none given")
}

func TestCreateGoalRejectsInvalidSpec(t *testing.T) {
	tr := New(newMemStore())
	_, err := tr.CreateGoal(CreateSpec{Title: "", Duration: types.Duration{Value: 1}})
	assert.ErrorIs(t, err, types.ErrInvalidTitle)
}

func TestCompleteMilestoneHappyPath(t *testing.T) {
	store := newMemStore()
	led := &memLedger{}
	tr := New(store, WithLedger(led))
	seed := seedGoal(t, tr)

	g, err := tr.CompleteMilestone(seed.GoalID, "a")
	require.NoError(t, err)
	assert.Equal(t, 33, g.Progress)
	assert.Equal(t, types.StatusActive, g.Status)

	// One milestone event was emitted.
	require.Len(t, led.events, 1)
	e := led.events[0]
	assert.Equal(t, types.EventMilestone, e.Type)
	assert.Equal(t, 1, e.Value)
	assert.Equal(t, "a", e.MilestoneID)
	assert.Equal(t, seed.GoalID, e.GoalID)

	// The change persisted.
	loaded, err := tr.Goal(seed.GoalID)
	require.NoError(t, err)
	assert.Equal(t, 33, loaded.Progress)
}

func TestCompleteMilestoneBlockedDoesNotPersist(t *testing.T) {
	store := newMemStore()
	led := &memLedger{}
	tr := New(store, WithLedger(led))
	seed := seedGoal(t, tr)

	_, err := tr.CompleteMilestone(seed.GoalID, "c")
	assert.ErrorIs(t, err, types.ErrDependenciesUnmet)
	assert.Empty(t, led.events, "no event for a rejected completion")

	loaded, err := tr.Goal(seed.GoalID)
	require.NoError(t, err)
	c, _ := loaded.Milestone("c")
	assert.False(t, c.Completed)
}

func TestCompleteMilestoneLedgerFailureIsIgnored(t *testing.T) {
	store := newMemStore()
	led := &memLedger{appendErr: errors.New("ledger down")}
	tr := New(store, WithLedger(led))
	seed := seedGoal(t, tr)

	g, err := tr.CompleteMilestone(seed.GoalID, "a")
	require.NoError(t, err, "ledger failure must not fail the completion")
	assert.Equal(t, 33, g.Progress)
}

func TestCompleteMilestoneRetriesVersionConflictOnce(t *testing.T) {
	store := newMemStore()
	tr := New(store)
	seed := seedGoal(t, tr)

	store.saveErrs = []error{types.ErrVersionConflict}
	g, err := tr.CompleteMilestone(seed.GoalID, "a")
	require.NoError(t, err)
	assert.Equal(t, 33, g.Progress)
	assert.Equal(t, 2, store.saves)

	store.saveErrs = []error{types.ErrVersionConflict, types.ErrVersionConflict}
	_, err = tr.CompleteMilestone(seed.GoalID, "b")
	assert.ErrorIs(t, err, types.ErrVersionConflict, "second conflict surfaces")
}

func TestSetDependenciesPersists(t *testing.T) {
	store := newMemStore()
	tr := New(store)
	seed := seedGoal(t, tr)

	m, err := tr.SetDependencies(seed.GoalID, "c", []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, m.Dependencies)

	loaded, err := tr.Goal(seed.GoalID)
	require.NoError(t, err)
	c, _ := loaded.Milestone("c")
	assert.Equal(t, []string{"a"}, c.Dependencies)
}

func TestSetDependenciesRejectionDoesNotPersist(t *testing.T) {
	store := newMemStore()
	tr := New(store)
	seed := seedGoal(t, tr)

	_, err := tr.SetDependencies(seed.GoalID, "a", []string{"c"})
	assert.ErrorIs(t, err, types.ErrCycleDetected)

	loaded, err := tr.Goal(seed.GoalID)
	require.NoError(t, err)
	a, _ := loaded.Milestone("a")
	assert.Empty(t, a.Dependencies)
}

func TestIsBlocked(t *testing.T) {
	tr := New(newMemStore())
	seed := seedGoal(t, tr)

	blocked, err := tr.IsBlocked(seed.GoalID, "b")
	require.NoError(t, err)
	assert.True(t, blocked)

	_, err = tr.IsBlocked("missing", "b")
	assert.ErrorIs(t, err, types.ErrGoalNotFound)
}

func TestRecomputeProgressIdempotent(t *testing.T) {
	tr := New(newMemStore())
	seed := seedGoal(t, tr)

	first, err := tr.RecomputeProgress(seed.GoalID)
	require.NoError(t, err)
	second, err := tr.RecomputeProgress(seed.GoalID)
	require.NoError(t, err)

	assert.Equal(t, first.Progress, second.Progress)
	assert.Equal(t, first.Status, second.Status)
}

func TestLogStudyAndStats(t *testing.T) {
	store := newMemStore()
	led := &memLedger{}
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	tr := New(store, WithLedger(led), WithClock(func() time.Time { return now }))
	seed := seedGoal(t, tr)

	_, err := tr.LogStudy(seed.GoalID, 30, "pointers")
	require.NoError(t, err)
	_, err = tr.CompleteMilestone(seed.GoalID, "a")
	require.NoError(t, err)

	stats, err := tr.Stats(seed.GoalID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Completions)
	assert.Equal(t, 30, stats.StudyMinutes)
	assert.Equal(t, 1, stats.StreakDays)

	_, err = tr.LogStudy(seed.GoalID, 0, "")
	assert.ErrorIs(t, err, types.ErrInvalidData)
	_, err = tr.LogStudy("missing", 10, "")
	assert.ErrorIs(t, err, types.ErrGoalNotFound)
}

func TestLedgerUnavailable(t *testing.T) {
	tr := New(newMemStore())
	seed := seedGoal(t, tr)

	_, err := tr.LogStudy(seed.GoalID, 10, "")
	assert.ErrorIs(t, err, types.ErrLedgerUnavailable)
	_, err = tr.Stats(seed.GoalID)
	assert.ErrorIs(t, err, types.ErrLedgerUnavailable)
}
