package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGoal() *Goal {
	return &Goal{
		Title:             "Learn Go",
		Category:          "programming",
		EstimatedDuration: Duration{Value: 6, Unit: DurationWeeks},
		Milestones: []*Milestone{
			{MilestoneID: "m2", Title: "Practice", Type: MilestonePractice, Order: 2, Dependencies: []string{"m1"}},
			{MilestoneID: "m1", Title: "Basics", Type: MilestoneTheory, Order: 1},
		},
	}
}

func TestGoalNormalizeDefaults(t *testing.T) {
	g := validGoal()
	require.NoError(t, g.Normalize())

	assert.Equal(t, StatusPlanning, g.Status, "empty status defaults to planning")
	assert.Equal(t, []string{}, g.Milestones[0].Dependencies, "nil deps become empty")
	assert.Equal(t, "m1", g.Milestones[0].MilestoneID, "milestones sorted by order")
	assert.Equal(t, "m2", g.Milestones[1].MilestoneID)
}

func TestGoalNormalizeDurationDefaultsUnit(t *testing.T) {
	g := validGoal()
	g.EstimatedDuration = Duration{Value: 2}
	require.NoError(t, g.Normalize())
	assert.Equal(t, DurationWeeks, g.EstimatedDuration.Unit)
}

func TestGoalNormalizeRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(g *Goal)
		wantErr error
	}{
		{
			name:    "empty title",
			mutate:  func(g *Goal) { g.Title = "" },
			wantErr: ErrInvalidTitle,
		},
		{
			name:    "unknown status",
			mutate:  func(g *Goal) { g.Status = "procrastinating" },
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "zero duration",
			mutate:  func(g *Goal) { g.EstimatedDuration.Value = 0 },
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "bad duration unit",
			mutate:  func(g *Goal) { g.EstimatedDuration.Unit = "fortnights" },
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "empty milestone title",
			mutate:  func(g *Goal) { g.Milestones[0].Title = "" },
			wantErr: ErrInvalidTitle,
		},
		{
			name:    "unknown milestone type",
			mutate:  func(g *Goal) { g.Milestones[0].Type = "osmosis" },
			wantErr: ErrInvalidMilestoneType,
		},
		{
			name: "duplicate milestone ID",
			mutate: func(g *Goal) {
				g.Milestones[0].MilestoneID = g.Milestones[1].MilestoneID
			},
			wantErr: ErrDuplicateMilestone,
		},
		{
			name: "self-dependency",
			mutate: func(g *Goal) {
				g.Milestones[1].Dependencies = []string{"m1"}
			},
			wantErr: ErrSelfDependency,
		},
		{
			name: "dangling dependency",
			mutate: func(g *Goal) {
				g.Milestones[0].Dependencies = []string{"ghost"}
			},
			wantErr: ErrUnknownDependency,
		},
		{
			name: "dependency cycle",
			mutate: func(g *Goal) {
				// m2 already depends on m1; closing the loop.
				g.Milestones[1].Dependencies = []string{"m2"}
			},
			wantErr: ErrCycleDetected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGoal()
			tt.mutate(g)
			assert.ErrorIs(t, g.Normalize(), tt.wantErr)
		})
	}
}

func TestGoalNormalizeEmptyMilestones(t *testing.T) {
	g := validGoal()
	g.Milestones = nil
	require.NoError(t, g.Normalize())
	assert.NotNil(t, g.Milestones)
	assert.Empty(t, g.Milestones)
}

func TestGoalNormalizeMilestoneTypeDefault(t *testing.T) {
	g := validGoal()
	g.Milestones[0].Type = ""
	require.NoError(t, g.Normalize())
	// Sorted: index 1 is m2, whose type was cleared.
	assert.Equal(t, MilestoneTheory, g.Milestones[1].Type)
}

func TestGoalMilestoneLookup(t *testing.T) {
	g := validGoal()
	m, ok := g.Milestone("m1")
	require.True(t, ok)
	assert.Equal(t, "Basics", m.Title)

	_, ok = g.Milestone("nope")
	assert.False(t, ok)
}

func TestMilestoneDependsOn(t *testing.T) {
	m := &Milestone{MilestoneID: "b", Dependencies: []string{"a"}}
	assert.True(t, m.DependsOn("a"))
	assert.False(t, m.DependsOn("c"))
}
