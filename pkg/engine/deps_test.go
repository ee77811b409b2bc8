package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascent-labs/ascent/pkg/types"
)

func TestSetDependencies(t *testing.T) {
	now := time.Now()

	t.Run("replaces the set", func(t *testing.T) {
		g := chainGoal()
		m, err := SetDependencies(g, "c", []string{"a"}, now)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, m.Dependencies)
	})

	t.Run("clears with empty set", func(t *testing.T) {
		g := chainGoal()
		m, err := SetDependencies(g, "b", nil, now)
		require.NoError(t, err)
		assert.Empty(t, m.Dependencies)
	})

	t.Run("dedupes candidate IDs", func(t *testing.T) {
		g := chainGoal()
		m, err := SetDependencies(g, "c", []string{"a", "a", "b", "a"}, now)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, m.Dependencies)
	})

	t.Run("unknown milestone", func(t *testing.T) {
		g := chainGoal()
		_, err := SetDependencies(g, "nope", []string{"a"}, now)
		assert.ErrorIs(t, err, types.ErrMilestoneNotFound)
	})

	t.Run("self-reference rejected without mutation", func(t *testing.T) {
		g := chainGoal()
		_, err := SetDependencies(g, "b", []string{"b"}, now)
		assert.ErrorIs(t, err, types.ErrSelfDependency)

		b, _ := g.Milestone("b")
		assert.Equal(t, []string{"a"}, b.Dependencies, "failed edit must not be applied")
	})

	t.Run("unknown IDs rejected as a whole", func(t *testing.T) {
		g := chainGoal()
		_, err := SetDependencies(g, "c", []string{"a", "ghost", "phantom"}, now)

		var unknown *types.UnknownDependencyError
		require.ErrorAs(t, err, &unknown)
		assert.ErrorIs(t, err, types.ErrUnknownDependency)
		assert.Equal(t, []string{"ghost", "phantom"}, unknown.IDs)

		// All-or-nothing: the valid "a" was not applied either.
		c, _ := g.Milestone("c")
		assert.Equal(t, []string{"b"}, c.Dependencies)
	})

	t.Run("direct cycle rejected", func(t *testing.T) {
		g := chainGoal()
		// b already depends on a; a depending on b closes a 2-cycle.
		_, err := SetDependencies(g, "a", []string{"b"}, now)

		var cycle *types.CycleError
		require.ErrorAs(t, err, &cycle)
		assert.ErrorIs(t, err, types.ErrCycleDetected)
		assert.Contains(t, cycle.IDs, "a")
		assert.Contains(t, cycle.IDs, "b")

		a, _ := g.Milestone("a")
		assert.Empty(t, a.Dependencies)
	})

	t.Run("transitive cycle rejected", func(t *testing.T) {
		g := chainGoal()
		// c depends on b depends on a; a depending on c closes a 3-cycle.
		_, err := SetDependencies(g, "a", []string{"c"}, now)
		assert.ErrorIs(t, err, types.ErrCycleDetected)
	})

	t.Run("diamond is not a cycle", func(t *testing.T) {
		g := &types.Goal{
			GoalID: "g2",
			Title:  "Diamond",
			Status: types.StatusActive,
			Milestones: []*types.Milestone{
				{MilestoneID: "root", Title: "Root", Order: 1, Dependencies: []string{}},
				{MilestoneID: "left", Title: "Left", Order: 2, Dependencies: []string{"root"}},
				{MilestoneID: "right", Title: "Right", Order: 3, Dependencies: []string{"root"}},
				{MilestoneID: "tip", Title: "Tip", Order: 4, Dependencies: []string{}},
			},
		}
		m, err := SetDependencies(g, "tip", []string{"left", "right"}, now)
		require.NoError(t, err)
		assert.Equal(t, []string{"left", "right"}, m.Dependencies)
	})
}
