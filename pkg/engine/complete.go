package engine

import (
	"time"

	"github.com/ascent-labs/ascent/pkg/types"
)

// IsBlocked reports whether the milestone's completion is currently gated by
// its dependencies. A completed milestone is never blocked: dependency checks
// gate the transition to completion, they do not retroactively invalidate it.
// An incomplete milestone is blocked iff any declared dependency is
// incomplete or does not resolve to a milestone in the goal (dangling IDs
// fail closed). Returns ErrMilestoneNotFound for an unknown milestone ID.
func IsBlocked(g *types.Goal, milestoneID string) (bool, error) {
	m, ok := g.Milestone(milestoneID)
	if !ok {
		return false, types.ErrMilestoneNotFound
	}
	if m.Completed {
		return false, nil
	}
	return len(UnmetDependencies(g, m)) > 0, nil
}

// UnmetDependencies returns the milestone's directly unmet prerequisites:
// every declared dependency that is incomplete, plus every dependency ID
// that does not resolve within the goal (reported with an empty title).
// Only direct dependencies are inspected, not transitive ancestors. Returns
// nil when all dependencies are satisfied.
func UnmetDependencies(g *types.Goal, m *types.Milestone) []types.UnmetDependency {
	var unmet []types.UnmetDependency
	for _, id := range m.Dependencies {
		dep, ok := g.Milestone(id)
		if !ok {
			unmet = append(unmet, types.UnmetDependency{MilestoneID: id})
			continue
		}
		if !dep.Completed {
			unmet = append(unmet, types.UnmetDependency{MilestoneID: id, Title: dep.Title})
		}
	}
	return unmet
}

// CompleteMilestone transitions the milestone to completed and recomputes
// the goal's derived attributes. The transition is rejected with
// ErrMilestoneNotFound, ErrAlreadyCompleted, or a *DependenciesUnmetError
// carrying the unmet set; on rejection the goal is not mutated. Re-completion
// is an error rather than a silent no-op so callers can distinguish "nothing
// happened" from "already done".
func CompleteMilestone(g *types.Goal, milestoneID string, now time.Time) error {
	m, ok := g.Milestone(milestoneID)
	if !ok {
		return types.ErrMilestoneNotFound
	}
	if m.Completed {
		return types.ErrAlreadyCompleted
	}
	if unmet := UnmetDependencies(g, m); len(unmet) > 0 {
		return &types.DependenciesUnmetError{Unmet: unmet}
	}

	t := now
	m.Completed = true
	m.CompletedAt = &t
	g.UpdatedAt = now
	Recompute(g, now)
	return nil
}
