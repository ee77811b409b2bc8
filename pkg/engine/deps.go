package engine

import (
	"time"

	"github.com/ascent-labs/ascent/pkg/types"
)

// SetDependencies replaces the milestone's dependency set with deps,
// all-or-nothing. Duplicate IDs are collapsed; otherwise the edit is strict:
// a self-reference returns ErrSelfDependency, IDs that do not resolve within
// the goal return a *UnknownDependencyError enumerating them, and an edit
// that would make the goal's dependency relation cyclic returns a
// *CycleError naming the milestones on the cycle. On any error the
// milestone's existing dependencies are left untouched.
func SetDependencies(g *types.Goal, milestoneID string, deps []string, now time.Time) (*types.Milestone, error) {
	m, ok := g.Milestone(milestoneID)
	if !ok {
		return nil, types.ErrMilestoneNotFound
	}

	seen := make(map[string]bool, len(deps))
	candidate := make([]string, 0, len(deps))
	var unknown []string
	for _, id := range deps {
		if seen[id] {
			continue
		}
		seen[id] = true
		if id == milestoneID {
			return nil, types.ErrSelfDependency
		}
		if _, ok := g.Milestone(id); !ok {
			unknown = append(unknown, id)
			continue
		}
		candidate = append(candidate, id)
	}
	if len(unknown) > 0 {
		return nil, &types.UnknownDependencyError{MilestoneID: milestoneID, IDs: unknown}
	}

	if cycle := cycleThrough(g, milestoneID, candidate); cycle != nil {
		return nil, &types.CycleError{IDs: cycle}
	}

	m.Dependencies = candidate
	g.UpdatedAt = now
	return m, nil
}

// cycleThrough checks whether giving milestoneID the candidate dependency
// set would close a cycle. The rest of the goal is assumed acyclic, so any
// new cycle must pass through milestoneID: it suffices to test whether
// milestoneID is reachable from any candidate by following existing
// dependency edges. Returns the cycle path, or nil.
func cycleThrough(g *types.Goal, milestoneID string, candidate []string) []string {
	visited := make(map[string]bool, len(g.Milestones))

	var walk func(id string, path []string) []string
	walk = func(id string, path []string) []string {
		if id == milestoneID {
			return append(path, id)
		}
		if visited[id] {
			return nil
		}
		visited[id] = true
		m, ok := g.Milestone(id)
		if !ok {
			return nil
		}
		for _, d := range m.Dependencies {
			if cycle := walk(d, append(path, id)); cycle != nil {
				return cycle
			}
		}
		return nil
	}

	for _, id := range candidate {
		if cycle := walk(id, []string{milestoneID}); cycle != nil {
			return cycle
		}
	}
	return nil
}
