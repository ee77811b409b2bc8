package types

import (
	"sort"
	"time"
)

// Goal status values. A goal progresses through these during its lifecycle.
// Only planning→active and →completed happen automatically (driven by
// milestone completion); paused and cancelled are user-driven.
const (
	StatusPlanning  = "planning"
	StatusActive    = "active"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// validStatuses is the set of recognized goal status values.
var validStatuses = map[string]bool{
	StatusPlanning:  true,
	StatusActive:    true,
	StatusPaused:    true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// IsValidStatus reports whether the given string is a recognized goal status.
func IsValidStatus(s string) bool {
	return validStatuses[s]
}

// Duration units for a goal's estimated duration.
const (
	DurationWeeks  = "weeks"
	DurationMonths = "months"
)

// Duration is a goal's estimated time to completion.
type Duration struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

// Goal is a user's top-level learning objective, tracked to completion via
// milestones. Progress and CompletedMilestones are derived attributes owned
// by pkg/engine; callers never set them directly. Version is the optimistic
// concurrency token owned by the store.
type Goal struct {
	GoalID              string       `json:"goal_id"`
	Title               string       `json:"title"`
	Description         string       `json:"description,omitempty"`
	Category            string       `json:"category,omitempty"`
	EstimatedDuration   Duration     `json:"estimated_duration"`
	Status              string       `json:"status"`
	Progress            int          `json:"progress"`
	CompletedMilestones int          `json:"completed_milestones"`
	Milestones          []*Milestone `json:"milestones"`
	CompletedAt         *time.Time   `json:"completed_at,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
	Version             int64        `json:"version"`
}

// Milestone returns the milestone with the given ID, or false if the goal
// has no such milestone.
func (g *Goal) Milestone(id string) (*Milestone, bool) {
	for _, m := range g.Milestones {
		if m.MilestoneID == id {
			return m, true
		}
	}
	return nil, false
}

// Normalize validates and defaults the goal in place. It is the single
// normalization boundary: every aggregate entering the system passes through
// here once, and downstream code assumes a normalized goal.
//
// Defaults applied: empty status becomes planning, empty duration unit
// becomes weeks, nil dependency slices become empty, milestones are sorted
// by Order. Rejected: empty titles, unknown status or milestone type values,
// non-positive duration, duplicate milestone IDs, self- or dangling
// dependency references, and dependency cycles.
func (g *Goal) Normalize() error {
	if g.Title == "" {
		return ErrInvalidTitle
	}
	if g.Status == "" {
		g.Status = StatusPlanning
	}
	if !IsValidStatus(g.Status) {
		return ErrInvalidStatus
	}
	if g.EstimatedDuration.Unit == "" {
		g.EstimatedDuration.Unit = DurationWeeks
	}
	if g.EstimatedDuration.Unit != DurationWeeks && g.EstimatedDuration.Unit != DurationMonths {
		return ErrInvalidDuration
	}
	if g.EstimatedDuration.Value <= 0 {
		return ErrInvalidDuration
	}
	if g.Milestones == nil {
		g.Milestones = []*Milestone{}
	}

	sort.SliceStable(g.Milestones, func(i, j int) bool {
		return g.Milestones[i].Order < g.Milestones[j].Order
	})

	seen := make(map[string]bool, len(g.Milestones))
	for _, m := range g.Milestones {
		if m.MilestoneID == "" || m.Title == "" {
			return ErrInvalidTitle
		}
		if seen[m.MilestoneID] {
			return ErrDuplicateMilestone
		}
		seen[m.MilestoneID] = true
		if m.Type == "" {
			m.Type = MilestoneTheory
		}
		if !IsValidMilestoneType(m.Type) {
			return ErrInvalidMilestoneType
		}
		if m.Dependencies == nil {
			m.Dependencies = []string{}
		}
	}

	for _, m := range g.Milestones {
		var unknown []string
		for _, d := range m.Dependencies {
			if d == m.MilestoneID {
				return ErrSelfDependency
			}
			if !seen[d] {
				unknown = append(unknown, d)
			}
		}
		if len(unknown) > 0 {
			return &UnknownDependencyError{MilestoneID: m.MilestoneID, IDs: unknown}
		}
	}

	if cycle := findCycle(g.Milestones); cycle != nil {
		return &CycleError{IDs: cycle}
	}
	return nil
}

// findCycle runs a three-color depth-first search over the dependency
// relation and returns the IDs on the first cycle found, or nil if the
// relation is acyclic.
func findCycle(milestones []*Milestone) []string {
	const (
		white = 0 // unvisited
		grey  = 1 // on the current path
		black = 2 // fully explored
	)
	deps := make(map[string][]string, len(milestones))
	for _, m := range milestones {
		deps[m.MilestoneID] = m.Dependencies
	}
	color := make(map[string]int, len(milestones))

	var path []string
	var visit func(id string) []string
	visit = func(id string) []string {
		color[id] = grey
		path = append(path, id)
		for _, d := range deps[id] {
			switch color[d] {
			case grey:
				// Trim the path to the cycle itself.
				for i, p := range path {
					if p == d {
						return append([]string(nil), path[i:]...)
					}
				}
				return append([]string(nil), path...)
			case white:
				if cycle := visit(d); cycle != nil {
					return cycle
				}
			}
		}
		color[id] = black
		path = path[:len(path)-1]
		return nil
	}

	for _, m := range milestones {
		if color[m.MilestoneID] == white {
			path = path[:0]
			if cycle := visit(m.MilestoneID); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
