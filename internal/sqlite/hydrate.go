package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ascent-labs/ascent/pkg/types"
)

// scanner abstracts *sql.Row and *sql.Rows so hydrate functions serve both.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateGoal scans one goals row into a *types.Goal. Milestones are not
// hydrated here; LoadGoal attaches them.
func hydrateGoal(s scanner) (*types.Goal, error) {
	var (
		g                     types.Goal
		description, category sql.NullString
		completedAt           sql.NullString
		createdAt, updatedAt  string
	)
	err := s.Scan(
		&g.GoalID, &g.Title, &description, &category,
		&g.EstimatedDuration.Value, &g.EstimatedDuration.Unit,
		&g.Status, &g.Progress, &g.CompletedMilestones, &completedAt,
		&createdAt, &updatedAt, &g.Version,
	)
	if err != nil {
		return nil, err
	}
	g.Description = description.String
	g.Category = category.String
	if g.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if g.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	if g.CompletedAt, err = parseNullTime(completedAt); err != nil {
		return nil, err
	}
	g.Milestones = []*types.Milestone{}
	return &g, nil
}

// hydrateMilestone scans one milestones row into a *types.Milestone.
// Dependencies are not hydrated here; LoadGoal attaches them.
func hydrateMilestone(s scanner) (*types.Milestone, error) {
	var (
		m           types.Milestone
		description sql.NullString
		completed   int
		completedAt sql.NullString
	)
	err := s.Scan(
		&m.MilestoneID, &m.Title, &description, &m.Type,
		&m.Order, &completed, &completedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Description = description.String
	m.Completed = completed != 0
	if m.CompletedAt, err = parseNullTime(completedAt); err != nil {
		return nil, err
	}
	m.Dependencies = []string{}
	return &m, nil
}

// hydrateEvent scans one ledger_events row into a *types.LedgerEvent.
func hydrateEvent(s scanner) (*types.LedgerEvent, error) {
	var (
		e                        types.LedgerEvent
		description, milestoneID sql.NullString
		createdAt                string
	)
	err := s.Scan(
		&e.EventID, &e.GoalID, &e.Type, &e.Value,
		&description, &milestoneID, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	e.Description = description.String
	e.MilestoneID = milestoneID.String
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// parseTime parses an RFC 3339 column value.
func parseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", v, err)
	}
	return t, nil
}

// parseNullTime parses a nullable RFC 3339 column value.
func parseNullTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	t, err := parseTime(v.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// nullableTime formats an optional timestamp for storage; nil maps to NULL.
func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

// boolToInt stores booleans as 0/1.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
