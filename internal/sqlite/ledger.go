package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ascent-labs/ascent/pkg/types"
)

// Append persists one ledger event, assigning a UUID v7 EventID when empty
// and stamping CreatedAt when zero. The ledger is append-only: events are
// never updated or deleted.
func (s *Store) Append(e *types.LedgerEvent) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}
	if e == nil || e.GoalID == "" || e.Type == "" {
		return "", types.ErrInvalidData
	}

	if e.EventID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generating UUID v7: %w", err)
		}
		e.EventID = id.String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	var milestoneID any
	if e.MilestoneID != "" {
		milestoneID = e.MilestoneID
	}
	_, err = db.Exec(
		`INSERT INTO ledger_events (event_id, goal_id, event_type, value,
		    description, milestone_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.EventID, e.GoalID, e.Type, e.Value,
		e.Description, milestoneID, e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("inserting ledger event: %w", err)
	}
	return e.EventID, nil
}

// Events returns all ledger events for a goal, oldest first.
func (s *Store) Events(goalID string) ([]*types.LedgerEvent, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	if goalID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := db.Query(
		`SELECT event_id, goal_id, event_type, value, description, milestone_id, created_at
		 FROM ledger_events WHERE goal_id = ? ORDER BY created_at, event_id`, goalID)
	if err != nil {
		return nil, fmt.Errorf("querying ledger events: %w", err)
	}
	defer rows.Close()

	events := []*types.LedgerEvent{}
	for rows.Next() {
		e, err := hydrateEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating ledger event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger events: %w", err)
	}
	return events, nil
}
