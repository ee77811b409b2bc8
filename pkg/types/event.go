package types

import "time"

// Ledger event types.
const (
	EventMilestone = "milestone" // a milestone completion; Value is 1
	EventStudy     = "study"     // a logged study session; Value is minutes
)

// LedgerEvent is one append-only entry in the progress ledger.
type LedgerEvent struct {
	EventID     string    `json:"event_id"`
	GoalID      string    `json:"goal_id"`
	Type        string    `json:"type"`
	Value       int       `json:"value"`
	Description string    `json:"description,omitempty"`
	MilestoneID string    `json:"milestone_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
