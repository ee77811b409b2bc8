package types

import "time"

// Milestone kinds. Each milestone is one of these learning activity types.
const (
	MilestoneTheory     = "theory"
	MilestonePractice   = "practice"
	MilestoneProject    = "project"
	MilestoneAssessment = "assessment"
)

// validMilestoneTypes is the set of recognized milestone type values.
var validMilestoneTypes = map[string]bool{
	MilestoneTheory:     true,
	MilestonePractice:   true,
	MilestoneProject:    true,
	MilestoneAssessment: true,
}

// IsValidMilestoneType reports whether the given string is a recognized
// milestone type.
func IsValidMilestoneType(t string) bool {
	return validMilestoneTypes[t]
}

// Milestone is an ordered sub-unit of a Goal. A milestone may declare
// dependencies on other milestones of the same goal; completion is gated on
// all of them being complete. Milestone IDs are unique within their parent
// goal, not globally.
type Milestone struct {
	MilestoneID  string     `json:"milestone_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Type         string     `json:"type"`
	Order        int        `json:"order"`
	Dependencies []string   `json:"dependencies"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// DependsOn reports whether the milestone declares a direct dependency on id.
func (m *Milestone) DependsOn(id string) bool {
	for _, d := range m.Dependencies {
		if d == id {
			return true
		}
	}
	return false
}
