// Package template generates canned milestone lists for new goals. The
// engine treats generated milestones as opaque input; templates only decide
// titles, types, ordering, and the default dependency chain.
package template

import (
	"fmt"
	"sort"

	"github.com/ascent-labs/ascent/pkg/types"
)

// step is one templated milestone before IDs and dependencies are assigned.
type step struct {
	title string
	typ   string
}

// templates maps goal categories to their milestone steps. Lookup is by
// exact category name; unknown categories fall back to the generic plan.
var templates = map[string][]step{
	"programming": {
		{"Learn the core syntax and tooling", types.MilestoneTheory},
		{"Solve small practice exercises", types.MilestonePractice},
		{"Read idiomatic code in the wild", types.MilestoneTheory},
		{"Build a small end-to-end project", types.MilestoneProject},
		{"Review and refactor the project", types.MilestoneAssessment},
	},
	"language": {
		{"Learn basic vocabulary and phrases", types.MilestoneTheory},
		{"Drill grammar fundamentals", types.MilestonePractice},
		{"Hold short everyday conversations", types.MilestonePractice},
		{"Consume native media for a week", types.MilestoneProject},
		{"Take a level self-assessment", types.MilestoneAssessment},
	},
	"music": {
		{"Learn notation and instrument basics", types.MilestoneTheory},
		{"Practice scales and technique daily", types.MilestonePractice},
		{"Learn three full pieces", types.MilestoneProject},
		{"Record and critique a performance", types.MilestoneAssessment},
	},
}

// generic is the fallback plan for categories without a template.
var generic = []step{
	{"Research the fundamentals", types.MilestoneTheory},
	{"Practice the basics", types.MilestonePractice},
	{"Apply skills to a real project", types.MilestoneProject},
	{"Assess progress and set next steps", types.MilestoneAssessment},
}

// Generate returns an ordered milestone list for the category, each
// milestone depending on its predecessor so the plan unlocks step by step.
// Milestone IDs are goal-scoped (m1, m2, ...).
func Generate(category string) []*types.Milestone {
	steps, ok := templates[category]
	if !ok {
		steps = generic
	}

	milestones := make([]*types.Milestone, len(steps))
	for i, s := range steps {
		m := &types.Milestone{
			MilestoneID:  fmt.Sprintf("m%d", i+1),
			Title:        s.title,
			Type:         s.typ,
			Order:        i + 1,
			Dependencies: []string{},
		}
		if i > 0 {
			m.Dependencies = []string{milestones[i-1].MilestoneID}
		}
		milestones[i] = m
	}
	return milestones
}

// Categories lists the category names with a dedicated template.
func Categories() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
