// Package ledger aggregates progress-ledger events into streak, velocity,
// and study-time statistics. Aggregation is pure computation over event
// slices; storage of the events themselves lives behind types.Ledger.
package ledger

import (
	"time"

	"github.com/ascent-labs/ascent/pkg/types"
)

// Stats summarizes a goal's ledger activity.
type Stats struct {
	Completions  int     `json:"completions"`   // milestone completion events
	StudyMinutes int     `json:"study_minutes"` // total logged study time
	StreakDays   int     `json:"streak_days"`   // consecutive active days
	PerWeek      float64 `json:"per_week"`      // completion velocity
}

// velocityWindow is the lookback used for the per-week completion rate.
const velocityWindow = 28 * 24 * time.Hour

// Summarize computes all statistics for one goal's events as of now.
func Summarize(events []*types.LedgerEvent, now time.Time) Stats {
	return Stats{
		Completions:  Completions(events),
		StudyMinutes: StudyMinutes(events),
		StreakDays:   Streak(events, now),
		PerWeek:      Velocity(events, velocityWindow, now),
	}
}

// Completions counts milestone completion events.
func Completions(events []*types.LedgerEvent) int {
	n := 0
	for _, e := range events {
		if e.Type == types.EventMilestone {
			n++
		}
	}
	return n
}

// StudyMinutes sums the minutes of all logged study sessions.
func StudyMinutes(events []*types.LedgerEvent) int {
	total := 0
	for _, e := range events {
		if e.Type == types.EventStudy {
			total += e.Value
		}
	}
	return total
}

// Streak returns the length in days of the current activity streak: the run
// of consecutive days with at least one event, ending today or yesterday
// (a streak survives until a full day is missed). Days are UTC calendar days.
func Streak(events []*types.LedgerEvent, now time.Time) int {
	active := make(map[string]bool, len(events))
	for _, e := range events {
		active[e.CreatedAt.UTC().Format(time.DateOnly)] = true
	}

	day := now.UTC().Truncate(24 * time.Hour)
	if !active[day.Format(time.DateOnly)] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for active[day.Format(time.DateOnly)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// Velocity returns milestone completions per week over the trailing window.
func Velocity(events []*types.LedgerEvent, window time.Duration, now time.Time) float64 {
	if window <= 0 {
		return 0
	}
	cutoff := now.Add(-window)
	n := 0
	for _, e := range events {
		if e.Type == types.EventMilestone && e.CreatedAt.After(cutoff) {
			n++
		}
	}
	weeks := window.Hours() / (7 * 24)
	return float64(n) / weeks
}
