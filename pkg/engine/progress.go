package engine

import (
	"math"
	"time"

	"github.com/ascent-labs/ascent/pkg/types"
)

// Recompute derives the goal's progress, completed-milestone count, and
// status from current milestone state. Progress is the rounded (half-up)
// percentage of completed milestones, 0 for a goal with no milestones.
//
// Status transitions: planning is promoted to active as soon as progress is
// above zero, and any non-completed status becomes completed when progress
// reaches 100 (stamping CompletedAt once). A goal never leaves completed
// here, even if a milestone was reverted through an administrative path;
// that asymmetry is deliberate. Pause and cancel are user-driven and out of
// scope. Calling Recompute again without an intervening milestone change
// yields an identical goal.
func Recompute(g *types.Goal, now time.Time) {
	total := len(g.Milestones)
	completed := 0
	for _, m := range g.Milestones {
		if m.Completed {
			completed++
		}
	}

	g.CompletedMilestones = completed
	if total == 0 {
		g.Progress = 0
	} else {
		g.Progress = int(math.Round(100 * float64(completed) / float64(total)))
	}

	if g.Progress == 100 && total > 0 {
		if g.Status != types.StatusCompleted {
			g.Status = types.StatusCompleted
			t := now
			g.CompletedAt = &t
		}
		return
	}
	if g.Progress > 0 && g.Status == types.StatusPlanning {
		g.Status = types.StatusActive
	}
}
