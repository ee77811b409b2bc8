// Blocked command for the ascent CLI.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ascent-labs/ascent/pkg/engine"
	"github.com/ascent-labs/ascent/pkg/types"
)

var blockedCmd = &cobra.Command{
	Use:   "blocked <goal-id> [milestone-id]",
	Short: "Show blocked milestones",
	Long: `With a milestone ID, report whether that milestone is blocked and by
what. Without one, list every blocked milestone of the goal.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		goalID := args[0]

		tr, store, err := openTracker()
		if err != nil {
			fail("blocked", err)
		}
		defer store.Close()

		g, err := tr.Goal(goalID)
		if err != nil {
			fail("blocked", err)
		}

		if len(args) == 2 {
			milestoneID := args[1]
			blocked, err := engine.IsBlocked(g, milestoneID)
			if err != nil {
				fail("blocked", err)
			}
			if flagJSON {
				printJSON(map[string]any{"milestone_id": milestoneID, "blocked": blocked})
				return nil
			}
			if !blocked {
				fmt.Printf("Milestone %s is not blocked\n", milestoneID)
				return nil
			}
			m, _ := g.Milestone(milestoneID)
			fmt.Printf("Milestone %s is blocked by: %s\n",
				milestoneID, formatUnmet(engine.UnmetDependencies(g, m)))
			return nil
		}

		type blockedRow struct {
			MilestoneID string                  `json:"milestone_id"`
			Title       string                  `json:"title"`
			Unmet       []types.UnmetDependency `json:"unmet"`
		}
		var rows []blockedRow
		for _, m := range g.Milestones {
			if m.Completed {
				continue
			}
			if unmet := engine.UnmetDependencies(g, m); len(unmet) > 0 {
				rows = append(rows, blockedRow{m.MilestoneID, m.Title, unmet})
			}
		}

		if flagJSON {
			if rows == nil {
				rows = []blockedRow{}
			}
			printJSON(rows)
			return nil
		}

		if len(rows) == 0 {
			fmt.Println("No blocked milestones.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tBLOCKED BY")
		fmt.Fprintln(w, "--\t-----\t----------")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.MilestoneID, r.Title, formatUnmet(r.Unmet))
		}
		w.Flush()
		return nil
	},
}
