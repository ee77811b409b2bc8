// Show command for the ascent CLI.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ascent-labs/ascent/pkg/engine"
)

var showCmd = &cobra.Command{
	Use:   "show <goal-id>",
	Short: "Display a goal with its milestone plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goalID := args[0]

		tr, store, err := openTracker()
		if err != nil {
			fail("show", err)
		}
		defer store.Close()

		g, err := tr.Goal(goalID)
		if err != nil {
			fail("show", err)
		}

		if flagJSON {
			printJSON(g)
			return nil
		}

		fmt.Printf("%s [%s]\n", g.Title, g.Status)
		if g.Description != "" {
			fmt.Println(g.Description)
		}
		fmt.Printf("Progress: %d%% (%d/%d milestones)\n",
			g.Progress, g.CompletedMilestones, len(g.Milestones))
		fmt.Printf("Estimate: %d %s\n", g.EstimatedDuration.Value, g.EstimatedDuration.Unit)
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATE\tTYPE\tTITLE\tDEPENDS ON")
		fmt.Fprintln(w, "--\t-----\t----\t-----\t----------")
		for _, m := range g.Milestones {
			state := "open"
			if m.Completed {
				state = "done"
			} else if blocked, err := engine.IsBlocked(g, m.MilestoneID); err == nil && blocked {
				state = "blocked"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				m.MilestoneID, state, m.Type, m.Title, strings.Join(m.Dependencies, ", "))
		}
		w.Flush()
		return nil
	},
}
