// Recompute command for the ascent CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recomputeCmd = &cobra.Command{
	Use:   "recompute <goal-id>",
	Short: "Re-derive a goal's progress and status",
	Long: `Re-derive progress, completed-milestone count, and status from current
milestone state and persist the result. Safe to run at any time; with no
milestone changes the goal is unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, store, err := openTracker()
		if err != nil {
			fail("recompute", err)
		}
		defer store.Close()

		g, err := tr.RecomputeProgress(args[0])
		if err != nil {
			fail("recompute", err)
		}

		if flagJSON {
			printJSON(g)
			return nil
		}
		fmt.Printf("Goal %s: %d%% complete, status %s\n", g.GoalID, g.Progress, g.Status)
		return nil
	},
}
