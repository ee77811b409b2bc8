// Complete command for the ascent CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ascent-labs/ascent/pkg/types"
)

var completeCmd = &cobra.Command{
	Use:   "complete <goal-id> <milestone-id>",
	Short: "Complete a milestone",
	Long: `Complete a milestone. Completion is gated by the milestone's declared
dependencies: if any prerequisite is incomplete the command fails and lists
what is blocking. Goal progress and status are recomputed on success.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		goalID, milestoneID := args[0], args[1]

		tr, store, err := openTracker()
		if err != nil {
			fail("complete", err)
		}
		defer store.Close()

		g, err := tr.CompleteMilestone(goalID, milestoneID)
		if err != nil {
			var unmet *types.DependenciesUnmetError
			if errors.As(err, &unmet) {
				fmt.Fprintf(os.Stderr, "milestone %s is blocked by: %s\n",
					milestoneID, formatUnmet(unmet.Unmet))
				os.Exit(exitUserError)
			}
			fail("complete", err)
		}

		if flagJSON {
			printJSON(g)
			return nil
		}

		fmt.Printf("Completed %s; goal progress %d%%\n", milestoneID, g.Progress)
		if g.Status == types.StatusCompleted {
			fmt.Println("Goal completed. Congratulations!")
		}
		return nil
	},
}
