// Deps command for the ascent CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var depsClear bool

var depsCmd = &cobra.Command{
	Use:   "deps <goal-id> <milestone-id> [dependency-id...]",
	Short: "Replace a milestone's dependencies",
	Long: `Replace a milestone's dependency set. The edit is all-or-nothing:
self-references, unknown milestone IDs, and edits that would create a
dependency cycle are rejected and nothing is changed. Use --clear to remove
all dependencies.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		goalID, milestoneID := args[0], args[1]
		deps := args[2:]
		if depsClear {
			deps = nil
		}

		tr, store, err := openTracker()
		if err != nil {
			fail("deps", err)
		}
		defer store.Close()

		m, err := tr.SetDependencies(goalID, milestoneID, deps)
		if err != nil {
			fail("deps", err)
		}

		if flagJSON {
			printJSON(m)
			return nil
		}

		if len(m.Dependencies) == 0 {
			fmt.Printf("Milestone %s has no dependencies\n", milestoneID)
		} else {
			fmt.Printf("Milestone %s now depends on %d milestone(s)\n",
				milestoneID, len(m.Dependencies))
		}
		return nil
	},
}

func init() {
	depsCmd.Flags().BoolVar(&depsClear, "clear", false, "remove all dependencies")
}
