// List command for the ascent CLI.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ascent-labs/ascent/pkg/types"
)

var (
	listStatus   string
	listCategory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listStatus != "" && !types.IsValidStatus(listStatus) {
			fmt.Fprintf(os.Stderr, "list: invalid status %q\n", listStatus)
			os.Exit(exitUserError)
		}

		tr, store, err := openTracker()
		if err != nil {
			fail("list", err)
		}
		defer store.Close()

		goals, err := tr.Goals(types.GoalFilter{Status: listStatus, Category: listCategory})
		if err != nil {
			fail("list", err)
		}

		if flagJSON {
			printJSON(goals)
			return nil
		}

		if len(goals) == 0 {
			fmt.Println("No goals found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tPROGRESS\tCATEGORY\tTITLE")
		fmt.Fprintln(w, "--\t------\t--------\t--------\t-----")
		for _, g := range goals {
			displayID := g.GoalID
			if len(displayID) > 8 {
				displayID = displayID[:8]
			}
			fmt.Fprintf(w, "%s\t%s\t%d%%\t%s\t%s\n",
				displayID, g.Status, g.Progress, g.Category, g.Title)
		}
		w.Flush()
		fmt.Printf("\nTotal: %d goal(s)\n", len(goals))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by goal status")
	listCmd.Flags().StringVar(&listCategory, "category", "", "filter by goal category")
}
