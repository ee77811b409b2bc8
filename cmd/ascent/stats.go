// Stats command for the ascent CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <goal-id>",
	Short: "Show streak and velocity statistics for a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, store, err := openTracker()
		if err != nil {
			fail("stats", err)
		}
		defer store.Close()

		stats, err := tr.Stats(args[0])
		if err != nil {
			fail("stats", err)
		}

		if flagJSON {
			printJSON(stats)
			return nil
		}
		fmt.Printf("Milestones completed: %d\n", stats.Completions)
		fmt.Printf("Study time:           %d minute(s)\n", stats.StudyMinutes)
		fmt.Printf("Current streak:       %d day(s)\n", stats.StreakDays)
		fmt.Printf("Velocity:             %.1f milestone(s)/week\n", stats.PerWeek)
		return nil
	},
}
