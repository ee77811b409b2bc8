// Create command for the ascent CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ascent-labs/ascent/pkg/template"
	"github.com/ascent-labs/ascent/pkg/tracker"
	"github.com/ascent-labs/ascent/pkg/types"
)

var (
	createTitle       string
	createDescription string
	createCategory    string
	createDuration    int
	createUnit        string
	createMilestones  []string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new learning goal",
	Long: `Create a new learning goal. Milestones come from the category template
unless --milestone flags supply a custom ordered list; custom milestones are
created without dependencies (edit them with "ascent deps").`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if createTitle == "" {
			fmt.Fprintln(os.Stderr, "create: --title is required")
			os.Exit(exitUserError)
		}
		if createUnit != types.DurationWeeks && createUnit != types.DurationMonths {
			fmt.Fprintf(os.Stderr, "create: invalid unit %q (valid: %s, %s)\n",
				createUnit, types.DurationWeeks, types.DurationMonths)
			os.Exit(exitUserError)
		}

		// Custom milestones from repeated --milestone TITLE[:TYPE] flags.
		var milestones []*types.Milestone
		for i, spec := range createMilestones {
			title, typ := spec, types.MilestoneTheory
			if at := strings.LastIndex(spec, ":"); at > 0 {
				title, typ = spec[:at], spec[at+1:]
			}
			if !types.IsValidMilestoneType(typ) {
				fmt.Fprintf(os.Stderr, "create: invalid milestone type %q in %q\n", typ, spec)
				os.Exit(exitUserError)
			}
			milestones = append(milestones, &types.Milestone{
				MilestoneID: fmt.Sprintf("m%d", i+1),
				Title:       title,
				Type:        typ,
				Order:       i + 1,
			})
		}

		tr, store, err := openTracker()
		if err != nil {
			fail("create", err)
		}
		defer store.Close()

		g, err := tr.CreateGoal(tracker.CreateSpec{
			Title:       createTitle,
			Description: createDescription,
			Category:    createCategory,
			Duration:    types.Duration{Value: createDuration, Unit: createUnit},
			Milestones:  milestones,
		})
		if err != nil {
			fail("create", err)
		}

		if flagJSON {
			printJSON(g)
		} else {
			fmt.Printf("Created goal %s (%d milestones)\n", g.GoalID, len(g.Milestones))
		}
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "goal title (required)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "goal description")
	createCmd.Flags().StringVar(&createCategory, "category", "",
		fmt.Sprintf("goal category (templates: %s)", strings.Join(template.Categories(), ", ")))
	createCmd.Flags().IntVar(&createDuration, "duration", 4, "estimated duration value")
	createCmd.Flags().StringVar(&createUnit, "unit", types.DurationWeeks, "duration unit (weeks or months)")
	createCmd.Flags().StringArrayVar(&createMilestones, "milestone", nil,
		"custom milestone as TITLE[:TYPE]; repeatable, replaces the template")
}
