// Log command for the ascent CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var logNote string

var logCmd = &cobra.Command{
	Use:   "log <goal-id> <minutes>",
	Short: "Log a study session to the progress ledger",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		goalID := args[0]
		minutes, err := strconv.Atoi(args[1])
		if err != nil || minutes <= 0 {
			fmt.Fprintf(os.Stderr, "log: minutes must be a positive integer, got %q\n", args[1])
			os.Exit(exitUserError)
		}

		tr, store, err := openTracker()
		if err != nil {
			fail("log", err)
		}
		defer store.Close()

		e, err := tr.LogStudy(goalID, minutes, logNote)
		if err != nil {
			fail("log", err)
		}

		if flagJSON {
			printJSON(e)
			return nil
		}
		fmt.Printf("Logged %d minute(s) of study\n", minutes)
		return nil
	},
}

func init() {
	logCmd.Flags().StringVar(&logNote, "note", "", "what was studied")
}
