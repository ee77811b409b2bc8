// Version command for the ascent CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ascent-labs/ascent/pkg/ascent"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ascent version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ascent", ascent.Version)
	},
}
