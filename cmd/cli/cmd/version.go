package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"power-cost/core/hydration"
)

// Version is the tool version
var Version = "0.1.0"

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "powercost version %s (record schema %s)\n", Version, hydration.SchemaVersion)
	},
}
