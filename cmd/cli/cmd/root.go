// Package cmd provides the CLI commands for powercost.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"power-cost/internal/config"
	"power-cost/internal/logging"
)

var (
	cfgFile      string
	verbose      bool
	catalogPath  string
	outputFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "powercost",
	Short: "Price and repair tabletop RPG powers",
	Long: `powercost evaluates powers built from a catalog of effects and modifiers.

It repairs saved power records against the current catalog, then computes
the power's cost, energy and slot totals.

Examples:
  powercost cost --catalog rules.yaml fireball.json
  powercost cost --format json library.yaml
  powercost hydrate --output repaired.json old-power.json
  powercost catalog validate rules.hcl`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.powercost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "catalog file (.yaml, .yml, .json or .hcl)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")

	// Add subcommands
	rootCmd.AddCommand(costCmd)
	rootCmd.AddCommand(hydrateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".powercost.json")
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}
