// Package cmd - cost command
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"power-cost/core/output"
	"power-cost/internal/logging"
)

// costCmd represents the cost command
var costCmd = &cobra.Command{
	Use:   "cost <record>",
	Short: "Compute the cost of saved powers",
	Long: `Repair saved power records against the catalog, then compute each
power's cost, energy and slot totals.

The record file holds one power or a list of powers, as JSON or YAML.
Use "-" to read from stdin.

Examples:
  powercost cost fireball.json
  powercost cost --format json --catalog rules.hcl library.yaml
  cat power.json | powercost cost -`,
	Args: cobra.ExactArgs(1),
	RunE: runCost,
}

func init() {
	costCmd.Flags().BoolP("details", "d", true, "show detailed cost breakdown")
}

func runCost(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	format, err := resolveFormat()
	if err != nil {
		return err
	}

	loaded, err := loadCatalog(resolveCatalogPath(nil))
	if err != nil {
		return err
	}

	records, err := readRecords(cmd, args[0])
	if err != nil {
		return err
	}

	logging.Info("Starting cost evaluation", zap.String("source", args[0]), zap.Int("records", len(records)))

	formatter, ok := output.NewRegistry(showDetails(cmd)).Get(format)
	if !ok {
		return fmt.Errorf("no formatter for %s", format)
	}

	for _, eval := range loaded.newEngine().EvaluateAll(records) {
		report := output.NewReport(eval.Hydration, eval.Breakdown, metadata(args[0], loaded.path))
		if err := formatter.Render(cmd.OutOrStdout(), report); err != nil {
			return fmt.Errorf("failed to render %s: %w", eval.Hydration.Power.ID, err)
		}
	}

	logging.Debug("Cost evaluation completed", zap.Duration("duration", time.Since(startTime)))
	return nil
}
