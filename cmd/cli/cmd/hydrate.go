// Package cmd - hydrate command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"power-cost/core/output"
	"power-cost/core/types"
	"power-cost/internal/errors"
	"power-cost/internal/logging"
)

var (
	hydrateOutput string
	hydrateStrict bool
)

// hydrateCmd represents the hydrate command
var hydrateCmd = &cobra.Command{
	Use:   "hydrate <record>",
	Short: "Repair saved powers against the current catalog",
	Long: `Repair saved power records so they match the current catalog and schema.

Items that reference effects, modifiers or options no longer in the catalog
are removed and reported as warnings. Every other repair is reported as a change.

Examples:
  powercost hydrate old-power.json
  powercost hydrate --output repaired.json library.yaml
  powercost hydrate --strict old-power.json`,
	Args: cobra.ExactArgs(1),
	RunE: runHydrate,
}

func init() {
	hydrateCmd.Flags().StringVarP(&hydrateOutput, "output", "o", "", "write the repaired powers to this JSON file")
	hydrateCmd.Flags().BoolVar(&hydrateStrict, "strict", false, "fail when hydration had to remove data")
}

func runHydrate(cmd *cobra.Command, args []string) error {
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

	formatter, ok := output.NewRegistry(false).Get(format)
	if !ok {
		return fmt.Errorf("no formatter for %s", format)
	}

	eng := loaded.newEngine()
	powers := make([]*types.Power, 0, len(records))
	warnings := 0
	for _, rec := range records {
		result := eng.Hydrate(rec)
		powers = append(powers, result.Power)
		warnings += len(result.Warnings)

		report := output.NewReport(result, nil, metadata(args[0], loaded.path))
		if err := formatter.Render(cmd.OutOrStdout(), report); err != nil {
			return fmt.Errorf("failed to render %s: %w", result.Power.ID, err)
		}
	}

	if hydrateOutput != "" {
		if err := writePowers(hydrateOutput, powers); err != nil {
			return err
		}
		logging.Info("Repaired powers written", zap.String("path", hydrateOutput), zap.Int("powers", len(powers)))
	}

	if hydrateStrict && warnings > 0 {
		return errors.Newf(errors.TypeRecord, "hydration removed data (%d warnings)", warnings)
	}
	return nil
}

// writePowers writes a single power as an object and several as a list
func writePowers(path string, powers []*types.Power) error {
	var v any = powers
	if len(powers) == 1 {
		v = powers[0]
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Internal("failed to encode powers", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.Wrap(errors.TypeInput, "failed to write "+path, err)
	}
	return nil
}
