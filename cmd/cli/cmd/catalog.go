// Package cmd - catalog commands
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"power-cost/core/catalog"
	"power-cost/core/output"
	"power-cost/internal/errors"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect effect and modifier catalogs",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [catalog]",
	Short: "Check a catalog file for invalid definitions",
	Long: `Load a catalog file and report every definition that breaks a catalog rule:
missing ids, duplicates, unknown kinds, inverted grade bounds and invalid
configurations.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogValidate,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [catalog]",
	Short: "List the effects and modifiers of a catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogShow,
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogShowCmd)
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	path := resolveCatalogPath(args)

	file, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}

	errs := file.Catalog().Validate(catalog.DefaultValidationRules())
	out := cmd.OutOrStdout()
	if len(errs) == 0 {
		fmt.Fprintf(out, "%s: ok\n", path)
		return nil
	}

	for _, e := range errs {
		fmt.Fprintf(out, "%s: %v\n", path, e)
	}
	return errors.Newf(errors.TypeCatalog, "%d validation errors", len(errs))
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat()
	if err != nil {
		return err
	}

	loaded, err := loadCatalog(resolveCatalogPath(args))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == output.FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(loaded.file)
	}

	stats := loaded.catalog.Stats()
	fmt.Fprintf(out, "Catalog: %s\n", loaded.path)
	fmt.Fprintf(out, "Effects: %d (%d configurable)\n", stats.Effects, stats.ConfigurableEffects)
	fmt.Fprintf(out, "Modifiers: %d (%d extras, %d flaws, %d configurable)\n",
		stats.Modifiers, stats.Extras, stats.Flaws, stats.ConfigurableModifiers)
	fmt.Fprintf(out, "Resource grades: %d\n\n", loaded.resources.Len())

	for _, e := range loaded.catalog.Effects() {
		fmt.Fprintf(out, "  effect   %-24s %3d/grade\n", e.ID, e.BaseCostPerGrade)
	}
	for _, m := range loaded.catalog.Modifiers() {
		fmt.Fprintf(out, "  %-8s %-24s %+3d/grade %+3d fixed\n", m.Kind, m.ID, m.CostPerGrade, m.FixedCost)
	}
	return nil
}
