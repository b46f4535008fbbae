package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"power-cost/core/catalog"
	"power-cost/core/cost"
	"power-cost/core/engine"
	"power-cost/core/output"
	"power-cost/core/record"
	"power-cost/internal/config"
	"power-cost/internal/errors"
	"power-cost/internal/logging"
)

// loadedCatalog is a catalog file plus the values built from it
type loadedCatalog struct {
	path      string
	file      *catalog.File
	catalog   *catalog.Catalog
	resources *cost.ResourceTable
}

func resolveFormat() (output.Format, error) {
	format := outputFormat
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}
	return output.ParseFormat(format)
}

func resolveCatalogPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if catalogPath != "" {
		return catalogPath
	}
	return config.Get().Catalog.Path
}

// loadCatalog reads and validates the catalog. Validation failures are fatal
// in strict mode and logged otherwise.
func loadCatalog(path string) (*loadedCatalog, error) {
	logging.Debug("Loading catalog", zap.String("path", path))

	file, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	cat := file.Catalog()

	if errs := cat.Validate(catalog.DefaultValidationRules()); len(errs) > 0 {
		if config.Get().Catalog.Strict {
			return nil, errors.Newf(errors.TypeCatalog, "catalog %s has %d validation errors, first: %v", path, len(errs), errs[0]).
				WithContext("path", path)
		}
		for _, e := range errs {
			logging.Warn("Catalog validation failed", zap.String("path", path), zap.Error(e))
		}
	}

	stats := cat.Stats()
	logging.Info("Catalog loaded",
		zap.String("path", path),
		zap.Int("effects", stats.Effects),
		zap.Int("modifiers", stats.Modifiers),
		zap.Int("resource_grades", len(file.Resources)))

	return &loadedCatalog{
		path:      path,
		file:      file,
		catalog:   cat,
		resources: cost.NewResourceTable(file.Resources),
	}, nil
}

func (l *loadedCatalog) newEngine() *engine.Engine {
	return engine.NewEngine(l.catalog, l.resources, engine.Config{
		DefaultOptions: config.Get().Hydration.DefaultOptions,
		Logger:         logging.Logger,
	})
}

// readRecords reads one record or a list of records; "-" reads stdin
func readRecords(cmd *cobra.Command, path string) ([]record.Record, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("record file", path)
		}
		return nil, errors.Wrap(errors.TypeInput, "failed to read "+path, err)
	}

	return record.DecodeMany(data)
}

func metadata(source, catalogPath string) output.Metadata {
	return output.Metadata{Source: source, Catalog: catalogPath, Version: Version}
}

func showDetails(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("details") {
		v, _ := cmd.Flags().GetBool("details")
		return v
	}
	return config.Get().Output.ShowDetails
}
