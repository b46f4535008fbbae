// Package engine provides the API-primary evaluation engine.
// CLI is a thin wrapper around this engine: it hydrates a record, then costs it.
package engine

import (
	"go.uber.org/zap"

	"power-cost/core/catalog"
	"power-cost/core/cost"
	"power-cost/core/hydration"
	"power-cost/core/record"
	"power-cost/internal/logging"
)

// Engine evaluates persisted records against one catalog and resource table
type Engine struct {
	catalog   *catalog.Catalog
	resources *cost.ResourceTable
	hydrator  *hydration.Hydrator
	logger    *zap.Logger
}

// Config configures the engine
type Config struct {
	// DefaultOptions maps modifier ids to the option backfilled when a
	// single-choice configuration has no selection
	DefaultOptions map[string]string

	// Logger receives hydration reports; nil uses the global logger
	Logger *zap.Logger
}

// Evaluation is the outcome of evaluating one record
type Evaluation struct {
	Hydration hydration.Result `json:"hydration"`
	Breakdown *cost.Breakdown  `json:"breakdown"`
}

// NewEngine creates a new evaluation engine
func NewEngine(cat *catalog.Catalog, resources *cost.ResourceTable, cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Logger
	}

	return &Engine{
		catalog:   cat,
		resources: resources,
		hydrator:  hydration.NewHydrator(cat, hydration.WithDefaultOptions(cfg.DefaultOptions)),
		logger:    logger,
	}
}

// Catalog returns the catalog the engine evaluates against
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Hydrate repairs a record and logs what was done.
// Warnings are logged at warn level, changes at debug level.
func (e *Engine) Hydrate(rec record.Record) hydration.Result {
	result := e.hydrator.Hydrate(rec)

	log := e.logger.With(zap.String("power_id", result.Power.ID), zap.String("power", result.Power.Name))
	for _, w := range result.Warnings {
		log.Warn("hydration removed data", zap.String("detail", w))
	}
	for _, c := range result.Changes {
		log.Debug("hydration repaired record", zap.String("detail", c))
	}
	if result.HasIssues() {
		log.Info("record hydrated",
			zap.Int("warnings", len(result.Warnings)),
			zap.Int("changes", len(result.Changes)))
	}

	return result
}

// Evaluate hydrates a record, then calculates its cost
func (e *Engine) Evaluate(rec record.Record) *Evaluation {
	result := e.Hydrate(rec)
	breakdown := cost.Calculate(result.Power, e.catalog, e.resources)

	e.logger.Debug("power evaluated",
		zap.String("power_id", result.Power.ID),
		zap.Int("effects", len(breakdown.Effects)),
		zap.Int("total_cost", breakdown.TotalCost),
		zap.Int("energy", breakdown.EnergyTotal),
		zap.Int("slots", breakdown.SlotTotal))

	return &Evaluation{Hydration: result, Breakdown: breakdown}
}

// EvaluateAll evaluates records in order
func (e *Engine) EvaluateAll(recs []record.Record) []*Evaluation {
	out := make([]*Evaluation, 0, len(recs))
	for _, rec := range recs {
		out = append(out, e.Evaluate(rec))
	}
	return out
}
