// Package cost provides the power cost calculation engine.
// Every function is pure: catalog and power values are read, never modified.
package cost

import (
	"power-cost/core/catalog"
	"power-cost/core/scale"
	"power-cost/core/types"
)

// PerGradeCost computes the per-grade cost of one effect.
// The shared parameter adjustment is added once; the result is never below 1.
func PerGradeCost(def *types.EffectDefinition, effect *types.AppliedEffect, globals []types.AppliedModifier, cat *catalog.Catalog, adjustment int) int {
	cost := def.BaseCostPerGrade

	if opt, ok := def.Configuration.Option(effect.SelectedConfigurationID); ok {
		cost += opt.CostPerGradeDelta
		if opt.ProgressiveDoubling {
			cost += ProgressiveBonus(effect.Grade)
		}
	}

	for _, m := range modifiersOf(effect, globals) {
		mod, ok := cat.Modifier(m.BaseModifierID)
		if !ok {
			continue
		}
		cost += modifierCostPerGrade(mod, m) * max(1, m.Grade())
	}

	cost += adjustment
	return max(1, cost)
}

// ProgressiveBonus is the doubling bonus of a progressive option:
// grades 1-2 add 1, 3-4 add 2, 5-6 add 4, and so on.
func ProgressiveBonus(grade int) int {
	grade = max(1, grade)
	steps := (grade + 1) / 2
	return 1 << (steps - 1)
}

// FixedCost sums the fixed cost of every global and local modifier. It is not clamped.
func FixedCost(effect *types.AppliedEffect, globals []types.AppliedModifier, cat *catalog.Catalog) int {
	total := 0
	for _, m := range modifiersOf(effect, globals) {
		mod, ok := cat.Modifier(m.BaseModifierID)
		if !ok {
			continue
		}
		total += mod.FixedCost
		if opt, ok := mod.Configuration.Option(m.SelectedConfigurationID()); ok {
			total += opt.FixedCostDelta
		}
	}
	return total
}

// EffectCost is max(1, perGrade x grade + fixed)
func EffectCost(def *types.EffectDefinition, effect *types.AppliedEffect, globals []types.AppliedModifier, cat *catalog.Catalog, adjustment int) int {
	_, _, total := effectCosts(def, effect, globals, cat, adjustment)
	return total
}

// effectCosts returns the per-grade, fixed and clamped total cost of one effect
func effectCosts(def *types.EffectDefinition, effect *types.AppliedEffect, globals []types.AppliedModifier, cat *catalog.Catalog, adjustment int) (perGrade, fixed, total int) {
	perGrade = PerGradeCost(def, effect, globals, cat, adjustment)
	fixed = FixedCost(effect, globals, cat)
	return perGrade, fixed, max(1, perGrade*effect.Grade+fixed)
}

// Baseline returns the lowest default parameters among the power's resolvable effects
func Baseline(power *types.Power, cat *catalog.Catalog) types.Parameters {
	defaults := make([]types.Parameters, 0, len(power.Effects))
	for i := range power.Effects {
		if def, ok := cat.Effect(power.Effects[i].BaseEffectID); ok {
			defaults = append(defaults, def.DefaultParameters)
		}
	}
	return scale.Baseline(defaults)
}

// ParameterAdjustment computes the single adjustment shared by every effect of a power
func ParameterAdjustment(power *types.Power, cat *catalog.Catalog) int {
	return scale.TotalAdjustment(Baseline(power, cat), power.Parameters())
}

// PowerCost sums the cost of every effect and never returns less than 1
func PowerCost(power *types.Power, cat *catalog.Catalog) int {
	adjustment := ParameterAdjustment(power, cat)

	total := 0
	for i := range power.Effects {
		effect := &power.Effects[i]
		def, ok := cat.Effect(effect.BaseEffectID)
		if !ok {
			continue
		}
		total += EffectCost(def, effect, power.GlobalModifiers, cat, adjustment)
	}
	return max(1, total)
}

// EffectBreakdown is the cost detail of one effect
type EffectBreakdown struct {
	Effect       types.AppliedEffect `json:"effect"`
	Name         string              `json:"name,omitempty"`
	PerGradeCost int                 `json:"perGradeCost"`
	FixedCost    int                 `json:"fixedCost"`
	TotalCost    int                 `json:"totalCost"`
}

// Breakdown is the detailed cost of a power
type Breakdown struct {
	Effects             []EffectBreakdown `json:"effects"`
	TotalCost           int               `json:"totalCost"`
	EnergyTotal         int               `json:"energyTotal"`
	SlotTotal           int               `json:"slotTotal"`
	ParameterAdjustment int               `json:"parameterAdjustment"`
}

// Calculate produces the detailed cost of a power. A nil table yields zero energy and slots.
func Calculate(power *types.Power, cat *catalog.Catalog, table *ResourceTable) *Breakdown {
	adjustment := ParameterAdjustment(power, cat)

	result := &Breakdown{
		Effects:             make([]EffectBreakdown, 0, len(power.Effects)),
		ParameterAdjustment: adjustment,
	}

	total := 0
	for i := range power.Effects {
		effect := &power.Effects[i]
		def, ok := cat.Effect(effect.BaseEffectID)
		if !ok {
			continue
		}

		perGrade, fixed, effectTotal := effectCosts(def, effect, power.GlobalModifiers, cat, adjustment)
		total += effectTotal

		result.Effects = append(result.Effects, EffectBreakdown{
			Effect:       *effect,
			Name:         def.Name,
			PerGradeCost: perGrade,
			FixedCost:    fixed,
			TotalCost:    effectTotal,
		})
	}

	result.TotalCost = max(1, total)
	result.EnergyTotal = EnergyTotal(power, cat, table)
	result.SlotTotal = SlotTotal(power, cat, table)
	return result
}

// NewPower creates a power whose parameters default to the effect-derived baseline
func NewPower(id, name string, effects []types.AppliedEffect, cat *catalog.Catalog) *types.Power {
	power := &types.Power{
		ID:              id,
		Name:            name,
		Domain:          types.DomainNatural,
		Effects:         effects,
		GlobalModifiers: []types.AppliedModifier{},
	}
	if power.Effects == nil {
		power.Effects = []types.AppliedEffect{}
	}
	power.SetParameters(Baseline(power, cat))
	return power
}

func modifiersOf(effect *types.AppliedEffect, globals []types.AppliedModifier) []types.AppliedModifier {
	all := make([]types.AppliedModifier, 0, len(globals)+len(effect.LocalModifiers))
	all = append(all, globals...)
	return append(all, effect.LocalModifiers...)
}

func modifierCostPerGrade(mod *types.ModifierDefinition, applied types.AppliedModifier) int {
	cost := mod.CostPerGrade
	if opt, ok := mod.Configuration.Option(applied.SelectedConfigurationID()); ok {
		cost += opt.CostPerGradeDelta
	}
	return cost
}
