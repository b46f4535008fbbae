package cost

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"power-cost/core/catalog"
	"power-cost/core/types"
)

// TestMinimumClamp verifies no cost drops below 1, however heavy the flaws.
// Property: perGrade >= 1 and total >= 1 for every non-empty power
func TestMinimumClamp(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("costs never drop below 1", prop.ForAll(
		func(grade, flaws, flawCost, fixed, rangeLevel int) bool {
			cat := catalog.New(
				[]types.EffectDefinition{{ID: "x", BaseCostPerGrade: 1, DefaultParameters: types.Parameters{Range: 3}}},
				[]types.ModifierDefinition{{ID: "flaw", Kind: types.ModifierFlaw, CostPerGrade: flawCost, FixedCost: fixed}},
			)
			power := &types.Power{
				Effects: []types.AppliedEffect{{ID: "e", BaseEffectID: "x", Grade: grade}},
				Range:   rangeLevel,
			}
			for i := 0; i < flaws; i++ {
				power.GlobalModifiers = append(power.GlobalModifiers, types.AppliedModifier{
					ID: "m", BaseModifierID: "flaw", Scope: types.ScopeGlobal,
				})
			}

			breakdown := Calculate(power, cat, nil)
			if breakdown.TotalCost < 1 {
				return false
			}
			for _, e := range breakdown.Effects {
				if e.PerGradeCost < 1 || e.TotalCost < 1 {
					return false
				}
			}
			return PowerCost(power, cat) >= 1
		},
		gen.IntRange(1, 20),
		gen.IntRange(0, 6),
		gen.IntRange(-5, 0),
		gen.IntRange(-30, 0),
		gen.IntRange(0, 3),
	))

	properties.TestingRun(t)
}
