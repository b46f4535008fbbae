package cost

import (
	"testing"

	"power-cost/core/types"
)

func TestResourceAggregation(t *testing.T) {
	cat := testCatalog()
	table := NewResourceTable([]types.ResourceRow{
		{Grade: 1, Energy: 3, Slots: 1},
		{Grade: 2, Energy: 3, Slots: 1},
		{Grade: 5, Energy: 5, Slots: 2},
	})

	power := &types.Power{Effects: []types.AppliedEffect{
		{ID: "e1", BaseEffectID: "blast", Grade: 5},
		{ID: "e2", BaseEffectID: "blast", Grade: 1},
		{ID: "e3", BaseEffectID: "shield", Grade: 2},
	}}

	if got := EnergyTotal(power, cat, table); got != 7 {
		t.Errorf("EnergyTotal = %d, want 7", got)
	}
	if got := SlotTotal(power, cat, table); got != 4 {
		t.Errorf("SlotTotal = %d, want 4", got)
	}
}

func TestResourceAggregationSingleEffect(t *testing.T) {
	cat := testCatalog()
	table := NewResourceTable([]types.ResourceRow{{Grade: 3, Energy: 4, Slots: 2}})
	power := &types.Power{Effects: []types.AppliedEffect{{ID: "e1", BaseEffectID: "blast", Grade: 3}}}

	breakdown := Calculate(power, cat, table)
	if breakdown.EnergyTotal != 4 || breakdown.SlotTotal != 2 {
		t.Errorf("got energy %d slots %d, want 4 and 2", breakdown.EnergyTotal, breakdown.SlotTotal)
	}
}

func TestResourceGradeMissingFromTable(t *testing.T) {
	cat := testCatalog()
	table := NewResourceTable([]types.ResourceRow{{Grade: 1, Energy: 2, Slots: 1}})
	power := &types.Power{Effects: []types.AppliedEffect{
		{ID: "e1", BaseEffectID: "blast", Grade: 9},
		{ID: "e2", BaseEffectID: "blast", Grade: 9},
	}}

	if got := EnergyTotal(power, cat, table); got != 1 {
		t.Errorf("EnergyTotal = %d, want 1", got)
	}
	if table.Len() != 1 {
		t.Errorf("table length = %d", table.Len())
	}
}
