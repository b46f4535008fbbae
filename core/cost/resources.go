package cost

import (
	"power-cost/core/catalog"
	"power-cost/core/types"
)

// ResourceTable maps an effect grade to the energy and slots it draws
type ResourceTable struct {
	rows map[int]types.ResourceRow
}

// NewResourceTable indexes resource rows by grade. A later row for the same grade wins.
func NewResourceTable(rows []types.ResourceRow) *ResourceTable {
	t := &ResourceTable{rows: make(map[int]types.ResourceRow, len(rows))}
	for _, row := range rows {
		t.rows[row.Grade] = row
	}
	return t
}

// Lookup finds the row for an exact grade
func (t *ResourceTable) Lookup(grade int) (types.ResourceRow, bool) {
	if t == nil {
		return types.ResourceRow{}, false
	}
	row, ok := t.rows[grade]
	return row, ok
}

// Len returns the number of grades in the table
func (t *ResourceTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// EnergyTotal is the highest effect energy plus 1 for every other effect
func EnergyTotal(power *types.Power, cat *catalog.Catalog, table *ResourceTable) int {
	return aggregate(power, cat, table, func(r types.ResourceRow) int { return r.Energy })
}

// SlotTotal is the highest effect slot count plus 1 for every other effect
func SlotTotal(power *types.Power, cat *catalog.Catalog, table *ResourceTable) int {
	return aggregate(power, cat, table, func(r types.ResourceRow) int { return r.Slots })
}

// Grades missing from the table count as 0.
func aggregate(power *types.Power, cat *catalog.Catalog, table *ResourceTable, value func(types.ResourceRow) int) int {
	count := 0
	highest := 0
	for i := range power.Effects {
		effect := &power.Effects[i]
		if _, ok := cat.Effect(effect.BaseEffectID); !ok {
			continue
		}
		count++
		if row, ok := table.Lookup(effect.Grade); ok {
			highest = max(highest, value(row))
		}
	}
	if count == 0 {
		return 0
	}
	return highest + (count - 1)
}
