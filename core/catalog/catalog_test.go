package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"power-cost/core/types"
)

func testCatalog() *Catalog {
	return New(
		[]types.EffectDefinition{
			{ID: "blast", Name: "Blast", BaseCostPerGrade: 2},
			{ID: "shield", Name: "Shield", BaseCostPerGrade: 1, Configuration: &types.Configuration{
				Kind:    types.ConfigurationSingle,
				Options: []types.ConfigurationOption{{ID: "physical"}, {ID: "mental", CostPerGradeDelta: 1}},
			}},
			{ID: "blast", Name: "Shadow Blast", BaseCostPerGrade: 9},
		},
		[]types.ModifierDefinition{
			{ID: "area", Kind: types.ModifierExtra, CostPerGrade: 1},
			{ID: "tiring", Kind: types.ModifierFlaw, CostPerGrade: -1},
			{ID: "homing", Kind: types.ModifierExtra, FixedCost: 1},
		},
	)
}

func TestLookup(t *testing.T) {
	c := testCatalog()

	e, ok := c.Effect("blast")
	require.True(t, ok)
	assert.Equal(t, "Blast", e.Name, "first definition wins")

	_, ok = c.Effect("missing")
	assert.False(t, ok)

	m, ok := c.Modifier("tiring")
	require.True(t, ok)
	assert.Equal(t, -1, m.CostPerGrade)

	var nilCatalog *Catalog
	_, ok = nilCatalog.Effect("blast")
	assert.False(t, ok)
	_, ok = nilCatalog.Modifier("area")
	assert.False(t, ok)
}

func TestOrderAndStats(t *testing.T) {
	c := testCatalog()

	effects := c.Effects()
	require.Len(t, effects, 3)
	assert.Equal(t, "shield", effects[1].ID)

	stats := c.Stats()
	assert.Equal(t, Stats{
		Effects:             3,
		Modifiers:           3,
		Extras:              2,
		Flaws:               1,
		ConfigurableEffects: 1,
	}, stats)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		effects   []types.EffectDefinition
		modifiers []types.ModifierDefinition
		want      []string
	}{
		{
			name:      "valid",
			effects:   []types.EffectDefinition{{ID: "blast", BaseCostPerGrade: 2}},
			modifiers: []types.ModifierDefinition{{ID: "area", Kind: types.ModifierExtra}},
		},
		{
			name:    "duplicate effect",
			effects: []types.EffectDefinition{{ID: "blast"}, {ID: "blast"}},
			want:    []string{"effect blast: duplicate id"},
		},
		{
			name:    "missing id and negative defaults",
			effects: []types.EffectDefinition{{DefaultParameters: types.Parameters{Range: -1}}},
			want:    []string{"id is required", "default parameters must be non-negative"},
		},
		{
			name:      "unknown kind",
			modifiers: []types.ModifierDefinition{{ID: "odd", Kind: "bonus"}},
			want:      []string{`modifier odd: unknown kind "bonus"`},
		},
		{
			name:      "inverted grade bounds",
			modifiers: []types.ModifierDefinition{{ID: "area", Kind: types.ModifierExtra, Grade: &types.GradeBounds{Min: 4, Max: 2}}},
			want:      []string{"grade max 2 is below min 4"},
		},
		{
			name:      "option parameter without options",
			modifiers: []types.ModifierDefinition{{ID: "element", Kind: types.ModifierExtra, Parameter: types.ParameterOption}},
			want:      []string{"option parameter declares no options"},
		},
		{
			name: "duplicate configuration option",
			modifiers: []types.ModifierDefinition{{ID: "focus", Kind: types.ModifierFlaw, Configuration: &types.Configuration{
				Kind:    types.ConfigurationSingle,
				Options: []types.ConfigurationOption{{ID: "worn"}, {ID: "worn"}},
			}}},
			want: []string{"duplicate configuration option worn"},
		},
		{
			name: "empty configuration",
			effects: []types.EffectDefinition{{ID: "shield", Configuration: &types.Configuration{
				Kind: types.ConfigurationOptional,
			}}},
			want: []string{"configuration has no options"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := New(tt.effects, tt.modifiers).Validate(DefaultValidationRules())
			require.Len(t, errs, len(tt.want))
			for i, want := range tt.want {
				assert.Contains(t, errs[i].Error(), want)
			}
		})
	}
}

func TestMustValidatePanics(t *testing.T) {
	c := New([]types.EffectDefinition{{ID: ""}}, nil)
	assert.Panics(t, c.MustValidate)
	assert.NotPanics(t, New(nil, nil).MustValidate)
}

func TestSuggest(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name    string
		suggest func(string) (string, bool)
		id      string
		want    string
		wantOK  bool
	}{
		{"typo", c.SuggestEffect, "blastt", "blast", true},
		{"transposed", c.SuggestEffect, "sheild", "shield", true},
		{"too far", c.SuggestEffect, "teleport", "", false},
		{"too short", c.SuggestEffect, "bl", "", false},
		{"exact match is not a suggestion", c.SuggestEffect, "blast", "", false},
		{"modifier", c.SuggestModifier, "tirng", "tiring", true},
		{"short candidate limit", c.SuggestModifier, "arxx", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.suggest(tt.id)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	var nilCatalog *Catalog
	_, ok := nilCatalog.SuggestEffect("blast")
	assert.False(t, ok)
}

func TestValidateMessagesNameTheEntry(t *testing.T) {
	errs := New(nil, []types.ModifierDefinition{{ID: "bad", Kind: "x", Parameter: "color"}}).Validate(DefaultValidationRules())
	require.Len(t, errs, 2)
	for _, err := range errs {
		assert.True(t, strings.HasPrefix(err.Error(), "modifier bad:"))
	}
}
