package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifierParametersJSON(t *testing.T) {
	tests := []struct {
		name   string
		params ModifierParameters
		json   string
	}{
		{"empty", ModifierParameters{}, `{}`},
		{"selection only", ModifierParameters{SelectedConfigurationID: "worn"}, `{"selectedConfigurationId":"worn"}`},
		{"text", ModifierParameters{Value: TextValue("sunlight")}, `{"text":"sunlight"}`},
		{"number", ModifierParameters{Value: NumberValue(0)}, `{"number":0}`},
		{"option with selection", ModifierParameters{SelectedConfigurationID: "held", Value: OptionValue("fire")}, `{"selectedConfigurationId":"held","option":"fire"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.params)
			require.NoError(t, err)
			assert.JSONEq(t, tt.json, string(data))

			var decoded ModifierParameters
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.params, decoded)
		})
	}
}

func TestModifierParametersFirstValueWins(t *testing.T) {
	var p ModifierParameters
	require.NoError(t, json.Unmarshal([]byte(`{"number":3,"option":"fire"}`), &p))
	assert.Equal(t, NumberValue(3), p.Value)
	assert.Equal(t, ParameterNumber, p.Value.Kind())
}

func TestModifierParametersIsEmpty(t *testing.T) {
	var nilParams *ModifierParameters
	assert.True(t, nilParams.IsEmpty())
	assert.True(t, (&ModifierParameters{}).IsEmpty())
	assert.False(t, (&ModifierParameters{Value: TextValue("")}).IsEmpty())
}

func TestGradeBoundsRange(t *testing.T) {
	tests := []struct {
		name   string
		bounds GradeBounds
		lo, hi int
	}{
		{"zero value", GradeBounds{}, 1, 0},
		{"min and max", GradeBounds{Min: 2, Max: 4}, 2, 4},
		{"fixed overrides", GradeBounds{Min: 2, Max: 4, Fixed: 3}, 3, 3},
		{"negative min", GradeBounds{Min: -2}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tt.bounds.Range()
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}

func TestModifierDefinition(t *testing.T) {
	plain := ModifierDefinition{ID: "homing", Kind: ModifierExtra}
	assert.False(t, plain.IsGraded())
	assert.False(t, plain.NeedsParameters())

	graded := ModifierDefinition{ID: "area", Grade: &GradeBounds{Max: 5}}
	assert.True(t, graded.IsGraded())

	element := ModifierDefinition{ID: "element", Parameter: ParameterOption, ParameterOptions: []string{"fire", "ice"}}
	assert.True(t, element.NeedsParameters())
	assert.True(t, element.HasParameterOption("ice"))
	assert.False(t, element.HasParameterOption("acid"))

	focus := ModifierDefinition{ID: "focus", Configuration: &Configuration{Kind: ConfigurationSingle}}
	assert.True(t, focus.NeedsParameters())
}

func TestConfigurationOption(t *testing.T) {
	cfg := &Configuration{Options: []ConfigurationOption{{ID: "worn"}, {ID: "held", CostPerGradeDelta: -1}}}

	opt, ok := cfg.Option("held")
	require.True(t, ok)
	assert.Equal(t, -1, opt.CostPerGradeDelta)

	_, ok = cfg.Option("")
	assert.False(t, ok)

	var none *Configuration
	_, ok = none.Option("held")
	assert.False(t, ok)
}

func TestAlternativeCostKind(t *testing.T) {
	tests := []struct {
		kind        AlternativeCostKind
		valid       bool
		value       bool
		description bool
	}{
		{AltCostEnergy, true, true, false},
		{AltCostVitality, true, true, false},
		{AltCostAttribute, true, true, false},
		{AltCostItem, true, false, true},
		{AltCostMaterial, true, true, true},
		{"gold", false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.kind.IsValid())
			assert.Equal(t, tt.value, tt.kind.HasValue())
			assert.Equal(t, tt.description, tt.kind.HasDescription())
		})
	}
}

func TestPowerParameters(t *testing.T) {
	p := &Power{}
	p.SetParameters(Parameters{Action: 1, Range: 2, Duration: 3})
	assert.Equal(t, Parameters{Action: 1, Range: 2, Duration: 3}, p.Parameters())

	grade := 2
	m := AppliedModifier{AppliedGrade: &grade, Parameters: &ModifierParameters{SelectedConfigurationID: "worn"}}
	assert.Equal(t, 2, m.Grade())
	assert.Equal(t, "worn", m.SelectedConfigurationID())
	assert.Equal(t, 0, (&AppliedModifier{}).Grade())
}
