package types

// AppliedModifier is a catalog modifier attached to a power or an effect
type AppliedModifier struct {
	ID             string              `json:"id"`
	BaseModifierID string              `json:"baseModifierId"`
	Scope          Scope               `json:"scope"`
	AppliedGrade   *int                `json:"appliedGrade,omitempty"`
	Parameters     *ModifierParameters `json:"parameters,omitempty"`
}

// Grade returns the applied grade, or 0 when none is set
func (m *AppliedModifier) Grade() int {
	if m.AppliedGrade == nil {
		return 0
	}
	return *m.AppliedGrade
}

// SelectedConfigurationID returns the selected option id, if any
func (m *AppliedModifier) SelectedConfigurationID() string {
	if m.Parameters == nil {
		return ""
	}
	return m.Parameters.SelectedConfigurationID
}

// AppliedEffect is a catalog effect included in a power
type AppliedEffect struct {
	ID                      string            `json:"id"`
	BaseEffectID            string            `json:"baseEffectId"`
	Grade                   int               `json:"grade"`
	LocalModifiers          []AppliedModifier `json:"localModifiers"`
	CustomInput             string            `json:"customInput,omitempty"`
	SelectedConfigurationID string            `json:"selectedConfigurationId,omitempty"`
}

// AlternativeCost replaces the usual resource payment of a power
type AlternativeCost struct {
	Kind        AlternativeCostKind `json:"kind"`
	Value       int                 `json:"value,omitempty"`
	Attribute   string              `json:"attribute,omitempty"`
	Description string              `json:"description,omitempty"`
}

// Power is the composite, costed object a player builds
type Power struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// Version is the schema version the record was hydrated with
	Version string `json:"version"`

	Domain       Domain `json:"domain"`
	ArcaneSchool string `json:"arcaneSchool,omitempty"`
	TechLevel    int    `json:"techLevel,omitempty"`

	Effects         []AppliedEffect   `json:"effects"`
	GlobalModifiers []AppliedModifier `json:"globalModifiers"`

	Action   int `json:"action"`
	Range    int `json:"range"`
	Duration int `json:"duration"`

	AlternativeCost *AlternativeCost `json:"alternativeCost,omitempty"`
}

// Parameters returns the power-level action, range and duration
func (p *Power) Parameters() Parameters {
	return Parameters{Action: p.Action, Range: p.Range, Duration: p.Duration}
}

// SetParameters overwrites the power-level action, range and duration
func (p *Power) SetParameters(params Parameters) {
	p.Action = params.Action
	p.Range = params.Range
	p.Duration = params.Duration
}
