package types

// ConfigurationOption is one mutually exclusive choice of a configuration
type ConfigurationOption struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// CostPerGradeDelta is added to the owner's per-grade cost
	CostPerGradeDelta int `json:"costPerGradeDelta,omitempty" yaml:"costPerGradeDelta,omitempty"`

	// FixedCostDelta is added to the owner's fixed cost
	FixedCostDelta int `json:"fixedCostDelta,omitempty" yaml:"fixedCostDelta,omitempty"`

	// MinGrade is the lowest effect grade the option allows (0 = no minimum)
	MinGrade int `json:"minGrade,omitempty" yaml:"minGrade,omitempty"`

	// ProgressiveDoubling adds a bonus that doubles every two grades
	ProgressiveDoubling bool `json:"progressiveDoubling,omitempty" yaml:"progressiveDoubling,omitempty"`
}

// Configuration is a named set of mutually exclusive options
type Configuration struct {
	Kind    ConfigurationKind     `json:"kind" yaml:"kind"`
	Label   string                `json:"label,omitempty" yaml:"label,omitempty"`
	Options []ConfigurationOption `json:"options" yaml:"options"`
}

// Option finds an option by id
func (c *Configuration) Option(id string) (*ConfigurationOption, bool) {
	if c == nil || id == "" {
		return nil, false
	}
	for i := range c.Options {
		if c.Options[i].ID == id {
			return &c.Options[i], true
		}
	}
	return nil, false
}

// EffectDefinition is a catalog effect
type EffectDefinition struct {
	ID                string         `json:"id" yaml:"id"`
	Name              string         `json:"name,omitempty" yaml:"name,omitempty"`
	BaseCostPerGrade  int            `json:"baseCostPerGrade" yaml:"baseCostPerGrade"`
	DefaultParameters Parameters     `json:"defaultParameters" yaml:"defaultParameters"`
	Configuration     *Configuration `json:"configuration,omitempty" yaml:"configuration,omitempty"`
}

// GradeBounds limits the grade of a graded modifier. Fixed overrides Min and Max.
type GradeBounds struct {
	Min   int `json:"min,omitempty" yaml:"min,omitempty"`
	Max   int `json:"max,omitempty" yaml:"max,omitempty"`
	Fixed int `json:"fixed,omitempty" yaml:"fixed,omitempty"`
}

// Range returns the inclusive bounds. A zero max means unbounded.
func (b GradeBounds) Range() (lo, hi int) {
	if b.Fixed > 0 {
		return b.Fixed, b.Fixed
	}
	lo = b.Min
	if lo < 1 {
		lo = 1
	}
	return lo, b.Max
}

// ModifierDefinition is a catalog modifier
type ModifierDefinition struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name,omitempty" yaml:"name,omitempty"`
	Kind         ModifierKind `json:"kind" yaml:"kind"`
	FixedCost    int          `json:"fixedCost,omitempty" yaml:"fixedCost,omitempty"`
	CostPerGrade int          `json:"costPerGrade,omitempty" yaml:"costPerGrade,omitempty"`

	// Grade is set when the modifier takes a grade
	Grade *GradeBounds `json:"grade,omitempty" yaml:"grade,omitempty"`

	// Parameter is the free parameter the modifier needs, if any
	Parameter        ParameterKind `json:"parameter,omitempty" yaml:"parameter,omitempty"`
	ParameterOptions []string      `json:"parameterOptions,omitempty" yaml:"parameterOptions,omitempty"`

	Configuration *Configuration `json:"configuration,omitempty" yaml:"configuration,omitempty"`
}

// IsGraded reports whether the modifier declares a grade
func (m *ModifierDefinition) IsGraded() bool {
	return m.Grade != nil
}

// NeedsParameters reports whether applied instances may carry a parameters object
func (m *ModifierDefinition) NeedsParameters() bool {
	return m.Parameter != ParameterNone || m.Configuration != nil
}

// HasParameterOption checks if the option is one of the declared parameter options
func (m *ModifierDefinition) HasParameterOption(option string) bool {
	for _, o := range m.ParameterOptions {
		if o == option {
			return true
		}
	}
	return false
}

// ResourceRow maps a grade to the energy and slots it draws
type ResourceRow struct {
	Grade  int `json:"grade" yaml:"grade"`
	Energy int `json:"energy" yaml:"energy"`
	Slots  int `json:"slots" yaml:"slots"`
}
