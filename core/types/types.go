// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions and
// the small helpers needed to read them.
package types

// Scope is where an applied modifier is attached
type Scope string

const (
	// ScopeGlobal modifiers apply to every effect of a power
	ScopeGlobal Scope = "global"

	// ScopeLocal modifiers apply to a single effect
	ScopeLocal Scope = "local"
)

// ModifierKind separates cost-raising from cost-lowering modifiers
type ModifierKind string

const (
	ModifierExtra ModifierKind = "extra"
	ModifierFlaw  ModifierKind = "flaw"
)

// IsValid checks if the kind is known
func (k ModifierKind) IsValid() bool {
	return k == ModifierExtra || k == ModifierFlaw
}

// ConfigurationKind describes how a configuration's options are chosen
type ConfigurationKind string

const (
	// ConfigurationSingle requires exactly one option to be selected
	ConfigurationSingle ConfigurationKind = "single"

	// ConfigurationOptional allows at most one option, possibly none
	ConfigurationOptional ConfigurationKind = "optional"
)

// ParameterKind is the shape of the free parameter a modifier declares
type ParameterKind string

const (
	ParameterNone   ParameterKind = ""
	ParameterText   ParameterKind = "text"
	ParameterNumber ParameterKind = "number"
	ParameterOption ParameterKind = "option"
)

// IsValid checks if the parameter kind is known
func (k ParameterKind) IsValid() bool {
	switch k {
	case ParameterNone, ParameterText, ParameterNumber, ParameterOption:
		return true
	default:
		return false
	}
}

// Domain is the source a power draws from. Some domains carry a companion field.
type Domain string

const (
	DomainNatural       Domain = "natural"
	DomainArcane        Domain = "arcane"
	DomainDivine        Domain = "divine"
	DomainPsionic       Domain = "psionic"
	DomainTechnological Domain = "technological"
)

// DefaultArcaneSchool is backfilled when an arcane power has no school
const DefaultArcaneSchool = "general"

// DefaultTechLevel is backfilled when a technological power has no tech level
const DefaultTechLevel = 1

// IsValid checks if the domain is known
func (d Domain) IsValid() bool {
	switch d {
	case DomainNatural, DomainArcane, DomainDivine, DomainPsionic, DomainTechnological:
		return true
	default:
		return false
	}
}

// AlternativeCostKind tags the alternative cost variants
type AlternativeCostKind string

const (
	AltCostEnergy    AlternativeCostKind = "pe"
	AltCostVitality  AlternativeCostKind = "pv"
	AltCostAttribute AlternativeCostKind = "attribute"
	AltCostItem      AlternativeCostKind = "item"
	AltCostMaterial  AlternativeCostKind = "material"
)

// IsValid checks if the alternative cost kind is known
func (k AlternativeCostKind) IsValid() bool {
	switch k {
	case AltCostEnergy, AltCostVitality, AltCostAttribute, AltCostItem, AltCostMaterial:
		return true
	default:
		return false
	}
}

// HasValue reports whether the variant carries a numeric amount
func (k AlternativeCostKind) HasValue() bool {
	switch k {
	case AltCostEnergy, AltCostVitality, AltCostAttribute, AltCostMaterial:
		return true
	default:
		return false
	}
}

// HasDescription reports whether the variant carries a free-text description
func (k AlternativeCostKind) HasDescription() bool {
	return k == AltCostItem || k == AltCostMaterial
}

// Parameters holds the action, range and duration levels of a power or effect
type Parameters struct {
	Action   int `json:"action" yaml:"action"`
	Range    int `json:"range" yaml:"range"`
	Duration int `json:"duration" yaml:"duration"`
}
