// Package catalog - Catalog validation
// Ensures catalog integrity before any record is hydrated against it.
package catalog

import (
	"fmt"

	"power-cost/core/types"
)

// EffectRule is an effect validation rule
type EffectRule func(*types.EffectDefinition) error

// ModifierRule is a modifier validation rule
type ModifierRule func(*types.ModifierDefinition) error

// Rules groups the validation rules applied to a catalog
type Rules struct {
	Effects   []EffectRule
	Modifiers []ModifierRule
}

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() Rules {
	return Rules{
		Effects: []EffectRule{
			validateEffectID,
			validateEffectDefaults,
			func(e *types.EffectDefinition) error { return validateConfiguration(e.Configuration) },
		},
		Modifiers: []ModifierRule{
			validateModifierID,
			validateModifierKind,
			validateGradeBounds,
			validateParameter,
			func(m *types.ModifierDefinition) error { return validateConfiguration(m.Configuration) },
		},
	}
}

// Validate checks a catalog against validation rules
func (c *Catalog) Validate(rules Rules) []error {
	var errors []error

	seen := make(map[string]bool)
	for _, entry := range c.effects {
		if seen[entry.ID] {
			errors = append(errors, fmt.Errorf("effect %s: duplicate id", entry.ID))
		}
		seen[entry.ID] = true
		for _, rule := range rules.Effects {
			if err := rule(entry); err != nil {
				errors = append(errors, fmt.Errorf("effect %s: %w", entry.ID, err))
			}
		}
	}

	seen = make(map[string]bool)
	for _, entry := range c.modifiers {
		if seen[entry.ID] {
			errors = append(errors, fmt.Errorf("modifier %s: duplicate id", entry.ID))
		}
		seen[entry.ID] = true
		for _, rule := range rules.Modifiers {
			if err := rule(entry); err != nil {
				errors = append(errors, fmt.Errorf("modifier %s: %w", entry.ID, err))
			}
		}
	}

	return errors
}

func validateEffectID(e *types.EffectDefinition) error {
	if e.ID == "" {
		return fmt.Errorf("id is required")
	}
	return nil
}

func validateEffectDefaults(e *types.EffectDefinition) error {
	d := e.DefaultParameters
	if d.Action < 0 || d.Range < 0 || d.Duration < 0 {
		return fmt.Errorf("default parameters must be non-negative, got %+v", d)
	}
	return nil
}

func validateModifierID(m *types.ModifierDefinition) error {
	if m.ID == "" {
		return fmt.Errorf("id is required")
	}
	return nil
}

func validateModifierKind(m *types.ModifierDefinition) error {
	if !m.Kind.IsValid() {
		return fmt.Errorf("unknown kind %q", m.Kind)
	}
	return nil
}

func validateGradeBounds(m *types.ModifierDefinition) error {
	if m.Grade == nil {
		return nil
	}
	lo, hi := m.Grade.Range()
	if hi != 0 && hi < lo {
		return fmt.Errorf("grade max %d is below min %d", hi, lo)
	}
	return nil
}

func validateParameter(m *types.ModifierDefinition) error {
	if !m.Parameter.IsValid() {
		return fmt.Errorf("unknown parameter kind %q", m.Parameter)
	}
	if m.Parameter == types.ParameterOption && len(m.ParameterOptions) == 0 {
		return fmt.Errorf("option parameter declares no options")
	}
	if m.Parameter != types.ParameterOption && len(m.ParameterOptions) > 0 {
		return fmt.Errorf("parameter options declared for %q parameter", m.Parameter)
	}
	return nil
}

func validateConfiguration(cfg *types.Configuration) error {
	if cfg == nil {
		return nil
	}
	switch cfg.Kind {
	case types.ConfigurationSingle, types.ConfigurationOptional:
	default:
		return fmt.Errorf("unknown configuration kind %q", cfg.Kind)
	}
	if len(cfg.Options) == 0 {
		return fmt.Errorf("configuration has no options")
	}
	seen := make(map[string]bool, len(cfg.Options))
	for _, opt := range cfg.Options {
		if opt.ID == "" {
			return fmt.Errorf("configuration option without id")
		}
		if seen[opt.ID] {
			return fmt.Errorf("duplicate configuration option %s", opt.ID)
		}
		seen[opt.ID] = true
		if opt.MinGrade < 0 {
			return fmt.Errorf("option %s: negative minimum grade", opt.ID)
		}
	}
	return nil
}

// MustValidate panics if validation fails
func (c *Catalog) MustValidate() {
	errors := c.Validate(DefaultValidationRules())
	if len(errors) > 0 {
		panic(fmt.Sprintf("catalog has %d validation errors: %v", len(errors), errors[0]))
	}
}
