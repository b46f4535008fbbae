package types

import (
	"encoding/json"
	"fmt"
)

// ParameterValue is the value of a modifier's free parameter.
// Implementations: TextValue, NumberValue, OptionValue.
type ParameterValue interface {
	Kind() ParameterKind
	isParameterValue()
}

// TextValue is a free-text parameter value
type TextValue string

// NumberValue is an integer parameter value
type NumberValue int

// OptionValue is one of the modifier's declared parameter options
type OptionValue string

func (TextValue) Kind() ParameterKind   { return ParameterText }
func (NumberValue) Kind() ParameterKind { return ParameterNumber }
func (OptionValue) Kind() ParameterKind { return ParameterOption }

func (TextValue) isParameterValue()   {}
func (NumberValue) isParameterValue() {}
func (OptionValue) isParameterValue() {}

// ModifierParameters holds what an applied modifier was configured with
type ModifierParameters struct {
	SelectedConfigurationID string
	Value                   ParameterValue
}

// IsEmpty reports whether nothing is set
func (p *ModifierParameters) IsEmpty() bool {
	return p == nil || (p.SelectedConfigurationID == "" && p.Value == nil)
}

type modifierParametersJSON struct {
	SelectedConfigurationID string  `json:"selectedConfigurationId,omitempty"`
	Text                    *string `json:"text,omitempty"`
	Number                  *int    `json:"number,omitempty"`
	Option                  *string `json:"option,omitempty"`
}

// MarshalJSON writes the value under the key named by its kind
func (p ModifierParameters) MarshalJSON() ([]byte, error) {
	out := modifierParametersJSON{SelectedConfigurationID: p.SelectedConfigurationID}
	switch v := p.Value.(type) {
	case nil:
	case TextValue:
		s := string(v)
		out.Text = &s
	case NumberValue:
		n := int(v)
		out.Number = &n
	case OptionValue:
		s := string(v)
		out.Option = &s
	default:
		return nil, fmt.Errorf("unsupported parameter value %T", v)
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the first value key present
func (p *ModifierParameters) UnmarshalJSON(data []byte) error {
	var in modifierParametersJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	p.SelectedConfigurationID = in.SelectedConfigurationID
	p.Value = nil
	switch {
	case in.Text != nil:
		p.Value = TextValue(*in.Text)
	case in.Number != nil:
		p.Value = NumberValue(*in.Number)
	case in.Option != nil:
		p.Value = OptionValue(*in.Option)
	}
	return nil
}
