package hydration

import (
	"sort"

	"power-cost/core/types"
)

const (
	keySelectedConfiguration = "selectedConfigurationId"
	keyText                  = "text"
	keyNumber                = "number"
	keyOption                = "option"
)

// repairModifiers repairs a global or local modifier list. owner names the list in messages.
func (p *pass) repairModifiers(raw any, scope types.Scope, owner string) []types.AppliedModifier {
	out := []types.AppliedModifier{}
	if raw == nil {
		return out
	}
	list, ok := asList(raw)
	if !ok {
		p.change("%s: modifiers was not a list and was cleared", owner)
		return out
	}

	for i, item := range list {
		obj, ok := asObject(item)
		if !ok {
			p.change("%s: dropped malformed modifier at position %d", owner, i+1)
			continue
		}
		if m, ok := p.repairModifier(obj, scope, owner, i); ok {
			out = append(out, m)
		}
	}
	return out
}

func (p *pass) repairModifier(obj map[string]any, scope types.Scope, owner string, index int) (types.AppliedModifier, bool) {
	baseID, _ := stringValue(obj["baseModifierId"])
	if baseID == "" {
		p.warn("%s: modifier at position %d has no base modifier and was removed", owner, index+1)
		return types.AppliedModifier{}, false
	}
	def, ok := p.catalog.Modifier(baseID)
	if !ok {
		p.warn("%s: modifier %q no longer exists and was removed%s", owner, baseID, p.modifierHint(baseID))
		return types.AppliedModifier{}, false
	}

	m := types.AppliedModifier{BaseModifierID: baseID, Scope: scope}

	if id, _ := stringValue(obj["id"]); id != "" {
		m.ID = id
	} else {
		m.ID = p.newID()
		p.change("%s: assigned id %s to modifier %q", owner, m.ID, baseID)
	}

	if s, _ := stringValue(obj["scope"]); s != string(scope) {
		p.change("modifier %s: scope %q corrected to %q", m.ID, s, scope)
	}

	p.repairModifierGrade(def, &m, obj)
	p.repairModifierParameters(def, &m, obj)
	return m, true
}

func (p *pass) repairModifierGrade(def *types.ModifierDefinition, m *types.AppliedModifier, obj map[string]any) {
	raw, present := obj["appliedGrade"]
	present = present && raw != nil

	if !def.IsGraded() {
		if present {
			p.change("modifier %s: removed grade from ungraded modifier %q", m.ID, def.ID)
		}
		return
	}

	lo, hi := def.Grade.Range()
	if !present {
		m.AppliedGrade = &lo
		p.change("modifier %s: grade was missing; set to %d", m.ID, lo)
		return
	}

	f, ok := toNumber(raw)
	if !ok || !isFinite(f) {
		m.AppliedGrade = &lo
		p.change("modifier %s: invalid grade %v set to %d", m.ID, raw, lo)
		return
	}

	grade := clampWhole(f)
	clamped := max(grade, lo)
	if hi > 0 {
		clamped = min(clamped, hi)
	}
	if float64(clamped) != f {
		p.change("modifier %s: grade %v clamped to %d", m.ID, raw, clamped)
	}
	m.AppliedGrade = &clamped
}

func (p *pass) repairModifierParameters(def *types.ModifierDefinition, m *types.AppliedModifier, obj map[string]any) {
	raw, present := obj["parameters"]
	present = present && raw != nil

	if present && !def.NeedsParameters() {
		p.change("modifier %s: removed parameters that %q does not take", m.ID, def.ID)
		return
	}

	var params *types.ModifierParameters
	if present {
		fields, ok := asObject(raw)
		if !ok {
			p.change("modifier %s: dropped malformed parameters", m.ID)
		} else {
			params = p.readParameters(def, m.ID, fields)
		}
	}

	if cfg := def.Configuration; cfg != nil && cfg.Kind == types.ConfigurationSingle && len(cfg.Options) > 0 {
		if params == nil {
			params = &types.ModifierParameters{}
		}
		if params.SelectedConfigurationID == "" {
			params.SelectedConfigurationID = p.defaultOption(def)
			p.change("modifier %s: defaulted %q configuration to %q", m.ID, def.ID, params.SelectedConfigurationID)
		}
	}

	m.Parameters = params
}

func (p *pass) readParameters(def *types.ModifierDefinition, id string, fields map[string]any) *types.ModifierParameters {
	params := &types.ModifierParameters{}

	if raw := fields[keySelectedConfiguration]; raw != nil {
		selected, ok := stringValue(raw)
		switch {
		case !ok:
			p.change("modifier %s: dropped malformed configuration selection", id)
		case selected == "":
		default:
			if _, found := def.Configuration.Option(selected); found {
				params.SelectedConfigurationID = selected
			} else {
				p.warn("modifier %s: configuration option %q of %q no longer exists and was removed", id, selected, def.ID)
			}
		}
	}

	valueKeys := map[string]types.ParameterKind{
		keyText:   types.ParameterText,
		keyNumber: types.ParameterNumber,
		keyOption: types.ParameterOption,
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if key == keySelectedConfiguration {
			continue
		}
		raw := fields[key]
		kind, known := valueKeys[key]
		switch {
		case !known:
			p.change("modifier %s: dropped unknown parameter %q", id, key)
		case raw == nil:
		case kind != def.Parameter:
			p.change("modifier %s: dropped %s parameter that %q does not declare", id, key, def.ID)
		case params.Value != nil:
			p.change("modifier %s: dropped extra %s parameter", id, key)
		default:
			params.Value = p.readValue(def, id, kind, raw)
		}
	}

	return params
}

func (p *pass) readValue(def *types.ModifierDefinition, id string, kind types.ParameterKind, raw any) types.ParameterValue {
	switch kind {
	case types.ParameterText:
		if s, ok := stringValue(raw); ok {
			return types.TextValue(s)
		}
		p.change("modifier %s: dropped non-text value %v", id, raw)
	case types.ParameterNumber:
		f, ok := toNumber(raw)
		if !ok || !isFinite(f) {
			p.change("modifier %s: dropped non-numeric value %v", id, raw)
			return nil
		}
		n := clampWhole(f)
		if float64(n) != f {
			p.change("modifier %s: value %v coerced to %d", id, raw, n)
		}
		return types.NumberValue(n)
	case types.ParameterOption:
		s, ok := stringValue(raw)
		if !ok {
			p.change("modifier %s: dropped malformed option %v", id, raw)
			return nil
		}
		if def.HasParameterOption(s) {
			return types.OptionValue(s)
		}
		p.warn("modifier %s: option %q of %q no longer exists and was removed", id, s, def.ID)
	}
	return nil
}

// defaultOption picks the override for a modifier when it names a real option, else the first option
func (p *pass) defaultOption(def *types.ModifierDefinition) string {
	if override, ok := p.defaultOptions[def.ID]; ok {
		if _, found := def.Configuration.Option(override); found {
			return override
		}
	}
	return def.Configuration.Options[0].ID
}
