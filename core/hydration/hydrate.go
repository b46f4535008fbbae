// Package hydration repairs persisted power records against the current catalog.
//
// Hydration is a single pass: version check, effect repair, global modifier
// repair, parameter repair, required-field backfill, domain field repair and
// alternative-cost repair, then the output is stamped with SchemaVersion.
//
// Removing something because it references a catalog entry that no longer
// exists is reported as a warning. Every other repair is reported as a change.
// Hydrating an already hydrated, catalog-consistent record reports nothing.
package hydration

import (
	"fmt"

	"github.com/google/uuid"

	"power-cost/core/catalog"
	"power-cost/core/record"
	"power-cost/core/scale"
	"power-cost/core/types"
)

// SchemaVersion is stamped on every hydrated power
const SchemaVersion = "2.0.0"

// PlaceholderName is used for powers saved without a name
const PlaceholderName = "Untitled Power"

// Result is a repaired power plus what was done to it
type Result struct {
	Power *types.Power `json:"power"`

	// Warnings report data loss: items dropped because they no longer exist
	Warnings []string `json:"warnings"`

	// Changes report lossless repairs
	Changes []string `json:"changes"`
}

// HasIssues reports whether anything was repaired
func (r *Result) HasIssues() bool {
	return len(r.Warnings) > 0 || len(r.Changes) > 0
}

// Option configures a Hydrator
type Option func(*Hydrator)

// WithIDGenerator replaces the identifier source used for missing ids
func WithIDGenerator(fn func() string) Option {
	return func(h *Hydrator) {
		h.newID = fn
	}
}

// WithDefaultOptions sets per-modifier default configuration options.
// Keys are modifier ids, values option ids. Modifiers without an entry, or
// whose entry names an unknown option, default to their first declared option.
func WithDefaultOptions(overrides map[string]string) Option {
	return func(h *Hydrator) {
		for k, v := range overrides {
			h.defaultOptions[k] = v
		}
	}
}

// Hydrator repairs records against one catalog
type Hydrator struct {
	catalog        *catalog.Catalog
	newID          func() string
	defaultOptions map[string]string
}

// NewHydrator creates a hydrator for a catalog
func NewHydrator(cat *catalog.Catalog, opts ...Option) *Hydrator {
	h := &Hydrator{
		catalog:        cat,
		newID:          uuid.NewString,
		defaultOptions: make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hydrate repairs a record with default options
func Hydrate(rec record.Record, cat *catalog.Catalog) Result {
	return NewHydrator(cat).Hydrate(rec)
}

// pass carries the state of one hydration
type pass struct {
	*Hydrator
	rec      record.Record
	power    *types.Power
	warnings []string
	changes  []string
}

func (p *pass) warn(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

func (p *pass) change(format string, args ...any) {
	p.changes = append(p.changes, fmt.Sprintf(format, args...))
}

// Hydrate repairs a record. The input is never modified.
func (h *Hydrator) Hydrate(rec record.Record) Result {
	p := &pass{
		Hydrator: h,
		rec:      rec,
		power:    &types.Power{},
		warnings: []string{},
		changes:  []string{},
	}

	p.checkVersion()
	p.repairEffects()
	p.power.GlobalModifiers = p.repairModifiers(rec["globalModifiers"], types.ScopeGlobal, "power")
	p.repairParameters()
	p.backfillRequired()
	p.repairDomain()
	p.repairAlternativeCost()
	p.power.Version = SchemaVersion

	return Result{Power: p.power, Warnings: p.warnings, Changes: p.changes}
}

func (p *pass) repairEffects() {
	p.power.Effects = []types.AppliedEffect{}

	raw, present := p.rec["effects"]
	if !present || raw == nil {
		return
	}
	list, ok := asList(raw)
	if !ok {
		p.change("effects was not a list and was cleared")
		return
	}

	for i, item := range list {
		obj, ok := asObject(item)
		if !ok {
			p.change("dropped malformed effect at position %d", i+1)
			continue
		}
		if effect, ok := p.repairEffect(obj, i); ok {
			p.power.Effects = append(p.power.Effects, effect)
		}
	}
}

func (p *pass) repairEffect(obj map[string]any, index int) (types.AppliedEffect, bool) {
	baseID, _ := stringValue(obj["baseEffectId"])
	if baseID == "" {
		p.warn("effect at position %d has no base effect and was removed", index+1)
		return types.AppliedEffect{}, false
	}
	def, ok := p.catalog.Effect(baseID)
	if !ok {
		p.warn("effect %q no longer exists and was removed%s", baseID, p.effectHint(baseID))
		return types.AppliedEffect{}, false
	}

	effect := types.AppliedEffect{BaseEffectID: baseID}

	if id, _ := stringValue(obj["id"]); id != "" {
		effect.ID = id
	} else {
		effect.ID = p.newID()
		p.change("assigned id %s to effect %q", effect.ID, baseID)
	}

	if grade, ok := positiveInt(obj["grade"]); ok {
		effect.Grade = grade
	} else {
		effect.Grade = 1
		p.change("effect %s: invalid grade %v set to 1", effect.ID, obj["grade"])
	}

	if raw, present := obj["customInput"]; present && raw != nil {
		if s, ok := stringValue(raw); ok {
			effect.CustomInput = s
		} else {
			p.change("effect %s: dropped non-text custom input", effect.ID)
		}
	}

	p.repairEffectConfiguration(def, &effect, obj["selectedConfigurationId"])

	effect.LocalModifiers = p.repairModifiers(obj["localModifiers"], types.ScopeLocal, "effect "+effect.ID)
	return effect, true
}

func (p *pass) repairEffectConfiguration(def *types.EffectDefinition, effect *types.AppliedEffect, raw any) {
	if raw != nil {
		selected, ok := stringValue(raw)
		switch {
		case !ok:
			p.change("effect %s: dropped malformed configuration selection", effect.ID)
		case selected == "":
		case def.Configuration == nil:
			p.warn("effect %s: configuration option %q no longer exists and was removed", effect.ID, selected)
		default:
			if _, found := def.Configuration.Option(selected); found {
				effect.SelectedConfigurationID = selected
			} else {
				p.warn("effect %s: configuration option %q no longer exists and was removed", effect.ID, selected)
			}
		}
	}

	cfg := def.Configuration
	if cfg == nil {
		return
	}
	if effect.SelectedConfigurationID == "" && cfg.Kind == types.ConfigurationSingle && len(cfg.Options) > 0 {
		effect.SelectedConfigurationID = cfg.Options[0].ID
		p.change("effect %s: defaulted configuration to %q", effect.ID, effect.SelectedConfigurationID)
	}
	if opt, ok := cfg.Option(effect.SelectedConfigurationID); ok && opt.MinGrade > effect.Grade {
		p.change("effect %s: grade %d raised to %d required by %q", effect.ID, effect.Grade, opt.MinGrade, opt.ID)
		effect.Grade = opt.MinGrade
	}
}

func (p *pass) repairParameters() {
	baseline := p.baseline()
	params := types.Parameters{}
	for _, axis := range scale.Axes {
		key := axis.String()
		raw, present := p.rec[key]

		var value int
		switch {
		case !present || raw == nil:
			value = scale.Get(baseline, axis)
			p.change("%s was missing; set to %d", key, value)
		default:
			var changed bool
			value, changed = nonNegativeInt(raw)
			if changed {
				p.change("%s %v coerced to %d", key, raw, value)
			}
		}

		switch axis {
		case scale.Action:
			params.Action = value
		case scale.Range:
			params.Range = value
		case scale.Duration:
			params.Duration = value
		}
	}
	p.power.SetParameters(params)
}

func (p *pass) baseline() types.Parameters {
	defaults := make([]types.Parameters, 0, len(p.power.Effects))
	for _, e := range p.power.Effects {
		if def, ok := p.catalog.Effect(e.BaseEffectID); ok {
			defaults = append(defaults, def.DefaultParameters)
		}
	}
	return scale.Baseline(defaults)
}

func (p *pass) backfillRequired() {
	if name, _ := stringValue(p.rec["name"]); name != "" {
		p.power.Name = name
	} else {
		p.power.Name = PlaceholderName
		p.change("name was missing; set to %q", PlaceholderName)
	}

	if desc, ok := stringValue(p.rec["description"]); ok {
		p.power.Description = desc
	} else {
		p.change("description was missing; set to empty")
	}

	if id, _ := stringValue(p.rec["id"]); id != "" {
		p.power.ID = id
	} else {
		p.power.ID = p.newID()
		p.change("assigned id %s to power", p.power.ID)
	}
}

func (p *pass) effectHint(id string) string {
	if suggestion, ok := p.catalog.SuggestEffect(id); ok {
		return fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return ""
}

func (p *pass) modifierHint(id string) string {
	if suggestion, ok := p.catalog.SuggestModifier(id); ok {
		return fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return ""
}
