package hydration

import (
	"power-cost/core/types"
)

// repairDomain enforces the domain tag and its companion fields:
// arcaneSchool only on arcane powers, techLevel only on technological ones.
func (p *pass) repairDomain() {
	raw := p.rec["domain"]
	tag, _ := stringValue(raw)
	domain := types.Domain(tag)

	switch {
	case raw == nil:
		domain = types.DomainNatural
		p.change("domain was missing; set to %q", domain)
	case !domain.IsValid():
		p.change("unknown domain %v replaced with %q", raw, types.DomainNatural)
		domain = types.DomainNatural
	}
	p.power.Domain = domain

	school := p.rec["arcaneSchool"]
	if domain == types.DomainArcane {
		if s, ok := stringValue(school); ok && s != "" {
			p.power.ArcaneSchool = s
		} else {
			p.power.ArcaneSchool = types.DefaultArcaneSchool
			p.change("arcane school was missing; set to %q", types.DefaultArcaneSchool)
		}
	} else if !isBlank(school) {
		p.change("removed arcane school from %s power", domain)
	}

	level := p.rec["techLevel"]
	if domain == types.DomainTechnological {
		if n, ok := positiveInt(level); ok {
			p.power.TechLevel = n
		} else {
			p.power.TechLevel = types.DefaultTechLevel
			p.change("tech level %v replaced with %d", level, types.DefaultTechLevel)
		}
	} else if !isBlank(level) {
		p.change("removed tech level from %s power", domain)
	}
}

// repairAlternativeCost drops unknown variants and fields the variant does not carry
func (p *pass) repairAlternativeCost() {
	raw := p.rec["alternativeCost"]
	if raw == nil {
		return
	}
	obj, ok := asObject(raw)
	if !ok {
		p.change("removed malformed alternative cost")
		return
	}

	tag, _ := stringValue(obj["kind"])
	kind := types.AlternativeCostKind(tag)
	if !kind.IsValid() {
		p.change("removed alternative cost with unknown kind %v", obj["kind"])
		return
	}

	alt := &types.AlternativeCost{Kind: kind}

	if value := obj["value"]; !isBlank(value) {
		if kind.HasValue() {
			n, changed := nonNegativeInt(value)
			if changed {
				p.change("alternative cost value %v coerced to %d", value, n)
			}
			alt.Value = n
		} else {
			p.change("removed value from %q alternative cost", kind)
		}
	}

	if attr := obj["attribute"]; !isBlank(attr) {
		if s, ok := stringValue(attr); ok && kind == types.AltCostAttribute {
			alt.Attribute = s
		} else {
			p.change("removed attribute from %q alternative cost", kind)
		}
	}

	if desc := obj["description"]; !isBlank(desc) {
		if s, ok := stringValue(desc); ok && kind.HasDescription() {
			alt.Description = s
		} else {
			p.change("removed description from %q alternative cost", kind)
		}
	}

	p.power.AlternativeCost = alt
}
