// Package catalog - Read-only catalog of effects and modifiers
// Entries keep their declared order and are indexed by id once, at construction.
package catalog

import (
	"power-cost/core/types"
)

// Catalog is an immutable set of effect and modifier definitions
type Catalog struct {
	effects   []*types.EffectDefinition
	modifiers []*types.ModifierDefinition

	effectIndex   map[string]*types.EffectDefinition
	modifierIndex map[string]*types.ModifierDefinition
}

// New creates a catalog from ordered definitions.
// When an id repeats, the first definition wins; Validate reports the duplicate.
func New(effects []types.EffectDefinition, modifiers []types.ModifierDefinition) *Catalog {
	c := &Catalog{
		effects:       make([]*types.EffectDefinition, 0, len(effects)),
		modifiers:     make([]*types.ModifierDefinition, 0, len(modifiers)),
		effectIndex:   make(map[string]*types.EffectDefinition, len(effects)),
		modifierIndex: make(map[string]*types.ModifierDefinition, len(modifiers)),
	}

	for i := range effects {
		entry := effects[i]
		c.effects = append(c.effects, &entry)
		if _, exists := c.effectIndex[entry.ID]; !exists {
			c.effectIndex[entry.ID] = &entry
		}
	}
	for i := range modifiers {
		entry := modifiers[i]
		c.modifiers = append(c.modifiers, &entry)
		if _, exists := c.modifierIndex[entry.ID]; !exists {
			c.modifierIndex[entry.ID] = &entry
		}
	}

	return c
}

// Effect returns an effect definition
func (c *Catalog) Effect(id string) (*types.EffectDefinition, bool) {
	if c == nil {
		return nil, false
	}
	entry, ok := c.effectIndex[id]
	return entry, ok
}

// Modifier returns a modifier definition
func (c *Catalog) Modifier(id string) (*types.ModifierDefinition, bool) {
	if c == nil {
		return nil, false
	}
	entry, ok := c.modifierIndex[id]
	return entry, ok
}

// Effects returns all effect definitions in declared order
func (c *Catalog) Effects() []*types.EffectDefinition {
	return append([]*types.EffectDefinition(nil), c.effects...)
}

// Modifiers returns all modifier definitions in declared order
func (c *Catalog) Modifiers() []*types.ModifierDefinition {
	return append([]*types.ModifierDefinition(nil), c.modifiers...)
}

// Stats returns catalog statistics
func (c *Catalog) Stats() Stats {
	stats := Stats{
		Effects:   len(c.effects),
		Modifiers: len(c.modifiers),
	}

	for _, e := range c.effects {
		if e.Configuration != nil {
			stats.ConfigurableEffects++
		}
	}
	for _, m := range c.modifiers {
		switch m.Kind {
		case types.ModifierExtra:
			stats.Extras++
		case types.ModifierFlaw:
			stats.Flaws++
		}
		if m.Configuration != nil {
			stats.ConfigurableModifiers++
		}
	}

	return stats
}

// Stats holds catalog statistics
type Stats struct {
	Effects               int
	Modifiers             int
	Extras                int
	Flaws                 int
	ConfigurableEffects   int
	ConfigurableModifiers int
}
