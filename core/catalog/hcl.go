package catalog

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"power-cost/core/types"
	"power-cost/internal/errors"
)

// hclFile mirrors File with block syntax:
//
//	effect "blast" {
//	  base_cost_per_grade = 2
//	  defaults { range = 2 }
//	}
//	modifier "area" {
//	  kind           = "extra"
//	  cost_per_grade = 1
//	  grade { max = 5 }
//	}
//	resource {
//	  grade  = 1
//	  energy = 1
//	  slots  = 1
//	}
type hclFile struct {
	Effects   []hclEffect   `hcl:"effect,block"`
	Modifiers []hclModifier `hcl:"modifier,block"`
	Resources []hclResource `hcl:"resource,block"`
}

type hclEffect struct {
	ID               string            `hcl:"id,label"`
	Name             string            `hcl:"name,optional"`
	BaseCostPerGrade int               `hcl:"base_cost_per_grade"`
	Defaults         *hclParameters    `hcl:"defaults,block"`
	Configuration    *hclConfiguration `hcl:"configuration,block"`
}

type hclParameters struct {
	Action   int `hcl:"action,optional"`
	Range    int `hcl:"range,optional"`
	Duration int `hcl:"duration,optional"`
}

type hclConfiguration struct {
	Kind    string      `hcl:"kind"`
	Label   string      `hcl:"label,optional"`
	Options []hclOption `hcl:"option,block"`
}

type hclOption struct {
	ID                  string `hcl:"id,label"`
	Label               string `hcl:"label,optional"`
	CostPerGradeDelta   int    `hcl:"cost_per_grade_delta,optional"`
	FixedCostDelta      int    `hcl:"fixed_cost_delta,optional"`
	MinGrade            int    `hcl:"min_grade,optional"`
	ProgressiveDoubling bool   `hcl:"progressive_doubling,optional"`
}

type hclModifier struct {
	ID               string            `hcl:"id,label"`
	Name             string            `hcl:"name,optional"`
	Kind             string            `hcl:"kind"`
	FixedCost        int               `hcl:"fixed_cost,optional"`
	CostPerGrade     int               `hcl:"cost_per_grade,optional"`
	Grade            *hclGrade         `hcl:"grade,block"`
	Parameter        string            `hcl:"parameter,optional"`
	ParameterOptions []string          `hcl:"parameter_options,optional"`
	Configuration    *hclConfiguration `hcl:"configuration,block"`
}

type hclGrade struct {
	Min   int `hcl:"min,optional"`
	Max   int `hcl:"max,optional"`
	Fixed int `hcl:"fixed,optional"`
}

type hclResource struct {
	Grade  int `hcl:"grade"`
	Energy int `hcl:"energy"`
	Slots  int `hcl:"slots"`
}

func parseHCL(data []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclf, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to parse catalog "+filename, diagError(diags))
	}

	var raw hclFile
	if diags := gohcl.DecodeBody(hclf.Body, nil, &raw); diags.HasErrors() {
		return nil, errors.Parsing("failed to decode catalog "+filename, diagError(diags))
	}

	file := &File{
		Effects:   make([]types.EffectDefinition, 0, len(raw.Effects)),
		Modifiers: make([]types.ModifierDefinition, 0, len(raw.Modifiers)),
		Resources: make([]types.ResourceRow, 0, len(raw.Resources)),
	}

	for _, e := range raw.Effects {
		def := types.EffectDefinition{
			ID:               e.ID,
			Name:             e.Name,
			BaseCostPerGrade: e.BaseCostPerGrade,
			Configuration:    e.Configuration.convert(),
		}
		if e.Defaults != nil {
			def.DefaultParameters = types.Parameters{
				Action:   e.Defaults.Action,
				Range:    e.Defaults.Range,
				Duration: e.Defaults.Duration,
			}
		}
		file.Effects = append(file.Effects, def)
	}

	for _, m := range raw.Modifiers {
		def := types.ModifierDefinition{
			ID:               m.ID,
			Name:             m.Name,
			Kind:             types.ModifierKind(m.Kind),
			FixedCost:        m.FixedCost,
			CostPerGrade:     m.CostPerGrade,
			Parameter:        types.ParameterKind(m.Parameter),
			ParameterOptions: m.ParameterOptions,
			Configuration:    m.Configuration.convert(),
		}
		if m.Grade != nil {
			def.Grade = &types.GradeBounds{Min: m.Grade.Min, Max: m.Grade.Max, Fixed: m.Grade.Fixed}
		}
		file.Modifiers = append(file.Modifiers, def)
	}

	for _, r := range raw.Resources {
		file.Resources = append(file.Resources, types.ResourceRow{Grade: r.Grade, Energy: r.Energy, Slots: r.Slots})
	}

	return file, nil
}

func (c *hclConfiguration) convert() *types.Configuration {
	if c == nil {
		return nil
	}
	cfg := &types.Configuration{
		Kind:    types.ConfigurationKind(c.Kind),
		Label:   c.Label,
		Options: make([]types.ConfigurationOption, 0, len(c.Options)),
	}
	for _, o := range c.Options {
		cfg.Options = append(cfg.Options, types.ConfigurationOption{
			ID:                  o.ID,
			Label:               o.Label,
			CostPerGradeDelta:   o.CostPerGradeDelta,
			FixedCostDelta:      o.FixedCostDelta,
			MinGrade:            o.MinGrade,
			ProgressiveDoubling: o.ProgressiveDoubling,
		})
	}
	return cfg
}

func diagError(diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		if diag.Subject != nil {
			return fmt.Errorf("%s:%d: %s: %s", diag.Subject.Filename, diag.Subject.Start.Line, diag.Summary, diag.Detail)
		}
		return fmt.Errorf("%s: %s", diag.Summary, diag.Detail)
	}
	return diags
}
