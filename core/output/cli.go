package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"power-cost/core/scale"
	"power-cost/core/types"
)

const tableWidth = 73

// CLIFormatter renders a boxed table for terminals
type CLIFormatter struct {
	// ShowDetails lists the modifiers under each effect
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render produces output for the given report
func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	t := &table{w: w}
	p := report.Power

	t.rule("┌", "┐")
	t.center(strings.ToUpper(p.Name))
	t.rule("├", "┤")
	t.row("Domain", domainLabel(p))
	t.row("Action", scale.LevelName(scale.Action, p.Action))
	t.row("Range", scale.LevelName(scale.Range, p.Range))
	t.row("Duration", scale.LevelName(scale.Duration, p.Duration))
	if alt := p.AlternativeCost; alt != nil {
		t.row("Alternative cost", altCostLabel(alt))
	}

	if b := report.Breakdown; b != nil {
		t.rule("├", "┤")
		total := decimal.NewFromInt(int64(b.TotalCost))
		for _, e := range b.Effects {
			share := decimal.NewFromInt(int64(e.TotalCost)).Div(total).Mul(decimal.NewFromInt(100))
			label := fmt.Sprintf("%s (grade %d)", e.Name, e.Effect.Grade)
			t.row(label, fmt.Sprintf("%d  %5s%%", e.TotalCost, share.StringFixed(1)))

			if f.ShowDetails {
				t.detail(fmt.Sprintf("%d per grade, %+d fixed", e.PerGradeCost, e.FixedCost))
				for _, m := range e.Effect.LocalModifiers {
					t.detail(modifierLabel(m))
				}
			}
		}
		if f.ShowDetails {
			for _, m := range p.GlobalModifiers {
				t.row("Global modifier", modifierLabel(m))
			}
		}

		t.rule("├", "┤")
		t.row("PARAMETER ADJUSTMENT", fmt.Sprintf("%+d", b.ParameterAdjustment))
		t.row("TOTAL COST", fmt.Sprintf("%d", b.TotalCost))
		t.row("ENERGY", fmt.Sprintf("%d", b.EnergyTotal))
		t.row("SLOTS", fmt.Sprintf("%d", b.SlotTotal))
	}
	t.rule("└", "┘")

	for _, msg := range report.Warnings {
		t.line("Warning: " + msg)
	}
	for _, msg := range report.Changes {
		t.line("Repaired: " + msg)
	}
	return t.err
}

func domainLabel(p *types.Power) string {
	switch p.Domain {
	case types.DomainArcane:
		return fmt.Sprintf("%s (%s)", p.Domain, p.ArcaneSchool)
	case types.DomainTechnological:
		return fmt.Sprintf("%s (level %d)", p.Domain, p.TechLevel)
	default:
		return string(p.Domain)
	}
}

func altCostLabel(alt *types.AlternativeCost) string {
	parts := []string{string(alt.Kind)}
	if alt.Kind.HasValue() {
		parts = append(parts, fmt.Sprintf("%d", alt.Value))
	}
	if alt.Attribute != "" {
		parts = append(parts, alt.Attribute)
	}
	if alt.Description != "" {
		parts = append(parts, alt.Description)
	}
	return strings.Join(parts, " ")
}

func modifierLabel(m types.AppliedModifier) string {
	label := m.BaseModifierID
	if m.AppliedGrade != nil {
		label += fmt.Sprintf(" %d", *m.AppliedGrade)
	}
	if id := m.SelectedConfigurationID(); id != "" {
		label += " [" + id + "]"
	}
	if m.Parameters != nil && m.Parameters.Value != nil {
		label += fmt.Sprintf(" = %v", m.Parameters.Value)
	}
	return label
}

// table writes box-drawn rows and keeps the first write error
type table struct {
	w   io.Writer
	err error
}

func (t *table) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *table) rule(left, right string) {
	t.printf("%s%s%s\n", left, strings.Repeat("─", tableWidth), right)
}

func (t *table) center(s string) {
	s = truncate(s, tableWidth-2)
	pad := tableWidth - len([]rune(s))
	t.printf("│%s%s%s│\n", strings.Repeat(" ", pad/2), s, strings.Repeat(" ", pad-pad/2))
}

func (t *table) row(label, value string) {
	t.printf("│ %-50s %20s │\n", truncate(label, 50), truncate(value, 20))
}

func (t *table) detail(s string) {
	t.printf("│   └─ %-66s │\n", truncate(s, 66))
}

func (t *table) line(s string) {
	t.printf("%s\n", s)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
