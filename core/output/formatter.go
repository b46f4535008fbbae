// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"io"
	"sort"
	"strings"

	"power-cost/core/cost"
	"power-cost/core/hydration"
	"power-cost/core/types"
	"power-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCLI, FormatJSON:
		return f, nil
	case "":
		return FormatCLI, nil
	default:
		return "", errors.Newf(errors.TypeInput, "unknown output format %q (expected cli or json)", s)
	}
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report is everything known about one evaluated power
type Report struct {
	// Power is the hydrated power
	Power *types.Power `json:"power"`

	// Breakdown is the cost detail; nil when only hydration was requested
	Breakdown *cost.Breakdown `json:"breakdown,omitempty"`

	// Warnings report data removed during hydration
	Warnings []string `json:"warnings"`

	// Changes report lossless repairs made during hydration
	Changes []string `json:"changes"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// Metadata contains execution context
type Metadata struct {
	// Source is the record the power was read from
	Source string `json:"source,omitempty"`

	// Catalog is the catalog file used
	Catalog string `json:"catalog,omitempty"`

	// Version is the tool version
	Version string `json:"version"`
}

// NewReport builds a report from a hydration result and an optional breakdown
func NewReport(result hydration.Result, breakdown *cost.Breakdown, meta Metadata) *Report {
	return &Report{
		Power:     result.Power,
		Breakdown: breakdown,
		Warnings:  result.Warnings,
		Changes:   result.Changes,
		Metadata:  meta,
	}
}

// Registry maps formats to formatters
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates a registry holding the built-in formatters
func NewRegistry(showDetails bool) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	_ = r.Register(&CLIFormatter{ShowDetails: showDetails})
	_ = r.Register(&JSONFormatter{Indent: "  "})
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	if _, exists := r.formatters[f.Format()]; exists {
		return errors.Newf(errors.TypeConfig, "formatter %q already registered", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns the formatter for a format type
func (r *Registry) Get(format Format) (Formatter, bool) {
	f, ok := r.formatters[format]
	return f, ok
}

// All returns every registered formatter ordered by format name
func (r *Registry) All() []Formatter {
	out := make([]Formatter, 0, len(r.formatters))
	for _, f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Format() < out[j].Format() })
	return out
}
