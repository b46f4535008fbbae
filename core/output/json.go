package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders the report as JSON
type JSONFormatter struct {
	// Indent is the per-level indentation; empty renders compact JSON
	Indent string
}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render produces output for the given report
func (f *JSONFormatter) Render(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", f.Indent)
	return enc.Encode(report)
}
