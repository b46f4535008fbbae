package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", Input("record is empty"), "[INPUT_ERROR] record is empty"},
		{"wrapped", Parsing("failed to decode", io.ErrUnexpectedEOF), "[PARSING_ERROR] failed to decode: unexpected EOF"},
		{"not found", NotFound("catalog file", "rules.yaml"), "[NOT_FOUND] catalog file not found: rules.yaml"},
		{"formatted", Newf(TypeCatalog, "%d validation errors", 3), "[CATALOG_ERROR] 3 validation errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	err := Record("record does not look like a power", io.EOF)
	if !stderrors.Is(err, io.EOF) {
		t.Error("expected wrapped cause to be reachable")
	}
}

func TestIsType(t *testing.T) {
	base := Config("parse env", io.EOF)
	wrapped := fmt.Errorf("load: %w", base)

	if !IsType(wrapped, TypeConfig) {
		t.Error("expected wrapped config error to match")
	}
	if IsType(wrapped, TypeCatalog) {
		t.Error("expected type mismatch")
	}
	if IsType(io.EOF, TypeConfig) {
		t.Error("plain errors have no type")
	}
	if !base.Is(TypeConfig) {
		t.Error("expected Is to match own type")
	}
}

func TestWithContext(t *testing.T) {
	err := Catalog("invalid", nil).WithContext("path", "rules.hcl").WithContext("errors", 2)
	if err.Context["path"] != "rules.hcl" || err.Context["errors"] != 2 {
		t.Errorf("unexpected context %v", err.Context)
	}
}
