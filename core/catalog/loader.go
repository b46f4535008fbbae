package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"power-cost/core/types"
	"power-cost/internal/errors"
)

// Format is a catalog file format
type Format string

const (
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// File is the decoded content of a catalog file
type File struct {
	Effects   []types.EffectDefinition   `json:"effects" yaml:"effects"`
	Modifiers []types.ModifierDefinition `json:"modifiers" yaml:"modifiers"`

	// Resources is the per-grade energy and slot table
	Resources []types.ResourceRow `json:"resources" yaml:"resources"`
}

// Catalog builds the catalog value from the file
func (f *File) Catalog() *Catalog {
	return New(f.Effects, f.Modifiers)
}

// FormatForPath picks the format from a file extension. JSON is read as YAML.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", errors.Newf(errors.TypeNotSupported, "unsupported catalog file extension %q", filepath.Ext(path))
	}
}

// LoadFile reads and decodes a catalog file
func LoadFile(path string) (*File, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("catalog file", path)
		}
		return nil, errors.Catalog("failed to read catalog", err)
	}

	return Parse(data, path, format)
}

// Parse decodes catalog bytes. The filename is only used in diagnostics.
func Parse(data []byte, filename string, format Format) (*File, error) {
	switch format {
	case FormatYAML:
		return parseYAML(data, filename)
	case FormatHCL:
		return parseHCL(data, filename)
	default:
		return nil, errors.Newf(errors.TypeNotSupported, "unsupported catalog format %q", format)
	}
}

func parseYAML(data []byte, filename string) (*File, error) {
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, errors.Parsing("failed to decode catalog "+filename, err)
	}
	return &file, nil
}
