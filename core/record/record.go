// Package record reads persisted power records into loosely typed maps.
// A record is only shape-checked here; repairing its content is hydration's job.
package record

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"power-cost/core/types"
	"power-cost/internal/errors"
)

// Record is a decoded, not yet hydrated, power record
type Record map[string]any

//go:embed schema.json
var schemaSource string

const schemaURL = "https://power-cost.local/schemas/record.schema.json"

var recordSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(schemaURL, bytes.NewReader([]byte(schemaSource))); err != nil {
		panic(fmt.Sprintf("record schema load failed: %v", err))
	}
	schema, err := c.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("record schema compile failed: %v", err))
	}
	return schema
}

// Decode parses YAML or JSON bytes into a record and checks its outer shape
func Decode(data []byte) (Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.Input("record is empty")
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Parsing("failed to decode record", err)
	}

	// round-trip through JSON so numbers and maps have JSON types
	normalized, err := normalize(raw)
	if err != nil {
		return nil, errors.Parsing("failed to normalize record", err)
	}

	if err := recordSchema.Validate(normalized); err != nil {
		return nil, errors.Record("record does not look like a power", err)
	}

	obj, ok := normalized.(map[string]any)
	if !ok {
		return nil, errors.Record("record is not an object", nil)
	}
	return Record(obj), nil
}

// DecodeMany parses a list of records, as written by a library export
func DecodeMany(data []byte) ([]Record, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Parsing("failed to decode records", err)
	}
	list, ok := raw.([]any)
	if !ok {
		rec, err := Decode(data)
		if err != nil {
			return nil, err
		}
		return []Record{rec}, nil
	}

	records := make([]Record, 0, len(list))
	for i, item := range list {
		normalized, err := normalize(item)
		if err != nil {
			return nil, errors.Parsing(fmt.Sprintf("failed to normalize record %d", i), err)
		}
		if err := recordSchema.Validate(normalized); err != nil {
			return nil, errors.Record(fmt.Sprintf("record %d does not look like a power", i), err)
		}
		records = append(records, Record(normalized.(map[string]any)))
	}
	return records, nil
}

// FromPower converts a hydrated power back to its persisted record form
func FromPower(p *types.Power) (Record, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Internal("failed to encode power", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Internal("failed to decode power", err)
	}
	return rec, nil
}

func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
