package hydration

import (
	"encoding/json"
	"math"
)

// toNumber reads any numeric representation a decoder may produce
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// maxWhole bounds every integer read from a record
const maxWhole = math.MaxInt32

// clampWhole floors f into [-maxWhole, maxWhole]
func clampWhole(f float64) int {
	return int(math.Max(-maxWhole, math.Min(maxWhole, math.Floor(f))))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// positiveInt accepts only whole numbers in [1, maxWhole]
func positiveInt(v any) (int, bool) {
	f, ok := toNumber(v)
	if !ok || !isFinite(f) || f != math.Trunc(f) || f < 1 || f > maxWhole {
		return 0, false
	}
	return int(f), true
}

// nonNegativeInt floors fractions, caps values above maxWhole and maps NaN, infinities,
// negatives and non-numbers to 0. changed reports whether the stored value differs from the result.
func nonNegativeInt(v any) (value int, changed bool) {
	f, ok := toNumber(v)
	if !ok || !isFinite(f) || f < 0 {
		return 0, true
	}
	value = clampWhole(f)
	return value, float64(value) != f
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// isBlank treats nil, empty strings and zero numbers as absent
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	if f, ok := toNumber(v); ok {
		return f == 0
	}
	return false
}

func asObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

func asList(v any) ([]any, bool) {
	list, ok := v.([]any)
	return list, ok
}
