package provider

import (
	"strconv"
	"strings"
)

// ExtractValue normalizes a stat value from loosely-typed upstream JSON.
//
// ESPN returns stat values as raw numbers, formatted strings (".512",
// "+7"), or nested objects with a "value"/"displayValue" pair depending on
// the endpoint. This handles all of them, preferring the numeric form.
//
// Returns the scalar float64 value, and ok=false if not extractable.
func ExtractValue(val interface{}) (float64, bool) {
	if val == nil {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimPrefix(v, "+"), 64); err == nil {
			return f, true
		}
		return 0, false
	case map[string]interface{}:
		for _, key := range []string{"value", "total", "displayValue"} {
			if inner, exists := v[key]; exists && inner != nil {
				return ExtractValue(inner)
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

// ExtractString returns the display form of a loosely-typed stat value.
func ExtractString(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return FormatValue(v)
	case int:
		return strconv.Itoa(v)
	case map[string]interface{}:
		for _, key := range []string{"displayValue", "value", "total"} {
			if inner, exists := v[key]; exists && inner != nil {
				if s := ExtractString(inner); s != "" {
					return s
				}
			}
		}
		return ""
	default:
		return ""
	}
}

// FormatValue renders a float the way scoreboards do: integers without a
// decimal point, everything else with the shortest exact representation.
func FormatValue(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
