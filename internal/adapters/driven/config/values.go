// Package config holds value conversions shared by ConfigStore adapters.
// Stored values may come from TOML decoding (int64, []any) or from
// in-process Set calls (int, []string), so every getter accepts both.
package config

// String returns val as a string, or "" if it is not one.
func String(val any) string {
	s, _ := val.(string)
	return s
}

// Int returns val as an int, or 0 if it is not numeric.
func Int(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Bool returns val as a bool, or false if it is not one.
func Bool(val any) bool {
	b, _ := val.(bool)
	return b
}

// StringSlice returns val as a string slice, skipping non-string items.
// Returns nil if val is not a slice.
func StringSlice(val any) []string {
	switch v := val.(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	default:
		return nil
	}
}
