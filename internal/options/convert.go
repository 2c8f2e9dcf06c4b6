package options

import "strings"

// Bool converts a raw document value to a bool.
func Bool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, invalid("", v, "expected a boolean")
	}
	return b, nil
}

// Float converts a raw document value to a float64. Integers are accepted.
func Float(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	default:
		return 0, invalid("", v, "expected a number")
	}
}

// String converts a raw document value to a string.
func String(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", invalid("", v, "expected a string")
	}
	return s, nil
}

// StringList converts a raw document value to a list of strings. A single
// string is split on commas.
func StringList(v any) ([]string, error) {
	switch list := v.(type) {
	case string:
		var out []string
		for item := range strings.SplitSeq(list, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, invalid("", v, "expected a list of strings")
			}
			out = append(out, s)
		}
		return out, nil
	case []string:
		return list, nil
	default:
		return nil, invalid("", v, "expected a string or a list of strings")
	}
}
