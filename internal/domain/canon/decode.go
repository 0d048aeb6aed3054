package canon

import "strconv"

// Payloads arrive with two field-naming conventions depending on which
// provider surface produced them: initial-capital ("AccuracyScore") and
// lower-camel ("accuracyScore"). Every lookup probes the primary key first,
// then the alias; the first present value wins. A payload may mix
// conventions across fields.

// lookup probes primary then alias and reports whether either key exists.
func lookup(obj map[string]any, primary, alias string) (any, bool) {
	if v, ok := obj[primary]; ok {
		return v, true
	}
	if v, ok := obj[alias]; ok {
		return v, true
	}
	return nil, false
}

// lookupNumber returns a numeric value from primary or alias. Native JSON
// numbers and numeric strings are accepted; anything else reports absent.
func lookupNumber(obj map[string]any, primary, alias string) (float64, bool) {
	v, ok := lookup(obj, primary, alias)
	if !ok {
		return 0, false
	}
	return asNumber(v)
}

// getNumber is lookupNumber with a default for absent or mistyped values.
func getNumber(obj map[string]any, primary, alias string, def float64) float64 {
	if v, ok := lookupNumber(obj, primary, alias); ok {
		return v
	}
	return def
}

// getString returns a string value from primary or alias, or def.
// Non-string values count as absent.
func getString(obj map[string]any, primary, alias, def string) string {
	v, ok := lookup(obj, primary, alias)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

// getArray returns an array value from primary or alias, or nil.
func getArray(obj map[string]any, primary, alias string) []any {
	v, ok := lookup(obj, primary, alias)
	if !ok {
		return nil
	}
	arr, _ := v.([]any)
	return arr
}

// getObject returns a nested object from primary or alias, or nil.
// Lookups against a nil map simply miss, so callers can chain safely.
func getObject(obj map[string]any, primary, alias string) map[string]any {
	v, ok := lookup(obj, primary, alias)
	if !ok {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
