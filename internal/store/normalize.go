package store

import (
	"fmt"
	"time"
)

// normalizeValue maps one database cell onto the fixed coercion table:
// NULL stays nil, temporal values become ISO-8601 strings, numerics stay
// native numbers, byte slices become strings, and anything unexpected
// falls back to its default textual representation.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case []byte:
		return string(t)
	case string, bool, int64, float64:
		return t
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case float32:
		return float64(t)
	default:
		return fmt.Sprint(t)
	}
}
