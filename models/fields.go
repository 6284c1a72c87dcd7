package models

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tavolo-app/backend/gateway"
)

// ErrInvalidInput marks caller mistakes (non-numeric party size or rating) so
// the HTTP layer can reject them instead of treating them as store failures.
var ErrInvalidInput = errors.New("invalid input")

// firstNonEmpty resolves the dual naming the site's callers still use: the
// canonical "_c" field wins, the legacy camelCase field is the fallback.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// coerceInt converts a caller-supplied value to an integer. JSON numbers and
// numeric strings are accepted; anything else is rejected rather than
// silently zeroed.
func coerceInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, fmt.Errorf("value is missing")
	case float64:
		return int(n), nil
	case int:
		return n, nil
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("value %q is not a number", n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("value %v is not a number", v)
	}
}

func stringField(rec gateway.Record, name string) string {
	if s, ok := rec[name].(string); ok {
		return s
	}
	return ""
}

func intField(rec gateway.Record, name string) int {
	n, err := coerceInt(rec[name])
	if err != nil {
		return 0
	}
	return n
}

func floatField(rec gateway.Record, name string) float64 {
	switch n := rec[name].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func boolField(rec gateway.Record, name string) bool {
	if b, ok := rec[name].(bool); ok {
		return b
	}
	return false
}
