package request

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Loose readers coerce the untyped values found in decoded JSON bodies and
// form posts. Clients send flags as "1", 1, true or leave them out, and the
// stored records depend on the exact coercion, so each reader follows the
// rules of the web platform the payloads originate from.

// ParseInt reads value the way parseInt(String(value), 10) does: leading
// whitespace and an optional sign are skipped, then decimal digits are
// consumed until the first non-digit. ok is false when no digit was found.
// Booleans, nil, maps and slices never parse.
func ParseInt(value interface{}) (n int64, ok bool) {
	s, ok := numericString(value)
	if !ok {
		return 0, false
	}
	return parseIntPrefix(s)
}

// ParseFlag reports whether value parses to exactly 1. It is the single rule
// used for every 0/1 flag.
func ParseFlag(value interface{}) bool {
	n, ok := ParseInt(value)
	return ok && n == 1
}

// FlagInt is ParseFlag as the 0/1 integer stored on records.
func FlagInt(value interface{}) int {
	if ParseFlag(value) {
		return 1
	}
	return 0
}

// Truthy reports whether value would pass an `if (value)` test: nil, false,
// "", 0 and NaN are falsy, everything else is truthy.
func Truthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0 && !math.IsNaN(v)
	case float32:
		return v != 0 && !math.IsNaN(float64(v))
	case int:
		return v != 0
	case int64:
		return v != 0
	case int32:
		return v != 0
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

// String renders scalars as text. ok is false for nil and composite values.
func String(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case nil:
		return "", false
	default:
		return numericString(v)
	}
}

func numericString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return formatNumber(v), true
	case float32:
		return formatNumber(float64(v)), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	default:
		return "", false
	}
}

// formatNumber matches the platform's number-to-string conversion closely
// enough for integer-prefix parsing: exponent form outside [1e-6, 1e21).
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseIntPrefix(s string) (int64, bool) {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// Out of range; only the magnitude matters to callers.
		n = math.MaxInt64
	}
	if negative {
		n = -n
	}
	return n, true
}
