// Package coerce turns loosely typed user input into numbers and booleans
// without failing. Anything that does not parse becomes the zero value.
package coerce

import (
	"strings"

	"github.com/iwvelando/youth-budget/pkg/mathutil"
	"github.com/spf13/cast"
)

// Float converts value to a float64. Unparseable text, NaN and infinities become 0.
func Float(value interface{}) float64 {
	if s, ok := value.(string); ok {
		value = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return 0
	}
	return mathutil.Finite(f)
}

// Int converts value to an int, truncating any fractional part. Values outside
// the int range saturate rather than wrap.
func Int(value interface{}) int {
	return mathutil.ClampInt(Float(value))
}

// Bool converts value to a bool. Numbers are true when non-zero; text accepts the
// strconv spellings plus "yes"/"no" and "on"/"off". Anything else is false.
func Bool(value interface{}) bool {
	if s, ok := value.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "yes", "y", "on":
			return true
		case "no", "n", "off", "":
			return false
		}
		if b, err := cast.ToBoolE(strings.TrimSpace(s)); err == nil {
			return b
		}
		return Float(s) != 0
	}
	if b, err := cast.ToBoolE(value); err == nil {
		return b
	}
	return Float(value) != 0
}
