// Package format renders optional measurements for console output.
package format

import (
	"encoding/json"
	"fmt"
)

// Formatter renders measurements with a unit suffix
type Formatter struct {
	noData string
	colors Colorizer
}

// New creates a formatter. A nil colorizer means no color.
func New(noData string, colors Colorizer) *Formatter {
	if colors == nil {
		colors = NoColor{}
	}
	return &Formatter{noData: noData, colors: colors}
}

// Value renders v with one decimal digit followed by unit. Missing values
// render as the no-data placeholder without a unit; values that are present
// but not numeric render literally with the unit appended.
func (f *Formatter) Value(v any, unit string) string {
	if n, ok := numeric(v); ok {
		return fmt.Sprintf("%.1f%s", n, unit)
	}
	if isMissing(v) {
		return f.noData
	}
	return literal(v) + unit
}

// Colored right-aligns Value(v, unit) to width characters and colors it by
// sign. Missing or non-numeric values are aligned but never colored.
func (f *Formatter) Colored(v any, unit string, width int) string {
	text := fmt.Sprintf("%*s", width, f.Value(v, unit))

	n, ok := numeric(v)
	switch {
	case !ok:
		return text
	case n < 0:
		return f.colors.Cold(text)
	case n > 0:
		return f.colors.Warm(text)
	default:
		return f.colors.Neutral(text)
	}
}

// numeric reports whether v holds a number and returns it as float64
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case *float64:
		if n == nil {
			return 0, false
		}
		return *n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func isMissing(v any) bool {
	switch p := v.(type) {
	case nil:
		return true
	case *float64:
		return p == nil
	case *string:
		return p == nil
	default:
		return false
	}
}

func literal(v any) string {
	if p, ok := v.(*string); ok {
		return *p
	}
	return fmt.Sprint(v)
}
