// Package format holds the locale-bound formatters used when rendering pages.
//
// Every formatter is built once at package initialization with a fixed locale
// and fixed options, and is safe for concurrent use.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Notation selects how a NumberFormatter renders magnitudes.
type Notation int

const (
	// Standard prints every digit with grouping separators: 1,000,000.
	Standard Notation = iota
	// Compact abbreviates with a short suffix: 1M.
	Compact
)

// NumberFormatter formats numbers for a single locale and notation.
type NumberFormatter struct {
	tag      language.Tag
	notation Notation
	printer  *message.Printer
}

// NewNumberFormatter builds a formatter for tag using the given notation.
func NewNumberFormatter(tag language.Tag, notation Notation) *NumberFormatter {
	return &NumberFormatter{
		tag:      tag,
		notation: notation,
		printer:  message.NewPrinter(tag),
	}
}

var (
	// StandardNumber renders 1000000 as "1,000,000".
	StandardNumber = NewNumberFormatter(language.English, Standard)
	// CompactNumber renders 1000000 as "1M".
	CompactNumber = NewNumberFormatter(language.English, Compact)
)

// Locale returns the formatter's language tag.
func (f *NumberFormatter) Locale() language.Tag { return f.tag }

// Format renders v, which may be any integer or floating point value.
func (f *NumberFormatter) Format(v any) string {
	x, ok := toFloat(v)
	if !ok {
		return f.printer.Sprint(v)
	}
	if f.notation == Compact {
		return f.compact(x)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return f.special(x)
	}
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// compactSuffixes are the English short-scale abbreviations, one per power of 1000.
var compactSuffixes = []string{"", "K", "M", "B", "T"}

// compact keeps two significant digits when the scaled value has a single
// integer digit and rounds to an integer otherwise. Rounding up to 1000 moves
// to the next suffix (999999 -> "1M").
func (f *NumberFormatter) compact(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return f.special(x)
	}

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	idx := 0
	for x >= 1000 && idx < len(compactSuffixes)-1 {
		x /= 1000
		idx++
	}

	rounded := roundCompact(x)
	if rounded >= 1000 && idx < len(compactSuffixes)-1 {
		idx++
		rounded = roundCompact(rounded / 1000)
	}
	if rounded == 0 {
		sign = ""
	}

	digits := 0
	if rounded < 10 {
		digits = 1
	}
	return sign + f.printer.Sprint(number.Decimal(rounded, number.MaxFractionDigits(digits))) + compactSuffixes[idx]
}

func roundCompact(x float64) float64 {
	if x < 10 {
		return math.Round(x*10) / 10
	}
	return math.Round(x)
}

func (f *NumberFormatter) special(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case x > 0:
		return "∞"
	default:
		return "-∞"
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
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
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
