package format

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Unit is a relative-time unit.
type Unit string

const (
	Second  Unit = "second"
	Minute  Unit = "minute"
	Hour    Unit = "hour"
	Day     Unit = "day"
	Week    Unit = "week"
	Month   Unit = "month"
	Quarter Unit = "quarter"
	Year    Unit = "year"
)

// Style selects the length of unit labels.
type Style int

const (
	// Narrow uses the shortest labels: "3h ago".
	Narrow Style = iota
)

// narrowLabels are the en-US narrow unit abbreviations.
var narrowLabels = map[Unit]string{
	Second:  "s",
	Minute:  "m",
	Hour:    "h",
	Day:     "d",
	Week:    "w",
	Month:   "mo",
	Quarter: "q",
	Year:    "y",
}

// RelativeTimeFormatter phrases signed offsets such as "3h ago" or "in 2d".
type RelativeTimeFormatter struct {
	tag     language.Tag
	style   Style
	labels  map[Unit]string
	printer *message.Printer
}

// NewRelativeTimeFormatter builds a formatter for tag. Only the narrow
// style is available.
func NewRelativeTimeFormatter(tag language.Tag, style Style) *RelativeTimeFormatter {
	return &RelativeTimeFormatter{
		tag:     tag,
		style:   style,
		labels:  narrowLabels,
		printer: message.NewPrinter(tag),
	}
}

// NarrowRelativeTime renders (-3, Hour) as "3h ago".
var NarrowRelativeTime = NewRelativeTimeFormatter(language.AmericanEnglish, Narrow)

// Locale returns the formatter's language tag.
func (f *RelativeTimeFormatter) Locale() language.Tag { return f.tag }

// Format phrases value units relative to now: negative values are in the
// past, zero and positive values in the future.
func (f *RelativeTimeFormatter) Format(value float64, unit Unit) (string, error) {
	label, ok := f.labels[unit]
	if !ok {
		return "", fmt.Errorf("unsupported relative time unit %q", unit)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", fmt.Errorf("invalid relative time value %v", value)
	}

	amount := f.printer.Sprint(number.Decimal(math.Abs(value), number.MaxFractionDigits(3))) + label
	if value < 0 || (value == 0 && math.Signbit(value)) {
		return amount + " ago", nil
	}
	return "in " + amount, nil
}

// Since phrases t relative to now using the largest unit that fits, truncated
// toward zero. Offsets under a minute are reported in seconds.
func (f *RelativeTimeFormatter) Since(t, now time.Time) string {
	d := t.Sub(now)
	value, unit := bestUnit(d)
	s, _ := f.Format(value, unit)
	return s
}

func bestUnit(d time.Duration) (float64, Unit) {
	abs := d
	if abs < 0 {
		abs = -abs
	}

	const (
		day   = 24 * time.Hour
		week  = 7 * day
		month = 30 * day
		year  = 365 * day
	)

	var unit Unit
	var size time.Duration
	switch {
	case abs >= year:
		unit, size = Year, year
	case abs >= month:
		unit, size = Month, month
	case abs >= week:
		unit, size = Week, week
	case abs >= day:
		unit, size = Day, day
	case abs >= time.Hour:
		unit, size = Hour, time.Hour
	case abs >= time.Minute:
		unit, size = Minute, time.Minute
	default:
		unit, size = Second, time.Second
	}

	n := float64(abs / size)
	if d < 0 {
		n = -n
	}
	return n, unit
}
