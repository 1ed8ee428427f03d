package format

import (
	"bytes"
	"html/template"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestStandardNumber(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{1000000, "1,000,000"},
		{int64(0), "0"},
		{999, "999"},
		{int64(-1234567), "-1,234,567"},
		{1234.5678, "1,234.568"},
		{uint32(4096), "4,096"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StandardNumber.Format(tc.in), "Format(%v)", tc.in)
	}
	assert.Equal(t, language.English, StandardNumber.Locale())
}

func TestCompactNumber(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{1000000, "1M"},
		{0, "0"},
		{999, "999"},
		{1000, "1K"},
		{1500, "1.5K"},
		{1234, "1.2K"},
		{12345, "12K"},
		{123456, "123K"},
		{999999, "1M"},
		{1250000, "1.3M"},
		{int64(2_500_000_000), "2.5B"},
		{int64(7_000_000_000_000), "7T"},
		{int64(-1500), "-1.5K"},
		{1.25, "1.3"},
		{42.4, "42"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CompactNumber.Format(tc.in), "Format(%v)", tc.in)
	}
}

func TestNumber_NonFinite(t *testing.T) {
	assert.Equal(t, "NaN", StandardNumber.Format(math.NaN()))
	assert.Equal(t, "∞", CompactNumber.Format(math.Inf(1)))
	assert.Equal(t, "-∞", CompactNumber.Format(math.Inf(-1)))
}

func TestNarrowRelativeTime_Format(t *testing.T) {
	cases := []struct {
		value float64
		unit  Unit
		want  string
	}{
		{-3, Hour, "3h ago"},
		{2, Day, "in 2d"},
		{-1, Minute, "1m ago"},
		{-45, Second, "45s ago"},
		{-2, Week, "2w ago"},
		{-5, Month, "5mo ago"},
		{1, Quarter, "in 1q"},
		{-10, Year, "10y ago"},
		{0, Hour, "in 0h"},
		{math.Copysign(0, -1), Hour, "0h ago"},
		{-1.5, Hour, "1.5h ago"},
	}
	for _, tc := range cases {
		got, err := NarrowRelativeTime.Format(tc.value, tc.unit)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Format(%v, %s)", tc.value, tc.unit)
	}
	assert.Equal(t, language.AmericanEnglish, NarrowRelativeTime.Locale())
}

func TestNarrowRelativeTime_Errors(t *testing.T) {
	_, err := NarrowRelativeTime.Format(1, Unit("fortnight"))
	require.Error(t, err)

	_, err = NarrowRelativeTime.Format(math.NaN(), Hour)
	require.Error(t, err)
}

func TestNarrowRelativeTime_Since(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-3*time.Hour - 59*time.Minute), "3h ago"},
		{now.Add(-90 * time.Second), "1m ago"},
		{now.Add(-10 * time.Second), "10s ago"},
		{now.AddDate(0, 0, -2), "2d ago"},
		{now.AddDate(0, 0, -14), "2w ago"},
		{now.AddDate(0, 0, -61), "2mo ago"},
		{now.AddDate(-1, 0, 0), "1y ago"},
		{now.Add(2 * time.Hour), "in 2h"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NarrowRelativeTime.Since(tc.at, now), "Since(%v)", tc.at)
	}
}

func TestFuncMap(t *testing.T) {
	tpl := template.Must(template.New("t").Funcs(FuncMap()).Parse(
		`{{ standard .N }}|{{ compact .N }}|{{ relative -3.0 "hour" }}|{{ ago .At .Now }}`))

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	err := tpl.Execute(&buf, map[string]any{
		"N":   1000000,
		"At":  now.Add(-5 * time.Minute),
		"Now": now,
	})
	require.NoError(t, err)
	assert.Equal(t, "1,000,000|1M|3h ago|5m ago", buf.String())
}
