package format

import (
	"html/template"
	"time"
)

// FuncMap exposes the shared formatters to html/template (and gin's SetFuncMap).
//
//	{{ standard .Count }}        -> 1,000,000
//	{{ compact .Count }}         -> 1M
//	{{ ago .UpdatedAt.Time now }} -> 3h ago
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"standard": StandardNumber.Format,
		"compact":  CompactNumber.Format,
		"relative": func(value float64, unit string) (string, error) {
			return NarrowRelativeTime.Format(value, Unit(unit))
		},
		"ago": NarrowRelativeTime.Since,
		"now": func() time.Time { return time.Now().UTC() },
	}
}
