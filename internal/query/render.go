package query

import (
	"fmt"
	"strings"
)

// Text renders r for a terminal: title, response, the series as aligned
// x/y rows and the suggestions as a bullet list.
func (r Result) Text() string {
	var b strings.Builder
	prefix := ""
	if r.Kind == KindError {
		prefix = "✗ "
	}
	fmt.Fprintf(&b, "%s%s\n%s\n", prefix, r.Title, r.Response)
	if r.Columns != nil && len(r.Series) > 0 {
		fmt.Fprintf(&b, "\n[%s chart] %s → %s (%d points)\n", r.ChartType, r.Columns.X, r.Columns.Y, len(r.Series))
		width := 0
		for _, p := range r.Series {
			width = max(width, len(p.X.String()))
		}
		for _, p := range r.Series {
			fmt.Fprintf(&b, "  %-*s  %s\n", width, p.X.String(), p.Y.String())
		}
	}
	if len(r.Suggestions) > 0 {
		b.WriteString("\nTry:\n")
		for _, s := range r.Suggestions {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}
	return b.String()
}
