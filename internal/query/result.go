package query

import "github.com/KaramelBytes/dataquery-cli/internal/analysis"

// Kind classifies a Result.
type Kind string

const (
	KindInsight       Kind = "insight"
	KindVisualization Kind = "visualization"
	KindSummary       Kind = "summary"
	KindError         Kind = "error"
)

// ColumnPair names the columns plotted on each axis.
type ColumnPair struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// Result is the answer to one question. Failures are reported through
// Kind == KindError, never as a Go error.
type Result struct {
	Kind        Kind               `json:"kind"`
	Intent      Intent             `json:"intent,omitempty"`
	Title       string             `json:"title"`
	Response    string             `json:"response"`
	Series      []analysis.Point   `json:"series,omitempty"`
	ChartType   analysis.ChartType `json:"chart_type,omitempty"`
	Columns     *ColumnPair        `json:"columns,omitempty"`
	Suggestions []string           `json:"suggestions,omitempty"`
}
