package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/KaramelBytes/dataquery-cli/internal/dataset"
)

// ManualPointLimit caps series prepared for a user-selected column pair.
const ManualPointLimit = 100

// ErrUnknownColumn is returned when a column name is not among the headers.
var ErrUnknownColumn = errors.New("unknown column")

// ChartType names how a series should be drawn.
type ChartType string

const (
	ChartBar     ChartType = "bar"
	ChartLine    ChartType = "line"
	ChartScatter ChartType = "scatter"
	ChartArea    ChartType = "area"
)

// ParseChartType accepts bar, line, scatter or area in any case.
func ParseChartType(s string) (ChartType, error) {
	ct := ChartType(strings.ToLower(strings.TrimSpace(s)))
	switch ct {
	case ChartBar, ChartLine, ChartScatter, ChartArea:
		return ct, nil
	}
	return "", fmt.Errorf("unsupported chart type %q (use bar|line|scatter|area)", s)
}

// Point is one chart sample.
type Point struct {
	X dataset.Value `json:"x"`
	Y dataset.Value `json:"y"`
}

// Series pairs the x and y columns row by row, keeping rows where both are
// non-null, and stops after limit points. limit <= 0 means no cap.
func Series(t *dataset.Table, xColumn, yColumn string, limit int) ([]Point, error) {
	xi, yi, err := columnPair(t, xColumn, yColumn)
	if err != nil {
		return nil, err
	}
	out := make([]Point, 0, min(max(limit, 0), t.RowCount()))
	for _, r := range t.Rows {
		if r[xi].IsNull() || r[yi].IsNull() {
			continue
		}
		out = append(out, Point{X: r[xi], Y: r[yi]})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// PrepareChartData builds the series for a manually selected column pair.
func PrepareChartData(t *dataset.Table, xColumn, yColumn string) ([]Point, error) {
	return Series(t, xColumn, yColumn, ManualPointLimit)
}

// GenerateInsights describes the y column over every row where both columns
// are present: average, range, point count and distinct x values.
func GenerateInsights(t *dataset.Table, xColumn, yColumn string) ([]string, error) {
	pairs, err := Series(t, xColumn, yColumn, 0)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return []string{"No valid data found for the selected columns."}, nil
	}
	var insights []string
	ys := Numbers(lo.Map(pairs, func(p Point, _ int) dataset.Value { return p.Y }))
	if len(ys) > 0 {
		insights = append(insights,
			fmt.Sprintf("Average %s: %s", yColumn, FormatFixed(Mean(ys), 2)),
			fmt.Sprintf("Range: %s to %s", FormatFixed(lo.Min(ys), 2), FormatFixed(lo.Max(ys), 2)),
			fmt.Sprintf("Total data points: %d", len(pairs)),
		)
	}
	uniqueX := len(lo.Uniq(lo.Map(pairs, func(p Point, _ int) dataset.Value { return p.X })))
	insights = append(insights, fmt.Sprintf("%d unique values in %s", uniqueX, xColumn))
	return insights, nil
}

func columnPair(t *dataset.Table, xColumn, yColumn string) (int, int, error) {
	xi := t.ColumnIndex(xColumn)
	if xi < 0 {
		return 0, 0, fmt.Errorf("x column %q: %w", xColumn, ErrUnknownColumn)
	}
	yi := t.ColumnIndex(yColumn)
	if yi < 0 {
		return 0, 0, fmt.Errorf("y column %q: %w", yColumn, ErrUnknownColumn)
	}
	return xi, yi, nil
}
