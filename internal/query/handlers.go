package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/KaramelBytes/dataquery-cli/internal/analysis"
	"github.com/KaramelBytes/dataquery-cli/internal/dataset"
)

// QueryPointLimit caps series produced by trend and compare questions.
const QueryPointLimit = 50

// distributionLimit is the number of categories kept by distribution questions.
const distributionLimit = 10

type handler func(m Match, t *dataset.Table) Result

var handlers = map[Intent]handler{
	IntentAverage:      handleAverage,
	IntentMaximum:      handleMaximum,
	IntentMinimum:      handleMinimum,
	IntentCount:        handleCount,
	IntentTrend:        handleTrend,
	IntentCompare:      handleCompare,
	IntentSummary:      handleSummary,
	IntentDistribution: handleDistribution,
}

func availableColumns(t *dataset.Table) string {
	return "Available columns: " + strings.Join(t.Headers, ", ")
}

func columnNotFound(fragment string, t *dataset.Table) Result {
	return Result{
		Kind:        KindError,
		Title:       "Column Not Found",
		Response:    fmt.Sprintf("I couldn't find a column matching \"%s\" in your data.", fragment),
		Suggestions: []string{availableColumns(t)},
	}
}

// numericColumn resolves the first capture and collects its numbers. When
// the returned Result is non-nil the caller must return it as is.
func numericColumn(m Match, t *dataset.Table, emptyMsg string) (string, []float64, *Result) {
	fragment := m.Capture(0)
	col, ok := ResolveColumn(fragment, t.Headers)
	if !ok {
		r := columnNotFound(fragment, t)
		return "", nil, &r
	}
	values, _ := t.Column(col)
	nums := analysis.Numbers(values)
	if len(nums) == 0 {
		return col, nil, &Result{
			Kind:     KindInsight,
			Title:    "No Numeric Data",
			Response: fmt.Sprintf("The column \"%s\" %s", col, emptyMsg),
		}
	}
	return col, nums, nil
}

func handleAverage(m Match, t *dataset.Table) Result {
	col, nums, early := numericColumn(m, t, "doesn't contain numeric values that can be averaged.")
	if early != nil {
		return *early
	}
	return Result{
		Kind:  KindInsight,
		Title: "Average " + col,
		Response: fmt.Sprintf("The average %s in your dataset is %s. This is calculated from %d valid numeric entries.",
			col, analysis.FormatFixed(analysis.Mean(nums), 2), len(nums)),
		Suggestions: []string{
			fmt.Sprintf("Show distribution of %s", col),
			fmt.Sprintf("What's the maximum %s?", col),
			fmt.Sprintf("Compare %s with other columns", col),
		},
	}
}

func handleMaximum(m Match, t *dataset.Table) Result {
	col, nums, early := numericColumn(m, t, "doesn't contain numeric values.")
	if early != nil {
		return *early
	}
	return Result{
		Kind:  KindInsight,
		Title: "Maximum " + col,
		Response: fmt.Sprintf("The highest %s in your dataset is %s. This represents the peak value across all %d entries.",
			col, dataset.FormatNumber(lo.Max(nums)), len(nums)),
		Suggestions: []string{
			fmt.Sprintf("What's the minimum %s?", col),
			fmt.Sprintf("Show %s distribution", col),
			fmt.Sprintf("Average %s", col),
		},
	}
}

func handleMinimum(m Match, t *dataset.Table) Result {
	col, nums, early := numericColumn(m, t, "doesn't contain numeric values.")
	if early != nil {
		return *early
	}
	return Result{
		Kind:  KindInsight,
		Title: "Minimum " + col,
		Response: fmt.Sprintf("The lowest %s in your dataset is %s. This represents the minimum value across all %d entries.",
			col, dataset.FormatNumber(lo.Min(nums)), len(nums)),
		Suggestions: []string{
			fmt.Sprintf("What's the maximum %s?", col),
			fmt.Sprintf("Show %s distribution", col),
			fmt.Sprintf("Average %s", col),
		},
	}
}

// handleCount reports dataset-wide counts; the captured fragment is ignored.
func handleCount(_ Match, t *dataset.Table) Result {
	return Result{
		Kind:  KindInsight,
		Title: "Dataset Summary",
		Response: fmt.Sprintf("Your dataset contains %d rows and %d columns. Each row represents a unique record in your data.",
			t.RowCount(), len(t.Headers)),
		Suggestions: []string{
			"Summarize the data",
			"Show column details",
			"What are the column types?",
		},
	}
}

func handleTrend(m Match, t *dataset.Table) Result {
	var (
		xCol, yCol string
		missing    string
		ok         bool
	)
	if m.Capture(1) != "" {
		if xCol, ok = ResolveColumn(m.Capture(0), t.Headers); !ok {
			missing = m.Capture(0)
		} else if yCol, ok = ResolveColumn(m.Capture(1), t.Headers); !ok {
			missing = m.Capture(1)
		}
	} else {
		if yCol, ok = ResolveColumn(m.Capture(0), t.Headers); !ok {
			missing = m.Capture(0)
		} else if xCol, ok = TimeColumn(t.Headers); !ok && len(t.Headers) > 0 {
			xCol, ok = t.Headers[0], true
		}
	}
	if !ok {
		return Result{
			Kind:  KindError,
			Title: "Columns for Trend Analysis",
			Response: fmt.Sprintf("I couldn't find a column matching \"%s\". To show trends, I need two columns to compare. %s",
				missing, availableColumns(t)),
			Suggestions: []string{availableColumns(t), comparePairSuggestion(t), "Summarize the data"},
		}
	}
	pts, _ := analysis.Series(t, xCol, yCol, QueryPointLimit)
	return Result{
		Kind:  KindVisualization,
		Title: fmt.Sprintf("Trend: %s vs %s", yCol, xCol),
		Response: fmt.Sprintf("Here's the trend showing how %s varies with %s. The visualization includes %d data points.",
			yCol, xCol, len(pts)),
		Series:    pts,
		ChartType: analysis.ChartLine,
		Columns:   &ColumnPair{X: xCol, Y: yCol},
		Suggestions: []string{
			fmt.Sprintf("Show %s distribution", yCol),
			fmt.Sprintf("What's the average %s?", yCol),
			"Compare with other columns",
		},
	}
}

func comparePairSuggestion(t *dataset.Table) string {
	switch len(t.Headers) {
	case 0:
		return "Upload a CSV file with at least two columns"
	case 1:
		return fmt.Sprintf("Compare %s vs %s", t.Headers[0], t.Headers[0])
	}
	return fmt.Sprintf("Compare %s vs %s", t.Headers[0], t.Headers[1])
}

func handleCompare(m Match, t *dataset.Table) Result {
	for _, fragment := range []string{m.Capture(0), m.Capture(1)} {
		if _, ok := ResolveColumn(fragment, t.Headers); !ok {
			return Result{
				Kind:  KindError,
				Title: "Columns Not Found",
				Response: fmt.Sprintf("I couldn't find a column matching \"%s\". I need two valid columns to compare. %s",
					fragment, availableColumns(t)),
				Suggestions: []string{availableColumns(t)},
			}
		}
	}
	xCol, _ := ResolveColumn(m.Capture(0), t.Headers)
	yCol, _ := ResolveColumn(m.Capture(1), t.Headers)
	pts, _ := analysis.Series(t, xCol, yCol, QueryPointLimit)
	return Result{
		Kind:  KindVisualization,
		Title: fmt.Sprintf("Comparison: %s vs %s", yCol, xCol),
		Response: fmt.Sprintf("Here's a comparison between %s and %s. The scatter plot shows the relationship between these two variables across %d data points.",
			yCol, xCol, len(pts)),
		Series:    pts,
		ChartType: analysis.ChartScatter,
		Columns:   &ColumnPair{X: xCol, Y: yCol},
		Suggestions: []string{
			fmt.Sprintf("Average %s", yCol),
			fmt.Sprintf("Maximum %s", xCol),
			"Show data distribution",
		},
	}
}

func handleSummary(_ Match, t *dataset.Table) Result {
	lines := []string{
		"**Dataset Overview:**",
		fmt.Sprintf("• %d total records", t.RowCount()),
		fmt.Sprintf("• %d columns", len(t.Headers)),
		fmt.Sprintf("• %d numeric columns", len(numericColumns(t))),
		"",
		"**Available Columns:**",
	}
	for _, h := range t.Headers {
		lines = append(lines, "• "+h)
	}
	return Result{
		Kind:     KindSummary,
		Title:    "Data Summary",
		Response: strings.Join(lines, "\n"),
		Suggestions: []string{
			"Show column distributions",
			"Compare different columns",
			"What's the average of numeric columns?",
			"Find trends in the data",
		},
	}
}

// handleDistribution counts raw values by their string form (Null counts as
// "null"), keeps the most frequent ones and breaks ties by first appearance.
func handleDistribution(m Match, t *dataset.Table) Result {
	fragment := m.Capture(0)
	col, ok := ResolveColumn(fragment, t.Headers)
	if !ok {
		return columnNotFound(fragment, t)
	}
	values, _ := t.Column(col)
	counts := map[string]int{}
	var order []string
	for _, v := range values {
		key := v.String()
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > distributionLimit {
		order = order[:distributionLimit]
	}
	pts := lo.Map(order, func(k string, _ int) analysis.Point {
		return analysis.Point{X: dataset.Text(k), Y: dataset.Number(float64(counts[k]))}
	})
	return Result{
		Kind:      KindVisualization,
		Title:     "Distribution of " + col,
		Response:  fmt.Sprintf("Here's the distribution of values in %s. This shows the frequency of each value, helping you understand the data pattern.", col),
		Series:    pts,
		ChartType: analysis.ChartBar,
		Columns:   &ColumnPair{X: "category", Y: "count"},
		Suggestions: []string{
			fmt.Sprintf("Average %s", col),
			fmt.Sprintf("Maximum %s", col),
			"Compare with other columns",
		},
	}
}
