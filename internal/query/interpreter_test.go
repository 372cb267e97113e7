package query

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/dataquery-cli/internal/analysis"
	"github.com/KaramelBytes/dataquery-cli/internal/dataset"
)

func build(t *testing.T, raw string) *dataset.Table {
	t.Helper()
	tbl, err := dataset.Build(raw, "test.csv")
	require.NoError(t, err)
	return tbl
}

const salesCSV = "region,amount,notes\nnorth,10,\nsouth,20,\neast,30,\n"

func dailyTable(t *testing.T, n int) *dataset.Table {
	t.Helper()
	var b strings.Builder
	b.WriteString("day,revenue\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d,%d\n", i, i*3)
	}
	return build(t, b.String())
}

func TestInterpretWithoutTable(t *testing.T) {
	res := Interpret("what is the average amount?", nil)
	assert.Equal(t, KindError, res.Kind)
	assert.Equal(t, "No Data Available", res.Title)
	assert.Len(t, res.Suggestions, 3)
}

func TestAggregates(t *testing.T) {
	tbl := build(t, salesCSV)

	avg := Interpret("What is the average amount?", tbl)
	assert.Equal(t, KindInsight, avg.Kind)
	assert.Equal(t, IntentAverage, avg.Intent)
	assert.Equal(t, "Average amount", avg.Title)
	assert.Contains(t, avg.Response, "is 20.00.")
	assert.Contains(t, avg.Response, "from 3 valid numeric entries")

	mx := Interpret("max amount", tbl)
	assert.Equal(t, IntentMaximum, mx.Intent)
	assert.Contains(t, mx.Response, "The highest amount in your dataset is 30.")

	mn := Interpret("what's the minimum amount", tbl)
	assert.Equal(t, IntentMinimum, mn.Intent)
	assert.Contains(t, mn.Response, "The lowest amount in your dataset is 10.")
}

func TestAggregateExcludesNullAndText(t *testing.T) {
	tbl := build(t, "region,amount\nnorth,10\nsouth,\neast,n/a\nwest,30\n")
	res := Interpret("average of amount", tbl)
	require.Equal(t, KindInsight, res.Kind)
	assert.Contains(t, res.Response, "is 20.00. This is calculated from 2 valid numeric entries.")
}

func TestNoNumericDataIsInsight(t *testing.T) {
	tbl := build(t, salesCSV)
	res := Interpret("average of notes", tbl)
	assert.Equal(t, KindInsight, res.Kind)
	assert.Equal(t, "No Numeric Data", res.Title)
	assert.Contains(t, res.Response, `"notes"`)
}

func TestColumnNotFoundIsErrorResult(t *testing.T) {
	tbl := build(t, salesCSV)
	res := Interpret("average of zzz", tbl)
	assert.Equal(t, KindError, res.Kind)
	assert.Equal(t, "Column Not Found", res.Title)
	assert.Contains(t, res.Response, `"z"`)
	assert.Equal(t, []string{"Available columns: region, amount, notes"}, res.Suggestions)
}

func TestCountIgnoresFragment(t *testing.T) {
	tbl := build(t, salesCSV)
	for _, q := range []string{"how many records", "count the bananas", "total records please", "number of rows"} {
		res := Interpret(q, tbl)
		assert.Equal(t, IntentCount, res.Intent, q)
		assert.Equal(t, "Your dataset contains 3 rows and 3 columns. Each row represents a unique record in your data.", res.Response, q)
	}
}

func TestPatternPrecedenceTrendBeforeCompare(t *testing.T) {
	m, ok := MatchIntent("compare revenue vs cost")
	require.True(t, ok)
	assert.Equal(t, IntentTrend, m.Intent)
	assert.Contains(t, m.Pattern, "vs")
	assert.Equal(t, []string{"compare", "t"}, m.Captures)

	m, ok = MatchIntent("compare revenue and cost")
	require.True(t, ok)
	assert.Equal(t, IntentCompare, m.Intent)
}

func TestGroupOrder(t *testing.T) {
	cases := map[string]Intent{
		"what is the average price":   IntentAverage,
		"mean price":                  IntentAverage,
		"highest price":               IntentMaximum,
		"smallest price":              IntentMinimum,
		"how many rows":               IntentCount,
		"price over time":             IntentTrend,
		"relationship between a b":    IntentCompare,
		"correlation of a and b":      IntentCompare,
		"describe the dataset":        IntentSummary,
		"give me an overview of data": IntentSummary,
		"price distribution":          IntentDistribution,
	}
	for q, want := range cases {
		m, ok := MatchIntent(q)
		require.True(t, ok, q)
		assert.Equal(t, want, m.Intent, q)
	}
	_, ok := MatchIntent("hello there")
	assert.False(t, ok)
}

func TestTrendSingleColumnUsesTimeColumn(t *testing.T) {
	tbl := dailyTable(t, 500)
	res := Interpret("show trend of revenue", tbl)
	require.Equal(t, KindVisualization, res.Kind)
	assert.Equal(t, analysis.ChartLine, res.ChartType)
	assert.Equal(t, &ColumnPair{X: "day", Y: "revenue"}, res.Columns)
	assert.Len(t, res.Series, QueryPointLimit)
	assert.Equal(t, "Trend: revenue vs day", res.Title)

	manual, err := analysis.PrepareChartData(tbl, "day", "revenue")
	require.NoError(t, err)
	assert.Len(t, manual, analysis.ManualPointLimit)
}

func TestTrendFallsBackToFirstHeader(t *testing.T) {
	tbl := build(t, "city,sales\na,1\nb,2\n")
	res := Interpret("trend of sales", tbl)
	require.Equal(t, KindVisualization, res.Kind)
	assert.Equal(t, &ColumnPair{X: "city", Y: "sales"}, res.Columns)
}

func TestTrendTwoColumns(t *testing.T) {
	tbl := dailyTable(t, 10)
	res := Interpret("revenue vs day", tbl)
	require.Equal(t, KindVisualization, res.Kind)
	assert.Equal(t, IntentTrend, res.Intent)
	assert.Equal(t, &ColumnPair{X: "revenue", Y: "day"}, res.Columns)
	assert.Len(t, res.Series, 10)
}

func TestTrendUnresolvedColumn(t *testing.T) {
	tbl := dailyTable(t, 3)
	res := Interpret("trend of zzz", tbl)
	assert.Equal(t, KindError, res.Kind)
	assert.Contains(t, res.Response, `"z"`)
	assert.Contains(t, res.Suggestions, "Available columns: day, revenue")
}

func TestCompareScatterCapped(t *testing.T) {
	tbl := dailyTable(t, 500)
	res := Interpret("compare day and revenue", tbl)
	require.Equal(t, KindVisualization, res.Kind)
	assert.Equal(t, IntentCompare, res.Intent)
	assert.Equal(t, analysis.ChartScatter, res.ChartType)
	assert.Len(t, res.Series, QueryPointLimit)
}

func TestCompareUnresolved(t *testing.T) {
	tbl := dailyTable(t, 3)
	res := Interpret("compare day and xyz", tbl)
	assert.Equal(t, KindError, res.Kind)
	assert.Equal(t, "Columns Not Found", res.Title)
	assert.Contains(t, res.Response, `"z"`)
}

func TestSummary(t *testing.T) {
	tbl := build(t, salesCSV)
	res := Interpret("Summarize the data", tbl)
	assert.Equal(t, KindSummary, res.Kind)
	for _, want := range []string{"• 3 total records", "• 3 columns", "• 1 numeric columns", "• region", "• notes"} {
		assert.Contains(t, res.Response, want)
	}
}

func TestDistribution(t *testing.T) {
	tbl := build(t, "region,amount\nnorth,10\nsouth,20\nnorth,30\neast,5\n,7\nnorth,1\nsouth,2\n")
	res := Interpret("show distribution of region", tbl)
	require.Equal(t, KindVisualization, res.Kind)
	assert.Equal(t, analysis.ChartBar, res.ChartType)
	assert.Equal(t, &ColumnPair{X: "category", Y: "count"}, res.Columns)
	want := []analysis.Point{
		{X: dataset.Text("north"), Y: dataset.Number(3)},
		{X: dataset.Text("south"), Y: dataset.Number(2)},
		{X: dataset.Text("east"), Y: dataset.Number(1)},
		{X: dataset.Text("null"), Y: dataset.Number(1)},
	}
	assert.Equal(t, want, res.Series)
}

func TestDistributionTopTen(t *testing.T) {
	var b strings.Builder
	b.WriteString("code,n\n")
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&b, "c%d,%d\n", i, i)
	}
	res := Interpret("code distribution", build(t, b.String()))
	require.Equal(t, KindVisualization, res.Kind)
	assert.Len(t, res.Series, 10)
}

func TestUnmatchedQuestionSuggests(t *testing.T) {
	tbl := build(t, salesCSV)
	res := Interpret("hello there", tbl)
	assert.Equal(t, KindInsight, res.Kind)
	assert.Equal(t, "I'm here to help!", res.Title)
	assert.Equal(t, []string{
		"Summarize the data",
		"How many records are there?",
		"What's the average amount?",
		"Show amount distribution",
		"Compare region vs amount",
		"Show trend of amount over region",
	}, res.Suggestions)
}

func TestSuggestionsWithoutNumericColumns(t *testing.T) {
	tbl := build(t, "a\nx\n")
	assert.Equal(t, []string{"Summarize the data", "How many records are there?"}, Suggestions(tbl))
}

func TestResultText(t *testing.T) {
	tbl := build(t, "region,amount\nnorth,10\nsouth,20\nnorth,30\n")
	out := Interpret("show distribution of region", tbl).Text()
	assert.Contains(t, out, "Distribution of region\n")
	assert.Contains(t, out, "[bar chart] category → count (2 points)")
	assert.Contains(t, out, "  north  2\n")
	assert.Contains(t, out, "Try:\n  - Average region\n")

	errOut := Interpret("anything", nil).Text()
	assert.True(t, strings.HasPrefix(errOut, "✗ No Data Available\n"))
}

func TestAverageRoundsBinaryValue(t *testing.T) {
	tbl := build(t, "k,v\na,2.675\n")
	res := Interpret("average of v", tbl)
	assert.Contains(t, res.Response, "The average v in your dataset is 2.67.")
}
