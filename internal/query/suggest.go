package query

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/KaramelBytes/dataquery-cli/internal/dataset"
)

// Suggestions proposes follow-up questions derived from the table's shape.
func Suggestions(t *dataset.Table) []string {
	out := []string{"Summarize the data", "How many records are there?"}
	if numeric := numericColumns(t); len(numeric) > 0 {
		first := numeric[0]
		out = append(out,
			fmt.Sprintf("What's the average %s?", first),
			fmt.Sprintf("Show %s distribution", first),
		)
	}
	if len(t.Headers) >= 2 {
		out = append(out,
			fmt.Sprintf("Compare %s vs %s", t.Headers[0], t.Headers[1]),
			fmt.Sprintf("Show trend of %s over %s", t.Headers[1], t.Headers[0]),
		)
	}
	return out
}

// numericColumns lists headers holding at least one Number, in header order.
func numericColumns(t *dataset.Table) []string {
	return lo.Filter(t.Headers, func(_ string, i int) bool {
		return lo.SomeBy(t.Rows, func(r dataset.Row) bool { return r[i].IsNumber() })
	})
}
