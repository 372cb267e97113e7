package analysis

import (
	"time"

	"github.com/samber/lo"

	"github.com/KaramelBytes/dataquery-cli/internal/dataset"
)

// ColumnType is the inferred type of a column.
type ColumnType string

const (
	TypeNumber ColumnType = "number"
	TypeDate   ColumnType = "date"
	TypeString ColumnType = "string"
)

// SampleSize is the number of non-null values kept in ColumnProfile.SampleValues.
const SampleSize = 5

// ColumnProfile summarizes one column. Profiles are derived on demand and
// never stored alongside the Table.
type ColumnProfile struct {
	Name         string          `json:"name"`
	Type         ColumnType      `json:"type"`
	SampleValues []dataset.Value `json:"sample_values"`
	UniqueCount  int             `json:"unique_count"`
	NonNull      int             `json:"non_null"`
	Missing      int             `json:"missing"`
}

// AnalyzeColumns profiles every column of t in header order. It recomputes
// from the rows on every call.
func AnalyzeColumns(t *dataset.Table) []ColumnProfile {
	out := make([]ColumnProfile, 0, len(t.Headers))
	for i, h := range t.Headers {
		values := nonNull(t, i)
		p := ColumnProfile{
			Name:         h,
			Type:         inferType(values),
			SampleValues: values[:min(SampleSize, len(values))],
			UniqueCount:  len(lo.Uniq(values)),
			NonNull:      len(values),
			Missing:      t.RowCount() - len(values),
		}
		out = append(out, p)
	}
	return out
}

func nonNull(t *dataset.Table, col int) []dataset.Value {
	return lo.FilterMap(t.Rows, func(r dataset.Row, _ int) (dataset.Value, bool) {
		return r[col], !r[col].IsNull()
	})
}

// inferType applies the predicates in order and stops at the first match:
// all numeric (vacuously true for an empty column), then any date, then string.
func inferType(values []dataset.Value) ColumnType {
	if lo.EveryBy(values, dataset.Value.IsNumber) {
		return TypeNumber
	}
	if lo.SomeBy(values, func(v dataset.Value) bool {
		_, ok := ParseDate(v.String())
		return ok
	}) {
		return TypeDate
	}
	return TypeString
}

var dateLayouts = []string{
	time.RFC3339, "2006-01-02", "2006/01/02", "02/01/2006", "01/02/2006",
	"2006-01-02 15:04", "2006-01-02 15:04:05", "1/2/2006 15:04", "1/2/2006 15:04:05",
	"1/2/2006", "2006-01-02T15:04:05", "2006-01-02T15:04",
	"2006", "2006-01", "2006-01-02T15:04Z07:00", "2006-01-02T15:04:05.000",
	time.RFC1123, time.RFC1123Z, time.RFC850, time.ANSIC,
	"Jan 2, 2006", "January 2, 2006", "2 Jan 2006", "2 January 2006", "Mon Jan 02 2006",
}

// ParseDate reports whether s matches one of the recognized date layouts.
func ParseDate(s string) (time.Time, bool) {
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
