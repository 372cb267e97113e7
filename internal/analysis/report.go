package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/KaramelBytes/dataquery-cli/internal/dataset"
)

// Report is a markdown-friendly profile of a Table.
type Report struct {
	Name    string          `json:"name"`
	Rows    int             `json:"rows"`
	Cols    []ColumnSummary `json:"columns"`
	Samples [][]string      `json:"samples,omitempty"`
}

// ColumnSummary extends a ColumnProfile with descriptive statistics.
type ColumnSummary struct {
	ColumnProfile
	// Number columns. Infinite inputs yield infinite stats, which encode
	// as "Infinity"; an undefined std (Inf - Inf) is null.
	Min  *dataset.Value `json:"min,omitempty"`
	Max  *dataset.Value `json:"max,omitempty"`
	Mean *dataset.Value `json:"mean,omitempty"`
	Std  *dataset.Value `json:"std,omitempty"`
	// String columns
	TopValues []CategoryCount `json:"top_values,omitempty"`
}

type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

const topValuesLimit = 8

// Profile builds a Report for t with up to sampleRows example rows.
func Profile(t *dataset.Table, sampleRows int) *Report {
	rep := &Report{Name: t.Name, Rows: t.RowCount()}
	for i, p := range AnalyzeColumns(t) {
		s := ColumnSummary{ColumnProfile: p}
		switch p.Type {
		case TypeNumber:
			if nums := Numbers(nonNull(t, i)); len(nums) > 0 {
				low, high := nums[0], nums[0]
				for _, x := range nums[1:] {
					low = min(low, x)
					high = max(high, x)
				}
				s.Min, s.Max = stat(low), stat(high)
				s.Mean, s.Std = stat(Mean(nums)), stat(Std(nums))
			}
		case TypeString:
			s.TopValues = topValues(nonNull(t, i), topValuesLimit)
		}
		rep.Cols = append(rep.Cols, s)
	}
	for _, r := range t.Rows[:min(max(sampleRows, 0), t.RowCount())] {
		row := make([]string, len(r))
		for j, v := range r {
			if !v.IsNull() {
				row[j] = v.String()
			}
		}
		rep.Samples = append(rep.Samples, row)
	}
	return rep
}

func topValues(values []dataset.Value, limit int) []CategoryCount {
	counts := map[string]int{}
	for _, v := range values {
		counts[v.String()]++
	}
	tops := make([]CategoryCount, 0, len(counts))
	for k, v := range counts {
		tops = append(tops, CategoryCount{Value: k, Count: v})
	}
	sort.Slice(tops, func(i, j int) bool {
		if tops[i].Count == tops[j].Count {
			return tops[i].Value < tops[j].Value
		}
		return tops[i].Count > tops[j].Count
	})
	if len(tops) > limit {
		tops = tops[:limit]
	}
	return tops
}

// Markdown renders a compact report for terminals or standalone docs.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(r.Cols)))

	b.WriteString("[SCHEMA]\n")
	for _, c := range r.Cols {
		missPct := 0.0
		if total := c.NonNull + c.Missing; total > 0 {
			missPct = float64(c.Missing) * 100.0 / float64(total)
		}
		b.WriteString(fmt.Sprintf("- %s: %s (non-null %d, missing %.1f%%, unique %d)", safeName(c.Name), c.Type, c.NonNull, missPct, c.UniqueCount))
		switch c.Type {
		case TypeNumber:
			if c.NonNull > 0 {
				b.WriteString(fmt.Sprintf("; min %s, max %s, mean %s, std %s", g4(c.Min), g4(c.Max), g4(c.Mean), g4(c.Std)))
			}
		case TypeString:
			if len(c.TopValues) > 0 {
				b.WriteString("; top: ")
				for i, kv := range c.TopValues {
					if i > 0 {
						b.WriteString(", ")
					}
					b.WriteString(fmt.Sprintf("%s(%d)", safeVal(kv.Value), kv.Count))
				}
			}
		case TypeDate:
			if len(c.SampleValues) > 0 {
				b.WriteString("; e.g., ")
				for i, v := range c.SampleValues[:min(3, len(c.SampleValues))] {
					if i > 0 {
						b.WriteString(" | ")
					}
					b.WriteString(safeVal(v.String()))
				}
			}
		}
		b.WriteString("\n")
	}
	if len(r.Samples) > 0 {
		b.WriteString("\n[HEAD AND SAMPLE ROWS]\n")
		b.WriteString("| ")
		for i, c := range r.Cols {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(safeName(c.Name))
		}
		b.WriteString(" |\n| ")
		for i := range r.Cols {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString("---")
		}
		b.WriteString(" |\n")
		for _, row := range r.Samples {
			b.WriteString("| ")
			for i, val := range row {
				if i > 0 {
					b.WriteString(" | ")
				}
				if len(val) > 80 {
					val = val[:77] + "..."
				}
				b.WriteString(safeVal(val))
			}
			b.WriteString(" |\n")
		}
	}
	return b.String()
}

func stat(f float64) *dataset.Value {
	v := dataset.Number(f)
	return &v
}

// g4 formats a stat with four significant digits.
func g4(v *dataset.Value) string {
	if v == nil {
		return "n/a"
	}
	f, ok := v.Float()
	switch {
	case !ok:
		return "n/a"
	case math.IsInf(f, 0):
		return dataset.FormatNumber(f)
	}
	return fmt.Sprintf("%.4g", f)
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
