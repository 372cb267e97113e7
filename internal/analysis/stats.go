package analysis

import (
	"math"
	"strconv"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/KaramelBytes/dataquery-cli/internal/dataset"
)

// Numbers returns the numeric payloads of values, skipping Null and Text.
func Numbers(values []dataset.Value) []float64 {
	return lo.FilterMap(values, func(v dataset.Value, _ int) (float64, bool) {
		return v.Float()
	})
}

// Mean returns the arithmetic mean; callers must pass at least one value.
func Mean(vals []float64) float64 {
	return lo.Sum(vals) / float64(len(vals))
}

// Std returns the sample standard deviation using Welford's update.
func Std(vals []float64) float64 {
	var n int
	var mean, m2 float64
	for _, x := range vals {
		n++
		delta := x - mean
		mean += delta / float64(n)
		m2 += delta * (x - mean)
	}
	if n < 2 {
		return 0
	}
	return math.Sqrt(m2 / float64(n-1))
}

// FormatFixed renders f with exactly places digits after the decimal point.
// Rounding applies to the binary value of f, not its shortest decimal form,
// so 2.675 (stored as 2.67499999...) becomes "2.67". Exact ties round away
// from zero. Magnitudes of 1e21 and above keep their exponent form.
func FormatFixed(f float64, places int32) string {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= 1e21 {
		return dataset.FormatNumber(f)
	}
	return decimal.RequireFromString(strconv.FormatFloat(f, 'f', 30, 64)).StringFixed(places)
}
