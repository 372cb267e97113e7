package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveColumn(t *testing.T) {
	headers := []string{"Sales_Total", "Region"}
	cases := []struct {
		fragment string
		want     string
		ok       bool
	}{
		{"sales", "Sales_Total", true},
		{"region", "Region", true},
		{"REGION", "Region", true},
		{"totals", "Sales_Total", true},
		{"xyz", "", false},
	}
	for _, c := range cases {
		got, ok := ResolveColumn(c.fragment, headers)
		assert.Equal(t, c.ok, ok, c.fragment)
		assert.Equal(t, c.want, got, c.fragment)
	}
}

func TestResolveColumnPrefersExact(t *testing.T) {
	got, ok := ResolveColumn("amount", []string{"amount_total", "Amount"})
	assert.True(t, ok)
	assert.Equal(t, "Amount", got)
}

func TestTimeColumn(t *testing.T) {
	got, ok := TimeColumn([]string{"id", "Created_At", "order_date"})
	assert.True(t, ok)
	assert.Equal(t, "Created_At", got)

	_, ok = TimeColumn([]string{"id", "name"})
	assert.False(t, ok)
}
