package query

import "regexp"

// Intent is a recognized category of question.
type Intent string

const (
	IntentAverage      Intent = "average"
	IntentMaximum      Intent = "maximum"
	IntentMinimum      Intent = "minimum"
	IntentCount        Intent = "count"
	IntentTrend        Intent = "trend"
	IntentCompare      Intent = "compare"
	IntentSummary      Intent = "summary"
	IntentDistribution Intent = "distribution"
)

type rule struct {
	re     *regexp.Regexp
	intent Intent
}

func group(intent Intent, patterns ...string) []rule {
	out := make([]rule, len(patterns))
	for i, p := range patterns {
		out[i] = rule{re: regexp.MustCompile(`(?i)` + p), intent: intent}
	}
	return out
}

func concat(groups ...[]rule) []rule {
	var out []rule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// rules is evaluated top to bottom and the first match wins, so group order
// decides between overlapping patterns: "a vs b" is a trend, not a compare.
var rules = concat(
	group(IntentAverage, `what.*average.*(\w+)`, `average.*of.*(\w+)`, `mean.*(\w+)`),
	group(IntentMaximum, `what.*maximum.*(\w+)`, `highest.*(\w+)`, `max.*(\w+)`, `largest.*(\w+)`),
	group(IntentMinimum, `what.*minimum.*(\w+)`, `lowest.*(\w+)`, `min.*(\w+)`, `smallest.*(\w+)`),
	group(IntentCount, `how many.*(\w+)`, `count.*(\w+)`, `total.*records`, `number.*rows`),
	group(IntentTrend, `show.*trend.*(\w+)`, `trend.*(\w+)`, `(\w+).*over.*time`, `(\w+).*vs.*(\w+)`),
	group(IntentCompare, `compare.*(\w+).*(\w+)`, `(\w+).*vs.*(\w+)`, `relationship.*(\w+).*(\w+)`, `correlation.*(\w+).*(\w+)`),
	group(IntentSummary, `summarize.*data`, `overview.*data`, `what.*this.*data`, `describe.*dataset`),
	group(IntentDistribution, `show.*distribution.*(\w+)`, `distribution.*(\w+)`, `(\w+).*distribution`),
)

// Match is the outcome of testing a question against the intent table.
type Match struct {
	Intent   Intent
	Pattern  string
	Captures []string
}

// Capture returns the i-th capture group, or "" when the pattern has fewer.
func (m Match) Capture(i int) string {
	if i < len(m.Captures) {
		return m.Captures[i]
	}
	return ""
}

// MatchIntent tests the normalized question against the intent table.
func MatchIntent(question string) (Match, bool) {
	for _, r := range rules {
		if sub := r.re.FindStringSubmatch(question); sub != nil {
			return Match{Intent: r.intent, Pattern: r.re.String(), Captures: sub[1:]}, true
		}
	}
	return Match{}, false
}
