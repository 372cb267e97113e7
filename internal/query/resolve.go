package query

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

var wordSeparators = regexp.MustCompile(`[\s_-]+`)

var timeKeywords = []string{"date", "time", "year", "month", "day", "created", "updated"}

// ResolveColumn maps a free-text fragment to a header, trying in order a
// case-insensitive exact match, a substring match, and a word-level match
// where a header word contains the fragment or the fragment contains it.
func ResolveColumn(fragment string, headers []string) (string, bool) {
	term := strings.ToLower(fragment)
	if h, ok := lo.Find(headers, func(h string) bool {
		return strings.ToLower(h) == term
	}); ok {
		return h, true
	}
	if h, ok := lo.Find(headers, func(h string) bool {
		return strings.Contains(strings.ToLower(h), term)
	}); ok {
		return h, true
	}
	return lo.Find(headers, func(h string) bool {
		words := wordSeparators.Split(strings.ToLower(h), -1)
		return lo.SomeBy(words, func(w string) bool {
			return strings.Contains(w, term) || strings.Contains(term, w)
		})
	})
}

// TimeColumn returns the first header that looks time-related.
func TimeColumn(headers []string) (string, bool) {
	return lo.Find(headers, func(h string) bool {
		lower := strings.ToLower(h)
		return lo.SomeBy(timeKeywords, func(k string) bool { return strings.Contains(lower, k) })
	})
}
