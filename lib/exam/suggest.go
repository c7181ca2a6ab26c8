package exam

import (
	"github.com/pmezard/go-difflib/difflib"
	"strings"
)

// minSuggestRatio is the similarity two names need to be suggested
const minSuggestRatio = 0.6

// suggest returns the candidate most similar to name, compared character by
// character and case-insensitively.
func suggest(name string, candidates []string) (string, bool) {
	a := strings.Split(strings.ToLower(name), "")
	best, bestRatio := "", 0.0
	for _, c := range candidates {
		m := difflib.NewMatcher(a, strings.Split(strings.ToLower(c), ""))
		if m.QuickRatio() < minSuggestRatio {
			continue
		}
		if r := m.Ratio(); r > bestRatio {
			best, bestRatio = c, r
		}
	}
	return best, bestRatio >= minSuggestRatio
}
