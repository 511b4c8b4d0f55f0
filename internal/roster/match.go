package roster

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Similarity is 1 minus the case-insensitive Levenshtein distance over the
// longer string's length.
func Similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 1
	}
	distance := fuzzy.LevenshteinDistance(a, b)
	return 1 - float64(distance)/float64(maxLen)
}

// BestMatch returns the candidate most similar to query, provided it clears
// threshold. Substring matches (case-insensitive) win outright when unique.
func BestMatch(query string, candidates []string, threshold float64) (string, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", false
	}

	lowered := strings.ToLower(query)
	var contains []string
	for _, c := range candidates {
		if strings.EqualFold(c, query) {
			return c, true
		}
		if strings.Contains(strings.ToLower(c), lowered) {
			contains = append(contains, c)
		}
	}
	if len(contains) == 1 {
		return contains[0], true
	}

	best := ""
	bestScore := threshold
	for _, c := range candidates {
		if score := Similarity(query, c); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, best != ""
}
