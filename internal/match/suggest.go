package match

import (
	"cmp"
	"slices"
)

const (
	// DefaultThreshold is the minimum Similarity for a key to be suggested.
	DefaultThreshold = 0.5
	// DefaultLimit caps the number of suggestions.
	DefaultLimit = 3
)

type candidate struct {
	key   string
	score float64
	order int
}

// TokenOverlap scores the share of distinct name tokens two names have in common,
// relative to the name with more tokens: "title" vs "originalTitle" is 0.5.
func TokenOverlap(a, b string) float64 {
	ta, tb := uniqueTokens(a), uniqueTokens(b)

	maxLen := max(len(ta), len(tb))
	if maxLen == 0 {
		return 0
	}

	common := 0
	for token := range ta {
		if tb[token] {
			common++
		}
	}

	return float64(common) / float64(maxLen)
}

func uniqueTokens(s string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range TokenizeIdent(s) {
		set[token] = true
	}

	return set
}

// Suggest returns up to limit keys whose score against want is at least threshold,
// best first. The score is the better of Similarity and TokenOverlap. Ties keep the order of keys. The exact key itself is never suggested.
func Suggest(want string, keys []string, threshold float64, limit int) []string {
	if limit <= 0 {
		return nil
	}

	var candidates []candidate

	for i, key := range keys {
		if key == want {
			continue
		}

		score := max(Similarity(want, key), TokenOverlap(want, key))
		if score < threshold {
			continue
		}

		candidates = append(candidates, candidate{key: key, score: score, order: i})
	}

	slices.SortFunc(candidates, func(a, b candidate) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}

		return cmp.Compare(a.order, b.order)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	if len(candidates) == 0 {
		return nil
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.key
	}

	return out
}
