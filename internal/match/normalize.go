package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes a property name for fuzzy matching:
// case-folded to lower with separators (_, -, ., spaces) removed,
// so "release_year", "releaseYear" and "Release Year" compare equal.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// TokenizeIdent splits a property name into lowercase tokens on separators
// and camelCase boundaries: "originalTitle" -> ["original", "title"].
func TokenizeIdent(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

// startsToken determines if a new camelCase token starts at position i.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "imdbID" -> split before 'I'
	if !unicode.IsUpper(prev) {
		return true
	}

	// "IMDBRating" -> "IMDB" + "Rating", split before 'R'
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
