package usecase

import (
	"regexp"
	"strings"
)

// tokenSplitRegex splits a lowercased query on any run of characters that is
// not an ASCII letter or digit, treating punctuation, whitespace, and symbols
// uniformly as separators
var tokenSplitRegex = regexp.MustCompile(`[^a-z0-9]+`)

// stopwords are generic shopping-query filler terms that carry no matching signal
var stopwords = map[string]bool{
	"find":  true,
	"good":  true,
	"near":  true,
	"place": true,
	"shop":  true,
	"store": true,
	"in":    true,
	"the":   true,
	"a":     true,
	"to":    true,
	"of":    true,
	"for":   true,
	"me":    true,
}

// ExtractKeywords normalizes a free-text query into matching keywords.
// Tokens of length <= 2 and stopwords are discarded. Order of first
// appearance is preserved and duplicates are kept, since downstream matching
// is a membership test rather than a count.
func ExtractKeywords(query string) []string {
	tokens := tokenSplitRegex.Split(strings.ToLower(query), -1)

	var keywords []string
	for _, token := range tokens {
		if len(token) <= 2 {
			continue
		}
		if stopwords[token] {
			continue
		}
		keywords = append(keywords, token)
	}

	return keywords
}
