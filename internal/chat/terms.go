package chat

import (
	"regexp"
	"strings"
)

var termPattern = regexp.MustCompile(`\b\w{3,}\b`)

// termSynonyms widens the catalog search for words customers use that the
// menu doesn't.
var termSynonyms = map[string]string{
	"sweet":  "dessert",
	"sweets": "dessert",
}

// SearchTerms extracts case-folded tokens of three or more characters,
// expands synonyms, and deduplicates while preserving first-seen order.
func SearchTerms(text string) []string {
	tokens := termPattern.FindAllString(strings.ToLower(text), -1)

	seen := make(map[string]struct{}, len(tokens))
	terms := make([]string, 0, len(tokens))
	add := func(term string) {
		if _, ok := seen[term]; ok {
			return
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}

	for _, tok := range tokens {
		add(tok)
		if syn, ok := termSynonyms[tok]; ok {
			add(syn)
		}
	}
	return terms
}
