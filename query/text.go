package query

import "strings"

// Stop words filtered out when extracting meaningful search terms
var stopWords = map[string]bool{
	"i": true, "need": true, "want": true, "get": true, "find": true,
	"show": true, "me": true, "the": true, "a": true, "an": true,
	"for": true, "in": true, "on": true, "with": true, "of": true,
	"and": true, "or": true, "but": true, "can": true, "you": true,
	"do": true, "have": true, "are": true, "available": true,
	"please": true, "help": true, "looking": true,
}

// normalize trims and case-folds a query for matching.
func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// tokenize splits text into lowercased words with surrounding punctuation removed.
func tokenize(text string) []string {
	words := strings.Fields(text)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		if cleaned != "" {
			tokens = append(tokens, cleaned)
		}
	}
	return tokens
}

// containsPhrase reports whether the phrase's tokens appear as a
// consecutive run inside tokens. Token-level matching avoids false hits
// from substrings embedded in larger words ("colors" inside "twocolors"
// would match a substring scan but not a token scan).
func containsPhrase(tokens []string, phrase string) bool {
	want := tokenize(phrase)
	if len(want) == 0 || len(want) > len(tokens) {
		return false
	}
	for i := 0; i+len(want) <= len(tokens); i++ {
		match := true
		for j, w := range want {
			if tokens[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// SearchTerms extracts up to three meaningful terms from a query,
// dropping stop words and very short tokens. Used for recommendation
// text when no product resolves.
func SearchTerms(query string) []string {
	tokens := tokenize(query)
	terms := make([]string, 0, 3)
	for _, token := range tokens {
		if stopWords[token] || len(token) <= 2 {
			continue
		}
		terms = append(terms, token)
		if len(terms) == 3 {
			break
		}
	}
	return terms
}
