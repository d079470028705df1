// Package langutil tokenizes C++ identifiers and matches qualified symbol
// names by their trailing tokens.
package langutil

import (
	"regexp"
)

var tokenBoundary = regexp.MustCompile(`[-!"#%&'()*+,./:;<=>?\[\\\]^{|}~\s]`)

// CppIdentifierTokens splits s on C++ token boundaries and returns the
// non-empty pieces.
//
//	CppIdentifierTokens("abc::def")              // [abc def]
//	CppIdentifierTokens("a&(b*c)[d^e/f]g{}h|i")  // [a b c d e f g h i]
func CppIdentifierTokens(s string) []string {
	parts := tokenBoundary.Split(s, -1)
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// MatchSymbolSuffix reports whether the tokens of haystack end with exactly
// the tokens of needle.
func MatchSymbolSuffix(haystack, needle string) bool {
	return NewSymbolSuffixMatcher(needle).Match(haystack)
}

// SymbolSuffixMatcher is MatchSymbolSuffix with the needle tokenized once.
type SymbolSuffixMatcher struct {
	needle []string
}

func NewSymbolSuffixMatcher(needle string) *SymbolSuffixMatcher {
	return &SymbolSuffixMatcher{needle: CppIdentifierTokens(needle)}
}

func (m *SymbolSuffixMatcher) Match(haystack string) bool {
	tokens := CppIdentifierTokens(haystack)
	if len(tokens) < len(m.needle) {
		return false
	}
	tail := tokens[len(tokens)-len(m.needle):]
	for i, t := range m.needle {
		if tail[i] != t {
			return false
		}
	}
	return len(m.needle) > 0 || len(tokens) == 0
}

// IsIdentifier reports whether s is a single identifier token.
func IsIdentifier(s string) bool {
	tokens := CppIdentifierTokens(s)
	return len(tokens) > 0 && tokens[0] == s
}
