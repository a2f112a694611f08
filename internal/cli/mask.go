package cli

import (
	"regexp"
	"strings"
)

const blank = "______"

// maskWord replaces whole-word occurrences of word in text with a blank, ignoring case.
func maskWord(text, word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return text
	}

	pattern := `(?i)` + regexp.QuoteMeta(word)
	if isWordChar(word[0]) {
		pattern = `(?i)\b` + regexp.QuoteMeta(word)
	}
	if isWordChar(word[len(word)-1]) {
		pattern += `\b`
	}
	return regexp.MustCompile(pattern).ReplaceAllString(text, blank)
}

// word is lowercased by the caller
func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}
