package utils

import (
	"strings"
)

// IsOneOfIgnoreCase checks if string is present in slice of strings. Comparison is case insensitive.
func IsOneOfIgnoreCase(name string, names []string) bool {
	for _, n := range names {
		if strings.EqualFold(name, n) {
			return true
		}
	}
	return false
}

// SplitTrailing separates word from trailing punctuation, "word," becomes "word" and ",".
func SplitTrailing(word, cutset string) (string, string) {
	trimmed := strings.TrimRight(word, cutset)
	return trimmed, word[len(trimmed):]
}
