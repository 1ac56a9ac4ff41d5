package hyphenator

import (
	"errors"
	"fmt"
	"unicode"
)

var (
	// ErrNoLetters is returned for patterns which consist of digits only.
	ErrNoLetters = errors.New("pattern has no letters")
	// ErrMalformedPattern is returned when pattern could not be used to build trie.
	ErrMalformedPattern = errors.New("malformed pattern")
)

// parsePattern splits pattern into trie path and weights. Weights sit between and around letters, so there is
// always one more weight than letters, missing digits are zeroes.
func parsePattern(pattern string) ([]rune, []int, error) {

	letters := make([]rune, 0, len(pattern))
	weights := make([]int, 0, len(pattern)+1)

	var malformed error

	supplied := false
	for _, c := range pattern {
		switch {
		case c >= '0' && c <= '9':
			if supplied && malformed == nil {
				malformed = fmt.Errorf("%w: two digits in a row in %q", ErrMalformedPattern, pattern)
			}
			weights = append(weights, int(c-'0'))
			supplied = true
		case unicode.IsSpace(c):
			if malformed == nil {
				malformed = fmt.Errorf("%w: whitespace in %q", ErrMalformedPattern, pattern)
			}
		default:
			if !supplied {
				weights = append(weights, 0)
			}
			letters = append(letters, c)
			supplied = false
		}
	}
	if !supplied {
		weights = append(weights, 0)
	}
	if len(letters) == 0 {
		return nil, nil, fmt.Errorf("%w: %q", ErrNoLetters, pattern)
	}
	if malformed != nil {
		return nil, nil, malformed
	}
	return letters, weights, nil
}
