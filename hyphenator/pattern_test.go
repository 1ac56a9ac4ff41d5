package hyphenator

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"
)

func TestParsePattern(t *testing.T) {

	tests := []struct {
		pattern string
		letters string
		weights []int
	}{
		{"1bc2", "bc", []int{1, 0, 2}},
		{"abc", "abc", []int{0, 0, 0, 0}},
		{"a1b", "ab", []int{0, 1, 0}},
		{"hen5at", "henat", []int{0, 0, 0, 5, 0, 0}},
		{".an1ti", ".anti", []int{0, 0, 0, 1, 0, 0}},
		{"2ment.", "ment.", []int{2, 0, 0, 0, 0, 0}},
		{"fü1r", "für", []int{0, 0, 1, 0}},
		{"0a0", "a", []int{0, 0}},
	}

	for i, tst := range tests {
		letters, weights, err := parsePattern(tst.pattern)
		if !td.CmpNoError(t, err, "%d: %s", i, tst.pattern) {
			continue
		}
		td.Cmp(t, string(letters), tst.letters, "%d: letters of %s", i, tst.pattern)
		td.Cmp(t, weights, tst.weights, "%d: weights of %s", i, tst.pattern)
		td.Cmp(t, len(weights), len(letters)+1, "%d: weights count of %s", i, tst.pattern)
	}
}

func TestParsePatternErrors(t *testing.T) {

	tests := []struct {
		pattern string
		err     error
	}{
		{"", ErrNoLetters},
		{"1", ErrNoLetters},
		{"12", ErrNoLetters},
		{"123", ErrNoLetters},
		{" 1 ", ErrNoLetters},
		{"a12b", ErrMalformedPattern},
		{"a1 b", ErrMalformedPattern},
		{"a1 23b", ErrMalformedPattern},
	}

	for i, tst := range tests {
		_, _, err := parsePattern(tst.pattern)
		td.CmpErrorIs(t, err, tst.err, "%d: %q", i, tst.pattern)
	}
}
