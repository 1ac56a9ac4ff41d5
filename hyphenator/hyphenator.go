package hyphenator

import (
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// boundary marks word beginning and end, so patterns could match there.
	boundary = '.'
	// DefaultHyphen is used to join word segments by Hyphenate.
	DefaultHyphen = "-"
)

// Hyphenator breaks words using loaded patterns. It has no mutable state after dictionary has been loaded and
// could be used concurrently.
type Hyphenator struct {
	log      *zap.Logger
	lang     language.Tag
	name     string
	patterns *Trie
}

// New creates Hyphenator for already built patterns trie.
func New(lang string, patterns *Trie, log *zap.Logger) *Hyphenator {
	h := &Hyphenator{patterns: patterns}
	h.init(lang, log)
	return h
}

func (h *Hyphenator) init(lang string, log *zap.Logger) {

	if log == nil {
		log = zap.NewNop()
	}
	h.log = log
	h.name = lang

	tag, err := language.Parse(lang)
	if err != nil {
		// still usable, lower casing just will not be language specific
		log.Warn("Unknown hyphenation language", zap.String("lang", lang), zap.Error(err))
		tag = language.Und
	}
	h.lang = tag
}

// Language returns language name hyphenator was created for.
func (h *Hyphenator) Language() string {
	return h.name
}

// Patterns returns underlying trie. It must not be modified.
func (h *Hyphenator) Patterns() *Trie {
	return h.patterns
}

// Breakpoints returns break strength for every gap between letters of the word - len(word)-1 values counted in
// runes. Odd values allow hyphenation, first and last gaps are always 0.
func (h *Hyphenator) Breakpoints(word string) []int {
	return h.breakpoints(word, nil)
}

// Segments splits word into hyphenation pieces. Pieces are taken from original word so case is preserved.
func (h *Hyphenator) Segments(word string) []string {
	return segments(word, h.breakpoints(word, nil))
}

// Hyphenate returns word with DefaultHyphen inserted at every allowed break.
func (h *Hyphenator) Hyphenate(word string) string {
	return h.HyphenateWith(word, DefaultHyphen)
}

// HyphenateWith returns word with hyphen inserted at every allowed break, soft hyphen (U+00AD) is useful here.
func (h *Hyphenator) HyphenateWith(word, hyphen string) string {
	return strings.Join(h.Segments(word), hyphen)
}

// Trace hyphenates word reporting every pattern match to tr.
func (h *Hyphenator) Trace(word string, tr Tracer) string {
	return h.TraceWith(word, DefaultHyphen, tr)
}

// TraceWith is Trace with custom hyphen.
func (h *Hyphenator) TraceWith(word, hyphen string, tr Tracer) string {
	return strings.Join(segments(word, h.breakpoints(word, tr)), hyphen)
}

func (h *Hyphenator) breakpoints(word string, tr Tracer) []int {

	src := []rune(word)

	work := make([]rune, 0, len(src)+2)
	work = append(work, boundary)
	work = append(work, h.lower(src)...)
	work = append(work, boundary)

	if tr != nil {
		tr.Start(string(work))
	}

	points := make([]int, len(work)+1)
	if h.patterns != nil {
		for i := range work {
			h.patterns.walk(work, i, func(end int, weights []int) {
				for j, w := range weights {
					if points[i+j] < w {
						points[i+j] = w
					}
				}
				if tr != nil {
					tr.Match(i, interleave(work[i:end], weights))
				}
			})
		}
	}

	// never leave less than 2 letters at the beginning or end of the word
	l := len(work)
	points[2] = 0
	points[l-2] = 0

	if tr != nil {
		tr.End(interleave(work, points))
	}

	if len(src) < 2 {
		return []int{}
	}
	return points[2 : l-1]
}

// lower folds word for pattern lookup, one rune in - one rune out, so positions are kept.
func (h *Hyphenator) lower(src []rune) []rune {

	lowered := []rune(cases.Lower(h.lang).String(string(src)))
	if len(lowered) == len(src) {
		return lowered
	}
	// special casing changed length (Turkish dotted I and friends)
	lowered = make([]rune, len(src))
	for i, c := range src {
		lowered[i] = unicode.ToLower(c)
	}
	return lowered
}

// segments cuts word after every rune which has odd break value following it.
func segments(word string, breaks []int) []string {

	pieces := make([]string, 0, len(breaks)/2+1)

	start, k := 0, 0
	for i := range word {
		if k > 0 && breaks[k-1]%2 != 0 {
			pieces = append(pieces, word[start:i])
			start = i
		}
		k++
	}
	return append(pieces, word[start:])
}

// interleave puts weights between letters: "1b0c2".
func interleave(letters []rune, weights []int) string {

	var sb strings.Builder
	for i, w := range weights {
		sb.WriteString(strconv.Itoa(w))
		if i < len(letters) {
			sb.WriteRune(letters[i])
		}
	}
	return sb.String()
}
