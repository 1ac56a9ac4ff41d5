package hyphenator

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rupor-github/hyph/utils"
)

const commentMarker = "%"

// LoadPatterns reads hyphenation patterns, one per line, and builds trie out of them. Lines starting with '%'
// are comments, empty lines are ignored.
func LoadPatterns(r io.Reader) (*Trie, error) {

	t := NewTrie()

	scanner := bufio.NewScanner(utils.NewBOMReader(r))
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, commentMarker) {
			continue
		}
		if err := t.Insert(line); err != nil {
			return nil, fmt.Errorf("unable to use pattern at line %d: %w", n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read patterns: %w", err)
	}
	return t, nil
}

// LoadDictionary reads patterns for the language replacing anything hyphenator had before.
func (h *Hyphenator) LoadDictionary(lang string, r io.Reader, log *zap.Logger) error {

	start := time.Now()

	t, err := LoadPatterns(r)
	if err != nil {
		return fmt.Errorf("unable to load dictionary for %s: %w", lang, err)
	}
	h.patterns = t
	h.init(lang, log)

	h.log.Debug("Hyphenation dictionary loaded",
		zap.String("lang", lang),
		zap.Stringer("stats", t.Stats()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
