// Package processor applies hyphenation to running text.
package processor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/rupor-github/hyph/hyphenator"
	"github.com/rupor-github/hyph/utils"
)

// punctuation which may stick to the end of a word
const punctuation = ".,;:!?\"')]}»…"

// Processor hyphenates text word by word.
type Processor struct {
	log    *zap.Logger
	h      *hyphenator.Hyphenator
	tr     hyphenator.Tracer
	hyphen string
}

// New creates Processor. Empty hyphen means hyphenator.DefaultHyphen.
func New(h *hyphenator.Hyphenator, hyphen string, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	if len(hyphen) == 0 {
		hyphen = hyphenator.DefaultHyphen
	}
	return &Processor{log: log, h: h, hyphen: hyphen}
}

// WithTracer makes processor report every hyphenated word to tr.
func (p *Processor) WithTracer(tr hyphenator.Tracer) *Processor {
	p.tr = tr
	return p
}

// HyphenateWord hyphenates single token, trailing punctuation is left alone.
func (p *Processor) HyphenateWord(token string) string {
	word, tail := utils.SplitTrailing(token, punctuation)
	if p.tr != nil {
		return p.h.TraceWith(word, p.hyphen, p.tr) + tail
	}
	return p.h.HyphenateWith(word, p.hyphen) + tail
}

// HyphenateText hyphenates every space separated token of text. Spacing is kept as is.
func (p *Processor) HyphenateText(text string) string {
	tokens := strings.Split(text, " ")
	for i, t := range tokens {
		tokens[i] = p.HyphenateWord(t)
	}
	return strings.Join(tokens, " ")
}

// Run hyphenates text line by line until input is exhausted or context is canceled. Whatever was hyphenated
// before an error is still written out.
func (p *Processor) Run(ctx context.Context, r io.Reader, w io.Writer) (err error) {

	start := time.Now()

	var lines int
	out := bufio.NewWriter(w)
	defer func() {
		if ferr := out.Flush(); ferr != nil {
			err = multierr.Append(err, fmt.Errorf("unable to write hyphenated text: %w", ferr))
		}
		p.log.Debug("Text processed",
			zap.String("lang", p.h.Language()),
			zap.Int("lines", lines),
			zap.Duration("elapsed", time.Since(start)),
		)
	}()

	// no limit on line length
	in := bufio.NewReader(utils.NewBOMReader(r))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, rerr := in.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if _, err := fmt.Fprintln(out, p.HyphenateText(line)); err != nil {
				return fmt.Errorf("unable to write hyphenated text: %w", err)
			}
			lines++
		}
		if errors.Is(rerr, io.EOF) {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("unable to read text: %w", rerr)
		}
	}
}
