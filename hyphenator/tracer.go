package hyphenator

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Tracer receives details of a single word hyphenation.
type Tracer interface {
	// Start is called with the word prepared for lookup (lower cased and surrounded by boundary dots).
	Start(work string)
	// Match is called for every matching pattern, pos is its starting position in work.
	Match(pos int, pattern string)
	// End is called with final merged weights interleaved with letters of work.
	End(result string)
}

type textTracer struct {
	w   io.Writer
	err error
}

// NewTextTracer returns Tracer which draws matches one under another:
//
//	 . h y p h e n a t i o n .
//	  0h0y3p0h0
//	        0h0e2n0
//	...
func NewTextTracer(w io.Writer) Tracer {
	return &textTracer{w: w}
}

func (t *textTracer) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textTracer) Start(work string) {
	letters := make([]string, 0, len(work))
	for _, c := range work {
		letters = append(letters, string(c))
	}
	t.printf(" %s\n", strings.Join(letters, " "))
}

func (t *textTracer) Match(pos int, pattern string) {
	t.printf("%s%s\n", strings.Repeat(" ", pos*2), pattern)
}

func (t *textTracer) End(result string) {
	t.printf("%s\n", result)
}

type logTracer struct {
	log *zap.Logger
}

// NewLogTracer returns Tracer which reports to log with debug level.
func NewLogTracer(log *zap.Logger) Tracer {
	return &logTracer{log: log}
}

func (t *logTracer) Start(work string) {
	t.log.Debug("Hyphenation started", zap.String("work", work))
}

func (t *logTracer) Match(pos int, pattern string) {
	t.log.Debug("Pattern matched", zap.Int("pos", pos), zap.String("pattern", pattern))
}

func (t *logTracer) End(result string) {
	t.log.Debug("Hyphenation done", zap.String("points", result))
}
