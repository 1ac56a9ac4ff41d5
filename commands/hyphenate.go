package commands

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/rupor-github/hyph/hyphenator"
	"github.com/rupor-github/hyph/processor"
)

// Hyphenate is "hyphenate" command body.
func Hyphenate(ctx *cli.Context) error {

	const (
		errPrefix = "hyphenate: "
		errCode   = 1
	)

	env := getEnv(ctx)

	h, err := loadHyphenator(ctx, env)
	if err != nil {
		return cli.Exit(errPrefix+err.Error(), errCode)
	}

	hyphen := env.Cfg.Hyphenator.Hyphen
	if ctx.IsSet("hyphen") {
		hyphen = ctx.String("hyphen")
	}
	p := processor.New(h, hyphen, env.Log)

	out := ctx.App.Writer
	if ctx.NArg() == 0 {
		if ctx.Bool("trace") {
			// diagrams would be mixed with text, so stdin is traced to the log
			if !env.Log.Core().Enabled(zap.DebugLevel) {
				env.Log.Warn("Tracing goes to debug log which is disabled, use --debug")
			}
			p.WithTracer(hyphenator.NewLogTracer(env.Log))
		}
		if err := p.Run(ctx.Context, ctx.App.Reader, out); err != nil {
			return cli.Exit(errPrefix+err.Error(), errCode)
		}
		return nil
	}

	if ctx.Bool("trace") {
		for _, word := range ctx.Args().Slice() {
			res := h.Trace(word, hyphenator.NewTextTracer(out))
			if _, err := fmt.Fprintf(out, "%s\n\n", res); err != nil {
				return cli.Exit(errPrefix+err.Error(), errCode)
			}
		}
		return nil
	}

	if _, err := fmt.Fprintln(out, p.HyphenateText(strings.Join(ctx.Args().Slice(), " "))); err != nil {
		return cli.Exit(errPrefix+err.Error(), errCode)
	}
	return nil
}
