package commands

import (
	"errors"
	"os"

	"github.com/tidwall/pretty"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Dump is "dump" command body, it writes patterns trie as JSON.
func Dump(ctx *cli.Context) error {

	const (
		errPrefix = "dump: "
		errCode   = 1
	)

	env := getEnv(ctx)

	dict := firstNonEmpty(ctx.String("dict"), env.Cfg.Hyphenator.Dictionary)
	if len(dict) == 0 {
		return cli.Exit(errors.New(errPrefix+"patterns file has not been specified"), errCode)
	}

	t, err := loadPatterns(dict, env.Log)
	if err != nil {
		return cli.Exit(errPrefix+err.Error(), errCode)
	}

	data, err := t.MarshalJSON()
	if err != nil {
		return cli.Exit(errPrefix+"unable to serialize patterns: "+err.Error(), errCode)
	}
	if ctx.Bool("pretty") {
		data = pretty.Pretty(data)
	} else {
		data = append(data, '\n')
	}

	fname := ctx.Args().Get(0)
	if len(fname) == 0 {
		if _, err := ctx.App.Writer.Write(data); err != nil {
			return cli.Exit(errPrefix+err.Error(), errCode)
		}
		return nil
	}
	if err := os.WriteFile(fname, data, 0644); err != nil {
		return cli.Exit(errPrefix+"unable to write dump: "+err.Error(), errCode)
	}
	env.Log.Info("Patterns dumped", zap.String("from", dict), zap.String("to", fname), zap.Int("size", len(data)))
	return nil
}
