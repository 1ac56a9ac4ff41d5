package commands

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/rupor-github/hyph/store"
)

func openStore(ctx *cli.Context, errPrefix string, errCode int) (*store.Store, error) {

	env := getEnv(ctx)

	db := firstNonEmpty(ctx.String("db"), env.Cfg.Store.Path)
	if len(db) == 0 {
		return nil, cli.Exit(errors.New(errPrefix+"dictionary store has not been specified"), errCode)
	}
	s, err := store.Open(db, env.Log)
	if err != nil {
		return nil, cli.Exit(errPrefix+err.Error(), errCode)
	}
	return s, nil
}

// Import is "import" command body, it compiles patterns file and puts it into dictionary store.
func Import(ctx *cli.Context) error {

	const (
		errPrefix = "import: "
		errCode   = 1
	)

	env := getEnv(ctx)

	fname := ctx.Args().Get(0)
	if len(fname) == 0 {
		return cli.Exit(errors.New(errPrefix+"patterns file has not been specified"), errCode)
	}
	lang := firstNonEmpty(ctx.String("lang"), env.Cfg.Hyphenator.Language)

	t, err := loadPatterns(fname, env.Log)
	if err != nil {
		return cli.Exit(errPrefix+err.Error(), errCode)
	}

	s, err := openStore(ctx, errPrefix, errCode)
	if err != nil {
		return err
	}
	if err = multierr.Append(s.Put(lang, t), s.Close()); err != nil {
		return cli.Exit(errPrefix+err.Error(), errCode)
	}
	env.Log.Info("Dictionary imported", zap.String("lang", lang), zap.String("file", fname), zap.Stringer("stats", t.Stats()))
	return nil
}

// List is "list" command body.
func List(ctx *cli.Context) error {

	const (
		errPrefix = "list: "
		errCode   = 1
	)

	s, err := openStore(ctx, errPrefix, errCode)
	if err != nil {
		return err
	}
	langs, err := s.List()
	if err = multierr.Append(err, s.Close()); err != nil {
		return cli.Exit(errPrefix+err.Error(), errCode)
	}
	for _, l := range langs {
		fmt.Fprintln(ctx.App.Writer, l)
	}
	return nil
}

// Remove is "remove" command body.
func Remove(ctx *cli.Context) error {

	const (
		errPrefix = "remove: "
		errCode   = 1
	)

	env := getEnv(ctx)

	lang := ctx.String("lang")
	if len(lang) == 0 {
		return cli.Exit(errors.New(errPrefix+"language has not been specified"), errCode)
	}
	s, err := openStore(ctx, errPrefix, errCode)
	if err != nil {
		return err
	}
	if err = multierr.Append(s.Delete(lang), s.Close()); err != nil {
		return cli.Exit(errPrefix+err.Error(), errCode)
	}
	env.Log.Info("Dictionary removed", zap.String("lang", lang))
	return nil
}
