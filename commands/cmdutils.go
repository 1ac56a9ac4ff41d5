package commands

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"github.com/klauspost/compress/gzip"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/rupor-github/hyph/hyphenator"
	"github.com/rupor-github/hyph/state"
	"github.com/rupor-github/hyph/store"
	"github.com/rupor-github/hyph/utils"
)

// extensions of pattern files we look for inside archives
var dictExts = []string{".pat", ".txt"}

// ErrNoDictionary is returned when neither patterns file nor dictionary store were specified.
var ErrNoDictionary = errors.New("no dictionary specified, use --dict or --db")

type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var err error
	for i := len(m.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, m.closers[i].Close())
	}
	return err
}

// openDictionary opens patterns file. File could be plain text, zip archive with patterns file inside or gzipped.
func openDictionary(fname string) (io.ReadCloser, error) {

	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}

	header := make([]byte, 262)
	n, err := io.ReadFull(file, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		file.Close()
		return nil, err
	}
	header = header[:n]
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		file.Close()
		return nil, err
	}

	switch {
	case filetype.Is(header, "zip"):
		file.Close()
		return openZippedDictionary(fname)
	case filetype.Is(header, "gz"):
		zr, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("unable to decompress [%s]: %w", fname, err)
		}
		return &multiCloser{Reader: zr, closers: []io.Closer{file, zr}}, nil
	default:
		return file, nil
	}
}

func openZippedDictionary(fname string) (io.ReadCloser, error) {

	zr, err := zip.OpenReader(fname)
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !utils.IsOneOfIgnoreCase(filepath.Ext(f.Name), dictExts) {
			continue
		}
		r, err := f.Open()
		if err != nil {
			zr.Close()
			return nil, fmt.Errorf("unable to open [%s] in archive [%s]: %w", f.Name, fname, err)
		}
		return &multiCloser{Reader: r, closers: []io.Closer{zr, r}}, nil
	}
	zr.Close()
	return nil, fmt.Errorf("no patterns file in archive [%s]", fname)
}

// loadPatterns builds trie out of patterns file.
func loadPatterns(fname string, log *zap.Logger) (t *hyphenator.Trie, err error) {

	r, err := openDictionary(fname)
	if err != nil {
		return nil, fmt.Errorf("unable to open dictionary: %w", err)
	}
	defer func() {
		err = multierr.Append(err, r.Close())
	}()

	if t, err = hyphenator.LoadPatterns(r); err != nil {
		return nil, err
	}
	log.Debug("Patterns loaded", zap.String("file", fname), zap.Stringer("stats", t.Stats()))
	return t, nil
}

// getEnv returns program environment passed through hidden flag.
func getEnv(ctx *cli.Context) *state.LocalEnv {
	if env, ok := ctx.Generic(state.FlagName).(*state.LocalEnv); ok && env != nil {
		return env
	}
	return state.NewLocalEnv()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if len(v) > 0 {
			return v
		}
	}
	return ""
}

// loadHyphenator prepares hyphenator using command line first and configuration second. Patterns file wins over
// dictionary store.
func loadHyphenator(ctx *cli.Context, env *state.LocalEnv) (h *hyphenator.Hyphenator, err error) {

	lang := firstNonEmpty(ctx.String("lang"), env.Cfg.Hyphenator.Language)

	var dict, db string
	switch {
	case ctx.IsSet("dict"):
		dict = ctx.String("dict")
	case ctx.IsSet("db"):
		db = ctx.String("db")
	default:
		dict, db = env.Cfg.Hyphenator.Dictionary, env.Cfg.Store.Path
	}

	var t *hyphenator.Trie
	switch {
	case len(dict) > 0:
		if t, err = loadPatterns(dict, env.Log); err != nil {
			return nil, err
		}
	case len(db) > 0:
		s, err := store.Open(db, env.Log)
		if err != nil {
			return nil, err
		}
		t, err = s.Get(lang)
		if err = multierr.Append(err, s.Close()); err != nil {
			return nil, err
		}
	default:
		return nil, ErrNoDictionary
	}
	return hyphenator.New(lang, t, env.Log), nil
}
