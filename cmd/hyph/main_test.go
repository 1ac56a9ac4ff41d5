package main

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/maxatome/go-testdeep/td"
	"github.com/urfave/cli/v2"

	"github.com/rupor-github/hyph/state"
)

const patterns = "testdata/hyph-en-sample.pat"

func init() {
	cli.OsExiter = func(int) {}
	cli.ErrWriter = io.Discard
}

// run executes program with arguments returning whatever it printed.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return runConfig(t, "[logger.console]\nlevel = \"none\"\n", stdin, args...)
}

func runConfig(t *testing.T, conf, stdin string, args ...string) (string, error) {
	t.Helper()

	cfg := filepath.Join(t.TempDir(), "hyph.toml")
	if err := os.WriteFile(cfg, []byte(conf), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	app := newApp(state.NewLocalEnv())
	app.Writer = &out
	app.Reader = strings.NewReader(stdin)

	err := app.Run(append([]string{"hyph", "--config", cfg}, args...))
	return out.String(), err
}

func TestHyphenateWords(t *testing.T) {

	out, err := run(t, "", "hyphenate", "--dict", patterns, "computer", "Hyphenation.", "table")
	td.Require(t).CmpNoError(err)
	td.Cmp(t, out, "com-put-er Hy-phen-ation. table\n")

	out, err = run(t, "", "hyphenate", "--dict", patterns, "--hyphen", "=", "concatenation")
	td.Require(t).CmpNoError(err)
	td.Cmp(t, out, "con=ca=te=na=tion\n")
}

func TestHyphenateStdin(t *testing.T) {

	out, err := run(t, "an algorithm for computer\nhyphenation\n", "hyphenate", "--dict", patterns)
	td.Require(t).CmpNoError(err)
	td.Cmp(t, out, "an al-go-rithm for com-put-er\nhy-phen-ation\n")
}

func TestHyphenateTrace(t *testing.T) {

	out, err := run(t, "", "hyphenate", "--dict", patterns, "--trace", "table")
	td.Require(t).CmpNoError(err)
	td.Cmp(t, out, " . t a b l e .\n  1t0a0\n      2b0l0\n      1b0l0e0\n0.1t0a2b0l0e0.0\ntable\n\n")
}

func TestHyphenateTraceStdin(t *testing.T) {

	logFile := filepath.Join(t.TempDir(), "hyph.log")
	conf := fmt.Sprintf("[logger.console]\nlevel = \"none\"\n\n[logger.file]\nlevel = \"debug\"\ndestination = %q\n", logFile)

	out, err := runConfig(t, conf, "table\n", "hyphenate", "--dict", patterns, "--trace")
	td.Require(t).CmpNoError(err)
	td.Cmp(t, out, "table\n")

	data, err := os.ReadFile(logFile)
	td.Require(t).CmpNoError(err)
	td.Cmp(t, string(data), td.All(
		td.Contains(`"work":".table."`),
		td.Contains(`"pattern":"1b0l0e0"`),
		td.Contains(`"points":"0.1t0a2b0l0e0.0"`),
	))
}

func TestHyphenateNoDictionary(t *testing.T) {

	_, err := run(t, "", "hyphenate", "computer")
	td.Cmp(t, err, td.Smuggle(func(e error) string { return e.Error() }, td.Contains("no dictionary specified")))

	_, err = run(t, "", "hyphenate", "--dict", filepath.Join(t.TempDir(), "missing.pat"), "computer")
	td.CmpError(t, err)
}

func TestHyphenateCompressed(t *testing.T) {

	data, err := os.ReadFile(patterns)
	td.Require(t).CmpNoError(err)

	dir := t.TempDir()

	// zip with some noise before patterns file
	zname := filepath.Join(dir, "hyph-en.zip")
	var zbuf bytes.Buffer
	zw := zip.NewWriter(&zbuf)
	w, err := zw.Create("README.md")
	td.Require(t).CmpNoError(err)
	_, err = w.Write([]byte("# patterns\n"))
	td.Require(t).CmpNoError(err)
	w, err = zw.Create("en/hyph-en.pat")
	td.Require(t).CmpNoError(err)
	_, err = w.Write(data)
	td.Require(t).CmpNoError(err)
	td.Require(t).CmpNoError(zw.Close())
	td.Require(t).CmpNoError(os.WriteFile(zname, zbuf.Bytes(), 0644))

	gname := filepath.Join(dir, "hyph-en.pat.gz")
	var gbuf bytes.Buffer
	gw := gzip.NewWriter(&gbuf)
	_, err = gw.Write(data)
	td.Require(t).CmpNoError(err)
	td.Require(t).CmpNoError(gw.Close())
	td.Require(t).CmpNoError(os.WriteFile(gname, gbuf.Bytes(), 0644))

	for _, fname := range []string{zname, gname} {
		out, err := run(t, "", "hyphenate", "--dict", fname, "computer")
		td.Require(t).CmpNoError(err, fname)
		td.Cmp(t, out, "com-put-er\n", fname)
	}
}

func TestDump(t *testing.T) {

	out, err := run(t, "", "dump", "--dict", patterns)
	td.Require(t).CmpNoError(err)
	td.CmpTrue(t, json.Valid([]byte(out)))
	td.Cmp(t, out, td.HasPrefix(`{"a":{"l":{"g":{"o":{"0":[0,0,1,0,0]}}}}`))

	fname := filepath.Join(t.TempDir(), "en.json")
	_, err = run(t, "", "dump", "--dict", patterns, "--pretty", fname)
	td.Require(t).CmpNoError(err)

	data, err := os.ReadFile(fname)
	td.Require(t).CmpNoError(err)

	var compact, indented interface{}
	td.Require(t).CmpNoError(json.Unmarshal([]byte(out), &compact))
	td.Require(t).CmpNoError(json.Unmarshal(data, &indented))
	td.Cmp(t, indented, compact)
	td.Cmp(t, string(data), td.Contains("\n  "))
}

func TestStoreCommands(t *testing.T) {

	db := filepath.Join(t.TempDir(), "dictionaries")

	_, err := run(t, "", "import", "--db", db, "--lang", "en-US", patterns)
	td.Require(t).CmpNoError(err)
	_, err = run(t, "", "import", "--db", db, "--lang", "en-GB", patterns)
	td.Require(t).CmpNoError(err)

	out, err := run(t, "", "list", "--db", db)
	td.Require(t).CmpNoError(err)
	td.Cmp(t, out, "en-gb\nen-us\n")

	out, err = run(t, "", "hyphenate", "--db", db, "--lang", "en_us", "computer")
	td.Require(t).CmpNoError(err)
	td.Cmp(t, out, "com-put-er\n")

	_, err = run(t, "", "remove", "--db", db, "--lang", "en-GB")
	td.Require(t).CmpNoError(err)

	out, err = run(t, "", "list", "--db", db)
	td.Require(t).CmpNoError(err)
	td.Cmp(t, out, "en-us\n")

	_, err = run(t, "", "hyphenate", "--db", db, "--lang", "en-GB", "computer")
	td.CmpError(t, err)

	_, err = run(t, "", "remove", "--db", db)
	td.CmpError(t, err)
}

func TestVersion(t *testing.T) {

	out, err := run(t, "", "version")
	td.Require(t).CmpNoError(err)
	td.Cmp(t, out, td.Contains("Version 0.1.0"))
}
