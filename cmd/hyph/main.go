package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/rupor-github/hyph/commands"
	"github.com/rupor-github/hyph/config"
	"github.com/rupor-github/hyph/misc"
	"github.com/rupor-github/hyph/state"
)

func dictFlag() cli.Flag {
	return &cli.StringFlag{Name: "dict", Aliases: []string{"p"}, Usage: "patterns `FILE` (plain text, zip or gzip)"}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{Name: "db", Usage: "compiled dictionaries store `DIR`"}
}

func langFlag() cli.Flag {
	return &cli.StringFlag{Name: "lang", Aliases: []string{"l"}, Usage: "dictionary `LANGUAGE`"}
}

func newApp(env *state.LocalEnv) *cli.App {

	app := cli.NewApp()
	app.Name = "hyph"
	app.Usage = "Liang's pattern hyphenation"
	app.Version = misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash()
	app.HideVersion = true

	app.Flags = []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (TOML)"},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting"},
		&cli.StringFlag{Name: "cpuprofile", Usage: "write CPU profile to `DIR`", Hidden: true},
		&cli.GenericFlag{Name: state.FlagName, Value: env, Hidden: true},
	}

	app.Before = func(ctx *cli.Context) error {

		const (
			errPrefix = "initialization: "
			errCode   = 1
		)

		cfg, err := config.LoadConfiguration(ctx.String("config"))
		if err != nil {
			return cli.Exit(errPrefix+err.Error(), errCode)
		}
		env.Cfg = cfg
		env.Debug = ctx.Bool("debug")

		log, closeLog, err := cfg.PrepareLog(env.Debug)
		if err != nil {
			return cli.Exit(errPrefix+err.Error(), errCode)
		}
		env.SetLog(log, closeLog)
		if dir := ctx.String("cpuprofile"); len(dir) > 0 {
			env.StartProfiling(dir)
		}
		env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", app.Version))
		return nil
	}

	app.After = func(ctx *cli.Context) error {
		if err := env.Close(); err != nil {
			return cli.Exit("finalization: unable to close log: "+err.Error(), 1)
		}
		return nil
	}

	app.Commands = []*cli.Command{
		{
			Name:      "hyphenate",
			Usage:     "Hyphenates words from command line or text from standard input",
			ArgsUsage: "[WORD...]",
			Action:    commands.Hyphenate,
			Flags: []cli.Flag{
				dictFlag(),
				dbFlag(),
				langFlag(),
				&cli.StringFlag{Name: "hyphen", Usage: "insert `STRING` at every break"},
				&cli.BoolFlag{Name: "trace", Aliases: []string{"t"}, Usage: "show every pattern match, standard input is traced to debug log"},
			},
		},
		{
			Name:      "dump",
			Usage:     "Writes patterns trie as JSON",
			ArgsUsage: "[OUTPUT]",
			Action:    commands.Dump,
			Flags: []cli.Flag{
				dictFlag(),
				&cli.BoolFlag{Name: "pretty", Usage: "indent JSON"},
			},
		},
		{
			Name:      "import",
			Usage:     "Compiles patterns file into dictionaries store",
			ArgsUsage: "FILE",
			Action:    commands.Import,
			Flags:     []cli.Flag{dbFlag(), langFlag()},
		},
		{
			Name:   "list",
			Usage:  "Lists dictionaries in store",
			Action: commands.List,
			Flags:  []cli.Flag{dbFlag()},
		},
		{
			Name:   "remove",
			Usage:  "Removes dictionary from store",
			Action: commands.Remove,
			Flags:  []cli.Flag{dbFlag(), langFlag()},
		},
		{
			Name:  "version",
			Usage: "Prints program version",
			Action: func(ctx *cli.Context) error {
				fmt.Fprintf(ctx.App.Writer, "%s\nVersion %s\n", app.Usage, app.Version)
				return nil
			},
		},
	}
	return app
}

func main() {

	env := state.NewLocalEnv()
	app := newApp(env)

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.Name, err)
		os.Exit(1)
	}
}
