package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// levels understood in configuration, besides zap's own names
var levels = map[string]zapcore.Level{
	"normal":  zapcore.InfoLevel,
	"debug":   zapcore.DebugLevel,
	"verbose": zapcore.DebugLevel,
}

func parseLevel(name string) (zapcore.Level, bool, error) {
	if name == "none" || len(name) == 0 {
		return zapcore.InfoLevel, false, nil
	}
	if l, ok := levels[name]; ok {
		return l, true, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return l, false, fmt.Errorf("unknown logging level %q: %w", name, err)
	}
	return l, true, nil
}

// PrepareLog creates logger according to configuration. When debug is requested console always gets everything.
// Returned function closes log file, if any, and must be called after logger is no longer in use.
func (conf *Config) PrepareLog(debug bool) (*zap.Logger, func() error, error) {

	closer := func() error { return nil }

	cores := make([]zapcore.Core, 0, 2)

	level, enabled, err := parseLevel(conf.Logging.Console.Level)
	if err != nil {
		return nil, nil, err
	}
	if debug {
		level, enabled = zapcore.DebugLevel, true
	}
	if enabled {
		var enc zapcore.Encoder
		if term.IsTerminal(int(os.Stderr.Fd())) {
			ec := zap.NewDevelopmentEncoderConfig()
			ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
			enc = zapcore.NewConsoleEncoder(ec)
		} else {
			enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level))
	}

	level, enabled, err = parseLevel(conf.Logging.File.Level)
	if err != nil {
		return nil, nil, err
	}
	if enabled && len(conf.Logging.File.Destination) > 0 {
		f, err := openLogFile(conf.Logging.File.Destination, conf.Logging.File.Mode)
		if err != nil {
			return nil, nil, err
		}
		closer = f.Close
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(ec), zapcore.AddSync(f), level))
	}

	if len(cores) == 0 {
		return zap.NewNop(), closer, nil
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), closer, nil
}

func openLogFile(fname, mode string) (*os.File, error) {

	if err := os.MkdirAll(filepath.Dir(fname), 0700); err != nil {
		return nil, fmt.Errorf("unable to create log directory: %w", err)
	}
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if mode == ModeOverwrite {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	f, err := os.OpenFile(fname, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to open log file [%s]: %w", fname, err)
	}
	return f, nil
}
