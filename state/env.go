// Package state keeps program wide environment shared by all commands.
package state

import (
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/rupor-github/hyph/config"
)

// FlagName is name of hidden flag used to pass environment to commands.
const FlagName = "hyph-local-env"

// LocalEnv keeps everything commands need.
type LocalEnv struct {
	Cfg   *config.Config
	Log   *zap.Logger
	Debug bool

	closeLog func() error
	prof     interface{ Stop() }
}

// NewLocalEnv creates environment with default configuration and no logging.
func NewLocalEnv() *LocalEnv {
	cfg, _ := config.LoadConfiguration("")
	return &LocalEnv{Cfg: cfg, Log: zap.NewNop()}
}

// Set is part of cli.Generic interface, environment could not be set from command line.
func (e *LocalEnv) Set(string) error {
	return nil
}

// String is part of cli.Generic interface.
func (e *LocalEnv) String() string {
	return ""
}

// StartProfiling writes CPU profile into directory until Close is called.
func (e *LocalEnv) StartProfiling(dir string) {
	e.prof = profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook)
	e.Log.Debug("CPU profiling started", zap.String("dir", dir))
}

// SetLog replaces logger, closeLog is called on Close to release its resources.
func (e *LocalEnv) SetLog(log *zap.Logger, closeLog func() error) {
	e.Log, e.closeLog = log, closeLog
}

// Close stops profiling, flushes logs and closes log file.
func (e *LocalEnv) Close() error {
	if e.prof != nil {
		e.prof.Stop()
		e.prof = nil
	}
	// syncing console may fail, nothing we could do about it
	_ = e.Log.Sync()
	if e.closeLog == nil {
		return nil
	}
	err := e.closeLog()
	e.closeLog = nil
	return err
}
