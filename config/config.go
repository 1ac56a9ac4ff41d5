// Package config holds program configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoggerConfig is configuration for a single log sink.
type LoggerConfig struct {
	Level       string `toml:"level"`
	Destination string `toml:"destination"`
	Mode        string `toml:"mode"`
}

// HyphenatorConfig defines where patterns come from and how words are joined.
type HyphenatorConfig struct {
	Dictionary string `toml:"dictionary"`
	Language   string `toml:"language"`
	Hyphen     string `toml:"hyphen"`
}

// StoreConfig points to compiled dictionaries database.
type StoreConfig struct {
	Path string `toml:"path"`
}

// Config keeps everything configurable.
type Config struct {
	Logging struct {
		Console LoggerConfig `toml:"console"`
		File    LoggerConfig `toml:"file"`
	} `toml:"logger"`
	Hyphenator HyphenatorConfig `toml:"hyphenator"`
	Store      StoreConfig      `toml:"store"`
}

// Logging modes for file destination.
const (
	ModeAppend    = "append"
	ModeOverwrite = "overwrite"
)

// Defaults.
const (
	DefaultLanguage = "en-us"
	DefaultHyphen   = "-"
)

// ErrUnknownKeys is returned when configuration has something we do not understand.
var ErrUnknownKeys = errors.New("unknown configuration keys")

func defaultConfig() *Config {
	conf := &Config{}
	conf.Logging.Console.Level = "normal"
	conf.Logging.File.Level = "none"
	conf.Logging.File.Mode = ModeAppend
	conf.Hyphenator.Language = DefaultLanguage
	conf.Hyphenator.Hyphen = DefaultHyphen
	return conf
}

// LoadConfiguration reads TOML configuration file on top of defaults. Empty name means defaults only.
func LoadConfiguration(fname string) (*Config, error) {

	conf := defaultConfig()
	if len(fname) == 0 {
		return conf, nil
	}

	md, err := toml.DecodeFile(fname, conf)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration [%s]: %w", fname, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w in [%s]: %s", ErrUnknownKeys, fname, strings.Join(keys, ", "))
	}

	switch conf.Logging.File.Mode {
	case ModeAppend, ModeOverwrite:
	default:
		return nil, fmt.Errorf("unknown file logging mode %q", conf.Logging.File.Mode)
	}
	return conf, nil
}
