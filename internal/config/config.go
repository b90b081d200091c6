// Package config loads the teyac configuration file.
//
// The file is TOML:
//
//	[log]
//	level = "info"    # debug, info, warn or error
//	format = "text"   # text or json
//
//	[parse]
//	rule = "file"     # file, expr, type or block
//	format = "text"   # text, sexpr, json or yaml
//	color = "auto"    # auto, always or never
//
// Missing keys take their default values. A missing file is not an error.
package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/you-not-fish/teya/internal/syntax"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "TEYA_CONFIG"

// Config holds the complete configuration.
type Config struct {
	Log   LogConfig   `toml:"log"`
	Parse ParseConfig `toml:"parse"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// ParseConfig holds defaults for the parse and repl commands.
type ParseConfig struct {
	Rule   string `toml:"rule"`
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

var (
	logLevels    = []string{"debug", "info", "warn", "error"}
	logFormats   = []string{"text", "json"}
	parseFormats = []string{"text", "sexpr", "json", "yaml"}
	colorModes   = []string{"auto", "always", "never"}
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration from path. Environment variables in path
// are expanded. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("%s: unknown key %s", path, undecoded[0])
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by TEYA_CONFIG, falling back to
// teya.toml in the working directory and then in $HOME/.config/teya.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		candidates := []string{
			"teya.toml",
			filepath.Join(os.Getenv("HOME"), ".config", "teya", "teya.toml"),
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Parse.Rule == "" {
		c.Parse.Rule = syntax.RuleSourceFile.String()
	}
	if c.Parse.Format == "" {
		c.Parse.Format = "text"
	}
	if c.Parse.Color == "" {
		c.Parse.Color = "auto"
	}
}

// Validate reports the first setting with an unsupported value.
func (c *Config) Validate() error {
	checks := []struct {
		key     string
		value   string
		allowed []string
	}{
		{"log.level", c.Log.Level, logLevels},
		{"log.format", c.Log.Format, logFormats},
		{"parse.format", c.Parse.Format, parseFormats},
		{"parse.color", c.Parse.Color, colorModes},
	}
	for _, chk := range checks {
		if !slices.Contains(chk.allowed, chk.value) {
			return errors.Errorf("invalid %s %q (want one of %s)", chk.key, chk.value, strings.Join(chk.allowed, ", "))
		}
	}
	if _, err := syntax.ParseRule(c.Parse.Rule); err != nil {
		return errors.Wrap(err, "invalid parse.rule")
	}
	return nil
}

// SlogLevel returns the configured log level.
func (c LogConfig) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelWarn
	}
	return l
}

// NewLogger returns a logger writing to w in the configured format.
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseRule returns the configured default parse rule.
func (c ParseConfig) ParseRule() syntax.Rule {
	r, err := syntax.ParseRule(c.Rule)
	if err != nil {
		return syntax.RuleSourceFile
	}
	return r
}
