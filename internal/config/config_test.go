package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/teya/internal/syntax"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teya.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	want := Config{
		Log:   LogConfig{Level: "warn", Format: "text"},
		Parse: ParseConfig{Rule: "file", Format: "text", Color: "auto"},
	}
	if *cfg != want {
		t.Errorf("Default() = %+v, want %+v", *cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"
format = "json"

[parse]
rule = "expr"
format = "sexpr"
color = "never"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Config{
		Log:   LogConfig{Level: "debug", Format: "json"},
		Parse: ParseConfig{Rule: "expr", Format: "sexpr", Color: "never"},
	}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
	if cfg.Parse.ParseRule() != syntax.RuleExpr {
		t.Errorf("ParseRule() = %v, want expr", cfg.Parse.ParseRule())
	}
}

func TestLoadPartial(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[parse]\nformat = \"yaml\"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Parse.Format != "yaml" {
		t.Errorf("Parse.Format = %q, want yaml", cfg.Parse.Format)
	}
	if cfg.Log.Level != "warn" || cfg.Parse.Rule != "file" || cfg.Parse.Color != "auto" {
		t.Errorf("defaults not applied: %+v", *cfg)
	}
}

func TestLoadMissing(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.toml")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", path, err)
		}
		if *cfg != *Default() {
			t.Errorf("Load(%q) = %+v, want defaults", path, *cfg)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[log\nlevel = 1", "parsing config"},
		{"wrong type", "[log]\nlevel = 1", "parsing config"},
		{"unknown key", "[parse]\ncolour = \"never\"", "unknown key parse.colour"},
		{"bad level", "[log]\nlevel = \"loud\"", `invalid log.level "loud"`},
		{"bad log format", "[log]\nformat = \"xml\"", `invalid log.format "xml"`},
		{"bad parse format", "[parse]\nformat = \"xml\"", `invalid parse.format "xml"`},
		{"bad color", "[parse]\ncolor = \"yes\"", `invalid parse.color "yes"`},
		{"bad rule", "[parse]\nrule = \"stmt\"", `invalid parse.rule: unknown rule "stmt"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load() succeeded, want error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %q, want it to contain %q", err, tt.want)
			}
			if !strings.Contains(err.Error(), path) {
				t.Errorf("Load() error = %q does not name the file", err)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"error\"\n")
	t.Setenv(EnvVar, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
	}
}

func TestLoadExpandsPath(t *testing.T) {
	path := writeConfig(t, "[parse]\nrule = \"type\"\n")
	t.Setenv("TEYA_TEST_DIR", filepath.Dir(path))

	cfg, err := Load("$TEYA_TEST_DIR/teya.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Parse.Rule != "type" {
		t.Errorf("Parse.Rule = %q, want type", cfg.Parse.Rule)
	}
}

func TestLogConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LogConfig
		level   slog.Level
		logged  bool   // whether an info record is written
		contain string // expected fragment of the output
	}{
		{"debug text", LogConfig{Level: "debug", Format: "text"}, slog.LevelDebug, true, "msg=hello"},
		{"info json", LogConfig{Level: "info", Format: "json"}, slog.LevelInfo, true, `"msg":"hello"`},
		{"warn", LogConfig{Level: "warn", Format: "text"}, slog.LevelWarn, false, ""},
		{"bad level", LogConfig{Level: "loud", Format: "text"}, slog.LevelWarn, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.SlogLevel(); got != tt.level {
				t.Errorf("SlogLevel() = %v, want %v", got, tt.level)
			}
			var buf bytes.Buffer
			tt.cfg.NewLogger(&buf).Info("hello")
			if (buf.Len() > 0) != tt.logged {
				t.Errorf("logged %q, want logged = %v", buf.String(), tt.logged)
			}
			if !strings.Contains(buf.String(), tt.contain) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.contain)
			}
		})
	}
}
