// Package config loads demo-app settings.
//
// Three layers, highest precedence last: built-in defaults, an optional YAML
// file, then environment variables prefixed SMARTSTATUS_ (double underscore
// maps to "." for nesting). An optional .env file next to the YAML file is
// loaded first so local development can keep overrides out of the shell.
package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
)

// Config is the demo application's settings tree.
type Config struct {
	LogDir   string `koanf:"log_dir"`
	LogLevel string `koanf:"log_level"`

	FadeShowMs int `koanf:"fade_show_ms"`
	FadeHideMs int `koanf:"fade_hide_ms"`

	DismissKey      string `koanf:"dismiss_key"`
	DismissDestroys bool   `koanf:"dismiss_destroys"`

	MaxMessageWidth int `koanf:"max_message_width"`

	// OTLPEndpoint enables span export for simulated operations when set.
	OTLPEndpoint string `koanf:"otlp_endpoint"`
}

func defaults() Config {
	return Config{
		LogDir:          "logs",
		LogLevel:        "info",
		FadeShowMs:      400,
		FadeHideMs:      1500,
		DismissKey:      "x",
		MaxMessageWidth: 48,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// empty or missing), and SMARTSTATUS_ env overrides.
func Load(path string) (Config, error) {
	cfg := defaults()
	k := koanf.New(".")

	if path != "" {
		_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, err
		}
	}

	// SMARTSTATUS_FADE__HIDE_MS -> fade.hide_ms style mapping; flat keys like
	// SMARTSTATUS_LOG_DIR map directly.
	if err := k.Load(env.Provider("SMARTSTATUS_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "SMARTSTATUS_")
		return strings.ToLower(strings.ReplaceAll(s, "__", "."))
	}), nil); err != nil {
		return cfg, err
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ShowDuration returns the fade-in length.
func (c Config) ShowDuration() time.Duration {
	return time.Duration(c.FadeShowMs) * time.Millisecond
}

// HideDuration returns the fade-out length.
func (c Config) HideDuration() time.Duration {
	return time.Duration(c.FadeHideMs) * time.Millisecond
}
