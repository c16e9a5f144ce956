// Package config loads grocli configuration from a per-user YAML file with
// environment overrides (GROCLI_STORE_BASE_URL and friends).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete grocli configuration.
type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StoreConfig locates the remote JSON document store.
type StoreConfig struct {
	// BaseURL is the store root, e.g. https://example-default-rtdb.firebasedatabase.app
	BaseURL string `mapstructure:"base_url"`
	// Collection is the path of the keyed collection under the base URL.
	Collection string `mapstructure:"collection"`
	// TimeoutSeconds bounds each round trip. No retries are attempted.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// UIConfig controls terminal rendering.
type UIConfig struct {
	// Theme is "classic" or "mono".
	Theme string `mapstructure:"theme"`
}

// LoggingConfig controls the debug log. The TUI owns the terminal, so logs
// only ever go to a file; an empty File disables logging entirely.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			BaseURL:        "",
			Collection:     "shopping-list",
			TimeoutSeconds: 10,
		},
		UI:      UIConfig{Theme: "classic"},
		Logging: LoggingConfig{Level: "info", File: ""},
	}
}

// Dir returns the grocli config directory (~/.config/grocli).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".config", "grocli"), nil
}

// Path returns the config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file if present and applies GROCLI_* env overrides on
// top of the defaults. A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("store.base_url", def.Store.BaseURL)
	v.SetDefault("store.collection", def.Store.Collection)
	v.SetDefault("store.timeout_seconds", def.Store.TimeoutSeconds)
	v.SetDefault("ui.theme", def.UI.Theme)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.file", def.Logging.File)

	v.SetEnvPrefix("GROCLI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	p, err := Path()
	if err != nil {
		return nil, err
	}
	v.SetConfigFile(p)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Timeout is Store.TimeoutSeconds as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Store.TimeoutSeconds) * time.Second
}

const defaultYAML = `# grocli configuration
store:
  # Root URL of the remote JSON document store.
  base_url: ""
  # Collection path under the base URL.
  collection: "shopping-list"
  # Per-request timeout in seconds.
  timeout_seconds: 10

ui:
  # "classic" or "mono"
  theme: "classic"

logging:
  level: "info"
  # Debug log file. Empty disables logging.
  file: ""
`

// WriteDefault creates the config file with documented defaults. It refuses
// to overwrite an existing file.
func WriteDefault() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	p := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return p, fmt.Errorf("config file already exists: %s", p)
	}
	if err := os.WriteFile(p, []byte(defaultYAML), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return p, nil
}
