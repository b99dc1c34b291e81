// Package config loads quire's configuration from file, environment,
// and built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	Input   InputConfig
	History HistoryConfig
	Log     LogConfig
	Bind    []Bind
}

// UIConfig holds presentation settings.
type UIConfig struct {
	TabWidth int `mapstructure:"tab_width"`
}

// InputConfig holds key handling settings.
type InputConfig struct {
	TimeoutMS int    `mapstructure:"timeout_ms"`
	CancelKey string `mapstructure:"cancel_key"`
}

// HistoryConfig holds invocation history settings.
type HistoryConfig struct {
	Enabled bool
	Limit   int
	Path    string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	File  string
}

// Bind is one user key binding. Bindings are an array of tables, not
// a map, so sequences keep their case: viper lowercases map keys and
// J and j are different keys.
type Bind struct {
	Seq     string
	Command string
}

// Load reads configuration from path, the environment, and defaults.
// Env var overrides use prefix QUIRE_. An empty path means the
// default location, where a commented starter config is written on
// first run.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.tab_width", 8)
	v.SetDefault("input.timeout_ms", 2000)
	v.SetDefault("input.cancel_key", "esc")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.limit", 1000)
	v.SetDefault("history.path", defaultHistoryPath())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	if path == "" {
		path = DefaultPath()
		if err := writeDefaultIfMissing(path); err != nil {
			return Config{}, err
		}
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("QUIRE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// DefaultPath is the config file location used when -config is not
// given.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, "quire", "config.toml")
}

func defaultHistoryPath() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "quire", "history.db")
}

func writeDefaultIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTOML), 0o644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}
