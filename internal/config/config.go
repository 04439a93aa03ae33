// Package config loads the optional TOML configuration file.
//
// Every setting has a usable default, so the tool runs with no config file
// at all; the file exists to pin paths and tool settings for repeated batch
// runs. Flags override file values, file values override defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/postersmith/postersmith/pkg/errors"
)

// Config holds all tool settings.
type Config struct {
	Tool    ToolConfig    `toml:"tool"`
	Paths   PathsConfig   `toml:"paths"`
	Batch   BatchConfig   `toml:"batch"`
	Redis   RedisConfig   `toml:"redis"`
	Logging LoggingConfig `toml:"logging"`
}

// ToolConfig configures the external image CLI.
type ToolConfig struct {
	Binary         string `toml:"binary"`          // image tool binary, default "magick"
	TimeoutSeconds int    `toml:"timeout_seconds"` // watchdog per invocation
}

// PathsConfig configures file locations.
type PathsConfig struct {
	Assets       string `toml:"assets"`       // background asset directory
	Output       string `toml:"output"`       // generated poster directory
	Store        string `toml:"store"`        // point-size database file
	Translations string `toml:"translations"` // optional translation YAML
}

// BatchConfig configures batch execution.
type BatchConfig struct {
	Workers  int    `toml:"workers"`  // parallel render workers
	Language string `toml:"language"` // label language, default "en"
}

// RedisConfig optionally points the point-size store at a shared Redis
// instance instead of the local database file.
type RedisConfig struct {
	Addr     string `toml:"addr"` // empty means use the local SQLite store
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// LoggingConfig configures the rotating log file.
type LoggingConfig struct {
	File       string `toml:"file"`         // empty disables file logging
	MaxSizeMB  int    `toml:"max_size_mb"`  // rotate threshold
	MaxBackups int    `toml:"max_backups"`  // rotated files to keep
	MaxAgeDays int    `toml:"max_age_days"` // prune rotated files older than this
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tool: ToolConfig{
			Binary:         "magick",
			TimeoutSeconds: 180,
		},
		Paths: PathsConfig{
			Assets: "assets",
			Output: "posters",
		},
		Batch: BatchConfig{
			Workers:  4,
			Language: "en",
		},
		Logging: LoggingConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the TOML file at path over the defaults. An empty path returns
// the defaults; a named file that doesn't exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config file %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that would otherwise fail deep inside a batch run.
func (c Config) Validate() error {
	if c.Tool.Binary == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "tool.binary cannot be empty")
	}
	if c.Tool.TimeoutSeconds <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "tool.timeout_seconds must be positive, got %d", c.Tool.TimeoutSeconds)
	}
	if c.Batch.Workers <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "batch.workers must be positive, got %d", c.Batch.Workers)
	}
	return nil
}

// ToolTimeout returns the watchdog timeout as a duration.
func (c Config) ToolTimeout() time.Duration {
	return time.Duration(c.Tool.TimeoutSeconds) * time.Second
}

// StorePath returns the point-size database path, defaulting to
// ~/.cache/postersmith/pointsizes.db via the XDG convention.
func (c Config) StorePath() (string, error) {
	if c.Paths.Store != "" {
		return c.Paths.Store, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, "postersmith", "pointsizes.db"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve store path: %w", err)
	}
	return filepath.Join(home, ".cache", "postersmith", "pointsizes.db"), nil
}
