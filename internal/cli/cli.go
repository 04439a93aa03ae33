// Package cli implements the postersmith command-line interface.
//
// This package provides commands for generating poster batches, managing
// the point-size cache, verifying bundled assets, and checking installed
// fonts. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Produce labeled posters for one or more categories
//   - cache: Manage the point-size store (path, stats, clear)
//   - verify: Check bundled assets against the checksum manifest
//   - fonts: Check that the catalog's fonts are installed
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and
// --log-file for a rotating log file. Loggers are passed through
// context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/postersmith/postersmith/internal/config"
	"github.com/postersmith/postersmith/pkg/buildinfo"
	"github.com/postersmith/postersmith/pkg/generator"
	"github.com/postersmith/postersmith/pkg/magick"
	"github.com/postersmith/postersmith/pkg/pointsize"
	"github.com/postersmith/postersmith/pkg/store"
	"github.com/postersmith/postersmith/pkg/translations"
)

// appName is the application name used for directories and display.
const appName = "postersmith"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	configPath string
	logFile    string
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Postersmith generates labeled posters for media-server libraries",
		Long:         `Postersmith is a batch CLI that produces labeled poster graphics (by language, genre, decade, network, award) by driving an external image tool, with a persistent cache for the expensive caption point-size measurements.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to TOML config file")
	root.PersistentFlags().StringVar(&c.logFile, "log-file", "", "also log to this rotating file")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.fontsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig loads the TOML config named by --config (or defaults) and
// wires up file logging if requested.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if c.logFile != "" {
		cfg.Logging.File = c.logFile
	}
	if cfg.Logging.File != "" {
		c.attachFileLogging(cfg.Logging)
	}
	return cfg, nil
}

// newTool builds the external image tool wrapper from config.
func newTool(cfg config.Config) *magick.Tool {
	return magick.New(
		magick.WithBinary(cfg.Tool.Binary),
		magick.WithTimeout(cfg.ToolTimeout()),
	)
}

// newStore opens the point-size store selected by config: Redis when an
// address is configured, the local database file otherwise. A store that
// cannot be opened is an error; the batch must not run uncached by accident.
func newStore(cmd *cobra.Command, cfg config.Config, noCache bool) (store.Store, error) {
	if noCache {
		return store.NewMemory(), nil
	}
	if cfg.Redis.Addr != "" {
		return store.NewRedis(cmd.Context(), store.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	path, err := cfg.StorePath()
	if err != nil {
		return nil, err
	}
	return store.NewSQLite(path)
}

// newRunner assembles the batch runner from config.
func (c *CLI) newRunner(cmd *cobra.Command, cfg config.Config, noCache bool) (*generator.Runner, func(), error) {
	s, err := newStore(cmd, cfg, noCache)
	if err != nil {
		return nil, nil, err
	}

	tool := newTool(cfg)
	sizes, err := pointsize.New(cmd.Context(), s, tool, c.Logger)
	if err != nil {
		_ = s.Close()
		return nil, nil, err
	}

	labels, err := loadLabels(cfg)
	if err != nil {
		_ = s.Close()
		return nil, nil, err
	}

	cleanup := func() { _ = s.Close() }
	return generator.NewRunner(sizes, tool, labels, c.Logger), cleanup, nil
}

// loadLabels loads the translation table, embedded defaults only when no
// file is configured.
func loadLabels(cfg config.Config) (*translations.Table, error) {
	if cfg.Paths.Translations != "" {
		return translations.Load(cfg.Paths.Translations)
	}
	return translations.Default()
}

// storeDir returns the default store directory using the XDG convention
// (~/.cache/postersmith/).
func storeDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseCategories parses a comma-separated category string into a slice.
// Empty input means all categories.
func parseCategories(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
