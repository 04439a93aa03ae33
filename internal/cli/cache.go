package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/postersmith/postersmith/pkg/store"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the point-size cache",
	}

	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheStatsCommand())
	cmd.AddCommand(c.cacheClearCommand())

	return cmd
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the point-size database path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			path, err := cfg.StorePath()
			if err != nil {
				return fmt.Errorf("get store path: %w", err)
			}
			fmt.Println(path)
			return nil
		},
	}
}

// cacheStatsCommand creates the "cache stats" subcommand.
func (c *CLI) cacheStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show point-size cache statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			path, err := cfg.StorePath()
			if err != nil {
				return fmt.Errorf("get store path: %w", err)
			}

			if _, err := os.Stat(path); os.IsNotExist(err) {
				printInfo("Cache is empty (no database yet)")
				return nil
			}

			s, err := store.NewSQLite(path)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.EnsureTable(cmd.Context()); err != nil {
				return err
			}

			count, err := s.Count(cmd.Context())
			if err != nil {
				return err
			}
			info, err := os.Stat(path)
			if err != nil {
				return err
			}

			printKeyValue("entries", fmt.Sprintf("%d", count))
			printKeyValue("size", fmt.Sprintf("%d bytes", info.Size()))
			printKeyValue("path", path)
			return nil
		},
	}
}

// cacheClearCommand creates the "cache clear" subcommand.
// Deleting the database file resets all caching with no other side effects.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the point-size database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			path, err := cfg.StorePath()
			if err != nil {
				return fmt.Errorf("get store path: %w", err)
			}

			if _, err := os.Stat(path); os.IsNotExist(err) {
				printInfo("Cache is already empty")
				return nil
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("remove %s: %w", path, err)
			}

			printSuccess("Cleared point-size cache")
			printDetail("Deleted: %s", path)
			return nil
		},
	}
}
