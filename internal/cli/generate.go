package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/postersmith/postersmith/pkg/errors"
	"github.com/postersmith/postersmith/pkg/generator"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	categories  string // comma-separated category names, empty = all
	output      string // output directory
	assets      string // background asset directory
	language    string // label language
	workers     int    // parallel workers
	noCache     bool   // skip the persistent store for this run
	interactive bool   // pick categories interactively
}

// generateCommand creates the generate command, the main entry point for
// poster batches.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate labeled posters for one or more categories",
		Long: `Generate produces one poster per catalog entry in the selected
categories. Labels come from the translation table, caption point sizes from
the persistent cache (measured on first use), and the images themselves from
the external tool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.categories, "category", "c", "", "category name(s), comma-separated (default: all)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: from config)")
	cmd.Flags().StringVar(&opts.assets, "assets", "", "background asset directory (default: from config)")
	cmd.Flags().StringVarP(&opts.language, "language", "l", "", "label language (default: from config)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "parallel render workers (default: from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "do not persist point sizes for this run")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick categories interactively")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	categories := parseCategories(opts.categories)
	if opts.interactive && len(categories) == 0 {
		categories, err = pickCategories()
		if err != nil {
			return err
		}
		if len(categories) == 0 {
			printInfo("Nothing selected")
			return nil
		}
	}

	runOpts := generator.Options{
		Categories: categories,
		OutputDir:  cfg.Paths.Output,
		AssetsDir:  cfg.Paths.Assets,
		Language:   cfg.Batch.Language,
		Workers:    cfg.Batch.Workers,
	}
	if opts.output != "" {
		runOpts.OutputDir = opts.output
	}
	if opts.assets != "" {
		runOpts.AssetsDir = opts.assets
	}
	if opts.language != "" {
		runOpts.Language = opts.language
	}
	if opts.workers > 0 {
		runOpts.Workers = opts.workers
	}

	runner, cleanup, err := c.newRunner(cmd, cfg, opts.noCache)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "set up batch")
	}
	defer cleanup()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(cmd.Context(), runOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d posters", result.Generated))

	printSuccess("Batch %s complete", result.RunID)
	printBatchStats(result.Generated, len(result.Failures), result.CacheHits)
	printFile(runOpts.OutputDir)

	if len(result.Failures) > 0 {
		printWarning("%d variant(s) failed:", len(result.Failures))
		for _, f := range result.Failures {
			printDetail("%s", f)
		}
		return errors.New(errors.ErrCodeRenderFailed, "%d of %d variants failed",
			len(result.Failures), result.Generated+len(result.Failures))
	}
	return nil
}
