// Package generator drives poster batches.
//
// For every entry of every requested catalog category it resolves the label
// through the translation table, asks the point-size cache for the optimal
// caption size, and hands the assembled parameters to the external render
// tool. Variants fail independently: one bad font or label stops that
// poster with a diagnosable message while the rest of the batch continues.
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/postersmith/postersmith/pkg/catalog"
	"github.com/postersmith/postersmith/pkg/errors"
	"github.com/postersmith/postersmith/pkg/magick"
	"github.com/postersmith/postersmith/pkg/pointsize"
	"github.com/postersmith/postersmith/pkg/translations"
)

// Renderer is the rendering collaborator, implemented by pkg/magick and by
// fakes in tests.
type Renderer interface {
	Render(ctx context.Context, p magick.RenderParams) error
}

// Runner executes poster batches. It is instantiated once per run with its
// collaborators passed in; it keeps no globals and no state between runs.
type Runner struct {
	Sizes  *pointsize.Cache
	Tool   Renderer
	Labels *translations.Table
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(sizes *pointsize.Cache, tool Renderer, labels *translations.Table, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Sizes: sizes, Tool: tool, Labels: labels, Logger: logger}
}

// Options selects what a batch run produces.
type Options struct {
	Categories []string // category names; empty means all
	OutputDir  string   // generated poster directory
	AssetsDir  string   // background asset directory
	Language   string   // label language, default "en"
	Workers    int      // parallel workers, default 1
}

// validateAndSetDefaults normalizes the options in place.
func (o *Options) validateAndSetDefaults() error {
	if o.OutputDir == "" {
		return errors.New(errors.ErrCodeInvalidInput, "output directory is required")
	}
	if o.Language == "" {
		o.Language = translations.DefaultLanguage
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if len(o.Categories) == 0 {
		o.Categories = catalog.Names()
	}
	return nil
}

// Failure records one variant that could not be generated.
type Failure struct {
	Category string
	Slug     string
	Err      error
}

func (f Failure) String() string {
	return fmt.Sprintf("%s/%s: %v", f.Category, f.Slug, f.Err)
}

// Result summarizes a batch run.
type Result struct {
	RunID     string    // unique id carried through logs
	Generated int       // posters written
	CacheHits int       // point sizes served from the store
	Failures  []Failure // variants that did not render
	Elapsed   time.Duration
}

// variant is one unit of work: a catalog entry with its category geometry.
type variant struct {
	category catalog.Category
	entry    catalog.Entry
}

// Execute runs the batch described by opts.
//
// The returned error covers run-level problems (bad options, unwritable
// output directory, cancellation); per-variant failures land in
// Result.Failures and do not abort the run.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.validateAndSetDefaults(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create output directory %s", opts.OutputDir)
	}

	result := &Result{RunID: uuid.NewString()}
	logger := r.Logger.With("run", result.RunID)
	start := time.Now()

	var work []variant
	for _, name := range opts.Categories {
		cat, err := catalog.Get(name)
		if err != nil {
			return nil, err
		}
		for _, entry := range cat.Entries {
			work = append(work, variant{category: cat, entry: entry})
		}
	}

	logger.Info("starting batch",
		"categories", len(opts.Categories),
		"variants", len(work),
		"workers", opts.Workers,
		"language", opts.Language)

	jobs := make(chan variant)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := range jobs {
				hit, err := r.generateOne(ctx, v, opts)
				mu.Lock()
				if err != nil {
					result.Failures = append(result.Failures, Failure{
						Category: v.category.Name, Slug: v.entry.Slug, Err: err,
					})
					logger.Error("variant failed",
						"category", v.category.Name, "slug", v.entry.Slug, "err", err)
				} else {
					result.Generated++
					if hit {
						result.CacheHits++
					}
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, v := range work {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- v:
		}
	}
	close(jobs)
	wg.Wait()

	result.Elapsed = time.Since(start)
	if err := ctx.Err(); err != nil {
		return result, err
	}

	logger.Info("batch finished",
		"generated", result.Generated,
		"failed", len(result.Failures),
		"cache_hits", result.CacheHits,
		"duration", result.Elapsed.Round(time.Millisecond))
	return result, nil
}

// generateOne produces a single poster and reports whether its point size
// was a cache hit.
func (r *Runner) generateOne(ctx context.Context, v variant, opts Options) (bool, error) {
	label, err := r.Labels.Lookup(v.entry.Key, opts.Language)
	if err != nil {
		return false, err
	}
	if err := errors.ValidateLabel(label); err != nil {
		return false, err
	}

	size, hit, err := r.Sizes.ResolveWithInfo(ctx, pointsize.Request{
		Text:         label,
		Font:         v.category.Font,
		BoxWidth:     v.category.BoxWidth,
		BoxHeight:    v.category.BoxHeight,
		MinPointSize: v.category.MinPointSize,
		MaxPointSize: v.category.MaxPointSize,
	})
	if err != nil {
		return false, err
	}

	params := magick.RenderParams{
		BackColor: v.entry.BackColor,
		Width:     catalog.CanvasWidth,
		Height:    catalog.CanvasHeight,
		Text:      label,
		Font:      v.category.Font,
		PointSize: size,
		FillColor: v.entry.FillColor,
		OffsetY:   v.entry.OffsetY,
		Output:    filepath.Join(opts.OutputDir, v.category.Name+"_"+v.entry.Slug+".png"),
	}
	if v.entry.Background != "" {
		params.Background = filepath.Join(opts.AssetsDir, v.entry.Background)
	}

	if err := r.Tool.Render(ctx, params); err != nil {
		return hit, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", params.Output)
	}
	return hit, nil
}
