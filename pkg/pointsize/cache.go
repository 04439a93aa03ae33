// Package pointsize provides the memoized optimal point-size lookup.
//
// Finding the largest font size that fits a caption inside a pixel box
// requires a dry run of the external image tool, which is slow. Poster
// batches repeat the same (text, font, box, range) tuples across runs, so
// the result of each measurement is persisted in a key-value store and
// replayed on subsequent requests.
//
// The cache is the only logic-bearing piece between the batch generator and
// its two collaborators: the persistent store and the measurement
// subprocess. It holds no state of its own between calls.
package pointsize

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/postersmith/postersmith/pkg/errors"
	"github.com/postersmith/postersmith/pkg/store"
)

// Measurer is the text-measurement collaborator: it reports the raw point
// size at which text laid out in the given font fits the box. Implemented
// by pkg/magick against the real tool and by fakes in tests.
type Measurer interface {
	Measure(ctx context.Context, text, font string, boxWidth, boxHeight int) (int, error)
}

// Request identifies one point-size query. Two requests that differ in any
// field are distinct cache entries.
type Request struct {
	Text         string
	Font         string
	BoxWidth     int
	BoxHeight    int
	MinPointSize int
	MaxPointSize int
}

// Cache resolves optimal point sizes, memoizing results in a store.
// It is instantiated once per run and passed by handle into the batch
// generator; it keeps no process-wide globals.
type Cache struct {
	store    store.Store
	measurer Measurer
	logger   *log.Logger
}

// New creates a point-size cache and ensures the backing table exists.
// A store that cannot be prepared is a hard error; the caller must not
// proceed uncached.
func New(ctx context.Context, s store.Store, m Measurer, logger *log.Logger) (*Cache, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := s.EnsureTable(ctx); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "prepare point-size store")
	}
	return &Cache{store: s, measurer: m, logger: logger}, nil
}

// Resolve returns the largest point size in [MinPointSize, MaxPointSize]
// that lets the caption fit the box.
//
// A hit reads the store once and never invokes the measurer. A miss invokes
// the measurer exactly once, clamps the raw result into the range
// (saturating, never interpolating), writes it through, and returns it.
// Measurement failures are returned to the caller and never cached.
func (c *Cache) Resolve(ctx context.Context, r Request) (int, error) {
	size, _, err := c.ResolveWithInfo(ctx, r)
	return size, err
}

// ResolveWithInfo is Resolve plus a flag reporting whether the result came
// from the store. The batch generator uses it for cached/fresh reporting.
func (c *Cache) ResolveWithInfo(ctx context.Context, r Request) (int, bool, error) {
	if r.MinPointSize <= 0 || r.MaxPointSize < r.MinPointSize {
		return 0, false, errors.New(errors.ErrCodeInvalidRange,
			"invalid point-size range [%d, %d]", r.MinPointSize, r.MaxPointSize)
	}

	key := Key(r)

	size, found, err := c.store.Get(ctx, key)
	if err != nil {
		return 0, false, errors.Wrap(errors.ErrCodeStoreUnavailable, err,
			"read point size for %q in %s", r.Text, r.Font)
	}
	if found {
		c.logger.Debug("point size cache hit", "text", r.Text, "font", r.Font, "size", size)
		return size, true, nil
	}

	raw, err := c.measurer.Measure(ctx, r.Text, r.Font, r.BoxWidth, r.BoxHeight)
	if err != nil {
		// Nothing is cached on failure; a stored placeholder would
		// silently mis-size every future identical request.
		return 0, false, errors.Wrap(errors.ErrCodeMeasureFailed, err,
			"measure %q in %s (box %dx%d)", r.Text, r.Font, r.BoxWidth, r.BoxHeight)
	}

	size = clamp(raw, r.MinPointSize, r.MaxPointSize)
	if raw < r.MinPointSize {
		c.logger.Warn("text will be truncated",
			"text", r.Text, "font", r.Font, "measured", raw, "min", r.MinPointSize)
	}

	if err := c.store.Put(ctx, key, size); err != nil {
		return 0, false, errors.Wrap(errors.ErrCodeStoreWrite, err,
			"store point size for %q in %s", r.Text, r.Font)
	}

	c.logger.Debug("point size measured", "text", r.Text, "font", r.Font, "raw", raw, "size", size)
	return size, false, nil
}

// clamp pins v to [min, max].
func clamp(v, min, max int) int {
	if v > max {
		return max
	}
	if v < min {
		return min
	}
	return v
}
