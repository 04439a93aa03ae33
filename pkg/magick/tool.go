// Package magick wraps the external image-processing CLI.
//
// The tool is treated as an opaque collaborator with two narrow surfaces:
// measuring the optimal caption point size for a text/font/box combination
// (a dry run that emits a single integer) and rendering a finished poster
// from computed parameters. Rendering, layout, and color handling all live
// in the external tool; this package only builds argument lists, enforces a
// watchdog timeout, and parses output.
package magick

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	pserrors "github.com/postersmith/postersmith/pkg/errors"
)

// DefaultBinary is the conventional name of the ImageMagick 7 entry point.
const DefaultBinary = "magick"

// DefaultTimeout bounds each subprocess invocation. The surrounding batch
// enforces a multi-minute watchdog on workers; a hung measurement must
// surface as an error rather than stall the run.
const DefaultTimeout = 3 * time.Minute

// runFunc executes the tool and returns stdout, stderr, and the exec error.
// Swapped out by tests.
type runFunc func(ctx context.Context, binary string, args []string) ([]byte, []byte, error)

// Tool invokes the external image CLI.
type Tool struct {
	binary  string
	timeout time.Duration
	run     runFunc
}

// Option customizes a Tool.
type Option func(*Tool)

// WithBinary overrides the tool binary path.
func WithBinary(path string) Option {
	return func(t *Tool) {
		if path != "" {
			t.binary = path
		}
	}
}

// WithTimeout overrides the per-invocation watchdog timeout.
func WithTimeout(d time.Duration) Option {
	return func(t *Tool) {
		if d > 0 {
			t.timeout = d
		}
	}
}

// withRunner injects a fake subprocess runner (tests only).
func withRunner(r runFunc) Option {
	return func(t *Tool) {
		t.run = r
	}
}

// New creates a Tool with the given options.
func New(opts ...Option) *Tool {
	t := &Tool{
		binary:  DefaultBinary,
		timeout: DefaultTimeout,
		run:     runCommand,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Binary returns the configured binary path.
func (t *Tool) Binary() string {
	return t.binary
}

// exec runs the tool with args under the watchdog timeout.
func (t *Tool) exec(ctx context.Context, args []string) ([]byte, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	stdout, stderr, err := t.run(ctx, t.binary, args)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return stdout, stderr, pserrors.Wrap(pserrors.ErrCodeToolTimeout, err,
				"%s did not finish within %s", t.binary, t.timeout)
		}
		return stdout, stderr, err
	}
	return stdout, stderr, nil
}

// runCommand is the real subprocess runner.
func runCommand(ctx context.Context, binary string, args []string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
