package magick

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	pserrors "github.com/postersmith/postersmith/pkg/errors"
)

// Measure asks the tool for the largest point size at which text, laid out
// as a caption in the given font, fits a boxWidth x boxHeight pixel box.
// The dry run emits a single integer and produces no image file.
//
// A non-zero exit (unknown font, unusable input) or unparsable output is an
// error; callers must not substitute a guessed size.
func (t *Tool) Measure(ctx context.Context, text, font string, boxWidth, boxHeight int) (int, error) {
	args := []string{
		"-size", fmt.Sprintf("%dx%d", boxWidth, boxHeight),
		"-font", font,
		"caption:" + text,
		"-format", "%[caption:pointsize]",
		"info:",
	}

	stdout, stderr, err := t.exec(ctx, args)
	if err != nil {
		if pserrors.Is(err, pserrors.ErrCodeToolTimeout) {
			return 0, err
		}
		return 0, fmt.Errorf("measure caption: %w (stderr: %s)", err, firstLine(stderr))
	}

	raw := strings.TrimSpace(string(stdout))
	size, perr := strconv.Atoi(raw)
	if perr != nil || size <= 0 {
		return 0, fmt.Errorf("measure caption: unexpected tool output %q", raw)
	}
	return size, nil
}

// firstLine trims tool stderr down to its leading line for error messages.
func firstLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
