package magick

import (
	"context"
	"strings"
)

// ListFonts returns the font names known to the tool, used by the "fonts"
// command to check that the catalog's fonts are installed.
func (t *Tool) ListFonts(ctx context.Context) ([]string, error) {
	stdout, _, err := t.exec(ctx, []string{"-list", "font"})
	if err != nil {
		return nil, err
	}

	var fonts []string
	for _, line := range strings.Split(string(stdout), "\n") {
		line = strings.TrimSpace(line)
		if name, ok := strings.CutPrefix(line, "Font: "); ok {
			fonts = append(fonts, name)
		}
	}
	return fonts, nil
}

// HasFont reports whether the tool knows the given font name.
func (t *Tool) HasFont(ctx context.Context, font string) (bool, error) {
	fonts, err := t.ListFonts(ctx)
	if err != nil {
		return false, err
	}
	for _, f := range fonts {
		if f == font {
			return true, nil
		}
	}
	return false, nil
}
