package magick

import (
	"context"
	"fmt"
)

// RenderParams holds everything the external tool needs to produce one
// poster. The point size is the cache-resolved value, passed through
// verbatim.
type RenderParams struct {
	Background string // background asset path, or "" to synthesize a solid canvas
	BackColor  string // canvas color when no background asset is used
	Width      int    // canvas width in pixels
	Height     int    // canvas height in pixels

	Text      string // label to draw
	Font      string // font name or font file path
	PointSize int    // resolved point size
	FillColor string // text color
	OffsetX   int    // horizontal annotate offset from center
	OffsetY   int    // vertical annotate offset from center

	Output string // output image path
}

// Render produces one poster image. All layout and color work happens in
// the external tool.
func (t *Tool) Render(ctx context.Context, p RenderParams) error {
	var args []string
	if p.Background != "" {
		args = append(args, p.Background)
	} else {
		args = append(args,
			"-size", fmt.Sprintf("%dx%d", p.Width, p.Height),
			"xc:"+p.BackColor,
		)
	}
	args = append(args,
		"-font", p.Font,
		"-pointsize", fmt.Sprintf("%d", p.PointSize),
		"-fill", p.FillColor,
		"-gravity", "center",
		"-annotate", fmt.Sprintf("%+d%+d", p.OffsetX, p.OffsetY), p.Text,
		p.Output,
	)

	_, stderr, err := t.exec(ctx, args)
	if err != nil {
		return fmt.Errorf("render %s: %w (stderr: %s)", p.Output, err, firstLine(stderr))
	}
	return nil
}
