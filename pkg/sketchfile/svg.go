// SVG rendering of sketch frames.

package sketchfile

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"strings"

	"github.com/ha1tch/sketchpad/pkg/sketch"
)

// SVGOptions configures SVG rendering.
type SVGOptions struct {
	Width    int
	Height   int
	FontSize int
}

// DefaultSVGOptions returns options sized for cfg's canvas.
func DefaultSVGOptions(cfg sketch.Config) SVGOptions {
	return SVGOptions{
		Width:    cfg.CanvasWidth,
		Height:   cfg.CanvasHeight,
		FontSize: 14,
	}
}

// SVG accumulates one frame as SVG elements.
type SVG struct {
	*Labels

	opts   SVGOptions
	body   strings.Builder
	stroke string
	width  float64
}

// NewSVG creates an SVG backend.
func NewSVG(opts SVGOptions) *SVG {
	if opts.FontSize <= 0 {
		opts.FontSize = 14
	}
	return &SVG{Labels: NewLabels(), opts: opts, stroke: "#000", width: 1}
}

// Background discards everything drawn so far, like clearing a canvas.
func (s *SVG) Background(c color.RGBA) {
	s.body.Reset()
	fmt.Fprintf(&s.body, `<rect width="%d" height="%d" fill="%s"/>
`, s.opts.Width, s.opts.Height, hexColor(c))
}

func (s *SVG) SetStroke(c color.RGBA, width float64) {
	s.stroke = hexColor(c)
	s.width = width
}

func (s *SVG) Line(a, b sketch.Point) {
	fmt.Fprintf(&s.body, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%g" stroke-linecap="round"/>
`, a.X, a.Y, b.X, b.Y, s.stroke, s.width)
}

func (s *SVG) Marker(p sketch.Point) {
	r := s.width / 2
	if r < 0.5 {
		r = 0.5
	}
	fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%g" fill="%s"/>
`, p.X, p.Y, r, s.stroke)
}

func (s *SVG) SmoothCurve(pts []sketch.Point) {
	path := sketch.SmoothPath(pts)
	if len(path) < 2 {
		return
	}
	var d strings.Builder
	fmt.Fprintf(&d, "M%.1f,%.1f", path[0].X, path[0].Y)
	if len(path) < 4 {
		for _, p := range path[1:] {
			fmt.Fprintf(&d, " L%.1f,%.1f", p.X, p.Y)
		}
	} else {
		for i := 1; i+2 < len(path); i += 3 {
			c1, c2, p := path[i], path[i+1], path[i+2]
			fmt.Fprintf(&d, " C%.1f,%.1f %.1f,%.1f %.1f,%.1f", c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
		}
	}
	fmt.Fprintf(&s.body, `<path d="%s" fill="none" stroke="%s" stroke-width="%g" stroke-linecap="round"/>
`, d.String(), s.stroke, s.width)
}

// String returns the complete SVG document for the current frame.
func (s *SVG) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<style>
  .label { font-family: sans-serif; font-size: %dpx; fill: #333; }
</style>
`, s.opts.Width, s.opts.Height, s.opts.Width, s.opts.Height, s.opts.FontSize)

	sb.WriteString(s.body.String())

	for _, lb := range s.Visible() {
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" class="label">%s</text>
`, lb.At.X+labelGap, lb.At.Y-labelGap, html.EscapeString(lb.Text))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// Encode writes the SVG document to w.
func (s *SVG) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, s.String()); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
