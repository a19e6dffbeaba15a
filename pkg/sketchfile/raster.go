// PNG rendering of sketch frames.
// Primitives are stroked on a supersampled gg context and downscaled.

package sketchfile

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ha1tch/sketchpad/pkg/sketch"
)

// RasterOptions configures PNG rendering.
type RasterOptions struct {
	Width       int
	Height      int
	Supersample int     // render scale before downsampling
	FontSize    float64 // label size in output pixels
	LabelColor  color.RGBA
}

// DefaultRasterOptions returns options sized for cfg's canvas.
func DefaultRasterOptions(cfg sketch.Config) RasterOptions {
	return RasterOptions{
		Width:       cfg.CanvasWidth,
		Height:      cfg.CanvasHeight,
		Supersample: 4,
		FontSize:    14,
		LabelColor:  colorLabel,
	}
}

var colorLabel = color.RGBA{51, 51, 51, 255} // #333

// labelGap is the label's offset from its point, up and to the right.
const labelGap = 8.0

// Raster draws frames into an in-memory image.
type Raster struct {
	*Labels

	dc    *gg.Context
	opts  RasterOptions
	scale float64
	width float64
	err   error
}

// NewRaster creates a raster backend. The label font is Go Regular.
func NewRaster(opts RasterOptions) (*Raster, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("raster size %dx%d", opts.Width, opts.Height)
	}
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 14
	}
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("loading label font: %w", err)
	}
	scale := float64(opts.Supersample)
	dc := gg.NewContext(opts.Width*opts.Supersample, opts.Height*opts.Supersample)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetFont(src.Face(opts.FontSize * scale))

	return &Raster{
		Labels: NewLabels(),
		dc:     dc,
		opts:   opts,
		scale:  scale,
		width:  scale,
	}, nil
}

func (r *Raster) Background(c color.RGBA) {
	r.dc.ClearWithColor(gg.FromColor(c))
}

func (r *Raster) SetStroke(c color.RGBA, width float64) {
	r.dc.SetColor(c)
	r.width = width * r.scale
	r.dc.SetLineWidth(r.width)
}

func (r *Raster) Line(a, b sketch.Point) {
	r.dc.DrawLine(a.X*r.scale, a.Y*r.scale, b.X*r.scale, b.Y*r.scale)
	r.check(r.dc.Stroke())
}

// Marker draws a filled dot whose diameter is the stroke width.
func (r *Raster) Marker(p sketch.Point) {
	rad := math.Max(r.width/2, 0.5)
	r.dc.DrawCircle(p.X*r.scale, p.Y*r.scale, rad)
	r.check(r.dc.Fill())
}

func (r *Raster) SmoothCurve(pts []sketch.Point) {
	path := sketch.SmoothPath(pts)
	if len(path) < 2 {
		return
	}
	s := r.scale
	r.dc.MoveTo(path[0].X*s, path[0].Y*s)
	if len(path) < 4 {
		for _, p := range path[1:] {
			r.dc.LineTo(p.X*s, p.Y*s)
		}
	} else {
		for i := 1; i+2 < len(path); i += 3 {
			c1, c2, p := path[i], path[i+1], path[i+2]
			r.dc.CubicTo(c1.X*s, c1.Y*s, c2.X*s, c2.Y*s, p.X*s, p.Y*s)
		}
	}
	r.check(r.dc.Stroke())
}

func (r *Raster) check(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

// Image draws the visible labels over the frame and returns the
// downsampled result. Call it once, after the last frame.
func (r *Raster) Image() (*image.RGBA, error) {
	r.dc.SetColor(r.opts.LabelColor)
	for _, lb := range r.Visible() {
		x := (lb.At.X + labelGap) * r.scale
		y := (lb.At.Y - labelGap) * r.scale
		r.dc.DrawStringAnchored(lb.Text, x, y, 0, 0)
	}
	if err := r.dc.FlushGPU(); err != nil {
		r.check(err)
	}
	if r.err != nil {
		return nil, fmt.Errorf("rendering frame: %w", r.err)
	}

	large := r.dc.Image()
	out := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))
	draw.CatmullRom.Scale(out, out.Bounds(), large, large.Bounds(), draw.Over, nil)
	return out, nil
}

// EncodePNG writes the current frame as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	img, err := r.Image()
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// Close releases the drawing context.
func (r *Raster) Close() error {
	return r.dc.Close()
}
