package sketch

import (
	"fmt"
	"image/color"
	"math"
)

// OverlayMode selects how the test overlay curve is drawn.
type OverlayMode string

const (
	// OverlaySmooth draws one smoothed primitive through the control points.
	OverlaySmooth OverlayMode = "smooth"
	// OverlayResampled draws a second Bernstein pass with the overlay stroke.
	OverlayResampled OverlayMode = "resampled"
)

// Config is the theme and tuning of a sketch session. It is passed to the
// render pass and input handlers explicitly.
type Config struct {
	Background   color.RGBA
	GridColor    color.RGBA
	PointColor   color.RGBA
	CurveColor   color.RGBA
	OverlayColor color.RGBA

	StrokeWidth  float64
	CanvasWidth  int
	CanvasHeight int
	CellSize     int

	Step      float64     // parameter step of the main curve
	HitRadius float64     // proximity radius for removal; 0 means StrokeWidth*5
	FrameRate int         // frames per second of the host driver
	Overlay   OverlayMode // overlay strategy
}

// Reference palette.
var (
	ColorLightGrey = color.RGBA{165, 177, 194, 255}
	ColorDarkGrey  = color.RGBA{75, 101, 132, 255}
	ColorYellow    = color.RGBA{247, 183, 49, 255}
	ColorViolet    = color.RGBA{136, 84, 208, 255}
)

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		Background:   ColorLightGrey,
		GridColor:    ColorDarkGrey,
		PointColor:   ColorViolet,
		CurveColor:   ColorYellow,
		OverlayColor: ColorViolet,
		StrokeWidth:  3,
		CanvasWidth:  700,
		CanvasHeight: 700,
		CellSize:     10,
		Step:         DefaultStep,
		FrameRate:    30,
		Overlay:      OverlaySmooth,
	}
}

// Limits enforced by Validate. MinStep caps a curve at a million samples
// per frame.
const (
	MinStep      = 1e-6
	MaxFrameRate = 1000
)

// HitThreshold returns the squared proximity radius used by Find.
func (c Config) HitThreshold() float64 {
	r := c.HitRadius
	if !(r > 0) {
		r = c.StrokeWidth * 5
	}
	return r * r
}

// Validate reports settings the render pass cannot work with.
func (c Config) Validate() error {
	switch {
	case !(c.StrokeWidth > 0) || math.IsInf(c.StrokeWidth, 0):
		return fmt.Errorf("stroke width must be positive, got %g", c.StrokeWidth)
	case !(c.HitRadius >= 0) || math.IsInf(c.HitRadius, 0):
		return fmt.Errorf("hit radius must be zero or positive, got %g", c.HitRadius)
	case c.CanvasWidth <= 0 || c.CanvasHeight <= 0:
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.CanvasWidth, c.CanvasHeight)
	case c.CellSize <= 0:
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	case !(c.Step >= MinStep && c.Step < 1):
		return fmt.Errorf("step must be in [%g, 1), got %g", MinStep, c.Step)
	case c.FrameRate <= 0 || c.FrameRate > MaxFrameRate:
		return fmt.Errorf("frame rate must be in 1..%d, got %d", MaxFrameRate, c.FrameRate)
	}
	switch c.Overlay {
	case OverlaySmooth, OverlayResampled:
	default:
		return fmt.Errorf("unknown overlay mode %q", c.Overlay)
	}
	return nil
}
