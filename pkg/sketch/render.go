package sketch

import "image/color"

// Renderer is the drawing surface of one frame. Stroke settings apply to
// every primitive issued after SetStroke.
type Renderer interface {
	Background(c color.RGBA)
	SetStroke(c color.RGBA, width float64)
	Line(a, b Point)
	Marker(p Point)
	// SmoothCurve draws one smoothed curve through pts in order.
	SmoothCurve(pts []Point)
}

// RenderFrame runs one render pass: background, grid, point markers, the
// Bernstein curve and, when enabled, the test overlay.
func RenderFrame(r Renderer, st *State, cfg Config) {
	r.Background(cfg.Background)
	drawGrid(r, cfg)

	pts := st.Store.Positions()
	if !st.LabelsHidden {
		r.SetStroke(cfg.PointColor, cfg.StrokeWidth*4)
		for _, p := range pts {
			r.Marker(p)
		}
	}

	r.SetStroke(cfg.CurveColor, cfg.StrokeWidth)
	for p := range Evaluate(pts, cfg.Step) {
		r.Marker(p)
	}

	if st.TestOverlay && len(pts) >= 2 {
		drawOverlay(r, pts, cfg)
	}
}

func drawGrid(r Renderer, cfg Config) {
	if cfg.CellSize <= 0 {
		return
	}
	r.SetStroke(cfg.GridColor, 1)

	w := float64(cfg.CanvasWidth)
	h := float64(cfg.CanvasHeight)
	cell := float64(cfg.CellSize)

	for i := 0; i < cfg.CanvasWidth/cfg.CellSize; i++ {
		x := float64(i) * cell
		r.Line(Pt(x, 0), Pt(x, h))
	}
	for i := 0; i < cfg.CanvasHeight/cfg.CellSize; i++ {
		y := float64(i) * cell
		r.Line(Pt(0, y), Pt(w, y))
	}
}

func drawOverlay(r Renderer, pts []Point, cfg Config) {
	r.SetStroke(cfg.OverlayColor, cfg.StrokeWidth*3)
	if cfg.Overlay == OverlayResampled {
		var prev Point
		first := true
		for p := range Evaluate(pts, cfg.Step) {
			if !first {
				r.Line(prev, p)
			}
			prev, first = p, false
		}
		// Close the gap to the last control point, which t < 1 never reaches.
		if !first {
			r.Line(prev, pts[len(pts)-1])
		}
		return
	}
	r.SmoothCurve(pts)
}
