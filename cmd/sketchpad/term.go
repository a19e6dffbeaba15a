package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/sketchpad/pkg/sketch"
	"github.com/ha1tch/sketchpad/pkg/sketchfile"
)

// Logical pixels per terminal cell. Cells are about twice as tall as wide.
const (
	cellPxW = 5.0
	cellPxH = 10.0
)

// termCanvas draws frames into a rectangle of terminal cells. Logical
// pixels map to cells by integer division. Hairlines (width <= 1) only
// show where a horizontal and a vertical one cross, which turns the grid
// into a dot lattice.
type termCanvas struct {
	*sketchfile.Labels

	screen     tcell.Screen
	x0, y0     int
	cols, rows int

	bg    tcell.Color
	fg    tcell.Color
	width float64

	// per-cell marks for the current frame
	horiz, vert []bool
	weight      []float64 // widest marker drawn in the cell
}

func newTermCanvas(screen tcell.Screen) *termCanvas {
	return &termCanvas{Labels: sketchfile.NewLabels(), screen: screen}
}

// SetArea places the canvas at column x0, row y0.
func (tc *termCanvas) SetArea(x0, y0, cols, rows int) {
	tc.x0, tc.y0 = x0, y0
	tc.cols, tc.rows = max(cols, 0), max(rows, 0)
	tc.horiz = make([]bool, tc.cols*tc.rows)
	tc.vert = make([]bool, tc.cols*tc.rows)
	tc.weight = make([]float64, tc.cols*tc.rows)
}

// Size returns the canvas size in logical pixels.
func (tc *termCanvas) Size() (w, h int) {
	return int(float64(tc.cols) * cellPxW), int(float64(tc.rows) * cellPxH)
}

// Origin is the canvas's top-left corner in device units.
func (tc *termCanvas) Origin() sketch.Origin {
	return sketch.Origin{X: float64(tc.x0) * cellPxW, Y: float64(tc.y0) * cellPxH}
}

// Device converts a screen cell to device units at the cell's centre.
func (tc *termCanvas) Device(x, y int) sketch.Point {
	return sketch.Pt((float64(x)+0.5)*cellPxW, (float64(y)+0.5)*cellPxH)
}

// Contains reports whether the screen cell is on the canvas.
func (tc *termCanvas) Contains(x, y int) bool {
	return x >= tc.x0 && x < tc.x0+tc.cols && y >= tc.y0 && y < tc.y0+tc.rows
}

// cell maps a logical point to canvas-relative cell coordinates.
func (tc *termCanvas) cell(p sketch.Point) (int, int, bool) {
	cx := int(math.Floor(p.X / cellPxW))
	cy := int(math.Floor(p.Y / cellPxH))
	ok := cx >= 0 && cx < tc.cols && cy >= 0 && cy < tc.rows
	return cx, cy, ok
}

func (tc *termCanvas) set(cx, cy int, r rune) {
	style := tcell.StyleDefault.Background(tc.bg).Foreground(tc.fg)
	tc.screen.SetContent(tc.x0+cx, tc.y0+cy, r, nil, style)
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (tc *termCanvas) Background(c color.RGBA) {
	tc.bg = tcellColor(c)
	clear(tc.horiz)
	clear(tc.vert)
	clear(tc.weight)
	style := tcell.StyleDefault.Background(tc.bg)
	for y := 0; y < tc.rows; y++ {
		for x := 0; x < tc.cols; x++ {
			tc.screen.SetContent(tc.x0+x, tc.y0+y, ' ', nil, style)
		}
	}
}

func (tc *termCanvas) SetStroke(c color.RGBA, width float64) {
	tc.fg = tcellColor(c)
	tc.width = width
}

func (tc *termCanvas) Line(a, b sketch.Point) {
	ax, ay, _ := tc.cell(a)
	bx, by, _ := tc.cell(b)
	if tc.width <= 1 {
		tc.hairline(ax, ay, bx, by)
		return
	}
	r := strokeRune(tc.width)
	walk(ax, ay, bx, by, func(x, y int) {
		if x >= 0 && x < tc.cols && y >= 0 && y < tc.rows {
			tc.set(x, y, r)
		}
	})
}

func (tc *termCanvas) hairline(ax, ay, bx, by int) {
	h := ay == by
	v := ax == bx
	walk(ax, ay, bx, by, func(x, y int) {
		if x < 0 || x >= tc.cols || y < 0 || y >= tc.rows {
			return
		}
		i := y*tc.cols + x
		tc.horiz[i] = tc.horiz[i] || !v
		tc.vert[i] = tc.vert[i] || !h
		if tc.horiz[i] && tc.vert[i] {
			tc.set(x, y, '·')
		}
	})
}

func (tc *termCanvas) Marker(p sketch.Point) {
	cx, cy, ok := tc.cell(p)
	if !ok {
		return
	}
	// A smaller marker never hides a larger one in the same cell.
	i := cy*tc.cols + cx
	if tc.width < tc.weight[i] {
		return
	}
	tc.weight[i] = tc.width
	r := '•'
	if tc.width >= 2*cellPxW {
		r = '●'
	}
	tc.set(cx, cy, r)
}

func (tc *termCanvas) SmoothCurve(pts []sketch.Point) {
	path := sketch.SmoothPath(pts)
	steps := 8 * len(pts) * max(tc.cols, tc.rows) / 10
	line := sketch.FlattenSpline(path, max(steps, 16))
	for i := 1; i < len(line); i++ {
		tc.Line(line[i-1], line[i])
	}
}

// DrawLabels writes the visible labels up and to the right of their
// points. It runs after the frame's primitives.
func (tc *termCanvas) DrawLabels(style tcell.Style) {
	for _, lb := range tc.Visible() {
		cx, cy, ok := tc.cell(lb.At)
		if !ok {
			continue
		}
		cx++
		if cy > 0 {
			cy--
		}
		for i, r := range lb.Text {
			if cx+i >= tc.cols {
				break
			}
			tc.screen.SetContent(tc.x0+cx+i, tc.y0+cy, r, nil, style)
		}
	}
}

func strokeRune(width float64) rune {
	if width >= 2*cellPxW {
		return '▒'
	}
	return '•'
}

// walk visits the cells on the segment from (x0,y0) to (x1,y1).
func walk(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
