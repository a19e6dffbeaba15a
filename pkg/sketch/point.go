// Package sketch provides the control-point store, hit testing, Bernstein
// curve evaluation and per-frame render pass of the curve sketchpad.
package sketch

import "fmt"

// Point is a position in canvas-local logical pixels.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// DistSq returns the squared Euclidean distance between p and o.
func (p Point) DistSq(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// Origin is the on-screen position of the canvas's top-left corner in raw
// input-device coordinates.
type Origin struct {
	X float64
	Y float64
}

// Local translates raw device coordinates into canvas-local coordinates.
func (o Origin) Local(raw Point) Point {
	return Point{X: raw.X - o.X, Y: raw.Y - o.Y}
}
