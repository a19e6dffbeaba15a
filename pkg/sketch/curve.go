package sketch

import (
	"iter"
	"math"
)

// DefaultStep is the reference parameter step, about 1000 samples per curve.
const DefaultStep = 0.001

// Bernstein evaluates the Bernstein blend of pts at t:
//
//	B(t) = Σ pts[i] · C(n,i) · t^i · (1-t)^(n-i),  n = len(pts)-1
//
// The curve passes through the first and last point. Bernstein returns the
// zero point for an empty slice.
func Bernstein(pts []Point, t float64) Point {
	if len(pts) == 0 {
		return Point{}
	}
	return bernstein(pts, coefficients(len(pts)-1), t)
}

func bernstein(pts []Point, coef []float64, t float64) Point {
	n := len(pts) - 1
	var x, y float64
	for i, p := range pts {
		w := coef[i] * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
		x += p.X * w
		y += p.Y * w
	}
	return Point{X: x, Y: y}
}

func coefficients(n int) []float64 {
	coef := make([]float64, n+1)
	for i := range coef {
		coef[i] = Binomial(n, i)
	}
	return coef
}

// Evaluate yields one sample of the Bernstein curve through pts for every
// t = i*step with t < 1. Each iteration is a fresh pass over pts, so the
// sequence must be ranged over again whenever the points change. Fewer than
// two points, or a step that is not in (0, 1), yield nothing.
func Evaluate(pts []Point, step float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if len(pts) < 2 || !(step > 0 && step < 1) {
			return
		}
		coef := coefficients(len(pts) - 1)
		for i := 0; ; i++ {
			t := float64(i) * step
			if t >= 1 {
				return
			}
			if !yield(bernstein(pts, coef, t)) {
				return
			}
		}
	}
}

// Samples collects Evaluate into a slice.
func Samples(pts []Point, step float64) []Point {
	var out []Point
	for p := range Evaluate(pts, step) {
		out = append(out, p)
	}
	return out
}
