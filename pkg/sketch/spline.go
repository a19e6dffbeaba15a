// Smoothed overlay path through the control points.
// Catmull-Rom segments are converted to cubic Bézier segments.

package sketch

// SmoothPath returns a piecewise cubic Bézier path that passes through every
// waypoint in order. The result is laid out as
// [P0, C1, C2, P1, C3, C4, P2, ...]. Two or fewer waypoints are returned
// unchanged.
func SmoothPath(waypoints []Point) []Point {
	if len(waypoints) <= 2 {
		out := make([]Point, len(waypoints))
		copy(out, waypoints)
		return out
	}

	last := len(waypoints) - 1
	path := make([]Point, 0, 1+3*last)
	path = append(path, waypoints[0])

	for i := 0; i < last; i++ {
		p0 := waypoints[max(0, i-1)]
		p1 := waypoints[i]
		p2 := waypoints[i+1]
		p3 := waypoints[min(last, i+2)]

		// One sixth of the Catmull-Rom tangent on each side.
		c1 := Point{X: p1.X + (p2.X-p0.X)/6, Y: p1.Y + (p2.Y-p0.Y)/6}
		c2 := Point{X: p2.X - (p3.X-p1.X)/6, Y: p2.Y - (p3.Y-p1.Y)/6}

		path = append(path, c1, c2, p2)
	}
	return path
}

// EvaluateSpline returns the point at t ∈ [0,1] on a path produced by
// SmoothPath. Paths shorter than four points are treated as polylines.
func EvaluateSpline(path []Point, t float64) Point {
	switch len(path) {
	case 0:
		return Point{}
	case 1:
		return path[0]
	}
	t = clamp01(t)

	if len(path) < 4 {
		segs := len(path) - 1
		idx := min(int(t*float64(segs)), segs-1)
		u := t*float64(segs) - float64(idx)
		a, b := path[idx], path[idx+1]
		return Point{X: a.X + (b.X-a.X)*u, Y: a.Y + (b.Y-a.Y)*u}
	}

	segs := (len(path) - 1) / 3
	seg := min(int(t*float64(segs)), segs-1)
	u := clamp01(t*float64(segs) - float64(seg))

	i := seg * 3
	p0, p1, p2, p3 := path[i], path[i+1], path[i+2], path[i+3]

	mu := 1 - u
	mu2 := mu * mu
	u2 := u * u
	return Point{
		X: mu2*mu*p0.X + 3*mu2*u*p1.X + 3*mu*u2*p2.X + u2*u*p3.X,
		Y: mu2*mu*p0.Y + 3*mu2*u*p1.Y + 3*mu*u2*p2.Y + u2*u*p3.Y,
	}
}

// FlattenSpline samples a SmoothPath result into a polyline of samples+1
// points, including both ends.
func FlattenSpline(path []Point, samples int) []Point {
	if len(path) == 0 || samples < 1 {
		return nil
	}
	out := make([]Point, 0, samples+1)
	for i := 0; i <= samples; i++ {
		out = append(out, EvaluateSpline(path, float64(i)/float64(samples)))
	}
	return out
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
