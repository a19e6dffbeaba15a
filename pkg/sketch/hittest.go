package sketch

// Find returns the index of the first point, in sequence order, whose
// squared distance to p is at most threshold. The first match wins even if
// a later point is closer.
func Find(p Point, pts []ControlPoint, threshold float64) (int, bool) {
	for i, cp := range pts {
		if cp.Pos.DistSq(p) <= threshold {
			return i, true
		}
	}
	return -1, false
}
