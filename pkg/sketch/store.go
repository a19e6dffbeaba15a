package sketch

import "strconv"

// PointID identifies a control point for its whole lifetime. IDs come from a
// per-store counter and are never reused, not even after Reset.
type PointID uint64

// ControlPoint is a user-placed point. Its display label is its index in the
// store, so it is not stored here.
type ControlPoint struct {
	ID  PointID
	Pos Point
}

// LabelBackend owns the on-canvas label widget shown next to each point.
// The store issues every call; implementations never create or destroy
// widgets on their own.
type LabelBackend interface {
	CreateLabel(id PointID, text string, at Point, visible bool)
	SetLabelText(id PointID, text string)
	SetLabelVisible(id PointID, visible bool)
	RemoveLabel(id PointID)
}

// Edit describes the outcome of Store.AddOrRemove.
type Edit struct {
	Added bool    // true if a point was appended, false if one was removed
	Index int     // index of the appended point, or former index of the removed one
	ID    PointID // ID of the affected point
}

// Store is the ordered sequence of control points. Sequence order is label
// order and Bernstein basis order.
type Store struct {
	points   []ControlPoint
	nextID   PointID
	labels   LabelBackend
	hidden   bool
	hasLabel map[PointID]bool
}

// NewStore returns an empty store. labels may be nil.
func NewStore(labels LabelBackend) *Store {
	return &Store{
		points:   make([]ControlPoint, 0),
		labels:   labels,
		hasLabel: make(map[PointID]bool),
	}
}

// Len returns the number of points.
func (s *Store) Len() int {
	return len(s.points)
}

// At returns the point at index i.
func (s *Store) At(i int) ControlPoint {
	return s.points[i]
}

// Label returns the display label of the point at index i.
func (s *Store) Label(i int) int {
	return i
}

// Points returns a copy of the sequence.
func (s *Store) Points() []ControlPoint {
	out := make([]ControlPoint, len(s.points))
	copy(out, s.points)
	return out
}

// Positions returns the point positions in sequence order.
func (s *Store) Positions() []Point {
	out := make([]Point, len(s.points))
	for i, p := range s.points {
		out[i] = p.Pos
	}
	return out
}

// Add appends a point at p and returns its index.
func (s *Store) Add(p Point) int {
	s.nextID++
	s.points = append(s.points, ControlPoint{ID: s.nextID, Pos: p})
	idx := len(s.points) - 1
	s.ensureLabel(idx)
	return idx
}

// RemoveAt removes the point at index i and renumbers every point after it.
func (s *Store) RemoveAt(i int) ControlPoint {
	removed := s.points[i]
	if s.labels != nil && s.hasLabel[removed.ID] {
		s.labels.RemoveLabel(removed.ID)
	}
	delete(s.hasLabel, removed.ID)

	s.points = append(s.points[:i], s.points[i+1:]...)

	// Points before i keep their label.
	if s.labels != nil {
		for j := i; j < len(s.points); j++ {
			s.labels.SetLabelText(s.points[j].ID, labelText(j))
		}
	}
	return removed
}

// AddOrRemove removes the first point within threshold (squared distance)
// of p, or appends a new point at p when none is.
func (s *Store) AddOrRemove(p Point, threshold float64) Edit {
	if i, ok := Find(p, s.points, threshold); ok {
		removed := s.RemoveAt(i)
		return Edit{Added: false, Index: i, ID: removed.ID}
	}
	i := s.Add(p)
	return Edit{Added: true, Index: i, ID: s.points[i].ID}
}

// Reset removes every point and its label.
func (s *Store) Reset() {
	if s.labels != nil {
		for _, p := range s.points {
			if s.hasLabel[p.ID] {
				s.labels.RemoveLabel(p.ID)
			}
		}
	}
	s.points = s.points[:0]
	s.hasLabel = make(map[PointID]bool)
}

// SetLabelsVisible shows or hides every label.
func (s *Store) SetLabelsVisible(visible bool) {
	s.hidden = !visible
	if s.labels == nil {
		return
	}
	for _, p := range s.points {
		if s.hasLabel[p.ID] {
			s.labels.SetLabelVisible(p.ID, visible)
		}
	}
}

// ensureLabel creates the label for the point at index i unless it has one.
func (s *Store) ensureLabel(i int) {
	if s.labels == nil {
		return
	}
	p := s.points[i]
	if s.hasLabel[p.ID] {
		return
	}
	s.labels.CreateLabel(p.ID, labelText(i), p.Pos, !s.hidden)
	s.hasLabel[p.ID] = true
}

func labelText(i int) string {
	return strconv.Itoa(i)
}
