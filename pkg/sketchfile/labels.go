// Package sketchfile renders sketchpad frames to image files.
//
// Raster produces PNG through a software 2D context and SVG produces
// vector text. Both implement sketch.Renderer and sketch.LabelBackend, so a
// sketch.State can drive them directly.
package sketchfile

import "github.com/ha1tch/sketchpad/pkg/sketch"

// Label is one point label as last reported by the store.
type Label struct {
	ID      sketch.PointID
	Text    string
	At      sketch.Point
	Visible bool
}

// Labels is a sketch.LabelBackend that keeps label handles in a table.
// Backends draw the table after the frame's primitives.
type Labels struct {
	order []sketch.PointID
	byID  map[sketch.PointID]*Label
}

// NewLabels returns an empty label table.
func NewLabels() *Labels {
	return &Labels{byID: make(map[sketch.PointID]*Label)}
}

func (l *Labels) CreateLabel(id sketch.PointID, text string, at sketch.Point, visible bool) {
	if lb, ok := l.byID[id]; ok {
		lb.Text, lb.At, lb.Visible = text, at, visible
		return
	}
	l.byID[id] = &Label{ID: id, Text: text, At: at, Visible: visible}
	l.order = append(l.order, id)
}

func (l *Labels) SetLabelText(id sketch.PointID, text string) {
	if lb, ok := l.byID[id]; ok {
		lb.Text = text
	}
}

func (l *Labels) SetLabelVisible(id sketch.PointID, visible bool) {
	if lb, ok := l.byID[id]; ok {
		lb.Visible = visible
	}
}

func (l *Labels) RemoveLabel(id sketch.PointID) {
	if _, ok := l.byID[id]; !ok {
		return
	}
	delete(l.byID, id)
	for i, o := range l.order {
		if o == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Visible returns the visible labels in creation order.
func (l *Labels) Visible() []Label {
	var out []Label
	for _, id := range l.order {
		if lb := l.byID[id]; lb.Visible {
			out = append(out, *lb)
		}
	}
	return out
}
