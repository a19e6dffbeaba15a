package sketch

import (
	"fmt"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares float64 fields within 1e-9.
var approx = cmp.Comparer(func(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
})

// labelRecorder is a LabelBackend that keeps the widget state and a call log.
type labelRecorder struct {
	text    map[PointID]string
	visible map[PointID]bool
	calls   []string
}

func newLabelRecorder() *labelRecorder {
	return &labelRecorder{
		text:    make(map[PointID]string),
		visible: make(map[PointID]bool),
	}
}

func (l *labelRecorder) CreateLabel(id PointID, text string, at Point, visible bool) {
	if _, ok := l.text[id]; ok {
		l.calls = append(l.calls, fmt.Sprintf("duplicate create %d", id))
	}
	l.text[id] = text
	l.visible[id] = visible
	l.calls = append(l.calls, fmt.Sprintf("create %d %s", id, text))
}

func (l *labelRecorder) SetLabelText(id PointID, text string) {
	l.text[id] = text
	l.calls = append(l.calls, fmt.Sprintf("text %d %s", id, text))
}

func (l *labelRecorder) SetLabelVisible(id PointID, visible bool) {
	l.visible[id] = visible
	l.calls = append(l.calls, fmt.Sprintf("visible %d %v", id, visible))
}

func (l *labelRecorder) RemoveLabel(id PointID) {
	delete(l.text, id)
	delete(l.visible, id)
	l.calls = append(l.calls, fmt.Sprintf("remove %d", id))
}

// renderRecorder is a Renderer that logs primitive calls.
type renderRecorder struct {
	calls   []string
	markers []Point
	lines   int
	smooth  [][]Point
	stroke  color.RGBA
	width   float64
}

func (r *renderRecorder) Background(c color.RGBA) {
	r.calls = append(r.calls, fmt.Sprintf("background %v", c))
}

func (r *renderRecorder) SetStroke(c color.RGBA, width float64) {
	r.stroke, r.width = c, width
	r.calls = append(r.calls, fmt.Sprintf("stroke %v %g", c, width))
}

func (r *renderRecorder) Line(a, b Point) {
	r.lines++
}

func (r *renderRecorder) Marker(p Point) {
	r.markers = append(r.markers, p)
}

func (r *renderRecorder) SmoothCurve(pts []Point) {
	r.smooth = append(r.smooth, pts)
	r.calls = append(r.calls, fmt.Sprintf("smooth %d", len(pts)))
}
