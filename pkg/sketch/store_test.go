package sketch

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

const testThreshold = 15 * 15

// checkLabels verifies that every live label shows its point's index.
func checkLabels(t *testing.T, s *Store, l *labelRecorder) {
	t.Helper()
	if len(l.text) != s.Len() {
		t.Fatalf("%d labels for %d points", len(l.text), s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		p := s.At(i)
		if s.Label(i) != i {
			t.Errorf("Label(%d) = %d", i, s.Label(i))
		}
		if got := l.text[p.ID]; got != strconv.Itoa(i) {
			t.Errorf("point %d (id %d) shows label %q", i, p.ID, got)
		}
	}
}

func TestStoreAppend(t *testing.T) {
	l := newLabelRecorder()
	s := NewStore(l)

	for i, p := range []Point{Pt(10, 10), Pt(100, 10), Pt(200, 10)} {
		e := s.AddOrRemove(p, testThreshold)
		if !e.Added || e.Index != i {
			t.Fatalf("click %d: got %+v, want added at %d", i, e, i)
		}
		if s.Len() != i+1 {
			t.Fatalf("click %d: Len = %d", i, s.Len())
		}
		diff(t, p, s.At(i).Pos)
	}
	checkLabels(t, s, l)
	diff(t, []string{"create 1 0", "create 2 1", "create 3 2"}, l.calls)
}

func TestStoreRemoveRelabels(t *testing.T) {
	l := newLabelRecorder()
	s := NewStore(l)
	for _, p := range []Point{Pt(0, 0), Pt(100, 0), Pt(200, 0), Pt(300, 0)} {
		s.AddOrRemove(p, testThreshold)
	}
	l.calls = nil

	e := s.AddOrRemove(Pt(103, 4), testThreshold)
	if e.Added || e.Index != 1 || e.ID != 2 {
		t.Fatalf("got %+v, want removal of index 1 id 2", e)
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	diff(t, []Point{Pt(0, 0), Pt(200, 0), Pt(300, 0)}, s.Positions())
	diff(t, []string{"remove 2", "text 3 1", "text 4 2"}, l.calls)
	checkLabels(t, s, l)
}

func TestStoreFirstMatchWins(t *testing.T) {
	s := NewStore(nil)
	s.Add(Pt(0, 0))
	s.Add(Pt(4, 0))

	// Closer to the second point, but the first is also in range.
	e := s.AddOrRemove(Pt(3, 0), testThreshold)
	if e.Added || e.Index != 0 {
		t.Fatalf("got %+v, want removal of index 0", e)
	}
	diff(t, []Point{Pt(4, 0)}, s.Positions())
}

func TestStoreReset(t *testing.T) {
	l := newLabelRecorder()
	s := NewStore(l)
	s.Add(Pt(1, 1))
	s.Add(Pt(50, 50))
	s.Reset()

	if s.Len() != 0 {
		t.Fatalf("Len = %d after reset", s.Len())
	}
	if len(l.text) != 0 {
		t.Errorf("%d labels left after reset", len(l.text))
	}

	// IDs keep counting after a reset.
	s.Add(Pt(1, 1))
	if id := s.At(0).ID; id != 3 {
		t.Errorf("first ID after reset = %d, want 3", id)
	}
	checkLabels(t, s, l)
}

func TestStoreLabelsVisible(t *testing.T) {
	l := newLabelRecorder()
	s := NewStore(l)
	s.Add(Pt(1, 1))
	s.Add(Pt(50, 50))

	s.SetLabelsVisible(false)
	for id, v := range l.visible {
		if v {
			t.Errorf("label %d still visible", id)
		}
	}

	// Labels created while hidden start hidden.
	s.Add(Pt(90, 90))
	if l.visible[s.At(2).ID] {
		t.Error("new label visible while labels are hidden")
	}

	s.SetLabelsVisible(true)
	for id, v := range l.visible {
		if !v {
			t.Errorf("label %d still hidden", id)
		}
	}
}

func TestStorePointsIsCopy(t *testing.T) {
	s := NewStore(nil)
	s.Add(Pt(1, 1))
	pts := s.Points()
	pts[0].Pos = Pt(9, 9)
	diff(t, Pt(1, 1), s.At(0).Pos)
}

// TestStoreRandomClicks checks label and length invariants over random
// click sequences.
func TestStoreRandomClicks(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	l := newLabelRecorder()
	s := NewStore(l)

	for step := 0; step < 2000; step++ {
		before := s.Len()
		var p Point
		if before > 0 && rng.Intn(3) == 0 {
			// Click right next to an existing point.
			q := s.At(rng.Intn(before)).Pos
			p = Pt(q.X+1, q.Y-1)
		} else {
			p = Pt(float64(rng.Intn(700)), float64(rng.Intn(700)))
		}

		e := s.AddOrRemove(p, testThreshold)
		switch {
		case e.Added && s.Len() != before+1:
			t.Fatalf("step %d: add changed Len %d -> %d", step, before, s.Len())
		case e.Added && e.Index != before:
			t.Fatalf("step %d: appended at %d, want %d", step, e.Index, before)
		case !e.Added && s.Len() != before-1:
			t.Fatalf("step %d: remove changed Len %d -> %d", step, before, s.Len())
		}
		checkLabels(t, s, l)
		if t.Failed() {
			t.Fatalf("step %d: label invariant broken", step)
		}
	}
	for _, c := range l.calls {
		if strings.HasPrefix(c, "duplicate") {
			t.Fatalf("label created twice: %s", c)
		}
	}
}
