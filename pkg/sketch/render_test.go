package sketch

import (
	"fmt"
	"math"
	"testing"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.CanvasWidth = 100
	cfg.CanvasHeight = 50
	cfg.CellSize = 10
	cfg.Step = 0.1
	return cfg
}

func TestRenderFrameEmpty(t *testing.T) {
	cfg := smallConfig()
	r := &renderRecorder{}
	RenderFrame(r, NewState(nil), cfg)

	if r.lines != 10+5 {
		t.Errorf("grid drew %d lines, want 15", r.lines)
	}
	if len(r.markers) != 0 {
		t.Errorf("drew %d markers on an empty canvas", len(r.markers))
	}
	diff(t, []string{
		fmt.Sprintf("background %v", cfg.Background),
		fmt.Sprintf("stroke %v 1", cfg.GridColor),
		fmt.Sprintf("stroke %v 12", cfg.PointColor),
		fmt.Sprintf("stroke %v 3", cfg.CurveColor),
	}, r.calls)
}

func TestRenderFrameCurve(t *testing.T) {
	cfg := smallConfig()
	st := NewState(nil)
	st.Store.Add(Pt(0, 0))
	st.Store.Add(Pt(50, 0))
	st.Store.Add(Pt(90, 40))

	r := &renderRecorder{}
	RenderFrame(r, st, cfg)

	// 3 point markers followed by 10 curve samples.
	if len(r.markers) != 3+10 {
		t.Fatalf("got %d markers, want 13", len(r.markers))
	}
	diff(t, st.Store.Positions(), r.markers[:3])
	diff(t, Samples(st.Store.Positions(), cfg.Step), r.markers[3:], approx)
	if len(r.smooth) != 0 {
		t.Error("overlay drawn while disabled")
	}
}

func TestRenderFrameHiddenMarkers(t *testing.T) {
	cfg := smallConfig()
	st := NewState(nil)
	st.Store.Add(Pt(0, 0))
	st.Store.Add(Pt(50, 0))
	st.ToggleLabels()

	r := &renderRecorder{}
	RenderFrame(r, st, cfg)
	if len(r.markers) != 10 {
		t.Errorf("got %d markers, want only the 10 curve samples", len(r.markers))
	}
}

func TestRenderFrameOverlaySmooth(t *testing.T) {
	cfg := smallConfig()
	st := NewState(nil)
	st.Store.Add(Pt(0, 0))
	st.Store.Add(Pt(50, 20))
	st.Store.Add(Pt(90, 40))
	st.ToggleOverlay()

	r := &renderRecorder{}
	RenderFrame(r, st, cfg)

	if len(r.smooth) != 1 {
		t.Fatalf("got %d smooth curves, want 1", len(r.smooth))
	}
	diff(t, st.Store.Positions(), r.smooth[0])
	diff(t, cfg.OverlayColor, r.stroke)
	if r.width != cfg.StrokeWidth*3 {
		t.Errorf("overlay width = %g, want %g", r.width, cfg.StrokeWidth*3)
	}
}

func TestRenderFrameOverlayResampled(t *testing.T) {
	cfg := smallConfig()
	cfg.Overlay = OverlayResampled
	st := NewState(nil)
	st.Store.Add(Pt(0, 0))
	st.Store.Add(Pt(90, 40))
	st.ToggleOverlay()

	r := &renderRecorder{}
	RenderFrame(r, st, cfg)

	// 15 grid lines, 9 between the 10 samples, 1 closing to the last point.
	if r.lines != 15+10 {
		t.Errorf("got %d lines, want 25", r.lines)
	}
	if len(r.smooth) != 0 {
		t.Error("smooth curve drawn in resampled mode")
	}
}

func TestRenderFrameOverlayNeedsTwoPoints(t *testing.T) {
	cfg := smallConfig()
	st := NewState(nil)
	st.Store.Add(Pt(0, 0))
	st.ToggleOverlay()

	r := &renderRecorder{}
	RenderFrame(r, st, cfg)
	if len(r.smooth) != 0 {
		t.Error("overlay drawn for a single point")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"stroke", func(c *Config) { c.StrokeWidth = 0 }},
		{"canvas", func(c *Config) { c.CanvasHeight = -1 }},
		{"cell", func(c *Config) { c.CellSize = 0 }},
		{"step zero", func(c *Config) { c.Step = 0 }},
		{"step one", func(c *Config) { c.Step = 1 }},
		{"step nan", func(c *Config) { c.Step = math.NaN() }},
		{"step tiny", func(c *Config) { c.Step = MinStep / 2 }},
		{"stroke nan", func(c *Config) { c.StrokeWidth = math.NaN() }},
		{"stroke inf", func(c *Config) { c.StrokeWidth = math.Inf(1) }},
		{"hit radius nan", func(c *Config) { c.HitRadius = math.NaN() }},
		{"hit radius negative", func(c *Config) { c.HitRadius = -1 }},
		{"frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"frame rate high", func(c *Config) { c.FrameRate = MaxFrameRate + 1 }},
		{"overlay", func(c *Config) { c.Overlay = "wavy" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
