// Command sketchpad is an interactive Bézier curve sketchpad for the
// terminal. Click to place or remove control points; the curve through
// them is redrawn every frame.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/ha1tch/sketchpad/pkg/sketch"
	"github.com/ha1tch/sketchpad/pkg/sketchfile"
	"github.com/ha1tch/sketchpad/pkg/xlog"
)

// MessageType for status messages
type MessageType int

const (
	MsgInfo MessageType = iota
	MsgError
	MsgSuccess
)

// App holds the sketchpad session.
type App struct {
	screen   tcell.Screen
	settings Settings
	cfg      sketch.Config // settings.Sketch sized to the terminal
	state    *sketch.State
	canvas   *termCanvas
	log      *zap.Logger

	message     string
	messageType MessageType

	leftDown bool // button 1 held at the last mouse event
	frames   uint64
}

func main() {
	settings, cfgErr := LoadSettings(ConfigPath())
	xlog.Load(settings.Log)
	defer xlog.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.Clear()

	app := newApp(screen, settings)
	if cfgErr != nil {
		app.log.Warn("config ignored", zap.Error(cfgErr))
		app.showMessage(cfgErr.Error(), MsgError)
	}

	app.run()

	screen.Fini()
}

func newApp(screen tcell.Screen, settings Settings) *App {
	app := &App{
		screen:   screen,
		settings: settings,
		cfg:      settings.Sketch,
		canvas:   newTermCanvas(screen),
		log:      xlog.Write().Named("sketchpad"),
	}
	app.state = sketch.NewState(app.canvas)
	app.layout()
	return app
}

// layout fits the canvas between the title row and the two bottom rows.
func (app *App) layout() {
	w, h := app.screen.Size()
	app.canvas.SetArea(0, 1, w, h-3)
	app.cfg.CanvasWidth, app.cfg.CanvasHeight = app.canvas.Size()
}

func (app *App) run() {
	rate := app.cfg.FrameRate
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(frameInterval(rate))
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				app.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	app.log.Info("started", zap.Int("frame_rate", rate), zap.String("overlay", string(app.cfg.Overlay)))
	for {
		app.draw()
		app.screen.Show()

		ev := app.screen.PollEvent()
		if ev == nil {
			return
		}
		if app.handleEvent(ev) {
			app.log.Info("quit", zap.Uint64("frames", app.frames), zap.Int("points", app.state.Store.Len()))
			return
		}
	}
}

// frameInterval returns the tick period for rate frames per second, with
// rate clamped to 1..sketch.MaxFrameRate.
func frameInterval(rate int) time.Duration {
	rate = min(max(rate, 1), sketch.MaxFrameRate)
	return time.Second / time.Duration(rate)
}

// handleEvent applies one event and reports whether the app should quit.
func (app *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		app.layout()
		app.screen.Sync()
	case *tcell.EventKey:
		return app.handleKey(ev)
	case *tcell.EventMouse:
		app.handleMouse(ev)
	case *tcell.EventInterrupt:
		// Frame tick, just redraw
	}
	return false
}

func (app *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyCtrlE:
		app.export()
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch a := app.state.HandleKey(ev.Rune()); a {
	case sketch.ActionReset:
		app.showMessage("Cleared", MsgSuccess)
		app.log.Debug("key", zap.Stringer("action", a))
	case sketch.ActionToggleOverlay:
		app.showMessage(onOff("Test overlay", app.state.TestOverlay), MsgInfo)
		app.log.Debug("key", zap.Stringer("action", a))
	case sketch.ActionToggleLabels:
		app.showMessage(onOff("Labels", !app.state.LabelsHidden), MsgInfo)
		app.log.Debug("key", zap.Stringer("action", a))
	}
	return false
}

func (app *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !app.leftDown
	app.leftDown = down

	if !pressed || !app.canvas.Contains(x, y) {
		return
	}
	e := app.state.Click(app.canvas.Device(x, y), app.canvas.Origin(), app.cfg.HitThreshold())
	if e.Added {
		app.log.Debug("point added", zap.Int("index", e.Index), zap.Uint64("id", uint64(e.ID)))
	} else {
		app.log.Debug("point removed", zap.Int("index", e.Index), zap.Uint64("id", uint64(e.ID)))
	}
}

// export writes the current frame to a timestamped file in the export
// directory.
func (app *App) export() {
	name := fmt.Sprintf("sketch-%s.%s", time.Now().Format("20060102-150405"), app.settings.ExportType)
	path := filepath.Join(app.settings.ExportDir, name)
	if err := app.exportTo(path); err != nil {
		app.log.Error("export failed", zap.String("path", path), zap.Error(err))
		app.showMessage(fmt.Sprintf("Export failed: %v", err), MsgError)
		return
	}
	app.log.Info("exported", zap.String("path", path), zap.Int("points", app.state.Store.Len()))
	app.showMessage("Exported "+name, MsgSuccess)
}

func (app *App) exportTo(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := sketchfile.Render(f, app.state, app.cfg, app.settings.ExportType); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (app *App) showMessage(msg string, msgType MessageType) {
	app.message = msg
	app.messageType = msgType
}

func onOff(what string, on bool) string {
	if on {
		return what + " on"
	}
	return what + " off"
}
