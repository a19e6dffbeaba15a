package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/sketchpad/pkg/sketch"
)

// Styles
var (
	styleDefault    = tcell.StyleDefault
	styleTitle      = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite)
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleMsgInfo    = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleMsgError   = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorNavy).Bold(true)
	styleMsgSuccess = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleHelp       = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func (app *App) draw() {
	app.screen.Clear()
	w, h := app.screen.Size()

	app.drawTitle(w)
	if app.cfg.CanvasWidth > 0 && app.cfg.CanvasHeight > 0 {
		sketch.RenderFrame(app.canvas, app.state, app.cfg)
		app.canvas.DrawLabels(app.labelStyle())
		app.frames++
	}
	app.drawStatusBar(w, h)
}

func (app *App) labelStyle() tcell.Style {
	return tcell.StyleDefault.
		Background(tcellColor(app.cfg.Background)).
		Foreground(tcell.ColorBlack).
		Bold(true)
}

func (app *App) drawTitle(w int) {
	for x := 0; x < w; x++ {
		app.screen.SetContent(x, 0, ' ', nil, styleDefault)
	}
	app.drawString(1, 0, "Sketchpad", styleTitle)
}

func (app *App) drawStatusBar(w, h int) {
	y := h - 1

	for x := 0; x < w; x++ {
		app.screen.SetContent(x, y, ' ', nil, styleStatus)
	}

	app.drawString(1, y, app.statusString(), styleStatus)

	if app.message != "" {
		style := styleMsgInfo
		switch app.messageType {
		case MsgError:
			style = styleMsgError
		case MsgSuccess:
			style = styleMsgSuccess
		}
		app.drawString(w-len([]rune(app.message))-2, y, app.message, style)
	}

	// Help bar
	y = h - 2
	for x := 0; x < w; x++ {
		app.screen.SetContent(x, y, ' ', nil, styleDefault)
	}
	app.drawString(1, y, app.helpString(), styleHelp)
}

func (app *App) statusString() string {
	s := fmt.Sprintf("%d points", app.state.Store.Len())
	if app.state.Store.Len() == 1 {
		s = "1 point"
	}
	if app.state.TestOverlay {
		s += " | overlay: " + string(app.cfg.Overlay)
	}
	if app.state.LabelsHidden {
		s += " | labels hidden"
	}
	return s
}

func (app *App) helpString() string {
	return fmt.Sprintf("Click: add/remove point  r: reset  t: overlay  h: labels  ^E: export %s  Esc: quit", app.settings.ExportType)
}

func (app *App) drawString(x, y int, s string, style tcell.Style) {
	i := 0
	for _, r := range s {
		app.screen.SetContent(x+i, y, r, nil, style)
		i++
	}
}
