package app

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/dshills/gridsketch/internal/editor"
	"github.com/dshills/gridsketch/internal/input/key"
	"github.com/dshills/gridsketch/internal/input/keymap"
	"github.com/dshills/gridsketch/internal/renderer/backend"
	"github.com/dshills/gridsketch/internal/renderer/core"
	"github.com/dshills/gridsketch/internal/renderer/statusline"
)

// wheelCells is how far one wheel notch pans, in cells. Zooming only
// looks at the direction.
const wheelCells = 4

// mouseState derives press, drag and release from the button masks the
// terminal reports.
type mouseState struct {
	down     bool
	col, row int
}

// eventLoop runs until quit, a signal or Shutdown. Input is read on its
// own goroutine; everything that touches the session happens here.
func (app *Application) eventLoop(b backend.Backend) error {
	events := make(chan backend.Event, 64)
	go app.pollInput(b, events)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	var mouse mouseState
	app.resize(b)
	app.render(b, true)

	for {
		select {
		case <-app.done:
			return nil

		case sig := <-signals:
			app.logger.Info("received %s", sig)
			return nil

		case <-app.reloads:
			if err := app.reloadConfig(); err != nil {
				app.logComponentError("config", err)
				app.status.SetMessage(summary(err), statusline.MessageWarning)
			} else {
				app.status.SetMessage("config reloaded", statusline.MessageInfo)
			}
			app.render(b, false)

		case ev := <-events:
			timer := StartTimer()
			full, err := app.handleEvent(b, ev, &mouse)
			app.metrics.RecordInput(timer.Elapsed())
			if err != nil {
				return err
			}
			app.render(b, full)
		}
	}
}

// pollInput forwards backend events until the backend closes or the
// application is done.
func (app *Application) pollInput(b backend.Backend, events chan<- backend.Event) {
	for {
		ev := b.PollEvent()
		if ev.Type == backend.EventNone {
			select {
			case <-app.done:
				return
			default:
				continue
			}
		}
		select {
		case events <- ev:
		case <-app.done:
			return
		}
		if ev.Type == backend.EventClosed {
			return
		}
	}
}

// handleEvent routes one backend event to the session. It reports whether
// the whole screen needs repainting. Panics from the session are logged
// and shown on the status line so one bad event does not end the program.
func (app *Application) handleEvent(b backend.Backend, ev backend.Event, mouse *mouseState) (full bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			perr := NewRecoveredPanicError(r, string(debug.Stack()))
			app.logComponentError("eventloop", perr)
			app.status.SetMessage(fmt.Sprintf("internal error: %v", r), statusline.MessageError)
			full, err = true, nil
		}
	}()

	switch ev.Type {
	case backend.EventClosed:
		return false, ErrQuit
	case backend.EventResize:
		app.resize(b)
		return true, nil
	case backend.EventKey:
		app.status.ClearMessage()
		return false, app.handleResult(app.session.KeyDown(ev.Key))
	case backend.EventMouse:
		return false, app.handleMouse(ev, mouse)
	case backend.EventPaste:
		return false, app.handleResult(app.session.PasteText(ev.PasteText))
	}
	return false, nil
}

func (app *Application) handleMouse(ev backend.Event, m *mouseState) error {
	sx, sy := app.painter.center(ev.X, ev.Y)
	app.trackPointer(sx, sy)

	if ev.Buttons.IsWheel() {
		cw := app.session.Viewport().Metrics().CellWidth * wheelCells
		switch {
		case ev.Buttons.Has(backend.MouseWheelUp):
			return app.handleResult(app.session.Wheel(-cw, sx, sy, ev.Mods))
		case ev.Buttons.Has(backend.MouseWheelDown):
			return app.handleResult(app.session.Wheel(cw, sx, sy, ev.Mods))
		case ev.Buttons.Has(backend.MouseWheelLeft):
			return app.handleResult(app.session.Wheel(-cw, sx, sy, key.ModShift))
		case ev.Buttons.Has(backend.MouseWheelRight):
			return app.handleResult(app.session.Wheel(cw, sx, sy, key.ModShift))
		}
	}

	pressed := ev.Buttons.Has(backend.MouseLeft)
	switch {
	case pressed && !m.down:
		m.down = true
		m.col, m.row = ev.X, ev.Y
		app.status.ClearMessage()
		return app.handleResult(app.session.PointerDown(sx, sy))
	case pressed:
		if ev.X == m.col && ev.Y == m.row {
			return nil
		}
		m.col, m.row = ev.X, ev.Y
		return app.handleResult(app.session.PointerMove(sx, sy))
	case m.down:
		m.down = false
		return app.handleResult(app.session.PointerUp(sx, sy))
	default:
		return app.handleResult(app.session.PointerMove(sx, sy))
	}
}

// trackPointer shows the grid cell under the pointer on the status line.
func (app *Application) trackPointer(sx, sy float64) {
	p := app.session.Viewport().ScreenToGrid(sx, sy)
	app.status.SetPointer(p.X, p.Y, app.session.Grid().InBounds(p.X, p.Y))
}

// handleResult carries out what the session asked of the host.
func (app *Application) handleResult(r editor.EventResult) error {
	if r.CopyToSystemClipboard {
		if err := app.clipboard.WriteAll(r.ASCIIText); err != nil {
			app.logger.Debug("clipboard write: %v", err)
		}
	}
	if r.WantsSystemPaste {
		text, err := app.clipboard.ReadAll()
		switch {
		case err != nil:
			app.logger.Debug("clipboard read: %v", err)
			app.status.SetMessage("clipboard is empty", statusline.MessageInfo)
		case text == "":
			app.status.SetMessage("clipboard is empty", statusline.MessageInfo)
		default:
			r = app.session.PasteText(text)
		}
	}

	switch r.Action {
	case keymap.ActionQuit:
		return ErrQuit
	case keymap.ActionExport:
		path := app.opts.ExportPath
		if path == "" {
			path = DefaultExportPath
		}
		if err := app.Export(path); err != nil {
			app.logComponentError("export", err)
			app.status.SetMessage(summary(err), statusline.MessageError)
		} else {
			app.status.SetMessage("exported to "+path, statusline.MessageInfo)
		}
	}

	switch {
	case r.Notice != "":
		app.status.SetMessage(r.Notice, statusline.MessageWarning)
	case r.Destructive:
		app.status.SetMessage("canvas cleared; undo history discarded", statusline.MessageInfo)
	}
	return nil
}

// resize fits the canvas and status line to the terminal.
func (app *Application) resize(b backend.Backend) {
	w, _ := b.Size()
	app.status.Resize(w)
}

// render paints what changed since the last frame, or everything when
// full is set, followed by the status line.
func (app *Application) render(b backend.Backend, full bool) {
	timer := StartTimer()

	w, h := b.Size()
	canvas := core.ScreenRect{Left: 0, Top: 0, Right: w, Bottom: max(h-1, 0)}
	s := app.session
	g := s.Grid()
	app.painter.frame(s.Viewport(), g.Width(), g.Height(), s.RenderOptions().Palette, canvas)

	n := 0
	if full {
		b.Clear()
		n += app.painter.paint(s.RenderCommands())
	}
	n += app.painter.paint(s.DirtyRenderCommands())

	app.updateStatus()
	if h > 0 {
		app.status.Render(b, h-1)
	}

	if p, ok := s.Caret(); ok {
		col, row := app.painter.screenCell(s.Viewport(), p.X, p.Y)
		if canvas.Contains(col, row) {
			b.ShowCursor(col, row)
		} else {
			b.HideCursor()
		}
	} else {
		b.HideCursor()
	}

	b.Show()
	app.metrics.RecordFrame(timer.Elapsed(), n)
}

func (app *Application) updateStatus() {
	st := app.session.Status()
	tb := app.session.Toolbox()
	app.status.SetTool(st.ActiveTool)
	app.status.SetDrawing(tb.BorderStyle().String(), tb.LineDirection().String())
	app.status.SetGrid(app.session.Grid().Width(), app.session.Grid().Height())
	app.status.SetZoom(app.session.Viewport().Zoom())
	app.status.SetHistory(st.CanUndo, st.CanRedo)
}
