package editor

import (
	"slices"

	"github.com/google/uuid"

	"github.com/dshills/gridsketch/internal/clipboard"
	"github.com/dshills/gridsketch/internal/engine/history"
	"github.com/dshills/gridsketch/internal/grid"
	"github.com/dshills/gridsketch/internal/input/keymap"
	"github.com/dshills/gridsketch/internal/renderer"
	"github.com/dshills/gridsketch/internal/renderer/dirty"
	"github.com/dshills/gridsketch/internal/renderer/viewport"
	"github.com/dshills/gridsketch/internal/tool"
)

// Session owns everything one editor instance mutates. It is not safe for
// concurrent use.
type Session struct {
	id uuid.UUID

	grid    *grid.Grid
	history *history.History
	view    *viewport.Viewport
	tools   *tool.Toolbox
	clip    *clipboard.Clipboard
	tracker *dirty.Tracker
	emitter *renderer.Emitter
	keys    *keymap.ParsedKeymap

	// preview is the uncommitted output of the current tool.
	preview []grid.DrawOp
	// shownSel is the selection rectangle as last reported to the renderer.
	shownSel grid.Rect

	zoomStep float64
	log      Logger
}

// New creates a session with a blank grid. Invalid sizes fall back to the
// defaults.
func New(opts Options) *Session {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultWidth, DefaultHeight
	}
	if opts.ZoomStep <= 0 {
		opts.ZoomStep = DefaultZoomStep
	}
	if opts.Keymap == nil {
		opts.Keymap = keymap.Default().MustParse()
	}
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}
	if opts.ID == uuid.Nil {
		opts.ID = uuid.New()
	}

	tracker := dirty.NewTracker(opts.Width, opts.Height)
	s := &Session{
		id:       opts.ID,
		grid:     grid.New(opts.Width, opts.Height),
		history:  history.NewHistory(opts.HistoryCapacity),
		view:     viewport.New(opts.Metrics),
		tools:    tool.NewToolbox(),
		clip:     clipboard.New(),
		tracker:  tracker,
		emitter:  renderer.NewEmitter(tracker, opts.Render),
		keys:     opts.Keymap,
		zoomStep: opts.ZoomStep,
		log:      opts.Logger,
	}
	if opts.Zoom > 0 {
		s.view.SetZoom(opts.Zoom)
	}

	s.tools.SetBorderStyle(opts.BorderStyle)
	s.tools.SetLineDirection(opts.LineDirection)
	if opts.FreehandChar != 0 && opts.FreehandChar != grid.Blank && grid.ValidGlyph(opts.FreehandChar) {
		s.tools.Freehand().Char = opts.FreehandChar
	}
	if opts.EraserSize > 0 {
		s.tools.Eraser().Size = opts.EraserSize
	}
	s.tools.Switch(opts.Tool)

	s.log.Debug("new %dx%d canvas, tool %s", opts.Width, opts.Height, s.tools.Active())
	return s
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID { return s.id }

// Grid returns the canvas. Callers must not write to it directly; every
// change goes through History so it can be undone.
func (s *Session) Grid() *grid.Grid { return s.grid }

func (s *Session) History() *history.History { return s.history }

func (s *Session) Viewport() *viewport.Viewport { return s.view }

func (s *Session) Toolbox() *tool.Toolbox { return s.tools }

func (s *Session) Clipboard() *clipboard.Clipboard { return s.clip }

// SetKeymap replaces the key bindings.
func (s *Session) SetKeymap(km *keymap.ParsedKeymap) {
	if km != nil {
		s.keys = km
	}
}

// SetMetrics replaces the cell metrics and schedules a full redraw.
// Invalid or unchanged metrics are ignored.
func (s *Session) SetMetrics(m viewport.Metrics) EventResult {
	if !s.view.SetMetrics(m) {
		return s.result(false)
	}
	s.tracker.MarkFullRedraw()
	return s.result(true)
}

// RenderOptions returns the current colors and font.
func (s *Session) RenderOptions() renderer.Options { return s.emitter.Options() }

// SetRenderOptions replaces colors and font and schedules a full redraw.
func (s *Session) SetRenderOptions(opts renderer.Options) {
	s.emitter.SetOptions(opts)
}

// Status returns the current state without changing anything.
func (s *Session) Status() EventResult {
	return s.result(false)
}

func (s *Session) result(redraw bool) EventResult {
	return EventResult{
		NeedsRedraw: redraw,
		ActiveTool:  s.tools.Active(),
		CanUndo:     s.history.CanUndo() || s.history.GroupSize() > 0,
		CanRedo:     s.history.CanRedo(),
	}
}

func (s *Session) notice(redraw bool, msg string) EventResult {
	r := s.result(redraw)
	r.Notice = msg
	return r
}

// apply commits a tool result through History and records what has to be
// repainted. It reports whether anything visible changed.
func (s *Session) apply(res tool.Result, name string) bool {
	changed := res.Modified
	if len(res.Committed) > 0 {
		if cmd := s.history.Commit(s.grid, name, res.Committed); cmd != nil {
			s.tracker.MarkOps(cmd.Ops())
			s.log.Debug("commit %s: %d cells", name, len(cmd.Cells()))
			changed = true
		}
	}
	if s.setPreview(res.Preview) {
		changed = true
	}
	if s.syncSelection() {
		changed = true
	}
	return changed
}

// setPreview replaces the overlay. Cells the old overlay covered are
// marked dirty so the committed glyphs under them get repainted.
func (s *Session) setPreview(ops []grid.DrawOp) bool {
	if slices.Equal(s.preview, ops) {
		return false
	}
	s.tracker.MarkOps(s.preview)
	s.preview = slices.Clone(ops)
	return true
}

// syncSelection compares the selection on screen with the Select tool's
// state and marks both rectangles dirty when they differ.
func (s *Session) syncSelection() bool {
	var r grid.Rect
	if s.tools.Active() == tool.Select {
		if sel, ok := s.tools.Select().Selection(); ok {
			r = sel.Rect
			if sel.Moving {
				r = sel.Target()
			}
			r = r.Intersect(s.grid.Bounds())
		}
	}
	if r == s.shownSel {
		return false
	}
	s.tracker.MarkRect(s.shownSel)
	s.tracker.MarkRect(r)
	s.shownSel = r
	return true
}

// strokeName returns the undo group name for tools whose gesture commits
// several times, or "" for tools that commit once.
func strokeName(k tool.Kind) string {
	switch k {
	case tool.Freehand, tool.Eraser:
		return k.String()
	}
	return ""
}

// closeStroke ends an open undo group once the current tool is idle.
func (s *Session) closeStroke() {
	if s.history.IsGrouping() && !s.tools.Current().Active() {
		s.history.EndGroup()
	}
}

// typing reports whether the Text tool has a cursor placed, in which case
// bare keys are text rather than shortcuts.
func (s *Session) typing() bool {
	return s.tools.Active() == tool.Text && s.tools.Text().Active()
}

// resetInteraction drops every tool's transient state, the overlay and the
// selection, and closes any open undo group.
func (s *Session) resetInteraction() {
	s.history.EndGroup()
	s.tools.ResetAll()
	s.preview = nil
	s.shownSel = grid.Rect{}
}
