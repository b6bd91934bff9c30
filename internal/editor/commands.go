package editor

import (
	"fmt"

	"github.com/dshills/gridsketch/internal/engine/history"
	"github.com/dshills/gridsketch/internal/grid"
	"github.com/dshills/gridsketch/internal/input/keymap"
	"github.com/dshills/gridsketch/internal/raster"
	"github.com/dshills/gridsketch/internal/renderer/dirty"
	"github.com/dshills/gridsketch/internal/tool"
)

var actionTools = map[string]tool.Kind{
	keymap.ActionToolSelect:    tool.Select,
	keymap.ActionToolRectangle: tool.Rectangle,
	keymap.ActionToolLine:      tool.Line,
	keymap.ActionToolArrow:     tool.Arrow,
	keymap.ActionToolDiamond:   tool.Diamond,
	keymap.ActionToolText:      tool.Text,
	keymap.ActionToolFreehand:  tool.Freehand,
	keymap.ActionToolEraser:    tool.Eraser,
}

// SetTool makes the named tool current. Unknown names keep the current
// tool, and a switch is refused while the current tool is mid-gesture.
func (s *Session) SetTool(name string) EventResult {
	k, ok := tool.ParseKind(name)
	if !ok {
		return s.notice(false, fmt.Sprintf("unknown tool %q; keeping %s", name, s.tools.Active()))
	}
	return s.switchTool(k)
}

func (s *Session) switchTool(k tool.Kind) EventResult {
	cur := s.tools.Active()
	if k == cur {
		return s.result(false)
	}
	if s.tools.Current().Active() {
		return s.notice(false, fmt.Sprintf("finish or cancel the %s first", cur))
	}
	s.tools.Switch(k)
	s.setPreview(nil)
	s.syncSelection()
	s.log.Debug("tool %s -> %s", cur, k)
	return s.result(true)
}

// SetBorderStyle sets the glyph set used by rectangles and diamonds.
// Unknown names select Single.
func (s *Session) SetBorderStyle(name string) EventResult {
	st, ok := raster.ParseBorderStyle(name)
	s.tools.SetBorderStyle(st)
	if !ok {
		return s.notice(false, fmt.Sprintf("unknown border style %q; using %s", name, st))
	}
	return s.result(false)
}

// SetLineDirection sets the constraint of the line and arrow tools.
// Unknown names select Auto.
func (s *Session) SetLineDirection(name string) EventResult {
	d, ok := raster.ParseDirection(name)
	s.tools.SetLineDirection(d)
	if !ok {
		return s.notice(false, fmt.Sprintf("unknown direction %q; using %s", name, d))
	}
	return s.result(false)
}

// Undo reverts the most recent command. The second result is false when
// there was nothing to undo.
func (s *Session) Undo() (EventResult, bool) {
	s.interrupt()
	cmd, ok := s.history.Undo(s.grid)
	if !ok {
		return s.result(false), false
	}
	for _, p := range cmd.Cells() {
		s.tracker.MarkCell(p)
	}
	if next, ok := s.history.PeekUndo(); ok {
		s.log.Debug("undo %s, next %s", cmd.Description(), next.Description)
	} else {
		s.log.Debug("undo %s", cmd.Description())
	}
	return s.result(true), true
}

// Redo re-applies the most recently undone command. The second result is
// false when there was nothing to redo.
func (s *Session) Redo() (EventResult, bool) {
	s.interrupt()
	cmd, ok := s.history.Redo(s.grid)
	if !ok {
		return s.result(false), false
	}
	for _, p := range cmd.Cells() {
		s.tracker.MarkCell(p)
	}
	if next, ok := s.history.PeekRedo(); ok {
		s.log.Debug("redo %s, next %s", cmd.Description(), next.Description)
	} else {
		s.log.Debug("redo %s", cmd.Description())
	}
	return s.result(true), true
}

// interrupt ends a gesture in progress so undo and redo act on a settled
// history. Strokes already drawn are kept as one undo step; previews of
// uncommitted shapes and text are dropped.
func (s *Session) interrupt() {
	if !s.tools.Current().Active() && !s.history.IsGrouping() {
		return
	}
	s.tools.Current().Reset()
	s.history.EndGroup()
	s.setPreview(nil)
	s.syncSelection()
}

// Clear blanks the canvas and forgets history, clipboard and tool state.
func (s *Session) Clear() EventResult {
	destructive := !s.grid.IsBlank() || s.history.CanUndo() || s.history.CanRedo() || !s.clip.Empty()
	s.resetInteraction()
	s.grid.Clear()
	s.history.Clear()
	s.clip.Clear()
	s.tracker.MarkFullRedraw()
	s.log.Debug("clear (destructive=%t)", destructive)

	r := s.result(true)
	r.Destructive = destructive
	return r
}

// Edit runs fn against the grid and history outside any tool gesture and
// schedules a full redraw. Scripts draw through it.
func (s *Session) Edit(fn func(g *grid.Grid, h *history.History)) EventResult {
	s.interrupt()
	fn(s.grid, s.history)
	s.tracker.MarkFullRedraw()
	s.syncSelection()
	return s.result(true)
}

// Resize replaces the canvas with a blank one of the new size and
// discards history and clipboard, even when the size is unchanged.
func (s *Session) Resize(width, height int) EventResult {
	if width <= 0 || height <= 0 {
		return s.notice(false, fmt.Sprintf("invalid size %dx%d", width, height))
	}
	destructive := !s.grid.IsBlank() || s.history.CanUndo() || s.history.CanRedo() || !s.clip.Empty()
	s.resetInteraction()
	s.grid.Resize(width, height)
	s.history.Clear()
	s.clip.Clear()
	s.tracker.MarkChange(dirty.Change{Type: dirty.ChangeResize, Region: dirty.Region{Rect: s.grid.Bounds()}})
	s.log.Debug("resize to %dx%d (destructive=%t)", width, height, destructive)

	r := s.result(true)
	r.Destructive = destructive
	return r
}

// Copy places the selection on the clipboard and asks the host to mirror
// it to the system clipboard.
func (s *Session) Copy() EventResult {
	if s.tools.Active() != tool.Select || !s.tools.Select().Copy(s.grid, s.clip) {
		return s.notice(false, "nothing selected")
	}
	r := s.result(false)
	r.CopyToSystemClipboard = true
	r.ASCIIText = s.clip.Text()
	return r
}

// Cut copies the selection and blanks it.
func (s *Session) Cut() EventResult {
	if s.tools.Active() != tool.Select {
		return s.notice(false, "nothing selected")
	}
	res := s.tools.Select().Cut(s.grid, s.clip)
	if !res.Modified {
		return s.notice(false, "nothing selected")
	}
	changed := s.apply(res, "cut")
	r := s.result(changed)
	r.CopyToSystemClipboard = true
	r.ASCIIText = s.clip.Text()
	return r
}

// Paste writes the clipboard at the selection or the last clicked cell.
// With an empty clipboard the host is asked for the system clipboard.
func (s *Session) Paste() EventResult {
	if s.clip.Empty() {
		r := s.result(false)
		r.WantsSystemPaste = true
		return r
	}
	if s.tools.Active() != tool.Select {
		return s.notice(false, "paste needs the select tool")
	}
	return s.result(s.apply(s.tools.Select().Paste(s.grid, s.clip), "paste"))
}

// Delete blanks the selection.
func (s *Session) Delete() EventResult {
	if s.tools.Active() != tool.Select {
		return s.result(false)
	}
	return s.result(s.apply(s.tools.Select().Delete(s.grid), "delete"))
}

// SelectAll switches to the Select tool and selects the whole canvas.
func (s *Session) SelectAll() EventResult {
	if r := s.switchTool(tool.Select); s.tools.Active() != tool.Select {
		return r
	}
	if s.tools.Select().Active() {
		return s.notice(false, "finish or cancel the select first")
	}
	s.tools.Select().Select(s.grid, s.grid.Bounds())
	return s.result(s.syncSelection())
}

func (s *Session) zoomBy(step float64) EventResult {
	if !s.view.SetZoom(s.view.Zoom() + step) {
		return s.result(false)
	}
	s.tracker.MarkChange(dirty.Change{Type: dirty.ChangeView})
	return s.result(true)
}

func (s *Session) pan(dx, dy int) EventResult {
	s.view.PanCells(dx, dy)
	s.tracker.MarkChange(dirty.Change{Type: dirty.ChangeView})
	return s.result(true)
}

func (s *Session) nextBorderStyle() EventResult {
	styles := raster.BorderStyles()
	cur := s.tools.BorderStyle()
	next := styles[0]
	for i, st := range styles {
		if st == cur {
			next = styles[(i+1)%len(styles)]
			break
		}
	}
	s.tools.SetBorderStyle(next)
	return s.notice(false, "border style: "+next.String())
}

func (s *Session) nextDirection() EventResult {
	dirs := raster.Directions()
	cur := s.tools.LineDirection()
	next := dirs[0]
	for i, d := range dirs {
		if d == cur {
			next = dirs[(i+1)%len(dirs)]
			break
		}
	}
	s.tools.SetLineDirection(next)
	return s.notice(false, "line direction: "+next.String())
}

// RunAction performs a keymap action by name. Host actions are returned
// in EventResult.Action for the caller to carry out.
func (s *Session) RunAction(action string) EventResult {
	return s.runAction(action)
}

func (s *Session) runAction(action string) EventResult {
	if k, ok := actionTools[action]; ok {
		return s.switchTool(k)
	}
	switch action {
	case keymap.ActionUndo:
		r, _ := s.Undo()
		return r
	case keymap.ActionRedo:
		r, _ := s.Redo()
		return r
	case keymap.ActionCopy:
		return s.Copy()
	case keymap.ActionCut:
		return s.Cut()
	case keymap.ActionPaste:
		return s.Paste()
	case keymap.ActionDelete:
		return s.Delete()
	case keymap.ActionClear:
		return s.Clear()
	case keymap.ActionSelectAll:
		return s.SelectAll()
	case keymap.ActionZoomIn:
		return s.zoomBy(s.zoomStep)
	case keymap.ActionZoomOut:
		return s.zoomBy(-s.zoomStep)
	case keymap.ActionZoomReset:
		if !s.view.Reset() {
			return s.result(false)
		}
		s.tracker.MarkChange(dirty.Change{Type: dirty.ChangeView})
		return s.result(true)
	case keymap.ActionPanLeft:
		return s.pan(panStep, 0)
	case keymap.ActionPanRight:
		return s.pan(-panStep, 0)
	case keymap.ActionPanUp:
		return s.pan(0, panStep)
	case keymap.ActionPanDown:
		return s.pan(0, -panStep)
	case keymap.ActionToggleGrid:
		opts := s.emitter.Options()
		opts.ShowGrid = !opts.ShowGrid
		s.emitter.SetOptions(opts)
		return s.result(true)
	case keymap.ActionStyleNext:
		return s.nextBorderStyle()
	case keymap.ActionDirectionNext:
		return s.nextDirection()
	case keymap.ActionQuit, keymap.ActionExport:
		r := s.result(false)
		r.Action = action
		return r
	}
	return s.notice(false, fmt.Sprintf("unknown action %q", action))
}

// Caret returns the Text tool's insertion point while it has a cursor.
func (s *Session) Caret() (grid.Point, bool) {
	if !s.typing() {
		return grid.Point{}, false
	}
	return s.tools.Text().Caret()
}
