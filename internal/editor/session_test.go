package editor

import (
	"math"
	"strings"
	"testing"

	"github.com/dshills/gridsketch/internal/grid"
	"github.com/dshills/gridsketch/internal/input/key"
	"github.com/dshills/gridsketch/internal/renderer"
	"github.com/dshills/gridsketch/internal/renderer/viewport"
	"github.com/dshills/gridsketch/internal/tool"
)

// Cells are 10x20 pixels so cell (x, y) is centred on (10x+5, 20y+10).
func newTestSession(w, h int) *Session {
	opts := DefaultOptions()
	opts.Width, opts.Height = w, h
	opts.Metrics = viewport.Metrics{CellWidth: 10, LineHeight: 20, Baseline: 12}
	return New(opts)
}

func at(x, y int) (float64, float64) {
	return float64(x)*10 + 5, float64(y)*20 + 10
}

func drag(s *Session, x0, y0, x1, y1 int) EventResult {
	s.PointerDown(at(x0, y0))
	s.PointerMove(at(x1, y1))
	return s.PointerUp(at(x1, y1))
}

func click(s *Session, x, y int) {
	s.PointerDown(at(x, y))
	s.PointerUp(at(x, y))
}

func typeKeys(s *Session, text string) {
	for _, r := range text {
		s.KeyDown(key.NewRuneEvent(r, 0))
	}
}

func seed(t *testing.T, s *Session, lines ...string) {
	t.Helper()
	var ops []grid.DrawOp
	for y, line := range lines {
		for x, r := range []rune(line) {
			ops = append(ops, grid.Op(x, y, r))
		}
	}
	if s.History().Commit(s.Grid(), "seed", ops) == nil {
		t.Fatal("seed changed nothing")
	}
}

func TestExportASCII(t *testing.T) {
	s := newTestSession(10, 4)
	if got := s.ExportASCII(); got != "" {
		t.Errorf("blank canvas exported %q", got)
	}

	s.SetTool("freehand")
	click(s, 0, 0)
	if got := s.ExportASCII(); got != "*" {
		t.Errorf("single cell exported %q, want %q", got, "*")
	}
}

func TestRectangleUndoRedo(t *testing.T) {
	s := newTestSession(10, 5)
	if r := s.SetTool("rectangle"); !r.NeedsRedraw || r.ActiveTool != tool.Rectangle {
		t.Fatalf("SetTool = %+v", r)
	}

	res := drag(s, 0, 0, 4, 2)
	if !res.NeedsRedraw || !res.CanUndo || res.CanRedo {
		t.Fatalf("drag result = %+v", res)
	}
	want := "┌───┐\n│   │\n└───┘"
	if got := s.ExportASCII(); got != want {
		t.Fatalf("after drag:\n%s\nwant:\n%s", got, want)
	}

	r, ok := s.Undo()
	if !ok || r.CanUndo || !r.CanRedo {
		t.Fatalf("Undo = %+v, %v", r, ok)
	}
	if got := s.ExportASCII(); got != "" {
		t.Errorf("after undo: %q", got)
	}

	if _, ok := s.Redo(); !ok {
		t.Fatal("Redo returned false")
	}
	if got := s.ExportASCII(); got != want {
		t.Errorf("after redo:\n%s", got)
	}
}

func TestUndoRedoEmptyStacks(t *testing.T) {
	s := newTestSession(4, 4)
	if r, ok := s.Undo(); ok || r.NeedsRedraw {
		t.Errorf("Undo on empty history = %+v, %v", r, ok)
	}
	if r, ok := s.Redo(); ok || r.NeedsRedraw {
		t.Errorf("Redo on empty history = %+v, %v", r, ok)
	}
}

func TestFreehandStrokeIsOneUndoStep(t *testing.T) {
	s := newTestSession(8, 2)
	s.SetTool("freehand")
	s.PointerDown(at(0, 0))
	s.PointerMove(at(2, 0))
	s.PointerMove(at(3, 0))
	s.PointerUp(at(3, 0))

	if got := s.ExportASCII(); got != "****" {
		t.Fatalf("stroke = %q", got)
	}
	if n := s.History().UndoCount(); n != 1 {
		t.Fatalf("stroke recorded %d undo entries, want 1", n)
	}
	if s.History().IsGrouping() {
		t.Fatal("group left open after pointer up")
	}
	s.Undo()
	if got := s.ExportASCII(); got != "" {
		t.Errorf("after undo: %q", got)
	}
}

func TestStrokeClearsRedoAsSoonAsItDraws(t *testing.T) {
	s := newTestSession(8, 2)
	seed(t, s, "ab")
	if _, ok := s.Undo(); !ok {
		t.Fatal("Undo returned false")
	}

	s.SetTool("freehand")
	r := s.PointerDown(at(5, 1))
	if !r.CanUndo || r.CanRedo {
		t.Errorf("mid-stroke result = %+v, want CanUndo and no CanRedo", r)
	}
	r = s.PointerUp(at(5, 1))
	if !r.CanUndo || r.CanRedo {
		t.Errorf("after stroke = %+v", r)
	}
	if _, ok := s.Redo(); ok {
		t.Error("redo replayed a command discarded by the stroke")
	}
}

func TestToolSwitchRefusedWhileActive(t *testing.T) {
	s := newTestSession(10, 5)
	s.SetTool("rectangle")
	s.PointerDown(at(1, 1))

	r := s.SetTool("line")
	if r.ActiveTool != tool.Rectangle || r.Notice == "" {
		t.Fatalf("switch during drag = %+v", r)
	}

	s.KeyDown(key.NewSpecialEvent(key.KeyEscape, 0))
	if r := s.SetTool("line"); r.ActiveTool != tool.Line {
		t.Errorf("switch after cancel = %+v", r)
	}
}

func TestInvalidCommandsFallBack(t *testing.T) {
	tests := []struct {
		name  string
		run   func(s *Session) EventResult
		check func(t *testing.T, s *Session)
	}{
		{
			name: "unknown tool keeps current",
			run:  func(s *Session) EventResult { return s.SetTool("lasso") },
			check: func(t *testing.T, s *Session) {
				if s.Toolbox().Active() != tool.Freehand {
					t.Errorf("tool = %v", s.Toolbox().Active())
				}
			},
		},
		{
			name: "unknown border style selects single",
			run:  func(s *Session) EventResult { return s.SetBorderStyle("wavy") },
			check: func(t *testing.T, s *Session) {
				if got := s.Toolbox().BorderStyle().String(); got != "single" {
					t.Errorf("style = %s", got)
				}
			},
		},
		{
			name: "unknown direction selects auto",
			run:  func(s *Session) EventResult { return s.SetLineDirection("sideways") },
			check: func(t *testing.T, s *Session) {
				if got := s.Toolbox().LineDirection().String(); got != "auto" {
					t.Errorf("direction = %s", got)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(4, 4)
			s.SetTool("freehand")
			s.SetBorderStyle("double")
			s.SetLineDirection("vertical")
			r := tt.run(s)
			if r.Notice == "" {
				t.Error("fallback did not set a notice")
			}
			tt.check(t, s)
		})
	}
}

func TestTextToolViaKeys(t *testing.T) {
	s := newTestSession(10, 2)
	s.KeyDown(key.NewRuneEvent('t', 0))
	if s.Toolbox().Active() != tool.Text {
		t.Fatalf("t selected %v", s.Toolbox().Active())
	}
	click(s, 2, 0)

	// r is the rectangle shortcut but types while the cursor is placed.
	typeKeys(s, "Hir")
	if s.Toolbox().Active() != tool.Text {
		t.Fatal("bare key switched tools while typing")
	}
	if p, ok := s.Caret(); !ok || p != grid.Pt(5, 0) {
		t.Errorf("Caret = %v, %v", p, ok)
	}
	s.KeyDown(key.NewSpecialEvent(key.KeyBackspace, 0))
	s.KeyDown(key.NewSpecialEvent(key.KeyBackspace, 0))
	if got := s.ExportASCII(); got != "" {
		t.Errorf("uncommitted text reached the grid: %q", got)
	}
	s.KeyDown(key.NewSpecialEvent(key.KeyEnter, 0))

	if got := s.ExportASCII(); got != "  H" {
		t.Errorf("export = %q, want %q", got, "  H")
	}
	if _, ok := s.Caret(); ok {
		t.Error("caret still shown after commit")
	}
}

func TestTextEscapeLeavesGridUnchanged(t *testing.T) {
	s := newTestSession(10, 2)
	s.SetTool("text")
	click(s, 0, 0)
	typeKeys(s, "abc")
	s.KeyDown(key.NewSpecialEvent(key.KeyEscape, 0))

	if got := s.ExportASCII(); got != "" {
		t.Errorf("export = %q", got)
	}
	if s.History().CanUndo() {
		t.Error("escape recorded history")
	}
	if ov := s.PreviewCommand(); len(ov.Chars) != 0 {
		t.Errorf("preview left behind: %v", ov.Chars)
	}
}

func TestClipboardSurvivesToolSwitchAndClearsOnResize(t *testing.T) {
	s := newTestSession(10, 6)
	seed(t, s, "abc", "def")

	drag(s, 0, 0, 2, 1)
	r := s.Copy()
	if !r.CopyToSystemClipboard || r.ASCIIText != "abc\ndef" {
		t.Fatalf("Copy = %+v", r)
	}

	s.SetTool("rectangle")
	s.SetTool("select")
	if s.Clipboard().Empty() {
		t.Fatal("tool switch emptied the clipboard")
	}

	click(s, 5, 3)
	if r := s.Paste(); !r.NeedsRedraw {
		t.Fatalf("Paste = %+v", r)
	}
	lines := s.Grid().Lines()
	if lines[3] != "     abc  " || lines[4] != "     def  " {
		t.Errorf("pasted rows = %q, %q", lines[3], lines[4])
	}

	r = s.Resize(12, 6)
	if !r.Destructive || r.CanUndo || !s.Clipboard().Empty() {
		t.Errorf("Resize = %+v, clipboard empty %v", r, s.Clipboard().Empty())
	}
	if s.Grid().Width() != 12 {
		t.Errorf("width = %d", s.Grid().Width())
	}
}

func TestResizeOfBlankCanvasIsNotDestructive(t *testing.T) {
	s := newTestSession(4, 4)
	if r := s.Resize(8, 8); r.Destructive || !r.NeedsRedraw {
		t.Errorf("Resize = %+v", r)
	}
	if r := s.Resize(0, 3); r.Notice == "" || s.Grid().Width() != 8 {
		t.Errorf("invalid resize = %+v", r)
	}
}

func TestResizeAlwaysDiscardsHistoryAndClipboard(t *testing.T) {
	tests := []struct {
		name            string
		prepare         func(t *testing.T, s *Session)
		wantDestructive bool
	}{
		{"fresh canvas", func(*testing.T, *Session) {}, false},
		{"undo history only", func(t *testing.T, s *Session) {
			seed(t, s, "ab")
			s.Undo()
		}, true},
		{"clipboard only", func(t *testing.T, s *Session) {
			seed(t, s, "ab")
			drag(s, 0, 0, 1, 0)
			s.Copy()
			s.Undo()
			s.History().Clear()
		}, true},
		{"drawing", func(t *testing.T, s *Session) { seed(t, s, "ab") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(4, 2)
			tt.prepare(t, s)

			r := s.Resize(4, 2)
			if r.Destructive != tt.wantDestructive {
				t.Errorf("Destructive = %v, want %v", r.Destructive, tt.wantDestructive)
			}
			if r.CanUndo || r.CanRedo || !s.Clipboard().Empty() || !s.Grid().IsBlank() {
				t.Errorf("same-size resize kept state: %+v, clipboard empty %v", r, s.Clipboard().Empty())
			}
		})
	}
}

func TestClear(t *testing.T) {
	s := newTestSession(4, 2)
	if r := s.Clear(); r.Destructive {
		t.Error("clearing a fresh session reported destructive")
	}
	seed(t, s, "ab")
	r := s.Clear()
	if !r.Destructive || r.CanUndo || s.ExportASCII() != "" {
		t.Errorf("Clear = %+v, export %q", r, s.ExportASCII())
	}
}

func TestCutAndDelete(t *testing.T) {
	s := newTestSession(6, 2)
	seed(t, s, "abcd")

	drag(s, 0, 0, 1, 0)
	r := s.KeyDown(key.NewRuneEvent('x', key.ModCtrl))
	if !r.CopyToSystemClipboard || r.ASCIIText != "ab" {
		t.Fatalf("cut = %+v", r)
	}
	if got := s.ExportASCII(); got != "  cd" {
		t.Errorf("after cut: %q", got)
	}

	drag(s, 2, 0, 3, 0)
	s.KeyDown(key.NewSpecialEvent(key.KeyDelete, 0))
	if got := s.ExportASCII(); got != "" {
		t.Errorf("after delete: %q", got)
	}
}

func TestPasteWithEmptyClipboardAsksHost(t *testing.T) {
	s := newTestSession(6, 3)
	r := s.KeyDown(key.NewRuneEvent('v', key.ModCtrl))
	if !r.WantsSystemPaste {
		t.Fatalf("paste = %+v", r)
	}

	r = s.PasteText("ab\r\ncd\n")
	if !r.NeedsRedraw {
		t.Fatalf("PasteText = %+v", r)
	}
	if got := s.ExportASCII(); got != "ab\ncd" {
		t.Errorf("export = %q", got)
	}
}

func TestPasteTextWhileTyping(t *testing.T) {
	s := newTestSession(10, 2)
	s.SetTool("text")
	click(s, 1, 0)
	s.PasteText("ae\u0301b\nignored")
	s.KeyDown(key.NewSpecialEvent(key.KeyEnter, 0))

	if got := s.ExportASCII(); got != " a b" {
		t.Errorf("export = %q, want %q", got, " a b")
	}
}

func TestPasteTextOnOtherTool(t *testing.T) {
	s := newTestSession(4, 2)
	s.SetTool("line")
	r := s.PasteText("xy")
	if r.Notice == "" || s.Clipboard().Empty() {
		t.Errorf("PasteText = %+v", r)
	}
	if s.ExportASCII() != "" {
		t.Error("paste on line tool wrote to the grid")
	}
}

func TestShortcuts(t *testing.T) {
	tests := []struct {
		ev   key.Event
		want tool.Kind
	}{
		{key.NewRuneEvent('r', 0), tool.Rectangle},
		{key.NewRuneEvent('l', 0), tool.Line},
		{key.NewRuneEvent('a', 0), tool.Arrow},
		{key.NewRuneEvent('d', 0), tool.Diamond},
		{key.NewRuneEvent('f', 0), tool.Freehand},
		{key.NewRuneEvent('e', 0), tool.Eraser},
		{key.NewRuneEvent('v', 0), tool.Select},
	}
	s := newTestSession(4, 4)
	for _, tt := range tests {
		t.Run(tt.ev.String(), func(t *testing.T) {
			if r := s.KeyDown(tt.ev); r.ActiveTool != tt.want {
				t.Errorf("KeyDown(%v) tool = %v, want %v", tt.ev, r.ActiveTool, tt.want)
			}
		})
	}
}

func TestUndoShortcut(t *testing.T) {
	s := newTestSession(4, 2)
	s.SetTool("freehand")
	click(s, 0, 0)

	s.KeyDown(key.NewRuneEvent('z', key.ModCtrl))
	if s.ExportASCII() != "" {
		t.Fatal("C-z did not undo")
	}
	s.KeyDown(key.NewRuneEvent('y', key.ModCtrl))
	if s.ExportASCII() != "*" {
		t.Fatal("C-y did not redo")
	}
}

func TestHostActionsPassThrough(t *testing.T) {
	s := newTestSession(4, 2)
	if r := s.KeyDown(key.NewRuneEvent('q', key.ModCtrl)); r.Action != "app.quit" {
		t.Errorf("C-q action = %q", r.Action)
	}
	if r := s.RunAction("bogus"); r.Notice == "" {
		t.Error("unknown action without notice")
	}
}

func TestCycleStyleAndDirection(t *testing.T) {
	s := newTestSession(4, 2)
	r := s.KeyDown(key.NewRuneEvent('s', 0))
	if got := s.Toolbox().BorderStyle().String(); got != "double" || !strings.Contains(r.Notice, "double") {
		t.Errorf("style = %s, notice %q", got, r.Notice)
	}
	s.KeyDown(key.NewRuneEvent('o', 0))
	if got := s.Toolbox().LineDirection().String(); got != "horizontal" {
		t.Errorf("direction = %s", got)
	}
}

func TestWheel(t *testing.T) {
	s := newTestSession(10, 10)
	sx, sy := at(3, 3)
	anchor := s.Viewport().ScreenToGrid(sx, sy)

	if r := s.Wheel(-1, sx, sy, 0); !r.NeedsRedraw {
		t.Fatal("wheel zoom did not redraw")
	}
	if z := s.Viewport().Zoom(); math.Abs(z-1.1) > 1e-9 {
		t.Errorf("zoom = %v, want 1.1", z)
	}
	if got := s.Viewport().ScreenToGrid(sx, sy); got != anchor {
		t.Errorf("anchor moved from %v to %v", anchor, got)
	}

	s.Wheel(1, sx, sy, 0)
	if z := s.Viewport().Zoom(); math.Abs(z-0.99) > 1e-9 {
		t.Errorf("zoom = %v, want 0.99", z)
	}

	px, _ := s.Viewport().Pan()
	s.Wheel(30, sx, sy, key.ModShift)
	if nx, _ := s.Viewport().Pan(); nx != px-30 {
		t.Errorf("shift+wheel pan = %v, want %v", nx, px-30)
	}
}

func TestWheelIgnoresNonFiniteInput(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	tests := []struct {
		name          string
		delta, sx, sy float64
		mods          key.Modifier
	}{
		{"NaN delta", nan, 5, 5, 0},
		{"Inf delta", inf, 5, 5, 0},
		{"NaN anchor", -1, nan, 5, 0},
		{"Inf anchor", -1, 5, -inf, 0},
		{"NaN pan", nan, 5, 5, key.ModShift},
		{"Inf pan", -inf, 5, 5, key.ModShift},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(10, 10)
			if r := s.Wheel(tt.delta, tt.sx, tt.sy, tt.mods); r.NeedsRedraw {
				t.Error("non-finite wheel event redrew")
			}
			if got := s.Viewport().ScreenToGrid(at(3, 4)); got != grid.Pt(3, 4) {
				t.Errorf("ScreenToGrid = %v after the event, want (3, 4)", got)
			}
		})
	}
}

func TestSelectAll(t *testing.T) {
	s := newTestSession(6, 3)
	seed(t, s, "ab", "", "    cd")
	s.SetTool("rectangle")

	if r := s.KeyDown(key.NewRuneEvent('a', key.ModCtrl)); !r.NeedsRedraw || r.ActiveTool != tool.Select {
		t.Fatalf("select all = %+v", r)
	}
	sel, ok := s.Toolbox().Select().Selection()
	if !ok || sel.Rect != s.Grid().Bounds() {
		t.Fatalf("selection = %+v, %v", sel, ok)
	}
	if r := s.Copy(); r.ASCIIText != "ab\n\n    cd" {
		t.Errorf("copied %q", r.ASCIIText)
	}

	s.SetTool("freehand")
	s.PointerDown(at(0, 1))
	if r := s.SelectAll(); r.Notice == "" || r.ActiveTool != tool.Freehand {
		t.Errorf("select all during a stroke = %+v", r)
	}
}

func TestZoomKeys(t *testing.T) {
	s := newTestSession(4, 4)
	s.KeyDown(key.NewRuneEvent('+', 0))
	if z := s.Viewport().Zoom(); math.Abs(z-1.1) > 1e-9 {
		t.Errorf("zoom in = %v", z)
	}
	if r := s.KeyDown(key.NewRuneEvent('0', 0)); !r.NeedsRedraw || s.Viewport().Zoom() != 1 {
		t.Errorf("zoom reset = %+v, zoom %v", r, s.Viewport().Zoom())
	}
	if r := s.KeyDown(key.NewRuneEvent('0', 0)); r.NeedsRedraw {
		t.Error("second reset reported a change")
	}
}

func TestDirtyRenderCommands(t *testing.T) {
	s := newTestSession(10, 5)
	first := s.DirtyRenderCommands()
	if len(first) == 0 || first[0].Kind() != renderer.KindClear {
		t.Fatalf("first frame = %v", first)
	}
	if cmds := s.DirtyRenderCommands(); cmds != nil {
		t.Fatalf("clean frame = %v", cmds)
	}

	s.SetTool("line")
	s.PointerDown(at(0, 0))
	s.PointerMove(at(3, 0))
	cmds := s.DirtyRenderCommands()
	if len(cmds) == 0 || cmds[len(cmds)-1].Kind() != renderer.KindOverlay {
		t.Fatalf("drag frame should end with the overlay: %v", cmds)
	}
	if ov := cmds[len(cmds)-1].(renderer.Overlay); len(ov.Chars) != 4 {
		t.Errorf("overlay has %d chars, want 4", len(ov.Chars))
	}

	s.PointerUp(at(3, 0))
	cmds = s.DirtyRenderCommands()
	var bg, chars int
	for _, c := range cmds {
		switch c := c.(type) {
		case renderer.DrawRect:
			if c.Role == renderer.RectBackground {
				bg++
			}
		case renderer.DrawChar:
			chars++
		case renderer.Overlay:
			t.Error("overlay emitted after commit")
		}
	}
	if bg == 0 || chars != 4 {
		t.Errorf("commit frame: %d backgrounds, %d chars", bg, chars)
	}
}

func TestSelectionIsRendered(t *testing.T) {
	s := newTestSession(10, 5)
	s.DirtyRenderCommands()
	drag(s, 1, 1, 3, 2)

	var found bool
	for _, c := range s.RenderCommands() {
		if r, ok := c.(renderer.DrawRect); ok && r.Role == renderer.RectSelection {
			found = true
			if want := (grid.Rect{X: 1, Y: 1, Width: 3, Height: 2}); r.Cells != want {
				t.Errorf("selection cells = %v, want %v", r.Cells, want)
			}
		}
	}
	if !found {
		t.Fatal("no selection rect in full frame")
	}

	s.KeyDown(key.NewSpecialEvent(key.KeyEscape, 0))
	for _, c := range s.DirtyRenderCommands() {
		if r, ok := c.(renderer.DrawRect); ok && r.Role == renderer.RectSelection {
			t.Error("selection still drawn after escape")
		}
	}
}

func TestNewAppliesOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = -1, 3
	opts.Tool = tool.Eraser
	opts.FreehandChar = '#'
	opts.EraserSize = 3
	s := New(opts)

	if s.Grid().Width() != DefaultWidth || s.Grid().Height() != DefaultHeight {
		t.Errorf("size = %dx%d", s.Grid().Width(), s.Grid().Height())
	}
	if s.Toolbox().Active() != tool.Eraser {
		t.Errorf("tool = %v", s.Toolbox().Active())
	}
	if s.Toolbox().Freehand().Char != '#' || s.Toolbox().Eraser().Size != 3 {
		t.Error("tool settings not applied")
	}
	if s.ID() == New(opts).ID() {
		t.Error("sessions share an ID")
	}
}
