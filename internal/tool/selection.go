package tool

import (
	"github.com/dshills/gridsketch/internal/clipboard"
	"github.com/dshills/gridsketch/internal/grid"
	"github.com/dshills/gridsketch/internal/input/key"
)

// Selection is a rectangular region picked with the Select tool.
type Selection struct {
	Rect grid.Rect
	// Offset is how far the content has been dragged while Moving.
	Offset grid.Point
	Moving bool
}

// Target returns the rectangle the selected content currently occupies.
func (s Selection) Target() grid.Rect {
	return s.Rect.Translate(s.Offset)
}

type selectMode uint8

const (
	selectIdle selectMode = iota
	selectDragging
	selectMoving
)

// SelectTool picks rectangular regions, moves their content, and moves
// blocks to and from a Clipboard.
type SelectTool struct {
	sel      Selection
	has      bool
	mode     selectMode
	anchor   grid.Point
	moveFrom grid.Point
	cursor   grid.Point
	content  clipboard.Clipboard
}

func (t *SelectTool) Kind() Kind { return Select }

// Selection returns the current selection, if any.
func (t *SelectTool) Selection() (Selection, bool) {
	return t.sel, t.has
}

// Cursor returns the last clicked cell, which is where pastes land when
// nothing is selected.
func (t *SelectTool) Cursor() grid.Point { return t.cursor }

// Select replaces the selection with r clipped to c.
func (t *SelectTool) Select(c Canvas, r grid.Rect) bool {
	r = r.Intersect(grid.Rect{Width: c.Width(), Height: c.Height()})
	if r.Empty() {
		return false
	}
	t.mode = selectIdle
	t.sel = Selection{Rect: r}
	t.has = true
	return true
}

func (t *SelectTool) PointerDown(c Canvas, p grid.Point) Result {
	p = clamp(c, p)
	t.cursor = p
	if t.has && t.sel.Rect.Contains(p) {
		t.mode = selectMoving
		t.moveFrom = p
		t.content.Capture(c, t.sel.Rect)
		t.sel.Offset = grid.Point{}
		t.sel.Moving = true
		return Result{Modified: true}
	}
	t.mode = selectDragging
	t.anchor = p
	t.sel = Selection{Rect: grid.RectFromPoints(p, p)}
	t.has = true
	return Result{Modified: true}
}

func (t *SelectTool) PointerMove(c Canvas, p grid.Point) Result {
	p = clamp(c, p)
	switch t.mode {
	case selectDragging:
		r := grid.RectFromPoints(t.anchor, p)
		if r == t.sel.Rect {
			return Result{}
		}
		t.sel.Rect = r
		return Result{Modified: true}
	case selectMoving:
		off := p.Sub(t.moveFrom)
		if off == t.sel.Offset {
			return Result{Preview: t.moveOps(c)}
		}
		t.sel.Offset = off
		return Result{Preview: t.moveOps(c), Modified: true}
	}
	return Result{}
}

func (t *SelectTool) PointerUp(c Canvas, p grid.Point) Result {
	p = clamp(c, p)
	switch t.mode {
	case selectDragging:
		t.mode = selectIdle
		t.sel.Rect = grid.RectFromPoints(t.anchor, p)
		if p == t.anchor {
			t.clearSelection()
			t.cursor = p
		}
		return Result{Modified: true}
	case selectMoving:
		t.sel.Offset = p.Sub(t.moveFrom)
		var ops []grid.DrawOp
		if t.sel.Offset != (grid.Point{}) {
			ops = t.moveOps(c)
		}
		t.cursor = p
		t.clearSelection()
		return Result{Committed: ops, Modified: true}
	}
	return Result{}
}

// moveOps blanks the source rectangle and writes the captured content at
// the offset position. Writes outside c are dropped.
func (t *SelectTool) moveOps(c Canvas) []grid.DrawOp {
	src := t.sel.Rect
	ops := make([]grid.DrawOp, 0, 2*src.Width*src.Height)
	for y := src.Y; y < src.Bottom(); y++ {
		for x := src.X; x < src.Right(); x++ {
			ops = append(ops, grid.Op(x, y, grid.Blank))
		}
	}
	dst := t.sel.Target()
	ops = append(ops, t.content.Ops(grid.Pt(dst.X, dst.Y))...)
	return clip(c, grid.Dedup(ops))
}

// Copy captures the selection into cb. It returns false when nothing is
// selected.
func (t *SelectTool) Copy(c Canvas, cb *clipboard.Clipboard) bool {
	if !t.has || t.mode != selectIdle {
		return false
	}
	return cb.Capture(c, t.sel.Rect)
}

// Cut copies the selection into cb and blanks it.
func (t *SelectTool) Cut(c Canvas, cb *clipboard.Clipboard) Result {
	if !t.Copy(c, cb) {
		return Result{}
	}
	return t.Delete(c)
}

// Delete blanks the selected cells and drops the selection.
func (t *SelectTool) Delete(c Canvas) Result {
	if !t.has || t.mode != selectIdle {
		return Result{}
	}
	r := t.sel.Rect
	ops := make([]grid.DrawOp, 0, r.Width*r.Height)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			ops = append(ops, grid.Op(x, y, grid.Blank))
		}
	}
	t.clearSelection()
	return Result{Committed: clip(c, ops), Modified: true}
}

// Paste writes the clipboard block with its top-left corner at the
// selection origin, or at the cursor when nothing is selected. Blank
// cells in the block overwrite what is under them.
func (t *SelectTool) Paste(c Canvas, cb *clipboard.Clipboard) Result {
	if cb.Empty() || t.mode != selectIdle {
		return Result{}
	}
	at := t.cursor
	if t.has {
		at = grid.Pt(t.sel.Rect.X, t.sel.Rect.Y)
	}
	t.clearSelection()
	return Result{Committed: clip(c, cb.Ops(at)), Modified: true}
}

func (t *SelectTool) Key(c Canvas, ev key.Event) Result {
	switch {
	case ev.Is(key.KeyEscape):
		changed := t.has || t.mode != selectIdle
		t.Reset()
		return Result{Modified: changed}
	case ev.Is(key.KeyDelete), ev.Is(key.KeyBackspace):
		return t.Delete(c)
	}
	return Result{}
}

// Active reports whether a drag is in progress. A finished selection is
// not active: switching tools simply drops it.
func (t *SelectTool) Active() bool { return t.mode != selectIdle }

// Reset drops the selection and any drag in progress.
func (t *SelectTool) Reset() {
	t.mode = selectIdle
	t.clearSelection()
}

func (t *SelectTool) clearSelection() {
	t.sel = Selection{}
	t.has = false
	t.content.Clear()
}

func clip(c Canvas, ops []grid.DrawOp) []grid.DrawOp {
	out := ops[:0]
	for _, op := range ops {
		if inside(c, op.At()) {
			out = append(out, op)
		}
	}
	return out
}
