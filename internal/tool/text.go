package tool

import (
	"github.com/dshills/gridsketch/internal/grid"
	"github.com/dshills/gridsketch/internal/input/key"
)

// TextTool types characters starting at a clicked cell. Typed text stays
// in the preview until Enter or a click elsewhere commits it.
type TextTool struct {
	cursor grid.Point
	placed bool
	buf    []rune
}

func (t *TextTool) Kind() Kind { return Text }

// Caret returns the cell the next character will be written to.
func (t *TextTool) Caret() (grid.Point, bool) {
	if !t.placed {
		return grid.Point{}, false
	}
	return grid.Pt(t.cursor.X+len(t.buf), t.cursor.Y), true
}

// Buffer returns the uncommitted text.
func (t *TextTool) Buffer() string { return string(t.buf) }

// PointerDown commits any pending text and moves the cursor.
func (t *TextTool) PointerDown(c Canvas, p grid.Point) Result {
	committed := t.ops()
	t.buf = t.buf[:0]
	t.cursor = clamp(c, p)
	t.placed = true
	return Result{Committed: committed, Modified: true}
}

func (t *TextTool) PointerMove(Canvas, grid.Point) Result { return Result{} }

func (t *TextTool) PointerUp(Canvas, grid.Point) Result { return Result{} }

func (t *TextTool) Key(c Canvas, ev key.Event) Result {
	if r, ok := cancel(t, ev); ok {
		return r
	}
	if !t.placed {
		return Result{}
	}
	switch {
	case ev.Is(key.KeyEnter):
		ops := t.ops()
		t.Reset()
		return Result{Committed: ops, Modified: true}
	case ev.Is(key.KeyBackspace):
		if len(t.buf) == 0 {
			return Result{}
		}
		t.buf = t.buf[:len(t.buf)-1]
		return Result{Preview: t.ops(), Modified: true}
	case ev.IsChar():
		if !grid.ValidGlyph(ev.Rune) || t.cursor.X+len(t.buf) >= c.Width() {
			return Result{Preview: t.ops()}
		}
		t.buf = append(t.buf, ev.Rune)
		return Result{Preview: t.ops(), Modified: true}
	}
	return Result{}
}

// Insert types every rune of s as if it were keyed in. Runes that do not
// fit a single cell are typed as Blank.
func (t *TextTool) Insert(c Canvas, s []rune) Result {
	if !t.placed {
		return Result{}
	}
	var res Result
	for _, r := range s {
		r = grid.Sanitize(r)
		res = t.Key(c, key.NewRuneEvent(r, 0))
		if !res.Modified {
			break
		}
	}
	return Result{Preview: t.ops(), Modified: true}
}

// Active reports whether a cursor is placed.
func (t *TextTool) Active() bool { return t.placed }

// Reset drops the cursor and any uncommitted text.
func (t *TextTool) Reset() {
	t.placed = false
	t.buf = nil
	t.cursor = grid.Point{}
}

func (t *TextTool) ops() []grid.DrawOp {
	if len(t.buf) == 0 {
		return nil
	}
	ops := make([]grid.DrawOp, len(t.buf))
	for i, r := range t.buf {
		ops[i] = grid.Op(t.cursor.X+i, t.cursor.Y, r)
	}
	return ops
}
