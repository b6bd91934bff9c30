package tool

import (
	"github.com/dshills/gridsketch/internal/grid"
	"github.com/dshills/gridsketch/internal/input/key"
	"github.com/dshills/gridsketch/internal/raster"
)

// DefaultFreehandChar is the glyph freehand strokes draw with.
const DefaultFreehandChar = '*'

// stroke tracks the pointer while the button is held.
type stroke struct {
	last grid.Point
	down bool
}

// begin starts a stroke at p. Presses outside the canvas are ignored.
func (s *stroke) begin(c Canvas, p grid.Point) bool {
	if !inside(c, p) {
		return false
	}
	s.last, s.down = p, true
	return true
}

// advance moves the stroke to p and reports the previous position.
func (s *stroke) advance(c Canvas, p grid.Point) (prev grid.Point, ok bool) {
	if !s.down {
		return p, false
	}
	p = clamp(c, p)
	if p == s.last {
		return p, false
	}
	prev, s.last = s.last, p
	return prev, true
}

// FreehandTool draws Char on every cell the pointer crosses. Ops are
// committed as they are produced; the session groups one stroke into a
// single undo step.
type FreehandTool struct {
	stroke
	Char rune
}

func (t *FreehandTool) glyph() rune {
	if t.Char == 0 || !grid.ValidGlyph(t.Char) {
		return DefaultFreehandChar
	}
	return t.Char
}

func (t *FreehandTool) Kind() Kind { return Freehand }

func (t *FreehandTool) PointerDown(c Canvas, p grid.Point) Result {
	if !t.begin(c, p) {
		return Result{}
	}
	return Result{Committed: []grid.DrawOp{grid.Op(p.X, p.Y, t.glyph())}, Modified: true}
}

func (t *FreehandTool) PointerMove(c Canvas, p grid.Point) Result {
	prev, ok := t.advance(c, p)
	if !ok {
		return Result{}
	}
	return Result{Committed: raster.Segment(prev, t.last, t.glyph()), Modified: true}
}

func (t *FreehandTool) PointerUp(c Canvas, p grid.Point) Result {
	res := t.PointerMove(c, p)
	t.Reset()
	return res
}

func (t *FreehandTool) Key(_ Canvas, ev key.Event) Result {
	r, _ := cancel(t, ev)
	return r
}

func (t *FreehandTool) Active() bool { return t.down }

func (t *FreehandTool) Reset() { t.stroke = stroke{} }

// EraserTool blanks a square brush of Size under the pointer.
type EraserTool struct {
	stroke
	Size int
}

func (t *EraserTool) size() int { return max(t.Size, 1) }

func (t *EraserTool) Kind() Kind { return Eraser }

func (t *EraserTool) PointerDown(c Canvas, p grid.Point) Result {
	if !t.begin(c, p) {
		return Result{}
	}
	return Result{Committed: raster.Square(p, t.size(), grid.Blank), Modified: true}
}

func (t *EraserTool) PointerMove(c Canvas, p grid.Point) Result {
	prev, ok := t.advance(c, p)
	if !ok {
		return Result{}
	}
	return Result{Committed: raster.Brush(prev, t.last, t.size(), grid.Blank), Modified: true}
}

func (t *EraserTool) PointerUp(c Canvas, p grid.Point) Result {
	res := t.PointerMove(c, p)
	t.Reset()
	return res
}

func (t *EraserTool) Key(_ Canvas, ev key.Event) Result {
	r, _ := cancel(t, ev)
	return r
}

func (t *EraserTool) Active() bool { return t.down }

func (t *EraserTool) Reset() { t.stroke = stroke{} }
