package tool

import (
	"github.com/dshills/gridsketch/internal/grid"
	"github.com/dshills/gridsketch/internal/input/key"
	"github.com/dshills/gridsketch/internal/raster"
)

// drag is the state shared by the two-point shape tools: the pointer went
// down at start and is currently at end.
type drag struct {
	start  grid.Point
	end    grid.Point
	active bool
}

func (d *drag) down(c Canvas, p grid.Point, shape func(a, b grid.Point) []grid.DrawOp) Result {
	p = clamp(c, p)
	d.start, d.end, d.active = p, p, true
	return Result{Preview: shape(p, p), Modified: true}
}

func (d *drag) move(c Canvas, p grid.Point, shape func(a, b grid.Point) []grid.DrawOp) Result {
	if !d.active {
		return Result{}
	}
	p = clamp(c, p)
	if p == d.end {
		return Result{Preview: shape(d.start, d.end)}
	}
	d.end = p
	return Result{Preview: shape(d.start, d.end), Modified: true}
}

func (d *drag) up(c Canvas, p grid.Point, shape func(a, b grid.Point) []grid.DrawOp) Result {
	if !d.active {
		return Result{}
	}
	ops := shape(d.start, clamp(c, p))
	d.reset()
	return Result{Committed: ops, Modified: true}
}

func (d *drag) reset() {
	*d = drag{}
}

// RectangleTool draws box outlines.
type RectangleTool struct {
	drag
	Style raster.BorderStyle
}

func (t *RectangleTool) shape(a, b grid.Point) []grid.DrawOp {
	return raster.Rectangle(a, b, t.Style)
}

func (t *RectangleTool) Kind() Kind { return Rectangle }

func (t *RectangleTool) PointerDown(c Canvas, p grid.Point) Result { return t.down(c, p, t.shape) }

func (t *RectangleTool) PointerMove(c Canvas, p grid.Point) Result { return t.move(c, p, t.shape) }

func (t *RectangleTool) PointerUp(c Canvas, p grid.Point) Result { return t.up(c, p, t.shape) }

func (t *RectangleTool) Key(_ Canvas, ev key.Event) Result {
	r, _ := cancel(t, ev)
	return r
}

func (t *RectangleTool) Active() bool { return t.active }

func (t *RectangleTool) Reset() { t.reset() }

// DiamondTool draws diamond outlines inscribed in the dragged box.
type DiamondTool struct {
	drag
	Style raster.BorderStyle
}

func (t *DiamondTool) shape(a, b grid.Point) []grid.DrawOp {
	return raster.Diamond(a, b, t.Style)
}

func (t *DiamondTool) Kind() Kind { return Diamond }

func (t *DiamondTool) PointerDown(c Canvas, p grid.Point) Result { return t.down(c, p, t.shape) }

func (t *DiamondTool) PointerMove(c Canvas, p grid.Point) Result { return t.move(c, p, t.shape) }

func (t *DiamondTool) PointerUp(c Canvas, p grid.Point) Result { return t.up(c, p, t.shape) }

func (t *DiamondTool) Key(_ Canvas, ev key.Event) Result {
	r, _ := cancel(t, ev)
	return r
}

func (t *DiamondTool) Active() bool { return t.active }

func (t *DiamondTool) Reset() { t.reset() }

// LineTool draws straight lines.
type LineTool struct {
	drag
	Direction raster.Direction
}

// SetDirection changes the direction constraint. A drag in progress picks
// it up on the next pointer event.
func (t *LineTool) SetDirection(d raster.Direction) { t.Direction = d }

func (t *LineTool) shape(a, b grid.Point) []grid.DrawOp {
	return raster.Line(a, b, t.Direction)
}

func (t *LineTool) Kind() Kind { return Line }

func (t *LineTool) PointerDown(c Canvas, p grid.Point) Result { return t.down(c, p, t.shape) }

func (t *LineTool) PointerMove(c Canvas, p grid.Point) Result { return t.move(c, p, t.shape) }

func (t *LineTool) PointerUp(c Canvas, p grid.Point) Result { return t.up(c, p, t.shape) }

func (t *LineTool) Key(_ Canvas, ev key.Event) Result {
	r, _ := cancel(t, ev)
	return r
}

func (t *LineTool) Active() bool { return t.active }

func (t *LineTool) Reset() { t.reset() }

// ArrowTool draws lines ending in an arrowhead.
type ArrowTool struct {
	drag
	Direction raster.Direction
}

// SetDirection changes the direction constraint.
func (t *ArrowTool) SetDirection(d raster.Direction) { t.Direction = d }

func (t *ArrowTool) shape(a, b grid.Point) []grid.DrawOp {
	return raster.Arrow(a, b, t.Direction)
}

func (t *ArrowTool) Kind() Kind { return Arrow }

func (t *ArrowTool) PointerDown(c Canvas, p grid.Point) Result { return t.down(c, p, t.shape) }

func (t *ArrowTool) PointerMove(c Canvas, p grid.Point) Result { return t.move(c, p, t.shape) }

func (t *ArrowTool) PointerUp(c Canvas, p grid.Point) Result { return t.up(c, p, t.shape) }

func (t *ArrowTool) Key(_ Canvas, ev key.Event) Result {
	r, _ := cancel(t, ev)
	return r
}

func (t *ArrowTool) Active() bool { return t.active }

func (t *ArrowTool) Reset() { t.reset() }
