package script

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gridsketch/internal/export"
	"github.com/dshills/gridsketch/internal/grid"
	"github.com/dshills/gridsketch/internal/raster"
)

// register installs the drawing functions as globals.
func (r *Runner) register(L *lua.LState) {
	funcs := map[string]lua.LGFunction{
		"rect":    r.rect,
		"diamond": r.diamond,
		"line":    r.line,
		"arrow":   r.arrow,
		"text":    r.text,
		"set":     r.set,
		"get":     r.get,
		"erase":   r.erase,
		"clear":   r.clear,
		"undo":    r.undo,
		"redo":    r.redo,
		"size":    r.size,
		"export":  r.export,
		"print":   r.print,
	}
	for name, fn := range funcs {
		L.SetGlobal(name, L.NewFunction(fn))
	}
}

func checkPoint(L *lua.LState, n int) grid.Point {
	return grid.Pt(L.CheckInt(n), L.CheckInt(n+1))
}

// point reads a cell argument for a shape. Shapes are rasterized before
// they are clipped to the grid, so corners are limited to a margin of
// width plus height around it.
func (r *Runner) point(L *lua.LState, n int) grid.Point {
	p := checkPoint(L, n)
	w, h := r.grid.Width(), r.grid.Height()
	reach := w + h
	if p.X < -reach || p.X >= w+reach {
		L.ArgError(n, fmt.Sprintf("x = %d is too far outside the %dx%d grid", p.X, w, h))
	}
	if p.Y < -reach || p.Y >= h+reach {
		L.ArgError(n+1, fmt.Sprintf("y = %d is too far outside the %dx%d grid", p.Y, w, h))
	}
	return p
}

func (r *Runner) borderStyle(L *lua.LState, n int) raster.BorderStyle {
	if L.GetTop() < n {
		return r.opts.BorderStyle
	}
	name := L.CheckString(n)
	st, ok := raster.ParseBorderStyle(name)
	if !ok {
		L.ArgError(n, fmt.Sprintf("unknown border style %q", name))
	}
	return st
}

func (r *Runner) direction(L *lua.LState, n int) raster.Direction {
	if L.GetTop() < n {
		return r.opts.LineDirection
	}
	name := L.CheckString(n)
	d, ok := raster.ParseDirection(name)
	if !ok {
		L.ArgError(n, fmt.Sprintf("unknown direction %q", name))
	}
	return d
}

// checkGlyph reads a one-character string argument.
func checkGlyph(L *lua.LState, n int) rune {
	s := L.CheckString(n)
	rs := []rune(s)
	if len(rs) != 1 {
		L.ArgError(n, fmt.Sprintf("want one character, got %q", s))
	}
	return rs[0]
}

// rect(x1, y1, x2, y2 [, style])
func (r *Runner) rect(L *lua.LState) int {
	a, b := r.point(L, 1), r.point(L, 3)
	r.commit("rectangle", raster.Rectangle(a, b, r.borderStyle(L, 5)))
	return 0
}

// diamond(x1, y1, x2, y2 [, style])
func (r *Runner) diamond(L *lua.LState) int {
	a, b := r.point(L, 1), r.point(L, 3)
	r.commit("diamond", raster.Diamond(a, b, r.borderStyle(L, 5)))
	return 0
}

// line(x1, y1, x2, y2 [, direction])
func (r *Runner) line(L *lua.LState) int {
	a, b := r.point(L, 1), r.point(L, 3)
	r.commit("line", raster.Line(a, b, r.direction(L, 5)))
	return 0
}

// arrow(x1, y1, x2, y2 [, direction])
func (r *Runner) arrow(L *lua.LState) int {
	a, b := r.point(L, 1), r.point(L, 3)
	r.commit("arrow", raster.Arrow(a, b, r.direction(L, 5)))
	return 0
}

// text(x, y, s) writes s one grapheme per cell. A newline returns to
// column x on the next row; text past the right edge is dropped.
func (r *Runner) text(L *lua.LState) int {
	p := r.point(L, 1)
	s := L.CheckString(3)

	var ops []grid.DrawOp
	x, y := p.X, p.Y
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		rs := g.Runes()
		switch {
		case len(rs) == 1 && rs[0] == '\n':
			x, y = p.X, y+1
			continue
		case len(rs) == 1:
			ops = append(ops, grid.Op(x, y, rs[0]))
		default:
			ops = append(ops, grid.Op(x, y, grid.Blank))
		}
		x++
	}
	r.commit("text", ops)
	return 0
}

// set(x, y, ch)
func (r *Runner) set(L *lua.LState) int {
	p := checkPoint(L, 1)
	r.commit("set", []grid.DrawOp{grid.Op(p.X, p.Y, checkGlyph(L, 3))})
	return 0
}

// get(x, y) -> ch, or nil outside the grid
func (r *Runner) get(L *lua.LState) int {
	p := checkPoint(L, 1)
	ch, ok := r.grid.Get(p.X, p.Y)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(string(ch)))
	return 1
}

// erase(x1, y1, x2, y2) blanks the rectangle between the two corners.
func (r *Runner) erase(L *lua.LState) int {
	rect := grid.RectFromPoints(checkPoint(L, 1), checkPoint(L, 3)).Intersect(r.grid.Bounds())
	var ops []grid.DrawOp
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			ops = append(ops, grid.Op(x, y, grid.Blank))
		}
	}
	r.commit("erase", ops)
	return 0
}

// clear() blanks the whole grid as one undoable step.
func (r *Runner) clear(L *lua.LState) int {
	var ops []grid.DrawOp
	for y := 0; y < r.grid.Height(); y++ {
		for x := 0; x < r.grid.Width(); x++ {
			if r.grid.At(x, y) != grid.Blank {
				ops = append(ops, grid.Op(x, y, grid.Blank))
			}
		}
	}
	r.commit("clear", ops)
	return 0
}

// undo() -> bool
func (r *Runner) undo(L *lua.LState) int {
	if r.opts.Group {
		L.RaiseError("%v", ErrUndoInGroup)
		return 0
	}
	_, ok := r.history.Undo(r.grid)
	L.Push(lua.LBool(ok))
	return 1
}

// redo() -> bool
func (r *Runner) redo(L *lua.LState) int {
	if r.opts.Group {
		L.RaiseError("%v", ErrUndoInGroup)
		return 0
	}
	_, ok := r.history.Redo(r.grid)
	L.Push(lua.LBool(ok))
	return 1
}

// size() -> width, height
func (r *Runner) size(L *lua.LState) int {
	L.Push(lua.LNumber(r.grid.Width()))
	L.Push(lua.LNumber(r.grid.Height()))
	return 2
}

// export([trim_leading]) -> string
func (r *Runner) export(L *lua.LState) int {
	opts := export.Options{TrimLeading: L.OptBool(1, false)}
	L.Push(lua.LString(export.ASCII(r.grid, opts)))
	return 1
}

// print(...) joins its arguments with tabs like the stock print.
func (r *Runner) print(L *lua.LState) int {
	parts := make([]string, L.GetTop())
	for i := range parts {
		parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	line := strings.Join(parts, "\t")
	switch {
	case r.opts.Output != nil:
		fmt.Fprintln(r.opts.Output, line)
	case r.opts.Logger != nil:
		r.opts.Logger.Info("lua: %s", line)
	}
	return 0
}
