package raster

import (
	"strings"

	"github.com/dshills/gridsketch/internal/grid"
)

// Line glyphs.
const (
	GlyphHorizontal = '─'
	GlyphVertical   = '│'
	GlyphFalling    = '\\'
	GlyphRising     = '/'
)

// Direction constrains how a line follows the pointer.
type Direction uint8

const (
	// Auto draws horizontal or vertical runs when the drag has no minor-axis
	// movement, and a diagonal otherwise.
	Auto Direction = iota
	// Horizontal keeps the line on the start row.
	Horizontal
	// Vertical keeps the line on the start column.
	Vertical
)

var directionNames = [...]string{
	Auto:       "auto",
	Horizontal: "horizontal",
	Vertical:   "vertical",
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// Directions returns every direction in cycling order.
func Directions() []Direction {
	return []Direction{Auto, Horizontal, Vertical}
}

// ParseDirection maps a direction name (case-insensitive) to a Direction.
// Unknown names return Auto and false.
func ParseDirection(name string) (Direction, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range directionNames {
		if n == name {
			return Direction(i), true
		}
	}
	return Auto, false
}

// Constrain returns the end point a line from start towards end actually
// reaches under d.
func Constrain(start, end grid.Point, d Direction) grid.Point {
	switch d {
	case Horizontal:
		return grid.Pt(end.X, start.Y)
	case Vertical:
		return grid.Pt(start.X, end.Y)
	default:
		return end
	}
}

// Line rasterizes a line from start to end, both inclusive.
func Line(start, end grid.Point, d Direction) []grid.DrawOp {
	end = Constrain(start, end, d)
	ch := lineGlyph(end.X-start.X, end.Y-start.Y)

	path := Path(start, end)
	ops := make([]grid.DrawOp, len(path))
	for i, p := range path {
		ops[i] = grid.Op(p.X, p.Y, ch)
	}
	return ops
}

// lineGlyph picks one glyph for the whole line from its overall delta.
func lineGlyph(dx, dy int) rune {
	switch {
	case dy == 0:
		return GlyphHorizontal
	case dx == 0:
		return GlyphVertical
	case (dx > 0) == (dy > 0):
		return GlyphFalling
	default:
		return GlyphRising
	}
}

// Path returns every cell on the Bresenham line from a to b, both ends
// included, in travel order. No cell appears twice.
func Path(a, b grid.Point) []grid.Point {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	pts := make([]grid.Point, 0, max(dx, dy)+1)
	err := dx - dy
	x, y := a.X, a.Y
	for {
		pts = append(pts, grid.Pt(x, y))
		if x == b.X && y == b.Y {
			return pts
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
