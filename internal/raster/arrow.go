package raster

import "github.com/dshills/gridsketch/internal/grid"

// Arrowhead glyphs.
const (
	HeadUp    = '▲'
	HeadDown  = '▼'
	HeadRight = '►'
	HeadLeft  = '◄'
	HeadDot   = '•'
)

// Arrow rasterizes a line from start to end and replaces its last cell
// with an arrowhead pointing in the dominant direction of travel.
func Arrow(start, end grid.Point, d Direction) []grid.DrawOp {
	end = Constrain(start, end, d)
	ops := Line(start, end, Auto)
	ops[len(ops)-1].Ch = Arrowhead(end.X-start.X, end.Y-start.Y)
	return ops
}

// Arrowhead returns the head glyph for a travel delta. Ties between the
// axes resolve to the horizontal heads; a zero delta yields a dot.
func Arrowhead(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return HeadDot
	case abs(dx) >= abs(dy):
		if dx > 0 {
			return HeadRight
		}
		return HeadLeft
	case dy > 0:
		return HeadDown
	default:
		return HeadUp
	}
}
