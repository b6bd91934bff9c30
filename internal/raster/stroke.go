package raster

import "github.com/dshills/gridsketch/internal/grid"

// Segment returns ch written on every cell the pointer crossed moving from
// prev to cur. prev itself is excluded since the previous event already
// drew it, so a zero-length move yields nothing.
func Segment(prev, cur grid.Point, ch rune) []grid.DrawOp {
	if prev == cur {
		return nil
	}
	path := Path(prev, cur)[1:]
	ops := make([]grid.DrawOp, len(path))
	for i, p := range path {
		ops[i] = grid.Op(p.X, p.Y, ch)
	}
	return ops
}

// Square returns ch written over the square brush centered on c. A size of
// n covers (2n-1)×(2n-1) cells; sizes below one are treated as one.
func Square(c grid.Point, size int, ch rune) []grid.DrawOp {
	size = max(size, 1)
	r := size - 1
	ops := make([]grid.DrawOp, 0, (2*r+1)*(2*r+1))
	for y := c.Y - r; y <= c.Y+r; y++ {
		for x := c.X - r; x <= c.X+r; x++ {
			ops = append(ops, grid.Op(x, y, ch))
		}
	}
	return ops
}

// Brush returns the square brush stamped at every cell from prev to cur,
// excluding the stamp at prev, deduplicated.
func Brush(prev, cur grid.Point, size int, ch rune) []grid.DrawOp {
	if prev == cur {
		return nil
	}
	var ops []grid.DrawOp
	for _, p := range Path(prev, cur)[1:] {
		ops = append(ops, Square(p, size, ch)...)
	}
	return grid.Dedup(ops)
}
