package grid

import "fmt"

// DrawOp is one intended cell write.
type DrawOp struct {
	X, Y int
	Ch   rune
}

// Op is shorthand for DrawOp{X: x, Y: y, Ch: ch}.
func Op(x, y int, ch rune) DrawOp {
	return DrawOp{X: x, Y: y, Ch: ch}
}

// At returns the op's coordinate.
func (o DrawOp) At() Point {
	return Point{X: o.X, Y: o.Y}
}

// Translate returns the op moved by d.
func (o DrawOp) Translate(d Point) DrawOp {
	o.X += d.X
	o.Y += d.Y
	return o
}

func (o DrawOp) String() string {
	return fmt.Sprintf("%q@(%d,%d)", o.Ch, o.X, o.Y)
}

// Bounds returns the smallest rect covering every op, or an empty rect.
func Bounds(ops []DrawOp) Rect {
	var r Rect
	for _, op := range ops {
		r = r.Union(Rect{X: op.X, Y: op.Y, Width: 1, Height: 1})
	}
	return r
}

// Dedup drops every op whose coordinate is written again later in the
// list. The result applies to the same grid state as the input.
func Dedup(ops []DrawOp) []DrawOp {
	if len(ops) < 2 {
		return ops
	}
	seen := make(map[Point]struct{}, len(ops))
	out := make([]DrawOp, 0, len(ops))
	for i := len(ops) - 1; i >= 0; i-- {
		p := ops[i].At()
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, ops[i])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
