package raster

import "github.com/dshills/gridsketch/internal/grid"

// DiamondPoint is drawn when a diamond collapses to a single cell.
const DiamondPoint = '◆'

// Rectangle rasterizes the border of the box spanned by corners a and b.
// The interior is left untouched. A single cell draws the top-left corner
// glyph, a single row a horizontal run and a single column a vertical run.
func Rectangle(a, b grid.Point, style BorderStyle) []grid.DrawOp {
	g := style.Glyphs()
	r := grid.RectFromPoints(a, b)
	x0, y0 := r.X, r.Y
	x1, y1 := r.Right()-1, r.Bottom()-1

	switch {
	case r.Width == 1 && r.Height == 1:
		return []grid.DrawOp{grid.Op(x0, y0, g.TopLeft)}
	case r.Height == 1:
		return hrun(x0, x1, y0, g.Horizontal)
	case r.Width == 1:
		return vrun(x0, y0, y1, g.Vertical)
	}

	ops := make([]grid.DrawOp, 0, 2*(r.Width+r.Height))
	ops = append(ops,
		grid.Op(x0, y0, g.TopLeft),
		grid.Op(x1, y0, g.TopRight),
		grid.Op(x0, y1, g.BottomLeft),
		grid.Op(x1, y1, g.BottomRight),
	)
	if r.Width > 2 {
		ops = append(ops, hrun(x0+1, x1-1, y0, g.Horizontal)...)
		ops = append(ops, hrun(x0+1, x1-1, y1, g.Horizontal)...)
	}
	if r.Height > 2 {
		ops = append(ops, vrun(x0, y0+1, y1-1, g.Vertical)...)
		ops = append(ops, vrun(x1, y0+1, y1-1, g.Vertical)...)
	}
	return ops
}

// Diamond rasterizes the outline of the diamond inscribed in the box
// spanned by a and b. Each row carries one glyph per side; the apex rows
// are one or two cells wide depending on the box width, and an odd-height
// box gets side vertices on its middle row.
func Diamond(a, b grid.Point, style BorderStyle) []grid.DrawOp {
	g := style.Glyphs()
	r := grid.RectFromPoints(a, b)
	x0, y0 := r.X, r.Y
	x1, y1 := r.Right()-1, r.Bottom()-1

	switch {
	case r.Width == 1 && r.Height == 1:
		return []grid.DrawOp{grid.Op(x0, y0, DiamondPoint)}
	case r.Height == 1:
		return hrun(x0, x1, y0, g.Horizontal)
	case r.Width == 1:
		return vrun(x0, y0, y1, g.Vertical)
	}

	lt := x0 + (r.Width-1)/2
	rt := x0 + r.Width/2
	half := r.Height / 2
	odd := r.Height%2 == 1

	// steps counts the rows between the apex and the widest row of a half.
	steps := half - 1
	if odd {
		steps = half
	}

	ops := make([]grid.DrawOp, 0, 2*r.Height)
	for k := 0; k < half; k++ {
		left, right := x0, x1
		if steps > 0 {
			left = lt - (k*(lt-x0)+steps/2)/steps
			right = rt + (k*(x1-rt)+steps/2)/steps
		}
		ops = appendSides(ops, left, right, y0+k, g.Rising, g.Falling, g.Vertex)
		ops = appendSides(ops, left, right, y1-k, g.Falling, g.Rising, g.Vertex)
	}
	if odd {
		ops = append(ops, grid.Op(x0, y0+half, g.Vertex), grid.Op(x1, y0+half, g.Vertex))
	}
	return ops
}

func appendSides(ops []grid.DrawOp, left, right, y int, lch, rch, vertex rune) []grid.DrawOp {
	if left == right {
		return append(ops, grid.Op(left, y, vertex))
	}
	return append(ops, grid.Op(left, y, lch), grid.Op(right, y, rch))
}

func hrun(x0, x1, y int, ch rune) []grid.DrawOp {
	ops := make([]grid.DrawOp, 0, x1-x0+1)
	for x := x0; x <= x1; x++ {
		ops = append(ops, grid.Op(x, y, ch))
	}
	return ops
}

func vrun(x, y0, y1 int, ch rune) []grid.DrawOp {
	ops := make([]grid.DrawOp, 0, y1-y0+1)
	for y := y0; y <= y1; y++ {
		ops = append(ops, grid.Op(x, y, ch))
	}
	return ops
}
