// Package dirty tracks which grid cells need repainting and coalesces
// them into a small set of rectangles.
package dirty

import "github.com/dshills/gridsketch/internal/grid"

// Region is a rectangle of grid cells that needs repainting.
type Region struct {
	grid.Rect
}

// CellRegion returns the region covering the single cell p.
func CellRegion(p grid.Point) Region {
	return Region{grid.Rect{X: p.X, Y: p.Y, Width: 1, Height: 1}}
}

// Area returns the number of cells in the region.
func (r Region) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Overlaps reports whether r and o share at least one cell.
func (r Region) Overlaps(o Region) bool {
	return !r.Intersect(o.Rect).Empty()
}

// Adjacent reports whether r and o touch along a full edge, so that
// their union is exactly a rectangle.
func (r Region) Adjacent(o Region) bool {
	sameRows := r.Y == o.Y && r.Height == o.Height
	sameCols := r.X == o.X && r.Width == o.Width
	switch {
	case sameRows:
		return r.Right() == o.X || o.Right() == r.X
	case sameCols:
		return r.Bottom() == o.Y || o.Bottom() == r.Y
	}
	return false
}

// Merge returns the bounding region of r and o when they overlap or are
// adjacent.
func (r Region) Merge(o Region) (Region, bool) {
	if !r.Overlaps(o) && !r.Adjacent(o) {
		return Region{}, false
	}
	return Region{r.Union(o.Rect)}, true
}

// Cells returns every cell of the region in row-major order.
func (r Region) Cells() []grid.Point {
	if r.Empty() {
		return nil
	}
	pts := make([]grid.Point, 0, r.Area())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			pts = append(pts, grid.Pt(x, y))
		}
	}
	return pts
}
