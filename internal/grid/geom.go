package grid

import "fmt"

// Point is a cell coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String returns "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned block of cells. X and Y locate the top-left
// cell; a Rect with zero Width or Height contains no cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// RectFromPoints returns the smallest rect containing both corners,
// inclusive of both, regardless of drag direction.
func RectFromPoints(a, b Point) Rect {
	x0, x1 := minMax(a.X, b.X)
	y0, y1 := minMax(a.Y, b.Y)
	return Rect{X: x0, Y: y0, Width: x1 - x0 + 1, Height: y1 - y0 + 1}
}

// Right returns the column just past the last column of the rect.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the row just past the last row of the rect.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rect contains no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Translate returns the rect moved by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Intersect returns the overlap of r and o, or an empty rect.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Union returns the smallest rect containing both r and o.
// An empty operand is ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	x1 := max(r.Right(), o.Right())
	y1 := max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// String returns "WxH@(x,y)".
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.Width, r.Height, r.X, r.Y)
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
