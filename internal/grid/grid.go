package grid

import "strings"

// Grid is a fixed-size rectangle of single-glyph cells stored row-major.
// The zero value is not usable; create grids with New.
type Grid struct {
	width  int
	height int
	cells  []rune
}

// New creates a blank grid. Dimensions below one are raised to one.
func New(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// FromLines builds a grid sized to fit lines, padding short rows with
// Blank. It is mostly useful for tests and fixtures.
func FromLines(lines ...string) *Grid {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	g := New(w, len(lines))
	for y, l := range lines {
		for x, r := range []rune(l) {
			g.Set(x, y, r)
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Bounds returns the rect covering every cell.
func (g *Grid) Bounds() Rect {
	return Rect{Width: g.width, Height: g.height}
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the glyph at (x, y). The second result is false when the
// coordinate is outside the grid.
func (g *Grid) Get(x, y int) (rune, bool) {
	if !g.InBounds(x, y) {
		return Blank, false
	}
	return g.cells[y*g.width+x], true
}

// At returns the glyph at (x, y), or Blank outside the grid.
func (g *Grid) At(x, y int) rune {
	r, _ := g.Get(x, y)
	return r
}

// Set writes ch at (x, y) and returns the glyph it replaced. Outside the
// grid nothing changes and Blank is returned. Glyphs that cannot occupy a
// single cell are stored as Blank.
func (g *Grid) Set(x, y int, ch rune) rune {
	if !g.InBounds(x, y) {
		return Blank
	}
	i := y*g.width + x
	prev := g.cells[i]
	g.cells[i] = Sanitize(ch)
	return prev
}

// Apply writes every op in order.
func (g *Grid) Apply(ops []DrawOp) {
	for _, op := range ops {
		g.Set(op.X, op.Y, op.Ch)
	}
}

// Fill writes ch into every cell of r that lies inside the grid.
func (g *Grid) Fill(r Rect, ch rune) {
	r = r.Intersect(g.Bounds())
	ch = Sanitize(ch)
	for y := r.Y; y < r.Bottom(); y++ {
		row := g.cells[y*g.width : (y+1)*g.width]
		for x := r.X; x < r.Right(); x++ {
			row[x] = ch
		}
	}
}

// Clear resets every cell to Blank.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Blank
	}
}

// Resize replaces the grid with a blank one of the new size. Existing
// content is discarded, not cropped.
func (g *Grid) Resize(width, height int) {
	g.width = max(width, 1)
	g.height = max(height, 1)
	g.cells = make([]rune, g.width*g.height)
	g.Clear()
}

// IsBlank reports whether every cell is Blank.
func (g *Grid) IsBlank() bool {
	for _, r := range g.cells {
		if r != Blank {
			return false
		}
	}
	return true
}

// Row returns row y as a string, untrimmed. Out of range rows are empty.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	return string(g.cells[y*g.width : (y+1)*g.width])
}

// Lines returns every row, untrimmed.
func (g *Grid) Lines() []string {
	lines := make([]string, g.height)
	for y := range lines {
		lines[y] = g.Row(y)
	}
	return lines
}

// String renders the grid with rows separated by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]rune, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether o has the same size and content.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
