// Package clipboard holds a copied block of cells independently of the
// grid it came from.
package clipboard

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/gridsketch/internal/grid"
)

// Source is the read access a capture needs.
type Source interface {
	Get(x, y int) (rune, bool)
}

// Cell is one captured glyph, positioned relative to the top-left corner
// of the captured block.
type Cell struct {
	DX, DY int
	Ch     rune
}

// Clipboard is a snapshot of a rectangular block of cells.
// The zero value is an empty clipboard.
type Clipboard struct {
	cells  []Cell
	width  int
	height int
}

// New returns an empty clipboard.
func New() *Clipboard {
	return &Clipboard{}
}

// Capture replaces the clipboard contents with the cells of r read from
// src. Cells outside the source are skipped. It returns false, leaving
// the clipboard untouched, when r is empty.
func (c *Clipboard) Capture(src Source, r grid.Rect) bool {
	if r.Empty() {
		return false
	}
	cells := make([]Cell, 0, r.Width*r.Height)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			ch, ok := src.Get(x, y)
			if !ok {
				continue
			}
			cells = append(cells, Cell{DX: x - r.X, DY: y - r.Y, Ch: ch})
		}
	}
	c.cells = cells
	c.width = r.Width
	c.height = r.Height
	return true
}

// SetText replaces the clipboard contents with a block built from text,
// one row per line. Each grapheme cluster becomes one cell; clusters that
// cannot occupy a single cell become Blank.
func (c *Clipboard) SetText(text string) bool {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return false
	}

	var cells []Cell
	width := 0
	lines := strings.Split(text, "\n")
	for dy, line := range lines {
		dx := 0
		state := -1
		var cluster string
		for len(line) > 0 {
			cluster, line, _, state = uniseg.FirstGraphemeClusterInString(line, state)
			cells = append(cells, Cell{DX: dx, DY: dy, Ch: clusterGlyph(cluster)})
			dx++
		}
		width = max(width, dx)
	}
	if width == 0 {
		return false
	}

	c.cells = cells
	c.width = width
	c.height = len(lines)
	return true
}

// clusterGlyph reduces a grapheme cluster to a single-cell glyph.
func clusterGlyph(cluster string) rune {
	runes := []rune(cluster)
	if len(runes) != 1 {
		return grid.Blank
	}
	return grid.Sanitize(runes[0])
}

// Empty reports whether nothing has been captured.
func (c *Clipboard) Empty() bool {
	return len(c.cells) == 0
}

// Size returns the width and height of the captured block.
func (c *Clipboard) Size() (width, height int) {
	return c.width, c.height
}

// Cells returns a copy of the captured cells.
func (c *Clipboard) Cells() []Cell {
	return append([]Cell(nil), c.cells...)
}

// Ops returns draw ops that reproduce the captured block with its
// top-left corner at p.
func (c *Clipboard) Ops(p grid.Point) []grid.DrawOp {
	ops := make([]grid.DrawOp, len(c.cells))
	for i, cell := range c.cells {
		ops[i] = grid.Op(p.X+cell.DX, p.Y+cell.DY, cell.Ch)
	}
	return ops
}

// Text renders the block as lines with trailing blanks removed.
func (c *Clipboard) Text() string {
	if c.Empty() {
		return ""
	}
	rows := make([][]rune, c.height)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(string(grid.Blank), c.width))
	}
	for _, cell := range c.cells {
		rows[cell.DY][cell.DX] = cell.Ch
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.TrimRight(string(row), string(grid.Blank))
	}
	return strings.Join(lines, "\n")
}

// Clear empties the clipboard.
func (c *Clipboard) Clear() {
	c.cells = nil
	c.width = 0
	c.height = 0
}
