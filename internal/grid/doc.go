// Package grid provides the character cell store at the center of the editor.
//
// A Grid is a fixed-size rectangle of cells, each holding exactly one
// single-width glyph. Blank (a space) is the empty value; there is no
// separate "unset" state.
//
// Every accessor is total. Coordinates outside the grid read as absent and
// writes to them are ignored, so callers such as rasterizers and tools never
// need to clip their output:
//
//	g := grid.New(80, 24)
//	prev := g.Set(3, 2, '─') // prev == grid.Blank
//	g.Set(-1, 0, 'x')        // no-op
//	ch, ok := g.Get(3, 2)    // '─', true
//
// # Draw operations
//
// DrawOp is the vocabulary shared by rasterizers, tools, commands and the
// renderer. Lists of ops are applied in order, so a later op at the same
// coordinate wins.
package grid
