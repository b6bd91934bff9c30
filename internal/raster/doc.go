// Package raster turns shape parameters into cell writes.
//
// Every function here is pure: it takes grid coordinates and returns a
// []grid.DrawOp without touching a grid. Coordinates are not clipped; the
// grid ignores writes that fall outside it.
//
// Lines use Bresenham stepping. Rectangles and diamonds take their glyphs
// from one of six border styles, and degenerate shapes (a single row,
// column or cell) still produce a visible mark.
package raster
