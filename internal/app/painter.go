package app

import (
	"math"

	"github.com/dshills/gridsketch/internal/grid"
	"github.com/dshills/gridsketch/internal/renderer"
	"github.com/dshills/gridsketch/internal/renderer/backend"
	"github.com/dshills/gridsketch/internal/renderer/core"
	"github.com/dshills/gridsketch/internal/renderer/viewport"
)

// gridDot marks blank cells while grid lines are shown. A terminal cell
// has no room for boundary lines.
const gridDot = '·'

// painter draws render commands onto terminal cells. One terminal cell is
// one unzoomed grid cell: pixel (px, py) lands in column px/CellWidth and
// row py/LineHeight. A cell is covered by a rectangle when its center is.
type painter struct {
	backend backend.Backend
	metrics viewport.Metrics
	palette renderer.Palette

	// canvas is the part of the screen commands may touch.
	canvas core.ScreenRect
	// extent is the part of canvas covered by the grid.
	extent core.ScreenRect

	// lines is the grid of the last full frame, nil when hidden.
	lines *renderer.DrawGrid
}

func newPainter(b backend.Backend) *painter {
	return &painter{backend: b, metrics: viewport.DefaultMetrics(), palette: renderer.DefaultPalette()}
}

// frame sets up the geometry for the next commands.
func (p *painter) frame(vp *viewport.Viewport, gridW, gridH int, palette renderer.Palette, canvas core.ScreenRect) {
	p.metrics = vp.Metrics()
	p.palette = palette
	p.canvas = canvas

	x0, y0 := vp.GridToScreen(0, 0)
	x1, y1 := vp.GridToScreen(gridW, gridH)
	p.extent = clip(p.cover(x0, y0, x1-x0, y1-y0), canvas)
}

// paint draws cmds in order and returns how many were drawn.
func (p *painter) paint(cmds []renderer.Command) int {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case renderer.Clear:
			p.clear(c)
		case renderer.DrawGrid:
			p.drawGrid(c)
		case renderer.DrawRect:
			p.drawRect(c)
		case renderer.DrawChar:
			p.drawChar(c, core.DefaultStyle().WithForeground(c.Color).WithBackground(p.palette.Background))
		case renderer.Overlay:
			p.overlay(c)
		case renderer.SetFont:
			// Terminal cells have a fixed font.
		}
	}
	return len(cmds)
}

// cellAt returns the terminal cell containing pixel (px, py).
func (p *painter) cellAt(px, py float64) (col, row int) {
	return int(math.Floor(px / p.metrics.CellWidth)), int(math.Floor(py / p.metrics.LineHeight))
}

// center returns the pixel at the middle of terminal cell (col, row).
func (p *painter) center(col, row int) (px, py float64) {
	return (float64(col) + 0.5) * p.metrics.CellWidth, (float64(row) + 0.5) * p.metrics.LineHeight
}

// cover returns the terminal cells whose centers lie in the pixel rect.
func (p *painter) cover(x, y, w, h float64) core.ScreenRect {
	edge := func(v, size float64) int { return int(math.Ceil(v/size - 0.5)) }
	cw, lh := p.metrics.CellWidth, p.metrics.LineHeight
	return core.ScreenRect{
		Left:   edge(x, cw),
		Top:    edge(y, lh),
		Right:  edge(x+w, cw),
		Bottom: edge(y+h, lh),
	}
}

func clip(r, to core.ScreenRect) core.ScreenRect {
	r.Left = max(r.Left, to.Left)
	r.Top = max(r.Top, to.Top)
	r.Right = min(r.Right, to.Right)
	r.Bottom = min(r.Bottom, to.Bottom)
	if r.Right < r.Left {
		r.Right = r.Left
	}
	if r.Bottom < r.Top {
		r.Bottom = r.Top
	}
	return r
}

// blank returns an empty grid cell at (col, row).
func (p *painter) blank(col, row int) core.Cell {
	style := core.DefaultStyle().WithBackground(p.palette.Background)
	if p.lines != nil && p.extent.Contains(col, row) {
		return core.NewStyledCell(gridDot, style.WithForeground(p.lines.Color))
	}
	return core.NewStyledCell(' ', style)
}

// clear blanks the canvas. Cells outside the grid keep the terminal's
// own background so the canvas edge stays visible.
func (p *painter) clear(c renderer.Clear) {
	p.lines = nil
	p.backend.Fill(p.canvas, core.EmptyCell())
	p.backend.Fill(p.extent, core.NewStyledCell(' ', core.DefaultStyle().WithBackground(c.Color)))
}

func (p *painter) drawGrid(c renderer.DrawGrid) {
	p.lines = &c
	r := clip(p.cover(c.X, c.Y, c.Width, c.Height), p.extent)
	for row := r.Top; row < r.Bottom; row++ {
		for col := r.Left; col < r.Right; col++ {
			p.backend.SetCell(col, row, p.blank(col, row))
		}
	}
}

func (p *painter) drawRect(c renderer.DrawRect) {
	r := clip(p.cover(c.X, c.Y, c.Width, c.Height), p.canvas)
	for row := r.Top; row < r.Bottom; row++ {
		for col := r.Left; col < r.Right; col++ {
			switch c.Role {
			case renderer.RectSelection:
				cell := p.backend.GetCell(col, row)
				cell.Style = cell.Style.WithBackground(c.Color)
				p.backend.SetCell(col, row, cell)
			default:
				p.backend.SetCell(col, row, p.blank(col, row))
			}
		}
	}
}

// drawChar places ch in the terminal cell under the center of its grid
// cell.
func (p *painter) drawChar(c renderer.DrawChar, style core.Style) {
	scale := c.Scale
	if scale <= 0 {
		scale = 1
	}
	top := c.Y - p.metrics.Baseline*scale
	col, row := p.cellAt(c.X+p.metrics.CellWidth*scale/2, top+p.metrics.LineHeight*scale/2)
	if !p.canvas.Contains(col, row) {
		return
	}
	p.backend.SetCell(col, row, core.NewStyledCell(c.Ch, style))
}

// overlay draws preview chars in the preview color. Blank previews, such
// as the eraser's, tint the cell instead.
func (p *painter) overlay(o renderer.Overlay) {
	for _, c := range o.Chars {
		style := core.DefaultStyle().WithForeground(o.Color).WithBackground(p.palette.Background)
		if c.Ch == grid.Blank {
			style = style.WithBackground(o.Color)
		}
		p.drawChar(c, style)
	}
}

// screenCell returns the terminal cell showing grid cell (gx, gy).
func (p *painter) screenCell(vp *viewport.Viewport, gx, gy int) (col, row int) {
	sx, sy := vp.GridToScreen(gx, gy)
	cw, lh := vp.CellSize()
	return p.cellAt(sx+cw/2, sy+lh/2)
}
