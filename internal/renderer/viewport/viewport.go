// Package viewport maps between screen pixels and grid cells under a zoom
// factor and a pan offset.
package viewport

import (
	"math"

	"github.com/dshills/gridsketch/internal/grid"
)

// Zoom limits.
const (
	MinZoom     = 0.3
	MaxZoom     = 4.0
	DefaultZoom = 1.0
)

// Metrics describes the unzoomed size of one grid cell in pixels.
type Metrics struct {
	CellWidth  float64
	LineHeight float64
	// Baseline is the offset from the top of a cell to the text baseline.
	Baseline float64
}

// DefaultMetrics returns the metrics of a 14px monospace font.
func DefaultMetrics() Metrics {
	return Metrics{CellWidth: 8.4, LineHeight: 20, Baseline: 12}
}

func (m Metrics) valid() bool {
	return m.CellWidth > 0 && m.LineHeight > 0 && finite(m.CellWidth, m.LineHeight, m.Baseline)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Viewport is the zoom and pan state of the canvas view. Pan is in
// screen pixels and is applied before zoom.
type Viewport struct {
	zoom    float64
	panX    float64
	panY    float64
	metrics Metrics
}

// New creates a viewport at default zoom with no pan.
// Invalid metrics fall back to DefaultMetrics.
func New(m Metrics) *Viewport {
	if !m.valid() {
		m = DefaultMetrics()
	}
	return &Viewport{zoom: DefaultZoom, metrics: m}
}

// Metrics returns the unzoomed cell metrics.
func (v *Viewport) Metrics() Metrics { return v.metrics }

// SetMetrics replaces the cell metrics. Invalid metrics are ignored.
func (v *Viewport) SetMetrics(m Metrics) bool {
	if !m.valid() || m == v.metrics {
		return false
	}
	v.metrics = m
	return true
}

// Zoom returns the current zoom factor.
func (v *Viewport) Zoom() float64 { return v.zoom }

// SetZoom sets the zoom factor clamped to [MinZoom, MaxZoom] and reports
// whether it changed.
func (v *Viewport) SetZoom(z float64) bool {
	if math.IsNaN(z) {
		return false
	}
	z = min(max(z, MinZoom), MaxZoom)
	if z == v.zoom {
		return false
	}
	v.zoom = z
	return true
}

// ZoomAt multiplies the zoom by factor keeping the canvas point under
// screen position (sx, sy) fixed. Non-finite arguments are ignored.
func (v *Viewport) ZoomAt(factor, sx, sy float64) bool {
	if factor <= 0 || !finite(factor, sx, sy) {
		return false
	}
	old := v.zoom
	// Canvas coordinates of the anchor before the change.
	cx := (sx - v.panX) / old
	cy := (sy - v.panY) / old
	if !v.SetZoom(old * factor) {
		return false
	}
	px, py := sx-cx*v.zoom, sy-cy*v.zoom
	if !finite(px, py) {
		v.zoom = old
		return false
	}
	v.panX, v.panY = px, py
	return true
}

// Pan returns the pan offset in pixels.
func (v *Viewport) Pan() (x, y float64) { return v.panX, v.panY }

// SetPan sets the pan offset. Pan is unconstrained apart from having to
// be finite; other values are ignored.
func (v *Viewport) SetPan(x, y float64) {
	if finite(x, y) {
		v.panX, v.panY = x, y
	}
}

// PanBy moves the view by (dx, dy) pixels and reports whether the pan
// changed. A move that would leave the pan non-finite is ignored.
func (v *Viewport) PanBy(dx, dy float64) bool {
	x, y := v.panX+dx, v.panY+dy
	if !finite(x, y) || (x == v.panX && y == v.panY) {
		return false
	}
	v.panX, v.panY = x, y
	return true
}

// PanCells moves the view by whole cells at the current zoom.
func (v *Viewport) PanCells(dx, dy int) {
	w, h := v.CellSize()
	v.PanBy(float64(dx)*w, float64(dy)*h)
}

// Reset restores default zoom and removes any pan.
func (v *Viewport) Reset() bool {
	changed := v.zoom != DefaultZoom || v.panX != 0 || v.panY != 0
	v.zoom = DefaultZoom
	v.panX, v.panY = 0, 0
	return changed
}

// CellSize returns the on-screen size of one cell at the current zoom.
func (v *Viewport) CellSize() (w, h float64) {
	return v.metrics.CellWidth * v.zoom, v.metrics.LineHeight * v.zoom
}

// ScreenToGrid returns the cell under screen position (sx, sy). The result
// may lie outside the grid.
func (v *Viewport) ScreenToGrid(sx, sy float64) grid.Point {
	x := math.Floor((sx - v.panX) / v.zoom / v.metrics.CellWidth)
	y := math.Floor((sy - v.panY) / v.zoom / v.metrics.LineHeight)
	return grid.Pt(int(x), int(y))
}

// GridToScreen returns the screen position of the top-left corner of
// cell (gx, gy).
func (v *Viewport) GridToScreen(gx, gy int) (sx, sy float64) {
	sx = float64(gx)*v.metrics.CellWidth*v.zoom + v.panX
	sy = float64(gy)*v.metrics.LineHeight*v.zoom + v.panY
	return sx, sy
}

// Baseline returns the screen y of the text baseline of row gy.
func (v *Viewport) Baseline(gy int) float64 {
	_, sy := v.GridToScreen(0, gy)
	return sy + v.metrics.Baseline*v.zoom
}

// Visible returns the cells at least partly inside a screen of the given
// pixel size, clipped to bounds.
func (v *Viewport) Visible(screenW, screenH float64, bounds grid.Rect) grid.Rect {
	tl := v.ScreenToGrid(0, 0)
	br := v.ScreenToGrid(math.Nextafter(screenW, 0), math.Nextafter(screenH, 0))
	return grid.RectFromPoints(tl, br).Intersect(bounds)
}
