package renderer

import (
	"github.com/dshills/gridsketch/internal/grid"
	"github.com/dshills/gridsketch/internal/renderer/core"
)

// CommandKind identifies a render command variant.
type CommandKind uint8

const (
	KindClear CommandKind = iota
	KindSetFont
	KindDrawChar
	KindDrawRect
	KindDrawGrid
	KindOverlay
)

// String returns the command name.
func (k CommandKind) String() string {
	switch k {
	case KindClear:
		return "clear"
	case KindSetFont:
		return "set-font"
	case KindDrawChar:
		return "draw-char"
	case KindDrawRect:
		return "draw-rect"
	case KindDrawGrid:
		return "draw-grid"
	case KindOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// Command is one render instruction. The set of variants is closed.
type Command interface {
	Kind() CommandKind
}

// Clear fills the whole surface with Color.
type Clear struct {
	Color core.Color
}

// SetFont selects the font for subsequent characters.
type SetFont struct {
	Family string
	Size   float64
	Scale  float64
}

// DrawChar draws Ch with its baseline at (X, Y). Cell is the grid cell the
// character belongs to.
type DrawChar struct {
	X, Y  float64
	Cell  grid.Point
	Ch    rune
	Scale float64
	Color core.Color
}

// RectRole says what a DrawRect is for.
type RectRole uint8

const (
	// RectBackground erases cells before they are redrawn.
	RectBackground RectRole = iota
	// RectSelection highlights the selected cells.
	RectSelection
)

// DrawRect fills a pixel rectangle covering Cells.
type DrawRect struct {
	X, Y          float64
	Width, Height float64
	Cells         grid.Rect
	Color         core.Color
	Role          RectRole
}

// DrawGrid draws cell boundary lines over the grid area.
type DrawGrid struct {
	X, Y                  float64
	Width, Height         float64
	CellWidth, CellHeight float64
	Color                 core.Color
}

// Overlay draws uncommitted tool output above the committed content.
type Overlay struct {
	Chars []DrawChar
	Color core.Color
}

func (Clear) Kind() CommandKind    { return KindClear }
func (SetFont) Kind() CommandKind  { return KindSetFont }
func (DrawChar) Kind() CommandKind { return KindDrawChar }
func (DrawRect) Kind() CommandKind { return KindDrawRect }
func (DrawGrid) Kind() CommandKind { return KindDrawGrid }
func (Overlay) Kind() CommandKind  { return KindOverlay }
