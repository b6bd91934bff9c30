package tool

import (
	"strings"

	"github.com/dshills/gridsketch/internal/grid"
	"github.com/dshills/gridsketch/internal/input/key"
)

// Result is the output of a tool after handling one event.
type Result struct {
	Committed []grid.DrawOp
	Preview   []grid.DrawOp
	// Modified is false when the event changed nothing visible and the
	// host can skip redrawing.
	Modified bool
}

// Canvas is the read-only view of the grid a tool works against.
type Canvas interface {
	Get(x, y int) (rune, bool)
	Width() int
	Height() int
}

// Tool is the capability set shared by every tool kind.
type Tool interface {
	Kind() Kind
	PointerDown(c Canvas, p grid.Point) Result
	PointerMove(c Canvas, p grid.Point) Result
	PointerUp(c Canvas, p grid.Point) Result
	Key(c Canvas, ev key.Event) Result
	// Active reports whether switching away now would discard
	// uncommitted user intent.
	Active() bool
	// Reset returns the tool to its idle state.
	Reset()
}

// Kind identifies a tool.
type Kind uint8

// Tool kinds.
const (
	Select Kind = iota
	Rectangle
	Line
	Arrow
	Diamond
	Text
	Freehand
	Eraser
)

var kindNames = [...]string{
	Select:    "select",
	Rectangle: "rectangle",
	Line:      "line",
	Arrow:     "arrow",
	Diamond:   "diamond",
	Text:      "text",
	Freehand:  "freehand",
	Eraser:    "eraser",
}

// String returns the lower-case tool name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds lists every tool kind in declaration order.
func Kinds() []Kind {
	return []Kind{Select, Rectangle, Line, Arrow, Diamond, Text, Freehand, Eraser}
}

// ParseKind maps a tool name (case-insensitive) to its Kind.
// "rect" is accepted for Rectangle. Unknown names return false.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "rect" {
		return Rectangle, true
	}
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return Select, false
}

// clamp moves p onto the nearest cell of c.
func clamp(c Canvas, p grid.Point) grid.Point {
	return grid.Pt(
		min(max(p.X, 0), c.Width()-1),
		min(max(p.Y, 0), c.Height()-1),
	)
}

func inside(c Canvas, p grid.Point) bool {
	return p.X >= 0 && p.X < c.Width() && p.Y >= 0 && p.Y < c.Height()
}

// cancel resets t when ev is Escape. The second result reports whether
// ev was Escape.
func cancel(t Tool, ev key.Event) (Result, bool) {
	if !ev.Is(key.KeyEscape) {
		return Result{}, false
	}
	wasActive := t.Active()
	t.Reset()
	return Result{Modified: wasActive}, true
}
