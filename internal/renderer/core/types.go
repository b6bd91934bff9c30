// Package core holds the color, style and cell types shared by the render
// emitter and the display backends.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Attribute is a set of text attributes.
type Attribute uint8

// Text attribute flags.
const (
	AttrNone Attribute = 0
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrUnderline
	AttrReverse
)

// Has returns true if the attribute set contains attr.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Color is a 24-bit color or the display's default color.
type Color struct {
	R, G, B uint8
	Default bool
}

// ColorDefault is the display's default color.
var ColorDefault = Color{Default: true}

// ColorFromRGB creates a color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex parses "#RGB" or "#RRGGBB"; the leading '#' is optional.
func ColorFromHex(hex string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("invalid hex color length: %q", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %q", hex)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustHex is ColorFromHex for constants; it panics on malformed input.
func MustHex(hex string) Color {
	c, err := ColorFromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// IsDefault returns true if this is the default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// String returns "#RRGGBB" or "default".
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Blend mixes c toward other by amount in [0, 1]. Default colors do not
// blend; the nearer operand wins.
func (c Color) Blend(other Color, amount float64) Color {
	amount = min(max(amount, 0), 1)
	if c.Default || other.Default {
		if amount < 0.5 {
			return c
		}
		return other
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-amount) + float64(b)*amount)
	}
	return Color{R: mix(c.R, other.R), G: mix(c.G, other.G), B: mix(c.B, other.B)}
}

// Style is the visual style of one cell.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the display's default style.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// WithForeground returns s with fg as its foreground.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns s with bg as its background.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Bold returns s with the bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Reverse returns s with reverse video added.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Cell is one display cell.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Style: DefaultStyle()}
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}

// ScreenRect is a rectangle of display cells.
type ScreenRect struct {
	Left, Top     int
	Right, Bottom int // exclusive
}

// Contains reports whether (x, y) lies inside r.
func (r ScreenRect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}
