package raster

import "strings"

// BorderStyle selects the glyph set used for rectangle and diamond borders.
type BorderStyle uint8

// Border styles.
const (
	Single BorderStyle = iota
	Double
	Heavy
	Rounded
	ASCII
	Dotted
)

// Glyphs is the character set for one border style.
type Glyphs struct {
	TopLeft, TopRight       rune
	BottomLeft, BottomRight rune
	Horizontal, Vertical    rune
	// Rising and Falling draw diamond edges: Rising goes up to the right.
	Rising, Falling rune
	// Vertex marks a diamond point that both of its edges meet in one cell.
	Vertex rune
}

var glyphSets = [...]Glyphs{
	Single:  {'┌', '┐', '└', '┘', '─', '│', '╱', '╲', '┼'},
	Double:  {'╔', '╗', '╚', '╝', '═', '║', '╱', '╲', '╬'},
	Heavy:   {'┏', '┓', '┗', '┛', '━', '┃', '╱', '╲', '╋'},
	Rounded: {'╭', '╮', '╰', '╯', '─', '│', '╱', '╲', '┼'},
	ASCII:   {'+', '+', '+', '+', '-', '|', '/', '\\', '+'},
	Dotted:  {'*', '*', '*', '*', '*', '*', '*', '*', '*'},
}

var styleNames = [...]string{
	Single:  "single",
	Double:  "double",
	Heavy:   "heavy",
	Rounded: "rounded",
	ASCII:   "ascii",
	Dotted:  "dotted",
}

// Glyphs returns the style's character set. Unknown styles use Single.
func (s BorderStyle) Glyphs() Glyphs {
	if int(s) < len(glyphSets) {
		return glyphSets[s]
	}
	return glyphSets[Single]
}

// String returns the lower-case style name.
func (s BorderStyle) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "unknown"
}

// BorderStyles lists every style in declaration order.
func BorderStyles() []BorderStyle {
	return []BorderStyle{Single, Double, Heavy, Rounded, ASCII, Dotted}
}

// ParseBorderStyle maps a style name (case-insensitive) to a style.
// Unknown names return Single and false.
func ParseBorderStyle(name string) (BorderStyle, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range styleNames {
		if n == name {
			return BorderStyle(i), true
		}
	}
	return Single, false
}
