package grid

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Blank is the empty cell value.
const Blank rune = ' '

// widthCond measures glyphs the way a western terminal does: East Asian
// ambiguous runes such as box drawing characters count as one column.
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// ValidGlyph reports whether r can occupy exactly one cell: a printable
// rune with a display width of one column.
func ValidGlyph(r rune) bool {
	if r == Blank {
		return true
	}
	if !unicode.IsPrint(r) {
		return false
	}
	return widthCond.RuneWidth(r) == 1
}

// Sanitize maps r to itself when it is a valid glyph and to Blank otherwise.
func Sanitize(r rune) rune {
	if ValidGlyph(r) {
		return r
	}
	return Blank
}
