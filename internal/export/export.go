// Package export serializes a grid to plain text.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/gridsketch/internal/grid"
)

// Source is the read access export needs.
type Source interface {
	Get(x, y int) (rune, bool)
	Width() int
	Height() int
}

// Options controls plain-text export.
type Options struct {
	// TrimLeading also removes blank rows above and blank columns left of
	// the content. Trailing blanks are always removed.
	TrimLeading bool
}

// ASCII returns the grid as text: rows joined with "\n", trailing blanks
// of every row and trailing blank rows removed. A blank grid exports as
// the empty string.
func ASCII(g Source, opts Options) string {
	top, bottom, left := 0, -1, 0
	rows := make([]string, g.Height())
	for y := range rows {
		rows[y] = row(g, y)
		if rows[y] != "" {
			bottom = y
		}
	}
	if bottom < 0 {
		return ""
	}

	if opts.TrimLeading {
		for rows[top] == "" {
			top++
		}
		left = g.Width()
		for _, r := range rows[top : bottom+1] {
			if r == "" {
				continue
			}
			lead := len(r) - len(strings.TrimLeft(r, string(grid.Blank)))
			left = min(left, lead)
		}
	}

	var b strings.Builder
	for y := top; y <= bottom; y++ {
		line := rows[y]
		if len(line) >= left {
			line = line[left:]
		}
		b.WriteString(line)
		if y < bottom {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Write writes ASCII(g, opts) followed by a newline when the grid is not
// blank.
func Write(w io.Writer, g Source, opts Options) error {
	text := ASCII(g, opts)
	if text == "" {
		return nil
	}
	if _, err := io.WriteString(w, text+"\n"); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// row returns row y with trailing blanks removed.
func row(g Source, y int) string {
	var b strings.Builder
	for x := range g.Width() {
		ch, _ := g.Get(x, y)
		b.WriteRune(ch)
	}
	return strings.TrimRight(b.String(), string(grid.Blank))
}
