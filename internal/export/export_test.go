package export

import (
	"bytes"
	"testing"

	"github.com/dshills/gridsketch/internal/grid"
)

func TestASCII(t *testing.T) {
	tests := []struct {
		name string
		g    *grid.Grid
		opts Options
		want string
	}{
		{
			name: "empty grid",
			g:    grid.New(5, 3),
			want: "",
		},
		{
			name: "single cell",
			g:    grid.FromLines("x"),
			want: "x",
		},
		{
			name: "trailing blanks trimmed",
			g:    grid.FromLines("ab   ", "     ", " c   ", "     "),
			want: "ab\n\n c",
		},
		{
			name: "leading blanks kept by default",
			g:    grid.FromLines("     ", "  +-+", "  | |", "  +-+"),
			want: "\n  +-+\n  | |\n  +-+",
		},
		{
			name: "trim leading",
			g:    grid.FromLines("     ", "  +-+", "   |", "  +-+"),
			opts: Options{TrimLeading: true},
			want: "+-+\n |\n+-+",
		},
		{
			name: "trim leading keeps inner blank rows",
			g:    grid.FromLines("   ", " a ", "   ", " b "),
			opts: Options{TrimLeading: true},
			want: "a\n\nb",
		},
		{
			name: "box glyphs",
			g:    grid.FromLines("┌─┐", "└─┘"),
			want: "┌─┐\n└─┘",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ASCII(tt.g, tt.opts); got != tt.want {
				t.Errorf("ASCII() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, grid.FromLines("hi"), Options{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != "hi\n" {
		t.Errorf("wrote %q", got)
	}

	buf.Reset()
	if err := Write(&buf, grid.New(2, 2), Options{}); err != nil {
		t.Fatalf("Write blank: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("blank grid wrote %q", buf.String())
	}
}
