package raster

import (
	"testing"

	"github.com/dshills/gridsketch/internal/grid"
)

// render applies ops to a blank w×h grid and returns its rows.
func render(w, h int, ops []grid.DrawOp) []string {
	g := grid.New(w, h)
	g.Apply(ops)
	return g.Lines()
}

func assertRows(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRectangleSingle5x3(t *testing.T) {
	ops := Rectangle(grid.Pt(0, 0), grid.Pt(4, 2), Single)
	g := grid.New(5, 3)
	g.Apply(ops)

	corners := map[grid.Point]rune{
		grid.Pt(0, 0): '┌',
		grid.Pt(4, 0): '┐',
		grid.Pt(0, 2): '└',
		grid.Pt(4, 2): '┘',
	}
	for p, want := range corners {
		if got := g.At(p.X, p.Y); got != want {
			t.Errorf("corner %v = %q, want %q", p, got, want)
		}
	}
	for x := 1; x <= 3; x++ {
		for _, y := range []int{0, 2} {
			if got := g.At(x, y); got != '─' {
				t.Errorf("edge (%d,%d) = %q, want '─'", x, y, got)
			}
		}
		if got := g.At(x, 1); got != grid.Blank {
			t.Errorf("interior (%d,1) = %q, want blank", x, got)
		}
	}
	for _, x := range []int{0, 4} {
		if got := g.At(x, 1); got != '│' {
			t.Errorf("edge (%d,1) = %q, want '│'", x, got)
		}
	}
}

func TestRectangleStyles(t *testing.T) {
	tests := []struct {
		style BorderStyle
		want  []string
	}{
		{Single, []string{"┌─┐", "│ │", "└─┘"}},
		{Double, []string{"╔═╗", "║ ║", "╚═╝"}},
		{Heavy, []string{"┏━┓", "┃ ┃", "┗━┛"}},
		{Rounded, []string{"╭─╮", "│ │", "╰─╯"}},
		{ASCII, []string{"+-+", "| |", "+-+"}},
		{Dotted, []string{"***", "* *", "***"}},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			got := render(3, 3, Rectangle(grid.Pt(2, 2), grid.Pt(0, 0), tt.style))
			assertRows(t, got, tt.want)
		})
	}
}

func TestRectangleDegenerate(t *testing.T) {
	tests := []struct {
		name string
		a, b grid.Point
		want []string
	}{
		{"point", grid.Pt(1, 1), grid.Pt(1, 1), []string{"   ", " ┌ ", "   "}},
		{"row", grid.Pt(0, 1), grid.Pt(2, 1), []string{"   ", "───", "   "}},
		{"column", grid.Pt(1, 0), grid.Pt(1, 2), []string{" │ ", " │ ", " │ "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRows(t, render(3, 3, Rectangle(tt.a, tt.b, Single)), tt.want)
		})
	}
}

func TestLineDirections(t *testing.T) {
	tests := []struct {
		name  string
		start grid.Point
		end   grid.Point
		dir   Direction
		want  []string
	}{
		{
			name: "auto horizontal",
			end:  grid.Pt(4, 0),
			want: []string{"─────", "     ", "     "},
		},
		{
			name:  "auto horizontal leftward",
			start: grid.Pt(4, 1),
			end:   grid.Pt(1, 1),
			want:  []string{"     ", " ────", "     "},
		},
		{
			name: "auto vertical",
			end:  grid.Pt(0, 2),
			want: []string{"│    ", "│    ", "│    "},
		},
		{
			name: "auto diagonal down right",
			end:  grid.Pt(2, 2),
			want: []string{"\\    ", " \\   ", "  \\  "},
		},
		{
			name:  "auto diagonal up right",
			start: grid.Pt(0, 2),
			end:   grid.Pt(2, 0),
			want:  []string{"  /  ", " /   ", "/    "},
		},
		{
			name: "forced horizontal on diagonal drag",
			end:  grid.Pt(4, 2),
			dir:  Horizontal,
			want: []string{"─────", "     ", "     "},
		},
		{
			name: "forced vertical on diagonal drag",
			end:  grid.Pt(4, 2),
			dir:  Vertical,
			want: []string{"│    ", "│    ", "│    "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRows(t, render(5, 3, Line(tt.start, tt.end, tt.dir)), tt.want)
		})
	}
}

func TestLineAutoHorizontalRun(t *testing.T) {
	ops := Line(grid.Pt(0, 0), grid.Pt(4, 0), Auto)
	if len(ops) != 5 {
		t.Fatalf("len = %d, want 5", len(ops))
	}
	for i, op := range ops {
		if op.Y != 0 || op.X != i || op.Ch != GlyphHorizontal {
			t.Errorf("op %d = %v, want '─' at (%d,0)", i, op, i)
		}
	}
}

func TestLineAutoShallowDiagonalIsNotAxisAligned(t *testing.T) {
	ops := Line(grid.Pt(0, 0), grid.Pt(4, 1), Auto)
	last := ops[len(ops)-1]
	if last.X != 4 || last.Y != 1 {
		t.Errorf("line ends at (%d,%d), want (4,1)", last.X, last.Y)
	}
	for _, op := range ops {
		if op.Ch != GlyphFalling {
			t.Errorf("glyph %q, want %q", op.Ch, GlyphFalling)
		}
	}
}

func TestPathVisitsEachCellOnce(t *testing.T) {
	pts := Path(grid.Pt(0, 0), grid.Pt(7, 3))
	seen := map[grid.Point]bool{}
	for _, p := range pts {
		if seen[p] {
			t.Fatalf("%v visited twice", p)
		}
		seen[p] = true
	}
	if pts[0] != grid.Pt(0, 0) || pts[len(pts)-1] != grid.Pt(7, 3) {
		t.Errorf("path endpoints = %v..%v", pts[0], pts[len(pts)-1])
	}
	if len(pts) != 8 {
		t.Errorf("len = %d, want 8", len(pts))
	}
}

func TestArrowhead(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   rune
	}{
		{"up", 0, -3, HeadUp},
		{"down", 0, 3, HeadDown},
		{"right", 3, 0, HeadRight},
		{"left", -3, 0, HeadLeft},
		{"mostly down", 1, 4, HeadDown},
		{"mostly left", -4, 1, HeadLeft},
		{"tie", 2, 2, HeadRight},
		{"zero", 0, 0, HeadDot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Arrowhead(tt.dx, tt.dy); got != tt.want {
				t.Errorf("Arrowhead(%d,%d) = %q, want %q", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestArrow(t *testing.T) {
	got := render(5, 1, Arrow(grid.Pt(0, 0), grid.Pt(4, 0), Auto))
	assertRows(t, got, []string{"────►"})

	got = render(1, 1, Arrow(grid.Pt(0, 0), grid.Pt(0, 0), Auto))
	assertRows(t, got, []string{"•"})

	got = render(3, 3, Arrow(grid.Pt(0, 2), grid.Pt(2, 0), Vertical))
	assertRows(t, got, []string{"▲  ", "│  ", "│  "})
}

func TestDiamond(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want []string
	}{
		{
			name: "even box",
			w:    6,
			h:    4,
			want: []string{
				"  /\\  ",
				"/    \\",
				"\\    /",
				"  \\/  ",
			},
		},
		{
			name: "odd box",
			w:    7,
			h:    5,
			want: []string{
				"   +   ",
				" /   \\ ",
				"+     +",
				" \\   / ",
				"   +   ",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := Diamond(grid.Pt(0, 0), grid.Pt(tt.w-1, tt.h-1), ASCII)
			assertRows(t, render(tt.w, tt.h, ops), tt.want)
		})
	}
}

func TestDiamondDegenerate(t *testing.T) {
	assertRows(t, render(1, 1, Diamond(grid.Pt(0, 0), grid.Pt(0, 0), Single)), []string{"◆"})
	assertRows(t, render(3, 1, Diamond(grid.Pt(0, 0), grid.Pt(2, 0), Single)), []string{"───"})
}

func TestDiamondHasNoDuplicateCells(t *testing.T) {
	ops := Diamond(grid.Pt(0, 0), grid.Pt(8, 6), Single)
	seen := map[grid.Point]bool{}
	for _, op := range ops {
		if seen[op.At()] {
			t.Fatalf("duplicate op at %v", op.At())
		}
		seen[op.At()] = true
	}
}

func TestSegment(t *testing.T) {
	if ops := Segment(grid.Pt(1, 1), grid.Pt(1, 1), '*'); len(ops) != 0 {
		t.Errorf("zero-length segment produced %d ops", len(ops))
	}
	ops := Segment(grid.Pt(0, 0), grid.Pt(3, 0), '*')
	if len(ops) != 3 {
		t.Fatalf("len = %d, want 3", len(ops))
	}
	if ops[0].X != 1 || ops[2].X != 3 {
		t.Errorf("segment covers x=%d..%d, want 1..3", ops[0].X, ops[2].X)
	}
}

func TestSquare(t *testing.T) {
	if n := len(Square(grid.Pt(5, 5), 1, ' ')); n != 1 {
		t.Errorf("size 1 covers %d cells, want 1", n)
	}
	if n := len(Square(grid.Pt(5, 5), 2, ' ')); n != 9 {
		t.Errorf("size 2 covers %d cells, want 9", n)
	}
	if n := len(Square(grid.Pt(5, 5), 0, ' ')); n != 1 {
		t.Errorf("size 0 covers %d cells, want 1", n)
	}
}

func TestParseNames(t *testing.T) {
	if s, ok := ParseBorderStyle("Double"); !ok || s != Double {
		t.Errorf("ParseBorderStyle(Double) = %v, %v", s, ok)
	}
	if s, ok := ParseBorderStyle("wavy"); ok || s != Single {
		t.Errorf("ParseBorderStyle(wavy) = %v, %v; want single, false", s, ok)
	}
	if d, ok := ParseDirection("VERTICAL"); !ok || d != Vertical {
		t.Errorf("ParseDirection(VERTICAL) = %v, %v", d, ok)
	}
	if d, ok := ParseDirection("sideways"); ok || d != Auto {
		t.Errorf("ParseDirection(sideways) = %v, %v; want auto, false", d, ok)
	}
}
