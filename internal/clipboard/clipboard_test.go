package clipboard

import (
	"testing"

	"github.com/dshills/gridsketch/internal/grid"
)

func TestCaptureAndOps(t *testing.T) {
	g := grid.FromLines(
		"abc..",
		"def..",
		".....",
	)
	cb := New()
	if !cb.Capture(g, grid.Rect{X: 0, Y: 0, Width: 3, Height: 2}) {
		t.Fatal("Capture returned false")
	}
	if w, h := cb.Size(); w != 3 || h != 2 {
		t.Errorf("Size = %dx%d, want 3x2", w, h)
	}

	dst := grid.New(6, 4)
	dst.Apply(cb.Ops(grid.Pt(2, 1)))
	want := []string{
		"      ",
		"  abc ",
		"  def ",
		"      ",
	}
	for y, line := range want {
		if got := dst.Row(y); got != line {
			t.Errorf("row %d = %q, want %q", y, got, line)
		}
	}
}

func TestCaptureIsSnapshot(t *testing.T) {
	g := grid.FromLines("xy")
	cb := New()
	cb.Capture(g, g.Bounds())
	g.Set(0, 0, 'q')
	if got := cb.Text(); got != "xy" {
		t.Errorf("Text = %q after source changed, want %q", got, "xy")
	}
}

func TestCaptureClipsToSource(t *testing.T) {
	g := grid.FromLines("ab", "cd")
	cb := New()
	cb.Capture(g, grid.Rect{X: 1, Y: 1, Width: 3, Height: 3})
	if n := len(cb.Cells()); n != 1 {
		t.Errorf("captured %d cells, want 1", n)
	}
}

func TestCaptureEmptyRect(t *testing.T) {
	cb := New()
	cb.SetText("keep")
	if cb.Capture(grid.New(2, 2), grid.Rect{}) {
		t.Error("Capture of empty rect returned true")
	}
	if cb.Text() != "keep" {
		t.Error("empty capture replaced contents")
	}
}

func TestSetText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantW     int
		wantH     int
		wantText  string
		wantEmpty bool
	}{
		{name: "single line", text: "abc", wantW: 3, wantH: 1, wantText: "abc"},
		{name: "ragged lines", text: "ab\r\nc\n", wantW: 2, wantH: 2, wantText: "ab\nc"},
		{name: "combining mark is one cell", text: "e\u0301x", wantW: 2, wantH: 1, wantText: " x"},
		{name: "wide rune becomes blank", text: "a漢b", wantW: 3, wantH: 1, wantText: "a b"},
		{name: "empty", text: "\n", wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := New()
			ok := cb.SetText(tt.text)
			if tt.wantEmpty {
				if ok || !cb.Empty() {
					t.Error("expected empty clipboard")
				}
				return
			}
			if !ok {
				t.Fatal("SetText returned false")
			}
			if w, h := cb.Size(); w != tt.wantW || h != tt.wantH {
				t.Errorf("Size = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
			if got := cb.Text(); got != tt.wantText {
				t.Errorf("Text = %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestClear(t *testing.T) {
	cb := New()
	cb.SetText("x")
	cb.Clear()
	if !cb.Empty() {
		t.Error("Clear left contents")
	}
	if cb.Text() != "" {
		t.Error("Text of empty clipboard not empty")
	}
}
