package script

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/gridsketch/internal/engine/history"
	"github.com/dshills/gridsketch/internal/export"
	"github.com/dshills/gridsketch/internal/grid"
	"github.com/dshills/gridsketch/internal/raster"
)

func newRunner(w, h int, opts Options) (*Runner, *grid.Grid, *history.History) {
	g := grid.New(w, h)
	hist := history.NewHistory(0)
	return NewRunner(g, hist, opts), g, hist
}

func ascii(g *grid.Grid) string {
	return export.ASCII(g, export.Options{})
}

func TestDrawingFunctions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"rect", `rect(0, 0, 4, 2)`, "┌───┐\n│   │\n└───┘"},
		{"rect style", `rect(0, 0, 2, 1, "ascii")`, "+-+\n+-+"},
		{"line", `line(0, 0, 3, 0)`, "────"},
		{"line forced", `line(0, 0, 3, 2, "horizontal")`, "────"},
		{"arrow", `arrow(0, 1, 3, 1)`, "\n───►"},
		{"text", `text(1, 0, "hi\nyo")`, " hi\n yo"},
		{"text clips", `text(4, 0, "abc")`, "    ab"},
		{"set and get", `set(0, 0, "x"); set(1, 0, get(0, 0))`, "xx"},
		{"erase", `text(0, 0, "abcd"); erase(1, 0, 2, 0)`, "a  d"},
		{"clear", `rect(0, 0, 3, 2); clear()`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, _ := newRunner(6, 3, DefaultOptions())
			if _, err := r.Run(context.Background(), tt.name, tt.src); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if got := ascii(g); got != tt.want {
				t.Errorf("grid =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestDefaultsFromOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.BorderStyle = raster.Double
	r, g, _ := newRunner(4, 2, opts)
	if _, err := r.Run(context.Background(), "d", `rect(0, 0, 1, 1)`); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := ascii(g); got != "╔╗\n╚╝" {
		t.Errorf("grid = %q", got)
	}
}

func TestGroupedRunIsOneUndoStep(t *testing.T) {
	r, g, h := newRunner(10, 3, DefaultOptions())
	res, err := r.Run(context.Background(), "two", `rect(0, 0, 2, 2); line(4, 1, 8, 1)`)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Commits != 2 || !res.Changed {
		t.Errorf("Result = %+v", res)
	}
	if h.UndoCount() != 1 {
		t.Fatalf("UndoCount = %d, want 1", h.UndoCount())
	}
	h.Undo(g)
	if !g.IsBlank() {
		t.Errorf("grid after undo:\n%s", ascii(g))
	}
}

func TestUngroupedRunCommitsEachCall(t *testing.T) {
	opts := DefaultOptions()
	opts.Group = false
	r, g, h := newRunner(10, 3, opts)
	src := `
rect(0, 0, 2, 2)
line(4, 1, 8, 1)
assert(undo() == true)
`
	if _, err := r.Run(context.Background(), "steps", src); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if h.UndoCount() != 1 || !h.CanRedo() {
		t.Errorf("undo=%d redo=%v", h.UndoCount(), h.CanRedo())
	}
	if got := ascii(g); got != "┌─┐\n│ │\n└─┘" {
		t.Errorf("grid =\n%s", got)
	}
}

func TestFailedRunRollsBack(t *testing.T) {
	for _, group := range []bool{true, false} {
		opts := DefaultOptions()
		opts.Group = group
		r, g, h := newRunner(10, 3, opts)
		g.Set(9, 2, 'k')

		_, err := r.Run(context.Background(), "bad", `rect(0, 0, 3, 2); error("boom")`)
		if !errors.Is(err, ErrScriptFailed) {
			t.Fatalf("group=%v: err = %v, want ErrScriptFailed", group, err)
		}
		if !strings.Contains(err.Error(), "boom") {
			t.Errorf("group=%v: error %q lacks the Lua message", group, err)
		}
		if got := ascii(g); got != "\n\n         k" {
			t.Errorf("group=%v: grid not restored:\n%s", group, got)
		}
		if h.CanUndo() {
			t.Errorf("group=%v: history kept failed commands", group)
		}
	}
}

func TestFailedUngroupedRunRestoresHistory(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"history at capacity", `set(0, 0, "x"); set(1, 0, "y"); error("boom")`},
		{"undo before failing", `assert(undo()); error("boom")`},
		{"undo and redraw", `undo(); undo(); rect(0, 0, 9, 2); error("boom")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := grid.New(10, 3)
			h := history.NewHistory(2)
			h.Commit(g, "a", []grid.DrawOp{grid.Op(9, 0, 'a')})
			h.Commit(g, "b", []grid.DrawOp{grid.Op(9, 2, 'b')})
			want := ascii(g)

			opts := DefaultOptions()
			opts.Group = false
			if _, err := NewRunner(g, h, opts).Run(context.Background(), "bad", tt.src); !errors.Is(err, ErrScriptFailed) {
				t.Fatalf("err = %v, want ErrScriptFailed", err)
			}
			if got := ascii(g); got != want {
				t.Errorf("grid =\n%s\nwant\n%s", got, want)
			}
			if h.UndoCount() != 2 || h.CanRedo() {
				t.Fatalf("undo=%d redo=%d, want 2 and 0", h.UndoCount(), h.RedoCount())
			}
			h.Undo(g)
			h.Undo(g)
			if !g.IsBlank() {
				t.Errorf("earlier commits no longer undo cleanly:\n%s", ascii(g))
			}
		})
	}
}

func TestShapeCoordinatesAreBounded(t *testing.T) {
	tests := []string{
		`line(0, 0, 20000000, 0)`,
		`arrow(0, 0, 0, -20000000)`,
		`rect(-20000000, 0, 1, 1)`,
		`diamond(0, 0, 2147483647, 2147483647)`,
		`text(0, 20000000, "x")`,
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			r, g, h := newRunner(10, 3, DefaultOptions())
			_, err := r.Run(context.Background(), "far", src)
			if !errors.Is(err, ErrScriptFailed) || !strings.Contains(err.Error(), "too far outside") {
				t.Errorf("err = %v", err)
			}
			if !g.IsBlank() || h.CanUndo() {
				t.Error("rejected shape changed the grid")
			}
		})
	}

	r, g, _ := newRunner(10, 3, DefaultOptions())
	if _, err := r.Run(context.Background(), "near", `line(-3, 1, 12, 1)`); err != nil {
		t.Fatalf("line crossing the grid: %v", err)
	}
	if got := g.Row(1); got != "──────────" {
		t.Errorf("row 1 = %q", got)
	}
}

func TestArgumentErrors(t *testing.T) {
	tests := []string{
		`rect(0, 0, 1, 1, "wavy")`,
		`line(0, 0, 1, 1, "diagonal")`,
		`set(0, 0, "ab")`,
		`rect("a")`,
		`undo()`,
		`this is not lua`,
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			r, _, _ := newRunner(5, 5, DefaultOptions())
			if _, err := r.Run(context.Background(), "arg", src); !errors.Is(err, ErrScriptFailed) {
				t.Errorf("err = %v, want ErrScriptFailed", err)
			}
		})
	}
}

func TestSandbox(t *testing.T) {
	for _, name := range []string{"io", "os", "dofile", "loadfile", "load", "require"} {
		t.Run(name, func(t *testing.T) {
			r, _, _ := newRunner(5, 5, DefaultOptions())
			src := `assert(` + name + ` == nil, "` + name + ` is available")`
			if _, err := r.Run(context.Background(), "sandbox", src); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestSizeExportAndPrint(t *testing.T) {
	var out bytes.Buffer
	opts := DefaultOptions()
	opts.Output = &out
	r, _, _ := newRunner(7, 4, opts)

	src := `
local w, h = size()
print(w, h)
text(2, 1, "ok")
print(export(true))
print(get(99, 99) == nil)
`
	if _, err := r.Run(context.Background(), "io", src); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := out.String(), "7\t4\nok\ntrue\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTimeout(t *testing.T) {
	opts := DefaultOptions()
	opts.Timeout = 50 * time.Millisecond
	r, _, _ := newRunner(5, 5, opts)

	start := time.Now()
	_, err := r.Run(context.Background(), "loop", `while true do end`)
	if !errors.Is(err, ErrScriptFailed) {
		t.Fatalf("err = %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("timeout not enforced")
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.lua")
	if err := os.WriteFile(path, []byte(`diamond(0, 0, 4, 4)`), 0o644); err != nil {
		t.Fatal(err)
	}
	r, g, _ := newRunner(5, 5, DefaultOptions())
	if _, err := r.RunFile(context.Background(), path); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if g.IsBlank() {
		t.Error("diamond not drawn")
	}

	if _, err := r.RunFile(context.Background(), filepath.Join(t.TempDir(), "none.lua")); !errors.Is(err, ErrScriptFailed) {
		t.Errorf("missing file err = %v", err)
	}
}
