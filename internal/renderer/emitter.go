package renderer

import (
	"github.com/dshills/gridsketch/internal/grid"
	"github.com/dshills/gridsketch/internal/renderer/core"
	"github.com/dshills/gridsketch/internal/renderer/dirty"
	"github.com/dshills/gridsketch/internal/renderer/viewport"
)

// Source is the read access the emitter needs to a grid.
type Source interface {
	Get(x, y int) (rune, bool)
	Width() int
	Height() int
}

// Palette holds the colors of a frame.
type Palette struct {
	Background core.Color
	Foreground core.Color
	Selection  core.Color
	Grid       core.Color
	Preview    core.Color
}

// DefaultPalette returns the dark theme colors.
func DefaultPalette() Palette {
	return Palette{
		Background: core.MustHex("#1e1e1e"),
		Foreground: core.MustHex("#d4d4d4"),
		Selection:  core.MustHex("#264f78"),
		Grid:       core.MustHex("#333333"),
		Preview:    core.MustHex("#569cd6"),
	}
}

// Font names the monospace font characters are drawn with.
type Font struct {
	Family string
	Size   float64
}

// Options configures the emitter.
type Options struct {
	Palette  Palette
	Font     Font
	ShowGrid bool
}

// DefaultOptions returns the default emitter options.
func DefaultOptions() Options {
	return Options{
		Palette: DefaultPalette(),
		Font:    Font{Family: "JetBrains Mono, Fira Code, Consolas, monospace", Size: 14},
	}
}

// Emitter builds render commands for a grid seen through a viewport.
type Emitter struct {
	opts    Options
	tracker *dirty.Tracker
}

// NewEmitter creates an emitter that drains tracker on incremental
// frames.
func NewEmitter(tracker *dirty.Tracker, opts Options) *Emitter {
	return &Emitter{opts: opts, tracker: tracker}
}

// Options returns the current options.
func (e *Emitter) Options() Options { return e.opts }

// SetOptions replaces the options and schedules a full redraw.
func (e *Emitter) SetOptions(opts Options) {
	e.opts = opts
	e.tracker.MarkFullRedraw()
}

// Tracker returns the dirty tracker the emitter drains.
func (e *Emitter) Tracker() *dirty.Tracker { return e.tracker }

// FullCommands returns the commands for the whole grid. It does not touch
// the dirty tracker.
func (e *Emitter) FullCommands(g Source, vp *viewport.Viewport) []Command {
	cmds := []Command{Clear{Color: e.opts.Palette.Background}}
	if e.opts.ShowGrid {
		cmds = append(cmds, e.gridLines(g, vp))
	}
	cmds = append(cmds, SetFont{Family: e.opts.Font.Family, Size: e.opts.Font.Size, Scale: vp.Zoom()})
	return e.appendChars(cmds, g, vp, g.Width(), g.Height(), 0, 0)
}

// DirtyCommands returns the commands needed to bring a previously painted
// frame up to date, then clears the tracker. A pending full redraw yields
// the same commands as FullCommands; a clean tracker yields none.
func (e *Emitter) DirtyCommands(g Source, vp *viewport.Viewport) []Command {
	if e.tracker.NeedsFullRedraw() {
		e.tracker.Clear()
		return e.FullCommands(g, vp)
	}
	regions := e.tracker.Regions()
	e.tracker.Clear()

	var cmds []Command
	for _, r := range regions {
		cmds = append(cmds, e.rect(r.Rect, vp, e.opts.Palette.Background, RectBackground))
		cmds = e.appendChars(cmds, g, vp, r.Width, r.Height, r.X, r.Y)
	}
	return cmds
}

// PreviewCommand returns the overlay for uncommitted tool output. Ops
// outside the grid are dropped; the last write to a cell wins.
func (e *Emitter) PreviewCommand(g Source, ops []grid.DrawOp, vp *viewport.Viewport) Overlay {
	ov := Overlay{Color: e.opts.Palette.Preview}
	for _, op := range grid.Dedup(ops) {
		if _, ok := g.Get(op.X, op.Y); !ok {
			continue
		}
		ov.Chars = append(ov.Chars, e.char(op.X, op.Y, op.Ch, vp, e.opts.Palette.Preview))
	}
	return ov
}

// SelectionCommand returns the highlight for the selected cells.
func (e *Emitter) SelectionCommand(r grid.Rect, vp *viewport.Viewport) DrawRect {
	return e.rect(r, vp, e.opts.Palette.Selection, RectSelection)
}

func (e *Emitter) appendChars(cmds []Command, g Source, vp *viewport.Viewport, w, h, x0, y0 int) []Command {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			ch, ok := g.Get(x, y)
			if !ok || ch == grid.Blank {
				continue
			}
			cmds = append(cmds, e.char(x, y, ch, vp, e.opts.Palette.Foreground))
		}
	}
	return cmds
}

func (e *Emitter) char(x, y int, ch rune, vp *viewport.Viewport, c core.Color) DrawChar {
	sx, _ := vp.GridToScreen(x, y)
	return DrawChar{X: sx, Y: vp.Baseline(y), Cell: grid.Pt(x, y), Ch: ch, Scale: vp.Zoom(), Color: c}
}

func (e *Emitter) rect(r grid.Rect, vp *viewport.Viewport, c core.Color, role RectRole) DrawRect {
	x0, y0 := vp.GridToScreen(r.X, r.Y)
	x1, y1 := vp.GridToScreen(r.Right(), r.Bottom())
	return DrawRect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0, Cells: r, Color: c, Role: role}
}

func (e *Emitter) gridLines(g Source, vp *viewport.Viewport) DrawGrid {
	x, y := vp.GridToScreen(0, 0)
	cw, ch := vp.CellSize()
	return DrawGrid{
		X:          x,
		Y:          y,
		Width:      float64(g.Width()) * cw,
		Height:     float64(g.Height()) * ch,
		CellWidth:  cw,
		CellHeight: ch,
		Color:      e.opts.Palette.Grid,
	}
}
