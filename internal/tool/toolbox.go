package tool

import "github.com/dshills/gridsketch/internal/raster"

// Toolbox holds one instance of every tool and tracks which one is
// current. Tools keep their settings across switches; only their
// interaction state is reset.
type Toolbox struct {
	current   Kind
	sel       SelectTool
	rectangle RectangleTool
	line      LineTool
	arrow     ArrowTool
	diamond   DiamondTool
	text      TextTool
	freehand  FreehandTool
	eraser    EraserTool
}

// NewToolbox returns a toolbox with Select current and default settings.
func NewToolbox() *Toolbox {
	return &Toolbox{
		freehand: FreehandTool{Char: DefaultFreehandChar},
		eraser:   EraserTool{Size: 1},
	}
}

// Active returns the current tool kind.
func (b *Toolbox) Active() Kind { return b.current }

// Current returns the current tool.
func (b *Toolbox) Current() Tool {
	return b.Get(b.current)
}

// Get returns the tool of kind k.
func (b *Toolbox) Get(k Kind) Tool {
	switch k {
	case Rectangle:
		return &b.rectangle
	case Line:
		return &b.line
	case Arrow:
		return &b.arrow
	case Diamond:
		return &b.diamond
	case Text:
		return &b.text
	case Freehand:
		return &b.freehand
	case Eraser:
		return &b.eraser
	default:
		return &b.sel
	}
}

// Switch makes k current, resetting the tool being left. It does not
// check Active; callers decide whether a switch is allowed.
func (b *Toolbox) Switch(k Kind) {
	if k == b.current {
		return
	}
	b.Current().Reset()
	b.current = k
}

// ResetAll returns every tool to its idle state.
func (b *Toolbox) ResetAll() {
	for _, k := range Kinds() {
		b.Get(k).Reset()
	}
}

func (b *Toolbox) Select() *SelectTool       { return &b.sel }
func (b *Toolbox) Rectangle() *RectangleTool { return &b.rectangle }
func (b *Toolbox) Line() *LineTool           { return &b.line }
func (b *Toolbox) Arrow() *ArrowTool         { return &b.arrow }
func (b *Toolbox) Diamond() *DiamondTool     { return &b.diamond }
func (b *Toolbox) Text() *TextTool           { return &b.text }
func (b *Toolbox) Freehand() *FreehandTool   { return &b.freehand }
func (b *Toolbox) Eraser() *EraserTool       { return &b.eraser }

// SetBorderStyle sets the style used by the rectangle and diamond tools.
func (b *Toolbox) SetBorderStyle(s raster.BorderStyle) {
	b.rectangle.Style = s
	b.diamond.Style = s
}

// BorderStyle returns the style shared by the outline tools.
func (b *Toolbox) BorderStyle() raster.BorderStyle { return b.rectangle.Style }

// SetLineDirection sets the constraint used by the line and arrow tools.
func (b *Toolbox) SetLineDirection(d raster.Direction) {
	b.line.SetDirection(d)
	b.arrow.SetDirection(d)
}

// LineDirection returns the constraint shared by the line tools.
func (b *Toolbox) LineDirection() raster.Direction { return b.line.Direction }
