// Package statusline draws the one-row status bar below the canvas.
package statusline

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/gridsketch/internal/renderer/backend"
	"github.com/dshills/gridsketch/internal/renderer/core"
	"github.com/dshills/gridsketch/internal/tool"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// StatusLine renders the current tool, drawing settings, pointer cell,
// zoom and history state, plus a transient message.
type StatusLine struct {
	tool      tool.Kind
	style     string
	direction string

	pointer    string // "x,y" of the cell under the pointer, empty when off-grid
	gridWidth  int
	gridHeight int
	zoom       float64
	undo       bool
	redo       bool

	message     string
	messageType MessageType

	toolStyles map[tool.Kind]core.Style
	barStyle   core.Style

	width int
}

// New creates a status line for the Select tool.
func New() *StatusLine {
	return &StatusLine{
		tool:       tool.Select,
		zoom:       1,
		toolStyles: defaultToolStyles(),
		barStyle:   core.DefaultStyle().WithBackground(core.MustHex("#3c3c3c")).WithForeground(core.MustHex("#e0e0e0")),
	}
}

func defaultToolStyles() map[tool.Kind]core.Style {
	badge := func(bg, fg string) core.Style {
		return core.DefaultStyle().Bold().WithBackground(core.MustHex(bg)).WithForeground(core.MustHex(fg))
	}
	return map[tool.Kind]core.Style{
		tool.Select:    badge("#007acc", "#ffffff"),
		tool.Rectangle: badge("#16825d", "#ffffff"),
		tool.Diamond:   badge("#16825d", "#ffffff"),
		tool.Line:      badge("#b58900", "#000000"),
		tool.Arrow:     badge("#b58900", "#000000"),
		tool.Text:      badge("#6c71c4", "#ffffff"),
		tool.Freehand:  badge("#d33682", "#ffffff"),
		tool.Eraser:    badge("#cb4b16", "#ffffff"),
	}
}

// SetTool updates the displayed tool.
func (s *StatusLine) SetTool(k tool.Kind) { s.tool = k }

// SetDrawing updates the border style and line direction names.
func (s *StatusLine) SetDrawing(style, direction string) {
	s.style = style
	s.direction = direction
}

// SetPointer updates the cell under the pointer. ok is false when the
// pointer is outside the grid.
func (s *StatusLine) SetPointer(x, y int, ok bool) {
	if !ok {
		s.pointer = ""
		return
	}
	s.pointer = fmt.Sprintf("%d,%d", x, y)
}

// SetGrid updates the canvas size.
func (s *StatusLine) SetGrid(width, height int) {
	s.gridWidth = width
	s.gridHeight = height
}

// SetZoom updates the zoom factor.
func (s *StatusLine) SetZoom(z float64) { s.zoom = z }

// SetHistory updates the undo and redo indicators.
func (s *StatusLine) SetHistory(canUndo, canRedo bool) {
	s.undo = canUndo
	s.redo = canRedo
}

// SetMessage displays a status message until it is cleared.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the message on display.
func (s *StatusLine) Message() (string, MessageType) { return s.message, s.messageType }

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) { s.width = width }

// Render draws the status line to the backend at the given row.
func (s *StatusLine) Render(b backend.Backend, row int) {
	if s.width <= 0 {
		return
	}
	b.Fill(core.ScreenRect{Left: 0, Top: row, Right: s.width, Bottom: row + 1}, core.NewStyledCell(' ', s.barStyle))

	right := s.formatRight()
	rightStart := s.width - runewidth.StringWidth(right) - 1

	badgeStyle, ok := s.toolStyles[s.tool]
	if !ok {
		badgeStyle = s.barStyle.Bold()
	}
	col := s.put(b, 0, row, " "+strings.ToUpper(s.tool.String())+" ", badgeStyle, s.width)
	col = s.put(b, col+1, row, s.formatDrawing(), s.barStyle, max(rightStart-1, col+1))

	if s.message != "" {
		s.put(b, col+2, row, s.message, s.messageStyle(), max(rightStart-1, col+2))
	}
	if rightStart > col {
		s.put(b, rightStart, row, right, s.barStyle, s.width)
	}
}

// put writes text from col, stopping before limit. It returns the column
// after the last cell written.
func (s *StatusLine) put(b backend.Backend, col, row int, text string, style core.Style, limit int) int {
	if col >= limit {
		return col
	}
	text = runewidth.Truncate(text, limit-col, "...")
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.SetCell(col, row, core.NewStyledCell(r, style))
		col += w
	}
	return col
}

func (s *StatusLine) messageStyle() core.Style {
	switch s.messageType {
	case MessageError:
		return s.barStyle.WithForeground(core.MustHex("#f44747")).Bold()
	case MessageWarning:
		return s.barStyle.WithForeground(core.MustHex("#dcdcaa"))
	default:
		return s.barStyle
	}
}

// formatDrawing shows the settings the current tool uses.
func (s *StatusLine) formatDrawing() string {
	switch s.tool {
	case tool.Rectangle, tool.Diamond:
		return s.style
	case tool.Line, tool.Arrow:
		return s.direction
	default:
		return ""
	}
}

// formatRight formats "12,5  80x24  100%  undo redo".
func (s *StatusLine) formatRight() string {
	var parts []string
	if s.pointer != "" {
		parts = append(parts, s.pointer)
	}
	if s.gridWidth > 0 {
		parts = append(parts, fmt.Sprintf("%dx%d", s.gridWidth, s.gridHeight))
	}
	parts = append(parts, fmt.Sprintf("%.0f%%", s.zoom*100))

	if s.undo {
		parts = append(parts, "undo")
	}
	if s.redo {
		parts = append(parts, "redo")
	}
	return strings.Join(parts, "  ")
}
