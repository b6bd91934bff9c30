// Package backend abstracts the display the editor paints onto and the
// input events it reads back.
package backend

import (
	"errors"
	"strings"
	"sync"

	"github.com/dshills/gridsketch/internal/input/key"
	"github.com/dshills/gridsketch/internal/renderer/core"
)

// ErrNoTerminal is returned when no terminal can be opened.
var ErrNoTerminal = errors.New("no terminal available")

// EventType identifies the type of display event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventPaste
	// EventClosed is returned by PollEvent once the backend is shut down.
	EventClosed
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventPaste:
		return "paste"
	case EventClosed:
		return "closed"
	default:
		return "none"
	}
}

// Event represents a display event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Mouse fields. X and Y are display cells; Buttons is the set of
	// buttons held, with wheel motion reported as momentary buttons.
	X, Y    int
	Buttons MouseButton
	Mods    key.Modifier

	// Width and Height are set for EventResize.
	Width, Height int

	// PasteText holds the complete text of a bracketed paste.
	PasteText string
}

// MouseButton is a set of mouse buttons.
type MouseButton uint16

const (
	MouseNone MouseButton = 0
	MouseLeft MouseButton = 1 << iota
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
	MouseWheelLeft
	MouseWheelRight
)

// Has reports whether b includes button.
func (b MouseButton) Has(button MouseButton) bool {
	return b&button != 0
}

// IsWheel reports whether b includes any wheel motion.
func (b MouseButton) IsWheel() bool {
	return b&(MouseWheelUp|MouseWheelDown|MouseWheelLeft|MouseWheelRight) != 0
}

// Backend is a cell display with an input event source.
type Backend interface {
	// Init prepares the display. Must be called before any other method.
	Init() error

	// Shutdown restores the display. PollEvent returns EventClosed after.
	Shutdown()

	// Size returns the display dimensions in cells.
	Size() (width, height int)

	// SetCell sets one cell. Positions outside the display are ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns a cell, or an empty cell outside the display.
	GetCell(x, y int) core.Cell

	// Fill sets every cell of rect.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear blanks the display.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	ShowCursor(x, y int)
	HideCursor()

	// PollEvent blocks until the next event.
	PollEvent() Event

	// Interrupt wakes a pending PollEvent with an EventNone.
	Interrupt()

	Beep()
}

// NullBackend is an in-memory backend for tests and headless runs.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	shows         int

	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
		done:   make(chan struct{}),
	}
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.allocate()
	return nil
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Shutdown() {
	b.closeOnce.Do(func() { close(b.done) })
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.inside(x, y) {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) core.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.inside(x, y) {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height && y < len(b.cells)
}

func (b *NullBackend) Fill(rect core.ScreenRect, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for y := max(rect.Top, 0); y < rect.Bottom; y++ {
		for x := max(rect.Left, 0); x < rect.Right; x++ {
			if b.inside(x, y) {
				b.cells[y][x] = cell
			}
		}
	}
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	empty := core.EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	b.shows++
	b.mu.Unlock()
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX, b.cursorY, b.cursorVisible = x, y, true
}

func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() Event {
	select {
	case <-b.done:
		return Event{Type: EventClosed}
	default:
	}
	select {
	case ev := <-b.events:
		return ev
	case <-b.done:
		return Event{Type: EventClosed}
	}
}

// PostEvent queues an event for PollEvent. Events are dropped when the
// queue is full.
func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
	}
}

func (b *NullBackend) Interrupt() {
	b.PostEvent(Event{Type: EventNone})
}

func (b *NullBackend) Beep() {}

// CursorPosition returns the cursor position and visibility.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Shows returns how many times Show was called.
func (b *NullBackend) Shows() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}

// Resize changes the display size, blanks it and queues an EventResize.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.width, b.height = width, height
	b.allocate()
	b.mu.Unlock()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

// Row returns the runes of display row y with trailing blanks trimmed.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= len(b.cells) {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y] {
		r := c.Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}
