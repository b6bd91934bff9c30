package backend

import (
	"testing"
	"time"

	"github.com/dshills/gridsketch/internal/input/key"
	"github.com/dshills/gridsketch/internal/renderer/core"
)

func newNull(t *testing.T, w, h int) *NullBackend {
	t.Helper()
	b := NewNullBackend(w, h)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return b
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := newNull(t, 20, 5)

	cell := core.NewStyledCell('X', core.DefaultStyle().WithForeground(core.MustHex("#ff0000")))
	b.SetCell(10, 2, cell)

	if got := b.GetCell(10, 2); got != cell {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)
	if got := b.GetCell(-1, 0); got != core.EmptyCell() {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendFillAndRow(t *testing.T) {
	b := newNull(t, 10, 3)

	b.Fill(core.ScreenRect{Left: -2, Top: 1, Right: 4, Bottom: 2}, core.NewStyledCell('.', core.DefaultStyle()))
	b.SetCell(6, 1, core.NewStyledCell('x', core.DefaultStyle()))

	if got := b.Row(1); got != "....  x" {
		t.Errorf("Row(1) = %q", got)
	}
	if got := b.Row(0); got != "" {
		t.Errorf("Row(0) = %q", got)
	}

	b.Clear()
	if got := b.Row(1); got != "" {
		t.Errorf("Row after Clear = %q", got)
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := newNull(t, 80, 24)

	b.ShowCursor(15, 10)
	x, y, visible := b.CursorPosition()
	if x != 15 || y != 10 || !visible {
		t.Errorf("cursor position: expected (15, 10, true), got (%d, %d, %v)", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible = b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendResizeQueuesEvent(t *testing.T) {
	b := newNull(t, 80, 24)
	b.Resize(100, 40)

	if w, h := b.Size(); w != 100 || h != 40 {
		t.Errorf("expected size (100, 40), got (%d, %d)", w, h)
	}
	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 100 || ev.Height != 40 {
		t.Errorf("event = %+v", ev)
	}
}

func TestNullBackendPostEvent(t *testing.T) {
	b := newNull(t, 80, 24)

	b.PostEvent(Event{Type: EventKey, Key: key.NewSpecialEvent(key.KeyEnter, key.ModNone)})
	got := b.PollEvent()
	if got.Type != EventKey || !got.Key.Is(key.KeyEnter) {
		t.Errorf("expected enter key event, got %+v", got)
	}
}

func TestNullBackendShutdownWakesPoll(t *testing.T) {
	b := newNull(t, 10, 10)

	done := make(chan Event)
	go func() { done <- b.PollEvent() }()
	b.Shutdown()
	b.Shutdown()

	select {
	case ev := <-done:
		if ev.Type != EventClosed {
			t.Errorf("event = %v, want closed", ev.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("PollEvent did not return after Shutdown")
	}
}

func TestMouseButton(t *testing.T) {
	b := MouseLeft | MouseWheelUp
	if !b.Has(MouseLeft) || b.Has(MouseRight) {
		t.Errorf("Has wrong for %v", b)
	}
	if !b.IsWheel() || MouseLeft.IsWheel() {
		t.Error("IsWheel wrong")
	}
}
