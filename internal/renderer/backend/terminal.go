package backend

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridsketch/internal/input/key"
	"github.com/dshills/gridsketch/internal/renderer/core"
)

// Terminal implements Backend using tcell.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex

	// Bracketed paste state, touched only by PollEvent.
	pasting bool
	paste   strings.Builder
}

// NewTerminal opens the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTerminal, err)
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing screen, such as a
// tcell.SimulationScreen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrNoTerminal, err)
	}
	t.screen.EnableMouse(tcell.MouseDragEvents)
	t.screen.EnablePaste()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) GetCell(x, y int) core.Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, _, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return core.Cell{Rune: mainc, Style: convertTcellStyle(style)}
}

func (t *Terminal) Fill(rect core.ScreenRect, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	style := convertStyle(cell.Style)
	width, height := t.screen.Size()
	for y := max(rect.Top, 0); y < rect.Bottom && y < height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < width; x++ {
			t.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.HideCursor()
}

func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()
	_ = t.screen.Beep() // best-effort; terminal may not support beep
}

// Interrupt wakes PollEvent.
func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil)) // queue full means a poll is already pending
}

// PollEvent returns the next event. Keys typed between the start and end
// of a bracketed paste are gathered into one EventPaste.
func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}

		if p, ok := ev.(*tcell.EventPaste); ok {
			if p.Start() {
				t.pasting = true
				t.paste.Reset()
				continue
			}
			t.pasting = false
			return Event{Type: EventPaste, PasteText: t.paste.String()}
		}

		if k, ok := ev.(*tcell.EventKey); ok && t.pasting {
			appendPasteKey(&t.paste, k)
			continue
		}

		out := convertEvent(ev)
		if out.Type == EventNone {
			if _, ok := ev.(*tcell.EventInterrupt); !ok {
				continue
			}
		}
		return out
	}
}

func appendPasteKey(sb *strings.Builder, k *tcell.EventKey) {
	switch k.Key() {
	case tcell.KeyRune:
		sb.WriteRune(k.Rune())
	case tcell.KeyEnter, tcell.KeyLF:
		sb.WriteByte('\n')
	case tcell.KeyTab:
		sb.WriteByte('\t')
	}
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(convertColor(s.Foreground)).
		Background(convertColor(s.Background))

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}

func convertColor(c core.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertTcellStyle converts tcell.Style back to our Style.
func convertTcellStyle(ts tcell.Style) core.Style {
	fg, bg, attrs := ts.Decompose()

	s := core.Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
	}
	if attrs&tcell.AttrBold != 0 {
		s.Attributes |= core.AttrBold
	}
	if attrs&tcell.AttrDim != 0 {
		s.Attributes |= core.AttrDim
	}
	if attrs&tcell.AttrUnderline != 0 {
		s.Attributes |= core.AttrUnderline
	}
	if attrs&tcell.AttrReverse != 0 {
		s.Attributes |= core.AttrReverse
	}
	return s
}

func convertTcellColor(tc tcell.Color) core.Color {
	if tc == tcell.ColorDefault {
		return core.ColorDefault
	}
	r, g, b := tc.RGB()
	return core.ColorFromRGB(uint8(r), uint8(g), uint8(b))
}

// convertEvent converts a tcell event. Unhandled events become EventNone.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, ok := convertKey(e)
		if !ok {
			return Event{}
		}
		return Event{Type: EventKey, Key: k}

	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{
			Type:    EventMouse,
			X:       x,
			Y:       y,
			Buttons: convertMouseButtons(e.Buttons()),
			Mods:    convertMod(e.Modifiers()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	default:
		return Event{}
	}
}

// specialKeys maps tcell keys that have a name in package key. tcell
// aliases Backspace, Tab, Enter and Escape to control codes, so those are
// listed under their tcell names only.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
}

// convertKey converts a tcell key event. Control codes become Ctrl plus
// the lower-case letter, so Ctrl+Z arrives as C-z.
func convertKey(e *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	if k == tcell.KeyRune {
		return key.NewRuneEvent(e.Rune(), mods), true
	}
	if named, ok := specialKeys[k]; ok {
		return key.NewSpecialEvent(named, mods), true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent(rune('a'+(k-tcell.KeyCtrlA)), mods.With(key.ModCtrl)), true
	}
	if k == tcell.KeyCtrlSpace {
		return key.NewRuneEvent(' ', mods.With(key.ModCtrl)), true
	}
	return key.Event{}, false
}

// convertMod converts a tcell modifier mask.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}

// convertMouseButtons converts a tcell button mask.
func convertMouseButtons(b tcell.ButtonMask) MouseButton {
	var result MouseButton
	pairs := []struct {
		from tcell.ButtonMask
		to   MouseButton
	}{
		{tcell.Button1, MouseLeft},
		{tcell.Button3, MouseMiddle},
		{tcell.Button2, MouseRight},
		{tcell.WheelUp, MouseWheelUp},
		{tcell.WheelDown, MouseWheelDown},
		{tcell.WheelLeft, MouseWheelLeft},
		{tcell.WheelRight, MouseWheelRight},
	}
	for _, p := range pairs {
		if b&p.from != 0 {
			result |= p.to
		}
	}
	return result
}
