package editor

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/gridsketch/internal/grid"
	"github.com/dshills/gridsketch/internal/input/key"
	"github.com/dshills/gridsketch/internal/renderer/dirty"
	"github.com/dshills/gridsketch/internal/tool"
)

// Wheel zoom factors.
const (
	wheelZoomOut = 0.9
	wheelZoomIn  = 1.1
)

// PointerDown handles a button press at screen pixel (sx, sy).
func (s *Session) PointerDown(sx, sy float64) EventResult {
	p := s.view.ScreenToGrid(sx, sy)
	k := s.tools.Active()
	if name := strokeName(k); name != "" {
		s.history.BeginGroup(name)
	}
	changed := s.apply(s.tools.Current().PointerDown(s.grid, p), k.String())
	s.closeStroke()
	return s.result(changed)
}

// PointerMove handles pointer motion, with or without a button held.
func (s *Session) PointerMove(sx, sy float64) EventResult {
	p := s.view.ScreenToGrid(sx, sy)
	changed := s.apply(s.tools.Current().PointerMove(s.grid, p), s.tools.Active().String())
	s.closeStroke()
	return s.result(changed)
}

// PointerUp handles a button release.
func (s *Session) PointerUp(sx, sy float64) EventResult {
	p := s.view.ScreenToGrid(sx, sy)
	name := s.tools.Active().String()
	if name == tool.Select.String() {
		name = "move"
	}
	changed := s.apply(s.tools.Current().PointerUp(s.grid, p), name)
	s.closeStroke()
	return s.result(changed)
}

// KeyDown handles a key press. Escape always goes to the current tool.
// Other keys run their bound action, except that bare keys are typed as
// text while the Text tool has a cursor. Unbound keys go to the tool.
func (s *Session) KeyDown(ev key.Event) EventResult {
	if !ev.Is(key.KeyEscape) {
		if b, ok := s.keys.Lookup(ev); ok && !(b.IsBareKey() && s.typing()) {
			return s.runAction(b.Action)
		}
	}
	changed := s.apply(s.tools.Current().Key(s.grid, ev), s.tools.Active().String())
	s.closeStroke()
	return s.result(changed)
}

// KeyUp handles a key release. No tool reacts to releases.
func (s *Session) KeyUp(key.Event) EventResult {
	return s.result(false)
}

// Wheel zooms around the pointer, or pans horizontally with Shift held.
// A positive delta zooms out. NaN and infinite values are ignored.
func (s *Session) Wheel(delta, sx, sy float64, mods key.Modifier) EventResult {
	if delta == 0 || !finite(delta, sx, sy) {
		return s.result(false)
	}
	if mods.Has(key.ModShift) {
		if !s.view.PanBy(-delta, 0) {
			return s.result(false)
		}
		s.tracker.MarkChange(dirty.Change{Type: dirty.ChangeView})
		return s.result(true)
	}
	factor := wheelZoomIn
	if delta > 0 {
		factor = wheelZoomOut
	}
	if !s.view.ZoomAt(factor, sx, sy) {
		return s.result(false)
	}
	s.tracker.MarkChange(dirty.Change{Type: dirty.ChangeView})
	return s.result(true)
}

// PasteText handles text pasted from outside the editor. With the Text
// tool's cursor placed, the first line is typed at the cursor. Otherwise
// the text replaces the clipboard and, on the Select tool, is pasted.
func (s *Session) PasteText(text string) EventResult {
	if s.typing() {
		line, _, _ := strings.Cut(text, "\n")
		line = strings.TrimSuffix(line, "\r")
		changed := s.apply(s.tools.Text().Insert(s.grid, glyphs(line)), tool.Text.String())
		return s.result(changed)
	}
	if !s.clip.SetText(text) {
		return s.notice(false, "nothing to paste")
	}
	if s.tools.Active() != tool.Select {
		return s.notice(false, "clipboard updated; paste with the select tool")
	}
	return s.Paste()
}

// glyphs splits text into user-perceived characters, one rune per cell.
// Clusters that need more than one rune become Blank.
func glyphs(text string) []rune {
	var out []rune
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		rs := g.Runes()
		if len(rs) == 1 {
			out = append(out, rs[0])
			continue
		}
		out = append(out, grid.Blank)
	}
	return out
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
