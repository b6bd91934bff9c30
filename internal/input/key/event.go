package key

import (
	"strings"
	"unicode"
)

// Event is one key press.
type Event struct {
	Key  Key
	Rune rune
	Mods Modifier
}

// NewRuneEvent creates a character key event.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Mods: mods}
}

// NewSpecialEvent creates a special key event.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Mods: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune
}

// IsChar returns true if the event should insert its rune as text:
// a printable character with no Ctrl, Alt or Meta held.
func (e Event) IsChar() bool {
	if e.Key != KeyRune || !unicode.IsPrint(e.Rune) {
		return false
	}
	return !e.Mods.Has(ModCtrl) && !e.Mods.Has(ModAlt) && !e.Mods.Has(ModMeta)
}

// Is reports whether e is the special key k, ignoring modifiers.
func (e Event) Is(k Key) bool {
	return e.Key == k
}

// Normalize folds equivalent spellings together so events can be compared
// and used as map keys. Letters held with Ctrl, Alt or Meta are lower-cased
// with Shift recorded explicitly; bare upper-case letters drop Shift since
// the rune already says it.
func (e Event) Normalize() Event {
	if e.Key != KeyRune {
		e.Rune = 0
		return e
	}
	chord := e.Mods.Has(ModCtrl) || e.Mods.Has(ModAlt) || e.Mods.Has(ModMeta)
	switch {
	case chord && unicode.IsUpper(e.Rune):
		e.Rune = unicode.ToLower(e.Rune)
		e.Mods = e.Mods.With(ModShift)
	case !chord:
		e.Mods = e.Mods.Without(ModShift)
	}
	return e
}

// Matches reports whether two events name the same key press.
func (e Event) Matches(other Event) bool {
	return e.Normalize() == other.Normalize()
}

// String returns a spec such as "Ctrl+Shift+z", "Delete" or "r".
func (e Event) String() string {
	n := e.Normalize()
	var name string
	switch {
	case n.Key != KeyRune:
		name = n.Key.String()
	case n.Rune == ' ':
		name = "Space"
	case n.Rune == '+':
		name = "Plus"
	default:
		name = string(n.Rune)
	}
	if n.Mods.IsEmpty() {
		return name
	}
	return strings.Join([]string{n.Mods.String(), name}, "+")
}
