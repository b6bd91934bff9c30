package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "+", "0"
//   - Special keys: "Enter", "Escape", "Delete", "Up", "Space", "Plus"
//   - With modifiers: "Ctrl+Z", "Ctrl+Shift+Z"
//   - Vim-style: "<C-z>", "<C-S-z>", "<Esc>", "<Del>", also without
//     brackets: "C-z"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		parts := strings.Split(spec[1:len(spec)-1], "-")
		return parseParts(spec, parts)
	}

	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseParts(spec, strings.Split(spec, "+"))
	}

	if len(spec) > 2 && strings.Contains(spec[1:], "-") {
		return parseParts(spec, strings.Split(spec, "-"))
	}

	return parseKey(spec, ModNone)
}

// parseParts treats every part but the last as a modifier name.
func parseParts(spec string, parts []string) (Event, error) {
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, p, spec)
		}
		mods = mods.With(mod)
	}
	return parseKey(parts[len(parts)-1], mods)
}

func parseKey(name string, mods Modifier) (Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Event{}, ErrInvalidSpec
	}

	switch strings.ToLower(name) {
	case "space":
		return NewRuneEvent(' ', mods).Normalize(), nil
	case "plus":
		return NewRuneEvent('+', mods).Normalize(), nil
	case "minus":
		return NewRuneEvent('-', mods).Normalize(), nil
	}

	if k := KeyFromName(name); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	runes := []rune(name)
	if len(runes) == 1 {
		r := runes[0]
		// With a chord held, letter case in a spec is not significant;
		// Shift must be spelled out.
		if mods.Has(ModCtrl) || mods.Has(ModAlt) || mods.Has(ModMeta) {
			r = unicode.ToLower(r)
		}
		return NewRuneEvent(r, mods).Normalize(), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return ev
}
