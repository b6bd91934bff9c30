// Package keymap maps key presses to editor action names.
//
// A Keymap is a list of bindings from a key specification to an action.
// Key specs accept several spellings:
//
//	"r"        - Single character
//	"C-z"      - Ctrl+Z (Vim notation)
//	"<C-z>"    - Ctrl+Z (angle bracket notation)
//	"Ctrl+Z"   - Ctrl+Z (readable notation)
//	"<C-S-z>"  - Ctrl+Shift+Z
//
// User bindings are layered over the defaults with Overlay; binding a key
// to the action "none" removes it.
//
// # Usage
//
//	km, err := keymap.Default().Overlay(user).Parse()
//	if b, ok := km.Lookup(ev); ok {
//	    // dispatch b.Action
//	}
package keymap
