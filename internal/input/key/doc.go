// Package key describes keyboard input independently of the terminal
// library that produced it.
//
// An Event is either a named special key (Enter, Escape, arrows, ...) or a
// character key carrying its rune, plus a modifier mask. Key bindings in
// configuration are written as specs and parsed with Parse:
//
//	Parse("Ctrl+Z")  // Ctrl + 'z'
//	Parse("<C-S-z>") // Ctrl + Shift + 'z'
//	Parse("r")       // plain 'r'
//	Parse("Delete")  // the Delete key
package key
