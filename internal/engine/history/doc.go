// Package history provides undo/redo for grid edits.
//
// Every grid mutation made on behalf of the user goes through a History so
// it can be reverted. Key concepts:
//
// # Commands
//
// A DrawCommand pairs a list of draw ops with the glyph each op replaced,
// captured when the ops are first applied. Undo writes those glyphs back
// in reverse order; redo re-applies the ops. CompoundCommand bundles
// several commands into one undo unit.
//
// # History Stack
//
// The History type keeps a bounded undo stack and a redo stack:
//
//	h := NewHistory(100) // at most 100 undo entries
//
//	h.Commit(g, "Rectangle", ops)
//
//	h.Undo(g)
//	h.Redo(g)
//
// Committing a new command clears the redo stack. When the undo stack
// grows past its capacity the oldest entry is dropped and can no longer
// be undone.
//
// # Command Grouping
//
// Multiple commits can be grouped as a single undo unit, which is how a
// freehand stroke made of many pointer moves undoes in one step:
//
//	h.BeginGroup("Freehand")
//	// ... one commit per pointer move ...
//	h.EndGroup()
//
// Transaction and AbortGroup revert a partially applied group, which
// scripted edits use to stay atomic when they fail.
package history
