// Package tool implements the per-tool interaction state machines.
//
// Every tool consumes pointer and key events in grid coordinates and
// answers with a Result carrying two independent op lists:
//
//   - Committed ops are final. The caller records them in history and
//     applies them to the grid.
//   - Preview ops show an in-progress gesture. They are never applied; the
//     caller paints them as an overlay and discards them on the next event.
//
// Tools only read the grid, through Canvas. They never mutate it, so every
// change reaches the grid through history and stays undoable.
//
// # Tool kinds
//
// The set of tools is closed. Toolbox owns one instance of each Kind and
// dispatches to the active one with a switch; tool-specific settings are
// reached through typed accessors such as Toolbox.Line, never by type
// assertion.
package tool
