package history

import (
	"time"

	"github.com/dshills/gridsketch/internal/grid"
)

// DefaultCapacity is the number of undo entries kept when none is configured.
const DefaultCapacity = 100

// undoEntry wraps a command with metadata.
type undoEntry struct {
	command   Command
	timestamp time.Time
}

// OperationInfo provides read-only info about a history entry.
type OperationInfo struct {
	Description string
	Timestamp   time.Time
	Cells       int
}

func (e *undoEntry) info() OperationInfo {
	return OperationInfo{
		Description: e.command.Description(),
		Timestamp:   e.timestamp,
		Cells:       len(e.command.Cells()),
	}
}

// History manages undo/redo state for a grid. It is owned by a single
// editor session and is not safe for concurrent use.
type History struct {
	undoStack []*undoEntry
	redoStack []*undoEntry

	// Grouping state
	grouping  bool
	groupName string
	groupCmds []Command

	maxEntries int
}

// NewHistory creates a history keeping at most maxEntries undo entries.
// Non-positive values select DefaultCapacity.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultCapacity
	}
	return &History{
		maxEntries: maxEntries,
	}
}

// Commit applies ops to g and records them as one undoable command.
// It returns nil when no cell changed; nothing is recorded in that case
// and the redo stack is left alone.
func (h *History) Commit(g *grid.Grid, name string, ops []grid.DrawOp) *DrawCommand {
	cmd, changed := Apply(g, name, ops)
	if !changed {
		return nil
	}
	h.Push(cmd)
	return cmd
}

// Execute runs a command and adds it to the undo stack.
func (h *History) Execute(cmd Command, g *grid.Grid) {
	cmd.Execute(g)
	h.Push(cmd)
}

// Push adds an already applied command to the undo stack and clears the
// redo stack. While a group is open the command is held for the group;
// the redo stack is cleared as soon as the grid has changed.
func (h *History) Push(cmd Command) {
	if h.grouping {
		if len(h.groupCmds) == 0 {
			h.redoStack = nil
		}
		h.groupCmds = append(h.groupCmds, cmd)
		return
	}
	h.push(cmd)
}

func (h *History) push(cmd Command) {
	h.undoStack = append(h.undoStack, &undoEntry{
		command:   cmd,
		timestamp: time.Now(),
	})

	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		clear(h.undoStack[:excess])
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo reverts the most recent command and moves it to the redo stack.
// It returns false when there is nothing to undo.
func (h *History) Undo(g *grid.Grid) (Command, bool) {
	if len(h.undoStack) == 0 {
		return nil, false
	}

	entry := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	entry.command.Undo(g)
	h.redoStack = append(h.redoStack, entry)
	return entry.command, true
}

// Redo re-applies the most recently undone command.
// It returns false when there is nothing to redo.
func (h *History) Redo(g *grid.Grid) (Command, bool) {
	if len(h.redoStack) == 0 {
		return nil, false
	}

	entry := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	entry.command.Execute(g)
	h.undoStack = append(h.undoStack, entry)
	return entry.command, true
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// BeginGroup starts a command group.
// Commands pushed while grouping will be combined into a single undo unit.
func (h *History) BeginGroup(name string) {
	if h.grouping {
		// Already grouping, ignore nested calls
		return
	}

	h.grouping = true
	h.groupName = name
	h.groupCmds = nil
}

// EndGroup finishes a command group.
// All commands since BeginGroup are combined into a CompoundCommand.
func (h *History) EndGroup() {
	if !h.grouping {
		return
	}

	h.grouping = false
	cmds := h.groupCmds
	h.groupCmds = nil

	if len(cmds) == 0 {
		return
	}
	h.push(NewCompoundCommand(h.groupName, cmds...))
}

// CancelGroup closes a group without recording it.
// Commands already applied still affect the grid; see AbortGroup.
func (h *History) CancelGroup() {
	h.grouping = false
	h.groupCmds = nil
}

// AbortGroup reverts every command applied since BeginGroup and closes
// the group without recording it.
func (h *History) AbortGroup(g *grid.Grid) {
	for i := len(h.groupCmds) - 1; i >= 0; i-- {
		h.groupCmds[i].Undo(g)
	}
	h.CancelGroup()
}

// GroupSize returns the number of commands held by the open group.
func (h *History) GroupSize() int {
	return len(h.groupCmds)
}

// IsGrouping returns true if currently in a command group.
func (h *History) IsGrouping() bool {
	return h.grouping
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.grouping = false
	h.groupCmds = nil
}

// PeekUndo returns info about the next undo operation without removing it.
func (h *History) PeekUndo() (OperationInfo, bool) {
	if len(h.undoStack) == 0 {
		return OperationInfo{}, false
	}
	return h.undoStack[len(h.undoStack)-1].info(), true
}

// PeekRedo returns info about the next redo operation without removing it.
func (h *History) PeekRedo() (OperationInfo, bool) {
	if len(h.redoStack) == 0 {
		return OperationInfo{}, false
	}
	return h.redoStack[len(h.redoStack)-1].info(), true
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultCapacity
	}

	h.maxEntries = max

	if len(h.undoStack) > max {
		excess := len(h.undoStack) - max
		h.undoStack = h.undoStack[excess:]
	}
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	return h.maxEntries
}
