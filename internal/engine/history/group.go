package history

import (
	"slices"

	"github.com/dshills/gridsketch/internal/grid"
)

// Transaction runs fn inside a group. If fn returns an error, every
// command it applied is reverted and the error is returned.
func (h *History) Transaction(g *grid.Grid, name string, fn func() error) error {
	h.BeginGroup(name)

	if err := fn(); err != nil {
		h.AbortGroup(g)
		return err
	}

	h.EndGroup()
	return nil
}

// Checkpoint is a saved copy of the grid and both stacks.
type Checkpoint struct {
	grid *grid.Grid
	undo []*undoEntry
	redo []*undoEntry
}

// CreateCheckpoint saves the state of g and the history.
func (h *History) CreateCheckpoint(g *grid.Grid) Checkpoint {
	return Checkpoint{
		grid: g.Clone(),
		undo: slices.Clone(h.undoStack),
		redo: slices.Clone(h.redoStack),
	}
}

// RestoreCheckpoint puts g and the history back to cp, whatever was
// committed, undone, redone or evicted since. An open group is dropped.
func (h *History) RestoreCheckpoint(cp Checkpoint, g *grid.Grid) {
	if cp.grid == nil {
		return
	}
	h.CancelGroup()

	if g.Width() != cp.grid.Width() || g.Height() != cp.grid.Height() {
		g.Resize(cp.grid.Width(), cp.grid.Height())
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			g.Set(x, y, cp.grid.At(x, y))
		}
	}

	h.undoStack = slices.Clone(cp.undo)
	h.redoStack = slices.Clone(cp.redo)
}
