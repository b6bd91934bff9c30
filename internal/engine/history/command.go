package history

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/gridsketch/internal/grid"
)

// Command is an undoable change to a grid.
type Command interface {
	// Execute applies the change. It is called again on redo.
	Execute(g *grid.Grid)

	// Undo restores every touched cell to its value before Execute.
	Undo(g *grid.Grid)

	// Description returns a human-readable description of the command.
	Description() string

	// Cells returns the coordinates the command writes.
	Cells() []grid.Point
}

// DrawCommand records a batch of draw ops together with the glyph each op
// replaced. It is built by Apply and never modified afterwards.
type DrawCommand struct {
	ID   uuid.UUID
	Name string

	ops   []grid.DrawOp
	prior []grid.DrawOp
}

// Apply writes ops to g and returns the command recording them. Ops that
// fall outside the grid are dropped. The second result is false when no
// cell actually changed.
func Apply(g *grid.Grid, name string, ops []grid.DrawOp) (*DrawCommand, bool) {
	c := &DrawCommand{
		ID:   uuid.New(),
		Name: name,
	}

	changed := false
	for _, op := range ops {
		if !g.InBounds(op.X, op.Y) {
			continue
		}
		prev := g.Set(op.X, op.Y, op.Ch)
		if prev != g.At(op.X, op.Y) {
			changed = true
		}
		c.ops = append(c.ops, op)
		c.prior = append(c.prior, grid.Op(op.X, op.Y, prev))
	}
	return c, changed
}

// Execute re-applies the recorded ops.
func (c *DrawCommand) Execute(g *grid.Grid) {
	g.Apply(c.ops)
}

// Undo writes the captured glyphs back in reverse order so repeated
// coordinates end at their oldest value.
func (c *DrawCommand) Undo(g *grid.Grid) {
	for i := len(c.prior) - 1; i >= 0; i-- {
		op := c.prior[i]
		g.Set(op.X, op.Y, op.Ch)
	}
}

// Description returns the command name, or a summary of its size.
func (c *DrawCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.ops) == 1 {
		return "Draw 1 cell"
	}
	return fmt.Sprintf("Draw %d cells", len(c.ops))
}

// Cells returns each written coordinate in application order.
func (c *DrawCommand) Cells() []grid.Point {
	pts := make([]grid.Point, len(c.ops))
	for i, op := range c.ops {
		pts[i] = op.At()
	}
	return pts
}

// Ops returns a copy of the applied ops.
func (c *DrawCommand) Ops() []grid.DrawOp {
	return append([]grid.DrawOp(nil), c.ops...)
}

// Prior returns a copy of the captured glyphs, one per applied op.
func (c *DrawCommand) Prior() []grid.DrawOp {
	return append([]grid.DrawOp(nil), c.prior...)
}

// CompoundCommand groups multiple commands as one undo unit.
type CompoundCommand struct {
	Name     string
	Commands []Command
}

// NewCompoundCommand creates a new compound command.
func NewCompoundCommand(name string, commands ...Command) *CompoundCommand {
	return &CompoundCommand{
		Name:     name,
		Commands: commands,
	}
}

// Execute runs all commands in order.
func (c *CompoundCommand) Execute(g *grid.Grid) {
	for _, cmd := range c.Commands {
		cmd.Execute(g)
	}
}

// Undo reverses all commands in reverse order.
func (c *CompoundCommand) Undo(g *grid.Grid) {
	for i := len(c.Commands) - 1; i >= 0; i-- {
		c.Commands[i].Undo(g)
	}
}

// Description returns the compound command's name.
func (c *CompoundCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Commands) == 1 {
		return c.Commands[0].Description()
	}
	return fmt.Sprintf("%d operations", len(c.Commands))
}

// Cells returns the coordinates written by every member command.
func (c *CompoundCommand) Cells() []grid.Point {
	var pts []grid.Point
	for _, cmd := range c.Commands {
		pts = append(pts, cmd.Cells()...)
	}
	return pts
}

// Add adds a command to the compound command.
func (c *CompoundCommand) Add(cmd Command) {
	c.Commands = append(c.Commands, cmd)
}

// IsEmpty returns true if the compound command has no commands.
func (c *CompoundCommand) IsEmpty() bool {
	return len(c.Commands) == 0
}
