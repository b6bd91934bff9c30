package editor

import (
	"github.com/dshills/gridsketch/internal/export"
	"github.com/dshills/gridsketch/internal/renderer"
)

// RenderCommands returns the commands that paint the whole canvas,
// followed by the selection and the preview overlay. Pending dirty state
// is left alone.
func (s *Session) RenderCommands() []renderer.Command {
	return s.appendOverlays(s.emitter.FullCommands(s.grid, s.view))
}

// DirtyRenderCommands returns the commands that bring the last painted
// frame up to date and clears the dirty state. It returns nil when there
// is nothing to paint.
func (s *Session) DirtyRenderCommands() []renderer.Command {
	if !s.tracker.IsDirty() && len(s.preview) == 0 && s.shownSel.Empty() {
		return nil
	}
	return s.appendOverlays(s.emitter.DirtyCommands(s.grid, s.view))
}

// PreviewCommand returns the overlay of the current tool's uncommitted
// output. It has no chars when the tool is idle.
func (s *Session) PreviewCommand() renderer.Overlay {
	return s.emitter.PreviewCommand(s.grid, s.preview, s.view)
}

func (s *Session) appendOverlays(cmds []renderer.Command) []renderer.Command {
	if !s.shownSel.Empty() {
		cmds = append(cmds, s.emitter.SelectionCommand(s.shownSel, s.view))
	}
	if len(s.preview) > 0 {
		cmds = append(cmds, s.PreviewCommand())
	}
	return cmds
}

// ExportASCII returns the canvas as text: rows joined with newlines,
// trailing blanks and blank trailing rows removed. A blank canvas exports
// as the empty string.
func (s *Session) ExportASCII() string {
	return export.ASCII(s.grid, export.Options{})
}
