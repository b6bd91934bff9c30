package keymap

// Editor actions.
const (
	ActionToolSelect    = "tool.select"
	ActionToolRectangle = "tool.rectangle"
	ActionToolLine      = "tool.line"
	ActionToolArrow     = "tool.arrow"
	ActionToolDiamond   = "tool.diamond"
	ActionToolText      = "tool.text"
	ActionToolFreehand  = "tool.freehand"
	ActionToolEraser    = "tool.eraser"

	ActionUndo   = "edit.undo"
	ActionRedo   = "edit.redo"
	ActionCopy   = "edit.copy"
	ActionCut    = "edit.cut"
	ActionPaste  = "edit.paste"
	ActionDelete = "edit.delete"
	ActionClear  = "edit.clear"

	ActionSelectAll = "edit.selectAll"

	ActionZoomIn     = "view.zoomIn"
	ActionZoomOut    = "view.zoomOut"
	ActionZoomReset  = "view.zoomReset"
	ActionPanLeft    = "view.panLeft"
	ActionPanRight   = "view.panRight"
	ActionPanUp      = "view.panUp"
	ActionPanDown    = "view.panDown"
	ActionToggleGrid = "view.toggleGrid"

	ActionStyleNext     = "style.next"
	ActionDirectionNext = "direction.next"

	// Host actions are passed through to the application.
	ActionQuit   = "app.quit"
	ActionExport = "app.export"

	// ActionNone unbinds a key in an overlay.
	ActionNone = "none"
)

var knownActions = map[string]struct{}{
	ActionToolSelect: {}, ActionToolRectangle: {}, ActionToolLine: {}, ActionToolArrow: {},
	ActionToolDiamond: {}, ActionToolText: {}, ActionToolFreehand: {}, ActionToolEraser: {},
	ActionUndo: {}, ActionRedo: {}, ActionCopy: {}, ActionCut: {}, ActionPaste: {},
	ActionDelete: {}, ActionClear: {}, ActionSelectAll: {},
	ActionZoomIn: {}, ActionZoomOut: {}, ActionZoomReset: {},
	ActionPanLeft: {}, ActionPanRight: {}, ActionPanUp: {}, ActionPanDown: {},
	ActionToggleGrid: {}, ActionStyleNext: {}, ActionDirectionNext: {},
	ActionQuit: {}, ActionExport: {}, ActionNone: {},
}

// IsKnownAction reports whether name is an action the editor or the host
// understands.
func IsKnownAction(name string) bool {
	_, ok := knownActions[name]
	return ok
}
