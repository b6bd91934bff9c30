package keymap

// Default returns the built-in bindings.
func Default() *Keymap {
	return &Keymap{
		Name:   "default",
		Source: "default",
		Bindings: []Binding{
			// Tools
			{Keys: "v", Action: ActionToolSelect, Description: "Select tool", Category: "Tools"},
			{Keys: "r", Action: ActionToolRectangle, Description: "Rectangle tool", Category: "Tools"},
			{Keys: "l", Action: ActionToolLine, Description: "Line tool", Category: "Tools"},
			{Keys: "a", Action: ActionToolArrow, Description: "Arrow tool", Category: "Tools"},
			{Keys: "d", Action: ActionToolDiamond, Description: "Diamond tool", Category: "Tools"},
			{Keys: "t", Action: ActionToolText, Description: "Text tool", Category: "Tools"},
			{Keys: "f", Action: ActionToolFreehand, Description: "Freehand tool", Category: "Tools"},
			{Keys: "e", Action: ActionToolEraser, Description: "Eraser tool", Category: "Tools"},
			{Keys: "s", Action: ActionStyleNext, Description: "Next border style", Category: "Tools"},
			{Keys: "o", Action: ActionDirectionNext, Description: "Next line direction", Category: "Tools"},

			// Edit
			{Keys: "C-z", Action: ActionUndo, Description: "Undo", Category: "Edit"},
			{Keys: "C-S-z", Action: ActionRedo, Description: "Redo", Category: "Edit"},
			{Keys: "C-y", Action: ActionRedo, Description: "Redo", Category: "Edit"},
			{Keys: "C-c", Action: ActionCopy, Description: "Copy selection", Category: "Edit"},
			{Keys: "C-x", Action: ActionCut, Description: "Cut selection", Category: "Edit"},
			{Keys: "C-v", Action: ActionPaste, Description: "Paste", Category: "Edit"},
			{Keys: "Delete", Action: ActionDelete, Description: "Delete selection", Category: "Edit"},
			{Keys: "C-l", Action: ActionClear, Description: "Clear canvas", Category: "Edit"},
			{Keys: "C-a", Action: ActionSelectAll, Description: "Select the whole canvas", Category: "Edit"},

			// View
			{Keys: "+", Action: ActionZoomIn, Description: "Zoom in", Category: "View"},
			{Keys: "=", Action: ActionZoomIn, Description: "Zoom in", Category: "View"},
			{Keys: "-", Action: ActionZoomOut, Description: "Zoom out", Category: "View"},
			{Keys: "0", Action: ActionZoomReset, Description: "Reset zoom", Category: "View"},
			{Keys: "Left", Action: ActionPanLeft, Description: "Pan left", Category: "View"},
			{Keys: "Right", Action: ActionPanRight, Description: "Pan right", Category: "View"},
			{Keys: "Up", Action: ActionPanUp, Description: "Pan up", Category: "View"},
			{Keys: "Down", Action: ActionPanDown, Description: "Pan down", Category: "View"},
			{Keys: "g", Action: ActionToggleGrid, Description: "Toggle grid lines", Category: "View"},

			// Application
			{Keys: "C-q", Action: ActionQuit, Description: "Quit", Category: "App"},
			{Keys: "C-s", Action: ActionExport, Description: "Export to file", Category: "App"},
		},
	}
}
