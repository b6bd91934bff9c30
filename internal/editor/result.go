package editor

import "github.com/dshills/gridsketch/internal/tool"

// EventResult tells the host what changed after one inbound call.
type EventResult struct {
	// NeedsRedraw is set when the canvas, the preview overlay or the
	// selection changed.
	NeedsRedraw bool
	ActiveTool  tool.Kind
	CanUndo     bool
	CanRedo     bool

	// CopyToSystemClipboard asks the host to place ASCIIText on the system
	// clipboard.
	CopyToSystemClipboard bool
	ASCIIText             string

	// WantsSystemPaste is set when a paste found the internal clipboard
	// empty. The host may read the system clipboard and call PasteText.
	WantsSystemPaste bool

	// Destructive is set when the call discarded content, history or the
	// clipboard. The change has already been made.
	Destructive bool

	// Notice is a short message for the user, set when a request was
	// refused or replaced by a fallback.
	Notice string

	// Action carries a host action bound in the keymap, such as quit.
	Action string
}
