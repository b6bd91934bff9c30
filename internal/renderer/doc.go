// Package renderer turns grid state into abstract render commands.
//
// The emitter never draws. It describes a frame as a list of commands in
// screen pixel coordinates, which a host replays on whatever surface it
// owns:
//
//	┌─────────────────────────────────────────┐
//	│        editor.Session                   │
//	├─────────────────────────────────────────┤
//	│  Emitter │ dirty.Tracker │ Viewport     │
//	├─────────────────────────────────────────┤
//	│        []Command                        │
//	├─────────────────────────────────────────┤
//	│  Host painter (tcell backend)           │
//	└─────────────────────────────────────────┘
//
// A full frame is Clear, an optional DrawGrid, SetFont and one DrawChar
// per visible cell. An incremental frame repaints the background of each
// dirty region before redrawing its characters. Selection highlights and
// tool previews are separate commands painted last.
package renderer
