package editor

import (
	"github.com/google/uuid"

	"github.com/dshills/gridsketch/internal/engine/history"
	"github.com/dshills/gridsketch/internal/input/keymap"
	"github.com/dshills/gridsketch/internal/raster"
	"github.com/dshills/gridsketch/internal/renderer"
	"github.com/dshills/gridsketch/internal/renderer/viewport"
	"github.com/dshills/gridsketch/internal/tool"
)

// Default canvas size in cells.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// DefaultZoomStep is how much the zoom keys change the zoom factor.
const DefaultZoomStep = 0.1

// panStep is how many cells the pan keys move the view.
const panStep = 4

// Logger receives debug output from a session. *app.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Options configures a new Session.
type Options struct {
	Width           int
	Height          int
	HistoryCapacity int

	Metrics viewport.Metrics
	Zoom    float64
	// ZoomStep is added to or subtracted from the zoom by the zoom keys.
	ZoomStep float64

	Render renderer.Options
	// Keymap resolves key presses to actions. Nil selects the default
	// bindings.
	Keymap *keymap.ParsedKeymap

	Tool          tool.Kind
	BorderStyle   raster.BorderStyle
	LineDirection raster.Direction
	FreehandChar  rune
	EraserSize    int

	// ID names the session in logs. The zero value selects a random one.
	ID uuid.UUID

	Logger Logger
}

// DefaultOptions returns the options of an 80x24 session with the Select
// tool current.
func DefaultOptions() Options {
	return Options{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		HistoryCapacity: history.DefaultCapacity,
		Metrics:         viewport.DefaultMetrics(),
		Zoom:            viewport.DefaultZoom,
		ZoomStep:        DefaultZoomStep,
		Render:          renderer.DefaultOptions(),
		Tool:            tool.Select,
		BorderStyle:     raster.Single,
		LineDirection:   raster.Auto,
		FreehandChar:    tool.DefaultFreehandChar,
		EraserSize:      1,
	}
}
