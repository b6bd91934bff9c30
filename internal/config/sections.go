package config

import "fmt"

// Section accessor methods return snapshot structs. Mutating the returned
// struct does not modify the underlying configuration.

// EditorConfig holds canvas and tool settings.
type EditorConfig struct {
	// Width and Height are the canvas size in cells.
	Width  int
	Height int

	// HistoryCapacity is the number of undo steps kept.
	HistoryCapacity int

	// Tool is the tool selected at startup.
	Tool string

	// BorderStyle is the rectangle and diamond glyph set
	// ("single", "double", "heavy", "rounded", "ascii", "dotted").
	BorderStyle string

	// LineDirection constrains lines and arrows ("auto", "horizontal", "vertical").
	LineDirection string

	// FreehandChar is the glyph the freehand tool draws with.
	FreehandChar string

	// EraserSize is the eraser footprint radius in cells.
	EraserSize int
}

// ViewConfig holds cell metrics and zoom settings.
type ViewConfig struct {
	CellWidth  float64
	LineHeight float64
	Baseline   float64

	// Zoom is the initial zoom factor.
	Zoom float64

	// ZoomStep is the zoom change per zoom key press.
	ZoomStep float64

	ShowGrid bool
}

// ColorsConfig holds the palette as hex strings.
type ColorsConfig struct {
	Background string
	Foreground string
	Selection  string
	Grid       string
	Preview    string
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	// Level is the minimum level written ("debug", "info", "warn", "error").
	Level string

	// File is where log lines go. Empty discards them.
	File string
}

// Editor returns the editor section.
func (c *Config) Editor() EditorConfig {
	return EditorConfig{
		Width:           c.getIntOr("editor.width", 80),
		Height:          c.getIntOr("editor.height", 24),
		HistoryCapacity: c.getIntOr("editor.history_capacity", 100),
		Tool:            c.getStringOr("editor.tool", "select"),
		BorderStyle:     c.getStringOr("editor.border_style", "single"),
		LineDirection:   c.getStringOr("editor.line_direction", "auto"),
		FreehandChar:    c.getStringOr("editor.freehand_char", "*"),
		EraserSize:      c.getIntOr("editor.eraser_size", 1),
	}
}

// View returns the view section.
func (c *Config) View() ViewConfig {
	return ViewConfig{
		CellWidth:  c.getFloatOr("view.cell_width", 8.4),
		LineHeight: c.getFloatOr("view.line_height", 20),
		Baseline:   c.getFloatOr("view.baseline", 12),
		Zoom:       c.getFloatOr("view.zoom", 1.0),
		ZoomStep:   c.getFloatOr("view.zoom_step", 0.1),
		ShowGrid:   c.getBoolOr("view.show_grid", false),
	}
}

// Colors returns the colors section.
func (c *Config) Colors() ColorsConfig {
	return ColorsConfig{
		Background: c.getStringOr("colors.background", "#1e1e1e"),
		Foreground: c.getStringOr("colors.foreground", "#d4d4d4"),
		Selection:  c.getStringOr("colors.selection", "#264f78"),
		Grid:       c.getStringOr("colors.grid", "#333333"),
		Preview:    c.getStringOr("colors.preview", "#569cd6"),
	}
}

// Logging returns the logging section.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: c.getStringOr("logging.level", "info"),
		File:  c.getStringOr("logging.file", ""),
	}
}

// Keymap returns the user's key bindings, key spec to action name.
// Entries whose action is not a string are recorded as config errors and
// skipped.
func (c *Config) Keymap() map[string]string {
	v, ok := c.Get("keymap")
	if !ok {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		c.recordConfigError("keymap", &TypeError{Path: "keymap", Expected: "map", Actual: typeName(v)})
		return nil
	}
	out := make(map[string]string, len(m))
	for keys, action := range m {
		s, ok := action.(string)
		if !ok {
			path := fmt.Sprintf("keymap.%s", keys)
			c.recordConfigError(path, &TypeError{Path: path, Expected: "string", Actual: typeName(action)})
			continue
		}
		out[keys] = s
	}
	return out
}
