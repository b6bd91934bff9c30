package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/dshills/gridsketch/internal/config/layer"
	"github.com/dshills/gridsketch/internal/config/loader"
	"github.com/dshills/gridsketch/internal/grid"
	"github.com/dshills/gridsketch/internal/input/keymap"
	"github.com/dshills/gridsketch/internal/raster"
	"github.com/dshills/gridsketch/internal/renderer/core"
	"github.com/dshills/gridsketch/internal/renderer/viewport"
	"github.com/dshills/gridsketch/internal/tool"
)

// Limits enforced by Validate.
const (
	MaxCanvasSize = 1000
	MaxEraserSize = 16
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config is the layered gridsketch configuration: built-in defaults, then
// the user's config file, then environment variables, then values set by
// the command line.
type Config struct {
	mu sync.RWMutex

	defaults layer.Layer
	file     layer.Layer
	env      layer.Layer
	flags    layer.Layer
	merged   map[string]any

	fs            loader.FileSystem
	userConfigDir string
	explicitPath  string
	loadedPath    string
	envPrefix     string
	useEnv        bool

	// configErrors stores type errors met while reading sections.
	configErrors map[string]error
}

// Option configures a Config instance.
type Option func(*Config)

// WithUserConfigDir sets the directory searched for config.toml,
// config.yaml or config.yml.
func WithUserConfigDir(dir string) Option {
	return func(c *Config) {
		c.userConfigDir = dir
	}
}

// WithFile loads path instead of searching the user config directory.
// A missing explicit file is an error.
func WithFile(path string) Option {
	return func(c *Config) {
		c.explicitPath = path
	}
}

// WithEnv enables or disables environment overrides.
func WithEnv(enable bool) Option {
	return func(c *Config) {
		c.useEnv = enable
	}
}

// WithEnvPrefix changes the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithFS replaces the file system config files are read from.
func WithFS(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// New creates a Config holding the built-in defaults. Call Load to read
// the file and environment layers.
func New(opts ...Option) *Config {
	c := &Config{
		defaults:  layer.New("defaults", layer.SourceDefaults, defaultConfig()),
		fs:        loader.OSFS{},
		envPrefix: loader.DefaultEnvPrefix,
		useEnv:    true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.userConfigDir == "" {
		c.userConfigDir = defaultUserConfigDir()
	}
	c.merge()
	return c
}

// Default returns a Config with only the built-in defaults.
func Default() *Config {
	return New(WithEnv(false))
}

// Load reads the config file and environment and validates the result.
// It may be called again to reload; values set with Set are kept.
func (c *Config) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := c.explicitPath
	if path == "" {
		path = loader.Find(c.fs, c.userConfigDir, "config")
	} else if _, err := c.fs.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	var file layer.Layer
	if path != "" {
		l, err := loader.ForPath(c.fs, path)
		if err != nil {
			return err
		}
		data, err := l.Load()
		if err != nil {
			return err
		}
		file = layer.New(filepath.Base(path), layer.SourceFile, data)
	}

	var env layer.Layer
	if c.useEnv {
		data, err := loader.NewEnvLoader(c.envPrefix).Load()
		if err != nil {
			return fmt.Errorf("loading environment: %w", err)
		}
		env = layer.New("env", layer.SourceEnv, data)
	}

	c.mu.Lock()
	c.file = file
	c.env = env
	if path != "" {
		c.loadedPath = path
	}
	c.configErrors = nil
	c.mu.Unlock()
	c.merge()

	return c.Validate()
}

// Set overrides a setting above every loaded layer. It is meant for
// command-line flags.
func (c *Config) Set(path string, value any) {
	c.mu.Lock()
	if c.flags.Data == nil {
		c.flags = layer.Layer{Name: "flags", Source: layer.SourceFlags, Data: map[string]any{}}
	}
	layer.SetByPath(c.flags.Data, path, value)
	c.mu.Unlock()
	c.merge()
}

func (c *Config) merge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.merged = layer.Merge(c.defaults, c.file, c.env, c.flags)
}

// Path returns the config file that was loaded, or "".
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedPath
}

// WatchPath returns the file whose changes should trigger a reload: the
// loaded file, or where a new config.toml would be created.
func (c *Config) WatchPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	switch {
	case c.loadedPath != "":
		return c.loadedPath
	case c.explicitPath != "":
		return c.explicitPath
	default:
		return filepath.Join(c.userConfigDir, "config.toml")
	}
}

// Sources names the layers that contributed settings, lowest first.
func (c *Config) Sources() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return layer.Names(c.defaults, c.file, c.env, c.flags)
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return layer.GetByPath(c.merged, path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path. Whole floats are
// accepted.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrNotFound
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val == float64(int(val)) {
			return int(val), nil
		}
	}
	return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrNotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

// GetFloat returns a float64 value at the given path.
func (c *Config) GetFloat(path string) (float64, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrNotFound
	}
	switch val := v.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	default:
		return 0, &TypeError{Path: path, Expected: "float64", Actual: typeName(v)}
	}
}

// Type errors are recorded and the default returned so a single bad
// value does not stop the editor from starting. Validate reports them.

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getIntOr(path string, defaultValue int) int {
	v, err := c.GetInt(path)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getBoolOr(path string, defaultValue bool) bool {
	v, err := c.GetBool(path)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getFloatOr(path string, defaultValue float64) float64 {
	v, err := c.GetFloat(path)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

// recordConfigError keeps the first error seen for each path.
func (c *Config) recordConfigError(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.configErrors == nil {
		c.configErrors = make(map[string]error)
	}
	if _, exists := c.configErrors[path]; !exists {
		c.configErrors[path] = err
	}
}

// ConfigErrors returns the type errors met while reading sections.
func (c *Config) ConfigErrors() map[string]error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.configErrors == nil {
		return nil
	}
	result := make(map[string]error, len(c.configErrors))
	for k, v := range c.configErrors {
		result[k] = v
	}
	return result
}

// Validate checks every section and returns all problems joined, or nil.
// Each problem matches ErrInvalidValue or ErrTypeMismatch.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, path, msg string, v any) {
		if !ok {
			errs = append(errs, &ValidationError{Path: path, Message: msg, Value: v})
		}
	}

	ed := c.Editor()
	check(ed.Width > 0 && ed.Width <= MaxCanvasSize, "editor.width", fmt.Sprintf("must be between 1 and %d", MaxCanvasSize), ed.Width)
	check(ed.Height > 0 && ed.Height <= MaxCanvasSize, "editor.height", fmt.Sprintf("must be between 1 and %d", MaxCanvasSize), ed.Height)
	check(ed.HistoryCapacity > 0, "editor.history_capacity", "must be positive", ed.HistoryCapacity)
	_, ok := tool.ParseKind(ed.Tool)
	check(ok, "editor.tool", "unknown tool", ed.Tool)
	_, ok = raster.ParseBorderStyle(ed.BorderStyle)
	check(ok, "editor.border_style", "unknown border style", ed.BorderStyle)
	_, ok = raster.ParseDirection(ed.LineDirection)
	check(ok, "editor.line_direction", "unknown direction", ed.LineDirection)
	r, size := utf8.DecodeRuneInString(ed.FreehandChar)
	check(size == len(ed.FreehandChar) && r != grid.Blank && grid.ValidGlyph(r),
		"editor.freehand_char", "must be one single-width character", ed.FreehandChar)
	check(ed.EraserSize > 0 && ed.EraserSize <= MaxEraserSize, "editor.eraser_size",
		fmt.Sprintf("must be between 1 and %d", MaxEraserSize), ed.EraserSize)

	view := c.View()
	check(view.CellWidth > 0, "view.cell_width", "must be positive", view.CellWidth)
	check(view.LineHeight > 0, "view.line_height", "must be positive", view.LineHeight)
	check(view.Baseline >= 0 && view.Baseline <= view.LineHeight, "view.baseline", "must be within the line height", view.Baseline)
	check(view.Zoom >= viewport.MinZoom && view.Zoom <= viewport.MaxZoom, "view.zoom",
		fmt.Sprintf("must be between %g and %g", viewport.MinZoom, viewport.MaxZoom), view.Zoom)
	check(view.ZoomStep > 0 && view.ZoomStep <= 1, "view.zoom_step", "must be in (0, 1]", view.ZoomStep)

	colors := c.Colors()
	for _, col := range []struct{ path, hex string }{
		{"colors.background", colors.Background},
		{"colors.foreground", colors.Foreground},
		{"colors.selection", colors.Selection},
		{"colors.grid", colors.Grid},
		{"colors.preview", colors.Preview},
	} {
		_, err := core.ColorFromHex(col.hex)
		check(err == nil, col.path, "must be #RGB or #RRGGBB", col.hex)
	}

	logging := c.Logging()
	check(slices.Contains(logLevels, logging.Level), "logging.level", "must be debug, info, warn or error", logging.Level)

	if err := keymap.FromMap("user", c.Keymap()).Validate(); err != nil {
		check(false, "keymap", err.Error(), nil)
	}

	typeErrs := c.ConfigErrors()
	paths := make([]string, 0, len(typeErrs))
	for p := range typeErrs {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	for _, p := range paths {
		errs = append(errs, typeErrs[p])
	}

	return errors.Join(errs...)
}

func defaultUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gridsketch")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gridsketch")
}

// defaultConfig returns the built-in settings.
func defaultConfig() map[string]any {
	return map[string]any{
		"editor": map[string]any{
			"width":            80,
			"height":           24,
			"history_capacity": 100,
			"tool":             "select",
			"border_style":     "single",
			"line_direction":   "auto",
			"freehand_char":    "*",
			"eraser_size":      1,
		},
		"view": map[string]any{
			"cell_width":  8.4,
			"line_height": 20.0,
			"baseline":    12.0,
			"zoom":        1.0,
			"zoom_step":   0.1,
			"show_grid":   false,
		},
		"colors": map[string]any{
			"background": "#1e1e1e",
			"foreground": "#d4d4d4",
			"selection":  "#264f78",
			"grid":       "#333333",
			"preview":    "#569cd6",
		},
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []any:
		return "list"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
