package app

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/gridsketch/internal/config"
	"github.com/dshills/gridsketch/internal/editor"
	"github.com/dshills/gridsketch/internal/input/keymap"
	"github.com/dshills/gridsketch/internal/raster"
	"github.com/dshills/gridsketch/internal/renderer"
	"github.com/dshills/gridsketch/internal/renderer/core"
	"github.com/dshills/gridsketch/internal/renderer/viewport"
	"github.com/dshills/gridsketch/internal/tool"
)

// sessionOptions builds the options of a new session from cfg. Invalid
// values have already been reported by Validate and fall back to the
// defaults here.
func sessionOptions(cfg *config.Config, log *Logger) editor.Options {
	opts := editor.DefaultOptions()
	ed := cfg.Editor()
	view := cfg.View()

	opts.Width, opts.Height = ed.Width, ed.Height
	opts.HistoryCapacity = ed.HistoryCapacity
	if k, ok := tool.ParseKind(ed.Tool); ok {
		opts.Tool = k
	}
	opts.BorderStyle, _ = raster.ParseBorderStyle(ed.BorderStyle)
	opts.LineDirection, _ = raster.ParseDirection(ed.LineDirection)
	if rs := []rune(ed.FreehandChar); len(rs) == 1 {
		opts.FreehandChar = rs[0]
	}
	opts.EraserSize = ed.EraserSize

	opts.Metrics = viewport.Metrics{CellWidth: view.CellWidth, LineHeight: view.LineHeight, Baseline: view.Baseline}
	opts.Zoom = view.Zoom
	opts.ZoomStep = view.ZoomStep
	opts.Render = renderOptions(cfg, opts.Render)
	opts.Keymap = loadKeymap(cfg, log)
	opts.ID = uuid.New()
	opts.Logger = log.WithComponent("editor").WithField("session", opts.ID)
	return opts
}

// renderOptions applies the colors and grid setting of cfg to base.
func renderOptions(cfg *config.Config, base renderer.Options) renderer.Options {
	colors := cfg.Colors()
	p := &base.Palette
	for _, c := range []struct {
		hex string
		dst *core.Color
	}{
		{colors.Background, &p.Background},
		{colors.Foreground, &p.Foreground},
		{colors.Selection, &p.Selection},
		{colors.Grid, &p.Grid},
		{colors.Preview, &p.Preview},
	} {
		if v, err := core.ColorFromHex(c.hex); err == nil {
			*c.dst = v
		}
	}
	base.ShowGrid = cfg.View().ShowGrid
	return base
}

// loadKeymap overlays the user's bindings on the defaults. A keymap that
// does not parse is logged and the defaults are used.
func loadKeymap(cfg *config.Config, log *Logger) *keymap.ParsedKeymap {
	def := keymap.Default()
	user := cfg.Keymap()
	if len(user) == 0 {
		return def.MustParse()
	}
	km, err := def.Overlay(keymap.FromMap("user", user).WithSource(cfg.Path())).Parse()
	if err != nil {
		log.Warn("keymap: %v; using defaults", err)
		return def.MustParse()
	}
	log.Debug("keymap: %d user bindings from %s", len(user), cfg.Path())
	return km
}

// reloadConfig re-reads the config file and applies the settings that can
// change while a session runs: colors, grid lines, cell metrics, keymap
// and log level.
// A file that fails to parse leaves the running settings alone.
func (app *Application) reloadConfig() error {
	err := app.config.Load(app.ctx)
	if err != nil && !isSettingError(err) {
		return NewOperationError("reload", app.config.Path(), err)
	}
	app.metrics.RecordReload()

	app.session.SetRenderOptions(renderOptions(app.config, app.session.RenderOptions()))
	view := app.config.View()
	app.session.SetMetrics(viewport.Metrics{CellWidth: view.CellWidth, LineHeight: view.LineHeight, Baseline: view.Baseline})
	app.session.SetKeymap(loadKeymap(app.config, app.logger))
	if app.opts.LogLevel == "" && !app.opts.Debug {
		app.logger.SetLevel(ParseLogLevel(app.config.Logging().Level))
	}

	ed := app.config.Editor()
	g := app.session.Grid()
	if ed.Width != g.Width() || ed.Height != g.Height() {
		app.logger.Info("config: canvas size %dx%d applies on restart", ed.Width, ed.Height)
	}
	if err != nil {
		return NewOperationError("reload", app.config.Path(), err)
	}
	return nil
}

// isSettingError reports whether err only concerns individual values.
// Such a config still loads, with defaults in place of the bad values.
func isSettingError(err error) bool {
	return err != nil && (errors.Is(err, config.ErrInvalidValue) || errors.Is(err, config.ErrTypeMismatch))
}

// summary shortens err to its first line for the status line.
func summary(err error) string {
	msg, _, more := strings.Cut(err.Error(), "\n")
	if more {
		msg += " (see log)"
	}
	return msg
}
