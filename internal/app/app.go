package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/dshills/gridsketch/internal/config"
	"github.com/dshills/gridsketch/internal/config/watcher"
	"github.com/dshills/gridsketch/internal/editor"
	"github.com/dshills/gridsketch/internal/engine/history"
	"github.com/dshills/gridsketch/internal/export"
	"github.com/dshills/gridsketch/internal/grid"
	"github.com/dshills/gridsketch/internal/renderer/backend"
	"github.com/dshills/gridsketch/internal/renderer/statusline"
	"github.com/dshills/gridsketch/internal/script"
)

// DefaultExportPath is where the export action writes when no path was
// given.
const DefaultExportPath = "sketch.txt"

// Application hosts one editing session in a terminal. It owns the
// configuration, the backend and the status line, and runs the event
// loop that is the only caller into the session.
type Application struct {
	mu sync.RWMutex

	config  *config.Config
	logger  *Logger
	logFile io.Closer
	metrics *Metrics

	session   *editor.Session
	backend   backend.Backend
	painter   *painter
	status    *statusline.StatusLine
	clipboard SystemClipboard
	watcher   *watcher.Watcher

	// reloads carries config file changes from the watcher goroutine.
	reloads chan struct{}

	ctx      context.Context
	cancel   context.CancelFunc
	running  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty searches
	// the user config directory.
	ConfigPath string

	// Settings override config values by path, e.g. "editor.width".
	Settings map[string]any

	// Debug enables debug logging, to a temp file unless LogFile is set.
	Debug bool

	// LogLevel overrides logging.level.
	LogLevel string

	// LogFile overrides logging.file.
	LogFile string

	// ScriptPath is a Lua script run against the canvas at startup.
	ScriptPath string

	// ExportPath is where the export action writes the canvas.
	ExportPath string

	// WatchConfig reloads colors and keymap when the config file changes.
	WatchConfig bool

	// Clipboard replaces the desktop clipboard.
	Clipboard SystemClipboard
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	ctx, cancel := context.WithCancel(context.Background())
	app := &Application{
		opts:    opts,
		logger:  NullLogger,
		metrics: NewMetrics(),
		status:  statusline.New(),
		reloads: make(chan struct{}, 1),
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	if err := app.bootstrap(); err != nil {
		app.close()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	var cfgOpts []config.Option
	if app.opts.ConfigPath != "" {
		cfgOpts = append(cfgOpts, config.WithFile(app.opts.ConfigPath))
	}
	app.config = config.New(cfgOpts...)
	for path, v := range app.opts.Settings {
		app.config.Set(path, v)
	}
	cfgErr := app.config.Load(app.ctx)
	if cfgErr != nil && !isSettingError(cfgErr) {
		return &InitError{Component: "config", Err: cfgErr}
	}

	// 2. Logging
	if err := app.setupLogging(); err != nil {
		return &InitError{Component: "logging", Err: err}
	}
	if cfgErr != nil {
		app.logger.Warn("config %s: %v", app.config.Path(), cfgErr)
		app.status.SetMessage(summary(cfgErr), statusline.MessageWarning)
	}

	// 3. Session
	app.session = editor.New(sessionOptions(app.config, app.logger))
	app.logger.Info("session %s started", app.session.ID())

	// 4. Clipboard
	app.clipboard = app.opts.Clipboard
	if app.clipboard == nil {
		app.clipboard = NewSystemClipboard()
	}

	// 5. Config watcher
	if app.opts.WatchConfig {
		if err := app.setupWatcher(); err != nil {
			app.logComponentError("watcher", err)
		}
	}

	// 6. Startup script
	if app.opts.ScriptPath != "" {
		if err := app.RunScript(app.opts.ScriptPath); err != nil {
			app.logComponentError("script", err)
			app.status.SetMessage(summary(err), statusline.MessageError)
		}
	}
	return nil
}

func (app *Application) setupLogging() error {
	logCfg := app.config.Logging()
	level := logCfg.Level
	if app.opts.LogLevel != "" {
		level = app.opts.LogLevel
	}
	if app.opts.Debug {
		level = "debug"
	}

	path := logCfg.File
	if app.opts.LogFile != "" {
		path = app.opts.LogFile
	}
	if path == "" && app.opts.Debug {
		path = filepath.Join(os.TempDir(), "gridsketch.log")
	}

	cfg := DefaultLoggerConfig()
	cfg.Level = ParseLogLevel(level)
	if path != "" {
		f, err := OpenLogFile(path)
		if err != nil {
			return err
		}
		app.logFile = f
		cfg.Output = f
	}
	app.logger = NewLogger(cfg)
	return nil
}

func (app *Application) setupWatcher() error {
	w, err := watcher.New(watcher.WithErrorHandler(func(err error) {
		app.logComponentError("watcher", err)
	}))
	if err != nil {
		return err
	}
	if err := w.Watch(app.config.WatchPath()); err != nil {
		w.Stop()
		return err
	}
	w.OnChange(func(ev watcher.Event) {
		app.logger.Debug("config %s: %s", ev.Op, ev.Path)
		select {
		case app.reloads <- struct{}{}:
		default:
		}
	})
	app.watcher = w
	return nil
}

// RunScript runs a Lua script against the canvas as one undo step.
func (app *Application) RunScript(path string) error {
	opts := script.DefaultOptions()
	opts.BorderStyle = app.session.Toolbox().BorderStyle()
	opts.LineDirection = app.session.Toolbox().LineDirection()
	opts.Logger = app.logger.WithComponent("script")

	var runErr error
	var res script.Result
	app.session.Edit(func(g *grid.Grid, h *history.History) {
		res, runErr = script.NewRunner(g, h, opts).RunFile(app.ctx, path)
	})
	if runErr != nil {
		return NewOperationError("script", path, runErr)
	}
	app.logger.Info("script %s: %d drawing calls", path, res.Commits)
	return nil
}

// Export writes the canvas as plain text to path.
func (app *Application) Export(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return NewOperationError("export", path, err)
	}
	err = export.Write(f, app.session.Grid(), export.Options{})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return NewOperationError("export", path, err)
	}
	app.logger.Info("exported %s", path)
	return nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run starts the application main loop.
// Blocks until quit, a signal or Shutdown.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)
	defer app.close()

	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b == nil {
		return &InitError{Component: "backend", Err: backend.ErrNoTerminal}
	}

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()
	app.painter = newPainter(b)

	if app.watcher != nil {
		if err := app.watcher.Start(); err != nil {
			app.logComponentError("watcher", err)
		}
	}

	err := app.eventLoop(b)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// Shutdown stops the event loop. It is safe to call more than once and
// from any goroutine.
func (app *Application) Shutdown() {
	app.doneOnce.Do(func() {
		close(app.done)
		app.cancel()
	})
	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b != nil {
		b.Interrupt()
	}
}

// close releases resources in reverse initialization order.
func (app *Application) close() {
	app.doneOnce.Do(func() { close(app.done) })
	if app.watcher != nil {
		app.watcher.Stop()
	}
	app.cancel()
	if app.logFile != nil {
		snap := app.metrics.Snapshot()
		app.logger.WithFields(map[string]any{
			"frames": snap.FrameCount,
			"inputs": snap.InputCount,
			"fps":    fmt.Sprintf("%.0f", snap.AvgFPS()),
		}).Info("shutting down")
		_ = app.logFile.Close()
		app.logFile = nil
	}
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Session returns the editing session.
func (app *Application) Session() *editor.Session {
	return app.session
}

// StatusLine returns the status line.
func (app *Application) StatusLine() *statusline.StatusLine {
	return app.status
}
