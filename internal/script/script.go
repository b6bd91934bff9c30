// Package script runs Lua drawing scripts against a grid.
//
// Every drawing function commits through the grid's history, so a script
// can be undone like any other edit. A script that fails leaves the grid
// as it found it.
//
//	rect(0, 0, 10, 4, "rounded")
//	arrow(11, 2, 20, 2)
//	text(2, 2, "hello")
//
// Coordinates are zero-based cells. Shapes may extend past the grid by up
// to its width plus height in any direction. Functions available to
// scripts:
//
//	rect(x1, y1, x2, y2 [, style])      diamond(x1, y1, x2, y2 [, style])
//	line(x1, y1, x2, y2 [, direction])  arrow(x1, y1, x2, y2 [, direction])
//	text(x, y, s)                       set(x, y, ch)
//	get(x, y) -> ch                     erase(x1, y1, x2, y2)
//	clear()                             undo() -> bool, redo() -> bool
//	size() -> width, height             export([trim_leading]) -> string
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gridsketch/internal/engine/history"
	"github.com/dshills/gridsketch/internal/grid"
	"github.com/dshills/gridsketch/internal/raster"
)

// DefaultTimeout bounds a script run.
const DefaultTimeout = 5 * time.Second

// Errors returned by script runs.
var (
	// ErrScriptFailed wraps every error raised while running a script.
	ErrScriptFailed = errors.New("script failed")

	// ErrUndoInGroup is raised by undo() and redo() in a grouped run.
	ErrUndoInGroup = errors.New("undo and redo are unavailable in a grouped script")
)

// Logger receives script print output and run notices.
type Logger interface {
	Info(msg string, args ...any)
}

// Options configures a Runner.
type Options struct {
	// Group records the whole run as one undo step. Scripts run grouped
	// cannot call undo() or redo().
	Group bool

	// Timeout cancels long-running scripts. Zero selects DefaultTimeout.
	Timeout time.Duration

	// BorderStyle and LineDirection are used when a script omits them.
	BorderStyle   raster.BorderStyle
	LineDirection raster.Direction

	// Output receives print() text. Nil sends it to Logger, or drops it.
	Output io.Writer
	Logger Logger
}

// DefaultOptions returns grouped runs with the default timeout.
func DefaultOptions() Options {
	return Options{Group: true, Timeout: DefaultTimeout}
}

// Runner executes scripts against one grid and its history.
type Runner struct {
	grid    *grid.Grid
	history *history.History
	opts    Options

	// commits counts history commits made by the current run.
	commits int
}

// NewRunner creates a runner drawing onto g through h.
func NewRunner(g *grid.Grid, h *history.History, opts Options) *Runner {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Runner{grid: g, history: h, opts: opts}
}

// Result describes a finished run.
type Result struct {
	// Commits is the number of drawing calls that changed the grid.
	Commits int
	// Changed reports whether the grid differs from before the run.
	Changed bool
}

// RunFile reads and runs the script at path.
func (r *Runner) RunFile(ctx context.Context, path string) (Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrScriptFailed, err)
	}
	return r.Run(ctx, filepath.Base(path), string(src))
}

// Run executes src. On error every change the script made is reverted and
// the returned error wraps ErrScriptFailed.
func (r *Runner) Run(ctx context.Context, name, src string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	before := r.grid.Clone()
	r.commits = 0

	L := newState()
	defer L.Close()
	L.SetContext(ctx)
	r.register(L)

	exec := func() error {
		fn, err := L.LoadString(src)
		if err != nil {
			return err
		}
		L.Push(fn)
		return L.PCall(0, lua.MultRet, nil)
	}

	var err error
	if r.opts.Group {
		err = r.history.Transaction(r.grid, "script "+name, func() error { return protect(exec) })
	} else {
		cp := r.history.CreateCheckpoint(r.grid)
		if err = protect(exec); err != nil {
			r.history.RestoreCheckpoint(cp, r.grid)
		}
	}
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrScriptFailed, name, err)
	}

	r.logf("script %s: %d commits", name, r.commits)
	return Result{Commits: r.commits, Changed: !before.Equal(r.grid)}, nil
}

// protect turns a Go panic inside the interpreter into an error.
func protect(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("lua panic: %v", rec)
		}
	}()
	return fn()
}

// newState opens a Lua state with only the side-effect free libraries.
func newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

func (r *Runner) commit(name string, ops []grid.DrawOp) {
	if cmd := r.history.Commit(r.grid, name, ops); cmd != nil {
		r.commits++
	}
}

func (r *Runner) logf(format string, args ...any) {
	if r.opts.Logger != nil {
		r.opts.Logger.Info(format, args...)
	}
}
