// Package main is the entry point for the gridsketch diagram editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/gridsketch/internal/app"
	"github.com/dshills/gridsketch/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	// A script with an export path runs without a terminal.
	if opts.ScriptPath != "" && opts.ExportPath != "" {
		return runHeadless(opts)
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runHeadless(opts app.Options) int {
	script := opts.ScriptPath
	opts.ScriptPath = ""
	opts.WatchConfig = false

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	if err := application.RunScript(script); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := application.Export(opts.ExportPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var width, height int
	var noWatch, showVersion, showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&opts.Debug, "d", false, "Enable debug logging (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.LogFile, "log-file", "", "Write the log to this file")
	flag.IntVar(&width, "width", 0, "Canvas width in cells")
	flag.IntVar(&height, "height", 0, "Canvas height in cells")
	flag.StringVar(&opts.ScriptPath, "script", "", "Lua script to draw at startup")
	flag.StringVar(&opts.ScriptPath, "s", "", "Lua script to draw at startup (shorthand)")
	flag.StringVar(&opts.ExportPath, "export", "", "Export path for the canvas text")
	flag.StringVar(&opts.ExportPath, "o", "", "Export path for the canvas text (shorthand)")
	flag.BoolVar(&noWatch, "no-watch", false, "Do not reload the config file when it changes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gridsketch - character grid diagram editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: gridsketch [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gridsketch                             Open an empty canvas\n")
		fmt.Fprintf(os.Stderr, "  gridsketch -width 120 -height 40       Open a larger canvas\n")
		fmt.Fprintf(os.Stderr, "  gridsketch -s box.lua                  Draw box.lua, then edit\n")
		fmt.Fprintf(os.Stderr, "  gridsketch -s box.lua -o box.txt       Draw box.lua into box.txt and exit\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("gridsketch %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %v\n", flag.Args())
		os.Exit(1)
	}

	opts.Settings = map[string]any{}
	if width > 0 {
		opts.Settings["editor.width"] = width
	}
	if height > 0 {
		opts.Settings["editor.height"] = height
	}
	opts.WatchConfig = !noWatch

	return opts
}
