// Package config loads gridsketch settings.
//
// Settings come from four layers, later layers overriding earlier ones:
//
//	┌─────────────────────────────┐
//	│  4. Command-line flags      │  ← Config.Set
//	├─────────────────────────────┤
//	│  3. Environment variables   │  ← GRIDSKETCH_SECTION_KEY
//	├─────────────────────────────┤
//	│  2. User config file        │  ← ~/.config/gridsketch/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in defaults       │
//	└─────────────────────────────┘
//
// The config file may be TOML or YAML. Its sections are editor, view,
// colors, logging and keymap:
//
//	[editor]
//	width = 120
//	border_style = "rounded"
//
//	[view]
//	show_grid = true
//
//	[keymap]
//	"C-d" = "tool.diamond"
//
// # Sub-packages
//
//   - layer: precedence-ordered deep merge of setting maps
//   - loader: TOML, YAML and environment variable loaders
//   - watcher: reload notification when the config file changes
//
// # Errors
//
// Load returns ErrNotFound when an explicit file is missing, a
// *ParseError for malformed files, and otherwise the result of Validate:
// every bad setting joined into one error whose parts match
// ErrInvalidValue or ErrTypeMismatch. Section accessors never fail; a
// value of the wrong type falls back to its default and is reported by
// ConfigErrors.
package config
