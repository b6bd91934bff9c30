// Package editor ties the grid, history, tools, viewport and renderer
// into one editing session.
//
// A Session is driven one event at a time by a host. Every inbound call
// returns an EventResult describing what the host should do next: repaint,
// update its tool indicator, push text to the system clipboard, or warn the
// user about a destructive change.
//
//	host event ──► Session ──► Tool ──► committed ops ──► History ──► Grid
//	                  │                    │                 │
//	                  │                    └── preview ops   └──► dirty.Tracker
//	                  ▼
//	            EventResult, render commands
//
// The session is single-threaded. Hosts with several event sources must
// funnel them through one goroutine.
package editor
