// Package ui renders countdowns for the terminal.
//
// Two surfaces share the same data:
//
//   - Print and its helpers write a one-shot rendering to any io.Writer, as
//     plain labels, an aligned table (github.com/rodaine/table) or glyph art.
//   - Run starts a Bubble Tea watch view that reads state.Store snapshots on
//     a tick and renders them as colored cards, a table or glyph art.
//
// # Watch View
//
// The header shows whether the board is loading, live, stale or offline, the
// reference time of the countdowns and how many stops failed on the last
// poll. A stale board keeps its last good countdowns; the poller never blanks
// it.
//
// Key bindings:
//
//   - r: ask the poller for an immediate run
//   - d: cycle text, table and glyph display
//   - T: cycle color theme
//   - h/?: toggle help
//   - q, ctrl+c: quit
//
// Display and theme changes are saved to the prefs file so the next session
// starts the same way.
//
// Card colors come from each stop's configured color; stops without one use
// the theme's default card color.
package ui
