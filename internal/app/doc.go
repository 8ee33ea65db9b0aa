// Package app provides the orchestration layer for headway.
//
// # Overview
//
// This package wires together configuration, the countdown pipeline, state
// management and the UI. It is the composition root where the TransSee client
// is created and handed to countdown.Pipeline.
//
// # Entry Points
//
//   - Once: load config, run the pipeline a single time and print the result
//     as text, a table or glyph art.
//   - Watch: load config and prefs, start the background poller and run the
//     Bubble Tea view until the user quits or the context is cancelled.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Watch()    │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read config (+ stops CSV)
//	       ├─────> transsee.NewClient() Create HTTP client
//	       ├─────> state.Store{}        Shared state container
//	       ├─────> StartPoller()        Launch background updates
//	       └─────> ui.Run()             Start TUI (blocks)
//
//	Background Poller Loop:
//	┌─────────────────────────────────────────┐
//	│ StartPoller() goroutine                 │
//	│  ├─> Pipeline.Run(now)                  │
//	│  │    ├─> BatchByStop()                 │
//	│  │    ├─> FetchAll()  (one per stop)    │
//	│  │    └─> Assemble()                    │
//	│  └─> store.Update()                     │
//	│      └─> UI reads store.Snapshot()      │
//	└─────────────────────────────────────────┘
//
// # Polling Behavior
//
// The poller runs once immediately and then every refresh interval (default
// 30 seconds). A poll that resolves no countdowns doubles the wait before the
// next one, capped at five minutes; the first successful poll restores the
// normal interval. Pressing r in the view wakes the poller early.
//
// The clock is sampled once per poll so every countdown on the board shares
// the same reference time.
//
// # Logging
//
// Watch mode owns the terminal, so log output goes to the --log-file path via
// tea.LogToFile, or is discarded when no path is given. Once mode logs to
// stderr.
package app
