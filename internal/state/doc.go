// Package state provides thread-safe state shared between the countdown
// poller and the terminal view.
//
// # Architecture
//
//	Producer (Poller):             Consumer (UI):
//	┌──────────────────┐          ┌──────────────────┐
//	│ Pipeline.Run()   │          │                  │
//	│      ↓           │          │                  │
//	│ store.Update()   │─────────→│ store.Snapshot() │
//	│      ↓           │ (mutex)  │      ↓           │
//	│  repeat...       │          │  render view     │
//	└──────────────────┘          └──────────────────┘
//
// # Update Semantics
//
// A run that resolves at least one countdown replaces the stored countdowns.
// A run that resolves nothing (every stop failed, or nothing matched) or that
// returns an error keeps the previous countdowns and only records the error
// and bumps ConsecutiveFailures. The view therefore keeps showing the last
// good board, marked stale, instead of going blank.
//
// Snapshot returns a copy; callers may modify it freely.
//
// The zero Store is ready to use.
package state
