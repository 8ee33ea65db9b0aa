package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/headway/internal/countdown"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Countdowns          []countdown.Countdown
	HasData             bool
	AsOf                time.Time // reference time of the countdowns shown
	LastUpdated         time.Time
	LastError           error
	FailedStops         int
	ConsecutiveFailures int // Number of consecutive polls that resolved nothing
}

// IsOffline returns true when nothing has resolved for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Stale reports whether the countdowns shown come from an earlier poll.
func (s Snapshot) Stale() bool {
	return s.HasData && s.ConsecutiveFailures > 0
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a pipeline run. A run that resolved no countdowns, or that
// failed outright, keeps the previous countdowns so the display does not go
// blank, and counts as a failure.
func (s *Store) Update(report countdown.Report, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.FailedStops = len(report.Failures)
	if !report.Resolved() {
		s.snapshot.LastError = fmt.Errorf("no countdowns resolved (%d of %d stops failed)", len(report.Failures), report.Stops)
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Countdowns = cloneCountdowns(report.Countdowns)
	s.snapshot.HasData = true
	s.snapshot.AsOf = report.Now
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Countdowns = cloneCountdowns(s.snapshot.Countdowns)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneCountdowns(items []countdown.Countdown) []countdown.Countdown {
	if len(items) == 0 {
		return nil
	}
	dup := make([]countdown.Countdown, len(items))
	copy(dup, items)
	return dup
}
