package app

import (
	"context"
	"log"
	"time"

	"github.com/five82/headway/internal/countdown"
	"github.com/five82/headway/internal/state"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 5 * time.Minute
)

// runner executes one fetch and assemble pass. countdown.Pipeline satisfies it.
type runner interface {
	Run(ctx context.Context, requests []countdown.StopRequest, now time.Time) (countdown.Report, error)
}

// StartPoller launches a background goroutine that refreshes the store
// immediately and then at interval. After polls that resolve nothing the
// wait doubles, up to maxBackoff. It returns immediately with a function that
// asks the poller to run now instead of waiting.
func StartPoller(ctx context.Context, store *state.Store, pipeline runner, requests []countdown.StopRequest, interval time.Duration) func() {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	trigger := make(chan struct{}, 1)

	go func() {
		failures := 0
		for {
			if refresh(ctx, store, pipeline, requests) {
				failures = 0
			} else {
				failures++
			}

			timer := time.NewTimer(calculateBackoff(failures, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-trigger:
				timer.Stop()
			case <-timer.C:
			}
		}
	}()

	return func() {
		select {
		case trigger <- struct{}{}:
		default:
		}
	}
}

// refresh runs the pipeline once and records the outcome. It reports whether
// any countdown resolved.
func refresh(ctx context.Context, store *state.Store, pipeline runner, requests []countdown.StopRequest) bool {
	report, err := pipeline.Run(ctx, requests, time.Now())
	if err != nil {
		store.Update(report, err)
		log.Printf("countdown poll failed: %v", err)
		return false
	}
	store.Update(report, nil)
	if !report.Resolved() {
		log.Printf("countdown poll resolved nothing (%d of %d stops failed)", len(report.Failures), report.Stops)
		return false
	}
	return true
}

// calculateBackoff returns the wait before the next poll after the given
// number of consecutive failed polls.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return max(maxBackoff, base)
		}
	}
	return wait
}
