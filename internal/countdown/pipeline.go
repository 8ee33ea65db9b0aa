package countdown

import (
	"context"
	"time"

	"github.com/five82/headway/internal/transsee"
)

// Report is the outcome of one pipeline run.
type Report struct {
	Now        time.Time
	Requested  int
	Stops      int
	Countdowns []Countdown
	Failures   map[int]error
}

// Resolved reports whether any request produced a countdown.
func (r Report) Resolved() bool {
	return len(r.Countdowns) > 0
}

// AllStopsFailed reports whether every looked-up stop failed.
func (r Report) AllStopsFailed() bool {
	return r.Stops > 0 && len(r.Failures) == r.Stops
}

// Pipeline batches requests by stop, looks the stops up concurrently and
// assembles countdowns.
type Pipeline struct {
	Lookup  transsee.StopFetcher
	Timeout time.Duration // per-stop lookup timeout; zero uses DefaultLookupTimeout
}

// Run executes one fetch and assemble pass. It fails only when the request
// list is invalid; per-stop and per-request problems are absorbed and show up
// as missing countdowns.
func (p Pipeline) Run(ctx context.Context, requests []StopRequest, now time.Time) (Report, error) {
	if err := ValidateRequests(requests); err != nil {
		return Report{}, err
	}
	report := Report{Now: now, Requested: len(requests)}
	if len(requests) == 0 {
		return report, nil
	}

	batch := BatchByStop(requests)
	result := FetchAll(ctx, p.Lookup, batch, p.Timeout)

	report.Stops = batch.Len()
	report.Failures = result.Failures
	report.Countdowns = Assemble(requests, result, now)
	return report, nil
}
