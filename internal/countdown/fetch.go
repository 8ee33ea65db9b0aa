package countdown

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/five82/headway/internal/transsee"
)

// DefaultLookupTimeout bounds a single stop lookup when no timeout is given.
const DefaultLookupTimeout = 10 * time.Second

// FetchResult holds one outcome per distinct stop: either a payload or the
// reason there is none. A stop id never appears in both maps.
type FetchResult struct {
	Payloads map[int]*transsee.StopResponse
	Failures map[int]error
}

// Payload returns the payload for stopID, if the lookup succeeded.
func (r FetchResult) Payload(stopID int) (*transsee.StopResponse, bool) {
	p, ok := r.Payloads[stopID]
	return p, ok
}

type stopOutcome struct {
	stopID  int
	payload *transsee.StopResponse
	err     error
}

// FetchAll looks up every distinct stop in batch concurrently, one goroutine
// per stop, and returns once all of them have finished or timed out. A
// failing stop never affects the others; it is logged and recorded in
// Failures.
func FetchAll(ctx context.Context, lookup transsee.StopFetcher, batch StopBatch, timeout time.Duration) FetchResult {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	ids := batch.StopIDs()
	outcomes := make([]stopOutcome, len(ids))

	var wg sync.WaitGroup
	for i, stopID := range ids {
		wg.Add(1)
		go func(slot int, stopID int) {
			defer wg.Done()
			payload, err := lookupWithTimeout(ctx, lookup, stopID, timeout)
			outcomes[slot] = stopOutcome{stopID: stopID, payload: payload, err: err}
		}(i, stopID)
	}
	wg.Wait()

	result := FetchResult{
		Payloads: make(map[int]*transsee.StopResponse, len(ids)),
		Failures: make(map[int]error),
	}
	for _, out := range outcomes {
		if out.err != nil {
			ferr := &FetchError{StopID: out.stopID, Err: out.err}
			log.Printf("stop %d fetch failed: %v", out.stopID, out.err)
			result.Failures[out.stopID] = ferr
			continue
		}
		result.Payloads[out.stopID] = out.payload
	}
	return result
}

// lookupWithTimeout gives up on a lookup once its deadline passes even if the
// underlying call ignores cancellation; the abandoned call finishes into a
// buffered channel nobody reads.
func lookupWithTimeout(ctx context.Context, lookup transsee.StopFetcher, stopID int, timeout time.Duration) (*transsee.StopResponse, error) {
	if lookup == nil {
		return nil, errors.New("no stop lookup configured")
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan stopOutcome, 1)
	go func() {
		payload, err := lookup.LookupStop(ctx, stopID)
		done <- stopOutcome{stopID: stopID, payload: payload, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			return nil, out.err
		}
		if out.payload.Empty() {
			return nil, ErrNoPayload
		}
		return out.payload, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("lookup abandoned: %w", ctx.Err())
	}
}
