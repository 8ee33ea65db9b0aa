package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/headway/internal/countdown"
)

func report(now time.Time, labels ...string) countdown.Report {
	r := countdown.Report{Now: now, Requested: len(labels), Stops: 1}
	for i, l := range labels {
		r.Countdowns = append(r.Countdowns, countdown.Countdown{StopID: 1, RouteID: l, Label: l, Minutes: i})
	}
	return r
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	asOf := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	before := time.Now()
	s.Update(report(asOf, "16", "995"), nil)

	snap := s.Snapshot()
	if !snap.HasData || len(snap.Countdowns) != 2 || snap.Countdowns[0].Label != "16" {
		t.Fatalf("snapshot = %#v, want 2 countdowns", snap)
	}
	if !snap.AsOf.Equal(asOf) {
		t.Fatalf("AsOf = %v, want %v", snap.AsOf, asOf)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Countdowns[0].Label = "mutated"
	if s.Snapshot().Countdowns[0].Label != "16" {
		t.Fatalf("Snapshot should clone countdowns")
	}
}

func TestStore_EmptyRunKeepsPreviousCountdowns(t *testing.T) {
	var s Store

	asOf := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Update(report(asOf, "16"), nil)
	prev := s.Snapshot()

	failed := countdown.Report{Now: asOf.Add(time.Minute), Stops: 2, Failures: map[int]error{1: errors.New("a"), 2: errors.New("b")}}
	s.Update(failed, nil)

	snap := s.Snapshot()
	if !reflect.DeepEqual(snap.Countdowns, prev.Countdowns) || !snap.AsOf.Equal(asOf) {
		t.Fatalf("countdowns changed on empty run: got %#v want %#v", snap.Countdowns, prev.Countdowns)
	}
	if snap.LastError == nil || snap.FailedStops != 2 {
		t.Fatalf("LastError/FailedStops = %v/%d, want error and 2", snap.LastError, snap.FailedStops)
	}
	if !snap.Stale() {
		t.Fatalf("Stale = false, want true after empty run")
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store
	s.Update(report(time.Now(), "38"), nil)

	origErr := errors.New("boom")
	s.Update(countdown.Report{}, origErr)

	snap := s.Snapshot()
	if len(snap.Countdowns) != 1 || snap.Countdowns[0].Label != "38" {
		t.Fatalf("countdowns changed on error: %#v", snap.Countdowns)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() || snap.Stale() {
		t.Fatalf("zero snapshot = %#v, want online and fresh", snap)
	}

	s.Update(countdown.Report{}, errors.New("fail 1"))
	if snap = s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsOffline() {
		t.Fatalf("after 1 failure: failures=%d offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update(countdown.Report{Stops: 1, Failures: map[int]error{1: errors.New("x")}}, nil)
	if snap = s.Snapshot(); snap.ConsecutiveFailures != 2 || !snap.IsOffline() {
		t.Fatalf("after 2 failures: failures=%d offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update(report(time.Now(), "16"), nil)
	if snap = s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() || snap.Stale() {
		t.Fatalf("after success: failures=%d offline=%v stale=%v", snap.ConsecutiveFailures, snap.IsOffline(), snap.Stale())
	}
}
