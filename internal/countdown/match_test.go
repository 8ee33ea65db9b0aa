package countdown

import (
	"testing"
	"time"

	"github.com/five82/headway/internal/transsee"
)

func TestMatchVehicle_ExactRouteOnly(t *testing.T) {
	payload := vehicles("16A", "1:00 PM", "995", "1:05 PM", "116", "1:07 PM")
	if v, ok := MatchVehicle(payload, "16"); ok {
		t.Fatalf("MatchVehicle(16) = %#v, want no match", v)
	}

	payload.Vehicles = append(payload.Vehicles, transsee.Vehicle{Route: "16", Actual: "1:10 PM"}, transsee.Vehicle{Route: "16", Actual: "1:30 PM"})
	v, ok := MatchVehicle(payload, "16")
	if !ok || v.Actual != "1:10 PM" {
		t.Fatalf("MatchVehicle(16) = %#v, %v; want first route 16 vehicle", v, ok)
	}

	if _, ok := MatchVehicle(nil, "16"); ok {
		t.Fatalf("MatchVehicle(nil) matched")
	}
}

func TestAssemble_SkipsUnresolvableRequests(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	result := FetchResult{
		Payloads: map[int]*transsee.StopResponse{
			1: {Vehicles: []transsee.Vehicle{
				{Route: "10", Actual: "12:10 PM"},
				{Route: "20", Actual: "", Scheduled: "12:05 PM"},
				{Route: "30", Actual: "garbage"},
				{Route: "40", Actual: "12:40:00 PM"},
			}},
		},
		Failures: map[int]error{2: &FetchError{StopID: 2, Err: ErrNoPayload}},
	}
	requests := []StopRequest{
		{StopID: 1, RouteID: "40", Message: "40 in {0} min"},
		{StopID: 2, RouteID: "10", Message: "failed stop"},
		{StopID: 1, RouteID: "20", Message: "scheduled only"},
		{StopID: 1, RouteID: "30", Message: "bad time"},
		{StopID: 1, RouteID: "99", Message: "no match"},
		{StopID: 1, RouteID: "10", Message: "10 in {minutes} min"},
	}

	got := Assemble(requests, result, now)
	if len(got) != 2 {
		t.Fatalf("Assemble returned %d countdowns, want 2: %#v", len(got), got)
	}
	if got[0].RouteID != "40" || got[0].Minutes != 40 || got[0].Label != "40 in 40 min" {
		t.Fatalf("countdown[0] = %#v, want route 40 in 40 min", got[0])
	}
	if got[1].RouteID != "10" || got[1].Minutes != 10 || got[1].Label != "10 in 10 min" {
		t.Fatalf("countdown[1] = %#v, want route 10 in 10 min", got[1])
	}
}

func TestAssemble_CarriesColorAndCard(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	result := FetchResult{Payloads: map[int]*transsee.StopResponse{7: vehicles("995", "8:12 AM")}}
	got := Assemble([]StopRequest{{
		StopID:  7,
		RouteID: "995",
		Message: "995 York Mills Express to UTSC in {0} min",
		Color:   "#4CAF50",
	}}, result, now)

	if len(got) != 1 {
		t.Fatalf("Assemble returned %d countdowns, want 1", len(got))
	}
	cd := got[0]
	if cd.Color != "#4CAF50" || cd.StopID != 7 {
		t.Fatalf("countdown = %#v, want colour and stop carried", cd)
	}
	want := Card{RouteNumber: "995", RouteName: "York Mills Express", Destination: "UTSC", Minutes: 12}
	if cd.Card != want {
		t.Fatalf("Card = %#v, want %#v", cd.Card, want)
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		template string
		minutes  int
		want     string
	}{
		{"16 to STC in {0} min", 28, "16 to STC in 28 min"},
		{"{minutes}m", 3, "3m"},
		{"no placeholder", 5, "no placeholder"},
		{"{0}/{0}", 1, "1/1"},
	}
	for _, tt := range tests {
		if got := FormatMessage(tt.template, tt.minutes); got != tt.want {
			t.Fatalf("FormatMessage(%q, %d) = %q, want %q", tt.template, tt.minutes, got, tt.want)
		}
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		message string
		want    Card
	}{
		{"16 McCowan to Scarborough Centre Station in {0} min", Card{RouteNumber: "16", RouteName: "McCowan", Destination: "Scarborough Centre Station"}},
		{"16 to STC in {0} min", Card{RouteNumber: "16", Destination: "STC"}},
		{"38 Highland Creek in {0} min", Card{RouteNumber: "38", RouteName: "Highland Creek"}},
		{"133", Card{RouteNumber: "133"}},
	}
	for _, tt := range tests {
		if got := ParseCard(tt.message, 0); got != tt.want {
			t.Fatalf("ParseCard(%q) = %#v, want %#v", tt.message, got, tt.want)
		}
	}
}
