package countdown

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/five82/headway/internal/transsee"
)

// Countdown is a resolved request: the formatted label and minutes until the
// next arrival.
type Countdown struct {
	StopID  int
	RouteID string
	Label   string
	Minutes int
	Color   string
	Card    Card
}

// Assemble resolves each request against the fetch result in input order.
// Requests whose stop failed, whose route is absent, whose vehicle has no
// actual time, or whose time does not parse are skipped. now should be
// sampled once per run so every countdown shares the same reference.
func Assemble(requests []StopRequest, result FetchResult, now time.Time) []Countdown {
	var out []Countdown
	for _, req := range requests {
		cd, err := resolve(req, result, now)
		if err != nil {
			if errors.Is(err, ErrParse) {
				log.Printf("route %s at stop %d skipped: %v", req.RouteID, req.StopID, err)
			}
			continue
		}
		out = append(out, cd)
	}
	return out
}

func resolve(req StopRequest, result FetchResult, now time.Time) (Countdown, error) {
	payload, ok := result.Payload(req.StopID)
	if !ok {
		return Countdown{}, ErrNoPayload
	}
	vehicle, ok := MatchVehicle(payload, req.RouteID)
	if !ok {
		return Countdown{}, ErrNoMatch
	}
	// Only the predicted time is authoritative; scheduled times are ignored.
	if !vehicle.HasActual() {
		return Countdown{}, &ParseError{Text: vehicle.Actual, Reason: "no actual time"}
	}
	minutes, err := MinutesUntil(vehicle.Actual, now)
	if err != nil {
		return Countdown{}, err
	}
	label := FormatMessage(req.Message, minutes)
	return Countdown{
		StopID:  req.StopID,
		RouteID: req.RouteID,
		Label:   label,
		Minutes: minutes,
		Color:   req.Color,
		Card:    ParseCard(req.Message, minutes),
	}, nil
}

// MatchVehicle returns the first vehicle whose route equals routeID exactly,
// so "16" never matches "16A".
func MatchVehicle(payload *transsee.StopResponse, routeID string) (transsee.Vehicle, bool) {
	if payload == nil {
		return transsee.Vehicle{}, false
	}
	for _, v := range payload.Vehicles {
		if v.Route == routeID {
			return v, true
		}
	}
	return transsee.Vehicle{}, false
}

// FormatMessage substitutes the minute count for "{0}" and "{minutes}".
func FormatMessage(template string, minutes int) string {
	n := strconv.Itoa(minutes)
	return strings.NewReplacer("{0}", n, "{minutes}", n).Replace(template)
}
