package countdown

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParse marks a time string that is not a recognizable clock time.
	ErrParse = errors.New("unrecognized arrival time")
	// ErrNoMatch marks a request whose route is absent from its stop payload.
	ErrNoMatch = errors.New("route not served by stop")
	// ErrNoPayload marks a stop lookup that returned nothing usable.
	ErrNoPayload = errors.New("stop returned no vehicles")
)

// ParseError reports a time string that could not be turned into a clock time.
type ParseError struct {
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse time %q: %s", e.Text, e.Reason)
}

// Unwrap lets errors.Is match ErrParse.
func (e *ParseError) Unwrap() error { return ErrParse }

// FetchError records why the lookup for one stop produced no payload.
type FetchError struct {
	StopID int
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch stop %d: %v", e.StopID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ConfigurationError reports a structurally invalid request list. It is the
// only error that stops a pipeline run, and it is raised before any lookup.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid configuration: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid configuration (%d problems): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}
