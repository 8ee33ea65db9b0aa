// Package transsee provides an HTTP client for the TransSee seek API.
//
// # Overview
//
// The seek endpoint accepts a POST with a JSON body naming one stop and
// answers with the routes serving that stop and the vehicles currently
// predicted to arrive there:
//
//	POST /seek
//	{"stop": "5663"}
//
//	{
//	  "stop": "5663",
//	  "routes":   [{"branch": "16", "destination": "...", "name": "McCowan"}],
//	  "vehicles": [{"route": "16", "actual": "11:58:00 PM", "scheduled": "11:55:00 PM", ...}]
//	}
//
// Arrival times are clock strings without a date. Turning them into
// countdowns is the job of the countdown package.
//
// # Client
//
// Client wraps a single *http.Client with a request timeout and is safe for
// concurrent use, so the countdown fetcher fires every stop lookup through
// one shared client. Any status outside 2xx, transport failure or JSON
// decode failure is returned as an error; callers decide whether that is
// fatal.
//
// # Testing
//
// The StopFetcher interface is satisfied by *Client and lets callers swap in
// a fake. Client tests run against httptest servers.
package transsee
