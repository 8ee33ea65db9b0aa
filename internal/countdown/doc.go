// Package countdown turns per-stop arrival lookups into "minutes from now"
// countdowns.
//
// # Pipeline
//
// A run takes a list of StopRequest values (stop id, route id, message
// template) and a reference time sampled once by the caller:
//
//	ValidateRequests  reject structurally bad input before any network call
//	BatchByStop       group requests so each stop is looked up once
//	FetchAll          one goroutine per stop, joined with a WaitGroup
//	Assemble          match route, parse actual time, format the message
//
// Pipeline.Run chains these steps and returns a Report.
//
// # Time normalization
//
// The feed reports clock strings like "11:58:00 PM" with no date.
// MinutesUntil anchors the clock to the date of now and, when that instant
// has already passed, moves it to the next day. The result is rounded to the
// nearest minute and never negative.
//
// # Failure handling
//
// Failures are expected and frequent, so none of them abort a run:
//
//   - FetchError: transport error, timeout, non-2xx status, bad JSON or an
//     empty payload. The stop is recorded in FetchResult.Failures and logged.
//   - ErrNoMatch: the route is not in the stop's vehicles. Skipped silently.
//   - ErrParse: no actual time or an unrecognized format. Skipped and logged.
//   - ConfigurationError: returned by Run before any lookup starts.
//
// When every stop fails the report simply has no countdowns; callers that
// keep a display around should leave the previous one in place.
package countdown
