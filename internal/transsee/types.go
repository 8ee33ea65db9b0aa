package transsee

import "strings"

// StopResponse mirrors the payload returned by the seek endpoint.
type StopResponse struct {
	Stop     string    `json:"stop"`
	Routes   []Route   `json:"routes"`
	Vehicles []Vehicle `json:"vehicles"`
}

// Route describes a route serving the stop.
type Route struct {
	Branch      string `json:"branch"`
	Destination string `json:"destination"`
	Name        string `json:"name"`
}

// Vehicle is one upcoming arrival at the stop. Times are clock strings such as
// "11:58:00 PM" without a date; null values decode as empty strings.
type Vehicle struct {
	Route         string `json:"route"`
	Actual        string `json:"actual"`
	Scheduled     string `json:"scheduled"`
	Delay         string `json:"delay"`
	Destination   string `json:"destination"`
	Direction     string `json:"direction"`
	VehicleNumber string `json:"vehicleNumber"`
}

// HasActual reports whether the feed supplied a predicted arrival time.
func (v Vehicle) HasActual() bool {
	return strings.TrimSpace(v.Actual) != ""
}

// Empty reports whether the response carries no vehicles at all.
func (r *StopResponse) Empty() bool {
	return r == nil || len(r.Vehicles) == 0
}
