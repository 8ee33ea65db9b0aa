package countdown

import "strings"

// Card is the display breakdown of a message such as
// "16 McCowan to Scarborough Centre Station in {0} min".
type Card struct {
	RouteNumber string // "16"
	RouteName   string // "McCowan"
	Destination string // "Scarborough Centre Station"
	Minutes     int
}

// ParseCard splits a message template into route number, route name and
// destination. Text after the first " in " is dropped; a message without
// " to " has no destination.
func ParseCard(message string, minutes int) Card {
	head, _, _ := strings.Cut(message, " in ")
	prefix, destination, _ := strings.Cut(head, " to ")
	prefix = strings.TrimSpace(prefix)
	number, name, _ := strings.Cut(prefix, " ")
	return Card{
		RouteNumber: number,
		RouteName:   strings.TrimSpace(name),
		Destination: strings.TrimSpace(destination),
		Minutes:     minutes,
	}
}
