package countdown

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"
	"unicode"
)

// suspiciousMinutes is the countdown above which a result is logged. The feed
// only reports arrivals within the next day, so anything larger hints at a
// clock or feed problem.
const suspiciousMinutes = 24 * 60

// clockLayouts are tried in order against the compacted, upper-cased input.
var clockLayouts = []string{"3:04:05PM", "3:04PM", "3PM"}

// Clock is a time of day in 24-hour form.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// ParseClock reads "H:MM:SS AM", "H:MM PM" and friends. Matching is
// case-insensitive and whitespace inside the string is ignored. A missing
// AM/PM marker is an error because the feed never reports 24-hour times.
func ParseClock(text string) (Clock, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, text)
	if compact == "" {
		return Clock{}, &ParseError{Text: text, Reason: "empty"}
	}
	if !strings.HasSuffix(compact, "AM") && !strings.HasSuffix(compact, "PM") {
		return Clock{}, &ParseError{Text: text, Reason: "missing AM/PM"}
	}
	// time.Parse accepts hour 0 for 12-hour layouts.
	hour, _, _ := strings.Cut(strings.TrimRight(compact, "APM"), ":")
	if strings.Trim(hour, "0") == "" {
		return Clock{}, &ParseError{Text: text, Reason: "hour out of range"}
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, compact); err == nil {
			return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return Clock{}, &ParseError{Text: text, Reason: "expected H:MM[:SS] AM/PM"}
}

// Next returns the first instant at or after now whose time of day is c.
// Feed times carry no date, so a time already passed today is tomorrow's.
func (c Clock) Next(now time.Time) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), c.Hour, c.Minute, c.Second, 0, now.Location())
	if candidate.Before(now) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate
}

// MinutesUntil converts a feed time string into whole minutes from now,
// rounded to the nearest minute and never negative.
func MinutesUntil(text string, now time.Time) (int, error) {
	clock, err := ParseClock(text)
	if err != nil {
		return 0, err
	}
	minutes := int(math.Round(clock.Next(now).Sub(now).Minutes()))
	if minutes < 0 {
		minutes = 0
	}
	if minutes > suspiciousMinutes {
		log.Printf("suspicious countdown: %d minutes for %q at %s", minutes, text, now.Format(time.Kitchen))
	}
	return minutes, nil
}
