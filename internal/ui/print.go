package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rodaine/table"

	"github.com/five82/headway/internal/config"
	"github.com/five82/headway/internal/countdown"
	"github.com/five82/headway/internal/glyph"
)

var displayOrder = []string{config.DisplayText, config.DisplayTable, config.DisplayGlyph}

// NextDisplay returns the display mode after current in the cycle.
func NextDisplay(current string) string {
	for i, name := range displayOrder {
		if name == current {
			return displayOrder[(i+1)%len(displayOrder)]
		}
	}
	return displayOrder[0]
}

// Print writes countdowns to w in the given display mode. Unknown modes fall
// back to text.
func Print(w io.Writer, mode string, countdowns []countdown.Countdown) error {
	switch mode {
	case config.DisplayTable:
		return PrintTable(w, countdowns)
	case config.DisplayGlyph:
		return PrintGlyph(w, glyph.Default(), countdowns)
	default:
		return PrintText(w, countdowns)
	}
}

// PrintText writes one formatted label per line.
func PrintText(w io.Writer, countdowns []countdown.Countdown) error {
	for _, c := range countdowns {
		if _, err := fmt.Fprintln(w, c.Label); err != nil {
			return fmt.Errorf("write countdown: %w", err)
		}
	}
	return nil
}

// PrintTable writes an aligned table with one row per countdown.
func PrintTable(w io.Writer, countdowns []countdown.Countdown) error {
	tbl := table.New("Stop", "Route", "Name", "Destination", "Min").WithWriter(w)
	for _, c := range countdowns {
		tbl.AddRow(c.StopID, routeNumber(c), c.Card.RouteName, c.Card.Destination, strconv.Itoa(c.Minutes))
	}
	tbl.Print()
	return nil
}

// PrintGlyph writes each label as glyph art, separated by a blank line.
func PrintGlyph(w io.Writer, glyphs *glyph.Table, countdowns []countdown.Countdown) error {
	for i, c := range countdowns {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("write glyphs: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w, glyphs.Render(c.Label).String()); err != nil {
			return fmt.Errorf("write glyphs: %w", err)
		}
	}
	return nil
}

func routeNumber(c countdown.Countdown) string {
	if c.Card.RouteNumber != "" {
		return c.Card.RouteNumber
	}
	return c.RouteID
}
