package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/headway/internal/config"
	"github.com/five82/headway/internal/countdown"
	"github.com/five82/headway/internal/logtail"
)

const (
	defaultWidth = 60
	maxCardWidth = 64
)

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		m.renderBoard(),
		"",
		m.renderFooter(),
	)
}

func (m Model) viewWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

// renderHeader renders the status bar: freshness, failures and counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	snap := m.snapshot

	parts := []string{bg.Render("headway", styles.Logo)}

	switch {
	case !snap.HasData && snap.LastError == nil:
		parts = append(parts, bg.Render(m.spinner.View()+" Loading arrivals...", styles.WarningText.Bold(true)))
	case snap.IsOffline():
		parts = append(parts,
			bg.Render("OFFLINE", styles.DangerText),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
		)
	case snap.Stale():
		parts = append(parts, bg.Render("STALE", styles.WarningText.Bold(true)))
	case snap.HasData:
		parts = append(parts, bg.Render("● LIVE", styles.SuccessText))
	}

	if snap.HasData {
		parts = append(parts,
			bg.Render("Arrivals:", styles.MutedText)+bg.Spaces(1)+
				bg.Render(fmt.Sprintf("%d", len(snap.Countdowns)), styles.Text),
			bg.Render("as of", styles.FaintText)+bg.Spaces(1)+
				bg.Render(snap.AsOf.Format("15:04:05"), styles.MutedText),
		)
	}
	if snap.FailedStops > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("%d %s failed", snap.FailedStops, plural(snap.FailedStops, "stop", "stops")), styles.DangerText))
	}

	return styles.Header.Width(m.viewWidth()).Render(bg.Join(parts, "  "))
}

// renderBoard renders the countdowns in the current display mode.
func (m Model) renderBoard() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	if !snap.HasData {
		if snap.LastError != nil {
			return styles.DangerText.Render("No arrivals yet: " + snap.LastError.Error())
		}
		return styles.MutedText.Render(m.spinner.View() + " Waiting for the first update")
	}
	if len(snap.Countdowns) == 0 {
		return styles.MutedText.Render("No upcoming arrivals")
	}

	switch m.display {
	case config.DisplayTable:
		var b strings.Builder
		_ = PrintTable(&b, snap.Countdowns)
		return strings.TrimRight(b.String(), "\n")
	case config.DisplayGlyph:
		return m.renderGlyphs(snap.Countdowns)
	default:
		cards := make([]string, 0, len(snap.Countdowns))
		for _, c := range snap.Countdowns {
			cards = append(cards, m.renderCard(c))
		}
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
}

// renderCard renders one countdown as a colored card with the route on the
// left and the minutes on the right.
func (m Model) renderCard(c countdown.Countdown) string {
	styles := m.theme.Styles()
	card := styles.CardStyle(c.Color)
	bg := card.GetBackground()
	text := lipgloss.NewStyle().Background(bg).Foreground(card.GetForeground())

	width := min(m.viewWidth(), maxCardWidth)
	inner := width - card.GetHorizontalFrameSize()

	minutes := text.Bold(true).Render(fmt.Sprintf("%d min", c.Minutes))
	leftWidth := max(inner-lipgloss.Width(minutes), 1)

	var left string
	if c.Card.RouteNumber == "" {
		left = text.Width(leftWidth).Render(c.Label)
	} else {
		title := strings.TrimSpace(c.Card.RouteNumber + " " + c.Card.RouteName)
		lines := []string{text.Bold(true).Width(leftWidth).Render(title)}
		if c.Card.Destination != "" {
			lines = append(lines, text.Width(leftWidth).Render("to "+c.Card.Destination))
		}
		left = lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	right := text.Height(lipgloss.Height(left)).Render(minutes)
	return card.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
}

// renderGlyphs renders each label as glyph art in its card color.
func (m Model) renderGlyphs(countdowns []countdown.Countdown) string {
	styles := m.theme.Styles()
	blocks := make([]string, 0, len(countdowns))
	for _, c := range countdowns {
		fg := styles.CardStyle(c.Color).GetBackground()
		blocks = append(blocks, lipgloss.NewStyle().Foreground(fg).Render(m.glyphs.Render(c.Label).String()))
	}
	return strings.Join(blocks, "\n\n")
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	var parts []string
	for _, b := range m.keys.bindings() {
		h := b.Help()
		parts = append(parts, bg.Render(h.Key, styles.AccentText)+bg.Spaces(1)+bg.Render(h.Desc, styles.MutedText))
	}
	parts = append(parts, bg.Render("["+m.display+"]", styles.FaintText))
	return styles.Footer.Width(m.viewWidth()).Render(bg.Join(parts, "  "))
}

func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Logo.Render("headway"))
	b.WriteString("\n\n")
	for _, binding := range m.keys.bindings() {
		h := binding.Help()
		fmt.Fprintf(&b, "  %s  %s\n", styles.AccentText.Render(fmt.Sprintf("%-4s", h.Key)), styles.Text.Render(h.Desc))
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))
	return b.String()
}

// renderLogs shows the newest log lines that fit the window, colored by
// severity.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Logo.Render("headway log"))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render(m.logPath))
	b.WriteString("\n\n")

	switch {
	case m.logPath == "":
		b.WriteString(styles.MutedText.Render("No log file; start watch with --log-file to record one"))
	case m.logErr != nil:
		b.WriteString(styles.DangerText.Render(m.logErr.Error()))
	case len(m.logLines) == 0:
		b.WriteString(styles.MutedText.Render("Log is empty"))
	default:
		lines := m.logLines
		if visible := m.height - 4; visible > 0 && len(lines) > visible {
			lines = lines[len(lines)-visible:]
		}
		for i, l := range lines {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(severityStyle(styles, l.Severity).Render(l.Text))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Press l to return"))
	return b.String()
}

func severityStyle(styles Styles, s logtail.Severity) lipgloss.Style {
	switch s {
	case logtail.SeverityError:
		return styles.DangerText
	case logtail.SeverityWarn:
		return styles.WarningText
	default:
		return styles.Text
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
