package glyph

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Table maps characters to fixed-size glyph cells. Every cell, including the
// blank used for unsupported characters, has Rows() lines of Width() runes.
type Table struct {
	rows  int
	width int
	cells map[rune][]string
	blank []string
}

// NewTable builds a table from raw cells. Keys are case folded to lower case.
// Each cell must have exactly rows lines; lines are right-padded to the widest
// line in the table and then followed by gap spaces.
func NewTable(rows, gap int, cells map[rune][]string) (*Table, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("glyph table needs at least one row, got %d", rows)
	}
	if gap < 0 {
		gap = 0
	}
	widest := 0
	for r, lines := range cells {
		if len(lines) != rows {
			return nil, fmt.Errorf("glyph %q has %d rows, want %d", r, len(lines), rows)
		}
		for _, line := range lines {
			if n := utf8.RuneCountInString(line); n > widest {
				widest = n
			}
		}
	}

	t := &Table{
		rows:  rows,
		width: widest + gap,
		cells: make(map[rune][]string, len(cells)),
	}
	for r, lines := range cells {
		padded := make([]string, rows)
		for i, line := range lines {
			padded[i] = pad(line, t.width)
		}
		t.cells[unicode.ToLower(r)] = padded
	}
	t.blank = make([]string, rows)
	for i := range t.blank {
		t.blank[i] = strings.Repeat(" ", t.width)
	}
	return t, nil
}

// Rows returns the fixed number of lines in every glyph.
func (t *Table) Rows() int { return t.rows }

// Width returns the fixed rune width of every glyph cell.
func (t *Table) Width() int { return t.width }

// Supports reports whether r has a glyph after case folding.
func (t *Table) Supports(r rune) bool {
	_, ok := t.cells[unicode.ToLower(r)]
	return ok
}

// Cell returns the glyph for r, or the blank cell when r is unsupported.
func (t *Table) Cell(r rune) []string {
	if cell, ok := t.cells[unicode.ToLower(r)]; ok {
		return cell
	}
	return t.blank
}

func pad(line string, width int) string {
	n := utf8.RuneCountInString(line)
	if n >= width {
		return line
	}
	return line + strings.Repeat(" ", width-n)
}
