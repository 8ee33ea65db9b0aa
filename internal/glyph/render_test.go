package glyph

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDefaultTable_FixedGeometry(t *testing.T) {
	table := Default()
	if table.Rows() != DefaultRows {
		t.Fatalf("Rows = %d, want %d", table.Rows(), DefaultRows)
	}
	if table.Width() != 6 {
		t.Fatalf("Width = %d, want 6", table.Width())
	}
	for r := range segmentCells {
		cell := table.Cell(r)
		if len(cell) != table.Rows() {
			t.Fatalf("glyph %q has %d rows, want %d", r, len(cell), table.Rows())
		}
		for i, line := range cell {
			if n := utf8.RuneCountInString(line); n != table.Width() {
				t.Fatalf("glyph %q row %d width = %d, want %d", r, i, n, table.Width())
			}
		}
	}
	if Default() != table {
		t.Fatalf("Default() built a second table")
	}
}

func TestRender_RowsHaveEqualWidth(t *testing.T) {
	for _, text := range []string{"", "0123456789", "16 to STC in 28 min", "Hello, World!", "ÄÖÜ?", "12:05 - 995"} {
		t.Run(text, func(t *testing.T) {
			block := Render(text)
			if block.Rows() != DefaultRows {
				t.Fatalf("Render(%q) has %d rows, want %d", text, block.Rows(), DefaultRows)
			}
			want := utf8.RuneCountInString(text) * Default().Width()
			for i, line := range block.Lines() {
				if n := utf8.RuneCountInString(line); n != want {
					t.Fatalf("Render(%q) row %d width = %d, want %d", text, i, n, want)
				}
			}
		})
	}
}

func TestRender_EmptyInput(t *testing.T) {
	block := Render("")
	lines := block.Lines()
	if len(lines) != DefaultRows {
		t.Fatalf("rows = %d, want %d", len(lines), DefaultRows)
	}
	for i, line := range lines {
		if line != "" {
			t.Fatalf("row %d = %q, want empty", i, line)
		}
	}
}

func TestRender_UnsupportedCharacterIsBlankCell(t *testing.T) {
	table := Default()
	if table.Supports('!') {
		t.Fatalf("'!' unexpectedly supported")
	}
	block := table.Render("1!1")
	one := table.Cell('1')
	blank := strings.Repeat(" ", table.Width())
	for i, line := range block.Lines() {
		if want := one[i] + blank + one[i]; line != want {
			t.Fatalf("row %d = %q, want %q", i, line, want)
		}
	}
}

func TestRender_CaseFolds(t *testing.T) {
	if Render("STC").String() != Render("stc").String() {
		t.Fatalf("upper and lower case render differently")
	}
	if !Default().Supports('Q') {
		t.Fatalf("Supports('Q') = false, want true")
	}
}

func TestRender_ConcatenatesCellsInOrder(t *testing.T) {
	table := Default()
	block := table.Render("ab")
	a, b := table.Cell('a'), table.Cell('b')
	for i, line := range block.Lines() {
		if line != a[i]+b[i] {
			t.Fatalf("row %d = %q, want %q", i, line, a[i]+b[i])
		}
	}
	if got := strings.Count(block.String(), "\n"); got != DefaultRows-1 {
		t.Fatalf("String() has %d newlines, want %d", got, DefaultRows-1)
	}
}

func TestNewTable_PadsToWidestAndRejectsBadRows(t *testing.T) {
	table, err := NewTable(2, 0, map[rune][]string{
		'A': {"##", "#"},
		'b': {"", "###"},
	})
	if err != nil {
		t.Fatalf("NewTable returned error: %v", err)
	}
	if table.Width() != 3 {
		t.Fatalf("Width = %d, want 3", table.Width())
	}
	if got := table.Cell('a'); got[0] != "## " || got[1] != "#  " {
		t.Fatalf("Cell('a') = %q, want padded rows", got)
	}
	if got := table.Render("aZb").Lines(); got[0] != "##       " || got[1] != "#     ###" {
		t.Fatalf("Render = %q, want blank middle cell", got)
	}

	if _, err := NewTable(2, 0, map[rune][]string{'x': {"only one"}}); err == nil {
		t.Fatalf("NewTable returned nil error for wrong row count")
	}
	if _, err := NewTable(0, 0, nil); err == nil {
		t.Fatalf("NewTable returned nil error for zero rows")
	}
}

func TestLines_ReturnsCopy(t *testing.T) {
	block := Render("1")
	lines := block.Lines()
	lines[0] = "changed"
	if block.Lines()[0] == "changed" {
		t.Fatalf("Lines exposed internal storage")
	}
}
