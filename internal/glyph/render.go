package glyph

import "strings"

// Block is rendered glyph art: one string per glyph row, all the same width.
type Block struct {
	lines []string
}

// Render lays out text as glyph art. Unsupported characters become blank
// cells so the following characters stay aligned.
func (t *Table) Render(text string) Block {
	builders := make([]strings.Builder, t.rows)
	for _, r := range strings.ToLower(text) {
		cell := t.Cell(r)
		for i := range builders {
			builders[i].WriteString(cell[i])
		}
	}
	lines := make([]string, t.rows)
	for i := range builders {
		lines[i] = builders[i].String()
	}
	return Block{lines: lines}
}

// Lines returns a copy of the block rows.
func (b Block) Lines() []string {
	dup := make([]string, len(b.lines))
	copy(dup, b.lines)
	return dup
}

// Rows returns the number of lines in the block.
func (b Block) Rows() int { return len(b.lines) }

func (b Block) String() string {
	return strings.Join(b.lines, "\n")
}

// Render lays out text with the default segment-display table.
func Render(text string) Block {
	return Default().Render(text)
}
