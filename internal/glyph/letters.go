package glyph

import "sync"

// Segment-display glyphs, five rows by five columns. Tops use U+203E.
var segmentCells = map[rune][]string{
	' ': {"     ", "     ", "     ", "     ", "     "},
	'0': {"|‾‾‾|", "|  /|", "| / |", "|/  |", "|___|"},
	'1': {" /|  ", "/ |  ", "  |  ", "  |  ", "__|__"},
	'2': {"‾‾‾‾|", "    |", "|‾‾‾ ", "|    ", "|____"},
	'3': {"‾‾‾‾|", "    |", " ‾‾‾|", "    |", "____|"},
	'4': {"|   |", "|   |", " ‾‾‾|", "    |", "    |"},
	'5': {"|‾‾‾‾", "|    ", " ‾‾‾|", "    |", "____|"},
	'6': {"|‾‾‾‾", "|    ", "|‾‾‾|", "|   |", "|___|"},
	'7': {"‾‾‾‾|", "   / ", "  /  ", " /   ", "/    "},
	'8': {"|‾‾‾|", "|   |", "|‾‾‾|", "|   |", "|___|"},
	'9': {"|‾‾‾|", "|   |", " ‾‾‾|", "    |", "____|"},
	':': {"     ", "  o  ", "     ", "  o  ", "     "},
	'-': {"     ", "     ", " ‾‾‾ ", "     ", "     "},
	'a': {" /‾\\ ", "|   |", "|‾‾‾|", "|   |", "|   |"},
	'b': {"|‾‾‾\\", "|   /", "|‾‾‾\\", "|   |", "|___/"},
	'c': {"|‾‾‾‾", "|    ", "|    ", "|    ", "|____"},
	'd': {"|‾‾‾\\", "|   |", "|   |", "|   |", "|___/"},
	'e': {"|‾‾‾‾", "|    ", "|‾‾‾ ", "|    ", "|____"},
	'f': {"|‾‾‾‾", "|    ", "|‾‾‾ ", "|    ", "|    "},
	'g': {"|‾‾‾‾", "|    ", "|  ‾|", "|   |", "|___|"},
	'h': {"|   |", "|   |", "|‾‾‾|", "|   |", "|   |"},
	'i': {"‾‾|‾‾", "  |  ", "  |  ", "  |  ", "__|__"},
	'j': {"‾‾‾|‾", "   | ", "   | ", "|  | ", "|__| "},
	'k': {"|   /", "|  / ", "|‾<  ", "|  \\ ", "|   \\"},
	'l': {"|    ", "|    ", "|    ", "|    ", "|____"},
	'm': {"|\\ /|", "| V |", "|   |", "|   |", "|   |"},
	'n': {"|\\  |", "| \\ |", "|  \\|", "|   |", "|   |"},
	'o': {"|‾‾‾|", "|   |", "|   |", "|   |", "|___|"},
	'p': {"|‾‾‾|", "|   |", "|‾‾‾ ", "|    ", "|    "},
	'q': {"|‾‾‾|", "|   |", "|   |", "|  \\|", "|___\\"},
	'r': {"|‾‾‾|", "|   |", "|‾‾‾ ", "|  \\ ", "|   \\"},
	's': {"|‾‾‾‾", "|    ", " ‾‾‾|", "    |", "____|"},
	't': {"‾‾|‾‾", "  |  ", "  |  ", "  |  ", "  |  "},
	'u': {"|   |", "|   |", "|   |", "|   |", "|___|"},
	'v': {"|   |", "|   |", "|   |", " \\ / ", "  V  "},
	'w': {"|   |", "|   |", "|   |", "| ^ |", "|/ \\|"},
	'x': {"\\   /", " \\ / ", "  X  ", " / \\ ", "/   \\"},
	'y': {"\\   /", " \\ / ", "  |  ", "  |  ", "  |  "},
	'z': {"‾‾‾‾/", "   / ", "  /  ", " /   ", "/____"},
}

// DefaultRows is the row count of the default table.
const DefaultRows = 5

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the segment-display table shared by all renders. It is
// built once and never modified.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := NewTable(DefaultRows, 1, segmentCells)
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}
