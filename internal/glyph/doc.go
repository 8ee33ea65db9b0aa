// Package glyph renders text as segment-display art.
//
// A Table maps characters to cells of a fixed number of rows and a fixed rune
// width. Rendering concatenates cells row by row, so a line of text always
// produces exactly Rows() lines of equal width. Unsupported characters render
// as blank cells rather than being dropped.
//
//	block := glyph.Render("16 in 5 min")
//	fmt.Println(block)
//
// The default table covers space, digits, a-z, ':' and '-'.
package glyph
