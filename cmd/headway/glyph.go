package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/headway/internal/glyph"
)

var glyphCmd = &cobra.Command{
	Use:   "glyph <text>...",
	Short: "Renders text with the segment-display glyphs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  renderGlyph,
}

func renderGlyph(cmd *cobra.Command, args []string) error {
	block := glyph.Render(strings.Join(args, " "))
	_, err := fmt.Fprintln(cmd.OutOrStdout(), block.String())
	return err
}
