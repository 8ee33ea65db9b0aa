package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/headway/internal/app"
)

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Fetches arrivals once and prints the countdowns",
	Args:  cobra.NoArgs,
	RunE:  once,
}

func once(cmd *cobra.Command, args []string) error {
	return app.Once(cmd.Context(), options(), cmd.OutOrStdout())
}
