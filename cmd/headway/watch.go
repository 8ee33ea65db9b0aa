package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/headway/internal/app"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Shows a refreshing countdown board",
	Args:  cobra.NoArgs,
	RunE:  watch,
}

var (
	pollSeconds int
	logFile     string
)

func init() {
	watchCmd.Flags().IntVarP(&pollSeconds, "poll", "p", 0, "refresh interval in seconds (defaults to the configured refresh)")
	watchCmd.Flags().StringVarP(&logFile, "log-file", "", "", "write logs to this file while the board is shown")
}

func watch(cmd *cobra.Command, args []string) error {
	opts := options()
	opts.PollEvery = pollSeconds
	opts.LogFile = logFile
	return app.Watch(cmd.Context(), opts)
}
