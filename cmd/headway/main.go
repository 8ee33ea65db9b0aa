package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/headway/internal/app"
)

var rootCmd = &cobra.Command{
	Use:          "headway",
	Short:        "Transit arrival countdowns",
	Long:         "Shows minutes until the next vehicle for configured stop and route pairs",
	SilenceUsage: true,
}

var (
	configPath string
	prefsPath  string
	display    string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config path (defaults to ~/.config/headway/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&prefsPath, "prefs", "", "", "prefs path (defaults to ~/.config/headway/prefs.toml)")
	rootCmd.PersistentFlags().StringVarP(&display, "display", "d", "", "display mode: text, table or glyph")
	rootCmd.AddCommand(onceCmd, watchCmd, glyphCmd)
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "headway: %v\n", err)
		return 1
	}
	return 0
}

func options() app.Options {
	return app.Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
		Display:    display,
	}
}
