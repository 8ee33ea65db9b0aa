package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/headway/internal/config"
	"github.com/five82/headway/internal/countdown"
	"github.com/five82/headway/internal/prefs"
	"github.com/five82/headway/internal/state"
	"github.com/five82/headway/internal/transsee"
	"github.com/five82/headway/internal/ui"
)

// Options configure a headway run.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/headway/prefs.toml
	Display    string // overrides prefs and config when set
	PollEvery  int    // seconds; zero uses the configured refresh
	LogFile    string // watch mode only; empty discards log output
}

// Once runs the pipeline a single time and prints the countdowns to w.
// It fails when every stop lookup failed so scripts can tell an outage from
// an empty board.
func Once(ctx context.Context, opts Options, w io.Writer) error {
	cfg, pipeline, err := setup(opts)
	if err != nil {
		return err
	}

	report, err := pipeline.Run(ctx, cfg.Requests(), time.Now())
	if err != nil {
		return err
	}
	if report.AllStopsFailed() {
		return fmt.Errorf("all %d stop lookups failed", report.Stops)
	}

	display := cfg.Display
	if opts.Display != "" {
		display = opts.Display
	}
	return ui.Print(w, display, report.Countdowns)
}

// Watch boots the refreshing terminal view until the context is cancelled
// or the user quits.
func Watch(ctx context.Context, opts Options) error {
	// The view owns the terminal, so log output must not reach stderr.
	if opts.LogFile != "" {
		f, err := tea.LogToFile(opts.LogFile, "headway")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, pipeline, err := setup(opts)
	if err != nil {
		return err
	}
	requests := cfg.Requests()
	if len(requests) == 0 {
		return &countdown.ConfigurationError{Problems: []string{"no stops configured"}}
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	display := cfg.Display
	if isDisplay(userPrefs.Display) {
		display = userPrefs.Display
	}
	if opts.Display != "" {
		display = opts.Display
	}

	interval := cfg.Refresh
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	store := &state.Store{}
	refreshNow := StartPoller(ctx, store, pipeline, requests, interval)

	return ui.Run(ctx, ui.Options{
		Store:     store,
		Refresh:   refreshNow,
		PollTick:  time.Second,
		Display:   display,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		LogFile:   opts.LogFile,
	})
}

func setup(opts Options) (config.Config, countdown.Pipeline, error) {
	if opts.Display != "" && !isDisplay(opts.Display) {
		return config.Config{}, countdown.Pipeline{}, &countdown.ConfigurationError{
			Problems: []string{fmt.Sprintf("display %q must be one of text, table, glyph", opts.Display)},
		}
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, countdown.Pipeline{}, fmt.Errorf("load config: %w", err)
	}

	client, err := transsee.NewClient(cfg.APIURL)
	if err != nil {
		return config.Config{}, countdown.Pipeline{}, fmt.Errorf("init transsee client: %w", err)
	}
	return cfg, countdown.Pipeline{Lookup: client, Timeout: cfg.Timeout}, nil
}

func isDisplay(mode string) bool {
	switch mode {
	case config.DisplayText, config.DisplayTable, config.DisplayGlyph:
		return true
	}
	return false
}
