package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/headway/internal/countdown"
	"github.com/five82/headway/internal/transsee"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != transsee.DefaultEndpoint {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, transsee.DefaultEndpoint)
	}
	if cfg.Refresh != defaultRefresh || cfg.Timeout != defaultTimeout {
		t.Fatalf("Refresh/Timeout = %v/%v, want %v/%v", cfg.Refresh, cfg.Timeout, defaultRefresh, defaultTimeout)
	}
	if cfg.Display != DisplayText {
		t.Fatalf("Display = %q, want %q", cfg.Display, DisplayText)
	}
	if len(cfg.Stops) != 0 || cfg.Requests() != nil {
		t.Fatalf("Stops = %v, want none", cfg.Stops)
	}
}

func TestLoad_ParsesTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
api_url = "  https://example.com/seek  "
refresh_seconds = 45
timeout_seconds = 5
display = "GLYPH"

[[stops]]
stop_id = 5663
route = " 16 "
message = "16 McCowan to Scarborough Centre Station in {0} min"

[[stops]]
stop_id = 9604
route = "995"
message = "995 York Mills Express to UTSC in {0} min"
color = "#4CAF50"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "https://example.com/seek" {
		t.Fatalf("APIURL = %q, want trimmed url", cfg.APIURL)
	}
	if cfg.Refresh != 45*time.Second || cfg.Timeout != 5*time.Second {
		t.Fatalf("Refresh/Timeout = %v/%v, want 45s/5s", cfg.Refresh, cfg.Timeout)
	}
	if cfg.Display != DisplayGlyph {
		t.Fatalf("Display = %q, want %q", cfg.Display, DisplayGlyph)
	}

	reqs := cfg.Requests()
	if len(reqs) != 2 {
		t.Fatalf("Requests = %#v, want 2", reqs)
	}
	want := countdown.StopRequest{StopID: 5663, RouteID: "16", Message: "16 McCowan to Scarborough Centre Station in {0} min"}
	if reqs[0] != want {
		t.Fatalf("Requests[0] = %#v, want %#v", reqs[0], want)
	}
	if reqs[1].Color != "#4CAF50" {
		t.Fatalf("Requests[1].Color = %q, want #4CAF50", reqs[1].Color)
	}
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
display: table
stops:
  - stop_id: 9604
    route: "38"
    message: "38 Highland Creek in {0} min"
  - stop_id: 9604
    route: "133"
    message: "133 Neilson to Morningside Heights in {0} min"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Display != DisplayTable {
		t.Fatalf("Display = %q, want %q", cfg.Display, DisplayTable)
	}
	if len(cfg.Stops) != 2 || cfg.Stops[1].Route != "133" || cfg.Stops[1].StopID != 9604 {
		t.Fatalf("Stops = %#v, want two 9604 entries", cfg.Stops)
	}
	if cfg.Refresh != defaultRefresh {
		t.Fatalf("Refresh = %v, want default %v", cfg.Refresh, defaultRefresh)
	}
}

func TestLoad_AppendsStopsFile(t *testing.T) {
	dir := t.TempDir()
	csvBody := "\ufeffstop_id,route,message,color\n5663,16,16 to STC in {0} min,\n9604,38,38 in {0} min,#F44336\n"
	if err := os.WriteFile(filepath.Join(dir, "stops.csv"), []byte(csvBody), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`
stops_file = "stops.csv"

[[stops]]
stop_id = 1
route = "1"
message = "first"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Stops) != 3 {
		t.Fatalf("Stops = %#v, want 3", cfg.Stops)
	}
	if cfg.Stops[0].Message != "first" {
		t.Fatalf("Stops[0] = %#v, want inline stop first", cfg.Stops[0])
	}
	if cfg.Stops[1].StopID != 5663 || cfg.Stops[1].Route != "16" || cfg.Stops[1].Color != "" {
		t.Fatalf("Stops[1] = %#v, want 5663/16 without colour (BOM stripped)", cfg.Stops[1])
	}
	if cfg.Stops[2].Color != "#F44336" {
		t.Fatalf("Stops[2].Color = %q, want #F44336", cfg.Stops[2].Color)
	}
}

func TestLoad_MissingStopsFileFails(t *testing.T) {
	path := writeFile(t, "config.toml", `stops_file = "nope.csv"`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "open stops file") {
		t.Fatalf("Load error = %v, want open stops file error", err)
	}
}

func TestLoad_ValidationFailuresAreConfigurationErrors(t *testing.T) {
	path := writeFile(t, "config.toml", `
display = "hologram"
refresh_seconds = -1

[[stops]]
stop_id = 0
route = "   "
message = "x"
color = "green"
`)

	_, err := Load(path)
	var cerr *countdown.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("Load error = %v, want *countdown.ConfigurationError", err)
	}
	joined := strings.Join(cerr.Problems, "\n")
	for _, want := range []string{"Display", "RefreshSeconds", "Stops[0].StopID", "Stops[0].Route", "Stops[0].Color"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("problems %q missing %q", joined, want)
		}
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeFile(t, "config.toml", `api_url = [`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %v, want parse config error", err)
	}
}

func TestLoad_InvalidYAMLFails(t *testing.T) {
	path := writeFile(t, "config.yml", "stops: [\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %v, want parse config error", err)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}
