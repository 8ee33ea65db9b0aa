// Package config loads the headway configuration: the API endpoint, polling
// cadence, display mode and the list of stops to watch.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/headway/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults with no stops
//  4. If the file exists but fields are missing/empty, use defaults
//
// Files ending in .yaml or .yml are parsed as YAML; everything else as TOML.
//
// # Default Values
//
//   - Config file: ~/.config/headway/config.toml
//   - API endpoint: https://42cummer-transseeapi.hf.space/seek
//   - Refresh interval: 30 seconds
//   - Per-stop lookup timeout: 10 seconds
//   - Display: text
//
// # TOML Format
//
//	api_url = "https://42cummer-transseeapi.hf.space/seek"
//	refresh_seconds = 30
//	timeout_seconds = 10
//	display = "glyph"          # text | table | glyph
//	stops_file = "stops.csv"   # optional, relative to this file
//
//	[[stops]]
//	stop_id = 5663
//	route = "16"
//	message = "16 McCowan to Scarborough Centre Station in {0} min"
//
//	[[stops]]
//	stop_id = 9604
//	route = "995"
//	message = "995 York Mills Express to UTSC in {0} min"
//	color = "#4CAF50"
//
// # Stops File
//
// stops_file points at a CSV with a header row. A UTF-8 byte order mark is
// tolerated. Rows are appended after the inline stops:
//
//	stop_id,route,message,color
//	9604,38,38 Highland Creek in {0} min,
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML/YAML/CSV parsing errors
//   - Validation failures, as *countdown.ConfigurationError listing every
//     offending field (non-positive stop id, empty route or message, bad
//     colour, unknown display mode, negative durations)
package config
