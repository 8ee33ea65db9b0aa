package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gocarina/gocsv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spkg/bom"
	"gopkg.in/yaml.v3"

	"github.com/five82/headway/internal/countdown"
	"github.com/five82/headway/internal/transsee"
)

// Display modes.
const (
	DisplayText  = "text"
	DisplayTable = "table"
	DisplayGlyph = "glyph"
)

// Config is the resolved headway configuration.
type Config struct {
	APIURL  string
	Refresh time.Duration
	Timeout time.Duration
	Display string
	Stops   []Stop
}

// Stop is one (stop, route, message) entry. Message may contain "{0}" or
// "{minutes}"; Color is an optional #RRGGBB card colour.
type Stop struct {
	StopID  int    `toml:"stop_id" yaml:"stop_id" csv:"stop_id" validate:"gt=0"`
	Route   string `toml:"route" yaml:"route" csv:"route" validate:"required"`
	Message string `toml:"message" yaml:"message" csv:"message" validate:"required"`
	Color   string `toml:"color" yaml:"color" csv:"color" validate:"omitempty,hexcolor"`
}

type fileConfig struct {
	APIURL         string `toml:"api_url" yaml:"api_url" validate:"omitempty,url"`
	RefreshSeconds int    `toml:"refresh_seconds" yaml:"refresh_seconds" validate:"gte=0"`
	TimeoutSeconds int    `toml:"timeout_seconds" yaml:"timeout_seconds" validate:"gte=0"`
	Display        string `toml:"display" yaml:"display" validate:"omitempty,oneof=text table glyph"`
	StopsFile      string `toml:"stops_file" yaml:"stops_file"`
	Stops          []Stop `toml:"stops" yaml:"stops" validate:"dive"`
}

const (
	defaultConfigPath = "~/.config/headway/config.toml"
	defaultRefresh    = 30 * time.Second
	defaultTimeout    = 10 * time.Second
)

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		APIURL:  transsee.DefaultEndpoint,
		Refresh: defaultRefresh,
		Timeout: defaultTimeout,
		Display: DisplayText,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
// The format follows the extension: .yaml/.yml use YAML, anything else TOML.
// Validation failures are returned as *countdown.ConfigurationError.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	default:
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if stopsPath := strings.TrimSpace(raw.StopsFile); stopsPath != "" {
		if !filepath.IsAbs(stopsPath) && !strings.HasPrefix(stopsPath, "~") {
			stopsPath = filepath.Join(filepath.Dir(resolved), stopsPath)
		}
		extra, err := LoadStopsCSV(stopsPath)
		if err != nil {
			return Config{}, err
		}
		raw.Stops = append(raw.Stops, extra...)
	}

	return build(raw)
}

func build(raw fileConfig) (Config, error) {
	for i := range raw.Stops {
		raw.Stops[i].Route = strings.TrimSpace(raw.Stops[i].Route)
		raw.Stops[i].Color = strings.TrimSpace(raw.Stops[i].Color)
	}
	raw.APIURL = strings.TrimSpace(raw.APIURL)
	raw.Display = strings.ToLower(strings.TrimSpace(raw.Display))

	if err := validate(raw); err != nil {
		return Config{}, err
	}

	cfg := Defaults()
	if raw.APIURL != "" {
		cfg.APIURL = raw.APIURL
	}
	if raw.RefreshSeconds > 0 {
		cfg.Refresh = time.Duration(raw.RefreshSeconds) * time.Second
	}
	if raw.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	if raw.Display != "" {
		cfg.Display = raw.Display
	}
	cfg.Stops = raw.Stops
	return cfg, nil
}

// LoadStopsCSV reads a stop list with a stop_id,route,message[,color] header.
func LoadStopsCSV(path string) ([]Stop, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("open stops file: %w", err)
	}
	defer file.Close()

	var rows []*Stop
	if err := gocsv.UnmarshalCSV(gocsv.LazyCSVReader(bom.NewReader(file)), &rows); err != nil {
		return nil, fmt.Errorf("parse stops file: %w", err)
	}
	stops := make([]Stop, 0, len(rows))
	for _, row := range rows {
		stops = append(stops, *row)
	}
	return stops, nil
}

// Requests converts the configured stops into pipeline requests.
func (c Config) Requests() []countdown.StopRequest {
	if len(c.Stops) == 0 {
		return nil
	}
	reqs := make([]countdown.StopRequest, 0, len(c.Stops))
	for _, s := range c.Stops {
		reqs = append(reqs, countdown.StopRequest{
			StopID:  s.StopID,
			RouteID: s.Route,
			Message: s.Message,
			Color:   s.Color,
		})
	}
	return reqs
}

func validate(raw fileConfig) error {
	err := validator.New().Struct(raw)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "fileConfig.")
		if fe.Param() != "" {
			problems = append(problems, fmt.Sprintf("%s: failed %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value()))
		} else {
			problems = append(problems, fmt.Sprintf("%s: failed %s (got %v)", field, fe.Tag(), fe.Value()))
		}
	}
	return &countdown.ConfigurationError{Problems: problems}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
