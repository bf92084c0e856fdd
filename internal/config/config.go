package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"evacplanner/internal/domain/grid"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

const (
	DefaultBaseURL   = "http://localhost:5000"
	DefaultTimeout   = 10 * time.Second
	DefaultCellSize  = 40
	DefaultQueueSize = 64
	DefaultTitle     = "Evacuation Planner"
)

type Config struct {
	API      APIConfig      `yaml:"api"`
	Building BuildingConfig `yaml:"building"`
	View     ViewConfig     `yaml:"view"`
	Log      LogConfig      `yaml:"log"`
	Sync     SyncConfig     `yaml:"sync"`
}

type APIConfig struct {
	BaseURL       string        `yaml:"base_url"`
	Timeout       time.Duration `yaml:"timeout"`
	SessionCookie string        `yaml:"session_cookie"`
}

type BuildingConfig struct {
	ID      int          `yaml:"id"`
	Width   int          `yaml:"width"`
	Height  int          `yaml:"height"`
	Hazards []HazardSeed `yaml:"hazards"`
}

// HazardSeed is a hazard the backend already holds for the building.
type HazardSeed struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Type      string `yaml:"type"`
	Intensity int    `yaml:"intensity"`
}

type ViewConfig struct {
	CellSize int    `yaml:"cell_size"`
	Title    string `yaml:"title"`
}

type LogConfig struct {
	Verbose bool `yaml:"verbose"`
}

type SyncConfig struct {
	QueueSize int `yaml:"queue_size"`
}

func Default() Config {
	return Config{
		API:  APIConfig{BaseURL: DefaultBaseURL, Timeout: DefaultTimeout},
		View: ViewConfig{CellSize: DefaultCellSize, Title: DefaultTitle},
		Sync: SyncConfig{QueueSize: DefaultQueueSize},
	}
}

// Load reads path on top of the defaults and then applies EVAC_* env
// overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	cfg.fillDefaults()
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("EVAC_API_BASE_URL")); v != "" {
		cfg.API.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("EVAC_SESSION_COOKIE")); v != "" {
		cfg.API.SessionCookie = v
	}
	cfg.Building.ID = intEnv("EVAC_BUILDING_ID", cfg.Building.ID)
	cfg.Building.Width = intEnv("EVAC_BUILDING_WIDTH", cfg.Building.Width)
	cfg.Building.Height = intEnv("EVAC_BUILDING_HEIGHT", cfg.Building.Height)
	cfg.Log.Verbose = boolEnv("EVAC_VERBOSE", cfg.Log.Verbose)
}

func (c *Config) fillDefaults() {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = DefaultTimeout
	}
	if c.View.CellSize <= 0 {
		c.View.CellSize = DefaultCellSize
	}
	if strings.TrimSpace(c.View.Title) == "" {
		c.View.Title = DefaultTitle
	}
	if c.Sync.QueueSize <= 0 {
		c.Sync.QueueSize = DefaultQueueSize
	}
}

// Active reports whether a building grid is configured at all. An
// inactive config means there is nothing to show.
func (c Config) Active() bool {
	return c.Building.ID > 0 && c.Building.Width > 0 && c.Building.Height > 0
}

func (c Config) Validate() error {
	if !c.Active() {
		return fmt.Errorf("%w: building id, width and height must be positive (got id=%d %dx%d)",
			ErrInvalid, c.Building.ID, c.Building.Width, c.Building.Height)
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("%w: api base_url %q must be http or https", ErrInvalid, c.API.BaseURL)
	}
	return nil
}

// SeedHazards converts the configured seeds. Types are kept verbatim so
// backend-only types still render.
func (c Config) SeedHazards() []grid.Hazard {
	out := make([]grid.Hazard, 0, len(c.Building.Hazards))
	for _, s := range c.Building.Hazards {
		t := grid.HazardType(strings.TrimSpace(s.Type))
		if t == "" {
			t = grid.DefaultHazardType
		}
		intensity := s.Intensity
		if intensity <= 0 {
			intensity = grid.DefaultIntensity
		}
		out = append(out, grid.Hazard{Pos: grid.Point{X: s.X, Y: s.Y}, Type: t, Intensity: intensity})
	}
	return out
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func boolEnv(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
