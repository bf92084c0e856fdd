package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"evacplanner/internal/domain/grid"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planner.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.API.BaseURL != DefaultBaseURL || cfg.API.Timeout != DefaultTimeout {
		t.Fatalf("unexpected api defaults: %+v", cfg.API)
	}
	if cfg.View.CellSize != DefaultCellSize || cfg.Sync.QueueSize != DefaultQueueSize {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Active() {
		t.Fatalf("config without building must be inactive")
	}
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: http://planner.internal:8000
  timeout: 3s
building:
  id: 12
  width: 20
  height: 15
  hazards:
    - {x: 1, y: 2, type: smoke}
    - {x: 4, y: 4, type: structural, intensity: 3}
    - {x: 5, y: 5}
view:
  cell_size: 32
log:
  verbose: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.API.BaseURL != "http://planner.internal:8000" || cfg.API.Timeout != 3*time.Second {
		t.Fatalf("unexpected api: %+v", cfg.API)
	}
	if !cfg.Active() || cfg.Building.ID != 12 || cfg.Building.Width != 20 || cfg.Building.Height != 15 {
		t.Fatalf("unexpected building: %+v", cfg.Building)
	}
	if cfg.View.CellSize != 32 || cfg.View.Title != DefaultTitle || !cfg.Log.Verbose {
		t.Fatalf("unexpected view/log: %+v %+v", cfg.View, cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}

	seeds := cfg.SeedHazards()
	if len(seeds) != 3 {
		t.Fatalf("expected 3 seeds, got %d", len(seeds))
	}
	if seeds[0].Type != grid.HazardSmoke || seeds[0].Intensity != grid.DefaultIntensity {
		t.Fatalf("unexpected first seed: %+v", seeds[0])
	}
	if seeds[1].Type != grid.HazardType("structural") || seeds[1].Intensity != 3 {
		t.Fatalf("unknown types must be kept verbatim: %+v", seeds[1])
	}
	if seeds[2].Type != grid.DefaultHazardType {
		t.Fatalf("empty type must fall back to default: %+v", seeds[2])
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "building:\n  id: 1\n  width: 5\n  height: 5\n")
	t.Setenv("EVAC_API_BASE_URL", " https://evac.example ")
	t.Setenv("EVAC_SESSION_COOKIE", "session=xyz")
	t.Setenv("EVAC_BUILDING_ID", "77")
	t.Setenv("EVAC_BUILDING_WIDTH", "not-a-number")
	t.Setenv("EVAC_BUILDING_HEIGHT", "9")
	t.Setenv("EVAC_VERBOSE", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.API.BaseURL != "https://evac.example" || cfg.API.SessionCookie != "session=xyz" {
		t.Fatalf("unexpected api: %+v", cfg.API)
	}
	if cfg.Building.ID != 77 || cfg.Building.Width != 5 || cfg.Building.Height != 9 {
		t.Fatalf("unexpected building: %+v", cfg.Building)
	}
	if !cfg.Log.Verbose {
		t.Fatalf("expected verbose from env")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "building: [oops")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for inactive config, got %v", err)
	}

	cfg.Building = BuildingConfig{ID: 1, Width: 3, Height: 3}
	cfg.API.BaseURL = "localhost:5000"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for base url without scheme, got %v", err)
	}
}
