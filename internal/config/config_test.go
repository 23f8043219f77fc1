package config

import (
	"flag"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/litescript/ls-messier/internal/astro"
	"github.com/litescript/ls-messier/internal/catalog"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Sidereal.Model != astro.ClockLinear {
		t.Errorf("expected linear clock, got %s", cfg.Sidereal.Model)
	}
	if cfg.Display.Refresh != 5*time.Second {
		t.Errorf("expected refresh 5s, got %v", cfg.Display.Refresh)
	}
	if cfg.SortOrder() != catalog.SortByNumber {
		t.Errorf("expected number sort, got %s", cfg.SortOrder())
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	clock, err := cfg.Clock()
	if err != nil {
		t.Fatalf("Clock() error = %v", err)
	}
	if _, ok := clock.(astro.LinearClock); !ok {
		t.Errorf("expected LinearClock, got %T", clock)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
observer:
  name: "Sydney"
  latitude: -33.8688
  longitude: 151.2093

sidereal:
  model: iau

display:
  refresh: 10s
  min_altitude: 15
  sort: altitude
  visible_only: true

logging:
  level: "debug"
  file: "messier.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Observer.Name != "Sydney" || cfg.Observer.Latitude != -33.8688 || cfg.Observer.Longitude != 151.2093 {
		t.Errorf("observer not loaded: %+v", cfg.Observer)
	}
	if cfg.Display.Refresh != 10*time.Second {
		t.Errorf("expected refresh 10s, got %v", cfg.Display.Refresh)
	}
	if cfg.Display.MinAltitude != 15 || !cfg.Display.VisibleOnly {
		t.Errorf("display not loaded: %+v", cfg.Display)
	}
	if cfg.SortOrder() != catalog.SortByAltitude {
		t.Errorf("expected altitude sort, got %s", cfg.SortOrder())
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "messier.log" {
		t.Errorf("logging not loaded: %+v", cfg.Logging)
	}

	clock, err := cfg.Clock()
	if err != nil {
		t.Fatalf("Clock() error = %v", err)
	}
	if _, ok := clock.(astro.MeanClock); !ok {
		t.Errorf("expected MeanClock, got %T", clock)
	}

	obs := cfg.ObserverSite()
	if obs.LatDeg != -33.8688 || obs.LonDeg != 151.2093 || obs.Name != "Sydney" {
		t.Errorf("ObserverSite() = %+v", obs)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
observer:
  latitude: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"latitude too high", func(c *Config) { c.Observer.Latitude = 90.5 }},
		{"latitude too low", func(c *Config) { c.Observer.Latitude = -91 }},
		{"longitude out of range", func(c *Config) { c.Observer.Longitude = 400 }},
		{"unknown clock", func(c *Config) { c.Sidereal.Model = "sundial" }},
		{"bad epoch", func(c *Config) { c.Sidereal.Epoch = "yesterday" }},
		{"refresh too short", func(c *Config) { c.Display.Refresh = 100 * time.Millisecond }},
		{"unknown sort", func(c *Config) { c.Display.Sort = "brightness" }},
		{"latitude NaN", func(c *Config) { c.Observer.Latitude = math.NaN() }},
		{"longitude NaN", func(c *Config) { c.Observer.Longitude = math.NaN() }},
		{"longitude infinite", func(c *Config) { c.Observer.Longitude = math.Inf(1) }},
		{"min altitude NaN", func(c *Config) { c.Display.MinAltitude = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadRejectsNaNFlags(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	for _, args := range [][]string{
		{"--lat", "NaN"},
		{"--lon", "nan"},
		{"--lon", "+Inf"},
		{"--min-alt", "NaN"},
	} {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		f := RegisterFlags(fs)
		if err := fs.Parse(args); err != nil {
			t.Fatalf("parse %v: %v", args, err)
		}
		if _, err := Load(f); err == nil {
			t.Errorf("Load() with %v succeeded, want error", args)
		}
	}
}

func TestClockEpoch(t *testing.T) {
	cfg := Default()
	cfg.Sidereal.Epoch = "2024-01-01T00:00:00Z"

	clock, err := cfg.Clock()
	if err != nil {
		t.Fatalf("Clock() error = %v", err)
	}
	lc, ok := clock.(astro.LinearClock)
	if !ok {
		t.Fatalf("expected LinearClock, got %T", clock)
	}
	if !lc.Epoch.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("epoch = %v", lc.Epoch)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
observer:
  name: "Home"
  latitude: 10
  longitude: 20
display:
  sort: altitude
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"--config", configPath, "--lat", "-45.5", "--clock", "iau"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(f)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Observer.Latitude != -45.5 {
		t.Errorf("flag latitude not applied: %v", cfg.Observer.Latitude)
	}
	if cfg.Observer.Longitude != 20 {
		t.Errorf("file longitude lost: %v", cfg.Observer.Longitude)
	}
	if cfg.Observer.Name != "" {
		t.Errorf("site name should be cleared by coordinate flags, got %q", cfg.Observer.Name)
	}
	if cfg.Sidereal.Model != "iau" {
		t.Errorf("flag clock not applied: %s", cfg.Sidereal.Model)
	}
	if cfg.SortOrder() != catalog.SortByAltitude {
		t.Errorf("unset flag overrode file sort: %s", cfg.SortOrder())
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	missing := filepath.Join(t.TempDir(), "none.yaml")
	if err := fs.Parse([]string{"--config", missing}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if _, err := Load(f); err == nil {
		t.Error("expected error for missing explicit config")
	}

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	f = RegisterFlags(fs)
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := fs.Parse([]string{"--lat", "95"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if _, err := Load(f); err == nil {
		t.Error("expected validation error for latitude 95")
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if got := findConfigFile(); got != "" {
		t.Errorf("expected no config file, got %s", got)
	}

	xdgDir := filepath.Join(tmpDir, "xdg", "ls-messier")
	if err := os.MkdirAll(xdgDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(xdgDir, "config.yaml"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := findConfigFile(); got != filepath.Join(xdgDir, "config.yaml") {
		t.Errorf("expected XDG config, got %s", got)
	}

	if err := os.WriteFile(FileName, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := findConfigFile(); got != "./"+FileName {
		t.Errorf("expected local config to win, got %s", got)
	}
}

func TestObservationTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	f := &Flags{}
	if got, err := f.ObservationTime(now); err != nil || !got.Equal(now) {
		t.Errorf("ObservationTime() = %v, %v; want now", got, err)
	}

	f.Time = "2024-10-05T03:00:00Z"
	got, err := f.ObservationTime(now)
	if err != nil {
		t.Fatalf("ObservationTime() error = %v", err)
	}
	if !got.Equal(time.Date(2024, 10, 5, 3, 0, 0, 0, time.UTC)) {
		t.Errorf("ObservationTime() = %v", got)
	}

	f.Time = "tonight"
	if _, err := f.ObservationTime(now); err == nil {
		t.Error("expected parse error")
	}
}
