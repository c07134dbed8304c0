package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/ringflight/internal/flight"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultFlightConfig() {
		t.Errorf("embedded defaults drifted from DefaultFlightConfig():\n%+v\n%+v", cfg, DefaultFlightConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("field:\n  spacing: 200\ncraft:\n  speed: 3\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Field.Spacing != 200 {
		t.Errorf("Spacing = %f, expected 200", cfg.Field.Spacing)
	}
	if cfg.Craft.Speed != 3 {
		t.Errorf("Speed = %f, expected 3", cfg.Craft.Speed)
	}
	if cfg.Field.MajorRadius != DefaultFlightConfig().Field.MajorRadius {
		t.Error("unset keys should keep their defaults")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"tube too thick", "field:\n  tube_radius: 9\n"},
		{"negative count", "field:\n  count: -3\n"},
		{"huge count", "field:\n  count: 1000000000\n"},
		{"zero speed", "craft:\n  speed: 0\n"},
		{"zero sensitivity", "controls:\n  sensitivity: 0\n"},
		{"loud audio", "audio:\n  volume: 2\n"},
		{"bad yaml", "field: [1, 2\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("Parse() should fail")
			}
		})
	}
}

func TestValidateWrapsFieldError(t *testing.T) {
	cfg := DefaultFlightConfig()
	cfg.Field.TubeRadius = cfg.Field.MajorRadius

	err := cfg.Validate()
	if !errors.Is(err, flight.ErrInvalidField) {
		t.Errorf("Validate() = %v, expected ErrInvalidField", err)
	}
}

func TestLoadFlightCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("field:\n  count: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadFlight(path)
	if err != nil {
		t.Fatalf("LoadFlight() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Field.Count != 7 {
		t.Errorf("Count = %d, expected 7", cfg.Field.Count)
	}
}

func TestLoadFlightMissingCustomPath(t *testing.T) {
	_, _, err := LoadFlight(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadFlight() should fail for a missing custom file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadFlightSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default.
	cfg, source, err := LoadFlight("")
	if err != nil {
		t.Fatalf("LoadFlight() failed: %v", err)
	}
	if source != SourceEmbedded || cfg != DefaultFlightConfig() {
		t.Errorf("expected embedded defaults, got source %q", source)
	}

	// Local configs directory.
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "flight.yaml"), []byte("field:\n  count: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _, err = LoadFlight("")
	if err != nil {
		t.Fatalf("LoadFlight() failed: %v", err)
	}
	if cfg.Field.Count != 3 {
		t.Errorf("local config should be used, Count = %d", cfg.Field.Count)
	}

	// User directory wins over local.
	userDir := filepath.Join(home, ".ringflight", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "flight.yaml"), []byte("field:\n  count: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _, err = LoadFlight("")
	if err != nil {
		t.Fatalf("LoadFlight() failed: %v", err)
	}
	if cfg.Field.Count != 4 {
		t.Errorf("user config should win, Count = %d", cfg.Field.Count)
	}
}

func TestSettingsConversion(t *testing.T) {
	cfg := DefaultFlightConfig()
	cfg.Craft.Start = Point{X: 1, Y: 2, Z: 3}

	s := cfg.Settings()
	if s.Start != (flight.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Start = %+v", s.Start)
	}
	if s.Speed != cfg.Craft.Speed || s.Sensitivity != cfg.Controls.Sensitivity {
		t.Error("speed and sensitivity should carry over")
	}
	if s.Field.Spacing != cfg.Field.Spacing {
		t.Error("field spacing should carry over")
	}
}

func TestMarshalRoundTripKeys(t *testing.T) {
	data, err := Marshal(DefaultFlightConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg != DefaultFlightConfig() {
		t.Error("marshaled config should parse back to the same values")
	}
}
