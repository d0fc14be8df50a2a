package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"neoncity/internal/noise"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "neoncity.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestDefaultSettingsValid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
	if got := len(DefaultSettings().ThemeList()); got != 5 {
		t.Errorf("default theme count = %d, want 5", got)
	}
}

func TestLoadSettingsOverridesAndKeepsDefaults(t *testing.T) {
	path := writeSettings(t, `
density: 30
seed: 1234
noise: perlin
audio: false
themes:
  - name: Ice
    background: [0.0, 0.05, 0.1]
    lights:
      - [0.6, 0.9, 1.0]
`)
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Density != 30 || s.Seed != 1234 || s.Noise != NoisePerlin || s.Audio {
		t.Errorf("overrides not applied: %+v", s)
	}
	if s.FlickersPerFrame != DefaultFlickers || s.RotationSpeed != DefaultRotSpeed {
		t.Errorf("defaults lost: %+v", s)
	}
	themes := s.ThemeList()
	if len(themes) != 1 || themes[0].Name != "Ice" || len(themes[0].Lights) != 1 {
		t.Fatalf("themes = %+v", themes)
	}
	if themes[0].Lights[0].B != 1.0 || themes[0].Lights[0].A != 1 {
		t.Errorf("light colour = %+v", themes[0].Lights[0])
	}
	if _, ok := s.HeightField(1).(*noise.PerlinField); !ok {
		t.Errorf("perlin backend not selected")
	}
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	path := writeSettings(t, `
density: 500
noise: simplex
themes:
  - name: Dark
    background: [0, 0, 0]
`)
	_, err := LoadSettings(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"density 500", "simplex", "no lights"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestResolveSeed(t *testing.T) {
	s := DefaultSettings()
	s.Seed = 77
	if got := s.ResolveSeed(); got != 77 {
		t.Errorf("explicit seed = %d, want 77", got)
	}

	s.Seed = 0
	t.Setenv(SeedEnv, "31337")
	if got := s.ResolveSeed(); got != 31337 {
		t.Errorf("env seed = %d, want 31337", got)
	}

	t.Setenv(SeedEnv, "not-a-number")
	if got := s.ResolveSeed(); got == 0 {
		t.Error("clock seed should be non-zero")
	}
}
