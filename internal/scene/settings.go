package scene

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"neoncity/internal/city"
	"neoncity/internal/noise"
)

// Noise backends selectable from the settings file.
const (
	NoiseBuiltin = "builtin"
	NoisePerlin  = "perlin"
)

// Settings is the user-tunable part of the app. Zero-valued keys in a
// settings file keep their defaults.
type Settings struct {
	Density          int         `yaml:"density"`
	Seed             uint64      `yaml:"seed"`
	Noise            string      `yaml:"noise"`
	RotationSpeed    float64     `yaml:"rotation_speed"`
	FlickersPerFrame int         `yaml:"flickers_per_frame"`
	Audio            bool        `yaml:"audio"`
	Themes           []ThemeSpec `yaml:"themes"`
}

func DefaultSettings() Settings {
	return Settings{
		Density:          DefaultDensity,
		Noise:            NoiseBuiltin,
		RotationSpeed:    DefaultRotSpeed,
		FlickersPerFrame: DefaultFlickers,
		Audio:            true,
	}
}

// LoadSettings reads a YAML settings file on top of the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return s, nil
}

// Validate checks ranges and theme completeness.
func (s Settings) Validate() error {
	var errs []error
	if s.Density < MinDensity || s.Density > MaxDensity {
		errs = append(errs, fmt.Errorf("density %d outside [%d, %d]", s.Density, MinDensity, MaxDensity))
	}
	if s.Noise != NoiseBuiltin && s.Noise != NoisePerlin {
		errs = append(errs, fmt.Errorf("unknown noise backend %q", s.Noise))
	}
	if s.FlickersPerFrame < 0 {
		errs = append(errs, fmt.Errorf("flickers_per_frame %d is negative", s.FlickersPerFrame))
	}
	for i, t := range s.Themes {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("theme %d has no name", i))
		}
		if len(t.Lights) == 0 {
			errs = append(errs, fmt.Errorf("theme %q has no lights", t.Name))
		}
	}
	return errors.Join(errs...)
}

// ThemeList returns the configured themes, or the built-in set when the
// settings file defines none.
func (s Settings) ThemeList() []city.Theme {
	if len(s.Themes) == 0 {
		return Themes
	}
	out := make([]city.Theme, 0, len(s.Themes))
	for _, ts := range s.Themes {
		out = append(out, ts.Theme())
	}
	return out
}

// ResolveSeed picks the explicit seed, then SeedEnv, then the clock.
func (s Settings) ResolveSeed() uint64 {
	if s.Seed != 0 {
		return s.Seed
	}
	if v := os.Getenv(SeedEnv); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			return seed
		}
	}
	return uint64(time.Now().UnixNano())
}

// HeightField builds the noise field selected by s.Noise.
func (s Settings) HeightField(seed uint64) noise.Field {
	if s.Noise == NoisePerlin {
		return noise.NewPerlinField(int64(seed))
	}
	return noise.DefaultFractal()
}
