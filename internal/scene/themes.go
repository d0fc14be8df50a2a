package scene

import "neoncity/internal/city"

var (
	ThemeNeonCool = city.Theme{
		Name:       "Neon Cool",
		Background: city.Color{R: 0.04, G: 0.04, B: 0.12, A: 1},
		Lights:     []city.Color{city.RGB(0.39, 0.78, 1.0), city.RGB(0.20, 0.39, 1.0), city.RGB(0.78, 0.39, 1.0)},
	}
	ThemeNeonWarm = city.Theme{
		Name:       "Neon Warm",
		Background: city.Color{R: 0.12, G: 0.04, B: 0.04, A: 1},
		Lights:     []city.Color{city.RGB(1.0, 0.78, 0.39), city.RGB(1.0, 0.59, 0.20), city.RGB(1.0, 0.39, 0.20)},
	}
	ThemeMatrix = city.Theme{
		Name:       "The Matrix",
		Background: city.Color{R: 0.0, G: 0.1, B: 0.0, A: 1},
		Lights:     []city.Color{city.RGB(0.0, 1.0, 0.4), city.RGB(0.2, 0.9, 0.2), city.RGB(0.8, 1.0, 0.8)},
	}
	// ThemeVaporwave: pink/cyan/yellow on violet.
	ThemeVaporwave = city.Theme{
		Name:       "Vaporwave",
		Background: city.Color{R: 0.1, G: 0.05, B: 0.15, A: 1},
		Lights:     []city.Color{city.RGB(1.0, 0.0, 0.8), city.RGB(0.0, 0.9, 1.0), city.RGB(1.0, 0.9, 0.2)},
	}
	ThemeToxic = city.Theme{
		Name:       "Toxic",
		Background: city.Color{R: 0.05, G: 0.05, B: 0.0, A: 1},
		Lights:     []city.Color{city.RGB(0.8, 1.0, 0.0), city.RGB(0.6, 0.0, 0.8), city.RGB(0.0, 0.8, 0.2)},
	}

	Themes = []city.Theme{ThemeNeonCool, ThemeNeonWarm, ThemeMatrix, ThemeVaporwave, ThemeToxic}
)

// ThemeSpec is the YAML form of a theme. Colours are RGB triples in 0..1.
type ThemeSpec struct {
	Name       string       `yaml:"name"`
	Background [3]float32   `yaml:"background"`
	Lights     [][3]float32 `yaml:"lights"`
}

// Theme converts the spec. Each call returns a fresh light slice.
func (ts ThemeSpec) Theme() city.Theme {
	t := city.Theme{
		Name:       ts.Name,
		Background: city.RGB(ts.Background[0], ts.Background[1], ts.Background[2]),
		Lights:     make([]city.Color, 0, len(ts.Lights)),
	}
	for _, l := range ts.Lights {
		t.Lights = append(t.Lights, city.RGB(l[0], l[1], l[2]))
	}
	return t
}
