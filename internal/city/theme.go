package city

// Color is a linear RGBA colour in 0..1.
type Color struct {
	R, G, B, A float32
}

// RGB builds an opaque colour.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Body and unlit-window colours shared by every theme.
var (
	BodyColor      = Color{R: 0.08, G: 0.08, B: 0.1, A: 1}
	WindowOffColor = Color{R: 0.04, G: 0.04, B: 0.06, A: 1}
)

// Theme is a named palette: the sky/fog background plus the light colours
// windows and fireworks are drawn from.
type Theme struct {
	Name       string
	Background Color
	Lights     []Color
}

func mustLights(lights []Color) {
	if len(lights) == 0 {
		panic("city: theme light set is empty")
	}
}
