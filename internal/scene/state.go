package scene

import (
	"fmt"

	"neoncity/internal/city"
)

// State is everything the render loop mutates between frames. It owns the
// current city; the renderer only ever reads it.
type State struct {
	Settings   Settings
	Themes     []city.Theme
	Density    int
	ThemeIndex int
	Paused     bool
	Seed       uint64

	City      *city.City
	Particles *ParticleSystem
	Camera    OrbitCamera
	Events    *EventBus

	engine *city.Engine
	rng    *city.Rand // flicker picks and fireworks
}

// NewState validates s and prepares an empty scene. Call Regenerate to
// build the first city once event handlers are subscribed.
func NewState(s Settings, seed uint64) (*State, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	st := &State{
		Settings:  s,
		Themes:    s.ThemeList(),
		Density:   s.Density,
		Particles: NewParticleSystem(MaxParticles),
		Camera:    OrbitCamera{RotSpeed: s.RotationSpeed},
		Events:    NewEventBus(),
	}
	st.seedWith(seed)
	return st, nil
}

func (st *State) seedWith(seed uint64) {
	st.Seed = seed
	cfg := city.DefaultConfig()
	cfg.Extent = city.SqrtExtent(MapScale)
	st.engine = city.NewEngine(cfg, st.Settings.HeightField(seed), city.NewRand(seed))
	st.rng = city.NewRand(seed ^ 0xF11C4E55)
}

// Theme returns the active theme.
func (st *State) Theme() city.Theme {
	return st.Themes[st.ThemeIndex]
}

// Regenerate replaces the city at the current density. The retired
// building IDs travel with the event so cached geometry can be released.
func (st *State) Regenerate() {
	var retired []uint64
	if st.City != nil {
		retired = make([]uint64, 0, len(st.City.Buildings))
		for _, b := range st.City.Buildings {
			retired = append(retired, b.ID)
		}
	}
	st.City = st.engine.Generate(st.Density, st.Theme().Lights)
	st.Camera.Fit(st.Density)
	st.Events.Emit(Event{
		Type:    EventCityGenerated,
		Data:    len(st.City.Buildings),
		Retired: retired,
	})
}

// Reseed rebuilds the engine from a new seed and regenerates.
func (st *State) Reseed(seed uint64) {
	st.seedWith(seed)
	st.Regenerate()
}

// AdjustDensity moves density by delta within [MinDensity, MaxDensity] and
// regenerates when it changed.
func (st *State) AdjustDensity(delta int) bool {
	d := min(MaxDensity, max(MinDensity, st.Density+delta))
	if d == st.Density {
		return false
	}
	st.Density = d
	st.Regenerate()
	return true
}

// NextTheme cycles to the next theme and recolours the city in place.
func (st *State) NextTheme() {
	st.ThemeIndex = (st.ThemeIndex + 1) % len(st.Themes)
	if st.City != nil {
		st.City.RecolorForTheme(st.Theme().Lights)
	}
	st.Events.Emit(Event{Type: EventThemeChanged, Data: st.ThemeIndex})
}

func (st *State) TogglePause() {
	st.Paused = !st.Paused
}

// LaunchFireworks bursts sparks above a random rooftop. It reports false
// when there is no building to launch from.
func (st *State) LaunchFireworks() bool {
	if st.City == nil || len(st.City.Buildings) == 0 {
		return false
	}
	b := st.City.Buildings[st.rng.Intn(len(st.City.Buildings))]
	x, y, z := b.Roof()
	st.Particles.SpawnFireworks(x, y, z, st.Theme().Lights, FireworkCount, st.rng)
	st.Events.Emit(Event{Type: EventFireworks, X: x, Y: y, Z: z, Data: FireworkCount})
	return true
}

// Update runs one frame of animation: window flicker, particles, camera.
func (st *State) Update() {
	if st.City != nil && len(st.City.Buildings) > 0 {
		for i := 0; i < st.Settings.FlickersPerFrame; i++ {
			st.City.Buildings[st.rng.Intn(len(st.City.Buildings))].Flicker()
		}
	}
	st.Particles.Update()
	if !st.Paused {
		st.Camera.Advance()
	}
}

// Summary is a one-line description that reproduces the current city.
func (st *State) Summary() string {
	return fmt.Sprintf("seed=%d density=%d theme=%q noise=%s", st.Seed, st.Density, st.Theme().Name, st.Settings.Noise)
}

// HUDLines returns the overlay text, top to bottom.
func (st *State) HUDLines() []string {
	return []string{
		fmt.Sprintf("Density: %d (Up/Down Arrows)", st.Density),
		fmt.Sprintf("Theme: %s (Space)", st.Theme().Name),
		"Click: Fireworks",
		"Pause Rotation: P",
	}
}
