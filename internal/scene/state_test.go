package scene

import (
	"math"
	"testing"
)

func newTestState(t *testing.T, seed uint64) *State {
	t.Helper()
	st, err := NewState(DefaultSettings(), seed)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return st
}

func TestRegenerateEmitsRetiredIDs(t *testing.T) {
	st := newTestState(t, 1)
	var events []Event
	st.Events.Subscribe(EventCityGenerated, func(e Event) { events = append(events, e) })

	st.Regenerate()
	first := st.City
	if len(events) != 1 || len(events[0].Retired) != 0 {
		t.Fatalf("first generation events = %+v", events)
	}
	if events[0].Data != len(first.Buildings) {
		t.Errorf("event count %d, city has %d", events[0].Data, len(first.Buildings))
	}

	if !st.AdjustDensity(DensityStep) {
		t.Fatal("density change rejected")
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if len(events[1].Retired) != len(first.Buildings) {
		t.Errorf("retired %d IDs, old city had %d", len(events[1].Retired), len(first.Buildings))
	}
	for i, id := range events[1].Retired {
		if id != first.Buildings[i].ID {
			t.Fatalf("retired[%d] = %d, want %d", i, id, first.Buildings[i].ID)
		}
	}
}

func TestAdjustDensityClamps(t *testing.T) {
	st := newTestState(t, 2)
	st.Density = MaxDensity
	if st.AdjustDensity(DensityStep) {
		t.Error("density went above max")
	}
	st.Density = MinDensity
	if st.AdjustDensity(-DensityStep) {
		t.Error("density went below min")
	}
	if !st.AdjustDensity(DensityStep) || st.Density != MinDensity+DensityStep {
		t.Errorf("density = %d after step up", st.Density)
	}
	if len(st.City.Buildings) > st.Density {
		t.Errorf("city has %d buildings for density %d", len(st.City.Buildings), st.Density)
	}
}

func TestNextThemeRecolors(t *testing.T) {
	st := newTestState(t, 3)
	st.Regenerate()
	changed := 0
	st.Events.Subscribe(EventThemeChanged, func(e Event) { changed = e.Data })

	for i := 0; i < len(st.Themes)+1; i++ {
		st.NextTheme()
		lights := st.Theme().Lights
		for _, b := range st.City.Buildings {
			for _, w := range b.Windows {
				ok := false
				for _, l := range lights {
					if w.Color == l {
						ok = true
					}
				}
				if !ok {
					t.Fatalf("theme %q: window colour %+v not in palette", st.Theme().Name, w.Color)
				}
			}
		}
	}
	if st.ThemeIndex != 1 || changed != 1 {
		t.Errorf("theme index %d (event %d) after wrapping, want 1", st.ThemeIndex, changed)
	}
}

func TestUpdateFlickersAndOrbits(t *testing.T) {
	st := newTestState(t, 4)
	st.Regenerate()
	var before uint64
	for _, b := range st.City.Buildings {
		before += b.Revision()
	}
	st.Update()
	var after uint64
	for _, b := range st.City.Buildings {
		after += b.Revision()
	}
	if after-before != uint64(st.Settings.FlickersPerFrame) {
		t.Errorf("revisions advanced by %d, want %d", after-before, st.Settings.FlickersPerFrame)
	}
	if st.Camera.Angle != st.Settings.RotationSpeed {
		t.Errorf("camera angle %f after one frame", st.Camera.Angle)
	}

	st.TogglePause()
	angle := st.Camera.Angle
	st.Update()
	if st.Camera.Angle != angle {
		t.Error("paused camera still rotates")
	}
}

func TestLaunchFireworks(t *testing.T) {
	st := newTestState(t, 5)
	if st.LaunchFireworks() {
		t.Fatal("fireworks launched with no city")
	}
	st.Regenerate()
	fired := false
	st.Events.Subscribe(EventFireworks, func(Event) { fired = true })
	if !st.LaunchFireworks() {
		t.Fatal("fireworks did not launch")
	}
	if !fired || len(st.Particles.P) != FireworkCount {
		t.Fatalf("fired=%v particles=%d", fired, len(st.Particles.P))
	}
	// Every spark starts on some roof.
	p := st.Particles.P[0]
	onRoof := false
	for _, b := range st.City.Buildings {
		x, y, z := b.Roof()
		if p.X == x && p.Y == y && p.Z == z {
			onRoof = true
		}
	}
	if !onRoof {
		t.Errorf("spark at (%f, %f, %f) is not on a roof", p.X, p.Y, p.Z)
	}
}

func TestCameraFit(t *testing.T) {
	var c OrbitCamera
	c.Fit(100)
	if want := 20*CamDistFactor + CamDistPad; math.Abs(c.Dist-want) > 1e-9 {
		t.Errorf("dist = %f, want %f", c.Dist, want)
	}
	if c.Height != c.Dist*0.5 {
		t.Errorf("height = %f, want half the distance", c.Height)
	}
	start, end := c.Fog()
	if start >= end {
		t.Errorf("fog start %f not before end %f", start, end)
	}
	eye := c.Eye()
	if math.Abs(float64(eye.Z())-c.Dist) > 1e-4 || math.Abs(float64(eye.X())) > 1e-6 {
		t.Errorf("eye at angle 0 = %v", eye)
	}
}

func TestSameSeedSameSummary(t *testing.T) {
	a := newTestState(t, 99)
	b := newTestState(t, 99)
	a.Regenerate()
	b.Regenerate()
	if a.Summary() != b.Summary() {
		t.Errorf("summaries differ: %q vs %q", a.Summary(), b.Summary())
	}
	for i := range a.City.Buildings {
		if a.City.Buildings[i].Footprint != b.City.Buildings[i].Footprint {
			t.Fatalf("building %d differs for equal seeds", i)
		}
	}
	if len(a.HUDLines()) != 4 {
		t.Errorf("HUD has %d lines, want 4", len(a.HUDLines()))
	}
}
