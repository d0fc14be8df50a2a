package city

import (
	"math"
	"testing"

	"neoncity/internal/noise"
)

var testLights = []Color{RGB(0.39, 0.78, 1.0), RGB(0.20, 0.39, 1.0), RGB(0.78, 0.39, 1.0)}

func newTestEngine(seed uint64) *Engine {
	return NewEngine(DefaultConfig(), noise.DefaultFractal(), NewRand(seed))
}

// constField returns the same noise value everywhere.
type constField float64

func (c constField) At(x, y float64) float64 { return float64(c) }

func assertNoOverlap(t *testing.T, c *City, gap float64) {
	t.Helper()
	for i, a := range c.Buildings {
		for j := i + 1; j < len(c.Buildings); j++ {
			b := c.Buildings[j]
			if a.Footprint.Collides(b.Footprint, gap) {
				t.Fatalf("buildings %d and %d overlap: %+v vs %+v", a.ID, b.ID, a.Footprint, b.Footprint)
			}
		}
	}
}

func TestGenerateZeroIsEmpty(t *testing.T) {
	c := newTestEngine(1).Generate(0, testLights)
	if len(c.Buildings) != 0 {
		t.Fatalf("expected empty city, got %d buildings", len(c.Buildings))
	}
	if c.Attempts != 0 {
		t.Errorf("expected zero attempts, got %d", c.Attempts)
	}
	if c.Short() {
		t.Error("empty request should not be short")
	}
}

func TestGenerateNegativeCountPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative count")
		}
	}()
	newTestEngine(1).Generate(-1, testLights)
}

func TestGenerateEmptyLightsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty light set")
		}
	}()
	newTestEngine(1).Generate(5, nil)
}

func TestGenerateTenBuildingsHundredTrials(t *testing.T) {
	for trial := 0; trial < 100; trial++ {
		e := newTestEngine(uint64(trial + 1))
		c := e.Generate(10, testLights)
		if len(c.Buildings) != 10 {
			t.Fatalf("trial %d: placed %d of 10 buildings in %d attempts", trial, len(c.Buildings), c.Attempts)
		}
		if c.Attempts > 10*e.Config().AttemptsMultiplier {
			t.Fatalf("trial %d: %d attempts exceeds cap", trial, c.Attempts)
		}
		if want := math.Sqrt(10) * 4.0 / 2; math.Abs(c.HalfExtent-want) > 1e-12 {
			t.Fatalf("half extent = %f, want %f", c.HalfExtent, want)
		}
		assertNoOverlap(t, c, e.Config().MinGap)
	}
}

func TestGenerateNeverExceedsRequest(t *testing.T) {
	for _, n := range []int{1, 5, 50, 100} {
		c := newTestEngine(uint64(n)).Generate(n, testLights)
		if len(c.Buildings) > n {
			t.Fatalf("requested %d, got %d", n, len(c.Buildings))
		}
		assertNoOverlap(t, c, DefaultConfig().MinGap)
		t.Logf("n=%d placed=%d attempts=%d", n, len(c.Buildings), c.Attempts)
	}
}

func TestGenerateStaysInBounds(t *testing.T) {
	c := newTestEngine(9).Generate(60, testLights)
	bounds := c.Bounds()
	for _, b := range c.Buildings {
		fp := b.Footprint
		r := RectF{X0: fp.X, Y0: fp.Z, X1: fp.X + fp.Width, Y1: fp.Z + fp.Depth}
		if !bounds.Contains(r) {
			t.Errorf("building %d footprint %+v outside map %+v", b.ID, fp, bounds)
		}
		if fp.Width < 0.8 || fp.Width >= 2.0 || fp.Depth < 0.8 || fp.Depth >= 2.0 {
			t.Errorf("building %d has size %fx%f outside [0.8, 2.0)", b.ID, fp.Width, fp.Depth)
		}
	}
}

func TestGenerateShortUnderPathologicalDensity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extent = func(int) float64 { return 3 }
	e := NewEngine(cfg, noise.DefaultFractal(), NewRand(3))
	c := e.Generate(50, testLights)
	if !c.Short() {
		t.Fatalf("expected short city on a 3x3 map, got %d buildings", len(c.Buildings))
	}
	if c.Attempts != 50*cfg.AttemptsMultiplier {
		t.Errorf("attempts = %d, want the cap %d", c.Attempts, 50*cfg.AttemptsMultiplier)
	}
	assertNoOverlap(t, c, cfg.MinGap)
}

func TestHeightFloor(t *testing.T) {
	e := newTestEngine(1)
	for _, n := range []float64{-3, -1.5, -1, -0.5, 0, 0.5, 1} {
		for _, j := range []float64{-1, 0, 4} {
			if h := e.Height(n, j); h < e.Config().HeightFloor {
				t.Errorf("Height(%f, %f) = %f below floor", n, j, h)
			}
		}
	}
	if h := e.Height(0, 0); h != 5 {
		t.Errorf("Height(0, 0) = %f, want 5", h)
	}

	low := NewEngine(DefaultConfig(), constField(-2), NewRand(4)).Generate(30, testLights)
	for _, b := range low.Buildings {
		if b.Height != DefaultConfig().HeightFloor {
			t.Errorf("building %d height %f, want floor with strongly negative noise", b.ID, b.Height)
		}
	}
}

func TestGenerateSameSeedSameCity(t *testing.T) {
	a := newTestEngine(42).Generate(40, testLights)
	b := newTestEngine(42).Generate(40, testLights)
	if len(a.Buildings) != len(b.Buildings) {
		t.Fatalf("different counts for equal seeds: %d vs %d", len(a.Buildings), len(b.Buildings))
	}
	for i := range a.Buildings {
		if a.Buildings[i].Footprint != b.Buildings[i].Footprint || a.Buildings[i].Height != b.Buildings[i].Height {
			t.Fatalf("building %d differs for equal seeds", i)
		}
	}
}

func TestIDsUniqueAcrossCities(t *testing.T) {
	e := newTestEngine(5)
	seen := map[uint64]bool{}
	for round := 0; round < 3; round++ {
		for _, b := range e.Generate(20, testLights).Buildings {
			if seen[b.ID] {
				t.Fatalf("duplicate building ID %d", b.ID)
			}
			seen[b.ID] = true
		}
	}
}

func TestCityRecolorSharesSlice(t *testing.T) {
	c := newTestEngine(6).Generate(10, testLights)
	single := []Color{RGB(1, 0, 0.8)}
	c.RecolorForTheme(single)
	for _, b := range c.Buildings {
		if &b.Lights()[0] != &single[0] {
			t.Fatalf("building %d holds a copy of the light set", b.ID)
		}
		for _, w := range b.Windows {
			if w.Color != single[0] {
				t.Fatalf("building %d has window colour %+v", b.ID, w.Color)
			}
		}
	}
}
