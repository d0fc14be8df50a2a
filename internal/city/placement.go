package city

import (
	"fmt"
	"math"

	"neoncity/internal/noise"
)

// ExtentFunc maps a requested building count to the full side length of the
// square map. It must be monotonically non-decreasing in count.
type ExtentFunc func(count int) float64

// SqrtExtent scales side length with sqrt(count) so area grows linearly with
// the number of buildings.
func SqrtExtent(scale float64) ExtentFunc {
	return func(count int) float64 {
		return math.Sqrt(float64(count)) * scale
	}
}

// Config holds the placement and height-synthesis parameters.
type Config struct {
	Extent             ExtentFunc
	AttemptsMultiplier int
	MinSize, MaxSize   float64 // footprint width/depth range
	MinGap             float64 // alley width between buildings
	NoiseScale         float64 // world units to noise units
	HeightFloor        float64
	HeightScale        float64 // (n+1) * HeightScale
	JitterMin          float64
	JitterMax          float64
	Windows            WindowLayout
}

// DefaultConfig matches the stock city: 0.8..2.0 footprints, 0.4 alleys,
// a sqrt(count)*4 map and up to 100 tries per requested building.
func DefaultConfig() Config {
	return Config{
		Extent:             SqrtExtent(4.0),
		AttemptsMultiplier: 100,
		MinSize:            0.8,
		MaxSize:            2.0,
		MinGap:             0.4,
		NoiseScale:         0.1,
		HeightFloor:        2.0,
		HeightScale:        5.0,
		JitterMin:          -1.0,
		JitterMax:          4.0,
		Windows:            DefaultWindowLayout(),
	}
}

// City is the set of buildings produced by one Generate call.
type City struct {
	Buildings  []*Building
	Requested  int
	Attempts   int
	HalfExtent float64
}

// Short reports whether the attempt cap ran out before every requested
// building was placed. This is expected under high density.
func (c *City) Short() bool { return len(c.Buildings) < c.Requested }

// Bounds returns the map square buildings were placed in.
func (c *City) Bounds() RectF {
	return RectF{X0: -c.HalfExtent, Y0: -c.HalfExtent, X1: c.HalfExtent, Y1: c.HalfExtent}
}

// RecolorForTheme recolours every building from lights. The slice is shared,
// never copied per building, and is swapped as a whole.
func (c *City) RecolorForTheme(lights []Color) {
	mustLights(lights)
	for _, b := range c.Buildings {
		b.RecolorForTheme(lights)
	}
}

// Engine places buildings by rejection sampling.
type Engine struct {
	cfg     Config
	heights noise.Field
	rng     *Rand
	nextID  uint64
}

// NewEngine returns an engine sampling heights from field. IDs are unique
// across every city the engine generates.
func NewEngine(cfg Config, field noise.Field, r *Rand) *Engine {
	return &Engine{cfg: cfg, heights: field, rng: r}
}

// Config returns the engine's placement parameters.
func (e *Engine) Config() Config { return e.cfg }

// Height combines a noise sample with jitter and clamps to the floor.
func (e *Engine) Height(n, jitter float64) float64 {
	return math.Max(e.cfg.HeightFloor, (n+1)*e.cfg.HeightScale+jitter)
}

// Generate places up to count buildings whose footprints keep at least
// MinGap apart, giving up after count*AttemptsMultiplier candidates. A city
// with fewer than count buildings is a valid result.
func (e *Engine) Generate(count int, lights []Color) *City {
	if count < 0 {
		panic(fmt.Sprintf("city: negative building count %d", count))
	}
	mustLights(lights)

	half := e.cfg.Extent(count) / 2
	c := &City{
		Buildings:  make([]*Building, 0, count),
		Requested:  count,
		HalfExtent: half,
	}
	maxAttempts := count * e.cfg.AttemptsMultiplier

	for len(c.Buildings) < count && c.Attempts < maxAttempts {
		c.Attempts++

		w := e.rng.RangeF(e.cfg.MinSize, e.cfg.MaxSize)
		d := e.rng.RangeF(e.cfg.MinSize, e.cfg.MaxSize)
		fp := Footprint{
			X:     e.rng.RangeF(-half, half-w),
			Z:     e.rng.RangeF(-half, half-d),
			Width: w,
			Depth: d,
		}

		if e.collides(fp, c.Buildings) {
			continue
		}

		n := e.heights.At(fp.X*e.cfg.NoiseScale, fp.Z*e.cfg.NoiseScale)
		h := e.Height(n, e.rng.RangeF(e.cfg.JitterMin, e.cfg.JitterMax))

		e.nextID++
		c.Buildings = append(c.Buildings, NewBuilding(e.nextID, fp, h, lights, e.cfg.Windows, e.rng))
	}
	return c
}

func (e *Engine) collides(fp Footprint, placed []*Building) bool {
	for _, o := range placed {
		if fp.Collides(o.Footprint, e.cfg.MinGap) {
			return true
		}
	}
	return false
}
