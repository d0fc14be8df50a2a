package noise

import (
	"fmt"

	"github.com/aquilax/go-perlin"
)

// Fractal1 sums octaves of Noise1 at doubling frequency (by lacunarity) and
// shrinking amplitude (by persistence), normalised by the total amplitude.
// base offsets the sample coordinate of every octave. octaves must be >= 1.
func Fractal1(x float64, octaves int, persistence, lacunarity, base float64) float64 {
	mustOctaves(octaves)
	var total, maxAmp float64
	frequency := 1.0
	amplitude := 1.0
	for i := 0; i < octaves; i++ {
		total += Noise1(x*frequency+base) * amplitude
		maxAmp += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	return total / maxAmp
}

// Fractal2 is the two-dimensional counterpart of Fractal1.
func Fractal2(x, y float64, octaves int, persistence, lacunarity, base float64) float64 {
	mustOctaves(octaves)
	var total, maxAmp float64
	frequency := 1.0
	amplitude := 1.0
	for i := 0; i < octaves; i++ {
		total += Noise2(x*frequency+base, y*frequency+base) * amplitude
		maxAmp += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	return total / maxAmp
}

func mustOctaves(octaves int) {
	if octaves < 1 {
		panic(fmt.Sprintf("noise: octaves must be >= 1, got %d", octaves))
	}
}

// Field is a continuous 2D scalar field.
type Field interface {
	At(x, y float64) float64
}

// FractalField samples Fractal2 with fixed octave parameters.
type FractalField struct {
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Base        float64
}

// DefaultFractal returns the two-octave field used for building heights.
func DefaultFractal() FractalField {
	return FractalField{Octaves: 2, Persistence: 0.5, Lacunarity: 2.0}
}

func (f FractalField) At(x, y float64) float64 {
	return Fractal2(x, y, f.Octaves, f.Persistence, f.Lacunarity, f.Base)
}

// PerlinField is a seeded alternative backed by go-perlin. Unlike the
// built-in table its lattice is shuffled per seed.
type PerlinField struct {
	p *perlin.Perlin
}

// NewPerlinField builds a field with the same octave shape as DefaultFractal.
func NewPerlinField(seed int64) *PerlinField {
	// alpha is go-perlin's amplitude divisor, beta its frequency multiplier.
	return &PerlinField{p: perlin.NewPerlin(2, 2, 2, seed)}
}

func (f *PerlinField) At(x, y float64) float64 {
	return f.p.Noise2D(x, y)
}
