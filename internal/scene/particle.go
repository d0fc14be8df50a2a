package scene

import (
	"math"

	"neoncity/internal/city"
)

// Particle is one firework spark. Velocities are in world units per frame.
type Particle struct {
	X, Y, Z    float64
	VX, VY, VZ float64

	Life  float64 // 1 at launch, dead at <= 0
	Decay float64 // life lost per frame

	Col city.Color
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
	}
}

// Live returns the number of sparks still burning.
func (ps *ParticleSystem) Live() int { return len(ps.P) }

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Update advances every particle one Euler step under gravity and drops the
// ones whose life ran out.
func (ps *ParticleSystem) Update() {
	alive := ps.P[:0]
	for _, p := range ps.P {
		p.X += p.VX
		p.Y += p.VY
		p.Z += p.VZ
		p.VY -= ParticleGravity
		p.Life -= p.Decay
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	ps.P = alive
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// SpawnFireworks bursts count sparks from (x, y, z), each coloured from lights.
func (ps *ParticleSystem) SpawnFireworks(x, y, z float64, lights []city.Color, count int, r *city.Rand) {
	for i := 0; i < count; i++ {
		ang := r.RangeF(0, 2*math.Pi)
		spd := r.RangeF(ParticleMinSpeed, ParticleMaxSpeed)
		ps.Add(Particle{
			X: x, Y: y, Z: z,
			VX:    math.Cos(ang) * spd,
			VY:    r.RangeF(ParticleMinLift, ParticleMaxLift),
			VZ:    math.Sin(ang) * spd,
			Life:  1.0,
			Decay: r.RangeF(ParticleMinDecay, ParticleMaxDecay),
			Col:   lights[r.Intn(len(lights))],
		})
	}
}

// ParticleRenderData fills buf with point sprites.
// Format: [x, y, z, size, r, g, b, a] * N, alpha = remaining life.
func (ps *ParticleSystem) ParticleRenderData(buf []float32) []float32 {
	buf = buf[:0]
	for _, p := range ps.P {
		if p.Life <= 0 {
			continue
		}
		a := float32(p.Life)
		if a > 1 {
			a = 1
		}
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(p.Z), ParticleSize,
			p.Col.R, p.Col.G, p.Col.B, a,
		)
	}
	return buf
}
