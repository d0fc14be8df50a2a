package scene

import (
	"testing"

	"neoncity/internal/city"
)

var sparkLights = []city.Color{city.RGB(1, 0, 0.8), city.RGB(0, 0.9, 1)}

func TestFireworksRiseThenDie(t *testing.T) {
	ps := NewParticleSystem(100)
	ps.SpawnFireworks(0, 5, 0, sparkLights, FireworkCount, city.NewRand(1))
	if len(ps.P) != FireworkCount {
		t.Fatalf("spawned %d, want %d", len(ps.P), FireworkCount)
	}
	for _, p := range ps.P {
		if p.VY < ParticleMinLift || p.VY >= ParticleMaxLift {
			t.Errorf("lift %f outside range", p.VY)
		}
		if p.Col != sparkLights[0] && p.Col != sparkLights[1] {
			t.Errorf("spark colour %+v not from lights", p.Col)
		}
	}

	ps.Update()
	for _, p := range ps.P {
		if p.Y <= 5 {
			t.Errorf("spark did not rise on first frame: y=%f", p.Y)
		}
	}

	// Slowest decay is 0.03 per frame, so 34 frames kill everything.
	for i := 0; i < 34; i++ {
		ps.Update()
	}
	if len(ps.P) != 0 {
		t.Errorf("%d sparks still alive", len(ps.P))
	}
}

func TestParticleSystemOverwritesWhenFull(t *testing.T) {
	ps := NewParticleSystem(4)
	for i := 0; i < 6; i++ {
		ps.Add(Particle{X: float64(i), Life: 1, Decay: 0.1})
	}
	if len(ps.P) != 4 {
		t.Fatalf("len = %d, want 4", len(ps.P))
	}
	if ps.P[0].X != 4 || ps.P[1].X != 5 {
		t.Errorf("oldest slots not overwritten: %+v", ps.P)
	}
}

func TestParticleRenderData(t *testing.T) {
	ps := NewParticleSystem(10)
	ps.Add(Particle{X: 1, Y: 2, Z: 3, Life: 0.5, Col: sparkLights[1]})
	ps.Add(Particle{Life: 0})
	buf := ps.ParticleRenderData(nil)
	if len(buf) != 8 {
		t.Fatalf("buffer has %d floats, want 8", len(buf))
	}
	if buf[0] != 1 || buf[1] != 2 || buf[2] != 3 || buf[7] != 0.5 {
		t.Errorf("sprite = %v", buf)
	}
}
