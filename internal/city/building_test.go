package city

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestBuilding(seed uint64, fp Footprint, height float64) *Building {
	return NewBuilding(1, fp, height, testLights, DefaultWindowLayout(), NewRand(seed))
}

func TestBuildWindowsGrid(t *testing.T) {
	l := DefaultWindowLayout()
	fp := Footprint{Width: 1.0, Depth: 2.0}
	height := 3.0
	ws := BuildWindows(fp, height, testLights, l, NewRand(1))

	colsX := int(math.Floor((1.0 - 0.05) / 0.2)) // 4
	colsZ := int(math.Floor((2.0 - 0.05) / 0.2)) // 9
	rows := int(math.Floor((3.0 - 0.05) / 0.2))  // 14
	if want := 2*rows*colsX + 2*rows*colsZ; len(ws) != want {
		t.Fatalf("got %d windows, want %d", len(ws), want)
	}

	var nx, nz int
	for _, w := range ws {
		switch w.Axis {
		case AxisX:
			nx++
			if w.Pos[2] != 0 && w.Pos[2] != fp.Depth {
				t.Errorf("X-face window at z=%f, want 0 or depth", w.Pos[2])
			}
		case AxisZ:
			nz++
			if w.Pos[0] != 0 && w.Pos[0] != fp.Width {
				t.Errorf("Z-face window at x=%f, want 0 or width", w.Pos[0])
			}
		}
		if w.Pos[1] < l.Gap || w.Pos[1]+l.Size > height {
			t.Errorf("window y=%f outside building height %f", w.Pos[1], height)
		}
	}
	if nx != 2*rows*colsX || nz != 2*rows*colsZ {
		t.Errorf("axis split %d/%d, want %d/%d", nx, nz, 2*rows*colsX, 2*rows*colsZ)
	}
}

func TestBuildWindowsCentered(t *testing.T) {
	l := DefaultWindowLayout()
	fp := Footprint{Width: 1.0, Depth: 1.0}
	ws := BuildWindows(fp, 2, testLights, l, NewRand(2))
	// The front face comes first; its first row spans columns 0..cols-1.
	cols := l.cells(fp.Width)
	first := ws[0].Pos[0]
	last := ws[cols-1].Pos[0] + l.Size + l.Gap
	if math.Abs(first-(fp.Width-last)) > 1e-9 {
		t.Errorf("front row not centred: left margin %f, right margin %f", first, fp.Width-last)
	}
}

func TestBuildWindowsAtLeastOne(t *testing.T) {
	ws := BuildWindows(Footprint{Width: 0.1, Depth: 0.1}, 0.1, testLights, DefaultWindowLayout(), NewRand(3))
	if len(ws) != 4 {
		t.Fatalf("tiny building got %d windows, want one per face", len(ws))
	}
}

func TestBuildWindowsLitRatioAndColors(t *testing.T) {
	ws := BuildWindows(Footprint{Width: 2, Depth: 2}, 12, testLights, DefaultWindowLayout(), NewRand(4))
	lit := 0
	for _, w := range ws {
		if w.Lit {
			lit++
		}
		found := false
		for _, c := range testLights {
			if w.Color == c {
				found = true
			}
		}
		if !found {
			t.Fatalf("window colour %+v not from the light set", w.Color)
		}
	}
	ratio := float64(lit) / float64(len(ws))
	if ratio < 0.2 || ratio > 0.4 {
		t.Errorf("lit ratio %f over %d windows, expected about 0.3", ratio, len(ws))
	}
}

func TestFlickerTogglesOneWindow(t *testing.T) {
	b := newTestBuilding(5, Footprint{Width: 1.5, Depth: 1.2}, 4)
	before := make([]bool, len(b.Windows))
	for i, w := range b.Windows {
		before[i] = w.Lit
	}
	rev := b.Revision()
	i := b.Flicker()
	if b.Revision() == rev {
		t.Error("flicker did not bump revision")
	}
	changed := 0
	for j, w := range b.Windows {
		if w.Lit != before[j] {
			changed++
			if j != i {
				t.Errorf("window %d changed but Flicker reported %d", j, i)
			}
		}
	}
	if changed != 1 {
		t.Errorf("flicker changed %d windows, want 1", changed)
	}
}

func TestFlickerWCallsChangesState(t *testing.T) {
	// W flickers leave every window at its start state only if each index was
	// hit an even number of times; over many trials that must be rare.
	const trials = 500
	unchanged := 0
	for trial := 0; trial < trials; trial++ {
		b := newTestBuilding(uint64(trial+1), Footprint{Width: 1, Depth: 1}, 2.5)
		before := make([]bool, len(b.Windows))
		for i, w := range b.Windows {
			before[i] = w.Lit
		}
		for range b.Windows {
			b.Flicker()
		}
		same := true
		for i, w := range b.Windows {
			if w.Lit != before[i] {
				same = false
				break
			}
		}
		if same {
			unchanged++
		}
	}
	if unchanged > trials/100 {
		t.Errorf("%d of %d trials ended with no window changed", unchanged, trials)
	}
}

func TestFlickerUniform(t *testing.T) {
	b := newTestBuilding(6, Footprint{Width: 1, Depth: 1}, 1)
	n := len(b.Windows)
	hits := make([]int, n)
	const draws = 20000
	for k := 0; k < draws; k++ {
		hits[b.Flicker()]++
	}
	expect := float64(draws) / float64(n)
	for i, h := range hits {
		if math.Abs(float64(h)-expect) > expect*0.35 {
			t.Errorf("window %d hit %d times, expected about %.0f", i, h, expect)
		}
	}
}

func TestFlickerNoWindows(t *testing.T) {
	b := &Building{rng: NewRand(1)}
	if got := b.Flicker(); got != -1 {
		t.Errorf("Flicker on empty building = %d, want -1", got)
	}
	if b.Revision() != 0 {
		t.Error("Flicker on empty building bumped revision")
	}
}

func TestRecolorSingleColor(t *testing.T) {
	b := newTestBuilding(7, Footprint{Width: 1.8, Depth: 0.9}, 6)
	litBefore := b.LitCount()
	rev := b.Revision()
	c := RGB(0.8, 1.0, 0.0)
	b.RecolorForTheme([]Color{c})
	for i, w := range b.Windows {
		if w.Color != c {
			t.Fatalf("window %d colour %+v, want %+v", i, w.Color, c)
		}
	}
	if b.LitCount() != litBefore {
		t.Error("recolor changed lit state")
	}
	if b.Revision() == rev {
		t.Error("recolor did not bump revision")
	}
}

func TestEmitGeometryOutwardWinding(t *testing.T) {
	fp := Footprint{X: 3, Z: -2, Width: 1.4, Depth: 1.1}
	b := newTestBuilding(8, fp, 3)
	g := b.EmitGeometry()
	if len(g.Body) != 5 {
		t.Fatalf("body has %d quads, want 5", len(g.Body))
	}
	if len(g.Windows) != len(b.Windows) {
		t.Fatalf("emitted %d window quads for %d windows", len(g.Windows), len(b.Windows))
	}

	cx, cz := fp.Center()
	centre := mgl32.Vec3{float32(cx), float32(b.Height / 2), float32(cz)}
	for i, q := range append(append([]Quad{}, g.Body...), g.Windows...) {
		n := q.Normal()
		if n.Len() == 0 {
			t.Fatalf("quad %d is degenerate", i)
		}
		mid := q.V[0].Add(q.V[2]).Mul(0.5)
		if n.Dot(mid.Sub(centre)) <= 0 {
			t.Errorf("quad %d faces inward: normal %v at %v", i, n, mid)
		}
	}
}

func TestEmitGeometryWindowColors(t *testing.T) {
	b := newTestBuilding(9, Footprint{Width: 1, Depth: 1}, 3)
	g := b.EmitGeometry()
	for i, w := range b.Windows {
		want := WindowOffColor
		if w.Lit {
			want = w.Color
		}
		if g.Windows[i].Color != want {
			t.Errorf("window %d emitted colour %+v, want %+v", i, g.Windows[i].Color, want)
		}
	}
	for _, q := range g.Body {
		if q.Color != BodyColor {
			t.Errorf("body quad colour %+v, want %+v", q.Color, BodyColor)
		}
	}
}
