package city

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis tells which pair of faces a window sits on, and therefore along which
// horizontal axis its quad extends.
type Axis uint8

const (
	AxisX Axis = iota // front/back faces, quad spans X
	AxisZ             // left/right faces, quad spans Z
)

// Window is a single lit or unlit pane on a building face. Pos is local to
// the building origin and marks the pane's lower corner.
type Window struct {
	Pos   mgl64.Vec3
	Axis  Axis
	Side  int8 // +1 when the face normal points along +Axis normal, -1 otherwise
	Lit   bool
	Color Color
}

// WindowLayout sizes the window grid.
type WindowLayout struct {
	Size      float64
	Gap       float64
	LitChance float64
}

// DefaultWindowLayout is 0.15 panes, 0.05 apart, roughly 30% lit.
func DefaultWindowLayout() WindowLayout {
	return WindowLayout{Size: 0.15, Gap: 0.05, LitChance: 0.3}
}

// cells is how many windows of size+gap fit along span, never fewer than one.
func (l WindowLayout) cells(span float64) int {
	n := int(math.Floor((span - l.Gap) / (l.Size + l.Gap)))
	if n < 1 {
		return 1
	}
	return n
}

type face struct {
	x, z float64 // local origin of the face
	axis Axis
	side int8
}

// BuildWindows lays out windows on all four vertical faces, front (z=depth),
// back (z=0), left (x=0) and right (x=width), in that order. Each window is
// lit with probability layout.LitChance and gets a uniform colour from lights.
func BuildWindows(fp Footprint, height float64, lights []Color, layout WindowLayout, r *Rand) []Window {
	mustLights(lights)

	step := layout.Size + layout.Gap
	colsX := layout.cells(fp.Width)
	colsZ := layout.cells(fp.Depth)
	rows := layout.cells(height)

	faces := [4]face{
		{x: 0, z: fp.Depth, axis: AxisX, side: 1},
		{x: 0, z: 0, axis: AxisX, side: -1},
		{x: 0, z: 0, axis: AxisZ, side: -1},
		{x: fp.Width, z: 0, axis: AxisZ, side: 1},
	}

	out := make([]Window, 0, 2*rows*(colsX+colsZ))
	for _, f := range faces {
		cols, span := colsX, fp.Width
		if f.axis == AxisZ {
			cols, span = colsZ, fp.Depth
		}
		start := (span - float64(cols)*step) / 2

		for row := 0; row < rows; row++ {
			y := layout.Gap + float64(row)*step
			for col := 0; col < cols; col++ {
				offset := start + float64(col)*step
				w := Window{
					Axis:  f.axis,
					Side:  f.side,
					Lit:   r.Float64() < layout.LitChance,
					Color: lights[r.Intn(len(lights))],
				}
				if f.axis == AxisX {
					w.Pos = mgl64.Vec3{f.x + offset, y, f.z}
				} else {
					w.Pos = mgl64.Vec3{f.x, y, f.z + offset}
				}
				out = append(out, w)
			}
		}
	}
	return out
}
