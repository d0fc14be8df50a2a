package city

import "github.com/go-gl/mathgl/mgl32"

// Quad is four world-space corners in counter-clockwise order seen from the
// outside, with one solid colour.
type Quad struct {
	V     [4]mgl32.Vec3
	Color Color
}

// Geometry is everything a renderer needs to draw one building. Window
// quads are coplanar with the body and must be drawn with a depth offset.
type Geometry struct {
	Body    []Quad
	Windows []Quad
}

// QuadCount returns the total number of quads.
func (g Geometry) QuadCount() int { return len(g.Body) + len(g.Windows) }

// EmitGeometry produces the body box (four walls and a roof) and one quad per
// window, in world space.
func (b *Building) EmitGeometry() Geometry {
	ox := float32(b.Footprint.X)
	oz := float32(b.Footprint.Z)
	w := float32(b.Footprint.Width)
	h := float32(b.Height)
	d := float32(b.Footprint.Depth)

	v := func(x, y, z float32) mgl32.Vec3 { return mgl32.Vec3{ox + x, y, oz + z} }

	g := Geometry{
		Body: []Quad{
			{V: [4]mgl32.Vec3{v(0, 0, d), v(w, 0, d), v(w, h, d), v(0, h, d)}, Color: BodyColor}, // front
			{V: [4]mgl32.Vec3{v(0, 0, 0), v(0, h, 0), v(w, h, 0), v(w, 0, 0)}, Color: BodyColor}, // back
			{V: [4]mgl32.Vec3{v(0, 0, 0), v(0, 0, d), v(0, h, d), v(0, h, 0)}, Color: BodyColor}, // left
			{V: [4]mgl32.Vec3{v(w, 0, 0), v(w, h, 0), v(w, h, d), v(w, 0, d)}, Color: BodyColor}, // right
			{V: [4]mgl32.Vec3{v(0, h, 0), v(0, h, d), v(w, h, d), v(w, h, 0)}, Color: BodyColor}, // top
		},
		Windows: make([]Quad, 0, len(b.Windows)),
	}

	s := float32(b.layout.Size)
	for _, win := range b.Windows {
		col := WindowOffColor
		if win.Lit {
			col = win.Color
		}
		x, y, z := float32(win.Pos[0]), float32(win.Pos[1]), float32(win.Pos[2])

		var q [4]mgl32.Vec3
		switch {
		case win.Axis == AxisX && win.Side > 0:
			q = [4]mgl32.Vec3{v(x, y, z), v(x+s, y, z), v(x+s, y+s, z), v(x, y+s, z)}
		case win.Axis == AxisX:
			q = [4]mgl32.Vec3{v(x, y, z), v(x, y+s, z), v(x+s, y+s, z), v(x+s, y, z)}
		case win.Side > 0:
			q = [4]mgl32.Vec3{v(x, y, z), v(x, y+s, z), v(x, y+s, z+s), v(x, y, z+s)}
		default:
			q = [4]mgl32.Vec3{v(x, y, z), v(x, y, z+s), v(x, y+s, z+s), v(x, y+s, z)}
		}
		g.Windows = append(g.Windows, Quad{V: q, Color: col})
	}
	return g
}

// Normal returns the (unnormalised) face normal implied by the winding.
func (q Quad) Normal() mgl32.Vec3 {
	return q.V[1].Sub(q.V[0]).Cross(q.V[2].Sub(q.V[0]))
}
