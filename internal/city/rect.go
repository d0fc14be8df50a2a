package city

// RectF is an axis-aligned rectangle on the ground plane (X right, Y = world Z).
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Intersects reports whether r and o interpenetrate. Rectangles that only
// share an edge do not intersect.
func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

func (r RectF) Contains(o RectF) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

// Footprint is a building's base rectangle: origin (X, Z), then Width along
// X and Depth along Z.
type Footprint struct {
	X, Z         float64
	Width, Depth float64
}

// Rect returns the footprint grown by gap on its far X and Z edges. Two
// footprints whose rects do not intersect are at least gap apart on some axis.
func (f Footprint) Rect(gap float64) RectF {
	return RectF{X0: f.X, Y0: f.Z, X1: f.X + f.Width + gap, Y1: f.Z + f.Depth + gap}
}

// Collides applies the alley test between two footprints.
func (f Footprint) Collides(o Footprint, gap float64) bool {
	return f.Rect(gap).Intersects(o.Rect(gap))
}

// Center returns the footprint centre on the ground plane.
func (f Footprint) Center() (x, z float64) {
	return f.X + f.Width*0.5, f.Z + f.Depth*0.5
}
