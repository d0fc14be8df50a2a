package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera circles the origin at a distance fitted to the city size,
// looking down at roughly 45-60 degrees.
type OrbitCamera struct {
	Angle    float64
	RotSpeed float64
	Dist     float64
	Height   float64
}

// Fit sets distance and elevation for a city of the given density.
func (c *OrbitCamera) Fit(density int) {
	radius := math.Sqrt(float64(density)) * MapScale / 2
	c.Dist = radius*CamDistFactor + CamDistPad
	c.Height = c.Dist * CamHeightFactor
}

// Advance rotates by one frame.
func (c *OrbitCamera) Advance() {
	c.Angle += c.RotSpeed
}

func (c OrbitCamera) Eye() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Sin(c.Angle) * c.Dist),
		float32(c.Height),
		float32(math.Cos(c.Angle) * c.Dist),
	}
}

func (c OrbitCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

func (c OrbitCamera) Projection(fbW, fbH int) mgl32.Mat4 {
	aspect := float32(1)
	if fbH > 0 {
		aspect = float32(fbW) / float32(fbH)
	}
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, NearPlane, FarPlane)
}

// Fog returns the linear fog range, which follows the camera distance.
func (c OrbitCamera) Fog() (start, end float32) {
	return float32(c.Dist * FogStartFactor), float32(c.Dist * FogEndFactor)
}
