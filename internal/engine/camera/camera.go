// Package camera provides the orbital camera used by the viewer.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pitch limits in radians.
const (
	MaxPitch = gomath.Pi / 2
	MinPitch = -gomath.Pi / 2
)

// OrbitCamera orbits a target point on a sphere of fixed radius.
type OrbitCamera struct {
	Target mgl32.Vec3
	Up     mgl32.Vec3

	// Spherical coordinates
	Distance float32
	Theta    float64 // Yaw around Y, radians, unbounded
	Phi      float64 // Pitch, radians, clamped to [MinPitch, MaxPitch]

	// Degrees of rotation per pixel of drag
	Sensitivity float64
}

// NewOrbitCamera creates an orbit camera looking at the origin from +Z.
func NewOrbitCamera(distance float32, sensitivity float64) *OrbitCamera {
	return &OrbitCamera{
		Target:      mgl32.Vec3{0, 0, 0},
		Up:          mgl32.Vec3{0, 1, 0},
		Distance:    distance,
		Sensitivity: sensitivity,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	cosPhi := gomath.Cos(c.Phi)
	offset := mgl32.Vec3{
		float32(cosPhi * gomath.Sin(c.Theta)),
		float32(gomath.Sin(c.Phi)),
		float32(cosPhi * gomath.Cos(c.Theta)),
	}
	return c.Target.Add(offset.Mul(c.Distance))
}

// ViewMatrix returns the look-at matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, c.upVector())
}

// upVector returns Up, or the sphere tangent along increasing pitch when the
// view direction is parallel to Up (at the poles).
func (c *OrbitCamera) upVector() mgl32.Vec3 {
	dir := c.Target.Sub(c.Position())
	if dir.Cross(c.Up).Len() > 1e-6*c.Distance {
		return c.Up
	}
	sinPhi := gomath.Sin(c.Phi)
	return mgl32.Vec3{
		float32(-sinPhi * gomath.Sin(c.Theta)),
		float32(gomath.Cos(c.Phi)),
		float32(-sinPhi * gomath.Cos(c.Theta)),
	}
}

// HandleDrag updates rotation from a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float64) {
	c.Theta -= degToRad(deltaX * c.Sensitivity)
	c.Phi += degToRad(deltaY * c.Sensitivity)

	// Clamp pitch
	if c.Phi > MaxPitch {
		c.Phi = MaxPitch
	}
	if c.Phi < MinPitch {
		c.Phi = MinPitch
	}
}

// Reset returns the camera to its initial orientation.
func (c *OrbitCamera) Reset() {
	c.Theta = 0
	c.Phi = 0
}

func degToRad(deg float64) float64 {
	return deg * gomath.Pi / 180
}
