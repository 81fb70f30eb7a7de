// Package camera provides the orbit camera used by the skin viewer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/skinforge/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Vertical angle, radians
	Yaw      float32 // Horizontal angle, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// New creates an orbit camera with defaults sized for a character model.
func New() *OrbitCamera {
	return &OrbitCamera{
		Distance:        70.0,
		Pitch:           0.15,
		Yaw:             0.5,
		MinDistance:     20.0,
		MaxDistance:     300.0,
		MinPitch:        -1.4,
		MaxPitch:        1.4,
		DragSensitivity: 0.008,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Sin(float64(c.Yaw)))
	y := c.Distance * float32(gomath.Sin(float64(c.Pitch)))
	z := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Cos(float64(c.Yaw)))

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), c.Center, up)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity

	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// FitToBounds centers the camera on a bounding box and backs off far
// enough to keep the whole box in frame.
func (c *OrbitCamera) FitToBounds(min, max math.Vec3) {
	c.Center = min.Add(max).Scale(0.5)

	size := max.Sub(min)
	extent := size.X
	if size.Y > extent {
		extent = size.Y
	}
	if size.Z > extent {
		extent = size.Z
	}

	c.Distance = extent * 2.2
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
