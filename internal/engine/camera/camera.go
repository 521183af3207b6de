// Package camera provides the free camera used by the demos.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/vertexshade/pkg/math"
)

// Default camera values.
const (
	DefaultSensitivity = float32(gomath.Pi / 60)
	DefaultSpeed       = float32(4.0 / 60)
)

// MoveMode selects how a local movement vector is rotated into world space.
type MoveMode int

const (
	// MoveYaw rotates by the inverse yaw only, keeping movement level.
	MoveYaw MoveMode = iota
	// MoveFull rotates by the inverse of each axis in X, Y, Z order.
	MoveFull
)

// Camera is a position plus Euler rotation kept in [0, 2π) per axis.
type Camera struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Pitch, yaw, roll (radians)

	Sensitivity float32 // Radians per turn step
	Speed       float32 // Units per move step
	Mode        MoveMode
}

// New creates a camera with default sensitivity and speed.
func New(pos, rot mgl32.Vec3) *Camera {
	return &Camera{
		Position:    pos,
		Rotation:    rot,
		Sensitivity: DefaultSensitivity,
		Speed:       DefaultSpeed,
	}
}

// Default returns the camera the rotation and point light demos start with.
func Default() *Camera {
	return New(
		mgl32.Vec3{-.5, -.8, 1.5},
		mgl32.Vec3{math.TwoPi / 16, math.TwoPi - math.TwoPi/12, 0},
	)
}

// Pitch turns around X by steps of Sensitivity. Positive steps add.
func (c *Camera) Pitch(steps int) {
	c.Rotation[0] = turn(c.Rotation[0], c.Sensitivity, steps)
}

// Yaw turns around Y by steps of Sensitivity. Positive steps add.
func (c *Camera) Yaw(steps int) {
	c.Rotation[1] = turn(c.Rotation[1], c.Sensitivity, steps)
}

func turn(angle, sens float32, steps int) float32 {
	for ; steps > 0; steps-- {
		angle = math.WrapAngleAdd(angle, sens)
	}
	for ; steps < 0; steps++ {
		angle = math.WrapAngleSub(angle, sens)
	}
	return angle
}

// Move translates the camera by a local direction scaled by Speed,
// rotated according to Mode.
func (c *Camera) Move(local mgl32.Vec3) {
	d := c.inverse().Mul4x1(local.Mul(c.Speed).Vec4(0)).Vec3()
	c.Position = c.Position.Add(d)
}

func (c *Camera) inverse() mgl32.Mat4 {
	r := c.Rotation
	if c.Mode == MoveFull {
		return mgl32.HomogRotate3DX(math.TwoPi - r[0]).
			Mul4(mgl32.HomogRotate3DY(math.TwoPi - r[1])).
			Mul4(mgl32.HomogRotate3DZ(math.TwoPi - r[2]))
	}
	return mgl32.HomogRotate3DY(math.TwoPi - r[1])
}

// ViewMatrix returns Rx * Ry * Rz * T(-position).
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	r := c.Rotation
	p := c.Position
	return mgl32.HomogRotate3DX(r[0]).
		Mul4(mgl32.HomogRotate3DY(r[1])).
		Mul4(mgl32.HomogRotate3DZ(r[2])).
		Mul4(mgl32.Translate3D(-p[0], -p[1], -p[2]))
}

// Projection maps view space to screen pixels.
type Projection struct {
	Width, Height int
	FovY          float32 // Radians
	Near, Far     float32
}

// DefaultProjection is a 640x480 screen with a 90 degree vertical FOV.
func DefaultProjection() Projection {
	return Projection{Width: 640, Height: 480, FovY: gomath.Pi / 2, Near: 1, Far: 100}
}

// Matrix returns Viewport * Perspective. After the perspective divide x
// and y are pixels with the origin at the top-left, y growing down, and z
// is NDC depth in [-1, 1].
func (p Projection) Matrix() mgl32.Mat4 {
	hw := float32(p.Width) / 2
	hh := float32(p.Height) / 2
	viewport := mgl32.Translate3D(hw, hh, 0).Mul4(mgl32.Scale3D(hw, hh, 1))
	return viewport.Mul4(mgl32.Perspective(p.FovY, hw/hh, p.Near, p.Far))
}
