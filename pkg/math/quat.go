// Package math provides the rotation and interpolation helpers shared by
// the demos. Vector and matrix primitives come from mgl32; this package
// only adds what mgl32 does differently from the demos.
package math

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SlerpEpsilon is the distance from cos(theta) = 1 below which Slerp
// falls back to linear interpolation. sin(theta) becomes too small to
// divide by reliably well before this point in float32.
const SlerpEpsilon float32 = 1.0 / 32

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis must be normalized, angle is in radians. The axis is not checked:
// a non-unit axis yields a non-unit quaternion and a skewed matrix.
func QuatFromAxisAngle(axis mgl32.Vec3, angle float32) Quat {
	halfAngle := 0.5 * angle
	s := float32(math.Sin(float64(halfAngle)))
	return Quat{
		X: axis[0] * s,
		Y: axis[1] * s,
		Z: axis[2] * s,
		W: float32(math.Cos(float64(halfAngle))),
	}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Neg returns -q, which encodes the same rotation as q.
func (q Quat) Neg() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Len returns the quaternion's magnitude.
func (q Quat) Len() float32 {
	return float32(math.Sqrt(float64(q.Dot(q))))
}

// ApproxEqual reports whether each component of q is within eps of other.
func (q Quat) ApproxEqual(other Quat, eps float32) bool {
	return near(q.X, other.X, eps) &&
		near(q.Y, other.Y, eps) &&
		near(q.Z, other.Z, eps) &&
		near(q.W, other.W, eps)
}

// SameRotation reports whether q and other describe the same rotation,
// accounting for the q / -q double cover.
func (q Quat) SameRotation(other Quat, eps float32) bool {
	return q.ApproxEqual(other, eps) || q.ApproxEqual(other.Neg(), eps)
}

// Slerp performs spherical linear interpolation from q to other.
// See Slerp.
func (q Quat) Slerp(other Quat, t float32) Quat {
	return Slerp(q, other, t)
}

// Slerp performs spherical linear interpolation between a and b.
// t should be in range [0, 1].
//
// b is negated when dot(a, b) < 0 so the shorter arc is taken. Close to
// coincidence (1-cos(theta) <= SlerpEpsilon) the weights degrade to plain
// 1-t and t. The result is not renormalized and is only approximately unit
// length near that boundary.
func Slerp(a, b Quat, t float32) Quat {
	cos := a.Dot(b)
	if cos < 0 {
		b = b.Neg()
		cos = -cos
	}

	var scale0, scale1 float32
	if 1-cos > SlerpEpsilon {
		theta := math.Acos(float64(cos))
		sin := math.Sin(theta)
		scale0 = float32(math.Sin(float64(1-t)*theta) / sin)
		scale1 = float32(math.Sin(float64(t)*theta) / sin)
	} else {
		scale0 = 1 - t
		scale1 = t
	}

	return Quat{
		X: a.X*scale0 + b.X*scale1,
		Y: a.Y*scale0 + b.Y*scale1,
		Z: a.Z*scale0 + b.Z*scale1,
		W: a.W*scale0 + b.W*scale1,
	}
}

// ToMat4 converts the quaternion to a 4x4 rotation matrix in mgl32's
// column-major layout, so m.Mul4x1(v) rotates v. The quaternion is used
// as is; a unit quaternion gives an orthonormal matrix.
func (q Quat) ToMat4() mgl32.Mat4 {
	x2 := q.X + q.X
	y2 := q.Y + q.Y
	z2 := q.Z + q.Z

	xx, xy, xz := q.X*x2, q.X*y2, q.X*z2
	yy, yz, zz := q.Y*y2, q.Y*z2, q.Z*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	return mgl32.Mat4{
		1 - (yy + zz), xy + wz, xz - wy, 0,
		xy - wz, 1 - (xx + zz), yz + wx, 0,
		xz + wy, yz - wx, 1 - (xx + yy), 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies two quaternions (combines rotations).
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}
