package math

import "math"

// TwoPi is a full turn in radians.
const TwoPi = float32(2 * math.Pi)

// WrapAngleAdd adds amt to angle and wraps the result into [0, 2π).
// amt is expected to be non-negative.
func WrapAngleAdd(angle, amt float32) float32 {
	angle += amt
	for angle >= TwoPi {
		angle -= TwoPi
	}
	return angle
}

// WrapAngleSub subtracts amt from angle and wraps the result into [0, 2π).
// amt is expected to be non-negative.
func WrapAngleSub(angle, amt float32) float32 {
	angle -= amt
	for angle < 0 {
		angle += TwoPi
	}
	// -tiny + 2π rounds to 2π in float32
	if angle >= TwoPi {
		angle = 0
	}
	return angle
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// near compares by absolute difference.
func near(a, b, eps float32) bool {
	d := a - b
	return d <= eps && d >= -eps
}
