// Package lighting computes per-vertex colors on the CPU.
//
// Each Model turns a position and a normal into a packed 0xAARRGGBB color.
// Models differ in which space they expect those inputs in, which Inputs
// reports to the caller.
package lighting

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/vertexshade/pkg/math"
)

// Inputs tells the frame loop which version of a vertex a Model shades.
// A false field means the static, untransformed mesh value.
type Inputs struct {
	TransformedPosition bool
	TransformedNormal   bool
}

// Model evaluates a lighting equation for one vertex.
type Model interface {
	Shade(position, normal mgl32.Vec3) uint32
	Inputs() Inputs
}

// flatLevel applies the ambient floor to a diffuse term so nothing is
// fully black.
func flatLevel(ambient, diffuse float32) float32 {
	diffuse = math.Clamp(diffuse, 0, 1)
	return ambient + diffuse*(1-ambient)
}

// towards returns the unit vector from v to target and the distance
// between them. ok is false when the two points coincide.
func towards(target, v mgl32.Vec3) (dir mgl32.Vec3, dist float32, ok bool) {
	delta := target.Sub(v)
	dist = delta.Len()
	if dist == 0 {
		return mgl32.Vec3{}, 0, false
	}
	return delta.Mul(1 / dist), dist, true
}
