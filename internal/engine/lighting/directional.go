package lighting

import "github.com/go-gl/mathgl/mgl32"

// Directional is a single ambient + directional light with gray output.
//
// Direction points towards the light and is defined in view space, so the
// normal must be rotated with the model. Direction is expected to be unit
// length; it is not renormalized here.
type Directional struct {
	Ambient   float32
	Direction mgl32.Vec3
}

// NewDirectional creates a directional light, normalizing dir once.
func NewDirectional(ambient float32, dir mgl32.Vec3) *Directional {
	return &Directional{Ambient: ambient, Direction: dir.Normalize()}
}

// Inputs implements Model.
func (d *Directional) Inputs() Inputs {
	return Inputs{TransformedPosition: true, TransformedNormal: true}
}

// Shade implements Model. The position is unused.
func (d *Directional) Shade(_, normal mgl32.Vec3) uint32 {
	return Gray(d.Level(normal))
}

// Level returns the shading level in [ambient, 1] for a normal.
func (d *Directional) Level(normal mgl32.Vec3) float32 {
	return flatLevel(d.Ambient, d.Direction.Dot(normal))
}
