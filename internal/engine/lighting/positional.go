package lighting

import "github.com/go-gl/mathgl/mgl32"

// Positional is an ambient + single positional light with gray output and
// no attenuation.
//
// It is evaluated against the transformed vertex and the static normal,
// with Position given in that same transformed space. Input moves
// Position at runtime.
type Positional struct {
	Ambient  float32
	Position mgl32.Vec3
}

// Inputs implements Model.
func (p *Positional) Inputs() Inputs {
	return Inputs{TransformedPosition: true, TransformedNormal: false}
}

// Shade implements Model. Channels truncate rather than round.
func (p *Positional) Shade(position, normal mgl32.Vec3) uint32 {
	level := p.Level(position, normal)
	return Opaque | 0x010101*uint32(level*255)
}

// Level returns the shading level in [ambient, 1].
// A vertex sitting on the light counts as fully lit.
func (p *Positional) Level(position, normal mgl32.Vec3) float32 {
	dir, _, ok := towards(p.Position, position)
	if !ok {
		return 1
	}
	return flatLevel(p.Ambient, dir.Dot(normal))
}
