package lighting

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/vertexshade/pkg/math"
)

// MaxPointLights is the capacity of a PointLights set.
const MaxPointLights = 16

// Point light errors.
var (
	ErrTooManyLights     = errors.New("too many point lights")
	ErrNegativeIntensity = errors.New("point light intensity must not be negative")
	ErrLightIndex        = errors.New("point light index out of range")
)

// Attenuation coefficients: 1 / (1 + linear*d + quadratic*d*d).
const (
	AttenuationLinear    = 0.1
	AttenuationQuadratic = 0.01
)

// PointLight is a colored light with a hard cutoff radius.
type PointLight struct {
	Position  mgl32.Vec3 // World position
	Intensity float32    // Multiplier on the diffuse term
	Radius    float32    // Beyond this distance the light contributes nothing
	RGB       uint32     // Packed 0xRRGGBB color
}

// PointLights is a fixed-capacity set of point lights with a known count,
// lit in world space against the static mesh.
type PointLights struct {
	Ambient float32

	lights [MaxPointLights]PointLight
	count  int
}

// NewPointLights creates a light set from the given lights.
func NewPointLights(ambient float32, lights ...PointLight) (*PointLights, error) {
	p := &PointLights{Ambient: ambient}
	for i, l := range lights {
		if err := p.Add(l); err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
	}
	return p, nil
}

// FromSentinel builds a light set from a list that may be terminated by
// a light with negative intensity. Scanning stops at the sentinel or at
// the end of the slice, whichever comes first.
func FromSentinel(ambient float32, lights []PointLight) (*PointLights, error) {
	n := len(lights)
	for i, l := range lights {
		if l.Intensity < 0 {
			n = i
			break
		}
	}
	return NewPointLights(ambient, lights[:n]...)
}

// Add appends a light. It fails when the set is full or the light has a
// negative intensity.
func (p *PointLights) Add(l PointLight) error {
	if l.Intensity < 0 {
		return ErrNegativeIntensity
	}
	if p.count >= MaxPointLights {
		return ErrTooManyLights
	}
	p.lights[p.count] = l
	p.count++
	return nil
}

// Len returns the number of lights in the set.
func (p *PointLights) Len() int {
	return p.count
}

// Light returns the i-th light.
func (p *PointLights) Light(i int) (PointLight, error) {
	if i < 0 || i >= p.count {
		return PointLight{}, ErrLightIndex
	}
	return p.lights[i], nil
}

// SetPosition moves the i-th light.
func (p *PointLights) SetPosition(i int, pos mgl32.Vec3) error {
	if i < 0 || i >= p.count {
		return ErrLightIndex
	}
	p.lights[i].Position = pos
	return nil
}

// Inputs implements Model.
func (p *PointLights) Inputs() Inputs {
	return Inputs{TransformedPosition: false, TransformedNormal: false}
}

// Shade implements Model.
//
// Channel totals start at the ambient level and each light in range adds
// its color scaled by clamp(dot(dir, n) * intensity * attenuation, 0, 1).
// Totals saturate at 255.
func (p *PointLights) Shade(position, normal mgl32.Vec3) uint32 {
	base := int(uint8(math.Clamp(p.Ambient, 0, 1) * 255))
	tr, tg, tb := base, base, base

	for i := 0; i < p.count; i++ {
		amt, ok := p.lights[i].contribution(position, normal)
		if !ok {
			continue
		}
		r, g, b := UnpackRGB(p.lights[i].RGB)
		tr += int(float32(r) * amt)
		tg += int(float32(g) * amt)
		tb += int(float32(b) * amt)
	}

	return PackRGB(saturate(tr), saturate(tg), saturate(tb))
}

// contribution returns the clamped scale for this light at a vertex, and
// false when the vertex is outside the radius.
func (l *PointLight) contribution(position, normal mgl32.Vec3) (float32, bool) {
	dir, d, ok := towards(l.Position, position)
	if d > l.Radius {
		return 0, false
	}

	diffuse := float32(1)
	if ok {
		diffuse = dir.Dot(normal)
	}

	amt := diffuse * l.Intensity
	amt *= 1 / (1 + AttenuationLinear*d + AttenuationQuadratic*d*d)
	return math.Clamp(amt, 0, 1), true
}

func saturate(c int) uint8 {
	if c > 255 {
		return 255
	}
	return uint8(c)
}
