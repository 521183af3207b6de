package scene

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/vertexshade/internal/engine/camera"
	"github.com/Faultbox/vertexshade/internal/engine/lighting"
	"github.com/Faultbox/vertexshade/internal/engine/orient"
	"github.com/Faultbox/vertexshade/pkg/math"
	"github.com/Faultbox/vertexshade/pkg/mesh"
)

// Params tunes a preset. Zero values keep the preset defaults.
type Params struct {
	Projection camera.Projection

	// Ambient overrides the preset ambient level when set.
	Ambient *float32

	// NormalizeLight normalizes the directional light before use.
	NormalizeLight bool

	// TransitionSeconds switches orientation progress to elapsed time.
	TransitionSeconds float32
}

// RotationKeyframes are the orientations the rotation demo cycles through.
func RotationKeyframes() []math.Quat {
	return []math.Quat{
		math.QuatFromAxisAngle(mgl32.Vec3{0, 1, 0}, 0),
		math.QuatFromAxisAngle(mgl32.Vec3{1, 0, 0}, gomath.Pi/4),
		math.QuatFromAxisAngle(mgl32.Vec3{-1, 1, -1}.Normalize(), gomath.Pi),
	}
}

// PointLightPreset is the light list of the point light demo.
func PointLightPreset() []lighting.PointLight {
	return []lighting.PointLight{
		{Position: mgl32.Vec3{-3, -3, -3}, Intensity: 1, Radius: 10, RGB: 0xFF2030},
		{Position: mgl32.Vec3{.5, -.8, 1}, Intensity: .5, Radius: 1, RGB: 0xFF9030},
	}
}

// New builds the state for a demo around m.
func New(kind Demo, m *mesh.Mesh, p Params) (*State, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	proj := p.Projection
	if proj.Width == 0 || proj.Height == 0 {
		proj = camera.DefaultProjection()
	}

	s := &State{
		Kind:       kind,
		Mesh:       m,
		Camera:     camera.Default(),
		Projection: proj,
	}

	ambient := func(def float32) float32 {
		if p.Ambient != nil {
			return *p.Ambient
		}
		return def
	}

	switch kind {
	case DemoRotation:
		dir := mgl32.Vec3{.5, 1, 0}
		if p.NormalizeLight {
			dir = dir.Normalize()
		}
		s.Light = &lighting.Directional{Ambient: ambient(.01), Direction: dir}

		var opts []orient.Option
		if p.TransitionSeconds > 0 {
			opts = append(opts, orient.WithDuration(p.TransitionSeconds))
			s.timed = true
		}
		c, err := orient.New(RotationKeyframes(), opts...)
		if err != nil {
			return nil, err
		}
		s.Orient = c

	case DemoPointLights:
		l, err := lighting.NewPointLights(ambient(.01), PointLightPreset()...)
		if err != nil {
			return nil, err
		}
		s.Light = l

	case DemoPositional:
		s.Light = &lighting.Positional{Ambient: ambient(.1), Position: mgl32.Vec3{200, -600, -200}}
		s.Camera.Position = mgl32.Vec3{1.5, -2, 2.5}
		s.Camera.Mode = camera.MoveFull
		s.LightStep = camera.DefaultSpeed * 100

	default:
		return nil, ErrUnknownDemo
	}

	return s, nil
}
