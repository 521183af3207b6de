// Package scene holds the per-demo state driven by the frame loop: the
// camera, the light, the optional orientation controller and the mesh.
package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/vertexshade/internal/engine/camera"
	"github.com/Faultbox/vertexshade/internal/engine/input"
	"github.com/Faultbox/vertexshade/internal/engine/lighting"
	"github.com/Faultbox/vertexshade/internal/engine/orient"
	"github.com/Faultbox/vertexshade/pkg/mesh"
)

// Demo names a scene preset.
type Demo string

// Available demos.
const (
	DemoRotation    Demo = "rotation"
	DemoPointLights Demo = "pointlights"
	DemoPositional  Demo = "positional"
)

// Demos lists every preset in a stable order.
var Demos = []Demo{DemoRotation, DemoPointLights, DemoPositional}

// ErrUnknownDemo is returned for a demo name that has no preset.
var ErrUnknownDemo = errors.New("unknown demo")

// ParseDemo validates a demo name.
func ParseDemo(name string) (Demo, error) {
	for _, d := range Demos {
		if string(d) == name {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDemo, name)
}

// State is everything a frame needs besides the scratch buffers.
type State struct {
	Kind       Demo
	Mesh       *mesh.Mesh
	Camera     *camera.Camera
	Projection camera.Projection
	Light      lighting.Model

	// Orient rotates the model. Nil for a static model.
	Orient *orient.Controller

	// LightStep is how far one frame of input moves a movable light.
	LightStep float32

	prev input.Buttons
	// Timed switches orientation progress to elapsed time.
	timed bool
}

// Update applies one input snapshot and advances the orientation.
// When present is false the input is ignored and the previous buttons are
// kept, but the orientation still advances.
func (s *State) Update(b input.Buttons, present bool, dt float32) {
	if present {
		switch s.Kind {
		case DemoPositional:
			s.positionalInput(b)
		default:
			s.cameraInput(b)
		}
		s.prev = b
	}

	if s.Orient != nil {
		if s.timed {
			s.Orient.AdvanceBy(dt)
		} else {
			s.Orient.Advance()
		}
	}
}

// Previous returns the button state remembered for edge detection.
func (s *State) Previous() input.Buttons {
	return s.prev
}

// cameraInput handles the rotation and point light demos.
func (s *State) cameraInput(b input.Buttons) {
	if s.Orient != nil && input.Edge(s.prev, b).Has(input.Start) {
		s.Orient.Trigger()
	}

	s.turn(b)

	var dir mgl32.Vec3
	if b.Has(input.A) {
		dir[2]--
	}
	if b.Has(input.B) {
		dir[2]++
	}
	if b.Has(input.X) {
		dir[1]--
	}
	if b.Has(input.Y) {
		dir[1]++
	}
	if dir != (mgl32.Vec3{}) {
		s.Camera.Move(dir)
	}
}

// positionalInput handles the positional light demo. X and Y move the
// light along x. START moves it along z, reversed while B is held, and
// suppresses camera input for the frame.
func (s *State) positionalInput(b input.Buttons) {
	p, ok := s.Light.(*lighting.Positional)
	if !ok {
		return
	}

	if b.Has(input.X) {
		p.Position[0] += s.LightStep
	}
	if b.Has(input.Y) {
		p.Position[0] -= s.LightStep
	}
	if b.Has(input.Start) {
		if b.Has(input.B) {
			p.Position[2] -= s.LightStep
		} else {
			p.Position[2] += s.LightStep
		}
		return
	}

	s.turn(b)

	if b.Has(input.A) || b.Has(input.B) {
		dir := mgl32.Vec3{0, 0, 1}
		if b.Has(input.A) {
			dir[2] = -1
		}
		s.Camera.Move(dir)
	}
}

func (s *State) turn(b input.Buttons) {
	if b.Has(input.Up) {
		s.Camera.Pitch(-1)
	}
	if b.Has(input.Down) {
		s.Camera.Pitch(1)
	}
	if b.Has(input.Right) {
		s.Camera.Yaw(-1)
	}
	if b.Has(input.Left) {
		s.Camera.Yaw(1)
	}
}

// Model returns the model rotation, identity when static.
func (s *State) Model() mgl32.Mat4 {
	if s.Orient == nil {
		return mgl32.Ident4()
	}
	return s.Orient.Matrix()
}

// RotatesModel reports whether normals need the model rotation.
func (s *State) RotatesModel() bool {
	return s.Orient != nil
}

// MVP returns Projection * View * Model.
func (s *State) MVP() mgl32.Mat4 {
	return s.Projection.Matrix().Mul4(s.Camera.ViewMatrix()).Mul4(s.Model())
}
