package scene

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/vertexshade/internal/engine/input"
	"github.com/Faultbox/vertexshade/internal/engine/lighting"
	"github.com/Faultbox/vertexshade/pkg/math"
	"github.com/Faultbox/vertexshade/pkg/mesh"
)

func newDemo(t *testing.T, kind Demo) *State {
	t.Helper()
	s, err := New(kind, mesh.Cube(1), Params{})
	if err != nil {
		t.Fatalf("New(%s): %v", kind, err)
	}
	return s
}

func TestParseDemo(t *testing.T) {
	for _, d := range Demos {
		got, err := ParseDemo(string(d))
		if err != nil || got != d {
			t.Errorf("ParseDemo(%q) = %q, %v", d, got, err)
		}
	}
	if _, err := ParseDemo("teapot"); !errors.Is(err, ErrUnknownDemo) {
		t.Errorf("ParseDemo(teapot) err = %v, want ErrUnknownDemo", err)
	}
	if _, err := New("teapot", mesh.Triangle(), Params{}); !errors.Is(err, ErrUnknownDemo) {
		t.Errorf("New(teapot) err = %v, want ErrUnknownDemo", err)
	}
}

func TestNewRejectsBadMesh(t *testing.T) {
	m := mesh.Triangle()
	m.Faces[0].Vertex[0] = 7
	if _, err := New(DemoRotation, m, Params{}); !errors.Is(err, mesh.ErrIndexOutOfRange) {
		t.Errorf("err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestPresets(t *testing.T) {
	rot := newDemo(t, DemoRotation)
	if rot.Orient == nil || !rot.RotatesModel() {
		t.Error("rotation demo has no orientation controller")
	}
	if _, ok := rot.Light.(*lighting.Directional); !ok {
		t.Errorf("rotation light = %T", rot.Light)
	}

	pl := newDemo(t, DemoPointLights)
	lights, ok := pl.Light.(*lighting.PointLights)
	if !ok || lights.Len() != 2 {
		t.Errorf("point light demo light = %T", pl.Light)
	}
	if pl.Model() != mgl32.Ident4() {
		t.Error("point light model is not identity")
	}

	pos := newDemo(t, DemoPositional)
	if pos.Camera.Position != (mgl32.Vec3{1.5, -2, 2.5}) {
		t.Errorf("positional camera = %v", pos.Camera.Position)
	}
}

func TestAmbientOverride(t *testing.T) {
	a := float32(0.5)
	s, err := New(DemoRotation, mesh.Triangle(), Params{Ambient: &a, NormalizeLight: true})
	if err != nil {
		t.Fatal(err)
	}
	d := s.Light.(*lighting.Directional)
	if d.Ambient != 0.5 {
		t.Errorf("ambient = %v, want 0.5", d.Ambient)
	}
	if l := d.Direction.Len(); l < 0.9999 || l > 1.0001 {
		t.Errorf("direction length = %v, want 1", l)
	}
}

func TestStartIsEdgeTriggered(t *testing.T) {
	s := newDemo(t, DemoRotation)

	s.Update(input.Start, true, 0)
	if s.Orient.Index() != 0 {
		t.Fatalf("index after press = %d, want 0", s.Orient.Index())
	}
	// Holding does not retrigger.
	for i := 0; i < 10; i++ {
		s.Update(input.Start, true, 0)
	}
	if s.Orient.Index() != 0 {
		t.Errorf("index while held = %d, want 0", s.Orient.Index())
	}

	s.Update(0, true, 0)
	s.Update(input.Start, true, 0)
	if s.Orient.Index() != 1 {
		t.Errorf("index after second press = %d, want 1", s.Orient.Index())
	}
}

func TestAbsentInput(t *testing.T) {
	s := newDemo(t, DemoRotation)
	s.Update(input.Start, true, 0)
	before := *s.Camera
	progress := s.Orient.Progress()

	s.Update(input.Up|input.A, false, 0)

	if *s.Camera != before {
		t.Error("camera changed without a device")
	}
	if s.Previous() != input.Start {
		t.Errorf("previous = %v, want start", s.Previous())
	}
	if s.Orient.Progress() <= progress {
		t.Error("orientation did not advance without a device")
	}

	// Releasing and pressing after absence still triggers once.
	s.Update(0, true, 0)
	s.Update(input.Start, true, 0)
	if s.Orient.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Orient.Index())
	}
}

func TestCameraRotationWraps(t *testing.T) {
	s := newDemo(t, DemoPointLights)
	for i := 0; i < 500; i++ {
		s.Update(input.Up|input.Left, true, 0)
		r := s.Camera.Rotation
		if r[0] < 0 || r[0] >= math.TwoPi || r[1] < 0 || r[1] >= math.TwoPi {
			t.Fatalf("frame %d: rotation %v left [0, 2π)", i, r)
		}
	}
}

func TestMovementFollowsYaw(t *testing.T) {
	s := newDemo(t, DemoPointLights)
	s.Camera.Rotation = mgl32.Vec3{0.5, 0, 0}
	start := s.Camera.Position

	s.Update(input.A, true, 0)
	d := s.Camera.Position.Sub(start)
	if d[1] != 0 || d[0] > 1e-6 || d[0] < -1e-6 {
		t.Errorf("forward with zero yaw moved %v, want only z", d)
	}
	if d[2] >= 0 {
		t.Errorf("A moved z by %v, want negative", d[2])
	}

	start = s.Camera.Position
	s.Update(input.Y, true, 0)
	if got := s.Camera.Position[1] - start[1]; got <= 0 {
		t.Errorf("Y moved y by %v, want positive", got)
	}
}

func TestPositionalLightMoves(t *testing.T) {
	s := newDemo(t, DemoPositional)
	light := s.Light.(*lighting.Positional)
	x0, z0 := light.Position[0], light.Position[2]
	rot := s.Camera.Rotation

	s.Update(input.X, true, 0)
	if light.Position[0] != x0+s.LightStep {
		t.Errorf("X: light x = %v, want %v", light.Position[0], x0+s.LightStep)
	}

	s.Update(input.Start|input.Up, true, 0)
	if light.Position[2] != z0+s.LightStep {
		t.Errorf("START: light z = %v, want %v", light.Position[2], z0+s.LightStep)
	}
	if s.Camera.Rotation != rot {
		t.Error("camera turned while START was held")
	}

	s.Update(input.Start|input.B, true, 0)
	if d := light.Position[2] - z0; d > 1e-3 || d < -1e-3 {
		t.Errorf("START+B: light z = %v, want %v", light.Position[2], z0)
	}

	s.Update(input.Up, true, 0)
	if s.Camera.Rotation == rot {
		t.Error("camera did not turn without START")
	}
}

func TestTimedTransition(t *testing.T) {
	s, err := New(DemoRotation, mesh.Triangle(), Params{TransitionSeconds: 1})
	if err != nil {
		t.Fatal(err)
	}
	s.Update(input.Start, true, 0.5)
	if p := s.Orient.Progress(); p < 0.49 || p > 0.51 {
		t.Errorf("progress = %v, want 0.5", p)
	}
}
