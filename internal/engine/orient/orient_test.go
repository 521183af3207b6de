package orient

import (
	"errors"
	stdmath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/vertexshade/pkg/math"
)

func demoKeys() []math.Quat {
	return []math.Quat{
		math.QuatFromAxisAngle(mgl32.Vec3{0, 1, 0}, 0),
		math.QuatFromAxisAngle(mgl32.Vec3{1, 0, 0}, stdmath.Pi/4),
		math.QuatFromAxisAngle(mgl32.Vec3{-1, 1, -1}.Normalize(), stdmath.Pi),
	}
}

func TestNewEmpty(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoKeyframes) {
		t.Errorf("New(nil) err = %v, want ErrNoKeyframes", err)
	}
}

func TestStartsOnLastKeyframe(t *testing.T) {
	keys := demoKeys()
	c, err := New(keys)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Index() != len(keys)-1 || c.Progress() != 1 {
		t.Errorf("initial state = (%d, %v), want (%d, 1)", c.Index(), c.Progress(), len(keys)-1)
	}
	if got := c.Orientation(); !got.SameRotation(keys[len(keys)-1], 1e-5) {
		t.Errorf("Orientation() = %v, want %v", got, keys[len(keys)-1])
	}
}

func TestTriggerReachesNextKeyframe(t *testing.T) {
	keys := demoKeys()
	c, _ := New(keys)

	c.Trigger()
	if c.Index() != 0 || c.Progress() != 0 {
		t.Fatalf("after Trigger = (%d, %v), want (0, 0)", c.Index(), c.Progress())
	}
	// At t=0 the output is still the previous keyframe.
	if got := c.Orientation(); !got.SameRotation(keys[2], 1e-5) {
		t.Errorf("Orientation() at t=0 = %v, want %v", got, keys[2])
	}

	for i := 0; i < 60; i++ {
		c.Advance()
	}
	if c.Progress() < 1-1e-5 {
		t.Errorf("Progress after 60 steps = %v, want 1", c.Progress())
	}
	if got := c.Orientation(); !got.SameRotation(keys[0], 1e-4) {
		t.Errorf("Orientation() after 60 steps = %v, want %v", got, keys[0])
	}
}

func TestTriggerWraps(t *testing.T) {
	c, _ := New(demoKeys())
	for i := 0; i < 4; i++ {
		c.Trigger()
	}
	if c.Index() != 0 {
		t.Errorf("Index after 4 triggers = %d, want 0", c.Index())
	}
}

func TestAdvanceClamps(t *testing.T) {
	c, _ := New(demoKeys())
	c.Trigger()
	for i := 0; i < 200; i++ {
		c.Advance()
	}
	if c.Progress() != 1 {
		t.Errorf("Progress = %v, want 1", c.Progress())
	}
}

func TestSingleKeyframe(t *testing.T) {
	q := math.QuatFromAxisAngle(mgl32.Vec3{0, 0, 1}, 1)
	c, _ := New([]math.Quat{q})
	c.Trigger()
	c.Advance()
	if got := c.Orientation(); !got.ApproxEqual(q, 1e-5) {
		t.Errorf("Orientation() = %v, want %v", got, q)
	}
}

func TestAdvanceByTimed(t *testing.T) {
	c, _ := New(demoKeys(), WithDuration(0.5), WithEasing(ease.Linear))
	if !c.Timed() {
		t.Fatal("Timed() = false")
	}

	c.AdvanceBy(0.1)
	if c.Progress() != 1 {
		t.Errorf("Progress before any trigger = %v, want 1", c.Progress())
	}

	c.Trigger()
	c.AdvanceBy(0.25)
	if p := c.Progress(); p < 0.49 || p > 0.51 {
		t.Errorf("Progress halfway = %v, want 0.5", p)
	}
	c.AdvanceBy(0.5)
	if c.Progress() != 1 {
		t.Errorf("Progress at end = %v, want 1", c.Progress())
	}
}

func TestAdvanceByFixed(t *testing.T) {
	c, _ := New(demoKeys())
	c.Trigger()
	c.AdvanceBy(10)
	if c.Progress() != FixedStep {
		t.Errorf("Progress = %v, want %v", c.Progress(), FixedStep)
	}
}

func TestMatrixMatchesOrientation(t *testing.T) {
	c, _ := New(demoKeys())
	if c.Matrix() != c.Orientation().ToMat4() {
		t.Error("Matrix() differs from Orientation().ToMat4()")
	}
}
