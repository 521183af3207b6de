// Package orient cycles a model through a fixed list of keyframe
// orientations, slerping from the previous keyframe to the current one.
package orient

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/vertexshade/pkg/math"
)

// FixedStep is the progress added by one Advance call.
const FixedStep float32 = 1.0 / 60

// ErrNoKeyframes is returned when a controller is built without keyframes.
var ErrNoKeyframes = errors.New("orientation needs at least one keyframe")

// Controller holds the keyframes, the index of the keyframe being moved
// towards and the progress towards it in [0, 1].
type Controller struct {
	keys  []math.Quat
	index int
	t     float32

	duration float32
	easing   ease.TweenFunc
	tween    *gween.Tween
}

// Option configures a Controller.
type Option func(*Controller)

// WithDuration makes AdvanceBy complete a transition over seconds of
// elapsed time. Without it AdvanceBy behaves like Advance.
func WithDuration(seconds float32) Option {
	return func(c *Controller) {
		if seconds > 0 {
			c.duration = seconds
		}
	}
}

// WithEasing sets the easing curve for timed transitions.
func WithEasing(fn ease.TweenFunc) Option {
	return func(c *Controller) {
		if fn != nil {
			c.easing = fn
		}
	}
}

// New creates a controller resting on the last keyframe.
// The keyframes are copied.
func New(keys []math.Quat, opts ...Option) (*Controller, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeyframes
	}

	c := &Controller{
		keys:   append([]math.Quat(nil), keys...),
		index:  len(keys) - 1,
		t:      1,
		easing: ease.Linear,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Len returns the number of keyframes.
func (c *Controller) Len() int { return len(c.keys) }

// Index returns the keyframe currently being approached.
func (c *Controller) Index() int { return c.index }

// Progress returns the interpolation parameter towards Index.
func (c *Controller) Progress() float32 { return c.t }

// Timed reports whether AdvanceBy runs on elapsed time.
func (c *Controller) Timed() bool { return c.duration > 0 }

// Trigger starts a transition to the next keyframe, wrapping around.
func (c *Controller) Trigger() {
	c.index = (c.index + 1) % len(c.keys)
	c.t = 0
	if c.duration > 0 {
		c.tween = gween.New(0, 1, c.duration, c.easing)
	}
}

// Advance moves progress by one fixed step.
func (c *Controller) Advance() {
	c.t = min(1, c.t+FixedStep)
}

// AdvanceBy moves progress by dt seconds of elapsed time.
func (c *Controller) AdvanceBy(dt float32) {
	if c.duration <= 0 {
		c.Advance()
		return
	}
	if c.tween == nil {
		c.t = 1
		return
	}
	cur, done := c.tween.Update(dt)
	c.t = math.Clamp(cur, 0, 1)
	if done {
		c.t = 1
		c.tween = nil
	}
}

// Orientation returns the current interpolated orientation.
func (c *Controller) Orientation() math.Quat {
	n := len(c.keys)
	prev := c.keys[(c.index-1+n)%n]
	return math.Slerp(prev, c.keys[c.index], c.t)
}

// Matrix returns Orientation as a rotation matrix.
func (c *Controller) Matrix() mgl32.Mat4 {
	return c.Orientation().ToMat4()
}
