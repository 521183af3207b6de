package frame

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/vertexshade/internal/engine/input"
	"github.com/Faultbox/vertexshade/internal/logger"
	"github.com/Faultbox/vertexshade/internal/scene"
)

// Loop ties a scene, an input source and a sink together.
type Loop struct {
	Scene   *scene.State
	Source  input.Source
	Sink    Sink
	Buffers *Buffers

	// Frame counts completed Steps.
	Frame uint64
	// Last holds the stats of the most recent frame.
	Last Stats

	log       *zap.Logger
	statsTime float32
	statsN    int
}

// NewLoop creates a loop with buffers sized for the scene mesh. A nil
// source means no device is ever present.
func NewLoop(s *scene.State, src input.Source, sink Sink) *Loop {
	if src == nil {
		src = input.Absent{}
	}
	return &Loop{
		Scene:   s,
		Source:  src,
		Sink:    sink,
		Buffers: NewBuffers(s.Mesh),
		log:     logger.Named("frame"),
	}
}

// Update polls input and advances the scene by dt seconds.
func (l *Loop) Update(dt float32) {
	b, ok := l.Source.Poll()
	l.Scene.Update(b, ok, dt)
}

// Render transforms, lights and emits the current scene.
func (l *Loop) Render() (Stats, error) {
	s := l.Scene
	if err := l.Buffers.Transform(s.Mesh, s.MVP(), s.Model(), s.RotatesModel()); err != nil {
		return Stats{}, err
	}
	return Render(s.Mesh, l.Buffers, s.Light, l.Sink)
}

// Step runs Update then Render for one frame.
func (l *Loop) Step(dt float32) error {
	l.Update(dt)

	st, err := l.Render()
	if err != nil {
		return err
	}
	l.Last = st
	l.Frame++
	l.report(dt)
	return nil
}

// Run steps the loop n times with a fixed dt.
func (l *Loop) Run(n int, dt float32) error {
	for i := 0; i < n; i++ {
		if err := l.Step(dt); err != nil {
			return err
		}
	}
	return nil
}

// report logs frame stats about once per second of scene time.
func (l *Loop) report(dt float32) {
	l.statsTime += dt
	l.statsN++
	if l.statsTime < 1 {
		return
	}
	l.log.Debug("frame stats",
		zap.Uint64("frame", l.Frame),
		zap.Float32("fps", float32(l.statsN)/l.statsTime),
		zap.Int("faces", l.Last.Faces),
		zap.Int("skipped", l.Last.SkippedFaces),
		zap.Duration("window", time.Duration(l.statsTime*float32(time.Second))),
	)
	l.statsTime = 0
	l.statsN = 0
}
