package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/vertexshade/internal/config"
	"github.com/Faultbox/vertexshade/internal/engine/debug"
	"github.com/Faultbox/vertexshade/internal/engine/frame"
	"github.com/Faultbox/vertexshade/internal/engine/input"
	"github.com/Faultbox/vertexshade/internal/engine/raster"
	"github.com/Faultbox/vertexshade/internal/logger"
	"github.com/Faultbox/vertexshade/internal/scene"
)

// runRaster renders headless frames with the software rasterizer and
// writes the last one to cfg.Output.Path.
func runRaster(cfg *config.Config, s *scene.State) (*frame.Loop, error) {
	src, err := input.ParseScript(cfg.Output.Script)
	if err != nil {
		return nil, err
	}

	r := raster.New(cfg.Screen.Width, cfg.Screen.Height)
	if cfg.Screen.CullCCW {
		r.Cull = raster.CullCounterClockwise
	}

	frames := cfg.Output.Frames
	if frames == 0 {
		frames = 1
	}

	loop := frame.NewLoop(s, src, r)
	if err := loop.Run(frames, 1/float32(cfg.Timing.TPS)); err != nil {
		return nil, fmt.Errorf("frame %d: %w", loop.Frame, err)
	}

	if cfg.Output.Path != "" {
		if err := debug.SaveImage(cfg.Output.Path, r.Image); err != nil {
			return nil, fmt.Errorf("save frame: %w", err)
		}
		logger.Info("frame written",
			zap.String("path", cfg.Output.Path),
			zap.Uint64("frames", loop.Frame),
			zap.Int("triangles", r.Drawn))
	}
	return loop, nil
}
