package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/vertexshade/internal/config"
	"github.com/Faultbox/vertexshade/internal/engine/debug"
	"github.com/Faultbox/vertexshade/internal/engine/frame"
	"github.com/Faultbox/vertexshade/internal/engine/input/sdlinput"
	"github.com/Faultbox/vertexshade/internal/engine/renderer"
	"github.com/Faultbox/vertexshade/internal/engine/window"
	"github.com/Faultbox/vertexshade/internal/logger"
	"github.com/Faultbox/vertexshade/internal/scene"
)

// runSDL drives the demo in an SDL window with the OpenGL renderer.
func runSDL(cfg *config.Config, s *scene.State) error {
	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Close()

	vw, vh := win.DrawableSize()
	r, err := renderer.New(renderer.Config{
		ScreenWidth:    cfg.Screen.Width,
		ScreenHeight:   cfg.Screen.Height,
		ViewportWidth:  vw,
		ViewportHeight: vh,
	})
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer r.Close()

	in := sdlinput.New(true)
	defer in.Close()

	shots := debug.NewScreenshotCapture(cfg.Output.ScreenshotDir, "vertexshade")
	loop := frame.NewLoop(s, in, r)

	step := time.Second / time.Duration(cfg.Timing.TPS)
	dt := float32(step.Seconds())
	next := time.Now()

	logger.Info("starting frame loop", zap.Int("tps", cfg.Timing.TPS))

	for !in.Update() {
		if err := loop.Step(dt); err != nil {
			return fmt.Errorf("frame %d: %w", loop.Frame, err)
		}

		if in.Screenshot {
			if path, err := r.Screenshot(shots); err != nil {
				logger.Warn("screenshot failed", zap.Error(err))
			} else {
				logger.Info("screenshot saved", zap.String("path", path))
			}
		}

		win.SwapBuffers()

		if cfg.Output.Frames > 0 && loop.Frame >= uint64(cfg.Output.Frames) {
			break
		}

		// Swap blocks with vsync; otherwise pace to the tick rate.
		if !cfg.Window.VSync {
			next = next.Add(step)
			if d := time.Until(next); d > 0 {
				time.Sleep(d)
			} else {
				next = time.Now()
			}
		}
	}

	logger.Info("frame loop stopped", zap.Uint64("frames", loop.Frame))
	return nil
}
