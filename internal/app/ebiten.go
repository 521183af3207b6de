package app

import (
	"github.com/Faultbox/vertexshade/internal/config"
	"github.com/Faultbox/vertexshade/internal/engine/debug"
	"github.com/Faultbox/vertexshade/internal/engine/ebitensink"
	"github.com/Faultbox/vertexshade/internal/scene"
)

func runEbiten(cfg *config.Config, s *scene.State) error {
	g := ebitensink.New(ebitensink.Config{
		Title:        cfg.Window.Title,
		WindowWidth:  cfg.Window.Width,
		WindowHeight: cfg.Window.Height,
		Fullscreen:   cfg.Window.Fullscreen,
		VSync:        cfg.Window.VSync,
		TPS:          cfg.Timing.TPS,
		MaxFrames:    cfg.Output.Frames,
	}, s, nil, debug.NewScreenshotCapture(cfg.Output.ScreenshotDir, "vertexshade"))
	return g.Run()
}
