package ebitensink

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/Faultbox/vertexshade/internal/engine/debug"
	"github.com/Faultbox/vertexshade/internal/engine/frame"
	"github.com/Faultbox/vertexshade/internal/engine/input"
	"github.com/Faultbox/vertexshade/internal/logger"
	"github.com/Faultbox/vertexshade/internal/scene"
)

// Config holds window and pacing settings.
type Config struct {
	Title                     string
	WindowWidth, WindowHeight int
	Fullscreen                bool
	VSync                     bool
	TPS                       int
	// MaxFrames stops the game after that many updates when positive.
	MaxFrames int
}

// Game implements ebiten.Game around a frame loop.
type Game struct {
	cfg    Config
	loop   *frame.Loop
	sink   *Sink
	shots  *debug.ScreenshotCapture
	shoot  bool
	width  int
	height int
}

// New creates a game drawing s. A nil src reads Ebitengine's keyboard and
// gamepads.
func New(cfg Config, s *scene.State, src input.Source, shots *debug.ScreenshotCapture) *Game {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if src == nil {
		src = &Source{Keyboard: true}
	}
	sink := &Sink{}
	return &Game{
		cfg:    cfg,
		loop:   frame.NewLoop(s, src, sink),
		sink:   sink,
		shots:  shots,
		width:  s.Projection.Width,
		height: s.Projection.Height,
	}
}

// Run opens the window and blocks until it closes.
func (g *Game) Run() error {
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.WindowWidth, g.cfg.WindowHeight)
	ebiten.SetFullscreen(g.cfg.Fullscreen)
	ebiten.SetVsyncEnabled(g.cfg.VSync)
	ebiten.SetTPS(g.cfg.TPS)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.shoot = true
	}

	if err := g.loop.Step(1 / float32(g.cfg.TPS)); err != nil {
		return err
	}
	if g.cfg.MaxFrames > 0 && g.loop.Frame >= uint64(g.cfg.MaxFrames) {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sink.Draw(screen)

	if g.shoot && g.shots != nil {
		g.shoot = false
		b := screen.Bounds()
		img := image.NewRGBA(b)
		screen.ReadPixels(img.Pix)
		if path, err := g.shots.CaptureFromImage(img); err != nil {
			logger.Warn("screenshot failed", zap.Error(err))
		} else {
			logger.Info("screenshot saved", zap.String("path", path))
		}
	}
}

// Layout implements ebiten.Game. The logical screen is the projection
// size regardless of window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
