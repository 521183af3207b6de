// Package inspector is an ImGui front end that shows a demo rendered into
// an offscreen target next to a panel with its live state.
package inspector

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/vertexshade/internal/config"
	"github.com/Faultbox/vertexshade/internal/engine/debug"
	"github.com/Faultbox/vertexshade/internal/engine/frame"
	"github.com/Faultbox/vertexshade/internal/engine/framebuffer"
	"github.com/Faultbox/vertexshade/internal/engine/input"
	"github.com/Faultbox/vertexshade/internal/engine/renderer"
	"github.com/Faultbox/vertexshade/internal/logger"
	"github.com/Faultbox/vertexshade/internal/scene"
	"github.com/Faultbox/vertexshade/pkg/mesh"
)

const panelWidth = 340

// Viewer owns the ImGui window, the GL sink and the running demo.
type Viewer struct {
	cfg     *config.Config
	backend backend.Backend[sdlbackend.SDLWindowFlags]

	rend   *renderer.Renderer
	target *framebuffer.Target
	shots  *debug.ScreenshotCapture

	loop     *frame.Loop
	controls Controls

	paused bool
	speed  float32
	last   time.Time

	meshes  chan string // paths picked in the file dialog
	message string
	log     *zap.Logger
}

// New creates the window and builds the configured demo.
func New(cfg *config.Config) (*Viewer, error) {
	s, err := scene.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		cfg:    cfg,
		shots:  debug.NewScreenshotCapture(cfg.Output.ScreenshotDir, "inspect"),
		speed:  1,
		meshes: make(chan string, 1),
		log:    logger.Named("inspector"),
	}

	v.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}
	v.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	v.backend.CreateWindow(cfg.Window.Title+" inspector", cfg.Window.Width+panelWidth, cfg.Window.Height)

	// The backend made its GL context current; the renderer loads GL itself.
	v.rend, err = renderer.New(renderer.Config{
		ScreenWidth:    cfg.Screen.Width,
		ScreenHeight:   cfg.Screen.Height,
		ViewportWidth:  cfg.Screen.Width,
		ViewportHeight: cfg.Screen.Height,
	})
	if err != nil {
		return nil, err
	}
	v.target, err = framebuffer.New(cfg.Screen.Width, cfg.Screen.Height)
	if err != nil {
		v.rend.Close()
		return nil, err
	}

	v.loop = frame.NewLoop(s, &v.controls, v.rend)
	return v, nil
}

// Run blocks until the window is closed.
func (v *Viewer) Run() {
	v.last = time.Now()
	v.backend.Run(v.render)
}

// Close releases GL resources.
func (v *Viewer) Close() {
	if v.target != nil {
		v.target.Destroy()
	}
	if v.rend != nil {
		v.rend.Close()
	}
}

func (v *Viewer) render() {
	now := time.Now()
	dt := float32(now.Sub(v.last).Seconds())
	v.last = now

	select {
	case path := <-v.meshes:
		if err := v.openMesh(path); err != nil {
			v.message = err.Error()
			v.log.Warn("mesh load failed", zap.String("path", path), zap.Error(err))
		}
	default:
	}

	if imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyF12)) {
		v.screenshot()
	}

	v.controls.Keys = heldKeys()
	if !v.paused {
		v.step(dt * v.speed)
	}

	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X-panelWidth, workSize.Y))
	if imgui.BeginV("View", nil, flags) {
		v.drawView()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+workSize.X-panelWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, workSize.Y))
	if imgui.BeginV("State", nil, flags) {
		v.drawPanel()
	}
	imgui.End()
}

// step renders one frame into the offscreen target.
func (v *Viewer) step(dt float32) {
	restore := v.target.Bind()
	defer restore()
	if err := v.loop.Step(dt); err != nil {
		v.message = err.Error()
		v.paused = true
		v.log.Error("frame failed", zap.Uint64("frame", v.loop.Frame), zap.Error(err))
	}
}

func (v *Viewer) drawView() {
	w, h := v.target.Size()
	avail := imgui.ContentRegionAvail()

	// Fit while keeping the aspect ratio.
	aspect := float32(w) / float32(h)
	displayW, displayH := avail.X, avail.X/aspect
	if displayH > avail.Y {
		displayW, displayH = avail.Y*aspect, avail.Y
	}
	if displayW < avail.X {
		imgui.SetCursorPosX(imgui.CursorPosX() + (avail.X-displayW)/2)
	}

	// GL textures are bottom-up, so flip V.
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(v.target.Texture()))
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(displayW, displayH),
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)
}

func (v *Viewer) drawPanel() {
	for _, line := range Status(v.loop) {
		imgui.TextDisabled(line.Label)
		imgui.SameLine()
		imgui.Text(line.Value)
	}
	if o := v.loop.Scene.Orient; o != nil {
		imgui.ProgressBarV(o.Progress(), imgui.NewVec2(-1, 0), "")
	}

	imgui.Separator()
	imgui.Text("Demo")
	for i, d := range scene.Demos {
		if i > 0 {
			imgui.SameLine()
		}
		if imgui.Button(string(d)) && d != v.loop.Scene.Kind {
			v.rebuild(d, v.loop.Scene.Mesh)
		}
	}

	imgui.Separator()
	imgui.Text("Controls")
	if imgui.ButtonV("START", imgui.NewVec2(-1, 0)) {
		v.controls.Press(input.Start)
	}
	if imgui.Button("X") {
		v.controls.Press(input.X)
	}
	imgui.SameLine()
	if imgui.Button("Y") {
		v.controls.Press(input.Y)
	}
	imgui.SameLine()
	if imgui.Button("START+B") {
		v.controls.Press(input.Start | input.B)
	}
	imgui.Checkbox("Unplug controller", &v.controls.Detached)
	imgui.Checkbox("Pause", &v.paused)
	if v.paused {
		imgui.SameLine()
		if imgui.Button("Step") {
			v.step(1 / float32(v.cfg.Timing.TPS))
		}
	}
	imgui.SliderFloatV("Speed", &v.speed, 0.1, 4, "%.1fx", imgui.SliderFlagsNone)
	if imgui.Button("Reset") {
		v.rebuild(v.loop.Scene.Kind, v.loop.Scene.Mesh)
	}

	imgui.Separator()
	if imgui.ButtonV("Open mesh...", imgui.NewVec2(-1, 0)) {
		v.openMeshDialog()
	}
	if imgui.ButtonV("Screenshot (F12)", imgui.NewVec2(-1, 0)) {
		v.screenshot()
	}
	if v.message != "" {
		imgui.TextWrapped(v.message)
	}

	imgui.Separator()
	imgui.TextDisabled("Arrows turn, Z/X move, A/S light, Enter cycles")
}

// rebuild replaces the running demo, keeping the sink.
func (v *Viewer) rebuild(kind scene.Demo, m *mesh.Mesh) {
	s, err := scene.New(kind, m, scene.ParamsFromConfig(v.cfg))
	if err != nil {
		v.message = err.Error()
		return
	}
	v.loop = frame.NewLoop(s, &v.controls, v.rend)
	v.message = ""
}

func (v *Viewer) openMesh(path string) error {
	m, err := scene.LoadMesh(config.MeshConfig{Path: path, FlipY: v.cfg.Mesh.FlipY})
	if err != nil {
		return err
	}
	v.rebuild(v.loop.Scene.Kind, m)
	v.log.Info("mesh loaded", zap.String("path", path), zap.String("mesh", m.Stats()))
	return nil
}

// openMeshDialog shows a native file dialog without blocking the UI. The
// result is picked up by the next render on the main thread.
func (v *Viewer) openMeshDialog() {
	go func() {
		path, err := dialog.File().
			Filter("Meshes", "obj", "gltf", "glb").
			Filter("All Files", "*").
			Title("Open mesh").
			Load()
		if err != nil {
			if err != dialog.ErrCancelled {
				v.log.Warn("file dialog failed", zap.Error(err))
			}
			return
		}
		select {
		case v.meshes <- path:
		default:
		}
	}()
}

func (v *Viewer) screenshot() {
	w, h := v.target.Size()
	path, err := v.shots.CaptureFromPixels(v.target.Pixels(), w, h)
	if err != nil {
		v.message = fmt.Sprintf("Screenshot failed: %v", err)
		return
	}
	v.message = "Saved " + path
	v.log.Info("screenshot saved", zap.String("path", path))
}
