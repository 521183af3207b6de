// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Backend names.
const (
	BackendSDL    = "sdl"
	BackendEbiten = "ebiten"
	BackendRaster = "raster"
)

// Backends lists every supported backend.
var Backends = []string{BackendSDL, BackendEbiten, BackendRaster}

// ErrUnknownBackend is returned for a backend name that is not supported.
var ErrUnknownBackend = errors.New("unknown backend")

// Config holds all demo settings.
type Config struct {
	Demo     string         `yaml:"demo"`
	Backend  string         `yaml:"backend"`
	Window   WindowConfig   `yaml:"window"`
	Screen   ScreenConfig   `yaml:"screen"`
	Mesh     MeshConfig     `yaml:"mesh"`
	Lighting LightingConfig `yaml:"lighting"`
	Timing   TimingConfig   `yaml:"timing"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// ScreenConfig is the pixel space vertices are projected into.
type ScreenConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	FOVDeg  float32 `yaml:"fov_deg"`
	Near    float32 `yaml:"near"`
	Far     float32 `yaml:"far"`
	CullCCW bool    `yaml:"cull_ccw"` // Software backend only
}

// MeshConfig selects the model. Path wins over Shape.
type MeshConfig struct {
	Path  string  `yaml:"path"`  // .obj, .gltf or .glb
	Shape string  `yaml:"shape"` // cube or triangle
	Size  float32 `yaml:"size"`
	FlipY bool    `yaml:"flip_y"` // OBJ only
}

// LightingConfig tweaks the demo light.
type LightingConfig struct {
	// Ambient overrides the demo's ambient level when set.
	Ambient            *float32 `yaml:"ambient,omitempty"`
	NormalizeDirection bool     `yaml:"normalize_direction"`
}

// TimingConfig holds frame pacing.
type TimingConfig struct {
	TPS int `yaml:"tps"`
	// TransitionSeconds > 0 times orientation changes by elapsed time
	// instead of a fixed step per frame.
	TransitionSeconds float32 `yaml:"transition_seconds"`
}

// OutputConfig controls headless runs and screenshots.
type OutputConfig struct {
	Frames        int    `yaml:"frames"`         // 0 runs until closed
	Path          string `yaml:"path"`           // Final raster frame, .png or .bmp
	ScreenshotDir string `yaml:"screenshot_dir"` // F12 target for windowed backends
	Script        string `yaml:"script"`         // Raster input, e.g. "start,,,up+a"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Demo:    "rotation",
		Backend: BackendSDL,
		Window: WindowConfig{
			Title:  "vertexshade",
			Width:  640,
			Height: 480,
			VSync:  true,
		},
		Screen: ScreenConfig{
			Width:  640,
			Height: 480,
			FOVDeg: 90,
			Near:   1,
			Far:    100,
		},
		Mesh: MeshConfig{
			Shape: "cube",
			Size:  0.5,
			FlipY: true,
		},
		Timing: TimingConfig{
			TPS: 60,
		},
		Output: OutputConfig{
			Path:          "frame.png",
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks values that would otherwise fail deep inside a backend.
func (c *Config) Validate() error {
	known := false
	for _, b := range Backends {
		if c.Backend == b {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.FOVDeg <= 0 || c.Screen.FOVDeg >= 180 {
		return fmt.Errorf("fov_deg must be in (0, 180), got %v", c.Screen.FOVDeg)
	}
	if c.Screen.Near <= 0 || c.Screen.Far <= c.Screen.Near {
		return fmt.Errorf("need 0 < near < far, got %v and %v", c.Screen.Near, c.Screen.Far)
	}
	if c.Timing.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.Timing.TPS)
	}
	if c.Output.Frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", c.Output.Frames)
	}
	return nil
}
