package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Demo != "rotation" {
		t.Errorf("expected demo rotation, got %s", cfg.Demo)
	}
	if cfg.Backend != BackendSDL {
		t.Errorf("expected backend sdl, got %s", cfg.Backend)
	}
	if cfg.Screen.Width != 640 || cfg.Screen.Height != 480 {
		t.Errorf("expected screen 640x480, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Screen.FOVDeg != 90 || cfg.Screen.Near != 1 || cfg.Screen.Far != 100 {
		t.Errorf("unexpected projection defaults %+v", cfg.Screen)
	}
	if cfg.Timing.TPS != 60 {
		t.Errorf("expected tps 60, got %d", cfg.Timing.TPS)
	}
	if cfg.Lighting.Ambient != nil {
		t.Error("expected no ambient override by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"backend", func(c *Config) { c.Backend = "vulkan" }},
		{"screen", func(c *Config) { c.Screen.Width = 0 }},
		{"fov", func(c *Config) { c.Screen.FOVDeg = 180 }},
		{"near", func(c *Config) { c.Screen.Near = 0 }},
		{"far", func(c *Config) { c.Screen.Far = 0.5 }},
		{"tps", func(c *Config) { c.Timing.TPS = 0 }},
		{"frames", func(c *Config) { c.Output.Frames = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	cfg := Default()
	cfg.Backend = "vulkan"
	if err := cfg.Validate(); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("err = %v, want ErrUnknownBackend", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	content := `
demo: pointlights
backend: raster
screen:
  width: 320
  height: 240
lighting:
  ambient: 0.25
timing:
  transition_seconds: 1.5
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Demo != "pointlights" || cfg.Backend != BackendRaster {
		t.Errorf("got demo %s backend %s", cfg.Demo, cfg.Backend)
	}
	if cfg.Screen.Width != 320 || cfg.Screen.Height != 240 {
		t.Errorf("expected screen 320x240, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Lighting.Ambient == nil || *cfg.Lighting.Ambient != 0.25 {
		t.Errorf("expected ambient 0.25, got %v", cfg.Lighting.Ambient)
	}
	if cfg.Timing.TransitionSeconds != 1.5 {
		t.Errorf("expected transition 1.5, got %v", cfg.Timing.TransitionSeconds)
	}
	// Untouched values keep their defaults.
	if cfg.Screen.FOVDeg != 90 || cfg.Timing.TPS != 60 {
		t.Error("defaults lost while merging file")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("empty file: %v", err)
	}
	if cfg.Demo != "rotation" {
		t.Errorf("expected defaults, got demo %s", cfg.Demo)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "screen:\n  width: [not valid\n"},
		{"unknown key", "screen:\n  widht: 800\n"},
		{"type", "timing:\n  tps: fast\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), FileName)
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if err := loadFromFile(Default(), configPath); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/"+FileName); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	ambient := float32(0.3)
	cfg.Lighting.Ambient = &ambient
	cfg.Demo = "positional"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	back, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if back.Demo != "positional" || back.Lighting.Ambient == nil || *back.Lighting.Ambient != 0.3 {
		t.Errorf("round trip lost values: %+v", back)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir+"/xdg")

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("demo: positional\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "demo and backend flags",
			setup: func() {
				*flagDemo = "pointlights"
				*flagBackend = BackendEbiten
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Demo != "pointlights" || cfg.Backend != BackendEbiten {
					t.Errorf("got demo %s backend %s", cfg.Demo, cfg.Backend)
				}
			},
			teardown: func() {
				*flagDemo = ""
				*flagBackend = ""
			},
		},
		{
			name: "frames and out flags",
			setup: func() {
				*flagFrames = 0
				*flagOut = "out/last.png"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Output.Frames != 0 || cfg.Output.Path != "out/last.png" {
					t.Errorf("got frames %d out %s", cfg.Output.Frames, cfg.Output.Path)
				}
			},
			teardown: func() {
				*flagFrames = -1
				*flagOut = ""
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 1280
				*flagHeight = 960
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 1280 || cfg.Window.Height != 960 {
					t.Errorf("expected window 1280x960, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
				if cfg.Screen.Width != 640 {
					t.Error("window flags must not change the projected screen")
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			cfg.Output.Frames = 300
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	content := "demo: positional\nwindow:\n  width: 1600\n  height: 900\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
	if cfg.Demo != "positional" {
		t.Errorf("expected demo from file, got %s", cfg.Demo)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, []byte("backend: vulkan\n"), 0644); err != nil {
		t.Fatal(err)
	}
	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("err = %v, want ErrUnknownBackend", err)
	}
}
