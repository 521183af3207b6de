package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagDemo    = flag.String("demo", "", "Demo to run: rotation, pointlights or positional")
	flagBackend = flag.String("backend", "", "Backend: sdl, ebiten or raster")
	flagFrames  = flag.Int("frames", -1, "Stop after this many frames (0 = run until closed)")
	flagOut     = flag.String("out", "", "Image path (.png or .bmp) for the last raster frame")
	flagWidth   = flag.Int("width", 0, "Window width")
	flagHeight  = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagDemo != "" {
		cfg.Demo = *flagDemo
	}
	if *flagBackend != "" {
		cfg.Backend = *flagBackend
	}
	if *flagFrames >= 0 {
		cfg.Output.Frames = *flagFrames
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}
