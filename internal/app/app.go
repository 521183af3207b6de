// Package app runs a configured demo on one of the desktop or headless
// backends.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/vertexshade/internal/config"
	"github.com/Faultbox/vertexshade/internal/logger"
	"github.com/Faultbox/vertexshade/internal/scene"
)

// Run builds the configured demo and hands it to the configured backend.
// It returns once the backend finishes.
func Run(cfg *config.Config) error {
	s, err := scene.FromConfig(cfg)
	if err != nil {
		return err
	}

	logger.Info("starting demo",
		zap.String("demo", cfg.Demo),
		zap.String("backend", cfg.Backend),
		zap.String("mesh", s.Mesh.Stats()))

	switch cfg.Backend {
	case config.BackendSDL:
		return runSDL(cfg, s)
	case config.BackendEbiten:
		return runEbiten(cfg, s)
	case config.BackendRaster:
		_, err := runRaster(cfg, s)
		return err
	}
	return fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
}
