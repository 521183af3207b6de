package scene

import (
	"errors"
	"fmt"
	gomath "math"
	"path/filepath"
	"strings"

	"github.com/Faultbox/vertexshade/internal/config"
	"github.com/Faultbox/vertexshade/internal/engine/camera"
	"github.com/Faultbox/vertexshade/pkg/mesh"
)

// ErrUnknownShape is returned for a built-in mesh name that does not exist.
var ErrUnknownShape = errors.New("unknown shape")

// FromConfig builds the demo state described by cfg.
func FromConfig(cfg *config.Config) (*State, error) {
	kind, err := ParseDemo(cfg.Demo)
	if err != nil {
		return nil, err
	}
	m, err := LoadMesh(cfg.Mesh)
	if err != nil {
		return nil, fmt.Errorf("load mesh: %w", err)
	}
	return New(kind, m, ParamsFromConfig(cfg))
}

// ParamsFromConfig maps config values onto demo parameters.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Projection: camera.Projection{
			Width:  cfg.Screen.Width,
			Height: cfg.Screen.Height,
			FovY:   cfg.Screen.FOVDeg * gomath.Pi / 180,
			Near:   cfg.Screen.Near,
			Far:    cfg.Screen.Far,
		},
		Ambient:           cfg.Lighting.Ambient,
		NormalizeLight:    cfg.Lighting.NormalizeDirection,
		TransitionSeconds: cfg.Timing.TransitionSeconds,
	}
}

// LoadMesh loads the file named by mc.Path, or a built-in shape when no
// path is set.
func LoadMesh(mc config.MeshConfig) (*mesh.Mesh, error) {
	if mc.Path != "" {
		switch strings.ToLower(filepath.Ext(mc.Path)) {
		case ".obj":
			return mesh.LoadOBJ(mc.Path, mesh.OBJOptions{FlipY: mc.FlipY})
		case ".gltf", ".glb":
			return mesh.LoadGLTF(mc.Path)
		default:
			return nil, fmt.Errorf("unsupported mesh format %q", filepath.Ext(mc.Path))
		}
	}

	switch strings.ToLower(mc.Shape) {
	case "", "cube":
		size := mc.Size
		if size <= 0 {
			size = 0.5
		}
		return mesh.Cube(size), nil
	case "triangle":
		return mesh.Triangle(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, mc.Shape)
}
