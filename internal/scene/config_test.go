package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/vertexshade/internal/config"
)

const triangleOBJ = `v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`

func TestLoadMesh(t *testing.T) {
	objPath := filepath.Join(t.TempDir(), "tri.obj")
	if err := os.WriteFile(objPath, []byte(triangleOBJ), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		mc    config.MeshConfig
		faces int
	}{
		{"default cube", config.MeshConfig{}, 12},
		{"cube", config.MeshConfig{Shape: "Cube", Size: 1}, 12},
		{"triangle", config.MeshConfig{Shape: "triangle"}, 1},
		{"obj wins over shape", config.MeshConfig{Path: objPath, Shape: "cube", FlipY: true}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := LoadMesh(tt.mc)
			if err != nil {
				t.Fatalf("LoadMesh: %v", err)
			}
			if len(m.Faces) != tt.faces {
				t.Errorf("got %d faces, want %d", len(m.Faces), tt.faces)
			}
		})
	}

	m, err := LoadMesh(config.MeshConfig{Path: objPath, FlipY: true})
	if err != nil {
		t.Fatal(err)
	}
	if y := m.Vertices[2].Y(); y != -1 {
		t.Errorf("flipped y = %v, want -1", y)
	}
}

func TestLoadMeshErrors(t *testing.T) {
	if _, err := LoadMesh(config.MeshConfig{Shape: "teapot"}); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("err = %v, want ErrUnknownShape", err)
	}
	if _, err := LoadMesh(config.MeshConfig{Path: "model.fbx"}); err == nil {
		t.Error("expected error for unsupported format")
	}
	if _, err := LoadMesh(config.MeshConfig{Path: filepath.Join(t.TempDir(), "missing.obj")}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParamsFromConfig(t *testing.T) {
	cfg := config.Default()
	ambient := float32(0.4)
	cfg.Lighting.Ambient = &ambient
	cfg.Screen.FOVDeg = 60
	cfg.Timing.TransitionSeconds = 2

	p := ParamsFromConfig(cfg)
	if p.Projection.Width != 640 || p.Projection.Height != 480 {
		t.Errorf("projection size %dx%d", p.Projection.Width, p.Projection.Height)
	}
	if fov := p.Projection.FovY; fov < 1.047 || fov > 1.048 {
		t.Errorf("fov = %v rad, want ~1.0472", fov)
	}
	if p.Ambient == nil || *p.Ambient != 0.4 || p.TransitionSeconds != 2 {
		t.Errorf("params = %+v", p)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Demo = "positional"
	s, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if s.Kind != DemoPositional {
		t.Errorf("kind = %v, want positional", s.Kind)
	}

	cfg.Demo = "spinning"
	if _, err := FromConfig(cfg); !errors.Is(err, ErrUnknownDemo) {
		t.Errorf("err = %v, want ErrUnknownDemo", err)
	}
}
