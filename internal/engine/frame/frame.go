// Package frame runs the per-frame pipeline: transform the mesh, light
// every face corner on the CPU and stream the result to a Sink.
package frame

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/vertexshade/internal/engine/lighting"
	"github.com/Faultbox/vertexshade/pkg/mesh"
)

// Buffers are the transformed vertex and normal arrays, sized once from
// the mesh and overwritten every frame.
type Buffers struct {
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
}

// NewBuffers allocates buffers matching m.
func NewBuffers(m *mesh.Mesh) *Buffers {
	return &Buffers{
		Vertices: make([]mgl32.Vec3, len(m.Vertices)),
		Normals:  make([]mgl32.Vec3, len(m.Normals)),
	}
}

// Transform writes m's vertices through mvp with a perspective divide.
// When rotate is set the normals are written through model, otherwise
// they are copied unchanged.
func (b *Buffers) Transform(m *mesh.Mesh, mvp, model mgl32.Mat4, rotate bool) error {
	if len(b.Vertices) != len(m.Vertices) || len(b.Normals) != len(m.Normals) {
		return fmt.Errorf("buffers sized %d/%d for mesh %d/%d",
			len(b.Vertices), len(b.Normals), len(m.Vertices), len(m.Normals))
	}

	for i, v := range m.Vertices {
		b.Vertices[i] = mgl32.TransformCoordinate(v, mvp)
	}
	if rotate {
		for i, n := range m.Normals {
			b.Normals[i] = mgl32.TransformNormal(n, model)
		}
	} else {
		copy(b.Normals, m.Normals)
	}
	return nil
}

// Stats describes one rendered frame.
type Stats struct {
	Faces        int
	Vertices     int
	SkippedFaces int
}

// Render lights and emits every complete face of m. b must already hold
// this frame's transformed data. Corners go out in 2, 1, 0 order with the
// last one closing the strip. Faces with an unspecified vertex or normal
// index are skipped.
func Render(m *mesh.Mesh, b *Buffers, light lighting.Model, sink Sink) (Stats, error) {
	var st Stats

	if err := sink.Begin(); err != nil {
		return st, fmt.Errorf("begin frame: %w", err)
	}

	in := light.Inputs()
	for _, f := range m.Faces {
		if !f.Complete() {
			st.SkippedFaces++
			continue
		}

		for j := 0; j < 3; j++ {
			vi := f.Vertex[2-j]
			ni := f.Normal[2-j]

			pos := m.Vertices[vi]
			if in.TransformedPosition {
				pos = b.Vertices[vi]
			}
			n := m.Normals[ni]
			if in.TransformedNormal {
				n = b.Normals[ni]
			}

			sink.Push(Vertex{
				Position:   b.Vertices[vi],
				Color:      light.Shade(pos, n),
				EndOfStrip: j == 2,
			})
			st.Vertices++
		}
		st.Faces++
	}

	if err := sink.End(); err != nil {
		return st, fmt.Errorf("end frame: %w", err)
	}
	return st, nil
}
