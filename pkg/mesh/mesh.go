// Package mesh holds the static triangle meshes the demos draw and reads
// them from OBJ and glTF files.
package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Unspecified marks a face index with no data behind it.
const Unspecified = -1

// Mesh errors.
var (
	ErrIndexOutOfRange = errors.New("mesh index out of range")
	ErrEmptyMesh       = errors.New("mesh has no faces")
)

// Face is a triangle referencing the mesh arrays.
// Any index may be Unspecified and must then not be dereferenced.
type Face struct {
	Vertex [3]int
	UV     [3]int
	Normal [3]int
}

// Complete reports whether every vertex and normal index is specified.
func (f Face) Complete() bool {
	for i := 0; i < 3; i++ {
		if f.Vertex[i] == Unspecified || f.Normal[i] == Unspecified {
			return false
		}
	}
	return true
}

// Mesh is an immutable set of vertex, normal and face arrays.
// Vertices are points (w = 1), normals directions (w = 0).
type Mesh struct {
	Name     string
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
	UVs      []mgl32.Vec2
	Faces    []Face
}

// Validate checks that every specified index refers to an existing entry.
func (m *Mesh) Validate() error {
	if len(m.Faces) == 0 {
		return ErrEmptyMesh
	}
	for i, f := range m.Faces {
		for j := 0; j < 3; j++ {
			if err := checkIndex(f.Vertex[j], len(m.Vertices)); err != nil {
				return fmt.Errorf("face %d vertex %d: %w", i, j, err)
			}
			if err := checkIndex(f.Normal[j], len(m.Normals)); err != nil {
				return fmt.Errorf("face %d normal %d: %w", i, j, err)
			}
			if err := checkIndex(f.UV[j], len(m.UVs)); err != nil {
				return fmt.Errorf("face %d uv %d: %w", i, j, err)
			}
		}
	}
	return nil
}

func checkIndex(idx, n int) error {
	if idx == Unspecified {
		return nil
	}
	if idx < 0 || idx >= n {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, idx, n)
	}
	return nil
}

// Bounds returns the axis-aligned bounds of the vertex array.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	return
}

// Stats returns a one-line summary of the array sizes.
func (m *Mesh) Stats() string {
	return fmt.Sprintf("%d vertices, %d normals, %d uvs, %d faces",
		len(m.Vertices), len(m.Normals), len(m.UVs), len(m.Faces))
}
