package mesh

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// glTF errors.
var (
	ErrNoPositions = errors.New("glTF primitive has no POSITION attribute")
)

// LoadGLTF reads every triangle primitive of a .gltf or .glb file into a
// single mesh. Node transforms are not applied. Normals are per vertex in
// glTF, so a face's normal indices equal its vertex indices; primitives
// without normals get Unspecified normal indices.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}

	m, err := FromGLTF(doc)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return m, nil
}

// FromGLTF converts the triangle primitives of a decoded document.
func FromGLTF(doc *gltf.Document) (*Mesh, error) {
	m := &Mesh{}

	for mi, gm := range doc.Meshes {
		for pi, p := range gm.Primitives {
			if p.Mode != gltf.PrimitiveTriangles {
				continue
			}
			if err := m.appendPrimitive(doc, p); err != nil {
				return nil, fmt.Errorf("mesh %d primitive %d: %w", mi, pi, err)
			}
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mesh) appendPrimitive(doc *gltf.Document, p *gltf.Primitive) error {
	posAccessor, ok := p.Attributes[gltf.POSITION]
	if !ok {
		return ErrNoPositions
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if normalAccessor, ok := p.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[normalAccessor], nil)
		if err != nil {
			return fmt.Errorf("normals: %w", err)
		}
	}

	var indices []uint32
	if p.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*p.Indices], nil)
		if err != nil {
			return fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	vertexBase := len(m.Vertices)
	normalBase := len(m.Normals)
	hasNormals := len(normals) == len(positions)

	for _, v := range positions {
		m.Vertices = append(m.Vertices, mgl32.Vec3{v[0], v[1], v[2]})
	}
	if hasNormals {
		for _, n := range normals {
			m.Normals = append(m.Normals, mgl32.Vec3{n[0], n[1], n[2]})
		}
	}

	for i := 0; i+2 < len(indices); i += 3 {
		f := Face{UV: [3]int{Unspecified, Unspecified, Unspecified}}
		for j := 0; j < 3; j++ {
			idx := int(indices[i+j])
			f.Vertex[j] = vertexBase + idx
			if hasNormals {
				f.Normal[j] = normalBase + idx
			} else {
				f.Normal[j] = Unspecified
			}
		}
		m.Faces = append(m.Faces, f)
	}
	return nil
}
