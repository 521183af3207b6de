package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// OBJ format errors.
var (
	ErrMalformedOBJ = errors.New("malformed OBJ line")
)

// OBJOptions controls how OBJ data is mapped into mesh space.
type OBJOptions struct {
	// FlipY negates vertex Y so that +Y points down the screen. Normals
	// are left untouched; the demo meshes and lights were tuned that way.
	FlipY bool
}

// DefaultOBJOptions returns the options the demos load their meshes with.
func DefaultOBJOptions() OBJOptions {
	return OBJOptions{FlipY: true}
}

// LoadOBJ reads an OBJ file from disk. The mesh is named after the file
// without its extension.
func LoadOBJ(path string, opts OBJOptions) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ParseOBJ(f, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return m, nil
}

// ParseOBJ reads v, vn, vt and f statements. Everything else is ignored.
// Polygons with more than three corners are split into a triangle fan.
// Face indices are converted to 0-based; missing uv or normal references
// become Unspecified.
func ParseOBJ(r io.Reader, opts OBJOptions) (*Mesh, error) {
	m := &Mesh{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			var v mgl32.Vec3
			v, err = parseVec3(fields[1:])
			if opts.FlipY {
				v[1] = -v[1]
			}
			m.Vertices = append(m.Vertices, v)
		case "vn":
			var n mgl32.Vec3
			n, err = parseVec3(fields[1:])
			m.Normals = append(m.Normals, n)
		case "vt":
			var uv mgl32.Vec2
			uv, err = parseVec2(fields[1:])
			m.UVs = append(m.UVs, uv)
		case "f":
			err = m.parseFace(fields[1:])
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mesh) parseFace(corners []string) error {
	if len(corners) < 3 {
		return fmt.Errorf("%w: face needs 3 corners, got %d", ErrMalformedOBJ, len(corners))
	}

	parsed := make([][3]int, len(corners))
	for i, c := range corners {
		var err error
		parsed[i], err = parseCorner(c)
		if err != nil {
			return err
		}
	}

	for i := 1; i+1 < len(parsed); i++ {
		tri := [3][3]int{parsed[0], parsed[i], parsed[i+1]}
		var f Face
		for j := 0; j < 3; j++ {
			f.Vertex[j] = tri[j][0]
			f.UV[j] = tri[j][1]
			f.Normal[j] = tri[j][2]
		}
		m.Faces = append(m.Faces, f)
	}
	return nil
}

// parseCorner parses "v", "v/vt", "v//vn" or "v/vt/vn" into 0-based
// vertex, uv and normal indices.
func parseCorner(s string) ([3]int, error) {
	out := [3]int{Unspecified, Unspecified, Unspecified}
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return out, fmt.Errorf("%w: corner %q", ErrMalformedOBJ, s)
	}
	for i, p := range parts {
		if p == "" {
			if i == 0 {
				return out, fmt.Errorf("%w: corner %q has no vertex", ErrMalformedOBJ, s)
			}
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return out, fmt.Errorf("%w: corner %q", ErrMalformedOBJ, s)
		}
		out[i] = n - 1
	}
	return out, nil
}

func parseVec3(fields []string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	if len(fields) < 3 {
		return v, fmt.Errorf("%w: need 3 components, got %d", ErrMalformedOBJ, len(fields))
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return v, fmt.Errorf("%w: %v", ErrMalformedOBJ, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

func parseVec2(fields []string) (mgl32.Vec2, error) {
	var v mgl32.Vec2
	if len(fields) < 2 {
		return v, fmt.Errorf("%w: need 2 components, got %d", ErrMalformedOBJ, len(fields))
	}
	for i := 0; i < 2; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return v, fmt.Errorf("%w: %v", ErrMalformedOBJ, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}
