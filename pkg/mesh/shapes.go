package mesh

import "github.com/go-gl/mathgl/mgl32"

// Triangle returns a single triangle in the XY plane facing +Z.
func Triangle() *Mesh {
	return &Mesh{
		Name: "triangle",
		Vertices: []mgl32.Vec3{
			{0, 0, 0},
			{1, 0, 0},
			{0, 1, 0},
		},
		Normals: []mgl32.Vec3{{0, 0, 1}},
		Faces: []Face{{
			Vertex: [3]int{0, 1, 2},
			UV:     [3]int{Unspecified, Unspecified, Unspecified},
			Normal: [3]int{0, 0, 0},
		}},
	}
}

// Cube returns an axis-aligned cube of the given half extent centered on
// the origin, with one flat normal per side and counter-clockwise outward
// winding.
func Cube(half float32) *Mesh {
	m := &Mesh{Name: "cube"}

	sides := []struct {
		normal, u, v mgl32.Vec3
	}{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	}

	for _, s := range sides {
		base := len(m.Vertices)
		n := len(m.Normals)
		center := s.normal.Mul(half)
		u := s.u.Mul(half)
		v := s.v.Mul(half)

		m.Vertices = append(m.Vertices,
			center.Sub(u).Sub(v),
			center.Add(u).Sub(v),
			center.Add(u).Add(v),
			center.Sub(u).Add(v),
		)
		m.Normals = append(m.Normals, s.normal)

		none := [3]int{Unspecified, Unspecified, Unspecified}
		m.Faces = append(m.Faces,
			Face{Vertex: [3]int{base, base + 1, base + 2}, UV: none, Normal: [3]int{n, n, n}},
			Face{Vertex: [3]int{base, base + 2, base + 3}, UV: none, Normal: [3]int{n, n, n}},
		)
	}
	return m
}
