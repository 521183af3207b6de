package frame

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one emitted, lit, screen-space vertex.
// Position is in pixels for x and y with NDC depth in z.
type Vertex struct {
	Position   mgl32.Vec3
	Color      uint32 // 0xAARRGGBB
	EndOfStrip bool   // Closes the current primitive
}

// Sink consumes the vertex stream of one frame.
type Sink interface {
	Begin() error
	Push(v Vertex)
	End() error
}

// Recorder is a Sink that keeps every frame in memory.
type Recorder struct {
	Frames [][]Vertex

	open bool
}

// Begin implements Sink.
func (r *Recorder) Begin() error {
	r.Frames = append(r.Frames, nil)
	r.open = true
	return nil
}

// Push implements Sink. Vertices outside Begin/End are dropped.
func (r *Recorder) Push(v Vertex) {
	if !r.open {
		return
	}
	last := len(r.Frames) - 1
	r.Frames[last] = append(r.Frames[last], v)
}

// End implements Sink.
func (r *Recorder) End() error {
	r.open = false
	return nil
}

// Last returns the most recent frame's vertices.
func (r *Recorder) Last() []Vertex {
	if len(r.Frames) == 0 {
		return nil
	}
	return r.Frames[len(r.Frames)-1]
}

// Triangles groups vertices into triangles by EndOfStrip.
// A trailing group without EndOfStrip is dropped.
func Triangles(vs []Vertex) [][3]Vertex {
	var out [][3]Vertex
	var cur []Vertex
	for _, v := range vs {
		cur = append(cur, v)
		if v.EndOfStrip {
			if len(cur) == 3 {
				out = append(out, [3]Vertex{cur[0], cur[1], cur[2]})
			}
			cur = cur[:0]
		}
	}
	return out
}
