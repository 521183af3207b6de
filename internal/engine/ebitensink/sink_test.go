package ebitensink

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/vertexshade/internal/engine/frame"
)

func tri(z float32, c uint32) []frame.Vertex {
	return []frame.Vertex{
		{Position: mgl32.Vec3{0, 0, z}, Color: c},
		{Position: mgl32.Vec3{1, 0, z}, Color: c},
		{Position: mgl32.Vec3{0, 1, z}, Color: c, EndOfStrip: true},
	}
}

func TestSinkCollectsAndSorts(t *testing.T) {
	s := &Sink{}
	s.Begin()
	for _, v := range tri(0.1, 1) {
		s.Push(v)
	}
	for _, v := range tri(0.9, 2) {
		s.Push(v)
	}
	s.Push(frame.Vertex{EndOfStrip: true}) // short strip
	s.End()

	tris := s.Triangles()
	if len(tris) != 2 {
		t.Fatalf("got %d triangles, want 2", len(tris))
	}
	if tris[0][0].Color != 2 {
		t.Error("farthest triangle is not painted first")
	}
}

func TestSinkKeepsLastFrame(t *testing.T) {
	s := &Sink{}
	s.Begin()
	for _, v := range tri(0, 1) {
		s.Push(v)
	}
	s.End()

	s.Begin()
	if len(s.Triangles()) != 1 {
		t.Error("frame in progress replaced the finished one")
	}
	s.End()
	if len(s.Triangles()) != 0 {
		t.Errorf("got %d triangles after empty frame, want 0", len(s.Triangles()))
	}
}

func TestToEbiten(t *testing.T) {
	v := toEbiten(frame.Vertex{Position: mgl32.Vec3{3, 4, 0}, Color: 0xFFFF8000})
	if v.DstX != 3 || v.DstY != 4 {
		t.Errorf("dst = %v, %v", v.DstX, v.DstY)
	}
	if v.ColorR != 1 || v.ColorB != 0 || v.ColorA != 1 {
		t.Errorf("color = %v %v %v %v", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
	if g := v.ColorG; g < 0.5 || g > 0.51 {
		t.Errorf("green = %v, want ~0.502", g)
	}
}
