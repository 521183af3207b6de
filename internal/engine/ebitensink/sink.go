// Package ebitensink presents the vertex stream through Ebitengine.
//
// A frame is collected into a triangle list during Update and painted
// back to front with DrawTriangles during Draw, since Ebitengine offers no
// depth buffer for plain triangle draws.
package ebitensink

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Faultbox/vertexshade/internal/engine/frame"
)

// maxBatch is the largest vertex count addressable by uint16 indices,
// rounded down to whole triangles.
const maxBatch = 65535 / 3 * 3

// Sink is a frame.Sink keeping the last complete frame.
type Sink struct {
	tris    [][3]frame.Vertex
	pending [][3]frame.Vertex
	cur     []frame.Vertex

	vertices []ebiten.Vertex
	indices  []uint16
}

// Begin implements frame.Sink.
func (s *Sink) Begin() error {
	s.pending = s.pending[:0]
	s.cur = s.cur[:0]
	return nil
}

// Push implements frame.Sink.
func (s *Sink) Push(v frame.Vertex) {
	s.cur = append(s.cur, v)
	if !v.EndOfStrip {
		return
	}
	if len(s.cur) == 3 {
		s.pending = append(s.pending, [3]frame.Vertex{s.cur[0], s.cur[1], s.cur[2]})
	}
	s.cur = s.cur[:0]
}

// End implements frame.Sink. The collected frame replaces the one Draw
// paints.
func (s *Sink) End() error {
	s.tris, s.pending = s.pending, s.tris
	sortBackToFront(s.tris)
	return nil
}

// Triangles returns the frame Draw will paint, farthest first.
func (s *Sink) Triangles() [][3]frame.Vertex {
	return s.tris
}

// Draw paints the last frame onto dst.
func (s *Sink) Draw(dst *ebiten.Image) {
	src := whitePixel()
	opts := &ebiten.DrawTrianglesOptions{}

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for _, t := range s.tris {
		if len(s.vertices)+3 > maxBatch {
			dst.DrawTriangles(s.vertices, s.indices, src, opts)
			s.vertices = s.vertices[:0]
			s.indices = s.indices[:0]
		}
		for _, v := range t {
			s.indices = append(s.indices, uint16(len(s.vertices)))
			s.vertices = append(s.vertices, toEbiten(v))
		}
	}
	if len(s.vertices) > 0 {
		dst.DrawTriangles(s.vertices, s.indices, src, opts)
	}
}

// toEbiten converts a screen-space vertex sampling the white pixel.
func toEbiten(v frame.Vertex) ebiten.Vertex {
	c := v.Color
	return ebiten.Vertex{
		DstX:   v.Position[0],
		DstY:   v.Position[1],
		SrcX:   1.5,
		SrcY:   1.5,
		ColorR: float32(c>>16&0xFF) / 255,
		ColorG: float32(c>>8&0xFF) / 255,
		ColorB: float32(c&0xFF) / 255,
		ColorA: float32(c>>24) / 255,
	}
}

// sortBackToFront orders triangles by descending mean depth.
func sortBackToFront(tris [][3]frame.Vertex) {
	sort.SliceStable(tris, func(i, j int) bool {
		return depth(tris[i]) > depth(tris[j])
	})
}

func depth(t [3]frame.Vertex) float32 {
	return t[0].Position[2] + t[1].Position[2] + t[2].Position[2]
}

var white *ebiten.Image

// whitePixel returns the center of a 3x3 white image so linear filtering
// never samples outside it.
func whitePixel() *ebiten.Image {
	if white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return white
}
