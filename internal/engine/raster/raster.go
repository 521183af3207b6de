// Package raster is a software frame.Sink. Triangles are filled with
// Gouraud-interpolated vertex colors into an image with a depth buffer.
package raster

import (
	"image"
	"image/color"

	gomath "math"

	"github.com/Faultbox/vertexshade/internal/engine/frame"
	"github.com/Faultbox/vertexshade/internal/engine/lighting"
)

// CullMode selects which screen-space winding is discarded.
type CullMode int

const (
	CullNone CullMode = iota
	CullClockwise
	CullCounterClockwise
)

// Rasterizer draws one frame at a time into Image.
type Rasterizer struct {
	Image *image.NRGBA
	Clear color.NRGBA
	Cull  CullMode

	// Drawn counts triangles that reached pixel filling last frame.
	Drawn int

	depth []float32
	tri   []frame.Vertex
}

// New creates a rasterizer with a black background.
func New(width, height int) *Rasterizer {
	return &Rasterizer{
		Image: image.NewNRGBA(image.Rect(0, 0, width, height)),
		Clear: color.NRGBA{A: 255},
		depth: make([]float32, width*height),
		tri:   make([]frame.Vertex, 0, 3),
	}
}

// Width returns the framebuffer width.
func (r *Rasterizer) Width() int { return r.Image.Rect.Dx() }

// Height returns the framebuffer height.
func (r *Rasterizer) Height() int { return r.Image.Rect.Dy() }

// Begin implements frame.Sink. It clears color and depth.
func (r *Rasterizer) Begin() error {
	pix := r.Image.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = r.Clear.R
		pix[i+1] = r.Clear.G
		pix[i+2] = r.Clear.B
		pix[i+3] = r.Clear.A
	}
	for i := range r.depth {
		r.depth[i] = gomath.MaxFloat32
	}
	r.tri = r.tri[:0]
	r.Drawn = 0
	return nil
}

// Push implements frame.Sink. A triangle is drawn when its third vertex
// closes the strip; shorter strips are discarded.
func (r *Rasterizer) Push(v frame.Vertex) {
	r.tri = append(r.tri, v)
	if !v.EndOfStrip {
		return
	}
	if len(r.tri) == 3 {
		r.drawTriangle(r.tri[0], r.tri[1], r.tri[2])
	}
	r.tri = r.tri[:0]
}

// End implements frame.Sink.
func (r *Rasterizer) End() error {
	r.tri = r.tri[:0]
	return nil
}

func (r *Rasterizer) drawTriangle(v0, v1, v2 frame.Vertex) {
	p0, p1, p2 := v0.Position, v1.Position, v2.Position

	// Reject anything outside the depth range instead of clipping.
	for _, p := range [3]float32{p0[2], p1[2], p2[2]} {
		if p < -1 || p > 1 || p != p {
			return
		}
	}

	area := edge(p0[0], p0[1], p1[0], p1[1], p2[0], p2[1])
	if area == 0 {
		return
	}
	// With y down, a positive area is clockwise on screen.
	switch r.Cull {
	case CullClockwise:
		if area > 0 {
			return
		}
	case CullCounterClockwise:
		if area < 0 {
			return
		}
	}

	w, h := r.Width(), r.Height()
	minX := max(0, int(gomath.Floor(float64(min(p0[0], p1[0], p2[0])))))
	maxX := min(w-1, int(gomath.Ceil(float64(max(p0[0], p1[0], p2[0])))))
	minY := max(0, int(gomath.Floor(float64(min(p0[1], p1[1], p2[1])))))
	maxY := min(h-1, int(gomath.Ceil(float64(max(p0[1], p1[1], p2[1])))))
	if minX > maxX || minY > maxY {
		return
	}
	r.Drawn++

	c0 := lighting.ToNRGBA(v0.Color)
	c1 := lighting.ToNRGBA(v1.Color)
	c2 := lighting.ToNRGBA(v2.Color)

	inv := 1 / area
	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			b0 := edge(p1[0], p1[1], p2[0], p2[1], px, py) * inv
			b1 := edge(p2[0], p2[1], p0[0], p0[1], px, py) * inv
			b2 := 1 - b0 - b1
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}

			z := b0*p0[2] + b1*p1[2] + b2*p2[2]
			i := y*w + x
			if z >= r.depth[i] {
				continue
			}
			r.depth[i] = z

			o := r.Image.PixOffset(x, y)
			pix := r.Image.Pix[o : o+4 : o+4]
			pix[0] = mix(c0.R, c1.R, c2.R, b0, b1, b2)
			pix[1] = mix(c0.G, c1.G, c2.G, b0, b1, b2)
			pix[2] = mix(c0.B, c1.B, c2.B, b0, b1, b2)
			pix[3] = mix(c0.A, c1.A, c2.A, b0, b1, b2)
		}
	}
}

// edge is twice the signed area of (a, b, p).
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func mix(a, b, c uint8, wa, wb, wc float32) uint8 {
	v := float32(a)*wa + float32(b)*wb + float32(c)*wc + 0.5
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
