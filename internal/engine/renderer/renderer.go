// Package renderer draws the CPU-lit vertex stream with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/vertexshade/internal/engine/debug"
	"github.com/Faultbox/vertexshade/internal/engine/frame"
	"github.com/Faultbox/vertexshade/internal/logger"
)

// Floats per streamed vertex: position xyz + color rgba.
const vertexFloats = 7

// Config holds renderer configuration.
type Config struct {
	// Screen is the pixel space the vertex stream is expressed in.
	ScreenWidth, ScreenHeight int
	// Viewport is the drawable size of the window.
	ViewportWidth, ViewportHeight int
}

// Renderer is a frame.Sink backed by one streaming VBO.
type Renderer struct {
	config Config

	program uint32
	vao     uint32
	vbo     uint32
	screen  int32

	vertices []float32
	tri      int // corners pushed since the last strip end
	capacity int // VBO size in floats
}

// New creates a new renderer.
// Must be called after the OpenGL context is current.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	var err error
	r.program, err = linkProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.screen, err = uniform(r.program, "uScreen")
	if err != nil {
		r.Close()
		return nil, err
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(vertexFloats * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.Resize(cfg.ViewportWidth, cfg.ViewportHeight)

	logger.Debug("renderer created",
		zap.Uint32("program", r.program),
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
	)
	return r, nil
}

// Close releases GL objects.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles a change of drawable size.
func (r *Renderer) Resize(width, height int) {
	r.config.ViewportWidth = width
	r.config.ViewportHeight = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Begin implements frame.Sink. Depth and clear state are set every frame
// since a host UI may change them between frames.
func (r *Renderer) Begin() error {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.vertices = r.vertices[:0]
	r.tri = 0
	return nil
}

// Push implements frame.Sink. Strips that close with fewer or more than
// three corners are dropped.
func (r *Renderer) Push(v frame.Vertex) {
	r.vertices = AppendVertex(r.vertices, v)
	r.tri++
	if !v.EndOfStrip {
		return
	}
	if r.tri != 3 {
		r.vertices = r.vertices[:len(r.vertices)-r.tri*vertexFloats]
	}
	r.tri = 0
}

// End implements frame.Sink. It uploads and draws the frame.
func (r *Renderer) End() error {
	if r.tri != 0 {
		r.vertices = r.vertices[:len(r.vertices)-r.tri*vertexFloats]
		r.tri = 0
	}
	n := len(r.vertices) / vertexFloats
	if n == 0 {
		return nil
	}

	gl.UseProgram(r.program)
	gl.Uniform2f(r.screen, float32(r.config.ScreenWidth), float32(r.config.ScreenHeight))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(r.vertices) > r.capacity {
		r.capacity = cap(r.vertices)
		gl.BufferData(gl.ARRAY_BUFFER, r.capacity*4, nil, gl.STREAM_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.vertices)*4, unsafe.Pointer(&r.vertices[0]))

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(n))
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

// Screenshot reads back the framebuffer and saves it.
func (r *Renderer) Screenshot(sc *debug.ScreenshotCapture) (string, error) {
	w, h := r.config.ViewportWidth, r.config.ViewportHeight
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return sc.CaptureFromPixels(pixels, w, h)
}

// AppendVertex appends the interleaved attributes of v to buf.
func AppendVertex(buf []float32, v frame.Vertex) []float32 {
	c := v.Color
	return append(buf,
		v.Position[0], v.Position[1], v.Position[2],
		float32(c>>16&0xFF)/255,
		float32(c>>8&0xFF)/255,
		float32(c&0xFF)/255,
		float32(c>>24)/255,
	)
}
