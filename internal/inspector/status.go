package inspector

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/vertexshade/internal/engine/frame"
	"github.com/Faultbox/vertexshade/internal/engine/lighting"
	"github.com/Faultbox/vertexshade/internal/scene"
)

// Line is one label/value row of the state panel.
type Line struct {
	Label string
	Value string
}

// Status describes the loop's scene for display.
func Status(l *frame.Loop) []Line {
	s := l.Scene
	lines := []Line{
		{"Demo", string(s.Kind)},
		{"Mesh", s.Mesh.Stats()},
		{"Frame", fmt.Sprintf("%d", l.Frame)},
		{"Faces", fmt.Sprintf("%d drawn, %d skipped", l.Last.Faces, l.Last.SkippedFaces)},
		{"Camera", vec(s.Camera.Position)},
		{"Rotation", vec(s.Camera.Rotation)},
		{"Held", s.Previous().String()},
	}

	if s.Orient != nil {
		mode := "fixed step"
		if s.Orient.Timed() {
			mode = "timed"
		}
		lines = append(lines,
			Line{"Orientation", fmt.Sprintf("%d of %d (%s)", s.Orient.Index()+1, s.Orient.Len(), mode)},
			Line{"Progress", fmt.Sprintf("%.2f", s.Orient.Progress())},
		)
	}

	return append(lines, lightLines(s)...)
}

func lightLines(s *scene.State) []Line {
	switch l := s.Light.(type) {
	case *lighting.Directional:
		return []Line{
			{"Light", "directional " + vec(l.Direction)},
			{"Ambient", fmt.Sprintf("%.2f", l.Ambient)},
		}
	case *lighting.Positional:
		return []Line{
			{"Light", "positional " + vec(l.Position)},
			{"Ambient", fmt.Sprintf("%.2f", l.Ambient)},
		}
	case *lighting.PointLights:
		lines := []Line{{"Ambient", fmt.Sprintf("%.2f", l.Ambient)}}
		for i := 0; i < l.Len(); i++ {
			p, err := l.Light(i)
			if err != nil {
				break
			}
			lines = append(lines, Line{
				fmt.Sprintf("Light %d", i),
				fmt.Sprintf("%s  x%.2f  r%.1f  #%06X", vec(p.Position), p.Intensity, p.Radius, p.RGB),
			})
		}
		return lines
	}
	return nil
}

func vec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}
