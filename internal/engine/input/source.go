package input

import (
	"fmt"
	"strings"
)

// Source produces one snapshot per frame. ok is false when no device is
// present.
type Source interface {
	Poll() (b Buttons, ok bool)
}

// Snapshot is one scripted frame of input.
type Snapshot struct {
	Buttons Buttons
	Absent  bool
}

// Scripted replays a fixed list of snapshots, then reports the last one
// forever. An empty script is an absent device.
type Scripted struct {
	frames []Snapshot
	pos    int
}

// NewScripted creates a scripted source.
func NewScripted(frames ...Snapshot) *Scripted {
	return &Scripted{frames: frames}
}

// Hold creates a source holding the same buttons for n frames, then
// releasing them.
func Hold(b Buttons, n int) *Scripted {
	frames := make([]Snapshot, n+1)
	for i := 0; i < n; i++ {
		frames[i].Buttons = b
	}
	return NewScripted(frames...)
}

// Poll implements Source.
func (s *Scripted) Poll() (Buttons, bool) {
	if len(s.frames) == 0 {
		return 0, false
	}
	f := s.frames[s.pos]
	if s.pos < len(s.frames)-1 {
		s.pos++
	}
	return f.Buttons, !f.Absent
}

// ParseScript reads a comma separated list of frames such as
// "start,,,up+a". An empty entry holds nothing and "-" is a frame with no
// device attached.
func ParseScript(script string) (*Scripted, error) {
	if strings.TrimSpace(script) == "" {
		return NewScripted(), nil
	}
	parts := strings.Split(script, ",")
	frames := make([]Snapshot, len(parts))
	for i, part := range parts {
		if strings.TrimSpace(part) == "-" {
			frames[i].Absent = true
			continue
		}
		b, ok := ParseButtons(part)
		if !ok {
			return nil, fmt.Errorf("script frame %d: unknown buttons %q", i, part)
		}
		frames[i].Buttons = b
	}
	return NewScripted(frames...), nil
}

// Absent is a source with no device attached.
type Absent struct{}

// Poll implements Source.
func (Absent) Poll() (Buttons, bool) { return 0, false }
