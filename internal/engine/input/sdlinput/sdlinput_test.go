package sdlinput

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/vertexshade/internal/engine/input"
)

func TestKeyboardButtons(t *testing.T) {
	state := make([]uint8, 512)
	state[sdl.SCANCODE_UP] = 1
	state[sdl.SCANCODE_RETURN] = 1

	if got := keyboardButtons(state); got != input.Up|input.Start {
		t.Errorf("keyboardButtons = %v, want up+start", got)
	}
	if got := keyboardButtons(nil); got != 0 {
		t.Errorf("keyboardButtons(nil) = %v, want none", got)
	}
}
