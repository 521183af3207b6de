package ebitensink

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Faultbox/vertexshade/internal/engine/input"
)

var keyMap = []struct {
	key    ebiten.Key
	button input.Buttons
}{
	{ebiten.KeyArrowUp, input.Up},
	{ebiten.KeyArrowDown, input.Down},
	{ebiten.KeyArrowLeft, input.Left},
	{ebiten.KeyArrowRight, input.Right},
	{ebiten.KeyZ, input.A},
	{ebiten.KeyX, input.B},
	{ebiten.KeyA, input.X},
	{ebiten.KeyS, input.Y},
	{ebiten.KeyEnter, input.Start},
}

var padMap = []struct {
	button ebiten.StandardGamepadButton
	mask   input.Buttons
}{
	{ebiten.StandardGamepadButtonLeftTop, input.Up},
	{ebiten.StandardGamepadButtonLeftBottom, input.Down},
	{ebiten.StandardGamepadButtonLeftLeft, input.Left},
	{ebiten.StandardGamepadButtonLeftRight, input.Right},
	{ebiten.StandardGamepadButtonRightBottom, input.A},
	{ebiten.StandardGamepadButtonRightRight, input.B},
	{ebiten.StandardGamepadButtonRightLeft, input.X},
	{ebiten.StandardGamepadButtonRightTop, input.Y},
	{ebiten.StandardGamepadButtonCenterRight, input.Start},
}

// Source reads the first standard-layout gamepad and, optionally, the
// keyboard. It must be polled from the game's Update.
type Source struct {
	Keyboard bool

	ids []ebiten.GamepadID
}

// Poll implements input.Source.
func (s *Source) Poll() (input.Buttons, bool) {
	var b input.Buttons
	present := false

	s.ids = ebiten.AppendGamepadIDs(s.ids[:0])
	for _, id := range s.ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		present = true
		for _, m := range padMap {
			if ebiten.IsStandardGamepadButtonPressed(id, m.button) {
				b |= m.mask
			}
		}
		break
	}

	if s.Keyboard {
		present = true
		for _, m := range keyMap {
			if ebiten.IsKeyPressed(m.key) {
				b |= m.button
			}
		}
	}
	return b, present
}
