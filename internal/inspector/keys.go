package inspector

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/vertexshade/internal/engine/input"
)

var keyMap = []struct {
	key    imgui.Key
	button input.Buttons
}{
	{imgui.KeyUpArrow, input.Up},
	{imgui.KeyDownArrow, input.Down},
	{imgui.KeyLeftArrow, input.Left},
	{imgui.KeyRightArrow, input.Right},
	{imgui.KeyZ, input.A},
	{imgui.KeyX, input.B},
	{imgui.KeyA, input.X},
	{imgui.KeyS, input.Y},
	{imgui.KeyEnter, input.Start},
}

// heldKeys reads the keyboard unless a widget has keyboard focus.
func heldKeys() input.Buttons {
	if imgui.IsAnyItemActive() {
		return 0
	}
	var b input.Buttons
	for _, m := range keyMap {
		if imgui.IsKeyDown(m.key) {
			b |= m.button
		}
	}
	return b
}
