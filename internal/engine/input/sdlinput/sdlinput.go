// Package sdlinput reads buttons from SDL2 events, the keyboard and game
// controllers.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/vertexshade/internal/engine/input"
)

// keyMap binds keyboard scancodes to buttons.
var keyMap = map[sdl.Scancode]input.Buttons{
	sdl.SCANCODE_UP:     input.Up,
	sdl.SCANCODE_DOWN:   input.Down,
	sdl.SCANCODE_LEFT:   input.Left,
	sdl.SCANCODE_RIGHT:  input.Right,
	sdl.SCANCODE_Z:      input.A,
	sdl.SCANCODE_X:      input.B,
	sdl.SCANCODE_A:      input.X,
	sdl.SCANCODE_S:      input.Y,
	sdl.SCANCODE_RETURN: input.Start,
}

// padMap binds game controller buttons to buttons.
var padMap = map[sdl.GameControllerButton]input.Buttons{
	sdl.CONTROLLER_BUTTON_DPAD_UP:    input.Up,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:  input.Down,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:  input.Left,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT: input.Right,
	sdl.CONTROLLER_BUTTON_A:          input.A,
	sdl.CONTROLLER_BUTTON_B:          input.B,
	sdl.CONTROLLER_BUTTON_X:          input.X,
	sdl.CONTROLLER_BUTTON_Y:          input.Y,
	sdl.CONTROLLER_BUTTON_START:      input.Start,
}

// Input reads SDL events, the keyboard and the first game controller.
// SDL must be initialized with INIT_GAMECONTROLLER for pads to show up.
type Input struct {
	pad      *sdl.GameController
	keyboard bool
	quit     bool

	// Screenshot is set when F12 went down during the last Update.
	Screenshot bool
}

// New creates a new input handler. With keyboard set, the keyboard counts
// as a present device even when no controller is attached.
func New(keyboard bool) *Input {
	i := &Input{keyboard: keyboard}
	i.openPad()
	return i
}

// Update drains SDL events. Returns true if the app should quit.
func (i *Input) Update() bool {
	i.Screenshot = false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.quit = true

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			switch e.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				i.quit = true
			case sdl.SCANCODE_F12:
				i.Screenshot = true
			}

		case *sdl.ControllerDeviceEvent:
			switch e.Type {
			case sdl.CONTROLLERDEVICEADDED:
				if i.pad == nil {
					i.openPad()
				}
			case sdl.CONTROLLERDEVICEREMOVED:
				if i.pad != nil && !i.pad.Attached() {
					i.pad.Close()
					i.pad = nil
				}
			}
		}
	}

	return i.quit
}

// Poll implements input.Source.
func (i *Input) Poll() (input.Buttons, bool) {
	var b input.Buttons
	present := false

	if i.pad != nil && i.pad.Attached() {
		present = true
		for btn, mask := range padMap {
			if i.pad.Button(btn) != 0 {
				b |= mask
			}
		}
	}
	if i.keyboard {
		present = true
		b |= keyboardButtons(sdl.GetKeyboardState())
	}
	return b, present
}

// Close releases the controller.
func (i *Input) Close() {
	if i.pad != nil {
		i.pad.Close()
		i.pad = nil
	}
}

func (i *Input) openPad() {
	for n := 0; n < sdl.NumJoysticks(); n++ {
		if sdl.IsGameController(n) {
			i.pad = sdl.GameControllerOpen(n)
			if i.pad != nil {
				return
			}
		}
	}
}

// keyboardButtons maps an SDL keyboard state array to buttons.
func keyboardButtons(state []uint8) input.Buttons {
	var b input.Buttons
	for code, mask := range keyMap {
		if int(code) < len(state) && state[code] != 0 {
			b |= mask
		}
	}
	return b
}
