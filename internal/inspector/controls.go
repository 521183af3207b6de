package inspector

import "github.com/Faultbox/vertexshade/internal/engine/input"

// Controls merges held keys with one-frame presses from panel buttons.
type Controls struct {
	// Keys are the buttons held on the keyboard this frame.
	Keys input.Buttons
	// Detached reports no device, as if the controller was unplugged.
	Detached bool

	click input.Buttons
}

// Press holds b for the next polled frame only.
func (c *Controls) Press(b input.Buttons) {
	c.click |= b
}

// Poll implements input.Source.
func (c *Controls) Poll() (input.Buttons, bool) {
	b := c.Keys | c.click
	c.click = 0
	return b, !c.Detached
}
