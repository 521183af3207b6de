// Package input provides controller snapshots for the demos.
//
// A snapshot is a bitmask of held buttons. Sources report whether a device
// was present; an absent device means the frame runs without input.
package input

import "strings"

// Buttons is a set of held buttons.
type Buttons uint16

// Button bits.
const (
	Up Buttons = 1 << iota
	Down
	Left
	Right
	A
	B
	X
	Y
	Start
)

var buttonNames = []struct {
	b    Buttons
	name string
}{
	{Up, "up"},
	{Down, "down"},
	{Left, "left"},
	{Right, "right"},
	{A, "a"},
	{B, "b"},
	{X, "x"},
	{Y, "y"},
	{Start, "start"},
}

// Has reports whether every button in mask is held.
func (b Buttons) Has(mask Buttons) bool {
	return b&mask == mask
}

// String lists held buttons, e.g. "a+start".
func (b Buttons) String() string {
	if b == 0 {
		return "none"
	}
	var parts []string
	for _, n := range buttonNames {
		if b&n.b != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// Edge returns the buttons held in cur that were not held in prev.
func Edge(prev, cur Buttons) Buttons {
	return cur &^ prev
}

// ParseButtons parses a "+"-separated list as produced by String.
func ParseButtons(s string) (Buttons, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return 0, true
	}
	var out Buttons
outer:
	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		for _, n := range buttonNames {
			if n.name == part {
				out |= n.b
				continue outer
			}
		}
		return 0, false
	}
	return out, true
}
