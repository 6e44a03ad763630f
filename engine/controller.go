package engine

import "strings"

// Button is a bitmask of controller buttons.
type Button uint32

const (
	ButtonSelect Button = 1 << iota
	ButtonL3
	ButtonR3
	ButtonStart
	ButtonUp
	ButtonRight
	ButtonDown
	ButtonLeft
	ButtonL2
	ButtonR2
	ButtonL1
	ButtonR1
	ButtonTriangle
	ButtonCircle
	ButtonCross
	ButtonSquare
)

// FaceButtons lists the four face buttons in the order the sample app
// checks them.
var FaceButtons = []Button{ButtonCross, ButtonTriangle, ButtonCircle, ButtonSquare}

var buttonNames = []struct {
	b    Button
	name string
}{
	{ButtonSelect, "select"},
	{ButtonL3, "l3"},
	{ButtonR3, "r3"},
	{ButtonStart, "start"},
	{ButtonUp, "up"},
	{ButtonRight, "right"},
	{ButtonDown, "down"},
	{ButtonLeft, "left"},
	{ButtonL2, "l2"},
	{ButtonR2, "r2"},
	{ButtonL1, "l1"},
	{ButtonR1, "r1"},
	{ButtonTriangle, "triangle"},
	{ButtonCircle, "circle"},
	{ButtonCross, "cross"},
	{ButtonSquare, "square"},
}

// String returns the names of every set bit joined with "|".
func (b Button) String() string {
	if b == 0 {
		return "none"
	}
	var parts []string
	for _, bn := range buttonNames {
		if b&bn.b != 0 {
			parts = append(parts, bn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ParseButton resolves a single button name as printed by String.
func ParseButton(name string) (Button, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, bn := range buttonNames {
		if bn.name == name {
			return bn.b, true
		}
	}
	return 0, false
}

// Controller is a snapshot of one gamepad for the current frame.
type Controller struct {
	LeftStickX  float32
	LeftStickY  float32
	RightStickX float32
	RightStickY float32

	// ButtonsDown holds every button currently held.
	ButtonsDown Button
	// ButtonsPressed and ButtonsReleased hold the edges since the previous poll.
	ButtonsPressed  Button
	ButtonsReleased Button
}

// Held reports whether every button in mask is held.
func (c *Controller) Held(mask Button) bool {
	if c == nil {
		return false
	}
	return c.ButtonsDown&mask == mask
}

// Pressed reports whether any button in mask went down this frame.
func (c *Controller) Pressed(mask Button) bool {
	if c == nil {
		return false
	}
	return c.ButtonsPressed&mask != 0
}

// Released reports whether any button in mask went up this frame.
func (c *Controller) Released(mask Button) bool {
	if c == nil {
		return false
	}
	return c.ButtonsReleased&mask != 0
}
