package main

import "github.com/hajimehoshi/ebiten/v2"

// fixedStick reports a single standard-layout pad whose left stick never
// moves and whose buttons are never pressed.
type fixedStick struct {
	x, y float32
}

func (fixedStick) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return append(ids, 0)
}

func (fixedStick) IsStandardLayoutAvailable(ebiten.GamepadID) bool { return true }

func (s fixedStick) StandardAxis(_ ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	switch axis {
	case ebiten.StandardGamepadAxisLeftStickHorizontal:
		return float64(s.x)
	case ebiten.StandardGamepadAxisLeftStickVertical:
		return float64(s.y)
	}
	return 0
}

func (fixedStick) StandardButtonPressed(ebiten.GamepadID, ebiten.StandardGamepadButton) bool {
	return false
}

func (fixedStick) AxisCount(ebiten.GamepadID) int                            { return 4 }
func (fixedStick) Axis(ebiten.GamepadID, int) float64                        { return 0 }
func (fixedStick) ButtonPressed(ebiten.GamepadID, ebiten.GamepadButton) bool { return false }
