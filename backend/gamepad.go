package backend

import "github.com/hajimehoshi/ebiten/v2"

// GamepadReader is the slice of Ebitengine's gamepad API the input manager
// uses.
type GamepadReader interface {
	AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID
	IsStandardLayoutAvailable(id ebiten.GamepadID) bool
	StandardAxis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64
	StandardButtonPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool
	AxisCount(id ebiten.GamepadID) int
	Axis(id ebiten.GamepadID, axis int) float64
	ButtonPressed(id ebiten.GamepadID, b ebiten.GamepadButton) bool
}

// EbitenGamepads reads the live gamepad state.
type EbitenGamepads struct{}

func (EbitenGamepads) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(ids)
}

func (EbitenGamepads) IsStandardLayoutAvailable(id ebiten.GamepadID) bool {
	return ebiten.IsStandardGamepadLayoutAvailable(id)
}

func (EbitenGamepads) StandardAxis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, axis)
}

func (EbitenGamepads) StandardButtonPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, b)
}

func (EbitenGamepads) AxisCount(id ebiten.GamepadID) int {
	return ebiten.GamepadAxisCount(id)
}

func (EbitenGamepads) Axis(id ebiten.GamepadID, axis int) float64 {
	return ebiten.GamepadAxisValue(id, axis)
}

func (EbitenGamepads) ButtonPressed(id ebiten.GamepadID, b ebiten.GamepadButton) bool {
	return ebiten.IsGamepadButtonPressed(id, b)
}
