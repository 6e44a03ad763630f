package backend

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spriteapp/engine"
)

var standardButtons = []struct {
	std ebiten.StandardGamepadButton
	b   engine.Button
}{
	{ebiten.StandardGamepadButtonRightBottom, engine.ButtonCross},
	{ebiten.StandardGamepadButtonRightRight, engine.ButtonCircle},
	{ebiten.StandardGamepadButtonRightLeft, engine.ButtonSquare},
	{ebiten.StandardGamepadButtonRightTop, engine.ButtonTriangle},
	{ebiten.StandardGamepadButtonFrontTopLeft, engine.ButtonL1},
	{ebiten.StandardGamepadButtonFrontTopRight, engine.ButtonR1},
	{ebiten.StandardGamepadButtonFrontBottomLeft, engine.ButtonL2},
	{ebiten.StandardGamepadButtonFrontBottomRight, engine.ButtonR2},
	{ebiten.StandardGamepadButtonCenterLeft, engine.ButtonSelect},
	{ebiten.StandardGamepadButtonCenterRight, engine.ButtonStart},
	{ebiten.StandardGamepadButtonLeftStick, engine.ButtonL3},
	{ebiten.StandardGamepadButtonRightStick, engine.ButtonR3},
	{ebiten.StandardGamepadButtonLeftTop, engine.ButtonUp},
	{ebiten.StandardGamepadButtonLeftBottom, engine.ButtonDown},
	{ebiten.StandardGamepadButtonLeftLeft, engine.ButtonLeft},
	{ebiten.StandardGamepadButtonLeftRight, engine.ButtonRight},
}

// rawButtons follows the Linux hid-playstation button order for pads
// without a standard mapping.
var rawButtons = []struct {
	raw ebiten.GamepadButton
	b   engine.Button
}{
	{ebiten.GamepadButton0, engine.ButtonCross},
	{ebiten.GamepadButton1, engine.ButtonCircle},
	{ebiten.GamepadButton2, engine.ButtonTriangle},
	{ebiten.GamepadButton3, engine.ButtonSquare},
	{ebiten.GamepadButton4, engine.ButtonL1},
	{ebiten.GamepadButton5, engine.ButtonR1},
	{ebiten.GamepadButton6, engine.ButtonL2},
	{ebiten.GamepadButton7, engine.ButtonR2},
	{ebiten.GamepadButton8, engine.ButtonSelect},
	{ebiten.GamepadButton9, engine.ButtonStart},
	{ebiten.GamepadButton11, engine.ButtonL3},
	{ebiten.GamepadButton12, engine.ButtonR3},
}

// InputManager snapshots every connected gamepad on Update. Controller
// index N is the N-th connected pad in Ebitengine's ID order.
type InputManager struct {
	owner    *Engine
	reader   GamepadReader
	deadzone float32

	ids         []ebiten.GamepadID
	controllers []engine.Controller
	prev        map[ebiten.GamepadID]engine.Button
	closed      bool
}

var _ engine.InputManager = (*InputManager)(nil)

func NewInputManager(reader GamepadReader, deadzone float32) *InputManager {
	if reader == nil {
		reader = EbitenGamepads{}
	}
	return &InputManager{
		reader:   reader,
		deadzone: deadzone,
		prev:     map[ebiten.GamepadID]engine.Button{},
	}
}

func (m *InputManager) Update() {
	if m.closed {
		return
	}
	m.ids = m.reader.AppendGamepadIDs(m.ids[:0])
	m.controllers = m.controllers[:0]

	next := make(map[ebiten.GamepadID]engine.Button, len(m.ids))
	for _, id := range m.ids {
		c := m.poll(id)

		last := m.prev[id]
		changed := c.ButtonsDown ^ last
		c.ButtonsPressed = changed & c.ButtonsDown
		c.ButtonsReleased = changed & last

		next[id] = c.ButtonsDown
		m.controllers = append(m.controllers, c)
	}
	m.prev = next
}

func (m *InputManager) Controller(index int) *engine.Controller {
	if index < 0 || index >= len(m.controllers) {
		return nil
	}
	return &m.controllers[index]
}

// Count returns how many gamepads the last Update saw.
func (m *InputManager) Count() int {
	return len(m.controllers)
}

// SetDeadzone applies from the next Update.
func (m *InputManager) SetDeadzone(d float32) {
	m.deadzone = d
}

func (m *InputManager) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	m.controllers = nil
	m.prev = map[ebiten.GamepadID]engine.Button{}
	if m.owner != nil {
		m.owner.releaseInput(m)
		m.owner = nil
	}
	return nil
}

func (m *InputManager) poll(id ebiten.GamepadID) engine.Controller {
	var c engine.Controller
	r := m.reader

	if r.IsStandardLayoutAvailable(id) {
		c.LeftStickX = float32(r.StandardAxis(id, ebiten.StandardGamepadAxisLeftStickHorizontal))
		c.LeftStickY = float32(r.StandardAxis(id, ebiten.StandardGamepadAxisLeftStickVertical))
		c.RightStickX = float32(r.StandardAxis(id, ebiten.StandardGamepadAxisRightStickHorizontal))
		c.RightStickY = float32(r.StandardAxis(id, ebiten.StandardGamepadAxisRightStickVertical))
		for _, sb := range standardButtons {
			if r.StandardButtonPressed(id, sb.std) {
				c.ButtonsDown |= sb.b
			}
		}
	} else {
		axes := [4]float32{}
		n := min(r.AxisCount(id), len(axes))
		for i := 0; i < n; i++ {
			axes[i] = float32(r.Axis(id, i))
		}
		c.LeftStickX, c.LeftStickY, c.RightStickX, c.RightStickY = axes[0], axes[1], axes[2], axes[3]
		for _, rb := range rawButtons {
			if r.ButtonPressed(id, rb.raw) {
				c.ButtonsDown |= rb.b
			}
		}
	}

	c.LeftStickX, c.LeftStickY = applyDeadzone(c.LeftStickX, c.LeftStickY, m.deadzone)
	c.RightStickX, c.RightStickY = applyDeadzone(c.RightStickX, c.RightStickY, m.deadzone)
	return c
}

// applyDeadzone zeroes a stick whose deflection is inside the radius.
func applyDeadzone(x, y, deadzone float32) (float32, float32) {
	if deadzone <= 0 {
		return x, y
	}
	if math.Hypot(float64(x), float64(y)) < float64(deadzone) {
		return 0, 0
	}
	return x, y
}
