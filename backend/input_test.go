package backend

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spriteapp/engine"
)

type fakePad struct {
	standard   bool
	stdAxes    map[ebiten.StandardGamepadAxis]float64
	stdButtons map[ebiten.StandardGamepadButton]bool
	axes       []float64
	buttons    map[ebiten.GamepadButton]bool
}

type fakePads struct {
	order []ebiten.GamepadID
	pads  map[ebiten.GamepadID]*fakePad
}

func newFakePads() *fakePads {
	return &fakePads{pads: map[ebiten.GamepadID]*fakePad{}}
}

func (f *fakePads) connect(id ebiten.GamepadID, p *fakePad) {
	f.order = append(f.order, id)
	f.pads[id] = p
}

func (f *fakePads) disconnect(id ebiten.GamepadID) {
	for i, x := range f.order {
		if x == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	delete(f.pads, id)
}

func (f *fakePads) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return append(ids, f.order...)
}

func (f *fakePads) IsStandardLayoutAvailable(id ebiten.GamepadID) bool {
	return f.pads[id].standard
}

func (f *fakePads) StandardAxis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	return f.pads[id].stdAxes[axis]
}

func (f *fakePads) StandardButtonPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return f.pads[id].stdButtons[b]
}

func (f *fakePads) AxisCount(id ebiten.GamepadID) int {
	return len(f.pads[id].axes)
}

func (f *fakePads) Axis(id ebiten.GamepadID, axis int) float64 {
	return f.pads[id].axes[axis]
}

func (f *fakePads) ButtonPressed(id ebiten.GamepadID, b ebiten.GamepadButton) bool {
	return f.pads[id].buttons[b]
}

func standardPad() *fakePad {
	return &fakePad{
		standard:   true,
		stdAxes:    map[ebiten.StandardGamepadAxis]float64{},
		stdButtons: map[ebiten.StandardGamepadButton]bool{},
	}
}

func TestInputManagerNoPads(t *testing.T) {
	m := NewInputManager(newFakePads(), 0)
	m.Update()
	if m.Controller(0) != nil {
		t.Fatalf("expected no controller")
	}
	if m.Count() != 0 {
		t.Fatalf("Count() = %d", m.Count())
	}
}

func TestInputManagerStandardLayout(t *testing.T) {
	pads := newFakePads()
	p := standardPad()
	p.stdAxes[ebiten.StandardGamepadAxisLeftStickHorizontal] = 0.5
	p.stdAxes[ebiten.StandardGamepadAxisLeftStickVertical] = -1
	p.stdAxes[ebiten.StandardGamepadAxisRightStickHorizontal] = 0.25
	p.stdAxes[ebiten.StandardGamepadAxisRightStickVertical] = 0.75
	p.stdButtons[ebiten.StandardGamepadButtonRightBottom] = true
	p.stdButtons[ebiten.StandardGamepadButtonCenterRight] = true
	p.stdButtons[ebiten.StandardGamepadButtonCenterLeft] = true
	p.stdButtons[ebiten.StandardGamepadButtonRightTop] = true
	pads.connect(3, p)

	m := NewInputManager(pads, 0)
	m.Update()

	c := m.Controller(0)
	if c == nil {
		t.Fatalf("expected controller 0")
	}
	if c.LeftStickX != 0.5 || c.LeftStickY != -1 || c.RightStickX != 0.25 || c.RightStickY != 0.75 {
		t.Fatalf("unexpected axes %+v", c)
	}
	want := engine.ButtonCross | engine.ButtonStart | engine.ButtonSelect | engine.ButtonTriangle
	if c.ButtonsDown != want {
		t.Fatalf("ButtonsDown = %v, want %v", c.ButtonsDown, want)
	}
	if m.Controller(1) != nil || m.Controller(-1) != nil {
		t.Fatalf("out of range index should be nil")
	}
}

func TestInputManagerStandardMappingComplete(t *testing.T) {
	var all engine.Button
	for _, sb := range standardButtons {
		if all&sb.b != 0 {
			t.Fatalf("button %v mapped twice", sb.b)
		}
		all |= sb.b
	}
	if all != engine.ButtonSquare<<1-1 {
		t.Fatalf("standard mapping covers %v", all)
	}
}

func TestInputManagerRawFallback(t *testing.T) {
	pads := newFakePads()
	pads.connect(1, &fakePad{
		axes: []float64{-0.5, 0.5},
		buttons: map[ebiten.GamepadButton]bool{
			ebiten.GamepadButton3: true,
			ebiten.GamepadButton9: true,
		},
	})

	m := NewInputManager(pads, 0)
	m.Update()

	c := m.Controller(0)
	if c.LeftStickX != -0.5 || c.LeftStickY != 0.5 || c.RightStickX != 0 || c.RightStickY != 0 {
		t.Fatalf("unexpected axes %+v", c)
	}
	if c.ButtonsDown != engine.ButtonSquare|engine.ButtonStart {
		t.Fatalf("ButtonsDown = %v", c.ButtonsDown)
	}
}

func TestInputManagerEdges(t *testing.T) {
	pads := newFakePads()
	p := standardPad()
	pads.connect(0, p)
	m := NewInputManager(pads, 0)

	cross := ebiten.StandardGamepadButtonRightBottom
	circle := ebiten.StandardGamepadButtonRightRight

	steps := []struct {
		name     string
		held     []ebiten.StandardGamepadButton
		down     engine.Button
		pressed  engine.Button
		released engine.Button
	}{
		{"press_cross", []ebiten.StandardGamepadButton{cross}, engine.ButtonCross, engine.ButtonCross, 0},
		{"hold_cross", []ebiten.StandardGamepadButton{cross}, engine.ButtonCross, 0, 0},
		{"swap_to_circle", []ebiten.StandardGamepadButton{circle}, engine.ButtonCircle, engine.ButtonCircle, engine.ButtonCross},
		{"release_all", nil, 0, 0, engine.ButtonCircle},
	}

	for _, s := range steps {
		p.stdButtons = map[ebiten.StandardGamepadButton]bool{}
		for _, b := range s.held {
			p.stdButtons[b] = true
		}
		m.Update()
		c := m.Controller(0)
		if c.ButtonsDown != s.down || c.ButtonsPressed != s.pressed || c.ButtonsReleased != s.released {
			t.Fatalf("%s: got down=%v pressed=%v released=%v", s.name, c.ButtonsDown, c.ButtonsPressed, c.ButtonsReleased)
		}
	}
}

func TestInputManagerReconnectForgetsState(t *testing.T) {
	pads := newFakePads()
	p := standardPad()
	p.stdButtons[ebiten.StandardGamepadButtonRightBottom] = true
	pads.connect(0, p)
	m := NewInputManager(pads, 0)

	m.Update()
	pads.disconnect(0)
	m.Update()
	if m.Controller(0) != nil {
		t.Fatalf("disconnected pad still reported")
	}

	pads.connect(0, p)
	m.Update()
	if !m.Controller(0).Pressed(engine.ButtonCross) {
		t.Fatalf("reconnected pad should report a fresh press")
	}
}

func TestInputManagerDeadzone(t *testing.T) {
	cases := []struct {
		name     string
		x, y     float64
		deadzone float32
		wantX    float32
		wantY    float32
	}{
		{"off", 0.05, -0.05, 0, 0.05, -0.05},
		{"inside", 0.05, -0.05, 0.1, 0, 0},
		{"outside", 0.5, 0, 0.1, 0.5, 0},
		{"diagonal_outside", 0.08, 0.08, 0.1, 0.08, 0.08},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pads := newFakePads()
			p := standardPad()
			p.stdAxes[ebiten.StandardGamepadAxisLeftStickHorizontal] = c.x
			p.stdAxes[ebiten.StandardGamepadAxisLeftStickVertical] = c.y
			pads.connect(0, p)

			m := NewInputManager(pads, c.deadzone)
			m.Update()
			got := m.Controller(0)
			if got.LeftStickX != c.wantX || got.LeftStickY != c.wantY {
				t.Fatalf("left stick = (%v, %v), want (%v, %v)", got.LeftStickX, got.LeftStickY, c.wantX, c.wantY)
			}
		})
	}
}

func TestInputManagerClose(t *testing.T) {
	pads := newFakePads()
	pads.connect(0, standardPad())
	m := NewInputManager(pads, 0)
	m.Update()

	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	m.Update()
	if m.Controller(0) != nil {
		t.Fatalf("closed input manager should report nothing")
	}
}

func TestEngineSetDeadzone(t *testing.T) {
	pads := newFakePads()
	p := standardPad()
	p.stdAxes[ebiten.StandardGamepadAxisLeftStickHorizontal] = 0.05
	pads.connect(0, p)

	eng := New(Options{Gamepads: pads})
	in, err := eng.CreateInputManager()
	if err != nil {
		t.Fatal(err)
	}
	in.Update()
	if got := in.Controller(0).LeftStickX; got != 0.05 {
		t.Fatalf("no deadzone: left x = %v", got)
	}

	eng.SetDeadzone(0.1)
	in.Update()
	if got := in.Controller(0).LeftStickX; got != 0 {
		t.Fatalf("deadzone not applied to live manager: left x = %v", got)
	}

	if err := in.Close(); err != nil {
		t.Fatal(err)
	}
	if len(eng.inputs) != 0 {
		t.Fatalf("closed input manager still tracked")
	}
	eng.SetDeadzone(0.2)
	later, _ := eng.CreateInputManager()
	if later.(*InputManager).deadzone != 0.2 {
		t.Fatalf("new managers should pick up the current deadzone")
	}
}
