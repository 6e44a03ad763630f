// Package backend implements the engine contract on Ebitengine.
package backend

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spriteapp/common"
	"github.com/milk9111/spriteapp/engine"
)

type Options struct {
	Width  int
	Height int
	// ClearColour is the ABGR colour Begin fills the screen with.
	ClearColour uint32
	// Deadzone is applied to both sticks of every controller.
	Deadzone float32
	// Gamepads defaults to the live Ebitengine gamepad state.
	Gamepads GamepadReader
}

type Engine struct {
	opts      Options
	platform  platform
	gamepads  GamepadReader
	renderers []*Renderer
	inputs    []*InputManager
}

var _ engine.Engine = (*Engine)(nil)

func New(opts Options) *Engine {
	if opts.Width <= 0 {
		opts.Width = common.BaseWidth
	}
	if opts.Height <= 0 {
		opts.Height = common.BaseHeight
	}
	gamepads := opts.Gamepads
	if gamepads == nil {
		gamepads = EbitenGamepads{}
	}
	return &Engine{
		opts:     opts,
		platform: platform{w: opts.Width, h: opts.Height},
		gamepads: gamepads,
	}
}

func (e *Engine) Platform() engine.Platform {
	return e.platform
}

func (e *Engine) CreateSpriteRenderer() (engine.SpriteRenderer, error) {
	r := newRenderer(e)
	e.renderers = append(e.renderers, r)
	return r, nil
}

func (e *Engine) CreateInputManager() (engine.InputManager, error) {
	m := NewInputManager(e.gamepads, e.opts.Deadzone)
	m.owner = e
	e.inputs = append(e.inputs, m)
	return m, nil
}

func (e *Engine) LoadFont(name string) (engine.Font, error) {
	f, err := LoadFont(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Bind points every live renderer at screen for the coming Render call.
func (e *Engine) Bind(screen *ebiten.Image) {
	for _, r := range e.renderers {
		r.target = screen
	}
}

// SetClearColour changes the ABGR clear colour of every renderer.
func (e *Engine) SetClearColour(c uint32) {
	e.opts.ClearColour = c
	for _, r := range e.renderers {
		r.setClearColour(c)
	}
}

// SetDeadzone changes the stick deadzone of every live input manager.
func (e *Engine) SetDeadzone(d float32) {
	e.opts.Deadzone = d
	for _, m := range e.inputs {
		m.SetDeadzone(d)
	}
}

func (e *Engine) Size() (int, int) {
	return e.platform.w, e.platform.h
}

func (e *Engine) release(r *Renderer) {
	e.renderers = slices.DeleteFunc(e.renderers, func(x *Renderer) bool { return x == r })
}

func (e *Engine) releaseInput(m *InputManager) {
	e.inputs = slices.DeleteFunc(e.inputs, func(x *InputManager) bool { return x == m })
}

type platform struct {
	w, h int
}

func (p platform) Width() float32  { return float32(p.w) }
func (p platform) Height() float32 { return float32(p.h) }
