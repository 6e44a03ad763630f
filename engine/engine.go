// Package engine defines the contract between a host engine and the
// application it drives: value types shared by both sides and the
// capabilities the engine hands out.
package engine

// Justification controls horizontal text alignment relative to the text
// position.
type Justification int

const (
	JustifyLeft Justification = iota
	JustifyCentre
	JustifyRight
)

// Platform describes the display the engine renders to.
type Platform interface {
	Width() float32
	Height() float32
}

// SpriteRenderer draws sprites between Begin and End.
type SpriteRenderer interface {
	Begin()
	DrawSprite(s *Sprite)
	End()
	Close() error
}

// InputManager polls input devices once per call to Update.
type InputManager interface {
	Update()
	// Controller returns the snapshot for the gamepad at index, or nil when
	// no such gamepad is connected.
	Controller(index int) *Controller
	Close() error
}

// Font renders formatted text through a sprite renderer.
type Font interface {
	RenderText(r SpriteRenderer, pos Vector4, scale float32, colour uint32, j Justification, format string, args ...any) error
	Close() error
}

// Engine hands out capabilities to an application.
type Engine interface {
	Platform() Platform
	CreateSpriteRenderer() (SpriteRenderer, error)
	CreateInputManager() (InputManager, error)
	LoadFont(name string) (Font, error)
}

// Application is driven by the engine: Init once, then Update and Render
// every frame until Update returns false, then CleanUp.
type Application interface {
	Init() error
	Update(frameTime float32) bool
	Render()
	CleanUp()
}

// ButtonHook reacts to a button being held during an application update.
type ButtonHook interface {
	ButtonHeld(b Button, c *Controller)
}

// ButtonHookFunc adapts a function to ButtonHook.
type ButtonHookFunc func(b Button, c *Controller)

func (f ButtonHookFunc) ButtonHeld(b Button, c *Controller) {
	f(b, c)
}
