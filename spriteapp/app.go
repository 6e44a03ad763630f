// Package spriteapp is the gamepad sample: one sprite spun by the left stick
// and a two line HUD, driven through the engine lifecycle.
package spriteapp

import (
	"fmt"
	"log"

	"github.com/milk9111/spriteapp/engine"
)

// FixedX is where every completed update leaves the sprite horizontally.
const FixedX = 430

const exitCombo = engine.ButtonStart | engine.ButtonSelect

type Options struct {
	SpriteWidth  float32
	SpriteHeight float32
	SpriteColour uint32
	FontName     string
	HUD          HUDLayout
	// ControllerIndex selects which connected gamepad drives the sprite.
	ControllerIndex int
	// LogAxes logs the four stick axes on every update.
	LogAxes bool
	Hook    engine.ButtonHook
	Logger  *log.Logger
}

func DefaultOptions() Options {
	return Options{
		SpriteWidth:  32,
		SpriteHeight: 32,
		SpriteColour: 0xffffffff,
		FontName:     "comic_sans",
		HUD:          DefaultHUDLayout(),
	}
}

// Snapshot is a copy of the per-frame state for overlays.
type Snapshot struct {
	FPS        float32
	Angle      float32
	Sprite     engine.Sprite
	Controller engine.Controller
	Connected  bool
}

type SpriteApp struct {
	eng  engine.Engine
	opts Options
	log  *log.Logger

	renderer engine.SpriteRenderer
	input    engine.InputManager
	font     engine.Font

	sprite engine.Sprite
	fps    float32
	angle  float32

	controller engine.Controller
	connected  bool

	logged map[string]bool
}

var _ engine.Application = (*SpriteApp)(nil)

func New(eng engine.Engine, opts Options) *SpriteApp {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Hook == nil {
		opts.Hook = NewLogHook(logger)
	}
	return &SpriteApp{
		eng:    eng,
		opts:   opts,
		log:    logger,
		sprite: engine.NewSprite(),
		logged: map[string]bool{},
	}
}

func (a *SpriteApp) Init() error {
	renderer, err := a.eng.CreateSpriteRenderer()
	if err != nil {
		return fmt.Errorf("spriteapp: create sprite renderer: %w", err)
	}
	a.renderer = renderer

	a.initFont()

	platform := a.eng.Platform()
	a.sprite.SetPosition(platform.Width()*0.5, platform.Height()*0.5, 0)
	a.sprite.Width = a.opts.SpriteWidth
	a.sprite.Height = a.opts.SpriteHeight
	a.sprite.Colour = a.opts.SpriteColour

	input, err := a.eng.CreateInputManager()
	if err != nil {
		return fmt.Errorf("spriteapp: create input manager: %w", err)
	}
	a.input = input
	return nil
}

// initFont leaves the font nil on failure; the HUD is skipped without one.
func (a *SpriteApp) initFont() {
	font, err := a.eng.LoadFont(a.opts.FontName)
	if err != nil {
		a.log.Printf("spriteapp: load font %q: %v", a.opts.FontName, err)
		return
	}
	a.font = font
}

// Update advances one frame. It returns false once Start and Select are held
// together; that frame leaves the sprite untouched.
func (a *SpriteApp) Update(frameTime float32) bool {
	a.angle = 0
	a.fps = 1 / frameTime

	pos := a.sprite.Position

	if a.input != nil {
		a.input.Update()

		a.connected = false
		a.controller = engine.Controller{}
		if c := a.input.Controller(a.opts.ControllerIndex); c != nil {
			a.connected = true
			a.controller = *c

			if a.opts.LogAxes {
				a.log.Printf(" LX: %f ", c.LeftStickX)
				a.log.Printf(" LY: %f ", c.LeftStickY)
				a.log.Printf(" RX: %f ", c.RightStickX)
				a.log.Printf(" RY: %f ", c.RightStickY)
			}

			a.angle = StickAngle(c.LeftStickX, c.LeftStickY)

			if c.Held(exitCombo) {
				return false
			}

			for _, b := range engine.FaceButtons {
				if !c.Held(b) {
					continue
				}
				if b == engine.ButtonTriangle {
					pos.X = FixedX
				}
				a.opts.Hook.ButtonHeld(b, c)
			}
		}
	}

	pos.X = FixedX
	a.sprite.Rotation += a.angle
	a.sprite.Position = pos

	return true
}

func (a *SpriteApp) Render() {
	if a.renderer == nil {
		return
	}
	a.renderer.Begin()
	a.renderer.DrawSprite(&a.sprite)
	a.drawHUD()
	a.renderer.End()
}

func (a *SpriteApp) CleanUp() {
	if a.font != nil {
		if err := a.font.Close(); err != nil {
			a.log.Printf("spriteapp: close font: %v", err)
		}
		a.font = nil
	}
	if a.input != nil {
		if err := a.input.Close(); err != nil {
			a.log.Printf("spriteapp: close input manager: %v", err)
		}
		a.input = nil
	}
	if a.renderer != nil {
		if err := a.renderer.Close(); err != nil {
			a.log.Printf("spriteapp: close sprite renderer: %v", err)
		}
		a.renderer = nil
	}
}

func (a *SpriteApp) Snapshot() Snapshot {
	return Snapshot{
		FPS:        a.fps,
		Angle:      a.angle,
		Sprite:     a.sprite,
		Controller: a.controller,
		Connected:  a.connected,
	}
}

// SetInput changes which controller drives the sprite and whether its axes
// are logged, starting with the next Update.
func (a *SpriteApp) SetInput(controllerIndex int, logAxes bool) {
	a.opts.ControllerIndex = controllerIndex
	a.opts.LogAxes = logAxes
}

// Sprite returns a copy of the sprite.
func (a *SpriteApp) Sprite() engine.Sprite {
	return a.sprite
}

func (a *SpriteApp) logOnce(key, format string, args ...any) {
	if a.logged[key] {
		return
	}
	a.logged[key] = true
	a.log.Printf(format, args...)
}
