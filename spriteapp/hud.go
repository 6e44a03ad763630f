package spriteapp

import (
	"fmt"

	"github.com/milk9111/spriteapp/engine"
)

const (
	fpsFormat   = "FPS: %.1f xpos: %.1f"
	angleFormat = "Angle: %.1f"
)

// HUDLayout places the two HUD lines on screen.
type HUDLayout struct {
	FPS     engine.Vector4
	Angle   engine.Vector4
	Scale   float32
	Colour  uint32
	Justify engine.Justification
}

func DefaultHUDLayout() HUDLayout {
	return HUDLayout{
		FPS:     engine.NewVector4(650, 510, -0.9),
		Angle:   engine.NewVector4(150, 510, -0.9),
		Scale:   1,
		Colour:  0xffffffff,
		Justify: engine.JustifyLeft,
	}
}

// HUDLines returns the HUD text as it is currently drawn.
func (a *SpriteApp) HUDLines() []string {
	return []string{
		fmt.Sprintf(fpsFormat, a.fps, a.sprite.Position.X),
		fmt.Sprintf(angleFormat, a.angle),
	}
}

// SetHUD replaces the HUD layout used by subsequent Render calls.
func (a *SpriteApp) SetHUD(l HUDLayout) {
	a.opts.HUD = l
}

func (a *SpriteApp) drawHUD() {
	if a.font == nil {
		return
	}
	hud := a.opts.HUD
	if err := a.font.RenderText(a.renderer, hud.FPS, hud.Scale, hud.Colour, hud.Justify, fpsFormat, a.fps, a.sprite.Position.X); err != nil {
		a.logOnce("hud", "spriteapp: render fps: %v", err)
	}
	if err := a.font.RenderText(a.renderer, hud.Angle, hud.Scale, hud.Colour, hud.Justify, angleFormat, a.angle); err != nil {
		a.logOnce("hud", "spriteapp: render angle: %v", err)
	}
}
