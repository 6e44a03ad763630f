package main

import (
	"strings"

	"github.com/milk9111/spriteapp/config"
	"github.com/milk9111/spriteapp/engine"
	"github.com/milk9111/spriteapp/spriteapp"
)

func appOptions(cfg config.Config) spriteapp.Options {
	opts := spriteapp.DefaultOptions()
	opts.SpriteWidth = cfg.Sprite.Width
	opts.SpriteHeight = cfg.Sprite.Height
	opts.SpriteColour = cfg.Sprite.Colour.ABGR()
	opts.FontName = cfg.Font
	opts.HUD = hudLayout(cfg.HUD)
	opts.ControllerIndex = cfg.Input.Controller
	opts.LogAxes = cfg.Debug.LogAxes
	return opts
}

func hudLayout(h config.HUDConfig) spriteapp.HUDLayout {
	return spriteapp.HUDLayout{
		FPS:     engine.NewVector4(h.FPS.X, h.FPS.Y, h.FPS.Z),
		Angle:   engine.NewVector4(h.Angle.X, h.Angle.Y, h.Angle.Z),
		Scale:   h.Scale,
		Colour:  h.Colour.ABGR(),
		Justify: justification(h.Justify),
	}
}

func justification(s string) engine.Justification {
	switch strings.ToLower(s) {
	case "centre", "center":
		return engine.JustifyCentre
	case "right":
		return engine.JustifyRight
	default:
		return engine.JustifyLeft
	}
}
