// Package config loads the sample's YAML settings.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/spriteapp/common"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Window WindowConfig `yaml:"window"`
	TPS    int          `yaml:"tps"`
	Clear  Colour       `yaml:"clear_colour"`
	Font   string       `yaml:"font"`
	Sprite SpriteConfig `yaml:"sprite"`
	HUD    HUDConfig    `yaml:"hud"`
	Input  InputConfig  `yaml:"input"`
	Debug  DebugConfig  `yaml:"debug"`
	// Script is an optional tengo file run for held face buttons.
	Script string `yaml:"script"`

	// Path is the file the configuration came from, empty for the embedded
	// default.
	Path string `yaml:"-"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

type SpriteConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Colour Colour  `yaml:"colour"`
}

type Point struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

type HUDConfig struct {
	FPS     Point   `yaml:"fps"`
	Angle   Point   `yaml:"angle"`
	Scale   float32 `yaml:"scale"`
	Colour  Colour  `yaml:"colour"`
	Justify string  `yaml:"justify"`
}

type InputConfig struct {
	Controller int `yaml:"controller"`
	// Deadzone is a stick radius below which both axes read exactly zero.
	Deadzone float32 `yaml:"deadzone"`
}

type DebugConfig struct {
	LogAxes bool `yaml:"log_axes"`
	Overlay bool `yaml:"overlay"`
}

// Default returns the embedded configuration.
func Default() Config {
	cfg, err := Parse(defaultData)
	if err != nil {
		panic("config: embedded default: " + err.Error())
	}
	return cfg
}

// Load reads path (see Read) over the embedded defaults and validates the
// result.
func Load(path string) (Config, error) {
	data, source, err := Read(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if source != "" {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: unmarshal %s: %w", source, err)
		}
	}
	cfg.Path = source

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes data without applying defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	}
	if strings.TrimSpace(c.Font) == "" {
		return fmt.Errorf("%w: empty font name", ErrInvalid)
	}
	if c.Sprite.Width <= 0 || c.Sprite.Height <= 0 {
		return fmt.Errorf("%w: sprite size %vx%v", ErrInvalid, c.Sprite.Width, c.Sprite.Height)
	}
	if c.HUD.Scale <= 0 {
		return fmt.Errorf("%w: hud scale %v", ErrInvalid, c.HUD.Scale)
	}
	switch strings.ToLower(c.HUD.Justify) {
	case "", "left", "centre", "center", "right":
	default:
		return fmt.Errorf("%w: hud justify %q", ErrInvalid, c.HUD.Justify)
	}
	if c.Input.Controller < 0 {
		return fmt.Errorf("%w: controller index %d", ErrInvalid, c.Input.Controller)
	}
	if c.Input.Deadzone < 0 || c.Input.Deadzone >= 1 {
		return fmt.Errorf("%w: deadzone %v", ErrInvalid, c.Input.Deadzone)
	}
	return nil
}

// Colour is written as "#RRGGBB" or "#RRGGBBAA".
type Colour struct {
	color.NRGBA
}

// ABGR packs the colour the way engine sprites and text expect it.
func (c Colour) ABGR() uint32 {
	return common.ABGRFromColor(c.NRGBA)
}

func (c *Colour) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: colour on line %d is not a string", ErrInvalid, value.Line)
	}
	col, err := ParseColour(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	c.NRGBA = col
	return nil
}

// ParseColour reads "#RRGGBB" or "#RRGGBBAA"; the # is optional and a
// missing alpha is opaque.
func ParseColour(s string) (color.NRGBA, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(digits) != 6 && len(digits) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: invalid colour format %q", ErrInvalid, s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: invalid colour format %q", ErrInvalid, s)
	}
	if len(digits) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func (c Colour) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}
