package backend

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/spriteapp/common"
	"github.com/milk9111/spriteapp/engine"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	ErrUnknownFont     = errors.New("backend: unknown font")
	ErrForeignRenderer = errors.New("backend: renderer not created by this backend")
	ErrFontClosed      = errors.New("backend: font closed")
)

type faceLoader func() (font.Face, error)

var fontLoaders = map[string]faceLoader{
	"comic_sans": opentypeFace(goregular.TTF, 24),
	"go_mono":    opentypeFace(gomono.TTF, 20),
	"basic": func() (font.Face, error) {
		return basicfont.Face7x13, nil
	},
}

func opentypeFace(ttf []byte, size float64) faceLoader {
	return func() (font.Face, error) {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, err
		}
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
}

// FontNames lists the names LoadFont accepts.
func FontNames() []string {
	names := make([]string, 0, len(fontLoaders))
	for name := range fontLoaders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type Font struct {
	name string
	src  font.Face
	face text.Face
}

var _ engine.Font = (*Font)(nil)

func LoadFont(name string) (*Font, error) {
	load, ok := fontLoaders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	src, err := load()
	if err != nil {
		return nil, fmt.Errorf("backend: load font %q: %w", name, err)
	}
	return &Font{name: name, src: src, face: text.NewGoXFace(src)}, nil
}

func (f *Font) Name() string {
	return f.name
}

// Face exposes the text face for widgets that draw outside a renderer.
func (f *Font) Face() text.Face {
	return f.face
}

func (f *Font) RenderText(r engine.SpriteRenderer, pos engine.Vector4, scale float32, colour uint32, j engine.Justification, format string, args ...any) error {
	if f.face == nil {
		return ErrFontClosed
	}
	br, ok := r.(*Renderer)
	if !ok {
		return ErrForeignRenderer
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	op.ColorScale.ScaleWithColor(common.NRGBAFromABGR(colour))
	op.PrimaryAlign = textAlign(j)

	br.drawText(fmt.Sprintf(format, args...), f.face, op)
	return nil
}

func (f *Font) Close() error {
	if f.face == nil {
		return nil
	}
	f.face = nil
	src := f.src
	f.src = nil
	// basicfont faces are package globals and must stay usable.
	if src == basicfont.Face7x13 {
		return nil
	}
	return src.Close()
}

func textAlign(j engine.Justification) text.Align {
	switch j {
	case engine.JustifyCentre:
		return text.AlignCenter
	case engine.JustifyRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}
