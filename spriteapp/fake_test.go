package spriteapp

import (
	"errors"
	"fmt"

	"github.com/milk9111/spriteapp/engine"
)

type fakePlatform struct {
	w, h float32
}

func (p fakePlatform) Width() float32  { return p.w }
func (p fakePlatform) Height() float32 { return p.h }

type fakeRenderer struct {
	calls  []string
	sprite engine.Sprite
	closed bool
}

func (r *fakeRenderer) Begin() { r.calls = append(r.calls, "begin") }
func (r *fakeRenderer) DrawSprite(s *engine.Sprite) {
	r.calls = append(r.calls, "sprite")
	r.sprite = *s
}
func (r *fakeRenderer) End() { r.calls = append(r.calls, "end") }
func (r *fakeRenderer) Close() error {
	r.closed = true
	return nil
}

type fakeInput struct {
	controllers []*engine.Controller
	updates     int
	closed      bool
}

func (in *fakeInput) Update() { in.updates++ }

func (in *fakeInput) Controller(index int) *engine.Controller {
	if index < 0 || index >= len(in.controllers) {
		return nil
	}
	return in.controllers[index]
}

func (in *fakeInput) Close() error {
	in.closed = true
	return nil
}

type renderedText struct {
	renderer engine.SpriteRenderer
	pos      engine.Vector4
	text     string
}

type fakeFont struct {
	texts  []renderedText
	err    error
	closed bool
}

func (f *fakeFont) RenderText(r engine.SpriteRenderer, pos engine.Vector4, _ float32, _ uint32, _ engine.Justification, format string, args ...any) error {
	if f.err != nil {
		return f.err
	}
	if fr, ok := r.(*fakeRenderer); ok {
		fr.calls = append(fr.calls, "text")
	}
	f.texts = append(f.texts, renderedText{renderer: r, pos: pos, text: fmt.Sprintf(format, args...)})
	return nil
}

func (f *fakeFont) Close() error {
	f.closed = true
	return errors.New("font already released")
}

type fakeEngine struct {
	platform    fakePlatform
	renderer    *fakeRenderer
	input       *fakeInput
	font        *fakeFont
	fontName    string
	rendererErr error
	inputErr    error
	fontErr     error
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		platform: fakePlatform{w: 960, h: 544},
		renderer: &fakeRenderer{},
		input:    &fakeInput{},
		font:     &fakeFont{},
	}
}

func (e *fakeEngine) Platform() engine.Platform { return e.platform }

func (e *fakeEngine) CreateSpriteRenderer() (engine.SpriteRenderer, error) {
	if e.rendererErr != nil {
		return nil, e.rendererErr
	}
	return e.renderer, nil
}

func (e *fakeEngine) CreateInputManager() (engine.InputManager, error) {
	if e.inputErr != nil {
		return nil, e.inputErr
	}
	return e.input, nil
}

func (e *fakeEngine) LoadFont(name string) (engine.Font, error) {
	e.fontName = name
	if e.fontErr != nil {
		return nil, e.fontErr
	}
	return e.font, nil
}
