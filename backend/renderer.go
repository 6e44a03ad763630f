package backend

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/spriteapp/common"
	"github.com/milk9111/spriteapp/engine"
)

// Renderer draws sprites onto the screen bound by Engine.Bind.
type Renderer struct {
	owner   *Engine
	target  *ebiten.Image
	pixel   *ebiten.Image
	clear   color.NRGBA
	drawing bool
	closed  bool
}

var _ engine.SpriteRenderer = (*Renderer)(nil)

func newRenderer(owner *Engine) *Renderer {
	return &Renderer{
		owner: owner,
		clear: common.NRGBAFromABGR(owner.opts.ClearColour),
	}
}

// Begin clears the target and opens a batch.
func (r *Renderer) Begin() {
	if r.closed || r.target == nil {
		return
	}
	r.drawing = true
	r.target.Fill(r.clear)
}

func (r *Renderer) DrawSprite(s *engine.Sprite) {
	if !r.drawing || s == nil {
		return
	}
	if r.pixel == nil {
		r.pixel = ebiten.NewImage(1, 1)
		r.pixel.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{GeoM: spriteGeoM(s)}
	op.ColorScale.ScaleWithColor(common.NRGBAFromABGR(s.Colour))
	op.Filter = ebiten.FilterLinear
	r.target.DrawImage(r.pixel, op)
}

func (r *Renderer) End() {
	r.drawing = false
}

func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.drawing = false
	r.target = nil
	if r.pixel != nil {
		r.pixel.Deallocate()
		r.pixel = nil
	}
	if r.owner != nil {
		r.owner.release(r)
	}
	return nil
}

func (r *Renderer) setClearColour(c uint32) {
	r.clear = common.NRGBAFromABGR(c)
}

func (r *Renderer) drawText(s string, face text.Face, op *text.DrawOptions) {
	if !r.drawing || face == nil {
		return
	}
	text.Draw(r.target, s, face, op)
}

// spriteGeoM maps the unit square onto the sprite: scaled to size, centred
// on the position and rotated about it.
func spriteGeoM(s *engine.Sprite) ebiten.GeoM {
	var g ebiten.GeoM
	w, h := float64(s.Width), float64(s.Height)
	g.Scale(w, h)
	g.Translate(-w/2, -h/2)
	g.Rotate(float64(s.Rotation))
	g.Translate(float64(s.Position.X), float64(s.Position.Y))
	return g
}
