package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/spriteapp/backend"
	"github.com/milk9111/spriteapp/spriteapp"
	"golang.org/x/image/font/basicfont"
)

const (
	debugLineCount = 4
	debugFont      = "basic"
)

// DebugUI is a small panel in the top-left corner showing the raw
// controller state next to what the app derived from it.
type DebugUI struct {
	ui    *ebitenui.UI
	lines [debugLineCount]*widget.Text
}

func NewDebugUI() *DebugUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180})

	face := overlayFace()
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)

	d := &DebugUI{}
	for i := range d.lines {
		d.lines[i] = widget.NewText(
			widget.TextOpts.Text("", &face, white),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
		)
		panel.AddChild(d.lines[i])
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	d.ui = &ebitenui.UI{Container: root}
	return d
}

func overlayFace() ebtext.Face {
	f, err := backend.LoadFont(debugFont)
	if err != nil {
		return ebtext.NewGoXFace(basicfont.Face7x13)
	}
	return f.Face()
}

func (d *DebugUI) Update(snap spriteapp.Snapshot) {
	for i, l := range debugLines(snap) {
		d.lines[i].Label = l
	}
	d.ui.Update()
}

func (d *DebugUI) Draw(screen *ebiten.Image) {
	d.ui.Draw(screen)
}

func debugLines(snap spriteapp.Snapshot) [debugLineCount]string {
	if !snap.Connected {
		return [debugLineCount]string{
			"no controller",
			"",
			fmt.Sprintf("angle %.1f  rotation %.1f", snap.Angle, snap.Sprite.Rotation),
			fmt.Sprintf("fps %.1f", snap.FPS),
		}
	}
	c := snap.Controller
	return [debugLineCount]string{
		fmt.Sprintf("L %+.3f %+.3f  R %+.3f %+.3f", c.LeftStickX, c.LeftStickY, c.RightStickX, c.RightStickY),
		fmt.Sprintf("held %s  pressed %s", c.ButtonsDown, c.ButtonsPressed),
		fmt.Sprintf("angle %.1f  rotation %.1f", snap.Angle, snap.Sprite.Rotation),
		fmt.Sprintf("fps %.1f", snap.FPS),
	}
}
