package common

import "image/color"

// NRGBAFromABGR unpacks an ABGR colour (alpha in the high byte, red in the
// low byte).
func NRGBAFromABGR(c uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(c),
		G: uint8(c >> 8),
		B: uint8(c >> 16),
		A: uint8(c >> 24),
	}
}

// ABGRFromColor packs any colour as non-premultiplied ABGR.
func ABGRFromColor(c color.Color) uint32 {
	if c == nil {
		return 0
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.B)<<16 | uint32(n.G)<<8 | uint32(n.R)
}
