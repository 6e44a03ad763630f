package common

import (
	"image/color"
	"testing"
)

func TestABGRRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		abgr uint32
		want color.NRGBA
	}{
		{"white", 0xffffffff, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"opaque_red", 0xff0000ff, color.NRGBA{R: 0xff, A: 0xff}},
		{"half_blue", 0x80ff0000, color.NRGBA{B: 0xff, A: 0x80}},
		{"transparent", 0, color.NRGBA{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := NRGBAFromABGR(c.abgr)
			if got != c.want {
				t.Fatalf("NRGBAFromABGR(%#x) = %+v, want %+v", c.abgr, got, c.want)
			}
			if back := ABGRFromColor(got); back != c.abgr {
				t.Fatalf("ABGRFromColor(%+v) = %#x, want %#x", got, back, c.abgr)
			}
		})
	}

	if ABGRFromColor(nil) != 0 {
		t.Fatalf("nil colour should pack to 0")
	}
}
