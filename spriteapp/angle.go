package spriteapp

import "math"

// pi is the truncated constant the sample has always divided by.
const pi = 3.1415926535

// StickAngle converts a left stick position into the per-frame rotation
// contribution in degrees.
//
// The quadrant branches scale the axis ratio by 180 before the arctangent,
// so off-axis results stay close to 0, 180 or 360 rather than tracing the
// stick direction. Exact axis positions hit the fixed branches. Anything
// else, including a centred stick, yields 0.
func StickAngle(x, y float32) float32 {
	switch {
	case x > 0 && y < 0:
		return float32(float64(atan32((x/-y)*180)) / pi)
	case x > 0 && y > 0:
		return float32(180 - float64(atan32((x/y)*180))/pi)
	case x < 0 && y > 0:
		return float32(180 + float64(atan32((x/-y)*180))/pi)
	case x < 0 && y < 0:
		return float32(360 - float64(atan32((x/y)*180))/pi)
	case x == 0 && y == 1:
		return 0
	case x == 1 && y == 0:
		return 90
	case x == 0 && y == -1:
		return 180
	case x == -1 && y == 0:
		return 270
	}
	return 0
}

// atan32 is a single precision arctangent.
func atan32(v float32) float32 {
	return float32(math.Atan(float64(v)))
}
