package spriteapp

import (
	"math"
	"testing"
)

func TestStickAngleAxes(t *testing.T) {
	cases := []struct {
		name string
		x, y float32
		want float32
	}{
		{"up", 0, 1, 0},
		{"right", 1, 0, 90},
		{"down", 0, -1, 180},
		{"left", -1, 0, 270},
		{"centred", 0, 0, 0},
		{"partial_x_on_axis", 0.5, 0, 0},
		{"partial_y_on_axis", 0, 0.5, 0},
		{"partial_negative_y_on_axis", 0, -0.25, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := StickAngle(c.x, c.y); got != c.want {
				t.Fatalf("StickAngle(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}
}

// quadrant recomputes a quadrant branch independently: single precision
// ratio and arctangent, double precision division and offset.
func quadrant(offset float64, sign float64, ratio float32) float32 {
	a := float32(math.Atan(float64(ratio * 180)))
	return float32(offset + sign*float64(a)/3.1415926535)
}

func TestStickAngleQuadrantParity(t *testing.T) {
	cases := []struct {
		name   string
		x, y   float32
		want   float32
		approx float64
	}{
		{"x_pos_y_neg", 0.5, -0.5, quadrant(0, 1, 0.5/0.5), 0.4982},
		{"x_pos_y_pos", 0.5, 0.5, quadrant(180, -1, 0.5/0.5), 179.5018},
		{"x_neg_y_pos", -0.5, 0.5, quadrant(180, 1, -0.5/-0.5), 180.4982},
		{"x_neg_y_neg", -0.5, -0.5, quadrant(360, -1, -0.5/-0.5), 359.5018},
		{"shallow", 0.01, -0.9, quadrant(0, 1, float32(0.01)/float32(0.9)), 0.3524},
		{"steep", 0.9, 0.01, quadrant(180, -1, float32(0.9)/float32(0.01)), 179.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := StickAngle(c.x, c.y)
			if got != c.want {
				t.Fatalf("StickAngle(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
			}
			if math.Abs(float64(got)-c.approx) > 0.01 {
				t.Fatalf("StickAngle(%v, %v) = %v, expected near %v", c.x, c.y, got, c.approx)
			}
		})
	}
}

func TestStickAngleIsNotGeometric(t *testing.T) {
	// A stick pushed to the upper right at 45 degrees stays near zero.
	got := StickAngle(0.7071, -0.7071)
	if got > 1 {
		t.Fatalf("expected the scaled ratio to saturate near 0.5, got %v", got)
	}
}
