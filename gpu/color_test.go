package gpu

import (
	"math"
	"testing"
)

func closeTo(a, b float32, tolerance float64) bool {
	return math.Abs(float64(a)-float64(b)) <= tolerance
}

func TestColorZeroValueIsOpaqueWhite(t *testing.T) {
	var c Color

	r, g, b, a := c.Components()
	if r != 1 || g != 1 || b != 1 || a != 1 {
		t.Errorf("zero Color = (%v, %v, %v, %v), want (1, 1, 1, 1)", r, g, b, a)
	}
}

func TestColorLinearRGBARoundTrip(t *testing.T) {
	c := ColorLinearRGBA(0.25, 0.5, 0.75, 0.5)

	r, g, b, a := c.Components()
	if !closeTo(r, 0.25, 1e-6) || !closeTo(g, 0.5, 1e-6) || !closeTo(b, 0.75, 1e-6) || !closeTo(a, 0.5, 1e-6) {
		t.Errorf("Components() = (%v, %v, %v, %v), want (0.25, 0.5, 0.75, 0.5)", r, g, b, a)
	}
}

func TestColorSRGBA(t *testing.T) {
	tests := []struct {
		name       string
		srgb       float32
		wantLinear float32
	}{
		{name: "black", srgb: 0, wantLinear: 0},
		{name: "white", srgb: 1, wantLinear: 1},
		{name: "below linear segment threshold", srgb: 0.04, wantLinear: 0.04 / 12.92},
		{name: "mid gray", srgb: 0.5, wantLinear: 0.2140},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ColorSRGBA(tt.srgb, tt.srgb, tt.srgb, 1)

			r, g, b, a := c.Components()
			if !closeTo(r, tt.wantLinear, 1e-3) {
				t.Errorf("red = %v, want %v", r, tt.wantLinear)
			}

			if r != g || g != b {
				t.Errorf("gray input gave non-gray output (%v, %v, %v)", r, g, b)
			}

			if a != 1 {
				t.Errorf("alpha = %v, want 1 (alpha is not gamma encoded)", a)
			}
		})
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := ColorLinearRGBA(0.1, 0.2, 0.3, 1).WithAlpha(0.5)

	if !closeTo(c.Alpha(), 0.5, 1e-6) {
		t.Errorf("Alpha() = %v, want 0.5", c.Alpha())
	}

	if !closeTo(c.Red(), 0.1, 1e-6) || !closeTo(c.Green(), 0.2, 1e-6) || !closeTo(c.Blue(), 0.3, 1e-6) {
		t.Errorf("WithAlpha changed color components (%v, %v, %v)", c.Red(), c.Green(), c.Blue())
	}
}
