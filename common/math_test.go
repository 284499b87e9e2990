package common

import (
	"math"
	"testing"
)

func TestRotatedTopLeftZeroRotation(t *testing.T) {
	x, y := RotatedTopLeft(50, 30, 40, 20, 0)
	if x != 30 || y != 20 {
		t.Fatalf("expected (30, 20), got (%v, %v)", x, y)
	}
}

func TestRotatedTopLeftRoundTrip(t *testing.T) {
	cases := []struct {
		name       string
		x, y, w, h float64
		angle      float64
	}{
		{"zero", 10, 20, 100, 50, 0},
		{"quarter_turn", -5, 3, 80, 80, math.Pi / 2},
		{"arbitrary", 123.4, -56.7, 33, 91, 0.7321},
		{"negative_angle", 0, 0, 17, 3, -2.5},
		{"full_turn", 42, 42, 10, 10, 2 * math.Pi},
		{"degenerate_width", 7, 7, 0, 12, 1.1},
		{"degenerate_both", 1, 2, 0, 0, 0.3},
	}

	const tol = 1e-9
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cx, cy := CenterFromTopLeft(c.x, c.y, c.w, c.h, c.angle)
			gx, gy := RotatedTopLeft(cx, cy, c.w, c.h, c.angle)
			if math.Abs(gx-c.x) > tol || math.Abs(gy-c.y) > tol {
				t.Fatalf("round trip drifted: want (%v, %v), got (%v, %v)", c.x, c.y, gx, gy)
			}
		})
	}
}

func TestRotatedTopLeftQuarterTurn(t *testing.T) {
	// Rotating a 40x20 rect a quarter turn CCW (y-down) moves the unrotated
	// top-left corner to center + (-h/2, -w/2) rotated; check by hand.
	x, y := RotatedTopLeft(0, 0, 40, 20, math.Pi/2)
	if math.Abs(x-10) > 1e-9 || math.Abs(y+20) > 1e-9 {
		t.Fatalf("expected (10, -20), got (%v, %v)", x, y)
	}
}

func TestRoundTo(t *testing.T) {
	cases := []struct {
		name   string
		v      float64
		digits int
		want   float64
	}{
		{"half_up", 2.345, 2, 2.35},
		{"half_down_negative", -2.345, 2, -2.35},
		{"integer", 1.0, 0, 1},
		{"no_op", 2.5, 1, 2.5},
		{"truncating", 0.123456, 3, 0.123},
		{"whole_half", 0.5, 0, 1},
		{"negative_whole_half", -0.5, 0, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := RoundTo(c.v, c.digits); got != c.want {
				t.Fatalf("RoundTo(%v, %d) = %v, want %v", c.v, c.digits, got, c.want)
			}
		})
	}
}

func TestRoundToBase(t *testing.T) {
	if got := RoundToBase(0.3, 1, 2); got != 0.5 {
		t.Fatalf("RoundToBase(0.3, 1, 2) = %v, want 0.5", got)
	}
	if got := RoundToBase(2.345, 2, 10); got != RoundTo(2.345, 2) {
		t.Fatalf("base 10 should match RoundTo, got %v", got)
	}
}

func TestNormalizedRGBToHex(t *testing.T) {
	cases := []struct {
		name string
		rgb  [3]float64
		want string
	}{
		{"maroon", [3]float64{0.5019607, 0, 0}, "#800000"},
		{"black", [3]float64{0, 0, 0}, "#000000"},
		{"white", [3]float64{1, 1, 1}, "#FFFFFF"},
		{"clamped_high", [3]float64{2, 1, 1}, "#FFFFFF"},
		{"clamped_low", [3]float64{-1, 0, 0}, "#000000"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NormalizedRGBToHex(c.rgb); got != c.want {
				t.Fatalf("NormalizedRGBToHex(%v) = %q, want %q", c.rgb, got, c.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Fatalf("Lerp(0, 10, 0.5) = %v, want 5", got)
	}
	if got := Lerp(3, 3, 0.9); got != 3 {
		t.Fatalf("Lerp(3, 3, 0.9) = %v, want 3", got)
	}
}
