package common

import "math"

// CenterFromTopLeft returns the visual center of a w x h rectangle whose
// un-rotated top-left anchor is at (x, y) and which is rotated by angle
// radians around that center. Angles are counter-clockwise-positive in a
// y-down coordinate system.
func CenterFromTopLeft(x, y, w, h, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	cx := x + (w/2)*cos - (h/2)*sin
	cy := y + (w/2)*sin + (h/2)*cos
	return cx, cy
}

// RotatedTopLeft is the inverse of CenterFromTopLeft: given the center of a
// w x h rectangle rotated by angle radians, it returns the position of the
// corner that is top-left when the rectangle is unrotated.
func RotatedTopLeft(cx, cy, w, h, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	x := cx + (-w/2)*cos - (-h/2)*sin
	y := cy + (-w/2)*sin + (-h/2)*cos
	return x, y
}

// RoundTo rounds v to the given number of fractional decimal digits.
func RoundTo(v float64, digits int) float64 {
	return RoundToBase(v, digits, 10)
}

// RoundToBase rounds v to digits fractional digits in the given base.
// Halves round away from zero after the scaling multiply, so ties resolve
// the way the platform float multiply resolves them.
func RoundToBase(v float64, digits, base int) float64 {
	scale := math.Pow(float64(base), float64(digits))
	return math.Round(v*scale) / scale
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
