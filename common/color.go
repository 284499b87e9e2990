package common

import (
	"fmt"
	"math"
)

// NormalizedRGBToHex converts a normalized [0,1] RGB triple into an
// uppercase "#RRGGBB" string. Channels are scaled by 255, rounded to the
// nearest integer and clamped. Out-of-range input produces a clamped
// result rather than an error.
func NormalizedRGBToHex(rgb [3]float64) string {
	var ch [3]uint8
	for i, c := range rgb {
		v := math.Round(c * 255)
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		ch[i] = uint8(v)
	}
	return fmt.Sprintf("#%02X%02X%02X", ch[0], ch[1], ch[2])
}
