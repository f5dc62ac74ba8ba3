package colormath

import "math"

// PerceivedLightness computes the CIELAB L* perceptual lightness of c as a
// value in [0.0, 1.0], where 0.0 is black, 1.0 is white, and 0.5 is
// perceptual middle gray. The alpha channel is ignored.
func PerceivedLightness(c Color) float64 {
	return luminanceToPerceivedLightness(luminance(c)) / 100.0
}

func luminance(c Color) float64 {
	r := gammaExpand(float64(c.Red) / 0xFFFF)
	g := gammaExpand(float64(c.Green) / 0xFFFF)
	b := gammaExpand(float64(c.Blue) / 0xFFFF)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaExpand converts a non-linear sRGB channel value to a linear one via
// gamma correction. Negative values pass through unchanged.
func gammaExpand(v float64) float64 {
	if v <= 0.0 {
		return v
	}
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// luminanceToPerceivedLightness converts CIE XYZ luminance (Y) to CIELAB
// L* using the standard piecewise formula.
func luminanceToPerceivedLightness(y float64) float64 {
	const (
		epsilon = 216.0 / 24389.0
		kappa   = 24389.0 / 27.0
	)
	if y <= epsilon {
		return y * kappa
	}
	return 116.0*math.Cbrt(y) - 16.0
}
