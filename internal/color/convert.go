package color

// Clamp01 clamps x to [0, 1].
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Quantize maps a [0,1] intensity to an 8-bit channel with rounding.
// Out-of-range input saturates.
func Quantize(x float64) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(x*255.0 + 0.5)
}

// Lerp8 linearly interpolates two 8-bit channels and rounds to the nearest
// integer. t is clamped to [0, 1].
func Lerp8(a, b uint8, t float64) uint8 {
	t = Clamp01(t)
	v := float64(a) + (float64(b)-float64(a))*t
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
