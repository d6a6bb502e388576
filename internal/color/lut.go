package color

import "math"

// sRGBToLinearLUT converts an sRGB byte to a linear float32 in [0, 1].
// 256 entries, built once at init.
var sRGBToLinearLUT [256]float32

func init() {
	for i := 0; i < 256; i++ {
		sRGBToLinearLUT[i] = SRGBToLinearSlow(uint8(i))
	}
}

// SRGBToLinearFast converts an sRGB byte to linear intensity by table lookup.
//
// Used when a color table is uploaded as a float texture whose shader does
// lighting in linear space.
//
//	l := SRGBToLinearFast(128) // ~0.2159 (not 0.5!)
func SRGBToLinearFast(s uint8) float32 {
	return sRGBToLinearLUT[s]
}

// SRGBToLinearSlow is the reference conversion using math.Pow.
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinearSlow(s uint8) float32 {
	sf := float64(s) / 255.0
	if sf <= 0.04045 {
		return float32(sf / 12.92)
	}
	return float32(math.Pow((sf+0.055)/1.055, 2.4))
}
