// Package color provides the color-space math behind colormap tables.
//
// Everything here works on plain channel values so the public colormap
// types stay small value types. Conversions between RGB and HSV go through
// go-colorful; hue handling (normalization and shortest-arc interpolation)
// lives here so both the table builder and the tests share one definition.
//
// Conventions:
//   - 8-bit channels are in [0, 255]
//   - hue is in degrees, circular, 0 and 360 identify the same hue
//   - saturation and value are in [0, 1]
package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HueRange is the length of the hue circle in degrees.
const HueRange = 360.0

// NormalizeHue wraps h into [0, 360).
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, HueRange)
	if h < 0 {
		h += HueRange
	}
	// math.Mod of a tiny negative value plus 360 rounds back up to 360.
	if h >= HueRange {
		h = 0
	}
	return h
}

// RGBToHSV converts 8-bit RGB channels to hue (degrees), saturation and value.
// Achromatic colors report a hue of 0.
func RGBToHSV(r, g, b uint8) (h, s, v float64) {
	c := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
	h, s, v = c.Hsv()
	return NormalizeHue(h), s, v
}

// HSVToRGB converts hue (degrees), saturation and value to 8-bit RGB.
// Hue is wrapped onto the circle and s, v are clamped to [0, 1].
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	c := colorful.Hsv(NormalizeHue(h), Clamp01(s), Clamp01(v))
	return Quantize(c.R), Quantize(c.G), Quantize(c.B)
}

// LerpHue interpolates between two hues along the shorter arc of the hue
// circle. When the hues are more than 180 degrees apart the result passes
// through 0/360 instead of the opposite side. The result is in [0, 360).
func LerpHue(h0, h1, t float64) float64 {
	h0 = NormalizeHue(h0)
	h1 = NormalizeHue(h1)
	d := h1 - h0
	switch {
	case d > HueRange/2:
		d -= HueRange
	case d < -HueRange/2:
		d += HueRange
	}
	return NormalizeHue(h0 + d*t)
}

// LerpHSV blends two HSV triples: hue along the shorter arc, saturation and
// value linearly. An achromatic endpoint (s == 0) has no meaningful hue and
// takes the hue of the other endpoint so the blend does not drift through
// unrelated hues.
func LerpHSV(h0, s0, v0, h1, s1, v1, t float64) (h, s, v float64) {
	switch {
	case s0 == 0 && s1 != 0:
		h0 = h1
	case s1 == 0 && s0 != 0:
		h1 = h0
	}
	return LerpHue(h0, h1, t), s0 + (s1-s0)*t, v0 + (v1-v0)*t
}
