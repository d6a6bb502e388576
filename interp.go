package colormap

import (
	"fmt"
	"strings"

	icolor "github.com/gogpu/colormap/internal/color"
)

// ColorSpace selects the space in which a Map blends between control
// points. It applies to every interval of the map.
type ColorSpace uint8

const (
	// SpaceRGB blends each channel linearly (default).
	SpaceRGB ColorSpace = iota
	// SpaceHSV blends hue along the shorter arc of the hue circle and
	// saturation and value linearly.
	SpaceHSV
)

// String returns "rgb" or "hsv".
func (s ColorSpace) String() string {
	switch s {
	case SpaceRGB:
		return "rgb"
	case SpaceHSV:
		return "hsv"
	default:
		return fmt.Sprintf("ColorSpace(%d)", uint8(s))
	}
}

// ParseColorSpace parses "rgb" or "hsv" (case-insensitive).
func ParseColorSpace(s string) (ColorSpace, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb":
		return SpaceRGB, nil
	case "hsv":
		return SpaceHSV, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColorSpace, s)
	}
}

// interpolator blends c0 toward c1 by t in [0, 1].
type interpolator func(c0, c1 RGB, t float64) RGB

// interpolator returns the blend function for the color space.
// Unknown values fall back to RGB.
func (s ColorSpace) interpolator() interpolator {
	if s == SpaceHSV {
		return interpolateHSV
	}
	return interpolateRGB
}

// interpolateRGB blends each channel independently.
func interpolateRGB(c0, c1 RGB, t float64) RGB {
	return RGB{
		R: icolor.Lerp8(c0.R, c1.R, t),
		G: icolor.Lerp8(c0.G, c1.G, t),
		B: icolor.Lerp8(c0.B, c1.B, t),
	}
}

// interpolateHSV converts both endpoints to HSV, blends there and converts
// back.
func interpolateHSV(c0, c1 RGB, t float64) RGB {
	h0, s0, v0 := icolor.RGBToHSV(c0.R, c0.G, c0.B)
	h1, s1, v1 := icolor.RGBToHSV(c1.R, c1.G, c1.B)
	h, s, v := icolor.LerpHSV(h0, s0, v0, h1, s1, v1, icolor.Clamp01(t))
	r, g, b := icolor.HSVToRGB(h, s, v)
	return RGB{R: r, G: g, B: b}
}
