package colormap

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"

	icolor "github.com/gogpu/colormap/internal/color"
)

// RGB is an opaque 8-bit color. It is the only color representation stored
// in a Map and in its table.
type RGB struct {
	R, G, B uint8
}

// HSV describes a color by hue, saturation and value.
// H is in degrees and circular (0 and 360 are the same hue); S and V are in
// [0, 1]. HSV is an input convenience: it is converted to RGB before storage.
type HSV struct {
	H, S, V float64
}

// RGBA implements color.Color. RGB colors are always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// HSV converts the color to hue, saturation and value.
func (c RGB) HSV() HSV {
	h, s, v := icolor.RGBToHSV(c.R, c.G, c.B)
	return HSV{H: h, S: s, V: v}
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

// RGB converts the HSV color to 8-bit RGB.
func (c HSV) RGB() RGB {
	r, g, b := icolor.HSVToRGB(c.H, c.S, c.V)
	return RGB{R: r, G: g, B: b}
}

// FromColor converts any color.Color to RGB, dropping alpha.
// Premultiplied input is un-premultiplied first.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// ParseColor parses a color given as "#rgb", "#rrggbb" or an SVG 1.1 color
// name such as "steelblue". Names are matched case-insensitively.
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGB{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}
	if s[0] == '#' {
		c, err := colorful.Hex(s)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		return RGB{
			R: icolor.Quantize(c.R),
			G: icolor.Quantize(c.G),
			B: icolor.Quantize(c.B),
		}, nil
	}
	if c, ok := colornames.Map[foldName(s)]; ok {
		return RGB{R: c.R, G: c.G, B: c.B}, nil
	}
	return RGB{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, s)
}

// MustParseColor is like ParseColor but panics on error.
// Intended for package-level color tables.
func MustParseColor(s string) RGB {
	c, err := ParseColor(s)
	if err != nil {
		panic("colormap: MustParseColor: " + err.Error())
	}
	return c
}

// foldName case-folds a name for lookup in name-keyed tables.
func foldName(s string) string {
	return cases.Fold().String(s)
}

// Common colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Green = RGB{0, 255, 0}
	Blue  = RGB{0, 0, 255}
)
