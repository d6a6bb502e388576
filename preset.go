package colormap

import (
	"fmt"
	"sort"
)

// preset is a named map definition with control points on [0, 1].
type preset struct {
	space  ColorSpace
	points []Point
}

// presets holds the built-in maps keyed by case-folded name.
var presets = map[string]preset{
	"rainbow": {
		space: SpaceHSV,
		points: []Point{
			{0, HSV{H: 240, S: 1, V: 1}.RGB()},
			{0.5, HSV{H: 120, S: 1, V: 1}.RGB()},
			{1, HSV{H: 0, S: 1, V: 1}.RGB()},
		},
	},
	"grayscale": {
		space: SpaceRGB,
		points: []Point{
			{0, MustParseColor("black")},
			{1, MustParseColor("white")},
		},
	},
	"coolwarm": {
		space: SpaceRGB,
		points: []Point{
			{0, MustParseColor("#3b4cc0")},
			{0.5, MustParseColor("gainsboro")},
			{1, MustParseColor("#b40426")},
		},
	},
	"blackbody": {
		space: SpaceRGB,
		points: []Point{
			{0, MustParseColor("black")},
			{0.39, MustParseColor("firebrick")},
			{0.58, MustParseColor("#e36905")},
			{0.84, MustParseColor("#eed214")},
			{1, MustParseColor("white")},
		},
	},
	"jet": {
		space: SpaceRGB,
		points: []Point{
			{0, MustParseColor("navy")},
			{0.125, MustParseColor("blue")},
			{0.375, MustParseColor("cyan")},
			{0.625, MustParseColor("yellow")},
			{0.875, MustParseColor("red")},
			{1, MustParseColor("maroon")},
		},
	},
	"viridis": {
		space: SpaceRGB,
		points: []Point{
			{0, MustParseColor("#440154")},
			{0.125, MustParseColor("#472d7b")},
			{0.25, MustParseColor("#3b528b")},
			{0.375, MustParseColor("#2c728e")},
			{0.5, MustParseColor("#21918c")},
			{0.625, MustParseColor("#28ae80")},
			{0.75, MustParseColor("#5ec962")},
			{0.875, MustParseColor("#addc30")},
			{1, MustParseColor("#fde725")},
		},
	},
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a new Map built from a named preset. Names are matched
// case-insensitively.
//
// Preset control points span [0, 1]. With WithRange they are spread over
// the given range instead. WithColorSpace overrides the preset's color
// space; WithPoints adds points on top of the preset's. The returned map
// has not been created yet.
func Preset(name string, opts ...Option) (*Map, error) {
	p, ok := presets[foldName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	o := defaultOptions()
	o.space = p.space
	for _, opt := range opts {
		opt(&o)
	}

	lo, hi := 0.0, 1.0
	if o.hasRange && o.max > o.min {
		lo, hi = o.min, o.max
	}

	m := New(WithResolution(o.resolution), WithColorSpace(o.space))
	if o.hasRange {
		m.SetRange(o.min, o.max)
	}
	for _, pt := range p.points {
		m.AddPoint(lo+pt.Value*(hi-lo), pt.Color)
	}
	for _, pt := range o.points {
		m.AddPoint(pt.Value, pt.Color)
	}
	return m, nil
}
