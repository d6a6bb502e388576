package colormap

// Option configures a Map during creation.
//
// Example:
//
//	m := colormap.New(
//	    colormap.WithResolution(512),
//	    colormap.WithRange(-1, 1),
//	    colormap.WithColorSpace(colormap.SpaceHSV),
//	)
type Option func(*options)

// options holds optional configuration for Map creation.
type options struct {
	space      ColorSpace
	resolution int
	min, max   float64
	hasRange   bool
	points     []Point
}

// defaultOptions returns the default map options.
func defaultOptions() options {
	return options{
		space:      SpaceRGB,
		resolution: DefaultResolution,
	}
}

// WithResolution sets the number of table slots.
func WithResolution(n int) Option {
	return func(o *options) {
		o.resolution = n
	}
}

// WithRange sets an explicit value range. Reversed bounds are swapped.
func WithRange(min, max float64) Option {
	return func(o *options) {
		if min > max {
			min, max = max, min
		}
		o.min, o.max = min, max
		o.hasRange = true
	}
}

// WithColorSpace sets the interpolation color space.
func WithColorSpace(space ColorSpace) Option {
	return func(o *options) {
		o.space = space
	}
}

// WithPoints adds control points. Later points replace earlier ones at the
// same position, as with AddPoint.
func WithPoints(points ...Point) Option {
	return func(o *options) {
		o.points = append(o.points, points...)
	}
}
