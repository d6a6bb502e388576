package line

// Option configures a Renderer.
type Option func(*options)

type options struct {
	style           Style
	shading         Shading
	shadingEnabled  bool
	twoSided        bool
	shapeResolution int
}

func defaultOptions() options {
	return options{
		style:           DefaultStyle(),
		shading:         Lambert(),
		shadingEnabled:  true,
		shapeResolution: DefaultShapeResolution,
	}
}

// WithStyle sets the stroke radius and halo.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithShading sets the lighting model and coefficients.
func WithShading(s Shading) Option {
	return func(o *options) {
		o.shading = s
	}
}

// WithTwoSidedLighting lights back-facing stroke fragments as if they
// faced the viewer.
func WithTwoSidedLighting(on bool) Option {
	return func(o *options) {
		o.twoSided = on
	}
}

// WithShapeResolution sets the edge length of the shape texture.
func WithShapeResolution(n int) Option {
	return func(o *options) {
		o.shapeResolution = n
	}
}
