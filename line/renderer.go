package line

import (
	"github.com/gogpu/colormap"
	"github.com/gogpu/colormap/internal/cache"
	"github.com/gogpu/gputypes"
)

// Batch is everything a GPU backend needs to draw one Object: the strip
// geometry, the two textures sampled by the shader and the compiled shader.
type Batch struct {
	Strips   []QuadStrip
	Layout   gputypes.VertexBufferLayout
	Topology gputypes.PrimitiveTopology

	Shape   *Texture
	Diffuse *Texture

	Shading      Shading
	ShaderSource string
	SPIRV        []uint32
}

// VertexCount returns the total number of vertices over all strips.
func (b *Batch) VertexCount() int {
	n := 0
	for _, s := range b.Strips {
		n += len(s.Vertices)
	}
	return n
}

// VertexBytes returns all strips packed back to back. Strip i starts at
// vertex sum(len(Strips[:i].Vertices)).
func (b *Batch) VertexBytes() []byte {
	buf := make([]byte, 0, VertexStride*b.VertexCount())
	for _, s := range b.Strips {
		buf = s.AppendBytes(buf)
	}
	return buf
}

type programKey struct {
	model    ShadingModel
	twoSided bool
}

// programs holds compiled shader variants shared by all renderers.
var programs = cache.New[programKey, []uint32](16)

func compileProgram(key programKey) ([]uint32, error) {
	spirv, err := programs.GetOrCreate(key, func() ([]uint32, error) {
		return CompileShader(ShaderSource(key.model, key.twoSided))
	})
	if err != nil {
		return nil, err
	}
	s := programs.Stats()
	colormap.Logger().Debug("line: shader program",
		"model", key.model.String(), "two_sided", key.twoSided, "words", len(spirv),
		"cached", s.Len, "hits", s.Hits, "misses", s.Misses, "evictions", s.Evictions)
	return spirv, nil
}

// Renderer prepares stylized line batches and caches the last one.
//
// Prepare rebuilds geometry only when it is given a different *Object or
// the style changed. Shader variants are compiled once per process and
// shared between renderers. Edits made to an Object in place are not
// detected; call Invalidate after them.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	opts options

	shape   *Texture
	diffuse *Texture

	obj          *Object
	batch        *Batch
	styleDirty   bool
	shadingDirty bool
}

// NewRenderer creates a Renderer with Lambert shading and DefaultStyle.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Style returns the stroke style.
func (r *Renderer) Style() Style { return r.opts.style }

// SetStyle sets the stroke style used by the next Prepare.
func (r *Renderer) SetStyle(s Style) {
	r.opts.style = s
	r.styleDirty = true
}

// SetRadius sets the stroke radius.
func (r *Renderer) SetRadius(radius float32) {
	s := r.opts.style
	s.Radius = radius
	r.SetStyle(s)
}

// SetHalo sets the halo size.
func (r *Renderer) SetHalo(halo float32) {
	s := r.opts.style
	s.Halo = halo
	r.SetStyle(s)
}

// Shading returns the configured shading.
func (r *Renderer) Shading() Shading { return r.opts.shading }

// SetShading sets the lighting model and coefficients.
func (r *Renderer) SetShading(s Shading) {
	r.opts.shading = s
	r.shadingDirty = true
}

// EnableShading turns lighting on.
func (r *Renderer) EnableShading() {
	r.opts.shadingEnabled = true
	r.shadingDirty = true
}

// DisableShading draws vertex colors unlit.
func (r *Renderer) DisableShading() {
	r.opts.shadingEnabled = false
	r.shadingDirty = true
}

// IsShadingEnabled reports whether lighting is on.
func (r *Renderer) IsShadingEnabled() bool { return r.opts.shadingEnabled }

// SetTwoSidedLighting toggles two-sided lighting.
func (r *Renderer) SetTwoSidedLighting(on bool) {
	r.opts.twoSided = on
	r.shadingDirty = true
}

// Invalidate drops the cached batch so the next Prepare rebuilds it.
func (r *Renderer) Invalidate() {
	r.obj = nil
	r.batch = nil
}

func (r *Renderer) shadingModel() ShadingModel {
	if !r.opts.shadingEnabled {
		return NoShading
	}
	return r.opts.shading.Model
}

// Prepare returns the batch for obj, reusing the cached one when neither
// obj nor the renderer settings changed since the last call.
func (r *Renderer) Prepare(obj *Object) (*Batch, error) {
	if r.shape == nil {
		shape, err := ShapeTexture(r.opts.shapeResolution)
		if err != nil {
			return nil, err
		}
		r.shape = shape
		r.diffuse = DiffuseTexture()
	}

	objectChanged := obj != r.obj || r.batch == nil
	if !objectChanged && !r.styleDirty && !r.shadingDirty {
		return r.batch, nil
	}

	next := &Batch{
		Layout:   VertexLayout(),
		Topology: gputypes.PrimitiveTopologyTriangleStrip,
		Shape:    r.shape,
		Diffuse:  r.diffuse,
		Shading:  r.opts.shading,
	}

	if objectChanged || r.styleDirty {
		strips, err := Build(obj, r.opts.style)
		if err != nil {
			return nil, err
		}
		next.Strips = strips
	} else {
		next.Strips = r.batch.Strips
	}

	key := programKey{model: r.shadingModel(), twoSided: r.opts.twoSided}
	next.ShaderSource = ShaderSource(key.model, key.twoSided)
	spirv, err := compileProgram(key)
	if err != nil {
		return nil, err
	}
	next.SPIRV = spirv
	if key.model == NoShading {
		next.Shading = Shading{Model: NoShading}
	}

	r.obj = obj
	r.batch = next
	r.styleDirty = false
	r.shadingDirty = false
	colormap.Logger().Debug("line: batch prepared",
		"type", obj.LineType.String(), "strips", len(next.Strips), "vertices", next.VertexCount())
	return next, nil
}
