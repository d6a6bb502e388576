package line

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func prepare(t *testing.T, r *Renderer, obj *Object) *Batch {
	t.Helper()
	b, err := r.Prepare(obj)
	if errors.Is(err, ErrInvalidObject) || errors.Is(err, ErrUnsupportedLineType) || errors.Is(err, ErrUnsupportedColorType) {
		t.Fatalf("Prepare() error = %v", err)
	}
	skipNagaLimitation(t, err)
	return b
}

func TestNewRendererDefaults(t *testing.T) {
	r := NewRenderer()
	if r.Style() != DefaultStyle() {
		t.Errorf("Style() = %+v, want %+v", r.Style(), DefaultStyle())
	}
	if r.Shading() != Lambert() {
		t.Errorf("Shading() = %+v, want Lambert", r.Shading())
	}
	if !r.IsShadingEnabled() {
		t.Error("IsShadingEnabled() = false, want true")
	}
}

func TestRendererPrepare(t *testing.T) {
	r := NewRenderer(WithStyle(Style{Radius: 1}), WithShading(Phong()), WithShapeResolution(8))
	b := prepare(t, r, zigzag())

	if len(b.Strips) != 1 || b.VertexCount() != 6 {
		t.Errorf("strips, vertices = %d, %d, want 1, 6", len(b.Strips), b.VertexCount())
	}
	if len(b.VertexBytes()) != 6*VertexStride {
		t.Errorf("len(VertexBytes()) = %d, want %d", len(b.VertexBytes()), 6*VertexStride)
	}
	if b.Topology != gputypes.PrimitiveTopologyTriangleStrip {
		t.Errorf("Topology = %v, want triangle strip", b.Topology)
	}
	if b.Shape.Descriptor.Size.Width != 8 || b.Diffuse == nil {
		t.Error("textures not prepared")
	}
	if b.Shading != Phong() || len(b.SPIRV) == 0 {
		t.Errorf("Shading = %+v, len(SPIRV) = %d", b.Shading, len(b.SPIRV))
	}
}

func TestRendererCaches(t *testing.T) {
	r := NewRenderer()
	obj := zigzag()
	first := prepare(t, r, obj)
	if again := prepare(t, r, obj); again != first {
		t.Error("Prepare(same object) rebuilt the batch")
	}

	other := zigzag()
	if b := prepare(t, r, other); b == first {
		t.Error("Prepare(other object) reused the batch")
	}

	r.Invalidate()
	if b := prepare(t, r, other); b == first {
		t.Error("Prepare after Invalidate reused the batch")
	}
}

func TestRendererStyleRebuilds(t *testing.T) {
	r := NewRenderer()
	obj := zigzag()
	first := prepare(t, r, obj)

	r.SetRadius(2)
	r.SetHalo(0.5)
	b := prepare(t, r, obj)
	if b == first {
		t.Fatal("style change did not rebuild the batch")
	}
	if got := b.Strips[0].Vertices[0].TexCoord; got != [4]float32{-4, 2, 0, 0} {
		t.Errorf("TexCoord = %v, want [-4 2 0 0]", got)
	}
	if &b.SPIRV[0] != &first.SPIRV[0] {
		t.Error("style change recompiled the shader")
	}
}

func TestRendererShadingChange(t *testing.T) {
	r := NewRenderer()
	obj := zigzag()
	first := prepare(t, r, obj)

	r.DisableShading()
	unlit := prepare(t, r, obj)
	if unlit == first {
		t.Fatal("disabling shading did not produce a new batch")
	}
	if unlit.Shading.Model != NoShading {
		t.Errorf("Shading.Model = %v, want none", unlit.Shading.Model)
	}
	if &unlit.Strips[0] != &first.Strips[0] {
		t.Error("shading change rebuilt the geometry")
	}

	r.EnableShading()
	r.SetShading(Lambert())
	lit := prepare(t, r, obj)
	if &lit.SPIRV[0] != &first.SPIRV[0] {
		t.Error("returning to a compiled model recompiled the shader")
	}

	r.SetTwoSidedLighting(true)
	if b := prepare(t, r, obj); &b.SPIRV[0] == &first.SPIRV[0] {
		t.Error("two-sided lighting reused the one-sided shader")
	}
}

func TestRendererErrors(t *testing.T) {
	r := NewRenderer()
	obj := zigzag()
	obj.LineType = Segment
	obj.Connections = []uint32{0, 1}
	if _, err := r.Prepare(obj); !errors.Is(err, ErrUnsupportedLineType) {
		t.Errorf("Prepare(segment) error = %v, want ErrUnsupportedLineType", err)
	}

	r = NewRenderer(WithShapeResolution(0))
	if _, err := r.Prepare(zigzag()); !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("Prepare error = %v, want ErrInvalidResolution", err)
	}
}

func TestRenderersShareShaders(t *testing.T) {
	a := prepare(t, NewRenderer(WithShading(BlinnPhong())), zigzag())
	before := programs.Stats()
	b := prepare(t, NewRenderer(WithShading(BlinnPhong())), zigzag())
	if &a.SPIRV[0] != &b.SPIRV[0] {
		t.Error("renderers compiled the same shader variant twice")
	}
	after := programs.Stats()
	if after.Hits != before.Hits+1 || after.Misses != before.Misses {
		t.Errorf("program cache went from %+v to %+v, want one more hit", before, after)
	}
}
