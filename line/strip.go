package line

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
)

// Style sets the size of the stroke drawn around each line.
type Style struct {
	// Radius is the half-width of the stroke in view-space units.
	Radius float32
	// Halo widens the stroke on each side by Halo×2×Radius for an outline
	// drawn behind the tube. Zero disables it.
	Halo float32
}

// DefaultStyle returns a thin stroke with no halo.
func DefaultStyle() Style {
	return Style{Radius: 0.05}
}

// Vertex is one corner of a stroke quad.
//
// Both corners emitted for an input vertex share its position; the vertex
// shader pushes them apart across the line. TexCoord carries the signed
// offset (x), the radius (y) and two reserved components.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [4]float32
	Color    [4]uint8
}

// VertexStride is the size in bytes of one packed Vertex.
const VertexStride = 44

// VertexLayout describes the packed Vertex format for pipeline creation.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 24, ShaderLocation: 2},
			{Format: gputypes.VertexFormatUnorm8x4, Offset: 40, ShaderLocation: 3},
		},
	}
}

// QuadStrip is a run of vertices drawn as a triangle strip, two vertices
// per input vertex.
type QuadStrip struct {
	Vertices []Vertex
}

// AppendBytes appends the little-endian packed vertices to dst.
func (s QuadStrip) AppendBytes(dst []byte) []byte {
	for i := range s.Vertices {
		v := &s.Vertices[i]
		for _, f := range v.Position {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
		}
		for _, f := range v.Normal {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
		}
		for _, f := range v.TexCoord {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
		}
		dst = append(dst, v.Color[:]...)
	}
	return dst
}

// Build converts obj into quad strips: one strip for a Strip object, one
// per (first, last) pair for a Polyline object.
//
// Each input vertex becomes two vertices with texture coordinates
// (-r·h, r, 0, 0) and (r·h, r, 0, 0), where r is the style radius and
// h = 1 + 2·halo.
func Build(obj *Object, style Style) ([]QuadStrip, error) {
	if obj == nil {
		return nil, fmt.Errorf("%w: nil object", ErrInvalidObject)
	}
	if err := obj.Validate(); err != nil {
		return nil, err
	}
	if obj.ColorType == LineColor && obj.NumColors() != 1 {
		return nil, fmt.Errorf("%w: %d colors", ErrUnsupportedColorType, obj.NumColors())
	}

	normals, err := VertexNormals(obj)
	if err != nil {
		return nil, err
	}

	b := stripBuilder{
		obj:     obj,
		colors:  VertexColors(obj),
		normals: normals,
		radius:  style.Radius,
		extent:  style.Radius * (1 + 2*style.Halo),
	}

	switch obj.LineType {
	case Strip:
		if obj.NumVertices() == 0 {
			return nil, nil
		}
		return []QuadStrip{b.run(0, obj.NumVertices()-1)}, nil

	case Polyline:
		strips := make([]QuadStrip, 0, obj.NumConnections())
		for i := 0; i+1 < len(obj.Connections); i += 2 {
			strips = append(strips, b.run(int(obj.Connections[i]), int(obj.Connections[i+1])))
		}
		return strips, nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedLineType, obj.LineType)
	}
}

type stripBuilder struct {
	obj     *Object
	colors  []uint8
	normals []float32
	radius  float32
	extent  float32
}

// run emits the strip for vertices first..last inclusive.
func (b *stripBuilder) run(first, last int) QuadStrip {
	s := QuadStrip{Vertices: make([]Vertex, 0, 2*(last-first+1))}
	for j := first; j <= last; j++ {
		v := Vertex{
			Position: b.obj.Coord(j).Array(),
			Normal:   [3]float32{b.normals[3*j], b.normals[3*j+1], b.normals[3*j+2]},
			Color:    [4]uint8{b.colors[3*j], b.colors[3*j+1], b.colors[3*j+2], 0xff},
		}
		v.TexCoord = [4]float32{-b.extent, b.radius, 0, 0}
		s.Vertices = append(s.Vertices, v)
		v.TexCoord = [4]float32{b.extent, b.radius, 0, 0}
		s.Vertices = append(s.Vertices, v)
	}
	return s
}
