package line

import "github.com/gogpu/colormap"

// VertexColors returns one rgb triple per vertex. A VertexColor object
// returns its colors as is; a LineColor object has its first color
// repeated for every vertex.
func VertexColors(obj *Object) []uint8 {
	if obj.ColorType == VertexColor {
		return obj.Colors
	}

	n := obj.NumVertices()
	colors := make([]uint8, 3*n)
	if len(obj.Colors) < 3 {
		return colors
	}
	r, g, b := obj.Colors[0], obj.Colors[1], obj.Colors[2]
	for i := 0; i < n; i++ {
		colors[3*i+0] = r
		colors[3*i+1] = g
		colors[3*i+2] = b
	}
	return colors
}

// MapScalars converts per-vertex scalars to rgb triples through m. The map
// builds its table on first use if it has none.
//
//	obj.Colors = line.MapScalars(temperature, cmap)
//	obj.ColorType = line.VertexColor
func MapScalars(scalars []float64, m *colormap.Map) []uint8 {
	colors := make([]uint8, 3*len(scalars))
	for i, v := range scalars {
		c := m.At(v)
		colors[3*i+0] = c.R
		colors[3*i+1] = c.G
		colors[3*i+2] = c.B
	}
	return colors
}
