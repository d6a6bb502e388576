// Package line prepares line geometry for drawing as stylized, shaded
// tubes.
//
// An Object holds vertex coordinates, colors, optional normals and a
// connection topology. Build turns it into quad strips whose two vertices
// per input vertex are pushed apart across the line by the vertex shader;
// the fragment shader reconstructs a cylinder normal from the shape
// texture and lights it with the selected Shading.
//
// Vertex colors can come from scalar data through a colormap.Map:
//
//	cmap, _ := colormap.Preset("viridis", colormap.WithRange(lo, hi))
//	obj := &line.Object{
//	    Coords:    coords,
//	    Colors:    line.MapScalars(values, cmap),
//	    LineType:  line.Strip,
//	    ColorType: line.VertexColor,
//	}
//	batch, err := line.NewRenderer(line.WithShading(line.Phong())).Prepare(obj)
//
// The package performs no GPU calls. A Batch carries texel data with
// gputypes texture and sampler descriptors, a vertex buffer layout and
// SPIR-V compiled with naga, for a backend to upload and draw.
package line
