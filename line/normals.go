package line

import "fmt"

// VertexNormals returns one xyz normal per vertex. Supplied normals are
// returned when there is one per vertex. Otherwise each vertex gets the
// normalized direction towards the next vertex along its line, and the
// last vertex of a run repeats the direction of the segment before it.
// For this renderer the normal is the line tangent, which orients the
// stroke's cross-section.
//
// The object's coordinates and connections are checked first; colors are
// not. An inconsistent object yields ErrInvalidObject.
func VertexNormals(obj *Object) ([]float32, error) {
	if obj == nil {
		return nil, fmt.Errorf("%w: nil object", ErrInvalidObject)
	}
	if err := obj.validateGeometry(); err != nil {
		return nil, err
	}
	if len(obj.Normals) == len(obj.Coords) {
		return obj.Normals, nil
	}

	normals := make([]float32, len(obj.Coords))
	set := func(id int, n Vec3) {
		normals[3*id+0] = n.X
		normals[3*id+1] = n.Y
		normals[3*id+2] = n.Z
	}
	dir := func(id0, id1 int) Vec3 {
		return obj.Coord(id1).Sub(obj.Coord(id0)).Normalize()
	}

	switch obj.LineType {
	case Uniline:
		conns := obj.Connections
		for i := 0; i+1 < len(conns); i++ {
			id0, id1 := int(conns[i]), int(conns[i+1])
			n := dir(id0, id1)
			set(id0, n)
			if i == len(conns)-2 {
				set(id1, n)
			}
		}

	case Segment:
		conns := obj.Connections
		for i := 0; i+1 < len(conns); i += 2 {
			id0, id1 := int(conns[i]), int(conns[i+1])
			n := dir(id0, id1)
			set(id0, n)
			set(id1, n)
		}

	case Polyline:
		conns := obj.Connections
		for i := 0; i+1 < len(conns); i += 2 {
			id0, id1 := int(conns[i]), int(conns[i+1])
			for j := id0; j < id1; j++ {
				n := dir(j, j+1)
				set(j, n)
				if j == id1-1 {
					set(j+1, n)
				}
			}
		}

	case Strip:
		nv := obj.NumVertices()
		for i := 0; i+1 < nv; i++ {
			n := dir(i, i+1)
			set(i, n)
			if i == nv-2 {
				set(i+1, n)
			}
		}
	}
	return normals, nil
}
