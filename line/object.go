package line

import "fmt"

// LineType is the connection topology of an Object.
type LineType uint8

const (
	// Strip connects every vertex to the next; connections are unused.
	Strip LineType = iota
	// Uniline connects vertices in the order listed by the connections.
	Uniline
	// Polyline holds (first, last) vertex index pairs; each pair is one
	// run of consecutive vertices.
	Polyline
	// Segment holds (from, to) vertex index pairs, one segment each.
	Segment
)

// String returns the topology name.
func (t LineType) String() string {
	switch t {
	case Strip:
		return "strip"
	case Uniline:
		return "uniline"
	case Polyline:
		return "polyline"
	case Segment:
		return "segment"
	default:
		return fmt.Sprintf("LineType(%d)", uint8(t))
	}
}

// ColorType selects how an Object's colors apply to its vertices.
type ColorType uint8

const (
	// VertexColor holds one color per vertex.
	VertexColor ColorType = iota
	// LineColor holds a single color for the whole object.
	LineColor
)

// String returns the color type name.
func (c ColorType) String() string {
	switch c {
	case VertexColor:
		return "vertex"
	case LineColor:
		return "line"
	default:
		return fmt.Sprintf("ColorType(%d)", uint8(c))
	}
}

// Object is line-structured geometry. Arrays are flat: Coords and Normals
// hold xyz triples, Colors holds rgb triples.
type Object struct {
	Coords      []float32
	Colors      []uint8
	Normals     []float32
	Connections []uint32
	LineType    LineType
	ColorType   ColorType
}

// NumVertices returns the number of vertices.
func (o *Object) NumVertices() int { return len(o.Coords) / 3 }

// NumColors returns the number of rgb colors.
func (o *Object) NumColors() int { return len(o.Colors) / 3 }

// NumConnections returns the number of connections: vertex indices for
// Uniline, index pairs for Polyline and Segment, zero for Strip.
func (o *Object) NumConnections() int {
	switch o.LineType {
	case Uniline:
		return len(o.Connections)
	case Polyline, Segment:
		return len(o.Connections) / 2
	default:
		return 0
	}
}

// Coord returns vertex i.
func (o *Object) Coord(i int) Vec3 {
	return Vec3{X: o.Coords[3*i], Y: o.Coords[3*i+1], Z: o.Coords[3*i+2]}
}

// Validate checks that the arrays are consistent with each other and with
// the line and color types.
func (o *Object) Validate() error {
	if err := o.validateGeometry(); err != nil {
		return err
	}
	n := o.NumVertices()

	switch o.ColorType {
	case VertexColor:
		if len(o.Colors) != 3*n {
			return fmt.Errorf("%w: %d colors for %d vertices", ErrInvalidObject, o.NumColors(), n)
		}
	case LineColor:
		if len(o.Colors) < 3 || len(o.Colors)%3 != 0 {
			return fmt.Errorf("%w: line color needs an rgb triple, got %d bytes", ErrInvalidObject, len(o.Colors))
		}
	default:
		return fmt.Errorf("%w: %v", ErrInvalidObject, o.ColorType)
	}
	return nil
}

// validateGeometry checks coordinates, normals and connectivity.
func (o *Object) validateGeometry() error {
	if len(o.Coords)%3 != 0 {
		return fmt.Errorf("%w: %d coords is not a multiple of 3", ErrInvalidObject, len(o.Coords))
	}
	n := o.NumVertices()

	if len(o.Normals) != 0 && len(o.Normals) != len(o.Coords) {
		return fmt.Errorf("%w: %d normals for %d vertices", ErrInvalidObject, len(o.Normals)/3, n)
	}

	switch o.LineType {
	case Strip, Uniline:
	case Polyline, Segment:
		if len(o.Connections)%2 != 0 {
			return fmt.Errorf("%w: %v connections must be index pairs", ErrInvalidObject, o.LineType)
		}
	default:
		return fmt.Errorf("%w: %v", ErrInvalidObject, o.LineType)
	}
	if o.LineType != Strip {
		for i, id := range o.Connections {
			if int(id) >= n {
				return fmt.Errorf("%w: connection %d references vertex %d of %d", ErrInvalidObject, i, id, n)
			}
		}
	}
	if o.LineType == Polyline {
		for i := 0; i+1 < len(o.Connections); i += 2 {
			if o.Connections[i] > o.Connections[i+1] {
				return fmt.Errorf("%w: polyline %d runs backwards (%d > %d)",
					ErrInvalidObject, i/2, o.Connections[i], o.Connections[i+1])
			}
		}
	}
	return nil
}
