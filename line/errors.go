package line

import "errors"

var (
	// ErrInvalidObject is returned when an Object's arrays are inconsistent.
	ErrInvalidObject = errors.New("line: invalid object")

	// ErrUnsupportedColorType is returned by Build for a line-color object
	// that carries more than one color.
	ErrUnsupportedColorType = errors.New("line: unsupported line color type")

	// ErrUnsupportedLineType is returned by Build for topologies that have
	// no quad-strip form.
	ErrUnsupportedLineType = errors.New("line: unsupported line type")

	// ErrInvalidResolution is returned for a non-positive texture size.
	ErrInvalidResolution = errors.New("line: texture resolution must be positive")

	// ErrNoTable is returned by ColorMapTexture when the map cannot produce
	// a table.
	ErrNoTable = errors.New("line: color map has no table")
)
