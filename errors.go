package colormap

import "errors"

var (
	// ErrInvalidResolution is returned by Create when the table resolution
	// is not positive.
	ErrInvalidResolution = errors.New("colormap: resolution must be positive")

	// ErrNotCreated is returned by Index when no table has been materialized.
	ErrNotCreated = errors.New("colormap: table not created")

	// ErrIndexOutOfRange is returned by Index for a slot outside the table.
	ErrIndexOutOfRange = errors.New("colormap: table index out of range")

	// ErrInvalidTable is returned when a supplied table is empty or its
	// length is not a multiple of three.
	ErrInvalidTable = errors.New("colormap: table length must be a positive multiple of 3")

	// ErrInvalidColor is returned by ParseColor for unparseable input.
	ErrInvalidColor = errors.New("colormap: invalid color")

	// ErrUnknownColorSpace is returned when decoding an unrecognized color
	// space name.
	ErrUnknownColorSpace = errors.New("colormap: unknown color space")

	// ErrUnknownPreset is returned by Preset for an unregistered name.
	ErrUnknownPreset = errors.New("colormap: unknown preset")

	// ErrUnknownFormat is returned for an unsupported image format.
	ErrUnknownFormat = errors.New("colormap: unknown image format")
)
