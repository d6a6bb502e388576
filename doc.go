// Package colormap maps scalar values to colors through control-point
// driven lookup tables.
//
// # Overview
//
// A Map holds a sparse, ordered set of control points (value, color), a
// table resolution, an optional value range and an interpolation color
// space. Create rasterizes the control points into a fixed table of
// resolution RGB colors; At maps a scalar onto that table.
//
//	m := colormap.New(colormap.WithRange(0, 100))
//	m.AddPoint(0, colormap.Black)
//	m.AddPoint(100, colormap.White)
//	if err := m.Create(); err != nil {
//	    log.Fatal(err)
//	}
//	gray := m.At(50) // ~RGB(127, 127, 127)
//
// # Color Spaces
//
// SpaceRGB blends each channel linearly. SpaceHSV blends hue along the
// shorter arc of the hue circle, so blending hue 350 with hue 10 passes
// through red (0) rather than cyan (180).
//
// # Table Lifecycle
//
// Editing a Map never changes an existing table. State reports whether the
// table is empty, built, or stale after edits. At and Table build the table
// on first use; afterwards Create must be called to pick up edits.
//
// # Renderers
//
// The table is laid out as resolution×3 bytes, row-major by slot then
// channel, ready for upload as a 1-D texture. The line package consumes
// maps to color line geometry.
//
// # Logging
//
// colormap is silent by default; see SetLogger.
package colormap
