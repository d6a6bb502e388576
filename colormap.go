package colormap

import (
	"fmt"
	"math"
	"sort"
)

// DefaultResolution is the table resolution of a Map created without
// WithResolution.
const DefaultResolution = 256

// Point is a control point: the color a Map takes at a scalar position.
type Point struct {
	Value float64
	Color RGB
}

// State reports whether a Map's table is materialized and current.
type State uint8

const (
	// StateEmpty means no table has been built yet. At and Table build one
	// on first use.
	StateEmpty State = iota
	// StateBuilt means the table reflects the current configuration.
	StateBuilt
	// StateStale means the map was edited after the last Create. Lookups
	// keep serving the last table until Create is called again.
	StateStale
)

// String returns a lowercase state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateBuilt:
		return "built"
	case StateStale:
		return "stale"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Map converts scalar values to colors through a fixed-resolution table
// rasterized from a sparse, ordered set of control points.
//
// A Map is configured with control points, a resolution, an optional value
// range and a color space, then materialized with Create. Lookups map a
// scalar from the range onto a table slot. Edits after Create do not alter
// the existing table; they only take effect at the next Create.
//
// A Map is not safe for concurrent use.
type Map struct {
	space      ColorSpace
	resolution int

	// Explicit value range. When hasRange is false the range is derived
	// from the control points at build time.
	min, max float64
	hasRange bool

	// Ascending by Value, unique positions.
	points []Point

	// Table supplied by NewFromTable, used while there are no control points.
	source []byte

	table              []byte
	tableMin, tableMax float64
	state              State
}

// New creates an empty Map ready to accept control points.
//
// Example:
//
//	m := colormap.New(colormap.WithRange(0, 100))
//	m.AddPoint(0, colormap.Black)
//	m.AddPoint(100, colormap.White)
//	if err := m.Create(); err != nil { ... }
//	c := m.At(42)
func New(opts ...Option) *Map {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m := &Map{
		space:      o.space,
		resolution: o.resolution,
	}
	if o.hasRange {
		m.SetRange(o.min, o.max)
	}
	for _, p := range o.points {
		m.AddPoint(p.Value, p.Color)
	}
	return m
}

// NewFromTable creates a Map that serves a precomputed table directly, with
// no control points and no interpolation. The table holds resolution×3
// bytes, row-major by slot then channel; its length sets the resolution and
// WithResolution is ignored. Without WithRange the table covers the value
// range [0, resolution-1], so a slot index is its own value.
//
// The table is copied.
func NewFromTable(table []byte, opts ...Option) (*Map, error) {
	if len(table) == 0 || len(table)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidTable, len(table))
	}
	m := New(opts...)
	m.resolution = len(table) / 3
	m.source = append([]byte(nil), table...)
	if err := m.Create(); err != nil {
		return nil, err
	}
	return m, nil
}

// ColorSpace returns the interpolation color space.
func (m *Map) ColorSpace() ColorSpace { return m.space }

// Resolution returns the configured table resolution.
func (m *Map) Resolution() int { return m.resolution }

// State returns the table materialization state.
func (m *Map) State() State { return m.state }

// Len returns the number of control points.
func (m *Map) Len() int { return len(m.points) }

// Points returns a copy of the control points in ascending order.
func (m *Map) Points() []Point {
	return append([]Point(nil), m.points...)
}

// HasRange reports whether an explicit value range was set.
func (m *Map) HasRange() bool { return m.hasRange }

// MinValue returns the lower bound of the effective value range: the
// explicit range if set, otherwise the smallest control point position.
func (m *Map) MinValue() float64 {
	lo, _ := m.domain()
	return lo
}

// MaxValue returns the upper bound of the effective value range.
func (m *Map) MaxValue() float64 {
	_, hi := m.domain()
	return hi
}

// SetColorSpace sets the interpolation color space used by Create.
func (m *Map) SetColorSpace(space ColorSpace) {
	m.space = space
	m.touch()
}

// SetColorSpaceToRGB selects per-channel RGB interpolation.
func (m *Map) SetColorSpaceToRGB() { m.SetColorSpace(SpaceRGB) }

// SetColorSpaceToHSV selects hue-based HSV interpolation.
func (m *Map) SetColorSpaceToHSV() { m.SetColorSpace(SpaceHSV) }

// SetRange sets the explicit value range mapped onto the table. Reversed
// bounds are swapped. Non-finite bounds are ignored.
// The table is not rebuilt until the next Create.
func (m *Map) SetRange(min, max float64) {
	if !isFinite(min) || !isFinite(max) {
		Logger().Warn("colormap: ignoring non-finite range", "min", min, "max", max)
		return
	}
	if min > max {
		min, max = max, min
	}
	m.min, m.max = min, max
	m.hasRange = true
	m.touch()
}

// ClearRange removes the explicit range; the next Create derives it from
// the control points.
func (m *Map) ClearRange() {
	m.min, m.max = 0, 0
	m.hasRange = false
	m.touch()
}

// SetResolution sets the number of table slots used by the next Create.
func (m *Map) SetResolution(n int) {
	m.resolution = n
	m.touch()
}

// AddPoint inserts a control point, replacing any point already at value.
// Non-finite positions are ignored. The table is not rebuilt.
func (m *Map) AddPoint(value float64, c RGB) {
	if !isFinite(value) {
		Logger().Warn("colormap: ignoring non-finite control point", "value", value)
		return
	}
	i := m.search(value)
	if i < len(m.points) && m.points[i].Value == value {
		m.points[i].Color = c
	} else {
		m.points = append(m.points, Point{})
		copy(m.points[i+1:], m.points[i:])
		m.points[i] = Point{Value: value, Color: c}
	}
	m.touch()
}

// AddPointHSV converts c to RGB and inserts it as AddPoint does.
func (m *Map) AddPointHSV(value float64, c HSV) {
	m.AddPoint(value, c.RGB())
}

// RemovePoint deletes the control point whose position equals value
// exactly. It is a no-op when no such point exists.
func (m *Map) RemovePoint(value float64) {
	i := m.search(value)
	if i >= len(m.points) || m.points[i].Value != value {
		return
	}
	m.points = append(m.points[:i], m.points[i+1:]...)
	m.touch()
}

// search returns the index of the first point with Value >= value.
func (m *Map) search(value float64) int {
	return sort.Search(len(m.points), func(i int) bool {
		return m.points[i].Value >= value
	})
}

// touch marks a built table as stale after an edit.
func (m *Map) touch() {
	if m.state == StateBuilt {
		m.state = StateStale
	}
}

// domain returns the value range the next Create would use.
func (m *Map) domain() (lo, hi float64) {
	switch {
	case m.hasRange:
		return m.min, m.max
	case len(m.points) > 0:
		return m.points[0].Value, m.points[len(m.points)-1].Value
	default:
		return 0, float64(max(m.resolution-1, 0))
	}
}

// Create (re)materializes the table from the current control points,
// resolution, range and color space.
//
// Slot i represents the value min + i*(max-min)/(resolution-1). Values
// outside the span of the control points take the nearest end point's
// color. A map with a single control point is filled with that color; a
// map with no control points is filled with black (or serves the table it
// was created from).
func (m *Map) Create() error {
	if m.resolution <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidResolution, m.resolution)
	}

	lo, hi := m.domain()
	n := m.resolution

	var table []byte
	switch {
	case len(m.points) > 0:
		table = m.rasterize(lo, hi, n)
	case m.source != nil:
		table = resample(m.source, n)
	default:
		Logger().Warn("colormap: creating table without control points", "resolution", n)
		table = make([]byte, 3*n)
	}

	m.table = table
	m.tableMin, m.tableMax = lo, hi
	m.state = StateBuilt
	Logger().Debug("colormap: table created",
		"resolution", n, "points", len(m.points), "space", m.space.String(),
		"min", lo, "max", hi)
	return nil
}

// rasterize samples the control points at n evenly spaced values across
// [lo, hi]. Slots and points are both ascending, so one sweep advances
// through the points as the slots advance.
func (m *Map) rasterize(lo, hi float64, n int) []byte {
	table := make([]byte, 3*n)
	interp := m.space.interpolator()
	pts := m.points

	step := 0.0
	if n > 1 {
		step = (hi - lo) / float64(n-1)
	}

	k := 0 // number of points with Value <= v
	for i := 0; i < n; i++ {
		v := lo + float64(i)*step
		if n > 1 && i == n-1 {
			v = hi
		}
		for k < len(pts) && pts[k].Value <= v {
			k++
		}

		var c RGB
		switch {
		case k == 0:
			c = pts[0].Color
		case k == len(pts):
			c = pts[len(pts)-1].Color
		default:
			p0, p1 := pts[k-1], pts[k]
			t := (v - p0.Value) / (p1.Value - p0.Value)
			c = interp(p0.Color, p1.Color, t)
		}
		table[3*i+0] = c.R
		table[3*i+1] = c.G
		table[3*i+2] = c.B
	}
	return table
}

// resample maps a table onto n slots by nearest slot.
func resample(src []byte, n int) []byte {
	srcN := len(src) / 3
	if srcN == n {
		return append([]byte(nil), src...)
	}
	dst := make([]byte, 3*n)
	for i := 0; i < n; i++ {
		j := 0
		if n > 1 {
			j = int(math.Round(float64(i) * float64(srcN-1) / float64(n-1)))
		}
		copy(dst[3*i:3*i+3], src[3*j:3*j+3])
	}
	return dst
}

// ensureTable builds the table on first use.
func (m *Map) ensureTable() error {
	if m.state != StateEmpty {
		return nil
	}
	return m.Create()
}

// Index returns the color stored in table slot i, with no value mapping.
// It fails with ErrNotCreated before the first Create and with
// ErrIndexOutOfRange for i outside [0, resolution).
func (m *Map) Index(i int) (RGB, error) {
	if m.state == StateEmpty {
		return RGB{}, ErrNotCreated
	}
	n := len(m.table) / 3
	if i < 0 || i >= n {
		return RGB{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
	}
	return m.slot(i), nil
}

// At returns the color for a scalar value. The value is clamped to the
// table's range and mapped onto a slot with the same linear mapping Create
// uses. If no table exists yet, At creates one first; if that fails, At
// logs a warning and returns black.
func (m *Map) At(value float64) RGB {
	if err := m.ensureTable(); err != nil {
		Logger().Warn("colormap: lookup without table", "value", value, "error", err)
		return Black
	}
	return m.slot(m.slotIndex(value))
}

// slotIndex maps a value onto a table slot of the current table.
func (m *Map) slotIndex(value float64) int {
	n := len(m.table) / 3
	lo, hi := m.tableMin, m.tableMax
	if n <= 1 || hi <= lo || math.IsNaN(value) || value <= lo {
		return 0
	}
	if value >= hi {
		return n - 1
	}
	return min(max(floorSlot((value-lo)/(hi-lo)*float64(n-1)), 0), n-1)
}

// slotSnap is the relative distance within which a position counts as
// landing exactly on a slot's sample value.
const slotSnap = 1e-9

// floorSlot floors a fractional slot position. Positions within rounding
// error of an integer snap to it, so a slot's own sample value
// lo+i*(hi-lo)/(n-1) maps back to slot i.
func floorSlot(x float64) int {
	r := math.Round(x)
	if math.Abs(x-r) <= slotSnap*max(1, math.Abs(r)) {
		return int(r)
	}
	return int(math.Floor(x))
}

func (m *Map) slot(i int) RGB {
	return RGB{R: m.table[3*i], G: m.table[3*i+1], B: m.table[3*i+2]}
}

// Table returns a copy of the materialized table: resolution×3 bytes,
// row-major by slot then channel. If no table exists yet, Table creates
// one first; it returns nil if that fails.
func (m *Map) Table() []byte {
	if err := m.ensureTable(); err != nil {
		Logger().Warn("colormap: table requested without table", "error", err)
		return nil
	}
	return append([]byte(nil), m.table...)
}

// Clone returns a deep copy of m. The copy shares no memory with m.
func (m *Map) Clone() *Map {
	c := *m
	c.points = append([]Point(nil), m.points...)
	if m.source != nil {
		c.source = append([]byte(nil), m.source...)
	}
	if m.table != nil {
		c.table = append([]byte(nil), m.table...)
	}
	return &c
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
