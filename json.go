package colormap

import (
	"encoding/json"
	"fmt"
)

// document is the JSON form of a Map. Only configuration is saved: the
// table is rebuilt on demand after loading, except for table-backed maps
// whose table is their configuration.
type document struct {
	Space      string          `json:"space"`
	Resolution int             `json:"resolution"`
	Range      *[2]float64     `json:"range,omitempty"`
	Points     []pointDocument `json:"points,omitempty"`
	Table      []string        `json:"table,omitempty"`
}

type pointDocument struct {
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// MarshalJSON implements json.Marshaler.
//
//	{"space":"hsv","resolution":256,"range":[0,100],
//	 "points":[{"value":0,"color":"#0000ff"},{"value":100,"color":"#ff0000"}]}
func (m *Map) MarshalJSON() ([]byte, error) {
	doc := document{
		Space:      m.space.String(),
		Resolution: m.resolution,
	}
	if m.hasRange {
		doc.Range = &[2]float64{m.min, m.max}
	}
	for _, p := range m.points {
		doc.Points = append(doc.Points, pointDocument{Value: p.Value, Color: p.Color.Hex()})
	}
	if len(m.points) == 0 && m.source != nil {
		for i := 0; i+2 < len(m.source); i += 3 {
			c := RGB{R: m.source[i], G: m.source[i+1], B: m.source[i+2]}
			doc.Table = append(doc.Table, c.Hex())
		}
	}
	return json.Marshal(doc)
}

// UnmarshalJSON implements json.Unmarshaler. It replaces the whole
// configuration of m; the table is left unbuilt unless the document
// carries one.
func (m *Map) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("colormap: decode: %w", err)
	}

	space, err := ParseColorSpace(doc.Space)
	if err != nil {
		return err
	}

	next := New(WithColorSpace(space), WithResolution(doc.Resolution))
	if doc.Range != nil {
		next.SetRange(doc.Range[0], doc.Range[1])
	}
	for _, p := range doc.Points {
		c, err := ParseColor(p.Color)
		if err != nil {
			return fmt.Errorf("colormap: point at %v: %w", p.Value, err)
		}
		next.AddPoint(p.Value, c)
	}

	if len(doc.Table) > 0 {
		source := make([]byte, 0, 3*len(doc.Table))
		for i, s := range doc.Table {
			c, err := ParseColor(s)
			if err != nil {
				return fmt.Errorf("colormap: table slot %d: %w", i, err)
			}
			source = append(source, c.R, c.G, c.B)
		}
		next.source = source
		if doc.Resolution == 0 {
			next.resolution = len(doc.Table)
		}
		if len(next.points) == 0 {
			if err := next.Create(); err != nil {
				return err
			}
		}
	}

	*m = *next
	return nil
}
