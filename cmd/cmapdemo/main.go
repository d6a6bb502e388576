// Command cmapdemo builds a color map, queries it and exports a colorbar.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/colormap"
	"github.com/gogpu/colormap/line"
)

func main() {
	var (
		preset  = flag.String("preset", "", "built-in map: "+strings.Join(colormap.PresetNames(), ", "))
		points  = flag.String("points", "", "control points as value:color pairs, e.g. 0:black,1:#ff0000")
		space   = flag.String("space", "", "interpolation color space: rgb or hsv")
		res     = flag.Int("res", colormap.DefaultResolution, "table resolution")
		minVal  = flag.Float64("min", math.NaN(), "range minimum")
		maxVal  = flag.Float64("max", math.NaN(), "range maximum")
		at      = flag.String("at", "", "comma-separated values to look up")
		output  = flag.String("out", "", "colorbar image file (.png, .bmp, .tif)")
		height  = flag.Int("height", 32, "colorbar height")
		dump    = flag.Bool("json", false, "print the map configuration as JSON")
		tube    = flag.Int("tube", 0, "prepare a helix of n vertices colored by the map and report the batch")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		colormap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	m, err := buildMap(*preset, *points, *space, *res, *minVal, *maxVal)
	if err != nil {
		log.Fatalf("Failed to build map: %v", err)
	}
	if err := m.Create(); err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	if *at != "" {
		for _, s := range strings.Split(*at, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				log.Fatalf("Bad value %q: %v", s, err)
			}
			c := m.At(v)
			fmt.Printf("%g\t%s\t%d %d %d\n", v, c.Hex(), c.R, c.G, c.B)
		}
	}

	if *dump {
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode: %v", err)
		}
		fmt.Println(string(data))
	}

	if *tube > 0 {
		if err := reportTube(m, *tube); err != nil {
			log.Fatalf("Failed to prepare tube: %v", err)
		}
	}

	if *output != "" {
		if err := m.SaveImage(*output, *height); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Colorbar saved to %s (%dx%d)\n", *output, m.Resolution(), max(*height, 1))
	}
}

func buildMap(preset, points, space string, res int, lo, hi float64) (*colormap.Map, error) {
	opts := []colormap.Option{colormap.WithResolution(res)}
	if !math.IsNaN(lo) && !math.IsNaN(hi) {
		opts = append(opts, colormap.WithRange(lo, hi))
	}
	if space != "" {
		s, err := colormap.ParseColorSpace(space)
		if err != nil {
			return nil, err
		}
		opts = append(opts, colormap.WithColorSpace(s))
	}
	pts, err := parsePoints(points)
	if err != nil {
		return nil, err
	}
	opts = append(opts, colormap.WithPoints(pts...))

	if preset == "" && len(pts) == 0 {
		preset = "rainbow"
	}
	if preset != "" {
		return colormap.Preset(preset, opts...)
	}
	return colormap.New(opts...), nil
}

// parsePoints parses "value:color" pairs separated by commas.
func parsePoints(s string) ([]colormap.Point, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var pts []colormap.Point
	for _, field := range strings.Split(s, ",") {
		value, color, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("point %q: want value:color", field)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", field, err)
		}
		c, err := colormap.ParseColor(color)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", field, err)
		}
		pts = append(pts, colormap.Point{Value: v, Color: c})
	}
	return pts, nil
}

// reportTube colors a helix by height through m and prints the prepared
// batch.
func reportTube(m *colormap.Map, n int) error {
	coords := make([]float32, 0, 3*n)
	scalars := make([]float64, 0, n)
	lo, hi := m.MinValue(), m.MaxValue()
	for i := 0; i < n; i++ {
		t := float64(i) / float64(max(n-1, 1))
		a := 4 * math.Pi * t
		coords = append(coords, float32(math.Cos(a)), float32(math.Sin(a)), float32(t))
		scalars = append(scalars, lo+t*(hi-lo))
	}

	obj := &line.Object{
		Coords:    coords,
		Colors:    line.MapScalars(scalars, m),
		LineType:  line.Strip,
		ColorType: line.VertexColor,
	}
	b, err := line.NewRenderer(line.WithShading(line.BlinnPhong())).Prepare(obj)
	if err != nil {
		return err
	}
	fmt.Printf("tube: %d strips, %d vertices, %d vertex bytes, %d SPIR-V words, shading %v\n",
		len(b.Strips), b.VertexCount(), len(b.VertexBytes()), len(b.SPIRV), b.Shading.Model)
	return nil
}
