package colormap

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ImageFormat selects an encoding for colorbar images.
type ImageFormat uint8

const (
	// FormatPNG encodes with image/png.
	FormatPNG ImageFormat = iota
	// FormatBMP encodes with golang.org/x/image/bmp.
	FormatBMP
	// FormatTIFF encodes with golang.org/x/image/tiff (deflate compressed).
	FormatTIFF
)

// String returns the conventional file extension without the dot.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("ImageFormat(%d)", uint8(f))
	}
}

// ParseImageFormat maps a format name or file name to an ImageFormat,
// e.g. "png", "out.bmp", "bar.tif".
func ParseImageFormat(name string) (ImageFormat, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		ext = strings.ToLower(name)
	}
	switch ext {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Image renders the table as a horizontal colorbar: one column per slot,
// lowest value on the left. Height is at least 1. The table is created
// first if needed; nil is returned if that fails.
func (m *Map) Image(height int) *image.RGBA {
	if err := m.ensureTable(); err != nil {
		Logger().Warn("colormap: image without table", "error", err)
		return nil
	}
	height = max(height, 1)
	n := len(m.table) / 3
	img := image.NewRGBA(image.Rect(0, 0, n, height))
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < n; x++ {
			row[4*x+0] = m.table[3*x+0]
			row[4*x+1] = m.table[3*x+1]
			row[4*x+2] = m.table[3*x+2]
			row[4*x+3] = 0xff
		}
	}
	return img
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f ImageFormat) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// SaveImage writes the colorbar of m to path, choosing the format from the
// file extension.
func (m *Map) SaveImage(path string, height int) error {
	f, err := ParseImageFormat(path)
	if err != nil {
		return err
	}
	img := m.Image(height)
	if img == nil {
		return fmt.Errorf("colormap: save %s: %w", path, ErrInvalidResolution)
	}

	out, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()
	return Encode(out, img, f)
}
