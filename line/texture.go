package line

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/colormap"
	icolor "github.com/gogpu/colormap/internal/color"
	"github.com/gogpu/gputypes"
)

// DefaultShapeResolution is the edge length of the shape texture.
const DefaultShapeResolution = 256

// Texture is texel data ready for upload, together with the descriptors a
// GPU backend needs to create the texture and its sampler.
type Texture struct {
	Descriptor gputypes.TextureDescriptor
	Sampler    gputypes.SamplerDescriptor
	// Data holds tightly packed rows, lowest row first.
	Data []byte
}

// BytesPerRow returns the row pitch of Data.
func (t *Texture) BytesPerRow() uint32 {
	return t.Descriptor.Size.Width * bytesPerTexel(t.Descriptor.Format)
}

func bytesPerTexel(f gputypes.TextureFormat) uint32 {
	switch f {
	case gputypes.TextureFormatRGBA32Float:
		return 16
	default:
		return 4
	}
}

func textureDescriptor(label string, dim gputypes.TextureDimension, w, h uint32, f gputypes.TextureFormat) gputypes.TextureDescriptor {
	return gputypes.TextureDescriptor{
		Label:         label,
		Size:          gputypes.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     dim,
		Format:        f,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}

func samplerDescriptor(label string, address gputypes.AddressMode, filter gputypes.FilterMode) gputypes.SamplerDescriptor {
	s := gputypes.DefaultSamplerDescriptor()
	s.Label = label
	s.AddressModeU = address
	s.AddressModeV = address
	s.AddressModeW = address
	s.MagFilter = filter
	s.MinFilter = filter
	return s
}

func appendFloat32(dst []byte, fs ...float32) []byte {
	for _, f := range fs {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}

// ShapeTexture returns the cross-section profile of a cylinder: for x in
// [-1, 1) across a texel row, r = x/2+1/2 and g = b = sqrt(1-x²). Every row
// is the same. The texture repeats and is sampled nearest.
func ShapeTexture(resolution int) (*Texture, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidResolution, resolution)
	}

	row := make([]byte, 0, 16*resolution)
	for i := 0; i < resolution; i++ {
		x := float32(i)*2/float32(resolution) - 1
		h := float32(math.Sqrt(float64(1 - x*x)))
		row = appendFloat32(row, x*0.5+0.5, h, h, 1)
	}
	data := make([]byte, 0, len(row)*resolution)
	for j := 0; j < resolution; j++ {
		data = append(data, row...)
	}

	n := uint32(resolution)
	return &Texture{
		Descriptor: textureDescriptor("line shape", gputypes.TextureDimension2D, n, n, gputypes.TextureFormatRGBA32Float),
		Sampler:    samplerDescriptor("line shape", gputypes.AddressModeRepeat, gputypes.FilterModeNearest),
		Data:       data,
	}, nil
}

// DiffuseTexture returns a 1×1 opaque white texture that leaves vertex
// colors unmodulated.
func DiffuseTexture() *Texture {
	return &Texture{
		Descriptor: textureDescriptor("line diffuse", gputypes.TextureDimension2D, 1, 1, gputypes.TextureFormatRGBA8Unorm),
		Sampler:    samplerDescriptor("line diffuse", gputypes.AddressModeRepeat, gputypes.FilterModeLinear),
		Data:       []byte{0xff, 0xff, 0xff, 0xff},
	}
}

// ColorMapTexture returns m's table as a 1-D lookup texture with one texel
// per slot. With linear false the texels are the table's sRGB bytes in an
// RGBA8UnormSrgb texture; with linear true they are converted to linear
// light and stored as RGBA32Float.
func ColorMapTexture(m *colormap.Map, linear bool) (*Texture, error) {
	table := m.Table()
	if table == nil {
		return nil, ErrNoTable
	}
	n := len(table) / 3

	var (
		format gputypes.TextureFormat
		data   []byte
	)
	if linear {
		format = gputypes.TextureFormatRGBA32Float
		data = make([]byte, 0, 16*n)
		for i := 0; i < n; i++ {
			data = appendFloat32(data,
				icolor.SRGBToLinearFast(table[3*i]),
				icolor.SRGBToLinearFast(table[3*i+1]),
				icolor.SRGBToLinearFast(table[3*i+2]),
				1)
		}
	} else {
		format = gputypes.TextureFormatRGBA8UnormSrgb
		data = make([]byte, 0, 4*n)
		for i := 0; i < n; i++ {
			data = append(data, table[3*i], table[3*i+1], table[3*i+2], 0xff)
		}
	}

	return &Texture{
		Descriptor: textureDescriptor("line colormap", gputypes.TextureDimension1D, uint32(n), 1, format),
		Sampler:    samplerDescriptor("line colormap", gputypes.AddressModeClampToEdge, gputypes.FilterModeLinear),
		Data:       data,
	}, nil
}
