package line

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/gogpu/naga"
)

//go:embed shaders/stylized_line.wgsl
var stylizedLineWGSL string

// ShadingModel selects the lighting equation applied to stroke fragments.
type ShadingModel uint8

const (
	// NoShading outputs the vertex color unlit.
	NoShading ShadingModel = iota
	// LambertShading applies ambient and diffuse terms.
	LambertShading
	// PhongShading adds a specular term from the reflected light vector.
	PhongShading
	// BlinnPhongShading adds a specular term from the half vector.
	BlinnPhongShading
)

// String returns the shading model name.
func (m ShadingModel) String() string {
	switch m {
	case NoShading:
		return "none"
	case LambertShading:
		return "lambert"
	case PhongShading:
		return "phong"
	case BlinnPhongShading:
		return "blinn-phong"
	default:
		return fmt.Sprintf("ShadingModel(%d)", uint8(m))
	}
}

// Shading holds a lighting model and its coefficients: ambient Ka, diffuse
// Kd, specular Ks and shininess S.
type Shading struct {
	Model         ShadingModel
	Ka, Kd, Ks, S float32
}

// Lambert returns diffuse-only shading.
func Lambert() Shading {
	return Shading{Model: LambertShading, Ka: 0.4, Kd: 0.6}
}

// Phong returns Phong shading with a moderate highlight.
func Phong() Shading {
	return Shading{Model: PhongShading, Ka: 0.3, Kd: 0.5, Ks: 0.8, S: 20}
}

// BlinnPhong returns Blinn-Phong shading with a moderate highlight.
func BlinnPhong() Shading {
	return Shading{Model: BlinnPhongShading, Ka: 0.3, Kd: 0.5, Ks: 0.8, S: 20}
}

// Uniform returns the coefficients in the order the shader reads them.
func (s Shading) Uniform() [4]float32 {
	return [4]float32{s.Ka, s.Kd, s.Ks, s.S}
}

// ShaderSource returns the WGSL source of the stylized line shader for the
// given shading model. twoSided flips normals facing away from the viewer
// before lighting.
func ShaderSource(model ShadingModel, twoSided bool) string {
	side := 0
	if twoSided {
		side = 1
	}
	var b strings.Builder
	fmt.Fprintf(&b, "const SHADING_MODEL: u32 = %du;\n", uint8(model))
	fmt.Fprintf(&b, "const TWO_SIDED: u32 = %du;\n\n", side)
	b.WriteString(stylizedLineWGSL)
	return b.String()
}

// CompileShader compiles WGSL source to SPIR-V words.
func CompileShader(source string) ([]uint32, error) {
	spirv, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("line: compile shader: %w", err)
	}

	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirv[4*i:])
	}
	return words, nil
}
