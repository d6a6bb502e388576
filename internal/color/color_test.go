package color

import (
	"math"
	"testing"
)

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"in range", 123.5, 123.5},
		{"full turn", 360, 0},
		{"over", 370, 10},
		{"negative", -10, 350},
		{"many turns", 725, 5},
		{"tiny negative", -1e-15, 0},
		{"nan", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeHue(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NormalizeHue(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got < 0 || got >= HueRange {
				t.Errorf("NormalizeHue(%v) = %v, outside [0, 360)", tt.in, got)
			}
		})
	}
}

func TestLerpHue(t *testing.T) {
	tests := []struct {
		name   string
		h0, h1 float64
		t      float64
		want   float64
	}{
		{"forward", 0, 120, 0.5, 60},
		{"backward", 120, 0, 0.5, 60},
		{"wrap 350 to 10", 350, 10, 0.5, 0},
		{"wrap 10 to 350", 10, 350, 0.5, 0},
		{"wrap quarter", 350, 10, 0.25, 355},
		{"start", 350, 10, 0, 350},
		{"end", 350, 10, 1, 10},
		{"same", 200, 200, 0.7, 200},
		{"exactly half circle", 0, 180, 0.5, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LerpHue(tt.h0, tt.h1, tt.t)
			if hueDistance(got, tt.want) > 1e-9 {
				t.Errorf("LerpHue(%v, %v, %v) = %v, want %v", tt.h0, tt.h1, tt.t, got, tt.want)
			}
		})
	}
}

func TestLerpHSVAchromatic(t *testing.T) {
	// Gray has no hue; blending toward blue must stay on blue.
	h, s, v := LerpHSV(0, 0, 0.5, 240, 1, 1, 0.5)
	if h != 240 {
		t.Errorf("hue = %v, want 240", h)
	}
	if math.Abs(s-0.5) > 1e-9 || math.Abs(v-0.75) > 1e-9 {
		t.Errorf("s, v = %v, %v, want 0.5, 0.75", s, v)
	}
}

func TestHSVRoundTrip(t *testing.T) {
	colors := [][3]uint8{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{12, 200, 99},
		{128, 128, 128},
		{250, 10, 240},
	}
	for _, c := range colors {
		h, s, v := RGBToHSV(c[0], c[1], c[2])
		r, g, b := HSVToRGB(h, s, v)
		if r != c[0] || g != c[1] || b != c[2] {
			t.Errorf("round trip %v -> (%v, %v, %v) -> %v", c, h, s, v, [3]uint8{r, g, b})
		}
	}
}

func TestHSVToRGBPrimaries(t *testing.T) {
	tests := []struct {
		h       float64
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{360, 255, 0, 0},
		{120, 0, 255, 0},
		{240, 0, 0, 255},
		{-120, 0, 0, 255},
		{60, 255, 255, 0},
	}
	for _, tt := range tests {
		r, g, b := HSVToRGB(tt.h, 1, 1)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("HSVToRGB(%v, 1, 1) = (%d, %d, %d), want (%d, %d, %d)", tt.h, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{2, 255},
		{127.0 / 255.0, 127},
	}
	for _, tt := range tests {
		if got := Quantize(tt.in); got != tt.want {
			t.Errorf("Quantize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLerp8(t *testing.T) {
	tests := []struct {
		a, b uint8
		t    float64
		want uint8
	}{
		{0, 255, 0, 0},
		{0, 255, 1, 255},
		{0, 254, 0.5, 127},
		{255, 0, 0.5, 128},
		{10, 20, -1, 10},
		{10, 20, 2, 20},
	}
	for _, tt := range tests {
		if got := Lerp8(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("Lerp8(%d, %d, %v) = %d, want %d", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

// TestSRGBToLinearAccuracy tests that the LUT matches the math.Pow reference.
func TestSRGBToLinearAccuracy(t *testing.T) {
	for i := 0; i < 256; i++ {
		fast := SRGBToLinearFast(uint8(i))
		slow := SRGBToLinearSlow(uint8(i))
		if fast != slow {
			t.Errorf("sRGB %d: fast=%f, slow=%f", i, fast, slow)
		}
	}
	if got := SRGBToLinearFast(255); math.Abs(float64(got)-1) > 1e-6 {
		t.Errorf("SRGBToLinearFast(255) = %v, want 1", got)
	}
	if got := SRGBToLinearFast(0); got != 0 {
		t.Errorf("SRGBToLinearFast(0) = %v, want 0", got)
	}
}

func BenchmarkSRGBToLinearFast(b *testing.B) {
	var sum float32
	for i := 0; i < b.N; i++ {
		sum += SRGBToLinearFast(uint8(i))
	}
	_ = sum
}

func BenchmarkSRGBToLinearSlow(b *testing.B) {
	var sum float32
	for i := 0; i < b.N; i++ {
		sum += SRGBToLinearSlow(uint8(i))
	}
	_ = sum
}

func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, HueRange-d)
}
