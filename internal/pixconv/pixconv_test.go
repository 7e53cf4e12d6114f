package pixconv

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/hostbridge/format"
	"github.com/gogpu/hostbridge/resource"
)

func TestDecode_Pixel(t *testing.T) {
	tests := []struct {
		name   string
		format format.PixelFormat
		pixel  []byte
		want   color.NRGBA
	}{
		{"rgba8", format.R8G8B8A8_SRGB, []byte{10, 20, 30, 40}, color.NRGBA{10, 20, 30, 40}},
		{"bgra8", format.B8G8R8A8_UNorm, []byte{30, 20, 10, 40}, color.NRGBA{10, 20, 30, 40}},
		{"argb8", format.A8R8G8B8_UNorm, []byte{40, 10, 20, 30}, color.NRGBA{10, 20, 30, 40}},
		{"rgb8", format.R8G8B8_UNorm, []byte{10, 20, 30}, color.NRGBA{10, 20, 30, 255}},
		{"bgr8", format.B8G8R8_SRGB, []byte{30, 20, 10}, color.NRGBA{10, 20, 30, 255}},
		{"rg8", format.R8G8_UNorm, []byte{10, 20}, color.NRGBA{10, 20, 0, 255}},
		{"r8", format.R8_UNorm, []byte{99}, color.NRGBA{99, 99, 99, 255}},
		{"half white", format.R16G16B16A16_SFloat, []byte{0, 0x3c, 0, 0x3c, 0, 0x3c, 0, 0x3c}, color.NRGBA{255, 255, 255, 255}},
		{"half clamps", format.R16G16B16A16_SFloat, []byte{0, 0x40, 0, 0xbc, 0, 0, 0, 0x3c}, color.NRGBA{255, 0, 0, 255}},
		{"b5g6r5 red", format.B5G6R5_UNormPack16, []byte{0x1f, 0x00}, color.NRGBA{255, 0, 0, 255}},
		{"b5g6r5 blue", format.B5G6R5_UNormPack16, []byte{0x00, 0xf8}, color.NRGBA{0, 0, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := &resource.ImageReference{
				Format: tt.format,
				Width:  1,
				Height: 1,
				Pitch:  int32(len(tt.pixel)),
				Data:   tt.pixel,
			}
			img, err := Decode(ref)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			got := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
			if got != tt.want {
				t.Errorf("At(0, 0) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecode_Unsupported(t *testing.T) {
	ref := &resource.ImageReference{
		Format: format.RGBA_DXT1_UNorm,
		Width:  4,
		Height: 4,
		Pitch:  8,
		Data:   make([]byte, 8),
	}
	if _, err := Decode(ref); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Decode() error = %v, want ErrUnsupported", err)
	}
	if Supported(format.RGBA_DXT1_UNorm) {
		t.Error("Supported(RGBA_DXT1_UNorm) = true")
	}
	if !Supported(format.R8G8B8A8_UNorm) || !Supported(format.B8G8R8A8_SRGB) {
		t.Error("Supported() = false for 8-bit RGBA formats")
	}
}

func TestDecode_Invalid(t *testing.T) {
	ref := &resource.ImageReference{Format: format.B8G8R8A8_UNorm, Width: 2, Height: 2, Pitch: 8, Data: make([]byte, 4)}
	if _, err := Decode(ref); !errors.Is(err, resource.ErrInvalidDescriptor) {
		t.Errorf("Decode() error = %v, want ErrInvalidDescriptor", err)
	}
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		w, h, max    int
		wantW, wantH int
	}{
		{100, 50, 0, 100, 50},
		{100, 50, 100, 100, 50},
		{200, 100, 100, 100, 50},
		{100, 400, 100, 25, 100},
		{1000, 1, 10, 10, 1},
	}
	for _, tt := range tests {
		w, h := FitSize(tt.w, tt.h, tt.max)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("FitSize(%d, %d, %d) = %d, %d, want %d, %d", tt.w, tt.h, tt.max, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestToNRGBA_Padded(t *testing.T) {
	// 2x2 BGRA with 4 bytes of row padding.
	ref := &resource.ImageReference{
		Format: format.B8G8R8A8_UNorm,
		Width:  2,
		Height: 2,
		Pitch:  12,
		Data: []byte{
			3, 2, 1, 255, 6, 5, 4, 255, 0, 0, 0, 0,
			9, 8, 7, 255, 12, 11, 10, 255,
		},
	}
	img, err := ToNRGBA(ref, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{1, 2, 3, 255, 4, 5, 6, 255, 7, 8, 9, 255, 10, 11, 12, 255}
	if string(img.Pix) != string(want) {
		t.Errorf("Pix = %v, want %v", img.Pix, want)
	}
}

func TestToNRGBA_CopiesRGBA(t *testing.T) {
	data := []byte{1, 2, 3, 4, 9, 9, 5, 6, 7, 8, 9, 9}
	ref := &resource.ImageReference{Format: format.R8G8B8A8_UNorm, Width: 1, Height: 2, Pitch: 6, Data: data}
	img, err := ToNRGBA(ref, 0)
	if err != nil {
		t.Fatal(err)
	}
	if string(img.Pix) != string([]byte{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("Pix = %v", img.Pix)
	}
	data[0] = 0
	if img.Pix[0] != 1 {
		t.Error("result aliases the source data")
	}
}

func TestToNRGBA_Downscale(t *testing.T) {
	const size = 64
	data := make([]byte, size*size*4)
	for i := range data {
		data[i] = 200
	}
	ref := &resource.ImageReference{Format: format.R8G8B8A8_UNorm, Width: size, Height: size / 2, Pitch: size * 4, Data: data}

	img, err := ToNRGBA(ref, 16)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Fatalf("Bounds() = %v, want 16x8", b)
	}
	// A uniform image stays uniform after filtering.
	c := img.NRGBAAt(8, 4)
	if diff := math.Abs(float64(c.R) - 200); diff > 1 {
		t.Errorf("NRGBAAt(8, 4) = %v, want about 200", c)
	}
}

func TestHalfToFloat(t *testing.T) {
	tests := []struct {
		h    uint16
		want float32
	}{
		{0x0000, 0},
		{0x3c00, 1},
		{0xc000, -2},
		{0x3800, 0.5},
		{0x0001, 1.0 / (1 << 24)},
	}
	for _, tt := range tests {
		if got := halfToFloat(tt.h); got != tt.want {
			t.Errorf("halfToFloat(%#04x) = %v, want %v", tt.h, got, tt.want)
		}
	}
	if got := halfToFloat(0x7c00); !math.IsInf(float64(got), 1) {
		t.Errorf("halfToFloat(0x7c00) = %v, want +Inf", got)
	}
}
