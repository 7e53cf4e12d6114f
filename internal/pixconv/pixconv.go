// Package pixconv converts engine images into 8-bit RGBA for upload.
package pixconv

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/hostbridge/format"
	"github.com/gogpu/hostbridge/resource"
)

// ErrUnsupported is returned for formats that have no CPU decoder.
var ErrUnsupported = errors.New("pixconv: unsupported format")

// decoder reads one pixel of a given byte size.
type decoder struct {
	bpp int
	at  func(p []byte) color.Color
}

var decoders = map[format.PixelFormat]decoder{
	format.R8G8_UNorm:          {2, func(p []byte) color.Color { return color.NRGBA{p[0], p[1], 0, 0xff} }},
	format.R8G8B8_UNorm:        {3, rgb8},
	format.R8G8B8_SRGB:         {3, rgb8},
	format.B8G8R8_UNorm:        {3, bgr8},
	format.B8G8R8_SRGB:         {3, bgr8},
	format.B8G8R8A8_UNorm:      {4, bgra8},
	format.B8G8R8A8_SRGB:       {4, bgra8},
	format.A8R8G8B8_UNorm:      {4, argb8},
	format.A8R8G8B8_SRGB:       {4, argb8},
	format.R16_UNorm:           {2, r16},
	format.R16G16B16A16_UNorm:  {8, rgba16},
	format.R16G16B16A16_SFloat: {8, rgba16f},
	format.R32G32B32A32_SFloat: {16, rgba32f},
	format.B5G6R5_UNormPack16:  {2, b5g6r5},
}

func rgb8(p []byte) color.Color  { return color.NRGBA{p[0], p[1], p[2], 0xff} }
func bgr8(p []byte) color.Color  { return color.NRGBA{p[2], p[1], p[0], 0xff} }
func bgra8(p []byte) color.Color { return color.NRGBA{p[2], p[1], p[0], p[3]} }
func argb8(p []byte) color.Color { return color.NRGBA{p[1], p[2], p[3], p[0]} }

func r16(p []byte) color.Color {
	return color.Gray16{binary.LittleEndian.Uint16(p)}
}

func rgba16(p []byte) color.Color {
	le := binary.LittleEndian
	return color.NRGBA64{le.Uint16(p), le.Uint16(p[2:]), le.Uint16(p[4:]), le.Uint16(p[6:])}
}

func rgba16f(p []byte) color.Color {
	le := binary.LittleEndian
	return color.NRGBA{
		unorm8(halfToFloat(le.Uint16(p))),
		unorm8(halfToFloat(le.Uint16(p[2:]))),
		unorm8(halfToFloat(le.Uint16(p[4:]))),
		unorm8(halfToFloat(le.Uint16(p[6:]))),
	}
}

func rgba32f(p []byte) color.Color {
	le := binary.LittleEndian
	f := func(i int) float32 { return math.Float32frombits(le.Uint32(p[i:])) }
	return color.NRGBA{unorm8(f(0)), unorm8(f(4)), unorm8(f(8)), unorm8(f(12))}
}

// b5g6r5 decodes the packed 16-bit layout with blue in the high bits.
func b5g6r5(p []byte) color.Color {
	v := binary.LittleEndian.Uint16(p)
	r := uint8(v & 0x1f)
	g := uint8(v >> 5 & 0x3f)
	b := uint8(v >> 11)
	return color.NRGBA{r<<3 | r>>2, g<<2 | g>>4, b<<3 | b>>2, 0xff}
}

// unorm8 clamps f to [0, 1] and scales it to a byte.
func unorm8(f float32) uint8 {
	switch {
	case f != f || f <= 0: // NaN or negative
		return 0
	case f >= 1:
		return 0xff
	}
	return uint8(f*255 + 0.5)
}

// halfToFloat converts an IEEE 754 binary16 value.
func halfToFloat(h uint16) float32 {
	sign := uint32(h>>15) << 31
	exp := uint32(h>>10) & 0x1f
	mant := uint32(h) & 0x3ff
	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// subnormal
		f := float32(mant) / (1 << 24)
		if sign != 0 {
			f = -f
		}
		return f
	case 0x1f:
		return math.Float32frombits(sign | 0xff<<23 | mant<<13)
	}
	return math.Float32frombits(sign | (exp+127-15)<<23 | mant<<13)
}

// view presents a packed pixel buffer as an image.Image.
type view struct {
	pix    []byte
	stride int
	rect   image.Rectangle
	dec    decoder
}

func (v *view) ColorModel() color.Model { return color.NRGBAModel }
func (v *view) Bounds() image.Rectangle { return v.rect }

func (v *view) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(v.rect)) {
		return color.NRGBA{}
	}
	i := y*v.stride + x*v.dec.bpp
	return v.dec.at(v.pix[i : i+v.dec.bpp])
}

// Supported reports whether Decode accepts images of format f.
func Supported(f format.PixelFormat) bool {
	switch f {
	case format.R8G8B8A8_UNorm, format.R8G8B8A8_SRGB, format.R8_UNorm, format.L8_UNorm, format.A8_UNorm:
		return true
	}
	_, ok := decoders[f]
	return ok
}

// Decode returns ref as an image without copying the pixel data.
func Decode(ref *resource.ImageReference) (image.Image, error) {
	img, err := ref.Image()
	if err == nil {
		return img, nil
	}
	if !errors.Is(err, resource.ErrNotViewable) {
		return nil, err
	}
	dec, ok := decoders[ref.Format]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, ref.Format)
	}
	return &view{
		pix:    ref.Data,
		stride: int(ref.Pitch),
		rect:   image.Rect(0, 0, int(ref.Width), int(ref.Height)),
		dec:    dec,
	}, nil
}

// FitSize returns the size of a w x h image scaled down, preserving the
// aspect ratio, so that neither side exceeds maxSize. A maxSize of zero or
// less means no limit.
func FitSize(w, h, maxSize int) (int, int) {
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return w, h
	}
	if w >= h {
		return maxSize, max(1, h*maxSize/w)
	}
	return max(1, w*maxSize/h), maxSize
}

// ToNRGBA converts ref to non-premultiplied 8-bit RGBA, downscaling it when
// a side exceeds maxSize.
func ToNRGBA(ref *resource.ImageReference, maxSize int) (*image.NRGBA, error) {
	src, err := Decode(ref)
	if err != nil {
		return nil, err
	}
	sb := src.Bounds()
	w, h := FitSize(sb.Dx(), sb.Dy(), maxSize)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	if w == sb.Dx() && h == sb.Dy() {
		if n, ok := src.(*image.NRGBA); ok {
			for y := 0; y < h; y++ {
				copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], n.Pix[y*n.Stride:])
			}
			return dst, nil
		}
		xdraw.Draw(dst, dst.Bounds(), src, sb.Min, xdraw.Src)
		return dst, nil
	}

	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst, nil
}
