package format

import (
	"errors"
	"fmt"
)

// Translation errors.
var (
	// ErrUnsupportedFormat is returned for Unknown, None, out-of-range values
	// and uncompressed formats the host cannot represent.
	ErrUnsupportedFormat = errors.New("format: unsupported pixel format")

	// ErrObsoleteFormat is returned for withdrawn formats.
	ErrObsoleteFormat = errors.New("format: obsolete pixel format")

	// ErrNoDecoder is returned for compressed formats the target GPU cannot
	// sample. Compressed data is never replaced by an uncompressed format.
	ErrNoDecoder = errors.New("format: no decoder for compressed format")
)

// TranslateError describes a failed translation.
type TranslateError struct {
	Format   PixelFormat
	AppleGPU bool
	Err      error
}

func (e *TranslateError) Error() string {
	return fmt.Sprintf("%v (appleGPU=%t): %v", e.Format, e.AppleGPU, e.Err)
}

func (e *TranslateError) Unwrap() error { return e.Err }

// Outcome classifies a translation result.
type Outcome uint8

// Translation outcomes.
const (
	Failed Outcome = iota
	Exact
	Adjusted
)

func (o Outcome) String() string {
	switch o {
	case Exact:
		return "exact"
	case Adjusted:
		return "adjusted"
	default:
		return "failed"
	}
}

// Translation is the result of mapping an engine format to the host.
type Translation struct {
	// Requested is the format passed to Translate.
	Requested PixelFormat

	// Format is the engine format the host texture actually has. It differs
	// from Requested when a fallback was taken, and the producer must convert
	// its data to this layout.
	Format PixelFormat

	// Native is the host format for Format.
	Native NativeFormat
}

// Adjusted reports whether a substitute format was chosen.
func (t Translation) Adjusted() bool {
	return t.Format != t.Requested
}

// Outcome classifies t. The zero Native means the translation failed.
func (t Translation) Outcome() Outcome {
	switch {
	case t.Native == NativeInvalid:
		return Failed
	case t.Adjusted():
		return Adjusted
	default:
		return Exact
	}
}

// gate restricts a native format to one GPU family.
type gate uint8

const (
	gateAny gate = iota
	gateApple
	gateNonApple
)

func (g gate) admits(appleGPU bool) bool {
	switch g {
	case gateApple:
		return appleGPU
	case gateNonApple:
		return !appleGPU
	default:
		return true
	}
}

func (g gate) String() string {
	switch g {
	case gateApple:
		return "apple"
	case gateNonApple:
		return "non-apple"
	default:
		return "any"
	}
}

// mapping is one row of the translation table. A zero native means the host
// has no direct equivalent; a None fallback means there is nothing to
// substitute.
type mapping struct {
	native   NativeFormat
	gate     gate
	fallback PixelFormat
}

func direct(n NativeFormat) mapping { return mapping{native: n} }
func apple(n NativeFormat) mapping { return mapping{native: n, gate: gateApple} }
func nonApple(n NativeFormat) mapping { return mapping{native: n, gate: gateNonApple} }
func substitute(f PixelFormat) mapping { return mapping{fallback: f} }

// or sets the format used when the native format is gated out.
func (m mapping) or(f PixelFormat) mapping {
	m.fallback = f
	return m
}

func (m mapping) gated() bool {
	return m.native != NativeInvalid && m.gate != gateAny
}

func (m mapping) hasNative(appleGPU bool) bool {
	return m.native != NativeInvalid && m.gate.admits(appleGPU)
}

var mappings = [count]mapping{
	R8_SRGB:       apple(NativeR8UnormSRGB).or(R8G8B8A8_SRGB),
	R8G8_SRGB:     apple(NativeRG8UnormSRGB).or(R8G8B8A8_SRGB),
	R8G8B8_SRGB:   substitute(R8G8B8A8_SRGB),
	R8G8B8A8_SRGB: direct(NativeRGBA8UnormSRGB),

	R8_UNorm:       direct(NativeR8Unorm),
	R8G8_UNorm:     direct(NativeRG8Unorm),
	R8G8B8_UNorm:   substitute(R8G8B8A8_UNorm),
	R8G8B8A8_UNorm: direct(NativeRGBA8Unorm),
	R8_SNorm:       direct(NativeR8Snorm),
	R8G8_SNorm:     direct(NativeRG8Snorm),
	R8G8B8_SNorm:   substitute(R8G8B8A8_SNorm),
	R8G8B8A8_SNorm: direct(NativeRGBA8Snorm),
	R8_UInt:        direct(NativeR8Uint),
	R8G8_UInt:      direct(NativeRG8Uint),
	R8G8B8_UInt:    substitute(R8G8B8A8_UInt),
	R8G8B8A8_UInt:  direct(NativeRGBA8Uint),
	R8_SInt:        direct(NativeR8Sint),
	R8G8_SInt:      direct(NativeRG8Sint),
	R8G8B8_SInt:    substitute(R8G8B8A8_SInt),
	R8G8B8A8_SInt:  direct(NativeRGBA8Sint),

	R16_UNorm:          direct(NativeR16Unorm),
	R16G16_UNorm:       direct(NativeRG16Unorm),
	R16G16B16_UNorm:    substitute(R16G16B16A16_UNorm),
	R16G16B16A16_UNorm: direct(NativeRGBA16Unorm),
	R16_SNorm:          direct(NativeR16Snorm),
	R16G16_SNorm:       direct(NativeRG16Snorm),
	R16G16B16_SNorm:    substitute(R16G16B16A16_SNorm),
	R16G16B16A16_SNorm: direct(NativeRGBA16Snorm),
	R16_UInt:           direct(NativeR16Uint),
	R16G16_UInt:        direct(NativeRG16Uint),
	R16G16B16_UInt:     substitute(R16G16B16A16_UInt),
	R16G16B16A16_UInt:  direct(NativeRGBA16Uint),
	R16_SInt:           direct(NativeR16Sint),
	R16G16_SInt:        direct(NativeRG16Sint),
	R16G16B16_SInt:     substitute(R16G16B16A16_SInt),
	R16G16B16A16_SInt:  direct(NativeRGBA16Sint),

	R32_UInt:          direct(NativeR32Uint),
	R32G32_UInt:       direct(NativeRG32Uint),
	R32G32B32_UInt:    substitute(R32G32B32A32_UInt),
	R32G32B32A32_UInt: direct(NativeRGBA32Uint),
	R32_SInt:          direct(NativeR32Sint),
	R32G32_SInt:       direct(NativeRG32Sint),
	R32G32B32_SInt:    substitute(R32G32B32A32_SInt),
	R32G32B32A32_SInt: direct(NativeRGBA32Sint),

	R16_SFloat:          direct(NativeR16Float),
	R16G16_SFloat:       direct(NativeRG16Float),
	R16G16B16_SFloat:    substitute(R16G16B16A16_SFloat),
	R16G16B16A16_SFloat: direct(NativeRGBA16Float),
	R32_SFloat:          direct(NativeR32Float),
	R32G32_SFloat:       direct(NativeRG32Float),
	R32G32B32_SFloat:    substitute(R32G32B32A32_SFloat),
	R32G32B32A32_SFloat: direct(NativeRGBA32Float),

	L8_UNorm:  substitute(R8_UNorm),
	A8_UNorm:  direct(NativeA8Unorm),
	A16_UNorm: substitute(R16_UNorm),

	B8G8R8_SRGB:    substitute(B8G8R8A8_SRGB),
	B8G8R8A8_SRGB:  direct(NativeBGRA8UnormSRGB),
	B8G8R8_UNorm:   substitute(B8G8R8A8_UNorm),
	B8G8R8A8_UNorm: direct(NativeBGRA8Unorm),
	B8G8R8_SNorm:   substitute(R8G8B8A8_SNorm),
	B8G8R8A8_SNorm: substitute(R8G8B8A8_SNorm),
	B8G8R8_UInt:    substitute(R8G8B8A8_UInt),
	B8G8R8A8_UInt:  substitute(R8G8B8A8_UInt),
	B8G8R8_SInt:    substitute(R8G8B8A8_SInt),
	B8G8R8A8_SInt:  substitute(R8G8B8A8_SInt),

	R4G4B4A4_UNormPack16: apple(NativeABGR4Unorm).or(R8G8B8A8_UNorm),
	B4G4R4A4_UNormPack16: substitute(R4G4B4A4_UNormPack16),
	R5G6B5_UNormPack16:   substitute(B5G6R5_UNormPack16),
	B5G6R5_UNormPack16:   apple(NativeB5G6R5Unorm).or(R8G8B8A8_UNorm),
	R5G5B5A1_UNormPack16: substitute(B5G5R5A1_UNormPack16),
	B5G5R5A1_UNormPack16: apple(NativeBGR5A1Unorm).or(R8G8B8A8_UNorm),
	A1R5G5B5_UNormPack16: apple(NativeA1BGR5Unorm).or(R8G8B8A8_UNorm),

	E5B9G9R9_UFloatPack32:      direct(NativeRGB9E5Float),
	B10G11R11_UFloatPack32:     direct(NativeRG11B10Float),
	A2B10G10R10_UNormPack32:    direct(NativeRGB10A2Unorm),
	A2B10G10R10_UIntPack32:     direct(NativeRGB10A2Uint),
	A2B10G10R10_SIntPack32:     substitute(R16G16B16A16_SInt),
	A2R10G10B10_UNormPack32:    direct(NativeBGR10A2Unorm),
	A2R10G10B10_UIntPack32:     substitute(A2B10G10R10_UIntPack32),
	A2R10G10B10_SIntPack32:     substitute(R16G16B16A16_SInt),
	A2R10G10B10_XRSRGBPack32:   apple(NativeBGR10XRSRGB).or(R16G16B16A16_SFloat),
	A2R10G10B10_XRUNormPack32:  apple(NativeBGR10XR).or(R16G16B16A16_SFloat),
	R10G10B10_XRSRGBPack32:     apple(NativeBGR10XRSRGB).or(R16G16B16A16_SFloat),
	R10G10B10_XRUNormPack32:    apple(NativeBGR10XR).or(R16G16B16A16_SFloat),
	A10R10G10B10_XRSRGBPack32:  apple(NativeBGRA10XRSRGB).or(R16G16B16A16_SFloat),
	A10R10G10B10_XRUNormPack32: apple(NativeBGRA10XR).or(R16G16B16A16_SFloat),

	A8R8G8B8_SRGB:       substitute(B8G8R8A8_SRGB),
	A8R8G8B8_UNorm:      substitute(B8G8R8A8_UNorm),
	A32R32G32B32_SFloat: substitute(R32G32B32A32_SFloat),

	D16_UNorm:          direct(NativeDepth16Unorm),
	D24_UNorm:          substitute(D32_SFloat),
	D24_UNorm_S8_UInt:  nonApple(NativeDepth24UnormStencil8).or(D32_SFloat_S8_UInt),
	D32_SFloat:         direct(NativeDepth32Float),
	D32_SFloat_S8_UInt: direct(NativeDepth32FloatStencil8),
	S8_UInt:            direct(NativeStencil8),

	RGBA_DXT1_SRGB:  nonApple(NativeBC1RGBASRGB),
	RGBA_DXT1_UNorm: nonApple(NativeBC1RGBA),
	RGBA_DXT3_SRGB:  nonApple(NativeBC2RGBASRGB),
	RGBA_DXT3_UNorm: nonApple(NativeBC2RGBA),
	RGBA_DXT5_SRGB:  nonApple(NativeBC3RGBASRGB),
	RGBA_DXT5_UNorm: nonApple(NativeBC3RGBA),

	R_BC4_UNorm:  nonApple(NativeBC4RUnorm),
	R_BC4_SNorm:  nonApple(NativeBC4RSnorm),
	RG_BC5_UNorm: nonApple(NativeBC5RGUnorm),
	RG_BC5_SNorm: nonApple(NativeBC5RGSnorm),

	RGB_BC6H_UFloat: nonApple(NativeBC6HRGBUfloat),
	RGB_BC6H_SFloat: nonApple(NativeBC6HRGBFloat),
	RGBA_BC7_SRGB:   nonApple(NativeBC7RGBAUnormSRGB),
	RGBA_BC7_UNorm:  nonApple(NativeBC7RGBAUnorm),

	RGB_PVRTC_2Bpp_SRGB:   apple(NativePVRTCRGB2bppSRGB),
	RGB_PVRTC_2Bpp_UNorm:  apple(NativePVRTCRGB2bpp),
	RGB_PVRTC_4Bpp_SRGB:   apple(NativePVRTCRGB4bppSRGB),
	RGB_PVRTC_4Bpp_UNorm:  apple(NativePVRTCRGB4bpp),
	RGBA_PVRTC_2Bpp_SRGB:  apple(NativePVRTCRGBA2bppSRGB),
	RGBA_PVRTC_2Bpp_UNorm: apple(NativePVRTCRGBA2bpp),
	RGBA_PVRTC_4Bpp_SRGB:  apple(NativePVRTCRGBA4bppSRGB),
	RGBA_PVRTC_4Bpp_UNorm: apple(NativePVRTCRGBA4bpp),

	// ETC2 decoders read ETC1 data unchanged.
	RGB_ETC_UNorm: substitute(RGB_ETC2_UNorm),

	RGB_ETC2_SRGB:     apple(NativeETC2RGB8SRGB),
	RGB_ETC2_UNorm:    apple(NativeETC2RGB8),
	RGB_A1_ETC2_SRGB:  apple(NativeETC2RGB8A1SRGB),
	RGB_A1_ETC2_UNorm: apple(NativeETC2RGB8A1),
	RGBA_ETC2_SRGB:    apple(NativeEACRGBA8SRGB),
	RGBA_ETC2_UNorm:   apple(NativeEACRGBA8),

	R_EAC_UNorm:  apple(NativeEACR11Unorm),
	R_EAC_SNorm:  apple(NativeEACR11Snorm),
	RG_EAC_UNorm: apple(NativeEACRG11Unorm),
	RG_EAC_SNorm: apple(NativeEACRG11Snorm),

	RGBA_ASTC4X4_SRGB:    apple(NativeASTC4x4SRGB),
	RGBA_ASTC4X4_UNorm:   apple(NativeASTC4x4LDR),
	RGBA_ASTC5X5_SRGB:    apple(NativeASTC5x5SRGB),
	RGBA_ASTC5X5_UNorm:   apple(NativeASTC5x5LDR),
	RGBA_ASTC6X6_SRGB:    apple(NativeASTC6x6SRGB),
	RGBA_ASTC6X6_UNorm:   apple(NativeASTC6x6LDR),
	RGBA_ASTC8X8_SRGB:    apple(NativeASTC8x8SRGB),
	RGBA_ASTC8X8_UNorm:   apple(NativeASTC8x8LDR),
	RGBA_ASTC10X10_SRGB:  apple(NativeASTC10x10SRGB),
	RGBA_ASTC10X10_UNorm: apple(NativeASTC10x10LDR),
	RGBA_ASTC12X12_SRGB:  apple(NativeASTC12x12SRGB),
	RGBA_ASTC12X12_UNorm: apple(NativeASTC12x12LDR),

	YUV2: direct(NativeGBGR422),

	RGBA_ASTC4X4_UFloat:   apple(NativeASTC4x4HDR),
	RGBA_ASTC5X5_UFloat:   apple(NativeASTC5x5HDR),
	RGBA_ASTC6X6_UFloat:   apple(NativeASTC6x6HDR),
	RGBA_ASTC8X8_UFloat:   apple(NativeASTC8x8HDR),
	RGBA_ASTC10X10_UFloat: apple(NativeASTC10x10HDR),
	RGBA_ASTC12X12_UFloat: apple(NativeASTC12x12HDR),

	D16_UNorm_S8_UInt: substitute(D32_SFloat_S8_UInt),
}

func init() {
	if err := checkMappings(); err != nil {
		panic(err)
	}
}

// checkMappings verifies the structural invariants of the mapping table.
func checkMappings() error {
	for f := None + 1; f <= Last; f++ {
		m := mappings[f]
		if f.IsRemoved() {
			if m != (mapping{}) {
				return fmt.Errorf("format: removed format %v has a mapping", f)
			}
			continue
		}
		if m.native != NativeInvalid && !m.native.IsValid() {
			return fmt.Errorf("format: %v maps to unknown native format %d", f, uint32(m.native))
		}
		if m.native == NativeInvalid && m.fallback == None && !f.IsCompressed() {
			return fmt.Errorf("format: %v has neither a native format nor a fallback", f)
		}
		if m.fallback == None {
			continue
		}
		fb := m.fallback
		if !fb.IsValid() || fb.IsRemoved() || fb == f {
			return fmt.Errorf("format: %v has invalid fallback %v", f, fb)
		}
		if f.IsCompressed() != fb.IsCompressed() {
			return fmt.Errorf("format: %v falls back across compression to %v", f, fb)
		}
		if f.IsCompressed() {
			a, b := f.Info(), fb.Info()
			if a.BlockWidth != b.BlockWidth || a.BlockHeight != b.BlockHeight || a.BlockSize != b.BlockSize {
				return fmt.Errorf("format: %v falls back to %v with different block layout", f, fb)
			}
		}
		// Chains are short; anything longer than the table is a cycle.
		steps := 0
		for g := fb; g != None; g = mappings[g].fallback {
			if steps++; steps > count {
				return fmt.Errorf("format: fallback cycle from %v", f)
			}
		}
	}
	return nil
}

// Translate maps f to the host format for a GPU of the given family.
//
// Failures are returned as *TranslateError wrapping ErrUnsupportedFormat,
// ErrObsoleteFormat or ErrNoDecoder. When the host lacks f but supports a
// substitute, Translate succeeds and the returned Translation reports the
// substitute in Format.
func Translate(f PixelFormat, appleGPU bool) (Translation, error) {
	t := Translation{Requested: f, Format: f}
	if !f.IsValid() {
		return t, &TranslateError{Format: f, AppleGPU: appleGPU, Err: ErrUnsupportedFormat}
	}
	if f.IsRemoved() {
		return t, &TranslateError{Format: f, AppleGPU: appleGPU, Err: ErrObsoleteFormat}
	}

	m := mappings[f]
	if m.hasNative(appleGPU) {
		t.Native = m.native
		return t, nil
	}
	if m.fallback != None {
		if sub, err := Translate(m.fallback, appleGPU); err == nil {
			t.Format = sub.Format
			t.Native = sub.Native
			return t, nil
		}
	}

	err := ErrUnsupportedFormat
	if f.IsCompressed() {
		err = ErrNoDecoder
	}
	return t, &TranslateError{Format: f, AppleGPU: appleGPU, Err: err}
}

// MustTranslate is like Translate but panics on failure.
// It is intended for static tables built from known formats.
func MustTranslate(f PixelFormat, appleGPU bool) Translation {
	t, err := Translate(f, appleGPU)
	if err != nil {
		panic(err)
	}
	return t
}

// Row is one line of the translation table.
type Row struct {
	Translation
	Err error
}

// Outcome classifies the row, reporting Failed when Err is set.
func (r Row) Outcome() Outcome {
	if r.Err != nil {
		return Failed
	}
	return r.Translation.Outcome()
}

// Table translates every defined format except None for one GPU family.
func Table(appleGPU bool) []Row {
	rows := make([]Row, 0, count-1)
	for f := None + 1; f <= Last; f++ {
		t, err := Translate(f, appleGPU)
		rows = append(rows, Row{Translation: t, Err: err})
	}
	return rows
}

// IsGated reports whether the host support for f depends on the GPU family.
func IsGated(f PixelFormat) bool {
	if !f.IsValid() {
		return false
	}
	return mappings[f].gated()
}

// Gate returns a description of the GPU families that can sample f
// natively: "any", "apple", "non-apple", or "" when none can.
func Gate(f PixelFormat) string {
	if !f.IsValid() || mappings[f].native == NativeInvalid {
		return ""
	}
	return mappings[f].gate.String()
}
