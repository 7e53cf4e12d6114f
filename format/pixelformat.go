package format

import "fmt"

// PixelFormat is the engine's graphics format.
//
// Numeric values are part of the cross-boundary contract and never change:
// new formats are appended, and withdrawn formats stay in place as
// permanently failing entries (see [PixelFormat.IsRemoved]).
//
// Constant names follow the engine spelling (channel layout, then numeric
// type) so they can be matched against engine-side logs.
type PixelFormat int32

// Unknown is the invalid format marker.
const Unknown PixelFormat = -1

// Pixel formats.
const (
	None PixelFormat = iota

	// sRGB formats
	R8_SRGB
	R8G8_SRGB
	R8G8B8_SRGB
	R8G8B8A8_SRGB

	// 8 bit integer formats
	R8_UNorm
	R8G8_UNorm
	R8G8B8_UNorm
	R8G8B8A8_UNorm
	R8_SNorm
	R8G8_SNorm
	R8G8B8_SNorm
	R8G8B8A8_SNorm
	R8_UInt
	R8G8_UInt
	R8G8B8_UInt
	R8G8B8A8_UInt
	R8_SInt
	R8G8_SInt
	R8G8B8_SInt
	R8G8B8A8_SInt

	// 16 bit integer formats
	R16_UNorm
	R16G16_UNorm
	R16G16B16_UNorm
	R16G16B16A16_UNorm
	R16_SNorm
	R16G16_SNorm
	R16G16B16_SNorm
	R16G16B16A16_SNorm
	R16_UInt
	R16G16_UInt
	R16G16B16_UInt
	R16G16B16A16_UInt
	R16_SInt
	R16G16_SInt
	R16G16B16_SInt
	R16G16B16A16_SInt

	// 32 bit integer formats
	R32_UInt
	R32G32_UInt
	R32G32B32_UInt
	R32G32B32A32_UInt
	R32_SInt
	R32G32_SInt
	R32G32B32_SInt
	R32G32B32A32_SInt

	// HDR formats
	R16_SFloat
	R16G16_SFloat
	R16G16B16_SFloat
	R16G16B16A16_SFloat
	R32_SFloat
	R32G32_SFloat
	R32G32B32_SFloat
	R32G32B32A32_SFloat

	// Luminance and alpha formats
	L8_UNorm
	A8_UNorm
	A16_UNorm

	// BGR formats
	B8G8R8_SRGB
	B8G8R8A8_SRGB
	B8G8R8_UNorm
	B8G8R8A8_UNorm
	B8G8R8_SNorm
	B8G8R8A8_SNorm
	B8G8R8_UInt
	B8G8R8A8_UInt
	B8G8R8_SInt
	B8G8R8A8_SInt

	// 16 bit packed formats
	R4G4B4A4_UNormPack16
	B4G4R4A4_UNormPack16
	R5G6B5_UNormPack16
	B5G6R5_UNormPack16
	R5G5B5A1_UNormPack16
	B5G5R5A1_UNormPack16
	A1R5G5B5_UNormPack16

	// 32 bit packed formats
	E5B9G9R9_UFloatPack32
	B10G11R11_UFloatPack32
	A2B10G10R10_UNormPack32
	A2B10G10R10_UIntPack32
	A2B10G10R10_SIntPack32
	A2R10G10B10_UNormPack32
	A2R10G10B10_UIntPack32
	A2R10G10B10_SIntPack32
	A2R10G10B10_XRSRGBPack32
	A2R10G10B10_XRUNormPack32
	R10G10B10_XRSRGBPack32
	R10G10B10_XRUNormPack32
	A10R10G10B10_XRSRGBPack32
	A10R10G10B10_XRUNormPack32

	// Legacy ARGB formats
	A8R8G8B8_SRGB
	A8R8G8B8_UNorm
	A32R32G32B32_SFloat

	// Depth/stencil formats
	D16_UNorm
	D24_UNorm
	D24_UNorm_S8_UInt
	D32_SFloat
	D32_SFloat_S8_UInt
	S8_UInt

	// DXTC
	RGBA_DXT1_SRGB
	RGBA_DXT1_UNorm
	RGBA_DXT3_SRGB
	RGBA_DXT3_UNorm
	RGBA_DXT5_SRGB
	RGBA_DXT5_UNorm

	// RGTC
	R_BC4_UNorm
	R_BC4_SNorm
	RG_BC5_UNorm
	RG_BC5_SNorm

	// BPTC
	RGB_BC6H_UFloat
	RGB_BC6H_SFloat
	RGBA_BC7_SRGB
	RGBA_BC7_UNorm

	// PVRTC
	RGB_PVRTC_2Bpp_SRGB
	RGB_PVRTC_2Bpp_UNorm
	RGB_PVRTC_4Bpp_SRGB
	RGB_PVRTC_4Bpp_UNorm
	RGBA_PVRTC_2Bpp_SRGB
	RGBA_PVRTC_2Bpp_UNorm
	RGBA_PVRTC_4Bpp_SRGB
	RGBA_PVRTC_4Bpp_UNorm

	// ETC1
	RGB_ETC_UNorm

	// ETC2
	RGB_ETC2_SRGB
	RGB_ETC2_UNorm
	RGB_A1_ETC2_SRGB
	RGB_A1_ETC2_UNorm
	RGBA_ETC2_SRGB
	RGBA_ETC2_UNorm

	// EAC
	R_EAC_UNorm
	R_EAC_SNorm
	RG_EAC_UNorm
	RG_EAC_SNorm

	// ASTC (LDR)
	RGBA_ASTC4X4_SRGB
	RGBA_ASTC4X4_UNorm
	RGBA_ASTC5X5_SRGB
	RGBA_ASTC5X5_UNorm
	RGBA_ASTC6X6_SRGB
	RGBA_ASTC6X6_UNorm
	RGBA_ASTC8X8_SRGB
	RGBA_ASTC8X8_UNorm
	RGBA_ASTC10X10_SRGB
	RGBA_ASTC10X10_UNorm
	RGBA_ASTC12X12_SRGB
	RGBA_ASTC12X12_UNorm

	// Video formats
	YUV2

	// Automatic formats. Withdrawn; kept so later values do not shift.
	DepthAuto_removed_donotuse
	ShadowAuto_removed_donotuse
	VideoAuto_removed_donotuse

	// ASTC (HDR)
	RGBA_ASTC4X4_UFloat
	RGBA_ASTC5X5_UFloat
	RGBA_ASTC6X6_UFloat
	RGBA_ASTC8X8_UFloat
	RGBA_ASTC10X10_UFloat
	RGBA_ASTC12X12_UFloat

	D16_UNorm_S8_UInt

	// Last is the highest defined format.
	Last = D16_UNorm_S8_UInt

	// count is the number of formats from None through Last.
	count = int(Last) + 1
)

// IsValid reports whether f is a defined, non-None format.
// Removed formats are valid enumeration members.
func (f PixelFormat) IsValid() bool {
	return f > None && f <= Last
}

// IsRemoved reports whether f is a withdrawn format that exists only to
// keep the numbering stable.
func (f PixelFormat) IsRemoved() bool {
	return f.Family() == FamilyRemoved
}

// String returns the engine name of the format, e.g. "R8G8B8A8_UNorm".
func (f PixelFormat) String() string {
	if f == Unknown {
		return "Unknown"
	}
	if f < None || f > Last {
		return fmt.Sprintf("PixelFormat(%d)", int32(f))
	}
	return formatNames[f]
}

// Parse returns the format with the given engine name.
// The optional "kFormat" prefix used by engine headers is accepted.
func Parse(name string) (PixelFormat, error) {
	if len(name) > 7 && name[:7] == "kFormat" {
		name = name[7:]
	}
	if f, ok := formatByName[name]; ok {
		return f, nil
	}
	return Unknown, fmt.Errorf("format: unknown pixel format %q", name)
}

// All returns every defined format from None through Last, in numeric order.
func All() []PixelFormat {
	all := make([]PixelFormat, 0, count)
	for f := None; f <= Last; f++ {
		all = append(all, f)
	}
	return all
}

var formatNames = [count]string{
	None:                        "None",
	R8_SRGB:                     "R8_SRGB",
	R8G8_SRGB:                   "R8G8_SRGB",
	R8G8B8_SRGB:                 "R8G8B8_SRGB",
	R8G8B8A8_SRGB:               "R8G8B8A8_SRGB",
	R8_UNorm:                    "R8_UNorm",
	R8G8_UNorm:                  "R8G8_UNorm",
	R8G8B8_UNorm:                "R8G8B8_UNorm",
	R8G8B8A8_UNorm:              "R8G8B8A8_UNorm",
	R8_SNorm:                    "R8_SNorm",
	R8G8_SNorm:                  "R8G8_SNorm",
	R8G8B8_SNorm:                "R8G8B8_SNorm",
	R8G8B8A8_SNorm:              "R8G8B8A8_SNorm",
	R8_UInt:                     "R8_UInt",
	R8G8_UInt:                   "R8G8_UInt",
	R8G8B8_UInt:                 "R8G8B8_UInt",
	R8G8B8A8_UInt:               "R8G8B8A8_UInt",
	R8_SInt:                     "R8_SInt",
	R8G8_SInt:                   "R8G8_SInt",
	R8G8B8_SInt:                 "R8G8B8_SInt",
	R8G8B8A8_SInt:               "R8G8B8A8_SInt",
	R16_UNorm:                   "R16_UNorm",
	R16G16_UNorm:                "R16G16_UNorm",
	R16G16B16_UNorm:             "R16G16B16_UNorm",
	R16G16B16A16_UNorm:          "R16G16B16A16_UNorm",
	R16_SNorm:                   "R16_SNorm",
	R16G16_SNorm:                "R16G16_SNorm",
	R16G16B16_SNorm:             "R16G16B16_SNorm",
	R16G16B16A16_SNorm:          "R16G16B16A16_SNorm",
	R16_UInt:                    "R16_UInt",
	R16G16_UInt:                 "R16G16_UInt",
	R16G16B16_UInt:              "R16G16B16_UInt",
	R16G16B16A16_UInt:           "R16G16B16A16_UInt",
	R16_SInt:                    "R16_SInt",
	R16G16_SInt:                 "R16G16_SInt",
	R16G16B16_SInt:              "R16G16B16_SInt",
	R16G16B16A16_SInt:           "R16G16B16A16_SInt",
	R32_UInt:                    "R32_UInt",
	R32G32_UInt:                 "R32G32_UInt",
	R32G32B32_UInt:              "R32G32B32_UInt",
	R32G32B32A32_UInt:           "R32G32B32A32_UInt",
	R32_SInt:                    "R32_SInt",
	R32G32_SInt:                 "R32G32_SInt",
	R32G32B32_SInt:              "R32G32B32_SInt",
	R32G32B32A32_SInt:           "R32G32B32A32_SInt",
	R16_SFloat:                  "R16_SFloat",
	R16G16_SFloat:               "R16G16_SFloat",
	R16G16B16_SFloat:            "R16G16B16_SFloat",
	R16G16B16A16_SFloat:         "R16G16B16A16_SFloat",
	R32_SFloat:                  "R32_SFloat",
	R32G32_SFloat:               "R32G32_SFloat",
	R32G32B32_SFloat:            "R32G32B32_SFloat",
	R32G32B32A32_SFloat:         "R32G32B32A32_SFloat",
	L8_UNorm:                    "L8_UNorm",
	A8_UNorm:                    "A8_UNorm",
	A16_UNorm:                   "A16_UNorm",
	B8G8R8_SRGB:                 "B8G8R8_SRGB",
	B8G8R8A8_SRGB:               "B8G8R8A8_SRGB",
	B8G8R8_UNorm:                "B8G8R8_UNorm",
	B8G8R8A8_UNorm:              "B8G8R8A8_UNorm",
	B8G8R8_SNorm:                "B8G8R8_SNorm",
	B8G8R8A8_SNorm:              "B8G8R8A8_SNorm",
	B8G8R8_UInt:                 "B8G8R8_UInt",
	B8G8R8A8_UInt:               "B8G8R8A8_UInt",
	B8G8R8_SInt:                 "B8G8R8_SInt",
	B8G8R8A8_SInt:               "B8G8R8A8_SInt",
	R4G4B4A4_UNormPack16:        "R4G4B4A4_UNormPack16",
	B4G4R4A4_UNormPack16:        "B4G4R4A4_UNormPack16",
	R5G6B5_UNormPack16:          "R5G6B5_UNormPack16",
	B5G6R5_UNormPack16:          "B5G6R5_UNormPack16",
	R5G5B5A1_UNormPack16:        "R5G5B5A1_UNormPack16",
	B5G5R5A1_UNormPack16:        "B5G5R5A1_UNormPack16",
	A1R5G5B5_UNormPack16:        "A1R5G5B5_UNormPack16",
	E5B9G9R9_UFloatPack32:       "E5B9G9R9_UFloatPack32",
	B10G11R11_UFloatPack32:      "B10G11R11_UFloatPack32",
	A2B10G10R10_UNormPack32:     "A2B10G10R10_UNormPack32",
	A2B10G10R10_UIntPack32:      "A2B10G10R10_UIntPack32",
	A2B10G10R10_SIntPack32:      "A2B10G10R10_SIntPack32",
	A2R10G10B10_UNormPack32:     "A2R10G10B10_UNormPack32",
	A2R10G10B10_UIntPack32:      "A2R10G10B10_UIntPack32",
	A2R10G10B10_SIntPack32:      "A2R10G10B10_SIntPack32",
	A2R10G10B10_XRSRGBPack32:    "A2R10G10B10_XRSRGBPack32",
	A2R10G10B10_XRUNormPack32:   "A2R10G10B10_XRUNormPack32",
	R10G10B10_XRSRGBPack32:      "R10G10B10_XRSRGBPack32",
	R10G10B10_XRUNormPack32:     "R10G10B10_XRUNormPack32",
	A10R10G10B10_XRSRGBPack32:   "A10R10G10B10_XRSRGBPack32",
	A10R10G10B10_XRUNormPack32:  "A10R10G10B10_XRUNormPack32",
	A8R8G8B8_SRGB:               "A8R8G8B8_SRGB",
	A8R8G8B8_UNorm:              "A8R8G8B8_UNorm",
	A32R32G32B32_SFloat:         "A32R32G32B32_SFloat",
	D16_UNorm:                   "D16_UNorm",
	D24_UNorm:                   "D24_UNorm",
	D24_UNorm_S8_UInt:           "D24_UNorm_S8_UInt",
	D32_SFloat:                  "D32_SFloat",
	D32_SFloat_S8_UInt:          "D32_SFloat_S8_UInt",
	S8_UInt:                     "S8_UInt",
	RGBA_DXT1_SRGB:              "RGBA_DXT1_SRGB",
	RGBA_DXT1_UNorm:             "RGBA_DXT1_UNorm",
	RGBA_DXT3_SRGB:              "RGBA_DXT3_SRGB",
	RGBA_DXT3_UNorm:             "RGBA_DXT3_UNorm",
	RGBA_DXT5_SRGB:              "RGBA_DXT5_SRGB",
	RGBA_DXT5_UNorm:             "RGBA_DXT5_UNorm",
	R_BC4_UNorm:                 "R_BC4_UNorm",
	R_BC4_SNorm:                 "R_BC4_SNorm",
	RG_BC5_UNorm:                "RG_BC5_UNorm",
	RG_BC5_SNorm:                "RG_BC5_SNorm",
	RGB_BC6H_UFloat:             "RGB_BC6H_UFloat",
	RGB_BC6H_SFloat:             "RGB_BC6H_SFloat",
	RGBA_BC7_SRGB:               "RGBA_BC7_SRGB",
	RGBA_BC7_UNorm:              "RGBA_BC7_UNorm",
	RGB_PVRTC_2Bpp_SRGB:         "RGB_PVRTC_2Bpp_SRGB",
	RGB_PVRTC_2Bpp_UNorm:        "RGB_PVRTC_2Bpp_UNorm",
	RGB_PVRTC_4Bpp_SRGB:         "RGB_PVRTC_4Bpp_SRGB",
	RGB_PVRTC_4Bpp_UNorm:        "RGB_PVRTC_4Bpp_UNorm",
	RGBA_PVRTC_2Bpp_SRGB:        "RGBA_PVRTC_2Bpp_SRGB",
	RGBA_PVRTC_2Bpp_UNorm:       "RGBA_PVRTC_2Bpp_UNorm",
	RGBA_PVRTC_4Bpp_SRGB:        "RGBA_PVRTC_4Bpp_SRGB",
	RGBA_PVRTC_4Bpp_UNorm:       "RGBA_PVRTC_4Bpp_UNorm",
	RGB_ETC_UNorm:               "RGB_ETC_UNorm",
	RGB_ETC2_SRGB:               "RGB_ETC2_SRGB",
	RGB_ETC2_UNorm:              "RGB_ETC2_UNorm",
	RGB_A1_ETC2_SRGB:            "RGB_A1_ETC2_SRGB",
	RGB_A1_ETC2_UNorm:           "RGB_A1_ETC2_UNorm",
	RGBA_ETC2_SRGB:              "RGBA_ETC2_SRGB",
	RGBA_ETC2_UNorm:             "RGBA_ETC2_UNorm",
	R_EAC_UNorm:                 "R_EAC_UNorm",
	R_EAC_SNorm:                 "R_EAC_SNorm",
	RG_EAC_UNorm:                "RG_EAC_UNorm",
	RG_EAC_SNorm:                "RG_EAC_SNorm",
	RGBA_ASTC4X4_SRGB:           "RGBA_ASTC4X4_SRGB",
	RGBA_ASTC4X4_UNorm:          "RGBA_ASTC4X4_UNorm",
	RGBA_ASTC5X5_SRGB:           "RGBA_ASTC5X5_SRGB",
	RGBA_ASTC5X5_UNorm:          "RGBA_ASTC5X5_UNorm",
	RGBA_ASTC6X6_SRGB:           "RGBA_ASTC6X6_SRGB",
	RGBA_ASTC6X6_UNorm:          "RGBA_ASTC6X6_UNorm",
	RGBA_ASTC8X8_SRGB:           "RGBA_ASTC8X8_SRGB",
	RGBA_ASTC8X8_UNorm:          "RGBA_ASTC8X8_UNorm",
	RGBA_ASTC10X10_SRGB:         "RGBA_ASTC10X10_SRGB",
	RGBA_ASTC10X10_UNorm:        "RGBA_ASTC10X10_UNorm",
	RGBA_ASTC12X12_SRGB:         "RGBA_ASTC12X12_SRGB",
	RGBA_ASTC12X12_UNorm:        "RGBA_ASTC12X12_UNorm",
	YUV2:                        "YUV2",
	DepthAuto_removed_donotuse:  "DepthAuto_removed_donotuse",
	ShadowAuto_removed_donotuse: "ShadowAuto_removed_donotuse",
	VideoAuto_removed_donotuse:  "VideoAuto_removed_donotuse",
	RGBA_ASTC4X4_UFloat:         "RGBA_ASTC4X4_UFloat",
	RGBA_ASTC5X5_UFloat:         "RGBA_ASTC5X5_UFloat",
	RGBA_ASTC6X6_UFloat:         "RGBA_ASTC6X6_UFloat",
	RGBA_ASTC8X8_UFloat:         "RGBA_ASTC8X8_UFloat",
	RGBA_ASTC10X10_UFloat:       "RGBA_ASTC10X10_UFloat",
	RGBA_ASTC12X12_UFloat:       "RGBA_ASTC12X12_UFloat",
	D16_UNorm_S8_UInt:           "D16_UNorm_S8_UInt",
}

var formatByName = func() map[string]PixelFormat {
	m := make(map[string]PixelFormat, count+1)
	for f := None; f <= Last; f++ {
		m[formatNames[f]] = f
	}
	m["Unknown"] = Unknown
	return m
}()
