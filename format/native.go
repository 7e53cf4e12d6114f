package format

import "fmt"

// NativeFormat is a pixel format understood by the host GPU API.
//
// Values follow the Metal pixel format numbering so descriptors can be
// handed to the host without another lookup.
type NativeFormat uint32

// Native pixel formats.
const (
	NativeInvalid NativeFormat = 0

	NativeA8Unorm NativeFormat = 1

	NativeR8Unorm      NativeFormat = 10
	NativeR8UnormSRGB  NativeFormat = 11
	NativeR8Snorm      NativeFormat = 12
	NativeR8Uint       NativeFormat = 13
	NativeR8Sint       NativeFormat = 14
	NativeR16Unorm     NativeFormat = 20
	NativeR16Snorm     NativeFormat = 22
	NativeR16Uint      NativeFormat = 23
	NativeR16Sint      NativeFormat = 24
	NativeR16Float     NativeFormat = 25
	NativeRG8Unorm     NativeFormat = 30
	NativeRG8UnormSRGB NativeFormat = 31
	NativeRG8Snorm     NativeFormat = 32
	NativeRG8Uint      NativeFormat = 33
	NativeRG8Sint      NativeFormat = 34

	NativeB5G6R5Unorm NativeFormat = 40
	NativeA1BGR5Unorm NativeFormat = 41
	NativeABGR4Unorm  NativeFormat = 42
	NativeBGR5A1Unorm NativeFormat = 43

	NativeR32Uint          NativeFormat = 53
	NativeR32Sint          NativeFormat = 54
	NativeR32Float         NativeFormat = 55
	NativeRG16Unorm        NativeFormat = 60
	NativeRG16Snorm        NativeFormat = 62
	NativeRG16Uint         NativeFormat = 63
	NativeRG16Sint         NativeFormat = 64
	NativeRG16Float        NativeFormat = 65
	NativeRGBA8Unorm       NativeFormat = 70
	NativeRGBA8UnormSRGB   NativeFormat = 71
	NativeRGBA8Snorm       NativeFormat = 72
	NativeRGBA8Uint        NativeFormat = 73
	NativeRGBA8Sint        NativeFormat = 74
	NativeBGRA8Unorm       NativeFormat = 80
	NativeBGRA8UnormSRGB   NativeFormat = 81
	NativeRGB10A2Unorm     NativeFormat = 90
	NativeRGB10A2Uint      NativeFormat = 91
	NativeRG11B10Float     NativeFormat = 92
	NativeRGB9E5Float      NativeFormat = 93
	NativeBGR10A2Unorm     NativeFormat = 94
	NativeRG32Uint         NativeFormat = 103
	NativeRG32Sint         NativeFormat = 104
	NativeRG32Float        NativeFormat = 105
	NativeRGBA16Unorm      NativeFormat = 110
	NativeRGBA16Snorm      NativeFormat = 112
	NativeRGBA16Uint       NativeFormat = 113
	NativeRGBA16Sint       NativeFormat = 114
	NativeRGBA16Float      NativeFormat = 115
	NativeRGBA32Uint       NativeFormat = 123
	NativeRGBA32Sint       NativeFormat = 124
	NativeRGBA32Float      NativeFormat = 125
	NativeBC1RGBA          NativeFormat = 130
	NativeBC1RGBASRGB      NativeFormat = 131
	NativeBC2RGBA          NativeFormat = 132
	NativeBC2RGBASRGB      NativeFormat = 133
	NativeBC3RGBA          NativeFormat = 134
	NativeBC3RGBASRGB      NativeFormat = 135
	NativeBC4RUnorm        NativeFormat = 140
	NativeBC4RSnorm        NativeFormat = 141
	NativeBC5RGUnorm       NativeFormat = 142
	NativeBC5RGSnorm       NativeFormat = 143
	NativeBC6HRGBFloat     NativeFormat = 150
	NativeBC6HRGBUfloat    NativeFormat = 151
	NativeBC7RGBAUnorm     NativeFormat = 152
	NativeBC7RGBAUnormSRGB NativeFormat = 153

	NativePVRTCRGB2bpp      NativeFormat = 160
	NativePVRTCRGB2bppSRGB  NativeFormat = 161
	NativePVRTCRGB4bpp      NativeFormat = 162
	NativePVRTCRGB4bppSRGB  NativeFormat = 163
	NativePVRTCRGBA2bpp     NativeFormat = 164
	NativePVRTCRGBA2bppSRGB NativeFormat = 165
	NativePVRTCRGBA4bpp     NativeFormat = 166
	NativePVRTCRGBA4bppSRGB NativeFormat = 167

	NativeEACR11Unorm     NativeFormat = 170
	NativeEACR11Snorm     NativeFormat = 172
	NativeEACRG11Unorm    NativeFormat = 174
	NativeEACRG11Snorm    NativeFormat = 176
	NativeEACRGBA8        NativeFormat = 178
	NativeEACRGBA8SRGB    NativeFormat = 179
	NativeETC2RGB8        NativeFormat = 180
	NativeETC2RGB8SRGB    NativeFormat = 181
	NativeETC2RGB8A1      NativeFormat = 182
	NativeETC2RGB8A1SRGB  NativeFormat = 183
	NativeASTC4x4SRGB     NativeFormat = 186
	NativeASTC5x5SRGB     NativeFormat = 188
	NativeASTC6x6SRGB     NativeFormat = 190
	NativeASTC8x8SRGB     NativeFormat = 194
	NativeASTC10x10SRGB   NativeFormat = 198
	NativeASTC12x12SRGB   NativeFormat = 200
	NativeASTC4x4LDR      NativeFormat = 204
	NativeASTC5x5LDR      NativeFormat = 206
	NativeASTC6x6LDR      NativeFormat = 208
	NativeASTC8x8LDR      NativeFormat = 212
	NativeASTC10x10LDR    NativeFormat = 216
	NativeASTC12x12LDR    NativeFormat = 218
	NativeASTC4x4HDR      NativeFormat = 222
	NativeASTC5x5HDR      NativeFormat = 224
	NativeASTC6x6HDR      NativeFormat = 226
	NativeASTC8x8HDR      NativeFormat = 230
	NativeASTC10x10HDR    NativeFormat = 234
	NativeASTC12x12HDR    NativeFormat = 236
	NativeGBGR422         NativeFormat = 240
	NativeBGRG422         NativeFormat = 241

	NativeDepth16Unorm         NativeFormat = 250
	NativeDepth32Float         NativeFormat = 252
	NativeStencil8             NativeFormat = 253
	NativeDepth24UnormStencil8 NativeFormat = 255
	NativeDepth32FloatStencil8 NativeFormat = 260

	NativeBGRA10XR     NativeFormat = 552
	NativeBGRA10XRSRGB NativeFormat = 553
	NativeBGR10XR      NativeFormat = 554
	NativeBGR10XRSRGB  NativeFormat = 555
)

var nativeNames = map[NativeFormat]string{
	NativeInvalid:              "Invalid",
	NativeA8Unorm:              "A8Unorm",
	NativeR8Unorm:              "R8Unorm",
	NativeR8UnormSRGB:          "R8Unorm_sRGB",
	NativeR8Snorm:              "R8Snorm",
	NativeR8Uint:               "R8Uint",
	NativeR8Sint:               "R8Sint",
	NativeR16Unorm:             "R16Unorm",
	NativeR16Snorm:             "R16Snorm",
	NativeR16Uint:              "R16Uint",
	NativeR16Sint:              "R16Sint",
	NativeR16Float:             "R16Float",
	NativeRG8Unorm:             "RG8Unorm",
	NativeRG8UnormSRGB:         "RG8Unorm_sRGB",
	NativeRG8Snorm:             "RG8Snorm",
	NativeRG8Uint:              "RG8Uint",
	NativeRG8Sint:              "RG8Sint",
	NativeB5G6R5Unorm:          "B5G6R5Unorm",
	NativeA1BGR5Unorm:          "A1BGR5Unorm",
	NativeABGR4Unorm:           "ABGR4Unorm",
	NativeBGR5A1Unorm:          "BGR5A1Unorm",
	NativeR32Uint:              "R32Uint",
	NativeR32Sint:              "R32Sint",
	NativeR32Float:             "R32Float",
	NativeRG16Unorm:            "RG16Unorm",
	NativeRG16Snorm:            "RG16Snorm",
	NativeRG16Uint:             "RG16Uint",
	NativeRG16Sint:             "RG16Sint",
	NativeRG16Float:            "RG16Float",
	NativeRGBA8Unorm:           "RGBA8Unorm",
	NativeRGBA8UnormSRGB:       "RGBA8Unorm_sRGB",
	NativeRGBA8Snorm:           "RGBA8Snorm",
	NativeRGBA8Uint:            "RGBA8Uint",
	NativeRGBA8Sint:            "RGBA8Sint",
	NativeBGRA8Unorm:           "BGRA8Unorm",
	NativeBGRA8UnormSRGB:       "BGRA8Unorm_sRGB",
	NativeRGB10A2Unorm:         "RGB10A2Unorm",
	NativeRGB10A2Uint:          "RGB10A2Uint",
	NativeRG11B10Float:         "RG11B10Float",
	NativeRGB9E5Float:          "RGB9E5Float",
	NativeBGR10A2Unorm:         "BGR10A2Unorm",
	NativeRG32Uint:             "RG32Uint",
	NativeRG32Sint:             "RG32Sint",
	NativeRG32Float:            "RG32Float",
	NativeRGBA16Unorm:          "RGBA16Unorm",
	NativeRGBA16Snorm:          "RGBA16Snorm",
	NativeRGBA16Uint:           "RGBA16Uint",
	NativeRGBA16Sint:           "RGBA16Sint",
	NativeRGBA16Float:          "RGBA16Float",
	NativeRGBA32Uint:           "RGBA32Uint",
	NativeRGBA32Sint:           "RGBA32Sint",
	NativeRGBA32Float:          "RGBA32Float",
	NativeBC1RGBA:              "BC1_RGBA",
	NativeBC1RGBASRGB:          "BC1_RGBA_sRGB",
	NativeBC2RGBA:              "BC2_RGBA",
	NativeBC2RGBASRGB:          "BC2_RGBA_sRGB",
	NativeBC3RGBA:              "BC3_RGBA",
	NativeBC3RGBASRGB:          "BC3_RGBA_sRGB",
	NativeBC4RUnorm:            "BC4_RUnorm",
	NativeBC4RSnorm:            "BC4_RSnorm",
	NativeBC5RGUnorm:           "BC5_RGUnorm",
	NativeBC5RGSnorm:           "BC5_RGSnorm",
	NativeBC6HRGBFloat:         "BC6H_RGBFloat",
	NativeBC6HRGBUfloat:        "BC6H_RGBUfloat",
	NativeBC7RGBAUnorm:         "BC7_RGBAUnorm",
	NativeBC7RGBAUnormSRGB:     "BC7_RGBAUnorm_sRGB",
	NativePVRTCRGB2bpp:         "PVRTC_RGB_2BPP",
	NativePVRTCRGB2bppSRGB:     "PVRTC_RGB_2BPP_sRGB",
	NativePVRTCRGB4bpp:         "PVRTC_RGB_4BPP",
	NativePVRTCRGB4bppSRGB:     "PVRTC_RGB_4BPP_sRGB",
	NativePVRTCRGBA2bpp:        "PVRTC_RGBA_2BPP",
	NativePVRTCRGBA2bppSRGB:    "PVRTC_RGBA_2BPP_sRGB",
	NativePVRTCRGBA4bpp:        "PVRTC_RGBA_4BPP",
	NativePVRTCRGBA4bppSRGB:    "PVRTC_RGBA_4BPP_sRGB",
	NativeEACR11Unorm:          "EAC_R11Unorm",
	NativeEACR11Snorm:          "EAC_R11Snorm",
	NativeEACRG11Unorm:         "EAC_RG11Unorm",
	NativeEACRG11Snorm:         "EAC_RG11Snorm",
	NativeEACRGBA8:             "EAC_RGBA8",
	NativeEACRGBA8SRGB:         "EAC_RGBA8_sRGB",
	NativeETC2RGB8:             "ETC2_RGB8",
	NativeETC2RGB8SRGB:         "ETC2_RGB8_sRGB",
	NativeETC2RGB8A1:           "ETC2_RGB8A1",
	NativeETC2RGB8A1SRGB:       "ETC2_RGB8A1_sRGB",
	NativeASTC4x4SRGB:          "ASTC_4x4_sRGB",
	NativeASTC5x5SRGB:          "ASTC_5x5_sRGB",
	NativeASTC6x6SRGB:          "ASTC_6x6_sRGB",
	NativeASTC8x8SRGB:          "ASTC_8x8_sRGB",
	NativeASTC10x10SRGB:        "ASTC_10x10_sRGB",
	NativeASTC12x12SRGB:        "ASTC_12x12_sRGB",
	NativeASTC4x4LDR:           "ASTC_4x4_LDR",
	NativeASTC5x5LDR:           "ASTC_5x5_LDR",
	NativeASTC6x6LDR:           "ASTC_6x6_LDR",
	NativeASTC8x8LDR:           "ASTC_8x8_LDR",
	NativeASTC10x10LDR:         "ASTC_10x10_LDR",
	NativeASTC12x12LDR:         "ASTC_12x12_LDR",
	NativeASTC4x4HDR:           "ASTC_4x4_HDR",
	NativeASTC5x5HDR:           "ASTC_5x5_HDR",
	NativeASTC6x6HDR:           "ASTC_6x6_HDR",
	NativeASTC8x8HDR:           "ASTC_8x8_HDR",
	NativeASTC10x10HDR:         "ASTC_10x10_HDR",
	NativeASTC12x12HDR:         "ASTC_12x12_HDR",
	NativeGBGR422:              "GBGR422",
	NativeBGRG422:              "BGRG422",
	NativeDepth16Unorm:         "Depth16Unorm",
	NativeDepth32Float:         "Depth32Float",
	NativeStencil8:             "Stencil8",
	NativeDepth24UnormStencil8: "Depth24Unorm_Stencil8",
	NativeDepth32FloatStencil8: "Depth32Float_Stencil8",
	NativeBGRA10XR:             "BGRA10_XR",
	NativeBGRA10XRSRGB:         "BGRA10_XR_sRGB",
	NativeBGR10XR:              "BGR10_XR",
	NativeBGR10XRSRGB:          "BGR10_XR_sRGB",
}

// String returns the host API name of the format.
func (n NativeFormat) String() string {
	if s, ok := nativeNames[n]; ok {
		return s
	}
	return fmt.Sprintf("NativeFormat(%d)", uint32(n))
}

// IsValid reports whether n is a known, non-invalid native format.
func (n NativeFormat) IsValid() bool {
	_, ok := nativeNames[n]
	return ok && n != NativeInvalid
}
