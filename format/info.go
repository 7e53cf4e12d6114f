package format

// Info contains storage metadata about a pixel format.
type Info struct {
	// Family is the storage family the format belongs to.
	Family Family

	// BlockWidth and BlockHeight are the texel dimensions of one storage
	// block. Uncompressed formats use 1x1 blocks.
	BlockWidth  int
	BlockHeight int

	// BlockSize is the number of bytes per block. Zero for removed formats.
	BlockSize int

	// Components is the number of stored channels.
	Components int

	// SRGB indicates the color channels are sRGB encoded.
	SRGB bool
}

// IsCompressed reports whether the format is block compressed.
func (i Info) IsCompressed() bool {
	return i.Family.IsCompressed()
}

// px describes an uncompressed format.
func px(fam Family, size, comps int) Info {
	return Info{Family: fam, BlockWidth: 1, BlockHeight: 1, BlockSize: size, Components: comps}
}

// blk describes a block compressed format.
func blk(fam Family, w, h, size, comps int) Info {
	return Info{Family: fam, BlockWidth: w, BlockHeight: h, BlockSize: size, Components: comps}
}

func srgb(i Info) Info {
	i.SRGB = true
	return i
}

// infoTable contains metadata for each format. Index None is zero.
var infoTable = [count]Info{
	R8_SRGB:       srgb(px(FamilySRGB, 1, 1)),
	R8G8_SRGB:     srgb(px(FamilySRGB, 2, 2)),
	R8G8B8_SRGB:   srgb(px(FamilySRGB, 3, 3)),
	R8G8B8A8_SRGB: srgb(px(FamilySRGB, 4, 4)),

	R8_UNorm:       px(FamilyInt8, 1, 1),
	R8G8_UNorm:     px(FamilyInt8, 2, 2),
	R8G8B8_UNorm:   px(FamilyInt8, 3, 3),
	R8G8B8A8_UNorm: px(FamilyInt8, 4, 4),
	R8_SNorm:       px(FamilyInt8, 1, 1),
	R8G8_SNorm:     px(FamilyInt8, 2, 2),
	R8G8B8_SNorm:   px(FamilyInt8, 3, 3),
	R8G8B8A8_SNorm: px(FamilyInt8, 4, 4),
	R8_UInt:        px(FamilyInt8, 1, 1),
	R8G8_UInt:      px(FamilyInt8, 2, 2),
	R8G8B8_UInt:    px(FamilyInt8, 3, 3),
	R8G8B8A8_UInt:  px(FamilyInt8, 4, 4),
	R8_SInt:        px(FamilyInt8, 1, 1),
	R8G8_SInt:      px(FamilyInt8, 2, 2),
	R8G8B8_SInt:    px(FamilyInt8, 3, 3),
	R8G8B8A8_SInt:  px(FamilyInt8, 4, 4),

	R16_UNorm:          px(FamilyInt16, 2, 1),
	R16G16_UNorm:       px(FamilyInt16, 4, 2),
	R16G16B16_UNorm:    px(FamilyInt16, 6, 3),
	R16G16B16A16_UNorm: px(FamilyInt16, 8, 4),
	R16_SNorm:          px(FamilyInt16, 2, 1),
	R16G16_SNorm:       px(FamilyInt16, 4, 2),
	R16G16B16_SNorm:    px(FamilyInt16, 6, 3),
	R16G16B16A16_SNorm: px(FamilyInt16, 8, 4),
	R16_UInt:           px(FamilyInt16, 2, 1),
	R16G16_UInt:        px(FamilyInt16, 4, 2),
	R16G16B16_UInt:     px(FamilyInt16, 6, 3),
	R16G16B16A16_UInt:  px(FamilyInt16, 8, 4),
	R16_SInt:           px(FamilyInt16, 2, 1),
	R16G16_SInt:        px(FamilyInt16, 4, 2),
	R16G16B16_SInt:     px(FamilyInt16, 6, 3),
	R16G16B16A16_SInt:  px(FamilyInt16, 8, 4),

	R32_UInt:          px(FamilyInt32, 4, 1),
	R32G32_UInt:       px(FamilyInt32, 8, 2),
	R32G32B32_UInt:    px(FamilyInt32, 12, 3),
	R32G32B32A32_UInt: px(FamilyInt32, 16, 4),
	R32_SInt:          px(FamilyInt32, 4, 1),
	R32G32_SInt:       px(FamilyInt32, 8, 2),
	R32G32B32_SInt:    px(FamilyInt32, 12, 3),
	R32G32B32A32_SInt: px(FamilyInt32, 16, 4),

	R16_SFloat:          px(FamilyHDR, 2, 1),
	R16G16_SFloat:       px(FamilyHDR, 4, 2),
	R16G16B16_SFloat:    px(FamilyHDR, 6, 3),
	R16G16B16A16_SFloat: px(FamilyHDR, 8, 4),
	R32_SFloat:          px(FamilyHDR, 4, 1),
	R32G32_SFloat:       px(FamilyHDR, 8, 2),
	R32G32B32_SFloat:    px(FamilyHDR, 12, 3),
	R32G32B32A32_SFloat: px(FamilyHDR, 16, 4),

	L8_UNorm:  px(FamilyLumAlpha, 1, 1),
	A8_UNorm:  px(FamilyLumAlpha, 1, 1),
	A16_UNorm: px(FamilyLumAlpha, 2, 1),

	B8G8R8_SRGB:    srgb(px(FamilyBGR, 3, 3)),
	B8G8R8A8_SRGB:  srgb(px(FamilyBGR, 4, 4)),
	B8G8R8_UNorm:   px(FamilyBGR, 3, 3),
	B8G8R8A8_UNorm: px(FamilyBGR, 4, 4),
	B8G8R8_SNorm:   px(FamilyBGR, 3, 3),
	B8G8R8A8_SNorm: px(FamilyBGR, 4, 4),
	B8G8R8_UInt:    px(FamilyBGR, 3, 3),
	B8G8R8A8_UInt:  px(FamilyBGR, 4, 4),
	B8G8R8_SInt:    px(FamilyBGR, 3, 3),
	B8G8R8A8_SInt:  px(FamilyBGR, 4, 4),

	R4G4B4A4_UNormPack16: px(FamilyPacked16, 2, 4),
	B4G4R4A4_UNormPack16: px(FamilyPacked16, 2, 4),
	R5G6B5_UNormPack16:   px(FamilyPacked16, 2, 3),
	B5G6R5_UNormPack16:   px(FamilyPacked16, 2, 3),
	R5G5B5A1_UNormPack16: px(FamilyPacked16, 2, 4),
	B5G5R5A1_UNormPack16: px(FamilyPacked16, 2, 4),
	A1R5G5B5_UNormPack16: px(FamilyPacked16, 2, 4),

	E5B9G9R9_UFloatPack32:      px(FamilyPacked32, 4, 3),
	B10G11R11_UFloatPack32:     px(FamilyPacked32, 4, 3),
	A2B10G10R10_UNormPack32:    px(FamilyPacked32, 4, 4),
	A2B10G10R10_UIntPack32:     px(FamilyPacked32, 4, 4),
	A2B10G10R10_SIntPack32:     px(FamilyPacked32, 4, 4),
	A2R10G10B10_UNormPack32:    px(FamilyPacked32, 4, 4),
	A2R10G10B10_UIntPack32:     px(FamilyPacked32, 4, 4),
	A2R10G10B10_SIntPack32:     px(FamilyPacked32, 4, 4),
	A2R10G10B10_XRSRGBPack32:   srgb(px(FamilyPacked32, 4, 4)),
	A2R10G10B10_XRUNormPack32:  px(FamilyPacked32, 4, 4),
	R10G10B10_XRSRGBPack32:     srgb(px(FamilyPacked32, 4, 3)),
	R10G10B10_XRUNormPack32:    px(FamilyPacked32, 4, 3),
	A10R10G10B10_XRSRGBPack32:  srgb(px(FamilyPacked32, 8, 4)),
	A10R10G10B10_XRUNormPack32: px(FamilyPacked32, 8, 4),

	A8R8G8B8_SRGB:       srgb(px(FamilyARGB, 4, 4)),
	A8R8G8B8_UNorm:      px(FamilyARGB, 4, 4),
	A32R32G32B32_SFloat: px(FamilyARGB, 16, 4),

	D16_UNorm:          px(FamilyDepthStencil, 2, 1),
	D24_UNorm:          px(FamilyDepthStencil, 4, 1),
	D24_UNorm_S8_UInt:  px(FamilyDepthStencil, 4, 2),
	D32_SFloat:         px(FamilyDepthStencil, 4, 1),
	D32_SFloat_S8_UInt: px(FamilyDepthStencil, 8, 2),
	S8_UInt:            px(FamilyDepthStencil, 1, 1),

	RGBA_DXT1_SRGB:  srgb(blk(FamilyDXTC, 4, 4, 8, 4)),
	RGBA_DXT1_UNorm: blk(FamilyDXTC, 4, 4, 8, 4),
	RGBA_DXT3_SRGB:  srgb(blk(FamilyDXTC, 4, 4, 16, 4)),
	RGBA_DXT3_UNorm: blk(FamilyDXTC, 4, 4, 16, 4),
	RGBA_DXT5_SRGB:  srgb(blk(FamilyDXTC, 4, 4, 16, 4)),
	RGBA_DXT5_UNorm: blk(FamilyDXTC, 4, 4, 16, 4),

	R_BC4_UNorm:  blk(FamilyRGTC, 4, 4, 8, 1),
	R_BC4_SNorm:  blk(FamilyRGTC, 4, 4, 8, 1),
	RG_BC5_UNorm: blk(FamilyRGTC, 4, 4, 16, 2),
	RG_BC5_SNorm: blk(FamilyRGTC, 4, 4, 16, 2),

	RGB_BC6H_UFloat: blk(FamilyBPTC, 4, 4, 16, 3),
	RGB_BC6H_SFloat: blk(FamilyBPTC, 4, 4, 16, 3),
	RGBA_BC7_SRGB:   srgb(blk(FamilyBPTC, 4, 4, 16, 4)),
	RGBA_BC7_UNorm:  blk(FamilyBPTC, 4, 4, 16, 4),

	RGB_PVRTC_2Bpp_SRGB:   srgb(blk(FamilyPVRTC, 8, 4, 8, 3)),
	RGB_PVRTC_2Bpp_UNorm:  blk(FamilyPVRTC, 8, 4, 8, 3),
	RGB_PVRTC_4Bpp_SRGB:   srgb(blk(FamilyPVRTC, 4, 4, 8, 3)),
	RGB_PVRTC_4Bpp_UNorm:  blk(FamilyPVRTC, 4, 4, 8, 3),
	RGBA_PVRTC_2Bpp_SRGB:  srgb(blk(FamilyPVRTC, 8, 4, 8, 4)),
	RGBA_PVRTC_2Bpp_UNorm: blk(FamilyPVRTC, 8, 4, 8, 4),
	RGBA_PVRTC_4Bpp_SRGB:  srgb(blk(FamilyPVRTC, 4, 4, 8, 4)),
	RGBA_PVRTC_4Bpp_UNorm: blk(FamilyPVRTC, 4, 4, 8, 4),

	RGB_ETC_UNorm: blk(FamilyETC1, 4, 4, 8, 3),

	RGB_ETC2_SRGB:     srgb(blk(FamilyETC2, 4, 4, 8, 3)),
	RGB_ETC2_UNorm:    blk(FamilyETC2, 4, 4, 8, 3),
	RGB_A1_ETC2_SRGB:  srgb(blk(FamilyETC2, 4, 4, 8, 4)),
	RGB_A1_ETC2_UNorm: blk(FamilyETC2, 4, 4, 8, 4),
	RGBA_ETC2_SRGB:    srgb(blk(FamilyETC2, 4, 4, 16, 4)),
	RGBA_ETC2_UNorm:   blk(FamilyETC2, 4, 4, 16, 4),

	R_EAC_UNorm:  blk(FamilyEAC, 4, 4, 8, 1),
	R_EAC_SNorm:  blk(FamilyEAC, 4, 4, 8, 1),
	RG_EAC_UNorm: blk(FamilyEAC, 4, 4, 16, 2),
	RG_EAC_SNorm: blk(FamilyEAC, 4, 4, 16, 2),

	RGBA_ASTC4X4_SRGB:    srgb(blk(FamilyASTC, 4, 4, 16, 4)),
	RGBA_ASTC4X4_UNorm:   blk(FamilyASTC, 4, 4, 16, 4),
	RGBA_ASTC5X5_SRGB:    srgb(blk(FamilyASTC, 5, 5, 16, 4)),
	RGBA_ASTC5X5_UNorm:   blk(FamilyASTC, 5, 5, 16, 4),
	RGBA_ASTC6X6_SRGB:    srgb(blk(FamilyASTC, 6, 6, 16, 4)),
	RGBA_ASTC6X6_UNorm:   blk(FamilyASTC, 6, 6, 16, 4),
	RGBA_ASTC8X8_SRGB:    srgb(blk(FamilyASTC, 8, 8, 16, 4)),
	RGBA_ASTC8X8_UNorm:   blk(FamilyASTC, 8, 8, 16, 4),
	RGBA_ASTC10X10_SRGB:  srgb(blk(FamilyASTC, 10, 10, 16, 4)),
	RGBA_ASTC10X10_UNorm: blk(FamilyASTC, 10, 10, 16, 4),
	RGBA_ASTC12X12_SRGB:  srgb(blk(FamilyASTC, 12, 12, 16, 4)),
	RGBA_ASTC12X12_UNorm: blk(FamilyASTC, 12, 12, 16, 4),

	YUV2: blk(FamilyVideo, 2, 1, 4, 3),

	DepthAuto_removed_donotuse:  {Family: FamilyRemoved},
	ShadowAuto_removed_donotuse: {Family: FamilyRemoved},
	VideoAuto_removed_donotuse:  {Family: FamilyRemoved},

	RGBA_ASTC4X4_UFloat:   blk(FamilyASTCHDR, 4, 4, 16, 4),
	RGBA_ASTC5X5_UFloat:   blk(FamilyASTCHDR, 5, 5, 16, 4),
	RGBA_ASTC6X6_UFloat:   blk(FamilyASTCHDR, 6, 6, 16, 4),
	RGBA_ASTC8X8_UFloat:   blk(FamilyASTCHDR, 8, 8, 16, 4),
	RGBA_ASTC10X10_UFloat: blk(FamilyASTCHDR, 10, 10, 16, 4),
	RGBA_ASTC12X12_UFloat: blk(FamilyASTCHDR, 12, 12, 16, 4),

	D16_UNorm_S8_UInt: px(FamilyDepthStencil, 4, 2),
}

// Info returns the storage metadata for f.
// None, Unknown and out-of-range values return the zero Info.
func (f PixelFormat) Info() Info {
	if !f.IsValid() {
		return Info{}
	}
	return infoTable[f]
}

// IsSRGB reports whether f stores sRGB-encoded color.
func (f PixelFormat) IsSRGB() bool {
	return f.Info().SRGB
}

// BlockSize returns the number of bytes per storage block of f.
func (f PixelFormat) BlockSize() int {
	return f.Info().BlockSize
}

// RowPitch returns the number of bytes in one row of blocks for an image
// of the given width. It returns 0 for formats with no storage.
func (f PixelFormat) RowPitch(width int) int {
	i := f.Info()
	if i.BlockSize == 0 || width <= 0 {
		return 0
	}
	return (width + i.BlockWidth - 1) / i.BlockWidth * i.BlockSize
}

// ImageSize returns the number of bytes needed to store one image of the
// given dimensions, rounding partial blocks up.
func (f PixelFormat) ImageSize(width, height int) int {
	i := f.Info()
	if i.BlockSize == 0 || width <= 0 || height <= 0 {
		return 0
	}
	rows := (height + i.BlockHeight - 1) / i.BlockHeight
	return f.RowPitch(width) * rows
}
