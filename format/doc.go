// Package format translates engine pixel formats into host texture formats.
//
// The engine describes textures with [PixelFormat], a closed enumeration whose
// numeric values are shared with the engine and never change. The host
// describes them with [NativeFormat]. [Translate] maps one onto the other for
// a given GPU family:
//
//	t, err := format.Translate(format.A2R10G10B10_XRUNormPack32, false)
//	// t.Format == format.R16G16B16A16_SFloat, t.Adjusted() == true
//
// Some host formats exist only on Apple GPUs (PVRTC, ETC2, EAC, ASTC, the XR
// formats, 16-bit packed formats and 8-bit sRGB R/RG) and some only on other
// GPUs (BC formats and Depth24Unorm_Stencil8). When the requested format is
// gated out, Translate substitutes a generic uncompressed equivalent if one
// exists and reports it in [Translation.Format]. Compressed formats are never
// decompressed implicitly: they either map to a compressed host format or
// fail with [ErrNoDecoder].
//
// Formats are grouped into families ([Family]). Every family except
// depth/stencil occupies a contiguous run of values; the runs are computed
// and verified when the package is initialized.
package format
