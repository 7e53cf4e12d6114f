// Package resource defines the texture descriptors passed across the bridge.
//
// [SharedTexture] refers to a texture the producer already holds on the GPU;
// [ImageReference] carries one image in CPU memory. Both are plain values
// built by the producer after translating its format with
// [format.Translate], encoded into a single command argument, and read by the
// receiver within the call. Neither side transfers ownership.
//
// The wire layout is little-endian and mirrors the C structures used by the
// engine, followed by the data bytes:
//
//	SharedTexture:  handle u64, width i32, height i32, imageSize u64,
//	                imageCount u32, mipCount u32, format i32, dataSize u32
//	ImageReference: format i32, width i32, height i32, pitch i32, dataSize i32
//
// The Decode functions alias the data in the argument buffer; UnmarshalBinary
// copies it.
package resource
