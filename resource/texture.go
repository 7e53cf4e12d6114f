package resource

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/hostbridge/format"
)

// sharedTextureHeaderSize is the encoded size of SharedTexture without data.
const sharedTextureHeaderSize = 8 + 4 + 4 + 8 + 4 + 4 + 4 + 4

// SharedTexture describes a GPU texture the producer already owns and shares
// with the other side for the duration of one call.
//
// The receiver never takes ownership: Handle stays valid only as long as the
// producer keeps the texture alive, and a decoded Data slice aliases the
// command argument buffer.
type SharedTexture struct {
	// Handle is the producer's native texture handle. Zero when the texture
	// is initialized from Data only.
	Handle uintptr

	Width  int32
	Height int32

	// ImageSize is the total byte size of all images and mip levels.
	ImageSize uint64

	// ImageCount is the number of array layers; cube maps use 6.
	ImageCount uint32
	MipCount   uint32

	// Format is the translated engine format of the texture.
	Format format.PixelFormat

	// Data holds the initial texel data, or nil when the texture is not
	// initialized from CPU memory.
	Data []byte
}

// Validate reports whether t is a usable descriptor.
func (t *SharedTexture) Validate() error {
	switch {
	case t.Width <= 0 || t.Height <= 0:
		return fmt.Errorf("%w: texture size %dx%d", ErrInvalidDescriptor, t.Width, t.Height)
	case t.ImageCount == 0:
		return fmt.Errorf("%w: texture has no images", ErrInvalidDescriptor)
	case t.MipCount == 0:
		return fmt.Errorf("%w: texture has no mip levels", ErrInvalidDescriptor)
	case !t.Format.IsValid() || t.Format.IsRemoved():
		return fmt.Errorf("%w: texture format %v", ErrInvalidDescriptor, t.Format)
	case t.Handle == 0 && t.Data == nil:
		return fmt.Errorf("%w: texture has neither a handle nor data", ErrInvalidDescriptor)
	case t.Data != nil && uint64(len(t.Data)) != t.ImageSize:
		return fmt.Errorf("%w: texture data is %d bytes, image size is %d",
			ErrInvalidDescriptor, len(t.Data), t.ImageSize)
	}
	return nil
}

// Extent returns the texture size with ImageCount as the layer count.
func (t *SharedTexture) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(max(t.Width, 0)),
		Height:             uint32(max(t.Height, 0)),
		DepthOrArrayLayers: max(t.ImageCount, 1),
	}
}

// Dimension returns the texture dimension. Shared textures are always 2D;
// arrays and cube maps are 2D textures with several layers.
func (t *SharedTexture) Dimension() gputypes.TextureDimension {
	return gputypes.TextureDimension2D
}

// ViewDimension returns the dimension a view of the whole texture should use.
func (t *SharedTexture) ViewDimension() gputypes.TextureViewDimension {
	if t.ImageCount <= 1 {
		return gputypes.TextureViewDimension2D
	}
	return gputypes.TextureViewDimension2DArray
}

// MarshalBinary encodes t in the wire layout.
func (t *SharedTexture) MarshalBinary() ([]byte, error) {
	return t.AppendBinary(make([]byte, 0, sharedTextureHeaderSize+len(t.Data)))
}

// AppendBinary appends the wire encoding of t to b.
func (t *SharedTexture) AppendBinary(b []byte) ([]byte, error) {
	if uint64(len(t.Data)) > math.MaxUint32 {
		return b, fmt.Errorf("%w: texture data is %d bytes", ErrTooLarge, len(t.Data))
	}
	b = binary.LittleEndian.AppendUint64(b, uint64(t.Handle))
	b = binary.LittleEndian.AppendUint32(b, uint32(t.Width))
	b = binary.LittleEndian.AppendUint32(b, uint32(t.Height))
	b = binary.LittleEndian.AppendUint64(b, t.ImageSize)
	b = binary.LittleEndian.AppendUint32(b, t.ImageCount)
	b = binary.LittleEndian.AppendUint32(b, t.MipCount)
	b = binary.LittleEndian.AppendUint32(b, uint32(t.Format))
	b = binary.LittleEndian.AppendUint32(b, uint32(len(t.Data)))
	return append(b, t.Data...), nil
}

// UnmarshalBinary decodes the wire layout into t, copying the data.
func (t *SharedTexture) UnmarshalBinary(b []byte) error {
	d, err := DecodeSharedTexture(b)
	if err != nil {
		return err
	}
	if d.Data != nil {
		d.Data = append([]byte(nil), d.Data...)
	}
	*t = d
	return nil
}

// DecodeSharedTexture decodes a SharedTexture from b.
// The returned Data aliases b and must not be retained past the call that
// delivered b.
func DecodeSharedTexture(b []byte) (SharedTexture, error) {
	if len(b) < sharedTextureHeaderSize {
		return SharedTexture{}, fmt.Errorf("%w: shared texture header needs %d bytes, got %d",
			ErrShortBuffer, sharedTextureHeaderSize, len(b))
	}
	le := binary.LittleEndian
	t := SharedTexture{
		Handle:     uintptr(le.Uint64(b[0:])),
		Width:      int32(le.Uint32(b[8:])),
		Height:     int32(le.Uint32(b[12:])),
		ImageSize:  le.Uint64(b[16:]),
		ImageCount: le.Uint32(b[24:]),
		MipCount:   le.Uint32(b[28:]),
		Format:     format.PixelFormat(int32(le.Uint32(b[32:]))),
	}
	n := uint64(le.Uint32(b[36:]))
	rest := b[sharedTextureHeaderSize:]
	if uint64(len(rest)) < n {
		return SharedTexture{}, fmt.Errorf("%w: shared texture data needs %d bytes, got %d",
			ErrShortBuffer, n, len(rest))
	}
	if n > 0 {
		t.Data = rest[:n:n]
	}
	return t, nil
}
