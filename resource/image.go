package resource

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/hostbridge/format"
)

// imageReferenceHeaderSize is the encoded size of ImageReference without data.
const imageReferenceHeaderSize = 5 * 4

// ImageReference is a snapshot of one 2D image in CPU memory.
type ImageReference struct {
	Format format.PixelFormat
	Width  int32
	Height int32

	// Pitch is the number of bytes between the starts of two rows of
	// blocks. For uncompressed formats a block row is a pixel row.
	Pitch int32

	Data []byte
}

// Validate reports whether r is a usable descriptor.
func (r *ImageReference) Validate() error {
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidDescriptor, r.Width, r.Height)
	case !r.Format.IsValid() || r.Format.IsRemoved():
		return fmt.Errorf("%w: image format %v", ErrInvalidDescriptor, r.Format)
	}

	row := r.Format.RowPitch(int(r.Width))
	if int(r.Pitch) < row {
		return fmt.Errorf("%w: pitch %d is less than row size %d", ErrInvalidDescriptor, r.Pitch, row)
	}
	info := r.Format.Info()
	rows := (int(r.Height) + info.BlockHeight - 1) / info.BlockHeight
	if need := int(r.Pitch)*(rows-1) + row; len(r.Data) < need {
		return fmt.Errorf("%w: image data is %d bytes, need %d", ErrInvalidDescriptor, len(r.Data), need)
	}
	return nil
}

// Extent returns the image size as a single-layer extent.
func (r *ImageReference) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(max(r.Width, 0)),
		Height:             uint32(max(r.Height, 0)),
		DepthOrArrayLayers: 1,
	}
}

// Image returns a view of the data as a standard library image without
// copying. It returns ErrNotViewable for formats that have no direct
// image.Image equivalent; see package internal/pixconv for conversions.
func (r *ImageReference) Image() (image.Image, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, int(r.Width), int(r.Height))
	stride := int(r.Pitch)
	switch r.Format {
	case format.R8G8B8A8_UNorm, format.R8G8B8A8_SRGB:
		return &image.NRGBA{Pix: r.Data, Stride: stride, Rect: rect}, nil
	case format.R8_UNorm, format.L8_UNorm:
		return &image.Gray{Pix: r.Data, Stride: stride, Rect: rect}, nil
	case format.A8_UNorm:
		return &image.Alpha{Pix: r.Data, Stride: stride, Rect: rect}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrNotViewable, r.Format)
}

// MarshalBinary encodes r in the wire layout.
func (r *ImageReference) MarshalBinary() ([]byte, error) {
	return r.AppendBinary(make([]byte, 0, imageReferenceHeaderSize+len(r.Data)))
}

// AppendBinary appends the wire encoding of r to b.
func (r *ImageReference) AppendBinary(b []byte) ([]byte, error) {
	if len(r.Data) > math.MaxInt32 {
		return b, fmt.Errorf("%w: image data is %d bytes", ErrTooLarge, len(r.Data))
	}
	b = binary.LittleEndian.AppendUint32(b, uint32(r.Format))
	b = binary.LittleEndian.AppendUint32(b, uint32(r.Width))
	b = binary.LittleEndian.AppendUint32(b, uint32(r.Height))
	b = binary.LittleEndian.AppendUint32(b, uint32(r.Pitch))
	b = binary.LittleEndian.AppendUint32(b, uint32(len(r.Data)))
	return append(b, r.Data...), nil
}

// UnmarshalBinary decodes the wire layout into r, copying the data.
func (r *ImageReference) UnmarshalBinary(b []byte) error {
	d, err := DecodeImageReference(b)
	if err != nil {
		return err
	}
	if d.Data != nil {
		d.Data = append([]byte(nil), d.Data...)
	}
	*r = d
	return nil
}

// DecodeImageReference decodes an ImageReference from b.
// The returned Data aliases b and must not be retained past the call that
// delivered b.
func DecodeImageReference(b []byte) (ImageReference, error) {
	if len(b) < imageReferenceHeaderSize {
		return ImageReference{}, fmt.Errorf("%w: image reference header needs %d bytes, got %d",
			ErrShortBuffer, imageReferenceHeaderSize, len(b))
	}
	le := binary.LittleEndian
	r := ImageReference{
		Format: format.PixelFormat(int32(le.Uint32(b[0:]))),
		Width:  int32(le.Uint32(b[4:])),
		Height: int32(le.Uint32(b[8:])),
		Pitch:  int32(le.Uint32(b[12:])),
	}
	n := int32(le.Uint32(b[16:]))
	rest := b[imageReferenceHeaderSize:]
	if n < 0 || len(rest) < int(n) {
		return ImageReference{}, fmt.Errorf("%w: image data needs %d bytes, got %d",
			ErrShortBuffer, n, len(rest))
	}
	if n > 0 {
		r.Data = rest[:n:n]
	}
	return r, nil
}
