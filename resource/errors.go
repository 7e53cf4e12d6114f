package resource

import "errors"

// Errors returned by descriptor validation and decoding.
var (
	// ErrShortBuffer is returned when an encoded descriptor is truncated.
	ErrShortBuffer = errors.New("resource: short buffer")

	// ErrInvalidDescriptor is returned by Validate.
	ErrInvalidDescriptor = errors.New("resource: invalid descriptor")

	// ErrTooLarge is returned when data does not fit the wire size field.
	ErrTooLarge = errors.New("resource: data too large")

	// ErrNotViewable is returned by ImageReference.Image for formats with no
	// standard library image type.
	ErrNotViewable = errors.New("resource: format has no image view")
)
