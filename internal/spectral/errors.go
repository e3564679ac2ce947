package spectral

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid has an odd or non-positive
	// row or column count.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive and even")

	// ErrCoordinateOutOfRange is returned when a spike lies outside the spectrum.
	ErrCoordinateOutOfRange = errors.New("spike coordinate out of range")

	// ErrInvalidRadius is returned for a negative notch radius.
	ErrInvalidRadius = errors.New("notch radius must be >= 0")

	// ErrDimensionMismatch is returned when a mask and a spectrum differ in size.
	ErrDimensionMismatch = errors.New("mask and spectrum dimensions differ")

	// ErrUnsupportedSize is returned by transforms that cannot handle a grid size.
	ErrUnsupportedSize = errors.New("transform does not support this size")

	// ErrUnknownTransform is returned by NewTransform for an unregistered name.
	ErrUnknownTransform = errors.New("unknown transform")
)
