package fixfft

import "errors"

// Sentinel errors returned by FFT operations.
var (
	// ErrInvalidLength is returned when the transform size is not a power of
	// two of at least 4.
	ErrInvalidLength = errors.New("fixfft: invalid FFT length")

	// ErrNilSlice is returned when a nil slice is passed to a transform.
	ErrNilSlice = errors.New("fixfft: nil slice")

	// ErrLengthMismatch is returned when buffer lengths do not agree with
	// each other, with the Plan, or with the sine table.
	ErrLengthMismatch = errors.New("fixfft: slice length mismatch")

	// ErrUnsupportedSize is returned when no built-in sine table exists for
	// the requested size.
	ErrUnsupportedSize = errors.New("fixfft: unsupported FFT size")

	// ErrInvalidTable is returned by NewSineTable for values that are not a
	// quarter sine wave of a supported shape.
	ErrInvalidTable = errors.New("fixfft: invalid sine table")

	// ErrInvalidSpectrum is returned by SpectrumBin for a Spectrum other than
	// First or Second.
	ErrInvalidSpectrum = errors.New("fixfft: invalid spectrum")
)
