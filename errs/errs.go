// Package errs defines the sentinel errors returned by the rvl packages.
//
// Errors are returned as-is or wrapped with fmt.Errorf("...: %w", err), so callers
// should match them with errors.Is.
package errs

import "errors"

// RVL payload errors.
var (
	// ErrTruncatedStream is returned when the decoder needs a nibble past the end of the buffer.
	ErrTruncatedStream = errors.New("rvl: truncated stream")
	// ErrPixelOverrun is returned when a decoded zero run would produce more pixels than requested.
	ErrPixelOverrun = errors.New("rvl: pixel overrun")
	// ErrValueOutOfRange is returned when a reconstructed pixel falls outside [0, 65535].
	ErrValueOutOfRange = errors.New("rvl: reconstructed value out of range")
	// ErrVarintOverflow is returned when a nibble group does not fit in 64 bits.
	ErrVarintOverflow = errors.New("rvl: variable-length integer overflows 64 bits")
	// ErrTrailingData is returned when bytes or a nonzero padding nibble remain after the last pixel.
	ErrTrailingData = errors.New("rvl: trailing data after last pixel")
	// ErrInvalidPixelCount is returned for a negative pixel count.
	ErrInvalidPixelCount = errors.New("rvl: invalid pixel count")
	// ErrInvalidPayloadLength is returned when a fixed-width payload has the wrong size.
	ErrInvalidPayloadLength = errors.New("rvl: invalid payload length")
)

// Frame container errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid frame header size")
	ErrInvalidMagicNumber  = errors.New("invalid frame magic number")
	ErrInvalidHeaderFlags  = errors.New("invalid frame header flags")
	ErrInvalidDimensions   = errors.New("invalid frame dimensions")
	ErrPayloadSizeMismatch = errors.New("frame payload size mismatch")
	ErrChecksumMismatch    = errors.New("frame payload checksum mismatch")
	ErrPixelCountMismatch  = errors.New("pixel count does not match frame dimensions")
	ErrNoFrames            = errors.New("no frames provided")
)
