// Package rvl provides a lossless codec for 16-bit depth images.
//
// RVL (run-length and variable-length) encoding targets depth-sensor frames: long runs
// of invalid zero pixels interleaved with smoothly varying ranges. Each zero run and
// each raster-order delta between consecutive nonzero pixels is written as a sequence
// of 3-bit nibble groups, two nibbles per byte. A typical 640x480 frame shrinks to a
// fifth of its raw size while encoding and decoding at memory bandwidth.
//
// # Basic Usage
//
// Compressing a raw frame:
//
//	import "github.com/arloliu/rvl"
//
//	payload := rvl.Compress(depth)
//	restored, err := rvl.Decompress(payload, len(depth))
//
// The payload carries no length; the caller stores the pixel count. For a
// self-describing container with dimensions, capture time, checksum and optional
// outer compression, use NewFrameEncoder and DecodeFrame:
//
//	encoder, _ := rvl.NewFrameEncoder(640, 480)
//	defer encoder.Close()
//
//	data, _ := encoder.Encode(time.Now(), depth)
//	frame, _ := rvl.DecodeFrame(data)
//
// # Package Structure
//
// This package provides top-level wrappers for the common cases. For fine-grained
// control, use the encoding (pixel codecs), blob (frame container) and compress (outer
// compression) packages directly.
package rvl

import (
	"github.com/arloliu/rvl/blob"
	"github.com/arloliu/rvl/encoding"
	"github.com/arloliu/rvl/format"
)

// Compress returns the RVL payload of pixels. An empty input yields an empty payload.
//
// Compress never fails and does not modify pixels. It is safe for concurrent use.
func Compress(pixels []uint16) []byte {
	return encoding.EncodeRVL(pixels)
}

// Decompress reconstructs exactly count pixels from an RVL payload.
//
// Returns errors wrapping errs.ErrTruncatedStream, errs.ErrPixelOverrun,
// errs.ErrValueOutOfRange, errs.ErrVarintOverflow or errs.ErrTrailingData for
// malformed input, and errs.ErrInvalidPixelCount for a negative count. No partial
// result is returned on error.
//
// Example:
//
//	pixels, err := rvl.Decompress(payload, width*height)
//	if errors.Is(err, errs.ErrTruncatedStream) {
//		// payload was cut short
//	}
func Decompress(data []byte, count int) ([]uint16, error) {
	return encoding.DecodeRVL(data, count)
}

var defaultFrameOptions = []blob.FrameEncoderOption{
	blob.WithEncoding(format.TypeRVL),
	blob.WithCompression(format.CompressionNone),
	blob.WithLittleEndian(),
	blob.WithChecksum(true),
}

// NewFrameEncoder creates a frame encoder for width x height frames.
//
// The defaults are RVL pixels, no outer compression, little-endian and a payload
// checksum; opts are applied on top of them.
//
// Example:
//
//	encoder, err := rvl.NewFrameEncoder(1280, 720,
//		blob.WithCompression(format.CompressionZstd),
//	)
func NewFrameEncoder(width, height int, opts ...blob.FrameEncoderOption) (*blob.FrameEncoder, error) {
	allOpts := make([]blob.FrameEncoderOption, 0, len(defaultFrameOptions)+len(opts))
	allOpts = append(allOpts, defaultFrameOptions...)
	allOpts = append(allOpts, opts...)

	return blob.NewFrameEncoder(width, height, allOpts...)
}

// NewFrameDecoder creates a decoder for one frame blob, verifying its header and
// checksum. Pass blob.WithMaxPixels for untrusted input.
func NewFrameDecoder(data []byte, opts ...blob.FrameDecoderOption) (*blob.FrameDecoder, error) {
	return blob.NewFrameDecoder(data, opts...)
}

// DecodeFrame decodes one frame blob.
func DecodeFrame(data []byte, opts ...blob.FrameDecoderOption) (blob.Frame, error) {
	return blob.DecodeFrame(data, opts...)
}

// DecodeFrameSet decodes frame blobs into a set ordered by capture time.
func DecodeFrameSet(blobs ...[]byte) (blob.FrameSet, error) {
	return blob.DecodeFrameSet(blobs...)
}
