// Package encoding provides the pixel encodings used by rvl depth frames.
//
// Every encoding implements the generic ColumnarEncoder and ColumnarDecoder interfaces
// for uint16 pixels:
//
//   - RVLEncoder / RVLDecoder: run-length and variable-length nibble coding. Zero runs
//     and zigzag raster deltas are written as 3-bit groups with a continuation bit,
//     two nibbles per byte. This is the default and the densest encoding for depth data.
//   - PixelRawEncoder / PixelRawDecoder: 2 bytes per pixel in a chosen byte order.
//   - StreamVByteEncoder / StreamVByteDecoder: zigzag raster deltas packed with StreamVByte.
//
// The one-shot helpers EncodeRVL, AppendRVL and DecodeRVL cover the common case of a
// single in-memory frame:
//
//	payload := encoding.EncodeRVL(pixels)
//	restored, err := encoding.DecodeRVL(payload, len(pixels))
//
// Payloads carry no pixel count. The caller stores it next to the payload, which the
// blob package does in the frame header.
//
// # Streaming
//
// Encoders accept pixels incrementally through Write and WriteSlice and produce the
// same bytes as the one-shot helpers. Reset clears the payload and the predictor so an
// encoder can be reused frame after frame without allocating:
//
//	enc := encoding.NewRVLEncoder()
//	defer enc.Finish()
//
//	for frame := range frames {
//		enc.Reset()
//		enc.WriteSlice(frame)
//		store(enc.Bytes())
//	}
//
// # Errors
//
// Decoders never return partial results. Failures wrap the sentinels in package errs:
// ErrTruncatedStream, ErrPixelOverrun, ErrValueOutOfRange, ErrVarintOverflow and
// ErrTrailingData.
//
// Encoders are not safe for concurrent use. Decoders are stateless and may be shared.
package encoding
