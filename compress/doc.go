// Package compress provides the outer compression codecs applied to encoded depth payloads.
//
// A frame payload goes through two stages:
//
//  1. Pixel encoding (package encoding): RVL, StreamVByte or raw.
//  2. Compression (this package): None, Zstd, S2, LZ4 or Snappy.
//
// RVL already removes zero runs and most of the redundancy in smooth surfaces, so
// format.CompressionNone is the default. Compression pays off for raw and StreamVByte
// payloads and for archived recordings where ratio matters more than latency.
//
// # Algorithms
//
//   - None: returns the payload unchanged, without copying.
//   - Zstd: best ratio. Pure Go (klauspost/compress) by default; build with
//     -tags gozstd and cgo enabled to use libzstd through valyala/gozstd.
//   - S2: fastest compression, suited to live camera streams.
//   - LZ4: fastest decompression, suited to replay.
//   - Snappy: widely readable block format for frames exchanged with other tools.
//
// All codecs compress a payload as one block, so a blob holds one compressed payload
// and no stream framing.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	stored, err := codec.Compress(payload)
//
// GetCodec returns shared instances. CreateCodec returns a new one. All built-in codecs
// are safe for concurrent use.
//
// The blob package selects the codec from the frame header, so most callers only set
// blob.WithCompression.
package compress
