// Package blob encodes and decodes self-describing depth frame blobs.
//
// A frame blob is a 32-byte header (see package section) followed by the pixel
// payload. The header records the frame size, capture time, pixel encoding, outer
// compression, byte order and an optional xxHash64 checksum of the payload, so a blob
// can be decoded without any side information.
//
// # Encoding
//
//	encoder, err := blob.NewFrameEncoder(640, 480,
//		blob.WithEncoding(format.TypeRVL),          // default
//		blob.WithCompression(format.CompressionNone), // default
//	)
//	if err != nil {
//		return err
//	}
//	defer encoder.Close()
//
//	for depth := range camera.Frames() {
//		data, err := encoder.Encode(time.Now(), depth)
//		if err != nil {
//			return err
//		}
//		store(data)
//	}
//
// EncodeGray16 accepts an *image.Gray16 directly.
//
// # Decoding
//
//	frame, err := blob.DecodeFrame(data)
//	if err != nil {
//		return err
//	}
//	depth, ok := frame.At(320, 240)
//
// NewFrameDecoder verifies the header, payload size and checksum up front; its
// DecodeInto reuses a caller-owned pixel buffer.
//
// # Frame sets
//
// DecodeFrameSet decodes a batch of blobs into a FrameSet ordered by capture time,
// with All and Between iterators for replay.
package blob
