package blob

import (
	"fmt"

	"github.com/arloliu/rvl/compress"
	"github.com/arloliu/rvl/encoding"
	"github.com/arloliu/rvl/endian"
	"github.com/arloliu/rvl/errs"
	"github.com/arloliu/rvl/internal/hash"
	"github.com/arloliu/rvl/internal/options"
	"github.com/arloliu/rvl/section"
)

// FrameDecoder decodes a frame blob produced by FrameEncoder.
//
// Note: The FrameDecoder is NOT thread-safe. Each decoder instance should be used by a
// single goroutine at a time.
type FrameDecoder struct {
	payload []byte
	header  section.FrameHeader
	engine  endian.EndianEngine
}

// NewFrameDecoder creates a new FrameDecoder for the given blob.
//
// The header, the payload size and, when present, the payload checksum are verified
// here; pixels are not decoded until Decode is called.
//
// Decode allocates Width*Height pixels as declared by the header, up to 2 GiB for a
// 32768x32768 frame. An RVL payload of a mostly empty frame is legitimately tiny, so the
// payload size cannot bound this; pass WithMaxPixels when decoding untrusted blobs.
//
// Returns:
//   - error: header errors from section.ParseFrameHeader, errs.ErrInvalidDimensions if
//     the frame exceeds WithMaxPixels, errs.ErrPayloadSizeMismatch if data does not hold
//     exactly PayloadSize bytes after the header, or errs.ErrChecksumMismatch
func NewFrameDecoder(data []byte, opts ...FrameDecoderOption) (*FrameDecoder, error) {
	config := NewFrameDecoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	header, err := section.ParseFrameHeader(data)
	if err != nil {
		return nil, err
	}

	if config.maxPixels > 0 && header.PixelCount() > config.maxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds the %d pixel limit",
			errs.ErrInvalidDimensions, header.Width, header.Height, config.maxPixels)
	}

	payload := data[section.HeaderSize:]
	if len(payload) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: header says %d bytes, blob holds %d",
			errs.ErrPayloadSizeMismatch, header.PayloadSize, len(payload))
	}

	if header.Flag.HasChecksum() && !hash.Verify(payload, header.Checksum) {
		return nil, fmt.Errorf("%w: want 0x%016x, got 0x%016x",
			errs.ErrChecksumMismatch, header.Checksum, hash.Checksum(payload))
	}

	return &FrameDecoder{
		payload: payload,
		header:  header,
		engine:  header.Flag.GetEndianEngine(),
	}, nil
}

// Header returns the parsed frame header.
func (d *FrameDecoder) Header() section.FrameHeader {
	return d.header
}

// Decode decompresses and decodes the pixels into a new Frame.
func (d *FrameDecoder) Decode() (Frame, error) {
	pixels := make([]uint16, d.header.PixelCount())
	if err := d.DecodeInto(pixels); err != nil {
		return Frame{}, err
	}

	return Frame{
		Width:       int(d.header.Width),
		Height:      int(d.header.Height),
		CaptureTime: d.header.CaptureTimeAsTime().UTC(),
		Pixels:      pixels,
	}, nil
}

// DecodeInto decodes the pixels into dst, which must hold exactly Width*Height values.
// It lets a caller reuse one pixel buffer across a stream of frames.
func (d *FrameDecoder) DecodeInto(dst []uint16) error {
	if want := d.header.PixelCount(); len(dst) != want {
		return fmt.Errorf("%w: destination holds %d pixels, frame has %d", errs.ErrPixelCountMismatch, len(dst), want)
	}

	codec, err := compress.GetCodec(d.header.Flag.Compression())
	if err != nil {
		return err
	}

	maxSize, err := encoding.MaxPayloadSize(d.header.Flag.Encoding(), len(dst))
	if err != nil {
		return err
	}

	raw, err := compress.DecompressWithLimit(codec, d.payload, maxSize)
	if err != nil {
		return fmt.Errorf("failed to decompress pixel payload: %w", err)
	}

	decoder, err := encoding.NewPixelDecoder(d.header.Flag.Encoding(), d.engine)
	if err != nil {
		return err
	}

	if err := decoder.DecodeInto(dst, raw); err != nil {
		return fmt.Errorf("failed to decode %s pixels: %w", d.header.Flag.Encoding(), err)
	}

	return nil
}

// DecodeFrame decodes a single frame blob.
func DecodeFrame(data []byte, opts ...FrameDecoderOption) (Frame, error) {
	decoder, err := NewFrameDecoder(data, opts...)
	if err != nil {
		return Frame{}, err
	}

	return decoder.Decode()
}
