package blob

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/arloliu/rvl/compress"
	"github.com/arloliu/rvl/encoding"
	"github.com/arloliu/rvl/errs"
	"github.com/arloliu/rvl/internal/hash"
	"github.com/arloliu/rvl/internal/options"
	"github.com/arloliu/rvl/internal/pool"
	"github.com/arloliu/rvl/section"
)

// FrameEncoder encodes depth frames of a fixed size into self-describing blobs.
//
// The pixel encoder and its pooled buffer are kept between frames, so encoding a
// stream of frames does not allocate beyond the returned blobs.
//
// Note: The FrameEncoder is NOT thread-safe. Use one encoder per goroutine.
type FrameEncoder struct {
	*FrameEncoderConfig
	pixelEnc encoding.ColumnarEncoder[uint16]
	stats    compress.CompressionStats
}

// NewFrameEncoder creates a new FrameEncoder for frames of width x height pixels.
//
// Defaults: RVL encoding, no compression, little-endian, checksum enabled.
//
// Example:
//
//	encoder, err := blob.NewFrameEncoder(640, 480,
//		blob.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//		return err
//	}
//	defer encoder.Close()
//
//	data, err := encoder.Encode(time.Now(), depth)
func NewFrameEncoder(width, height int, opts ...FrameEncoderOption) (*FrameEncoder, error) {
	config, err := NewFrameEncoderConfig(width, height)
	if err != nil {
		return nil, err
	}

	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	if err := config.setCodec(); err != nil {
		return nil, err
	}

	pixelEnc, err := encoding.NewPixelEncoder(config.header.Flag.Encoding(), config.engine)
	if err != nil {
		return nil, err
	}

	return &FrameEncoder{
		FrameEncoderConfig: config,
		pixelEnc:           pixelEnc,
	}, nil
}

// Encode encodes one frame captured at captureTime.
//
// pixels is in raster order and must hold exactly Width*Height values; zero marks an
// invalid depth reading. The returned blob is newly allocated and owned by the caller.
//
// Returns:
//   - []byte: Header followed by the stored payload
//   - error: errs.ErrPixelCountMismatch, or a compression error
func (e *FrameEncoder) Encode(captureTime time.Time, pixels []uint16) ([]byte, error) {
	if want := e.header.PixelCount(); len(pixels) != want {
		return nil, fmt.Errorf("%w: got %d pixels, want %d", errs.ErrPixelCountMismatch, len(pixels), want)
	}

	e.pixelEnc.Reset()
	e.pixelEnc.WriteSlice(pixels)
	payload := e.pixelEnc.Bytes()

	start := time.Now()
	stored, err := e.codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress %s pixel payload: %w", e.header.Flag.Encoding(), err)
	}
	elapsed := time.Since(start)

	if uint64(len(stored)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload of %d bytes does not fit the header", errs.ErrPayloadSizeMismatch, len(stored))
	}

	header := *e.header
	header.CaptureTime = captureTime.UnixMicro()
	header.PayloadSize = uint32(len(stored)) //nolint:gosec
	if header.Flag.HasChecksum() {
		header.Checksum = hash.Checksum(stored)
	}

	out := make([]byte, 0, section.HeaderSize+len(stored))
	out = header.AppendTo(out)
	out = append(out, stored...)

	e.stats = compress.CompressionStats{
		Algorithm:         header.Flag.Compression(),
		OriginalSize:      int64(len(payload)),
		CompressedSize:    int64(len(stored)),
		CompressionTimeNs: elapsed.Nanoseconds(),
	}

	return out, nil
}

// EncodeGray16 encodes a 16-bit grayscale image, one depth value per pixel.
//
// The image bounds must match the encoder's dimensions; the origin may be anywhere.
func (e *FrameEncoder) EncodeGray16(captureTime time.Time, img *image.Gray16) ([]byte, error) {
	bounds := img.Bounds()
	if bounds.Dx() != e.Width() || bounds.Dy() != e.Height() {
		return nil, fmt.Errorf("%w: image is %dx%d, encoder is %dx%d",
			errs.ErrInvalidDimensions, bounds.Dx(), bounds.Dy(), e.Width(), e.Height())
	}

	pixels, cleanup := pool.GetUint16Slice(e.header.PixelCount())
	defer cleanup()

	gray16ToPixels(pixels, img)

	return e.Encode(captureTime, pixels)
}

// LastStats returns the compression statistics of the most recent Encode call.
func (e *FrameEncoder) LastStats() compress.CompressionStats {
	return e.stats
}

// Close releases the pixel encoder's buffer. The encoder is unusable afterwards.
func (e *FrameEncoder) Close() {
	if e.pixelEnc != nil {
		e.pixelEnc.Finish()
		e.pixelEnc = nil
	}
}
