package section

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/arloliu/rvl/errs"
)

// FrameHeader is the fixed 32-byte header at the start of a depth frame blob.
type FrameHeader struct {
	// Width is the number of pixels per row.
	Width uint32 // byte offset 4-7
	// Height is the number of rows.
	Height uint32 // byte offset 8-11
	// PayloadSize is the number of stored payload bytes after the header.
	PayloadSize uint32 // byte offset 12-15
	// Checksum is the xxHash64 of the stored payload, 0 when the checksum flag is off.
	Checksum uint64 // byte offset 16-23
	// CaptureTime is the capture time of the frame, unix timestamp in microseconds.
	CaptureTime int64 // byte offset 24-31

	// Flag is a packed field for options, magic number, encoding and compression.
	Flag FrameFlag // byte offset 0-3
}

// NewFrameHeader creates a FrameHeader with default flags. PayloadSize and Checksum
// are filled in by the encoder once the payload is known.
func NewFrameHeader(width, height int, captureTime time.Time) (*FrameHeader, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}

	return &FrameHeader{
		Width:       uint32(width),  //nolint:gosec
		Height:      uint32(height), //nolint:gosec
		CaptureTime: captureTime.UnixMicro(),
		Flag:        NewFrameFlag(),
	}, nil
}

// ValidateDimensions checks that both dimensions are in [1, MaxFrameDimension].
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxFrameDimension || height > MaxFrameDimension {
		return fmt.Errorf("%w: %dx%d", errs.ErrInvalidDimensions, width, height)
	}

	return nil
}

// PixelCount returns Width * Height.
func (h *FrameHeader) PixelCount() int {
	return int(h.Width) * int(h.Height)
}

// Parse parses the header from exactly HeaderSize bytes.
//
// Returns:
//   - errs.ErrInvalidHeaderSize if data is not 32 bytes
//   - errs.ErrInvalidMagicNumber or errs.ErrInvalidHeaderFlags from flag validation
//   - errs.ErrInvalidDimensions if width or height is out of range
func (h *FrameHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	// Options are always little-endian; they carry the endianness bit for the rest.
	h.Flag.Options = binary.LittleEndian.Uint16(data[optionsOffset:])
	h.Flag.EncodingType = data[encodingOffset]
	h.Flag.CompressionType = data[compressionOffset]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()

	h.Width = engine.Uint32(data[widthOffset:])
	h.Height = engine.Uint32(data[heightOffset:])
	h.PayloadSize = engine.Uint32(data[payloadSizeOffset:])
	h.Checksum = engine.Uint64(data[checksumOffset:])
	h.CaptureTime = int64(engine.Uint64(data[captureTimeOffset:])) //nolint:gosec

	return ValidateDimensions(int(h.Width), int(h.Height))
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *FrameHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *FrameHeader) AppendTo(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = binary.LittleEndian.AppendUint16(dst, h.Flag.Options)
	dst = append(dst, h.Flag.EncodingType, h.Flag.CompressionType)
	dst = engine.AppendUint32(dst, h.Width)
	dst = engine.AppendUint32(dst, h.Height)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint64(dst, h.Checksum)
	dst = engine.AppendUint64(dst, uint64(h.CaptureTime)) //nolint:gosec

	return dst
}

// CaptureTimeAsTime returns the capture time as a time.Time.
func (h *FrameHeader) CaptureTimeAsTime() time.Time {
	return time.UnixMicro(h.CaptureTime)
}

// ParseFrameHeader parses a FrameHeader from the start of data.
func ParseFrameHeader(data []byte) (FrameHeader, error) {
	if len(data) < HeaderSize {
		return FrameHeader{}, fmt.Errorf("%w: got %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	h := FrameHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return FrameHeader{}, err
	}

	return h, nil
}
