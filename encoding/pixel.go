package encoding

import (
	"fmt"

	"github.com/mhr3/streamvbyte"

	"github.com/arloliu/rvl/endian"
	"github.com/arloliu/rvl/errs"
	"github.com/arloliu/rvl/format"
)

// NewPixelEncoder creates the pixel encoder for the given encoding type.
//
// The engine is only used by format.TypeRaw; RVL and StreamVByte payloads are byte
// order independent.
func NewPixelEncoder(encType format.EncodingType, engine endian.EndianEngine) (ColumnarEncoder[uint16], error) {
	switch encType {
	case format.TypeRaw:
		return NewPixelRawEncoder(engine), nil
	case format.TypeRVL:
		return NewRVLEncoder(), nil
	case format.TypeStreamVByte:
		return NewStreamVByteEncoder(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported pixel encoding %s (0x%x)", errs.ErrInvalidHeaderFlags, encType, uint8(encType))
	}
}

// NewPixelDecoder creates the pixel decoder for the given encoding type.
func NewPixelDecoder(encType format.EncodingType, engine endian.EndianEngine) (ColumnarDecoder[uint16], error) {
	switch encType {
	case format.TypeRaw:
		return NewPixelRawDecoder(engine), nil
	case format.TypeRVL:
		return NewRVLDecoder(), nil
	case format.TypeStreamVByte:
		return NewStreamVByteDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported pixel encoding %s (0x%x)", errs.ErrInvalidHeaderFlags, encType, uint8(encType))
	}
}

// MaxPayloadSize returns the largest payload count pixels can produce with the given
// encoding. Decoders use it to bound buffers for outer compressions that do not record
// the decoded size.
func MaxPayloadSize(encType format.EncodingType, count int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidPixelCount, count)
	}

	switch encType {
	case format.TypeRaw:
		return 2 * count, nil
	case format.TypeRVL:
		return RVLMaxEncodedLen(count), nil
	case format.TypeStreamVByte:
		return streamvbyte.MaxEncodedLen(count), nil
	default:
		return 0, fmt.Errorf("%w: unsupported pixel encoding %s (0x%x)", errs.ErrInvalidHeaderFlags, encType, uint8(encType))
	}
}
