package format

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeRaw         EncodingType = 0x1 // TypeRaw stores each pixel as 2 bytes in the frame byte order.
	TypeRVL         EncodingType = 0x2 // TypeRVL represents run-length and variable-length nibble encoding.
	TypeStreamVByte EncodingType = 0x3 // TypeStreamVByte represents zigzag deltas packed with StreamVByte.

	CompressionNone   CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd   CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2     CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4    CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionSnappy CompressionType = 0x5 // CompressionSnappy represents Snappy block compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeRVL:
		return "RVL"
	case TypeStreamVByte:
		return "StreamVByte"
	default:
		return "Unknown"
	}
}

// IsValid reports whether e is a known pixel encoding.
func (e EncodingType) IsValid() bool {
	return e >= TypeRaw && e <= TypeStreamVByte
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionSnappy:
		return "Snappy"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionSnappy
}
