package compress

import (
	"fmt"

	"github.com/arloliu/rvl/format"
)

// Compressor compresses an encoded pixel payload.
//
// Depth payloads handed to a Compressor are already RVL, StreamVByte or raw encoded,
// typically 50KB-600KB per frame. Zero runs are gone after RVL, so general purpose
// compression mostly pays off on raw and StreamVByte payloads.
type Compressor interface {
	// Compress compresses data and returns a newly allocated result owned by the caller.
	// data is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress returns the original payload. It fails if data is corrupted or was
	// produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor is implemented by decompressors whose stream does not record the
// decoded size. maxSize bounds the output buffer; the caller derives it from what it
// knows about the payload.
type SizedDecompressor interface {
	DecompressWithLimit(data []byte, maxSize int) ([]byte, error)
}

// DecompressWithLimit decompresses data with d, handing maxSize to decompressors that
// implement SizedDecompressor. Other decompressors ignore it.
func DecompressWithLimit(d Decompressor, data []byte, maxSize int) ([]byte, error) {
	if sd, ok := d.(SizedDecompressor); ok {
		return sd.DecompressWithLimit(data, maxSize)
	}

	return d.Decompress(data)
}

// Codec combines both compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats reports the effect of the outer compression on one frame payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the encoded pixel payload size before compression
	OriginalSize int64

	// CompressedSize is the stored payload size after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the payload
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the payload, if measured
	DecompressionTimeNs int64
}

// CompressionRatio returns compressed size / original size, or 0 for an empty payload.
//
// Values above 1.0 mean the compression added overhead, which is common for RVL
// payloads of noisy frames.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage. It is negative when the
// compression made the payload larger.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a new Codec for the compression type.
//
// target describes the payload for error messages, e.g. "pixel".
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionSnappy:
		return NewSnappyCompressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:   NewNoOpCompressor(),
	format.CompressionZstd:   NewZstdCompressor(),
	format.CompressionS2:     NewS2Compressor(),
	format.CompressionLZ4:    NewLZ4Compressor(),
	format.CompressionSnappy: NewSnappyCompressor(),
}

// GetCodec returns the shared built-in Codec for the compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
