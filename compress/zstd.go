package compress

// zstdLevel is the compression level shared by both Zstandard backends.
const zstdLevel = 3

// ZstdCompressor uses Zstandard, the best ratio of the built-in codecs.
//
// Use it for recorded depth sequences that are written once and replayed rarely.
// The pure Go backend (klauspost/compress) is used by default; building with
// -tags gozstd on a cgo toolchain switches to the libzstd binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
