package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxDecodedSize bounds the decompression buffer when the caller gives no limit.
// It fits a 4096x4096 raw frame; larger frames go through DecompressWithLimit.
const lz4MaxDecodedSize = 64 * 1024 * 1024

// lz4CompressorPool pools lz4.Compressor instances, which keep a hash table between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor uses LZ4 block compression.
type LZ4Compressor struct{}

var (
	_ Codec             = (*LZ4Compressor)(nil)
	_ SizedDecompressor = (*LZ4Compressor)(nil)
)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as one LZ4 block using a pooled lz4.Compressor.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n], nil
}

// Decompress decodes one LZ4 block of at most lz4MaxDecodedSize bytes.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressWithLimit(data, lz4MaxDecodedSize)
}

// DecompressWithLimit decodes one LZ4 block of at most maxSize bytes.
//
// LZ4 blocks do not record their decoded size, so the buffer starts at 4x the block
// and doubles on ErrInvalidSourceShortBuffer, up to maxSize. A maxSize of 0 or less
// means lz4MaxDecodedSize.
func (c LZ4Compressor) DecompressWithLimit(data []byte, maxSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if maxSize <= 0 {
		maxSize = lz4MaxDecodedSize
	}

	for bufSize := len(data) * 4; ; bufSize *= 2 {
		bufSize = min(bufSize, maxSize)
		buf := make([]byte, bufSize)

		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) || bufSize == maxSize {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}
	}
}
