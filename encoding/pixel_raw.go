package encoding

import (
	"fmt"

	"github.com/arloliu/rvl/endian"
	"github.com/arloliu/rvl/errs"
	"github.com/arloliu/rvl/internal/pool"
)

// PixelRawEncoder stores each pixel as 2 bytes in the engine's byte order.
//
// It is the uncompressed baseline for depth frames and the fastest encoding to decode.
type PixelRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[uint16] = (*PixelRawEncoder)(nil)

// NewPixelRawEncoder creates a raw pixel encoder using the specified endian engine.
func NewPixelRawEncoder(engine endian.EndianEngine) *PixelRawEncoder {
	return &PixelRawEncoder{
		engine: engine,
		buf:    pool.GetPayloadBuffer(),
	}
}

// Write appends a single pixel.
//
// Panics if Finish() has been called.
func (e *PixelRawEncoder) Write(pixel uint16) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.B = e.engine.AppendUint16(e.buf.B, pixel)
}

// WriteSlice appends pixels after growing the buffer once for all of them.
//
// Panics if Finish() has been called.
func (e *PixelRawEncoder) WriteSlice(pixels []uint16) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count += len(pixels)
	e.buf.Grow(len(pixels) * 2)
	for _, p := range pixels {
		e.buf.B = e.engine.AppendUint16(e.buf.B, p)
	}
}

// Bytes returns the encoded pixels.
//
// Panics if Finish() has been called.
func (e *PixelRawEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of pixels written.
func (e *PixelRawEncoder) Len() int {
	return e.count
}

// Size returns 2 * Len().
//
// Panics if Finish() has been called.
func (e *PixelRawEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset empties the encoder and keeps its buffer.
func (e *PixelRawEncoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.count = 0
}

// Finish returns the buffer to the pool. The encoder is unusable afterwards.
func (e *PixelRawEncoder) Finish() {
	if e.buf != nil {
		pool.PutPayloadBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// PixelRawDecoder decodes payloads produced by PixelRawEncoder.
type PixelRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[uint16] = PixelRawDecoder{}

// NewPixelRawDecoder creates a raw pixel decoder. The engine must match the encoder's.
func NewPixelRawDecoder(engine endian.EndianEngine) PixelRawDecoder {
	return PixelRawDecoder{engine: engine}
}

// Decode decodes count pixels. data must be exactly 2*count bytes.
func (d PixelRawDecoder) Decode(data []byte, count int) ([]uint16, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidPixelCount, count)
	}

	pixels := make([]uint16, count)
	if err := d.DecodeInto(pixels, data); err != nil {
		return nil, err
	}

	return pixels, nil
}

// DecodeInto decodes len(dst) pixels. data must be exactly 2*len(dst) bytes.
func (d PixelRawDecoder) DecodeInto(dst []uint16, data []byte) error {
	if len(data) != len(dst)*2 {
		return fmt.Errorf("%w: raw payload has %d bytes, want %d", errs.ErrInvalidPayloadLength, len(data), len(dst)*2)
	}

	for i := range dst {
		dst[i] = d.engine.Uint16(data[i*2:])
	}

	return nil
}

// ByteLength returns 2*count, or an error if data is shorter than that.
func (d PixelRawDecoder) ByteLength(data []byte, count int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidPixelCount, count)
	}

	if len(data) < count*2 {
		return 0, fmt.Errorf("%w: raw payload has %d bytes, want %d", errs.ErrInvalidPayloadLength, len(data), count*2)
	}

	return count * 2, nil
}
