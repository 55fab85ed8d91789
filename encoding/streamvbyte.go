package encoding

import (
	"fmt"
	"math"

	"github.com/mhr3/streamvbyte"

	"github.com/arloliu/rvl/errs"
	ienc "github.com/arloliu/rvl/internal/encoding"
	"github.com/arloliu/rvl/internal/pool"
)

// StreamVByteEncoder implements ColumnarEncoder[uint16] by zigzag-coding the raster
// delta of every pixel (zeros included) and packing the codes with StreamVByte.
//
// StreamVByte stores one 2-bit length code per value in a control byte block followed
// by 1-4 data bytes per value. Smooth depth data lands on 1 byte per pixel. It does
// not exploit zero runs the way RVL does, but decodes with SIMD on supported CPUs.
type StreamVByteEncoder struct {
	codes   []uint32
	encoded []byte
	dirty   bool
	prev    int32
}

var _ ColumnarEncoder[uint16] = (*StreamVByteEncoder)(nil)

// NewStreamVByteEncoder creates a new StreamVByte pixel encoder.
func NewStreamVByteEncoder() *StreamVByteEncoder {
	return &StreamVByteEncoder{}
}

// Write appends a single pixel.
func (e *StreamVByteEncoder) Write(pixel uint16) {
	value := int32(pixel)
	e.codes = append(e.codes, ienc.ZigZagEncode32(value-e.prev))
	e.prev = value
	e.dirty = true
}

// WriteSlice appends pixels.
func (e *StreamVByteEncoder) WriteSlice(pixels []uint16) {
	if len(pixels) == 0 {
		return
	}

	e.codes = growSlice(e.codes, len(pixels))
	prev := e.prev
	for _, p := range pixels {
		value := int32(p)
		e.codes = append(e.codes, ienc.ZigZagEncode32(value-prev))
		prev = value
	}
	e.prev = prev
	e.dirty = true
}

// Bytes packs the codes written so far. The result is cached until the next write.
func (e *StreamVByteEncoder) Bytes() []byte {
	if e.dirty {
		e.encoded = streamvbyte.EncodeUint32(e.codes, nil)
		e.dirty = false
	}

	return e.encoded
}

// Len returns the number of pixels written.
func (e *StreamVByteEncoder) Len() int {
	return len(e.codes)
}

// Size returns the packed payload size in bytes.
func (e *StreamVByteEncoder) Size() int {
	return len(e.Bytes())
}

// Reset discards the codes and predictor and keeps the code slice for reuse.
func (e *StreamVByteEncoder) Reset() {
	e.codes = e.codes[:0]
	e.encoded = nil
	e.dirty = false
	e.prev = 0
}

// Finish releases the encoder's memory.
func (e *StreamVByteEncoder) Finish() {
	e.codes = nil
	e.encoded = nil
	e.dirty = false
	e.prev = 0
}

// StreamVByteDecoder decodes payloads produced by StreamVByteEncoder.
type StreamVByteDecoder struct{}

var _ ColumnarDecoder[uint16] = StreamVByteDecoder{}

// NewStreamVByteDecoder creates a new StreamVByte pixel decoder.
func NewStreamVByteDecoder() StreamVByteDecoder {
	return StreamVByteDecoder{}
}

// Decode decodes count pixels.
func (d StreamVByteDecoder) Decode(data []byte, count int) ([]uint16, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidPixelCount, count)
	}

	pixels := make([]uint16, count)
	if err := d.DecodeInto(pixels, data); err != nil {
		return nil, err
	}

	return pixels, nil
}

// DecodeInto decodes len(dst) pixels into dst. data must hold exactly one payload;
// leftover bytes give errs.ErrTrailingData.
func (d StreamVByteDecoder) DecodeInto(dst []uint16, data []byte) error {
	count := len(dst)

	size, err := svbPayloadSize(data, count)
	if err != nil {
		return err
	}
	if len(data) != size {
		return fmt.Errorf("%w: %d bytes after %d pixels", errs.ErrTrailingData, len(data)-size, count)
	}
	if count == 0 {
		return nil
	}

	scratch, cleanup := pool.GetUint32Slice(count)
	defer cleanup()

	codes := streamvbyte.DecodeUint32(data[:size], count, &streamvbyte.DecodeOptions[uint32]{
		Buffer: scratch,
	})
	if len(codes) != count {
		return fmt.Errorf("%w: decoded %d codes, want %d", errs.ErrTruncatedStream, len(codes), count)
	}

	var prev int64
	for i, code := range codes {
		value := prev + int64(ienc.ZigZagDecode32(code))
		if value < 0 || value > math.MaxUint16 {
			return fmt.Errorf("%w: %d at pixel %d", errs.ErrValueOutOfRange, value, i)
		}
		dst[i] = uint16(value)
		prev = value
	}

	return nil
}

// ByteLength returns the size of a payload of count pixels at the start of data.
func (d StreamVByteDecoder) ByteLength(data []byte, count int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidPixelCount, count)
	}

	return svbPayloadSize(data, count)
}

// svbPayloadSize computes the size of a StreamVByte payload of count values from its
// control bytes: one control byte per 4 values, each 2-bit code holding byteLength-1,
// lowest bits first.
func svbPayloadSize(data []byte, count int) (int, error) {
	if count == 0 {
		return 0, nil
	}

	numControl := (count + 3) >> 2
	if len(data) < numControl {
		return 0, fmt.Errorf("%w: need %d control bytes, have %d", errs.ErrTruncatedStream, numControl, len(data))
	}

	size := numControl
	for i, ctrl := range data[:numControl] {
		values := 4
		if i == numControl-1 && count&3 != 0 {
			values = count & 3
		}
		for j := range values {
			size += int((ctrl>>(j*2))&0x03) + 1
		}
	}

	if len(data) < size {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrTruncatedStream, size, len(data))
	}

	return size, nil
}
