package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/rvl/errs"
	ienc "github.com/arloliu/rvl/internal/encoding"
	"github.com/arloliu/rvl/internal/pool"
)

// maxPixelCode is the largest zigzag code a pixel delta can produce: 65535 - 0.
const maxPixelCode = 2 * math.MaxUint16

// RVLEncoder implements ColumnarEncoder[uint16] using run-length and variable-length
// (RVL) encoding for depth images.
//
// The payload is a sequence of nibble groups. Each iteration writes the length of the
// zero run at the cursor (possibly 0) and then, if pixels remain, the zigzag-coded
// delta of the next nonzero pixel from the previous nonzero pixel. A zero tail ends
// the payload with a run group and no value. There is no header or terminator; the
// decoder must be told the pixel count.
//
// Writes may be split across any number of Write and WriteSlice calls. A zero run
// that is still open is only emitted when Bytes is called, so split writes produce
// the same payload as EncodeRVL over the concatenated pixels.
//
// RVLEncoder is not safe for concurrent use.
type RVLEncoder struct {
	buf     *pool.ByteBuffer
	w       ienc.NibbleWriter
	prev    int32
	zeroRun uint64
	count   int
}

var _ ColumnarEncoder[uint16] = (*RVLEncoder)(nil)

// NewRVLEncoder creates an RVL encoder backed by a pooled buffer.
func NewRVLEncoder() *RVLEncoder {
	buf := pool.GetPayloadBuffer()

	return &RVLEncoder{
		buf: buf,
		w:   ienc.NewNibbleWriter(buf.B[:0]),
	}
}

// Write appends a single pixel.
//
// Panics if Finish() has been called.
func (e *RVLEncoder) Write(pixel uint16) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	if pixel == 0 {
		e.zeroRun++
		return
	}

	e.w.WriteUvarint(e.zeroRun)
	e.zeroRun = 0
	e.writeValue(pixel)
}

// WriteSlice appends pixels.
//
// The output buffer is grown once up front by half a byte per pixel, which covers
// smooth depth data without reallocating.
//
// Panics if Finish() has been called.
func (e *RVLEncoder) WriteSlice(pixels []uint16) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	if len(pixels) == 0 {
		return
	}

	e.count += len(pixels)
	e.w.Grow(len(pixels)/2 + 8)
	e.prev, e.zeroRun = encodeRuns(&e.w, pixels, e.prev, e.zeroRun)
}

// Bytes returns the RVL payload for all pixels written since the last Reset, with an
// open zero run closed and the final byte padded.
//
// Panics if Finish() has been called.
func (e *RVLEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	if e.zeroRun == 0 {
		return e.w.Bytes()
	}

	tail := e.w
	tail.WriteUvarint(e.zeroRun)

	return tail.Bytes()
}

// Len returns the number of pixels written since the last Reset.
func (e *RVLEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes.
//
// Panics if Finish() has been called.
func (e *RVLEncoder) Size() int {
	return len(e.Bytes())
}

// Reset discards the payload and the predictor so the next pixel is encoded relative
// to zero. The buffer is kept for reuse.
func (e *RVLEncoder) Reset() {
	if e.buf != nil {
		e.w.Reset(e.w.Detach()[:0])
	}
	e.prev = 0
	e.zeroRun = 0
	e.count = 0
}

// Finish returns the buffer to the pool. The encoder is unusable afterwards.
func (e *RVLEncoder) Finish() {
	if e.buf != nil {
		e.buf.B = e.w.Detach()
		pool.PutPayloadBuffer(e.buf)
		e.buf = nil
	}
	e.prev = 0
	e.zeroRun = 0
	e.count = 0
}

func (e *RVLEncoder) writeValue(pixel uint16) {
	value := int32(pixel)
	e.w.WriteUvarint(uint64(ienc.ZigZagEncode32(value - e.prev)))
	e.prev = value
}

// encodeRuns runs the zero-run / value loop over pixels, starting from predictor prev
// with run zeros already pending. It returns the new predictor and the zero run still
// open at the end of pixels, which the caller must flush when the sequence ends.
func encodeRuns(w *ienc.NibbleWriter, pixels []uint16, prev int32, run uint64) (int32, uint64) {
	n := len(pixels)
	i := 0
	for i < n {
		start := i
		for i < n && pixels[i] == 0 {
			i++
		}
		run += uint64(i - start) //nolint:gosec
		if i == n {
			break
		}

		w.WriteUvarint(run)
		run = 0

		value := int32(pixels[i])
		w.WriteUvarint(uint64(ienc.ZigZagEncode32(value - prev)))
		prev = value
		i++
	}

	return prev, run
}

// AppendRVL appends the RVL payload of pixels to dst and returns the extended slice.
func AppendRVL(dst []byte, pixels []uint16) []byte {
	w := ienc.NewNibbleWriter(dst)
	w.Grow(len(pixels)/2 + 8)

	_, run := encodeRuns(&w, pixels, 0, 0)
	if run > 0 {
		w.WriteUvarint(run)
	}

	return w.Bytes()
}

// EncodeRVL returns the RVL payload of pixels. An empty input yields an empty payload.
func EncodeRVL(pixels []uint16) []byte {
	return AppendRVL(nil, pixels)
}

// RVLMaxEncodedLen returns the largest RVL payload count pixels can produce.
//
// A nonzero pixel costs at most seven nibbles: its preceding run and a value code of at
// most 17 bits. A zero pixel adds at most one nibble to the run that covers it.
func RVLMaxEncodedLen(count int) int {
	if count <= 0 {
		return 0
	}

	return (7*count + 1) / 2
}

// RVLDecoder decodes payloads produced by RVLEncoder, EncodeRVL or AppendRVL.
//
// The decoder is stateless and safe for concurrent use; every call starts with a
// fresh predictor.
//
// Decoding is strict: once the requested number of pixels is produced, any remaining
// whole byte or a nonzero padding nibble is reported as errs.ErrTrailingData. Use
// ByteLength to split payloads stored back to back.
type RVLDecoder struct{}

var _ ColumnarDecoder[uint16] = RVLDecoder{}

// NewRVLDecoder creates a new RVL decoder.
func NewRVLDecoder() RVLDecoder {
	return RVLDecoder{}
}

// Decode reconstructs exactly count pixels from data.
//
// Returns:
//   - errs.ErrInvalidPixelCount if count is negative
//   - errs.ErrTruncatedStream if data ends before count pixels are produced
//   - errs.ErrPixelOverrun if a zero run goes past count
//   - errs.ErrValueOutOfRange if a reconstructed pixel leaves [0, 65535]
//   - errs.ErrTrailingData if data continues after the last pixel
func (d RVLDecoder) Decode(data []byte, count int) ([]uint16, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidPixelCount, count)
	}

	pixels := make([]uint16, count)
	if err := d.DecodeInto(pixels, data); err != nil {
		return nil, err
	}

	return pixels, nil
}

// DecodeInto reconstructs len(dst) pixels from data into dst.
func (d RVLDecoder) DecodeInto(dst []uint16, data []byte) error {
	r := ienc.NewNibbleReader(data)
	if err := decodeRuns(&r, dst, len(dst)); err != nil {
		return err
	}

	return checkTrailer(&r, len(data))
}

// ByteLength walks a payload of count pixels at the start of data and returns the
// number of bytes it occupies, including a padded final byte.
func (d RVLDecoder) ByteLength(data []byte, count int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidPixelCount, count)
	}

	r := ienc.NewNibbleReader(data)
	if err := decodeRuns(&r, nil, count); err != nil {
		return 0, err
	}

	return r.Consumed(), nil
}

// decodeRuns inverts encodeRuns for count pixels. When dst is nil the payload is only
// validated.
func decodeRuns(r *ienc.NibbleReader, dst []uint16, count int) error {
	var prev int32
	produced := 0

	for produced < count {
		run, err := r.ReadUvarint()
		if err != nil {
			return fmt.Errorf("zero run at pixel %d: %w", produced, err)
		}

		remaining := count - produced
		if run > uint64(remaining) { //nolint:gosec
			return fmt.Errorf("%w: zero run of %d at pixel %d, only %d pixels left",
				errs.ErrPixelOverrun, run, produced, remaining)
		}

		end := produced + int(run) //nolint:gosec
		if dst != nil {
			clear(dst[produced:end])
		}
		produced = end

		if produced == count {
			break
		}

		code, err := r.ReadUvarint()
		if err != nil {
			return fmt.Errorf("value at pixel %d: %w", produced, err)
		}
		if code > maxPixelCode {
			return fmt.Errorf("%w: delta code %d at pixel %d", errs.ErrValueOutOfRange, code, produced)
		}

		value := prev + ienc.ZigZagDecode32(uint32(code))
		if value < 0 || value > math.MaxUint16 {
			return fmt.Errorf("%w: %d at pixel %d", errs.ErrValueOutOfRange, value, produced)
		}

		if dst != nil {
			dst[produced] = uint16(value)
		}
		prev = value
		produced++
	}

	return nil
}

// checkTrailer rejects data left after the last pixel.
func checkTrailer(r *ienc.NibbleReader, size int) error {
	if nib, ok := r.Padding(); ok && nib != 0 {
		return fmt.Errorf("%w: nonzero padding nibble 0x%x", errs.ErrTrailingData, nib)
	}

	if consumed := r.Consumed(); consumed < size {
		return fmt.Errorf("%w: %d unread bytes", errs.ErrTrailingData, size-consumed)
	}

	return nil
}

// DecodeRVL reconstructs exactly count pixels from an RVL payload.
func DecodeRVL(data []byte, count int) ([]uint16, error) {
	return RVLDecoder{}.Decode(data, count)
}
