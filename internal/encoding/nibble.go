package encoding

import (
	"math"
	"slices"

	"github.com/arloliu/rvl/errs"
)

const (
	nibbleBits      = 3
	payloadMask     = 0x7
	continuationBit = 0x8

	// maxUvarintNibbles is the number of 3-bit groups needed for math.MaxUint64.
	maxUvarintNibbles = (64 + nibbleBits - 1) / nibbleBits
	// uvarintShiftLimit is the largest accumulator that survives another 3-bit shift.
	uvarintShiftLimit = math.MaxUint64 >> nibbleBits
)

// UvarintNibbles returns how many nibbles WriteUvarint emits for v.
func UvarintNibbles(v uint64) int {
	n := 1
	for v >>= nibbleBits; v != 0; v >>= nibbleBits {
		n++
	}

	return n
}

// NibbleWriter appends 4-bit nibbles to a byte slice, two per byte, high nibble first.
//
// A nibble waiting for its partner is held outside the slice, so Bytes can flush it
// into a padded final byte without disturbing the writer. NibbleWriter is a value type;
// copying it forks the stream, and writes to the copy never change the bytes visible
// through the original.
type NibbleWriter struct {
	buf     []byte
	pending byte
	half    bool
}

// NewNibbleWriter returns a writer that appends after the existing contents of buf.
func NewNibbleWriter(buf []byte) NibbleWriter {
	return NibbleWriter{buf: buf}
}

// WriteNibble appends the low 4 bits of n.
func (w *NibbleWriter) WriteNibble(n byte) {
	n &= 0x0F
	if !w.half {
		w.pending = n
		w.half = true

		return
	}

	w.buf = append(w.buf, w.pending<<4|n)
	w.pending = 0
	w.half = false
}

// WriteUvarint appends v as 3-bit groups, most significant group first.
//
// Every group except the last carries the continuation bit. Zero is a single 0x0 nibble.
func (w *NibbleWriter) WriteUvarint(v uint64) {
	groups := UvarintNibbles(v)
	for i := groups - 1; i > 0; i-- {
		w.WriteNibble(byte(v>>(uint(i)*nibbleBits))&payloadMask | continuationBit)
	}
	w.WriteNibble(byte(v) & payloadMask)
}

// Grow makes room for at least n more bytes.
func (w *NibbleWriter) Grow(n int) {
	w.buf = slices.Grow(w.buf, n)
}

// Bytes returns the packed stream. A pending nibble is flushed into a final byte whose
// low half is zero. The writer keeps its state, so more nibbles may follow; the returned
// slice is only valid until the next write.
func (w *NibbleWriter) Bytes() []byte {
	if !w.half {
		return w.buf
	}

	return append(w.buf, w.pending<<4)
}

// Reset empties the stream and starts appending at buf[len(buf):].
func (w *NibbleWriter) Reset(buf []byte) {
	w.buf = buf
	w.pending = 0
	w.half = false
}

// Detach returns the complete bytes written so far and leaves the writer empty.
// A pending nibble is dropped; callers detach to recycle the backing array.
func (w *NibbleWriter) Detach() []byte {
	buf := w.buf
	w.Reset(nil)

	return buf
}

// NibbleReader reads nibbles in the order NibbleWriter wrote them.
type NibbleReader struct {
	data []byte
	pos  int // nibble index
}

// NewNibbleReader returns a reader positioned at the first nibble of data.
func NewNibbleReader(data []byte) NibbleReader {
	return NibbleReader{data: data}
}

// ReadNibble returns the next nibble, or errs.ErrTruncatedStream past the end of the data.
func (r *NibbleReader) ReadNibble() (byte, error) {
	idx := r.pos >> 1
	if idx >= len(r.data) {
		return 0, errs.ErrTruncatedStream
	}

	b := r.data[idx]
	if r.pos&1 == 0 {
		b >>= 4
	}
	r.pos++

	return b & 0x0F, nil
}

type uvarintState uint8

const (
	uvarintReading uvarintState = iota
	uvarintDone
)

// ReadUvarint reads one value written by NibbleWriter.WriteUvarint.
//
// Groups arrive most significant first, so each nibble shifts the accumulator left by
// three bits. Reading stops at the first nibble without the continuation bit.
func (r *NibbleReader) ReadUvarint() (uint64, error) {
	var v uint64
	for state := uvarintReading; state != uvarintDone; {
		nib, err := r.ReadNibble()
		if err != nil {
			return 0, err
		}

		if v > uvarintShiftLimit {
			return 0, errs.ErrVarintOverflow
		}
		v = v<<nibbleBits | uint64(nib&payloadMask)

		if nib&continuationBit == 0 {
			state = uvarintDone
		}
	}

	return v, nil
}

// Consumed returns the number of bytes touched so far, counting a half-read byte.
func (r *NibbleReader) Consumed() int {
	return (r.pos + 1) >> 1
}

// Padding returns the unread low nibble of a half-read byte. ok is false when the
// reader sits on a byte boundary.
func (r *NibbleReader) Padding() (nib byte, ok bool) {
	if r.pos&1 == 0 {
		return 0, false
	}

	return r.data[r.pos>>1] & 0x0F, true
}
