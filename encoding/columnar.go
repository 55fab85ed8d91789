package encoding

// ColumnarEncoder encodes a column of values into a single payload.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded payload for everything written since the last Reset.
	// The returned slice is valid until the next call to Write, WriteSlice, Reset or Finish.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of values written since the last Reset.
	Len() int

	// Size returns len(Bytes()).
	Size() int

	// Reset discards the encoded payload and any predictor state, keeping the internal
	// buffer so the encoder can be reused for the next frame.
	Reset()

	// Finish returns buffer resources to the pool.
	//
	// After calling Finish(), the encoder is no longer usable. Any subsequent calls to
	// Write(), WriteSlice(), Bytes() or Size() will panic.
	//
	//	encoder := NewRVLEncoder()
	//	defer encoder.Finish()
	Finish()

	// Write appends a single value.
	Write(data T)

	// WriteSlice appends a slice of values. It produces the same payload as calling
	// Write for each value in order.
	WriteSlice(values []T)
}

// ColumnarDecoder decodes payloads produced by the matching ColumnarEncoder.
//
// Decoding is all or nothing: on error no partial values are returned.
type ColumnarDecoder[T comparable] interface {
	// Decode decodes exactly count values from data.
	Decode(data []byte, count int) ([]T, error)

	// DecodeInto decodes exactly len(dst) values from data into dst.
	// On error the contents of dst are unspecified.
	DecodeInto(dst []T, data []byte) error

	// ByteLength returns the number of bytes of data occupied by a payload of count
	// values, so payloads stored back to back can be split.
	ByteLength(data []byte, count int) (int, error)
}

// growSlice returns s with room for at least n more elements, preserving its contents.
//
// Small slices grow by at least 256 elements, larger ones by at least 25% of their
// capacity, so repeated frame-sized writes do not reallocate every call.
func growSlice[T any](s []T, n int) []T {
	if cap(s)-len(s) >= n {
		return s
	}

	step := 256
	if c := cap(s); c > 4096 {
		step = c / 4
	}
	step = max(step, n)

	grown := make([]T, len(s), cap(s)+step)
	copy(grown, s)

	return grown
}
