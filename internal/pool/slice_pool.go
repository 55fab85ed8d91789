package pool

import "sync"

// Typed slice pools for pixel conversion scratch space.
var (
	uint16SlicePool = sync.Pool{
		New: func() any { return &[]uint16{} },
	}
	uint32SlicePool = sync.Pool{
		New: func() any { return &[]uint32{} },
	}
)

// GetUint16Slice returns a uint16 slice of length size from the pool.
//
// The contents are not zeroed. The caller must call the returned cleanup function,
// typically with defer, once the slice is no longer referenced.
//
// Example:
//
//	pixels, cleanup := pool.GetUint16Slice(width * height)
//	defer cleanup()
func GetUint16Slice(size int) ([]uint16, func()) {
	ptr, _ := uint16SlicePool.Get().(*[]uint16)

	slice := *ptr
	if cap(slice) < size {
		slice = make([]uint16, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { uint16SlicePool.Put(ptr) }
}

// GetUint32Slice returns a uint32 slice of length size from the pool.
//
// The contents are not zeroed. The caller must call the returned cleanup function.
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)

	slice := *ptr
	if cap(slice) < size {
		slice = make([]uint32, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { uint32SlicePool.Put(ptr) }
}
