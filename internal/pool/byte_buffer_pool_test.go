package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, cap(bb.B))
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)

	bb.B = append(bb.B, 0x22, 0x02, 0x32)
	require.Equal(t, []byte{0x22, 0x02, 0x32}, bb.Bytes())

	capBefore := cap(bb.B)
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, cap(bb.B), "reset keeps capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op when capacity suffices", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		assert.Equal(t, 64, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.B = append(bb.B, 1, 2, 3, 4, 5, 6, 7, 8)
		bb.Grow(1)
		assert.GreaterOrEqual(t, cap(bb.B), 8+PayloadBufferDefaultSize)
		assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, bb.Bytes())
	})

	t.Run("large request wins", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(PayloadBufferDefaultSize * 3)
		assert.GreaterOrEqual(t, cap(bb.B), PayloadBufferDefaultSize*3)
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * PayloadBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)
		assert.Equal(t, size+size/4, cap(bb.B))
	})
}

func TestByteBufferPool_PutResetsAndDropsOversized(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.B = append(bb.B, "abc"...)
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len())

	p.Put(NewByteBuffer(128)) // oversized, dropped
	p.Put(nil)
}

func TestPayloadPool_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(seed byte) {
			defer wg.Done()
			for range 100 {
				bb := GetPayloadBuffer()
				bb.B = append(bb.B, seed)
				if bb.Len() != 1 || bb.Bytes()[0] != seed {
					t.Errorf("unexpected buffer contents")
				}
				PutPayloadBuffer(bb)
			}
		}(byte(i))
	}
	wg.Wait()
}
