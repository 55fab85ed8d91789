package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZigZag32(t *testing.T) {
	tests := []struct {
		delta int32
		code  uint32
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{65535, 131070},
		{-65535, 131069},
		{math.MaxInt32, math.MaxUint32 - 1},
		{math.MinInt32, math.MaxUint32},
	}

	for _, tt := range tests {
		require.Equal(t, tt.code, ZigZagEncode32(tt.delta), "encode %d", tt.delta)
		require.Equal(t, tt.delta, ZigZagDecode32(tt.code), "decode %d", tt.code)
	}
}

func TestZigZag32_EvenMeansNonNegative(t *testing.T) {
	for d := int32(-1000); d <= 1000; d++ {
		code := ZigZagEncode32(d)
		require.Equal(t, d >= 0, code%2 == 0, "delta %d", d)
	}
}
