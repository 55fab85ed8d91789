package encoding

// ZigZagEncode32 maps a signed delta to an unsigned code: d >= 0 becomes 2d and
// d < 0 becomes -2d-1, so small magnitudes of either sign stay small.
//
//	 0 -> 0
//	-1 -> 1
//	 1 -> 2
//	-2 -> 3
func ZigZagEncode32(d int32) uint32 {
	return uint32((d << 1) ^ (d >> 31)) //nolint:gosec
}

// ZigZagDecode32 inverts ZigZagEncode32.
func ZigZagDecode32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1) //nolint:gosec
}
