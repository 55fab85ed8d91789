// Package encoding holds the bit-level primitives behind the public pixel encoders.
//
// The nibble stream packs variable-length unsigned integers into 4-bit groups (three
// payload bits plus a continuation bit), two nibbles per byte with the high nibble
// first. The zigzag helpers fold signed pixel deltas into that unsigned space.
//
// This package is internal. Use github.com/arloliu/rvl/encoding or the root rvl
// package instead.
package encoding
