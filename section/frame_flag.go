package section

import (
	"fmt"

	"github.com/arloliu/rvl/endian"
	"github.com/arloliu/rvl/errs"
	"github.com/arloliu/rvl/format"
)

// FrameFlag holds the first 4 bytes of a frame header.
type FrameFlag struct {
	// Options is a packed field, always stored little-endian.
	// Bit 0 is the checksum flag, 1 means the Checksum field holds the payload's xxHash64.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are the magic number, 0xD310 for frame format v1.
	Options uint16

	// EncodingType is the format.EncodingType of the pixel payload.
	EncodingType uint8
	// CompressionType is the format.CompressionType applied to the pixel payload.
	CompressionType uint8
}

// NewFrameFlag creates a FrameFlag with default settings: RVL, no compression,
// little-endian, checksum enabled.
func NewFrameFlag() FrameFlag {
	flag := FrameFlag{
		Options:         MagicFrameV1Opt,
		EncodingType:    uint8(format.TypeRVL),
		CompressionType: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()
	flag.SetHasChecksum(true)

	return flag
}

// HasChecksum returns whether the payload checksum is present.
func (f FrameFlag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetHasChecksum enables or disables the payload checksum.
func (f *FrameFlag) SetHasChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// IsLittleEndian returns whether the header fields and raw pixels are little-endian.
func (f FrameFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header fields and raw pixels are big-endian.
func (f FrameFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *FrameFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *FrameFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f FrameFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Encoding returns the pixel encoding.
func (f FrameFlag) Encoding() format.EncodingType {
	return format.EncodingType(f.EncodingType)
}

// SetEncoding sets the pixel encoding.
func (f *FrameFlag) SetEncoding(enc format.EncodingType) {
	f.EncodingType = uint8(enc)
}

// Compression returns the payload compression.
func (f FrameFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression.
func (f *FrameFlag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// Validate checks the magic number, the reserved bits and both enums.
func (f FrameFlag) Validate() error {
	if f.GetMagicNumber() != MagicFrameV1Opt {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set in options 0x%04x", errs.ErrInvalidHeaderFlags, f.Options)
	}

	if !f.Encoding().IsValid() {
		return fmt.Errorf("%w: unknown encoding 0x%02x", errs.ErrInvalidHeaderFlags, f.EncodingType)
	}

	if !f.Compression().IsValid() {
		return fmt.Errorf("%w: unknown compression 0x%02x", errs.ErrInvalidHeaderFlags, f.CompressionType)
	}

	return nil
}

// GetEndianEngine returns the endian engine selected by the flag.
func (f FrameFlag) GetEndianEngine() endian.EndianEngine {
	return endian.EngineFor(f.IsBigEndian())
}
