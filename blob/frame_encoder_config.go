package blob

import (
	"fmt"
	"time"

	"github.com/arloliu/rvl/compress"
	"github.com/arloliu/rvl/endian"
	"github.com/arloliu/rvl/format"
	"github.com/arloliu/rvl/internal/options"
	"github.com/arloliu/rvl/section"
)

// FrameEncoderConfig holds the header template, byte order and codec shared by every
// frame a FrameEncoder produces.
type FrameEncoderConfig struct {
	header *section.FrameHeader
	engine endian.EndianEngine
	codec  compress.Codec
}

// NewFrameEncoderConfig creates a config with default flags for frames of the given size.
func NewFrameEncoderConfig(width, height int) (*FrameEncoderConfig, error) {
	header, err := section.NewFrameHeader(width, height, time.Time{})
	if err != nil {
		return nil, err
	}

	return &FrameEncoderConfig{
		header: header,
		engine: header.Flag.GetEndianEngine(),
	}, nil
}

// setEncoding sets the pixel encoding type.
func (c *FrameEncoderConfig) setEncoding(enc format.EncodingType) error {
	if !enc.IsValid() {
		return fmt.Errorf("invalid pixel encoding: %v", enc)
	}
	c.header.Flag.SetEncoding(enc)

	return nil
}

// setCompression sets the payload compression type.
func (c *FrameEncoderConfig) setCompression(comp format.CompressionType) error {
	if !comp.IsValid() {
		return fmt.Errorf("invalid pixel compression: %v", comp)
	}
	c.header.Flag.SetCompression(comp)

	return nil
}

// setEndianess sets the endianness option.
func (c *FrameEncoderConfig) setEndianess(endiness endianness) {
	switch endiness {
	case bigEndianOpt:
		c.header.Flag.WithBigEndian()
	default:
		c.header.Flag.WithLittleEndian()
	}

	c.engine = c.header.Flag.GetEndianEngine()
}

// setCodec creates the compression codec selected by the header.
func (c *FrameEncoderConfig) setCodec() error {
	codec, err := compress.CreateCodec(c.header.Flag.Compression(), "pixel")
	if err != nil {
		return err
	}
	c.codec = codec

	return nil
}

// Header returns a copy of the header template. Width, height and flags are final;
// capture time, payload size and checksum are set per frame.
func (c *FrameEncoderConfig) Header() section.FrameHeader {
	return *c.header
}

// Width returns the frame width in pixels.
func (c *FrameEncoderConfig) Width() int {
	return int(c.header.Width)
}

// Height returns the frame height in pixels.
func (c *FrameEncoderConfig) Height() int {
	return int(c.header.Height)
}

// endianness represents the byte order configuration option.
type endianness uint8

const (
	littleEndianOpt endianness = iota
	bigEndianOpt
)

// FrameEncoderOption represents a functional option for configuring the FrameEncoderConfig.
type FrameEncoderOption = options.Option[*FrameEncoderConfig]

// WithEncoding sets the pixel encoding. The default is format.TypeRVL.
func WithEncoding(enc format.EncodingType) FrameEncoderOption {
	return options.New(func(c *FrameEncoderConfig) error {
		return c.setEncoding(enc)
	})
}

// WithCompression sets the compression applied to the encoded pixels.
// The default is format.CompressionNone.
func WithCompression(comp format.CompressionType) FrameEncoderOption {
	return options.New(func(c *FrameEncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithLittleEndian sets the encoder to use little-endian byte order.
// It is the default option.
func WithLittleEndian() FrameEncoderOption {
	return options.NoError(func(c *FrameEncoderConfig) {
		c.setEndianess(littleEndianOpt)
	})
}

// WithBigEndian sets the encoder to use big-endian byte order for header fields and
// raw pixels. Useful when the raw frames feed a network-order consumer.
func WithBigEndian() FrameEncoderOption {
	return options.NoError(func(c *FrameEncoderConfig) {
		c.setEndianess(bigEndianOpt)
	})
}

// WithChecksum enables or disables the xxHash64 payload checksum. Enabled by default.
func WithChecksum(enabled bool) FrameEncoderOption {
	return options.NoError(func(c *FrameEncoderConfig) {
		c.header.Flag.SetHasChecksum(enabled)
	})
}
