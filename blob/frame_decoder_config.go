package blob

import (
	"fmt"

	"github.com/arloliu/rvl/internal/options"
)

// FrameDecoderConfig holds the limits a FrameDecoder enforces on untrusted blobs.
type FrameDecoderConfig struct {
	maxPixels int
}

// NewFrameDecoderConfig creates a config that accepts any header-valid frame.
func NewFrameDecoderConfig() *FrameDecoderConfig {
	return &FrameDecoderConfig{}
}

// MaxPixels returns the largest Width*Height the decoder accepts, 0 meaning no limit
// beyond section.MaxFrameDimension.
func (c *FrameDecoderConfig) MaxPixels() int {
	return c.maxPixels
}

// FrameDecoderOption represents a functional option for configuring the FrameDecoderConfig.
type FrameDecoderOption = options.Option[*FrameDecoderConfig]

// WithMaxPixels rejects frames declaring more than n pixels with errs.ErrInvalidDimensions
// before any pixel buffer is allocated. Use it when blobs come from untrusted sources:
// a 32-byte header may declare up to 32768x32768 pixels, which Decode would allocate
// as 2 GiB even when the payload is tiny.
func WithMaxPixels(n int) FrameDecoderOption {
	return options.New(func(c *FrameDecoderConfig) error {
		if n <= 0 {
			return fmt.Errorf("invalid max pixels: %d", n)
		}
		c.maxPixels = n

		return nil
	})
}
